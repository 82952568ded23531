package main

import (
	"net/http"
	"strconv"

	"pizzeria/internal/store"

	"github.com/go-chi/chi/v5"
)

type CreateFranchisePayload struct {
	Name        string   `json:"name" validate:"required,max=100"`
	AdminEmails []string `json:"admin_emails" validate:"required,min=1,dive,email"`
}

type CreateStorePayload struct {
	Name string `json:"name" validate:"required,max=100"`
}

// listFranchisesHandler godoc
//
//	@Summary		List franchises
//	@Description	Returns franchises with their stores, paginated. Public.
//	@Tags			franchises
//	@Produce		json
//	@Param			page	query		int	false	"Page"
//	@Param			limit	query		int	false	"Page size"
//	@Success		200		{array}		store.Franchise
//	@Failure		500		{object}	error
//	@Router			/franchises [get]
func (app *application) listFranchisesHandler(w http.ResponseWriter, r *http.Request) {
	p := parsePagination(r)

	franchises, total, err := app.store.Franchises.List(r.Context(), p)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	p.ComputeMeta(total)

	if err := app.jsonResponse(w, http.StatusOK, map[string]any{
		"franchises": franchises,
		"pagination": p,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getFranchiseHandler godoc
//
//	@Summary		Franchise detail
//	@Description	Returns the franchise with its stores and franchisee admins. Admin or scoped franchisee.
//	@Tags			franchises
//	@Produce		json
//	@Param			franchiseID	path		int	true	"Franchise ID"
//	@Success		200			{object}	store.Franchise
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/franchises/{franchiseID} [get]
func (app *application) getFranchiseHandler(w http.ResponseWriter, r *http.Request) {
	franchiseID, err := strconv.ParseInt(chi.URLParam(r, "franchiseID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	franchise, err := app.store.Franchises.GetByID(r.Context(), franchiseID)
	if err != nil {
		switch err {
		case store.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, franchise); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createFranchiseHandler godoc
//
//	@Summary		Create a franchise
//	@Description	Creates the franchise and grants the named users a franchisee role scoped to it. Admin only.
//	@Tags			franchises
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateFranchisePayload	true	"Franchise"
//	@Success		201		{object}	store.Franchise
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Failure		409		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/franchises [post]
func (app *application) createFranchiseHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateFranchisePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()

	// The lookups run outside the insert transaction; a user deleted in
	// between surfaces as a store error rather than being re-checked.
	franchiseeIDs := make([]int64, 0, len(payload.AdminEmails))
	admins := make([]store.Admin, 0, len(payload.AdminEmails))
	for _, email := range payload.AdminEmails {
		user, err := app.store.Users.GetByEmail(ctx, email)
		if err != nil {
			switch err {
			case store.ErrNotFound:
				app.notFoundResponse(w, r, err)
			default:
				app.internalServerError(w, r, err)
			}
			return
		}
		franchiseeIDs = append(franchiseeIDs, user.ID)
		admins = append(admins, store.Admin{ID: user.ID, Name: user.Name, Email: user.Email})
	}

	franchise := &store.Franchise{Name: payload.Name, Stores: []store.Store{}}

	if err := app.store.Franchises.Create(ctx, franchise, franchiseeIDs); err != nil {
		switch err {
		case store.ErrDuplicateFranchise:
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}
	franchise.Admins = admins

	if err := app.jsonResponse(w, http.StatusCreated, franchise); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteFranchiseHandler godoc
//
//	@Summary		Delete a franchise
//	@Description	Removes the franchise, its stores and the scoped franchisee bindings. Admin only.
//	@Tags			franchises
//	@Produce		json
//	@Param			franchiseID	path	int	true	"Franchise ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/franchises/{franchiseID} [delete]
func (app *application) deleteFranchiseHandler(w http.ResponseWriter, r *http.Request) {
	franchiseID, err := strconv.ParseInt(chi.URLParam(r, "franchiseID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Franchises.Delete(r.Context(), franchiseID); err != nil {
		switch err {
		case store.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// createStoreHandler godoc
//
//	@Summary		Create a store
//	@Description	Adds a store to the franchise. Admin or scoped franchisee.
//	@Tags			franchises
//	@Accept			json
//	@Produce		json
//	@Param			franchiseID	path		int					true	"Franchise ID"
//	@Param			payload		body		CreateStorePayload	true	"Store"
//	@Success		201			{object}	store.Store
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/franchises/{franchiseID}/stores [post]
func (app *application) createStoreHandler(w http.ResponseWriter, r *http.Request) {
	franchiseID, err := strconv.ParseInt(chi.URLParam(r, "franchiseID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload CreateStorePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	st := &store.Store{FranchiseID: franchiseID, Name: payload.Name}

	if err := app.store.Franchises.CreateStore(r.Context(), st); err != nil {
		switch err {
		case store.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, st); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteStoreHandler godoc
//
//	@Summary		Delete a store
//	@Description	Removes a store from the franchise. Admin or scoped franchisee.
//	@Tags			franchises
//	@Produce		json
//	@Param			franchiseID	path	int	true	"Franchise ID"
//	@Param			storeID		path	int	true	"Store ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/franchises/{franchiseID}/stores/{storeID} [delete]
func (app *application) deleteStoreHandler(w http.ResponseWriter, r *http.Request) {
	franchiseID, err := strconv.ParseInt(chi.URLParam(r, "franchiseID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	storeID, err := strconv.ParseInt(chi.URLParam(r, "storeID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Franchises.DeleteStore(r.Context(), franchiseID, storeID); err != nil {
		switch err {
		case store.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
