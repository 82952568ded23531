package main

import (
	"net/http"
	"strconv"

	"pizzeria/internal/auth"
	"pizzeria/internal/store"

	"github.com/go-chi/chi/v5"
)

type userKey string

const (
	userCtx  userKey = "user"
	tokenCtx userKey = "token"
)

func getUserFromContext(r *http.Request) *store.User {
	user, _ := r.Context().Value(userCtx).(*store.User)
	return user
}

func getTokenFromContext(r *http.Request) string {
	token, _ := r.Context().Value(tokenCtx).(string)
	return token
}

// getMeHandler godoc
//
//	@Summary		Current user
//	@Description	Returns the authenticated user with its role bindings.
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	store.User
//	@Failure		401	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/me [get]
func (app *application) getMeHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	if err := app.jsonResponse(w, http.StatusOK, user); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateUserPayload struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=3,max=72"`
}

// updateUserHandler godoc
//
//	@Summary		Update a user
//	@Description	Partially updates name, email or password. Users can update themselves; admins can update anyone.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int					true	"User ID"
//	@Param			payload	body		UpdateUserPayload	true	"Fields to change"
//	@Success		200		{object}	store.User
//	@Failure		400		{object}	error
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/{userID} [put]
func (app *application) updateUserHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if userID != user.ID && !auth.Authorize(user, store.RoleAdmin, 0) {
		app.forbiddenResponse(w, r)
		return
	}

	var payload UpdateUserPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	updated, err := app.store.Users.Update(r.Context(), userID, payload.Name, payload.Email, payload.Password)
	if err != nil {
		switch err {
		case store.ErrNotFound:
			app.notFoundResponse(w, r, err)
		case store.ErrDuplicateEmail:
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, updated); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteUserHandler godoc
//
//	@Summary		Delete a user
//	@Description	Removes the user, its role bindings and its sessions. Admin only.
//	@Tags			users
//	@Produce		json
//	@Param			userID	path	int	true	"User ID"
//	@Success		204
//	@Failure		403	{object}	error
//	@Failure		404	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/{userID} [delete]
func (app *application) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	if !auth.Authorize(user, store.RoleAdmin, 0) {
		app.forbiddenResponse(w, r)
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Users.Delete(r.Context(), userID); err != nil {
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
