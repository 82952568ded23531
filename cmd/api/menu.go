package main

import (
	"fmt"
	"net/http"
	"strconv"

	"pizzeria/internal/store"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/go-chi/chi/v5"
)

// for cloudinary uploadParams
func boolPtr(b bool) *bool {
	return &b
}

// getMenuHandler godoc
//
//	@Summary		List the menu
//	@Description	Returns every menu item. Public.
//	@Tags			menu
//	@Produce		json
//	@Success		200	{array}		store.MenuItem
//	@Failure		500	{object}	error
//	@Router			/menu [get]
func (app *application) getMenuHandler(w http.ResponseWriter, r *http.Request) {
	items, err := app.store.Menu.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

type MenuItemPayload struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
	Image       string `json:"image" validate:"omitempty,url"`
	PriceCents  int64  `json:"price_cents" validate:"required,gt=0"`
}

// upsertMenuItemHandler godoc
//
//	@Summary		Add or update a menu item
//	@Description	Inserts a new item, or updates it in place when an id is supplied. Admin only.
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		MenuItemPayload	true	"Menu item"
//	@Success		200		{object}	store.MenuItem
//	@Failure		400		{object}	error
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/menu [put]
func (app *application) upsertMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var payload MenuItemPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item := &store.MenuItem{
		ID:          payload.ID,
		Title:       payload.Title,
		Description: payload.Description,
		Image:       payload.Image,
		PriceCents:  payload.PriceCents,
	}

	if err := app.store.Menu.Upsert(r.Context(), item); err != nil {
		switch err {
		case store.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// uploadMenuItemImageHandler godoc
//
//	@Summary		Upload a menu item image
//	@Description	Uploads the image to Cloudinary and saves the URL on the item. Admin only.
//	@Tags			menu
//	@Accept			mpfd
//	@Produce		json
//	@Param			itemID	path		int		true	"Menu item ID"
//	@Param			image	formData	file	true	"Image file, 2MB max"
//	@Success		200		{string}	string	"Image uploaded"
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/menu/{itemID}/image [post]
func (app *application) uploadMenuItemImageHandler(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(2 << 20); err != nil {
		http.Error(w, "Unable to parse form, file size limit is 2MB", http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Unable to retrieve file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		http.Error(w, "Only JPEG and PNG images are allowed", http.StatusBadRequest)
		return
	}

	uploadParams := uploader.UploadParams{
		PublicID:       fmt.Sprintf("/%d", itemID),
		Overwrite:      boolPtr(true),
		Folder:         "menu_items",
		Transformation: "w_600,h_400,c_fill,q_auto",
	}
	uploadResult, err := app.cld.Upload.Upload(r.Context(), file, uploadParams)
	if err != nil {
		http.Error(w, "Failed to upload image to Cloudinary", http.StatusInternalServerError)
		return
	}

	if err := app.store.Menu.SetImage(r.Context(), itemID, uploadResult.SecureURL); err != nil {
		switch err {
		case store.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"image": uploadResult.SecureURL}); err != nil {
		app.internalServerError(w, r, err)
	}
}
