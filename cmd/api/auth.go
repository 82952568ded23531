package main

import (
	"net/http"

	"pizzeria/internal/mailer"
	"pizzeria/internal/store"
)

type RegisterUserPayload struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=3,max=72"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=3,max=72"`
}

// UserWithToken is the auth response: the user plus a freshly issued token.
type UserWithToken struct {
	*store.User `json:"user"`
	Token       string `json:"token"`
}

// registerUserHandler godoc
//
//	@Summary		Registers a diner
//	@Description	Creates a diner account and logs it in, returning a bearer token.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RegisterUserPayload	true	"User credentials"
//	@Success		201		{object}	UserWithToken		"User registered"
//	@Failure		400		{object}	error
//	@Failure		409		{object}	error
//	@Failure		500		{object}	error
//	@Router			/auth [post]
func (app *application) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var payload RegisterUserPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := &store.User{
		Name:  payload.Name,
		Email: payload.Email,
		Roles: []store.RoleBinding{{Role: store.RoleDiner}},
	}
	if err := user.Password.Set(payload.Password); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	ctx := r.Context()

	if err := app.store.Users.Create(ctx, user); err != nil {
		switch err {
		case store.ErrDuplicateEmail:
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	token, err := app.auth.Issue(ctx, user)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// best effort; registration already succeeded
	go func() {
		vars := struct {
			Username string
			MenuURL  string
		}{
			Username: user.Name,
			MenuURL:  app.config.frontendURL + "/menu",
		}
		if _, err := app.mailer.Send(mailer.UserWelcomeTemplate, user.Name, user.Email, vars); err != nil {
			app.logger.Errorw("error sending welcome email", "error", err)
		}
	}()

	if err := app.jsonResponse(w, http.StatusCreated, UserWithToken{User: user, Token: token}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// loginHandler godoc
//
//	@Summary		Login
//	@Description	Verifies credentials and issues a bearer token backed by a new session.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		LoginPayload	true	"User credentials"
//	@Success		200		{object}	UserWithToken
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Failure		500		{object}	error
//	@Router			/auth [put]
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()

	// Unknown email and wrong password take the same path here on purpose.
	user, err := app.auth.Authenticate(ctx, payload.Email, payload.Password)
	if err != nil {
		switch err {
		case store.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	token, err := app.auth.Issue(ctx, user)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, UserWithToken{User: user, Token: token}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// logoutHandler godoc
//
//	@Summary		Logout
//	@Description	Deletes the session marker for the presented token. Idempotent.
//	@Tags			authentication
//	@Produce		json
//	@Success		204	{string}	string	"No Content"
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/auth [delete]
func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	token := getTokenFromContext(r)

	if err := app.auth.Revoke(r.Context(), token); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
