package auth

// Authenticator mints bearer tokens. Validation does not live here: a token
// is valid exactly when its signature fragment has a session marker in the
// store, so the token itself is opaque once issued.
type Authenticator interface {
	GenerateToken(userID int64, roles []string) (string, error)
}
