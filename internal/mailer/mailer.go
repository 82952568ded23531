package mailer

import "embed"

const (
	FromName             = "Pizzeria"
	maxRetries           = 3
	UserWelcomeTemplate  = "user_welcome.tmpl"
	OrderReceiptTemplate = "order_receipt.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, username, email string, data any) (int, error)
}
