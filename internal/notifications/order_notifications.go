package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/9ssi7/exponent"
)

type OrderEvent string

const (
	OrderPlaced    OrderEvent = "PLACED"
	OrderReady     OrderEvent = "READY"
	OrderCancelled OrderEvent = "CANCELLED"
)

// TokenLookup is the slice of the push-token store this package needs.
type TokenLookup interface {
	GetTokensByUserIDs(ctx context.Context, userIDs []int64) (map[int64][]string, error)
}

func SendOrderNotification(ctx context.Context, push PushSender, tokens TokenLookup, userID int64, event OrderEvent, orderNumber string) error {
	tokensMap, err := tokens.GetTokensByUserIDs(ctx, []int64{userID})
	if err != nil {
		return err
	}
	userTokens := tokensMap[userID]
	if len(userTokens) == 0 {
		return errors.New("no push tokens")
	}

	var title, body string
	switch event {
	case OrderPlaced:
		title = "Order Received"
		body = fmt.Sprintf("Order %s is in the oven! 🍕", orderNumber)
	case OrderReady:
		title = "Order Ready"
		body = fmt.Sprintf("Order %s is ready for pickup", orderNumber)
	case OrderCancelled:
		title = "Order Cancelled"
		body = fmt.Sprintf("Order %s has been cancelled", orderNumber)
	default:
		title = "Order Update"
		body = fmt.Sprintf("Order %s has an update", orderNumber)
	}

	msgs := make([]*exponent.Message, 0, len(userTokens))
	for _, t := range userTokens {
		token := exponent.Token(t)
		msg := &exponent.Message{
			To:    []*exponent.Token{&token},
			Title: title,
			Body:  body,
			// data drives deep linking when the notification is tapped
			Data: map[string]string{
				"type":        "order",
				"event":       string(event),
				"orderNumber": orderNumber,
				"screen":      "order-history-screen",
			},
		}
		msgs = append(msgs, msg)
	}

	_, err = push.Publish(ctx, msgs)
	return err
}
