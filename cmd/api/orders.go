package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pizzeria/internal/factory"
	"pizzeria/internal/mailer"
	"pizzeria/internal/notifications"
	"pizzeria/internal/store"
)

type OrderItemPayload struct {
	MenuItemID int64 `json:"menu_item_id" validate:"required,gt=0"`
}

type CreateOrderPayload struct {
	FranchiseID int64              `json:"franchise_id" validate:"required,gt=0"`
	StoreID     int64              `json:"store_id" validate:"required,gt=0"`
	Items       []OrderItemPayload `json:"items" validate:"required,min=1,max=20,dive"`
}

// OrderWithFulfillment is the order plus the factory's verification JWT.
type OrderWithFulfillment struct {
	Order     *store.Order `json:"order"`
	JWT       string       `json:"jwt"`
	ReportURL string       `json:"reportUrl,omitempty"`
}

// listOrdersHandler godoc
//
//	@Summary		List own orders
//	@Description	Returns the diner's orders, newest first, paginated.
//	@Tags			orders
//	@Produce		json
//	@Param			page	query		int	false	"Page"
//	@Param			limit	query		int	false	"Page size"
//	@Success		200		{array}		store.Order
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	p := parsePagination(r)

	orders, total, err := app.store.Orders.ListByUser(r.Context(), user.ID, p)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	p.ComputeMeta(total)

	if err := app.jsonResponse(w, http.StatusOK, map[string]any{
		"orders":     orders,
		"pagination": p,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createOrderHandler godoc
//
//	@Summary		Place an order
//	@Description	Creates the order, forwards it to the pizza factory for fulfillment, and returns the factory's verification JWT alongside the order.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateOrderPayload	true	"Order"
//	@Success		201		{object}	OrderWithFulfillment
//	@Failure		400		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/orders [post]
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var payload CreateOrderPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()

	ids := make([]int64, 0, len(payload.Items))
	for _, item := range payload.Items {
		ids = append(ids, item.MenuItemID)
	}

	// Prices come from the menu, never from the client.
	menuItems, err := app.store.Menu.GetByIDs(ctx, ids)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	byID := make(map[int64]store.MenuItem, len(menuItems))
	for _, mi := range menuItems {
		byID[mi.ID] = mi
	}

	order := &store.Order{
		UserID:      user.ID,
		FranchiseID: payload.FranchiseID,
		StoreID:     payload.StoreID,
	}
	for _, item := range payload.Items {
		mi, ok := byID[item.MenuItemID]
		if !ok {
			app.badRequestResponse(w, r, fmt.Errorf("unknown menu item %d", item.MenuItemID))
			return
		}
		order.Items = append(order.Items, store.OrderItem{
			MenuItemID:  mi.ID,
			Description: mi.Title,
			PriceCents:  mi.PriceCents,
		})
	}

	if err := app.store.Orders.Create(ctx, order, app.orderNumbers.Encode); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	fulfillItems := make([]factory.FulfillItem, 0, len(order.Items))
	for _, item := range order.Items {
		fulfillItems = append(fulfillItems, factory.FulfillItem{
			MenuItemID:  item.MenuItemID,
			Description: item.Description,
			PriceCents:  item.PriceCents,
		})
	}

	fulfillment, err := app.factory.Fulfill(ctx, factory.FulfillRequest{
		DinerID:     user.ID,
		OrderNumber: order.OrderNumber,
		StoreID:     order.StoreID,
		Items:       fulfillItems,
	})
	if err != nil {
		app.logger.Errorw("factory fulfillment failed", "order", order.OrderNumber, "error", err)
		app.internalServerError(w, r, err)
		return
	}

	app.notifyOrderPlaced(user, order)

	response := OrderWithFulfillment{
		Order:     order,
		JWT:       fulfillment.JWT,
		ReportURL: fulfillment.ReportURL,
	}
	if err := app.jsonResponse(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// notifyOrderPlaced sends the receipt email and push notification in the
// background. Both are best effort; the order already committed.
func (app *application) notifyOrderPlaced(user *store.User, order *store.Order) {
	items := make([]struct {
		Description string
		Price       string
	}, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, struct {
			Description string
			Price       string
		}{
			Description: item.Description,
			Price:       fmt.Sprintf("%.2f", float64(item.PriceCents)/100),
		})
	}

	go func() {
		vars := struct {
			Username    string
			OrderNumber string
			Items       []struct {
				Description string
				Price       string
			}
		}{
			Username:    user.Name,
			OrderNumber: order.OrderNumber,
			Items:       items,
		}
		if _, err := app.mailer.Send(mailer.OrderReceiptTemplate, user.Name, user.Email, vars); err != nil {
			app.logger.Errorw("error sending receipt email", "order", order.OrderNumber, "error", err)
		}
	}()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := notifications.SendOrderNotification(
			ctx, app.push, app.store.PushTokens, user.ID, notifications.OrderPlaced, order.OrderNumber,
		)
		if err != nil {
			app.logger.Warnw("order push notification not sent", "order", order.OrderNumber, "error", err)
		}
	}()
}
