package factory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the pizza factory, the fulfillment service every placed
// order is forwarded to. The factory answers with a verification JWT the
// diner can present with the pizza, plus a report URL for problems.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

func NewClient(url, apiKey string) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

type FulfillItem struct {
	MenuItemID  int64  `json:"menu_item_id"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
}

type FulfillRequest struct {
	DinerID     int64         `json:"diner_id"`
	OrderNumber string        `json:"order_number"`
	StoreID     int64         `json:"store_id"`
	Items       []FulfillItem `json:"items"`
}

type FulfillResponse struct {
	JWT       string `json:"jwt"`
	ReportURL string `json:"reportUrl"`
}

func (c *Client) Fulfill(ctx context.Context, req FulfillRequest) (*FulfillResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/api/order", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("factory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("factory returned status %d", resp.StatusCode)
	}

	var out FulfillResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding factory response: %w", err)
	}
	return &out, nil
}
