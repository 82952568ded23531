package factory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFulfill(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq FulfillRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(FulfillResponse{
			JWT:       "eyJhbGciOiJSUzI1NiJ9.payload.sig",
			ReportURL: "https://factory.test/report/1",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key")
	resp, err := c.Fulfill(context.Background(), FulfillRequest{
		DinerID:     42,
		OrderNumber: "PZA-ABCDEFGH",
		StoreID:     7,
		Items:       []FulfillItem{{MenuItemID: 1, Description: "Veggie", PriceCents: 38}},
	})
	if err != nil {
		t.Fatalf("Fulfill: %v", err)
	}

	if gotPath != "/api/order" {
		t.Errorf("path = %q, want /api/order", gotPath)
	}
	if gotAuth != "Bearer secret-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.OrderNumber != "PZA-ABCDEFGH" {
		t.Errorf("forwarded order number = %q", gotReq.OrderNumber)
	}
	if resp.JWT == "" {
		t.Error("expected a verification JWT")
	}
	if resp.ReportURL != "https://factory.test/report/1" {
		t.Errorf("ReportURL = %q", resp.ReportURL)
	}
}

func TestFulfillNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key")
	if _, err := c.Fulfill(context.Background(), FulfillRequest{}); err == nil {
		t.Error("expected an error on a non-200 response")
	}
}

func TestFulfillBadResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key")
	if _, err := c.Fulfill(context.Background(), FulfillRequest{}); err == nil {
		t.Error("expected an error on an undecodable response")
	}
}
