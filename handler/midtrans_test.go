package handler

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"santaratrip/helper"
	"santaratrip/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMidtrans(serverKey string) *Midtrans {
	return &Midtrans{
		Config: model.MidtransConfig{
			ServerKey:   serverKey,
			SnapBaseURL: "https://app.sandbox.midtrans.com/snap/v1",
			CoreBaseURL: "https://api.sandbox.midtrans.com/v2",
			FrontendURL: "http://localhost:3000",
		},
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

func hotelOrder() (*model.Order, *model.User) {
	start, _ := time.Parse("2006-01-02", "2026-09-01")
	end, _ := time.Parse("2006-01-02", "2026-09-04")

	order := &model.Order{
		PublicCode: "ORD-a1b2c3d4",
		OrderType:  model.OrderTypeHotel,
		Items: []model.OrderItem{
			{ItemID: 12, Quantity: 2, Price: 500_000},
		},
		TotalPrice: 3_000_000,
		StartDate:  start,
		EndDate:    end,
	}
	user := &model.User{
		Name:  "Budi Santoso",
		Email: "budi@example.com",
		Phone: "081234567890",
	}
	return order, user
}

func TestBuildSnapRequestHotel(t *testing.T) {
	m := testMidtrans("sk-test")
	order, user := hotelOrder()

	req := m.BuildSnapRequest(order, user, "Hotel Nusa Indah - Deluxe")

	assert.Equal(t, "ORD-a1b2c3d4", req.TransactionDetails.OrderID)

	// 2 rooms x 3 nights on the line item, gross matches the order total
	require.Len(t, req.ItemDetails, 1)
	assert.Equal(t, 6, req.ItemDetails[0].Quantity)
	assert.Equal(t, int64(500_000), req.ItemDetails[0].Price)
	assert.Equal(t, "Hotel Nusa Indah - Deluxe (3 malam)", req.ItemDetails[0].Name)
	assert.Equal(t, int64(3_000_000), req.TransactionDetails.GrossAmount)

	assert.Equal(t, "Budi", req.CustomerDetails.FirstName)
	assert.Equal(t, "Santoso", req.CustomerDetails.LastName)
	assert.Equal(t, "budi@example.com", req.CustomerDetails.Email)

	assert.Equal(t, "http://localhost:3000/payment/success", req.Callbacks.Finish)
	assert.Equal(t, "day", req.Expiry.Unit)
	assert.Equal(t, 1, req.Expiry.Duration)
}

// Partial-day stays must price identically on the order and on the
// gateway receipt: both round nights up.
func TestBuildSnapRequestPartialDayRange(t *testing.T) {
	m := testMidtrans("sk-test")

	start, _ := time.Parse(time.RFC3339, "2026-09-01T18:00:00Z")
	end, _ := time.Parse(time.RFC3339, "2026-09-03T10:00:00Z")

	total, err := helper.CalculateTotalPrice(model.OrderTypeHotel, 500_000, 1, start, end)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), total) // 2 nights, rounded up

	order := &model.Order{
		PublicCode: "ORD-c9d8e7f6",
		OrderType:  model.OrderTypeHotel,
		Items: []model.OrderItem{
			{ItemID: 12, Quantity: 1, Price: 500_000},
		},
		TotalPrice: total,
		StartDate:  start,
		EndDate:    end,
	}
	user := &model.User{Name: "Budi Santoso", Email: "budi@example.com"}

	req := m.BuildSnapRequest(order, user, "Hotel Nusa Indah - Deluxe")

	require.Len(t, req.ItemDetails, 1)
	assert.Equal(t, 2, req.ItemDetails[0].Quantity)
	assert.Equal(t, order.TotalPrice, req.TransactionDetails.GrossAmount)
}

func TestBuildSnapRequestEvent(t *testing.T) {
	m := testMidtrans("sk-test")
	visit, _ := time.Parse("2006-01-02", "2026-12-20")

	order := &model.Order{
		PublicCode: "ORD-e5f6a7b8",
		OrderType:  model.OrderTypeEvent,
		Items: []model.OrderItem{
			{ItemID: 3, Quantity: 4, Price: 250_000},
		},
		TotalPrice: 1_000_000,
		StartDate:  visit,
		EndDate:    visit,
	}
	user := &model.User{Name: "Siti", Email: "siti@example.com"}

	req := m.BuildSnapRequest(order, user, "Denpasar Festival")

	require.Len(t, req.ItemDetails, 1)
	assert.Equal(t, 4, req.ItemDetails[0].Quantity)
	assert.Equal(t, "Denpasar Festival", req.ItemDetails[0].Name)
	assert.Equal(t, int64(1_000_000), req.TransactionDetails.GrossAmount)

	// single-word name, no last name to split off
	assert.Equal(t, "Siti", req.CustomerDetails.FirstName)
	assert.Equal(t, "", req.CustomerDetails.LastName)
}

func TestCreateTransaction(t *testing.T) {
	var got model.SnapRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transactions", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("Authorization"))

		json.NewDecoder(r.Body).Decode(&got)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(model.SnapResponse{
			Token:       "snap-token-123",
			RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/snap-token-123",
		})
	}))
	defer server.Close()

	m := testMidtrans("sk-test")
	m.Config.SnapBaseURL = server.URL

	order, user := hotelOrder()
	resp, err := m.CreateTransaction(m.BuildSnapRequest(order, user, "Hotel Nusa Indah - Deluxe"))

	require.NoError(t, err)
	assert.Equal(t, "snap-token-123", resp.Token)
	assert.Contains(t, resp.RedirectURL, "snap-token-123")
	assert.Equal(t, "ORD-a1b2c3d4", got.TransactionDetails.OrderID)
}

func TestCreateTransactionGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(model.SnapResponse{
			ErrorMessages: []string{"Access denied due to unauthorized transaction"},
		})
	}))
	defer server.Close()

	m := testMidtrans("wrong-key")
	m.Config.SnapBaseURL = server.URL

	order, user := hotelOrder()
	_, err := m.CreateTransaction(m.BuildSnapRequest(order, user, "Hotel Nusa Indah - Deluxe"))
	assert.Error(t, err)
}

func TestTransactionStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ORD-a1b2c3d4/status", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(model.TransactionStatusResponse{
			OrderID:           "ORD-a1b2c3d4",
			TransactionStatus: "settlement",
			StatusCode:        "200",
			PaymentType:       "bank_transfer",
		})
	}))
	defer server.Close()

	m := testMidtrans("sk-test")
	m.Config.CoreBaseURL = server.URL

	status, err := m.TransactionStatus("ORD-a1b2c3d4")
	require.NoError(t, err)
	assert.Equal(t, "settlement", status.TransactionStatus)
	assert.Equal(t, "bank_transfer", status.PaymentType)
}

func TestVerifySignature(t *testing.T) {
	m := testMidtrans("sk-test")

	n := model.MidtransNotification{
		OrderID:           "ORD-a1b2c3d4",
		TransactionStatus: "settlement",
		StatusCode:        "200",
		GrossAmount:       "3000000.00",
	}

	h := sha512.New()
	h.Write([]byte(n.OrderID + n.StatusCode + n.GrossAmount + "sk-test"))
	n.SignatureKey = hex.EncodeToString(h.Sum(nil))

	assert.True(t, m.VerifySignature(n))

	n.SignatureKey = "forged"
	assert.False(t, m.VerifySignature(n))

	// a signature built with a different server key must not pass
	h = sha512.New()
	h.Write([]byte(n.OrderID + n.StatusCode + n.GrossAmount + "other-key"))
	n.SignatureKey = hex.EncodeToString(h.Sum(nil))
	assert.False(t, m.VerifySignature(n))
}

func TestSplitName(t *testing.T) {
	first, last := splitName("Budi Santoso")
	assert.Equal(t, "Budi", first)
	assert.Equal(t, "Santoso", last)

	first, last = splitName("Siti")
	assert.Equal(t, "Siti", first)
	assert.Equal(t, "", last)

	first, last = splitName("Putu Ayu Lestari")
	assert.Equal(t, "Putu", first)
	assert.Equal(t, "Ayu Lestari", last)

	first, _ = splitName("")
	assert.Equal(t, "Customer", first)
}
