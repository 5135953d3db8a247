package handler

import (
	"bytes"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"santaratrip/helper"
	"santaratrip/model"
	"time"

	"github.com/joho/godotenv"
)

// Midtrans Snap/Core API client
type Midtrans struct {
	Config model.MidtransConfig
	Client *http.Client
}

func NewMidtrans() *Midtrans {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	snapBase := "https://app.sandbox.midtrans.com/snap/v1"
	coreBase := "https://api.sandbox.midtrans.com/v2"
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		snapBase = "https://app.midtrans.com/snap/v1"
		coreBase = "https://api.midtrans.com/v2"
	}

	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}

	return &Midtrans{
		Config: model.MidtransConfig{
			ServerKey:   os.Getenv("MIDTRANS_SERVER_KEY"),
			ClientKey:   os.Getenv("MIDTRANS_CLIENT_KEY"),
			SnapBaseURL: snapBase,
			CoreBaseURL: coreBase,
			FrontendURL: frontend,
		},
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (m *Midtrans) authHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(m.Config.ServerKey+":"))
}

// BuildSnapRequest assembles the hosted-checkout request for an order.
// Hotel line items carry quantity = rooms x nights so the gateway receipt
// stays readable; the order itself keeps room count only. Nights come
// from the same rounding as the pricing engine, so the gateway gross
// always equals the order total.
func (m *Midtrans) BuildSnapRequest(order *model.Order, user *model.User, itemName string) model.SnapRequest {
	nights := 1
	if order.OrderType == model.OrderTypeHotel {
		nights = helper.DurationDays(order.StartDate, order.EndDate)
		if nights < 1 {
			nights = 1
		}
	}

	items := make([]model.SnapItemDetail, 0, len(order.Items))
	for _, item := range order.Items {
		detail := model.SnapItemDetail{
			ID:       fmt.Sprintf("%d", item.ItemID),
			Price:    item.Price,
			Quantity: item.Quantity,
			Name:     itemName,
		}
		if order.OrderType == model.OrderTypeHotel {
			detail.Quantity = item.Quantity * nights
			detail.Name = fmt.Sprintf("%s (%d malam)", itemName, nights)
		}
		items = append(items, detail)
	}

	var gross int64
	for _, item := range items {
		gross += item.Price * int64(item.Quantity)
	}

	firstName, lastName := splitName(user.Name)

	return model.SnapRequest{
		TransactionDetails: model.SnapTransactionDetails{
			OrderID:     order.PublicCode,
			GrossAmount: gross,
		},
		ItemDetails: items,
		CustomerDetails: model.SnapCustomerDetails{
			FirstName: firstName,
			LastName:  lastName,
			Email:     user.Email,
			Phone:     user.Phone,
		},
		Callbacks: model.SnapCallbacks{
			Finish:  m.Config.FrontendURL + "/payment/success",
			Error:   m.Config.FrontendURL + "/payment/error",
			Pending: m.Config.FrontendURL + "/payment/pending",
		},
		Expiry: model.SnapExpiry{
			Unit:     "day",
			Duration: 1,
		},
	}
}

// CreateTransaction exchanges a snap request for a checkout token and
// hosted redirect URL.
func (m *Midtrans) CreateTransaction(req model.SnapRequest) (*model.SnapResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, m.Config.SnapBaseURL+"/transactions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", m.authHeader())

	resp, err := m.Client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var snapResp model.SnapResponse
	if err := json.NewDecoder(resp.Body).Decode(&snapResp); err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 || snapResp.Token == "" {
		return nil, fmt.Errorf("midtrans snap error (%d): %v", resp.StatusCode, snapResp.ErrorMessages)
	}
	return &snapResp, nil
}

// TransactionStatus queries the core API for the authoritative state of
// a transaction.
func (m *Midtrans) TransactionStatus(orderCode string) (*model.TransactionStatusResponse, error) {
	httpReq, err := http.NewRequest(http.MethodGet, m.Config.CoreBaseURL+"/"+orderCode+"/status", nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", m.authHeader())

	resp, err := m.Client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var status model.TransactionStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("midtrans status error (%d): %s", resp.StatusCode, status.StatusMessage)
	}
	return &status, nil
}

// VerifySignature checks the webhook signature_key:
// sha512(order_id + status_code + gross_amount + serverKey).
func (m *Midtrans) VerifySignature(n model.MidtransNotification) bool {
	h := sha512.New()
	h.Write([]byte(n.OrderID + n.StatusCode + n.GrossAmount + m.Config.ServerKey))
	expected := hex.EncodeToString(h.Sum(nil))
	return n.SignatureKey == expected
}

func splitName(full string) (string, string) {
	first, last := full, ""
	for i := 0; i < len(full); i++ {
		if full[i] == ' ' {
			first, last = full[:i], full[i+1:]
			break
		}
	}
	if first == "" {
		first = "Customer"
	}
	return first, last
}
