package model

type MidtransConfig struct {
	ServerKey   string
	ClientKey   string
	SnapBaseURL string // https://app.sandbox.midtrans.com/snap/v1
	CoreBaseURL string // https://api.sandbox.midtrans.com/v2
	FrontendURL string // callback landing pages
}

type SnapTransactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

type SnapItemDetail struct {
	ID       string `json:"id"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

type SnapCustomerDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type SnapCallbacks struct {
	Finish  string `json:"finish"`
	Error   string `json:"error"`
	Pending string `json:"pending"`
}

type SnapExpiry struct {
	Unit     string `json:"unit"`
	Duration int    `json:"duration"`
}

type SnapRequest struct {
	TransactionDetails SnapTransactionDetails `json:"transaction_details"`
	ItemDetails        []SnapItemDetail       `json:"item_details"`
	CustomerDetails    SnapCustomerDetails    `json:"customer_details"`
	Callbacks          SnapCallbacks          `json:"callbacks"`
	Expiry             SnapExpiry             `json:"expiry"`
}

type SnapResponse struct {
	Token         string   `json:"token"`
	RedirectURL   string   `json:"redirect_url"`
	ErrorMessages []string `json:"error_messages,omitempty"`
}

// MidtransNotification is the webhook payload posted by the gateway.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	SignatureKey      string `json:"signature_key"`
	FraudStatus       string `json:"fraud_status,omitempty"`
}

// TransactionStatusResponse is the core-API status query result.
type TransactionStatusResponse struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	StatusMessage     string `json:"status_message"`
}
