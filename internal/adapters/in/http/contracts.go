package http

import "time"

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one requested line in an order creation request.
// Dates are optional and must come in pairs; prices are never accepted from
// clients, rates are snapshotted from the catalog server-side.
type NewOrderItem struct {
	ProductID string     `json:"productId"`
	Quantity  int        `json:"quantity"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// NewOrder is the order creation request body.
type NewOrder struct {
	UserID   string         `json:"userId"`
	Items    []NewOrderItem `json:"items"`
	Untaxed  float64        `json:"untaxedAmount"`
	Tax      float64        `json:"taxAmount"`
	Discount float64        `json:"discountAmount"`
	Shipping float64        `json:"shippingCost"`
	Total    float64        `json:"totalAmount"`
	Note     string         `json:"note,omitempty"`
}

// PayOrder is the payment request body.
type PayOrder struct {
	Method string `json:"method"`
}

// CreateInvoice is the invoice creation request body.
type CreateInvoice struct {
	Method string `json:"method,omitempty"`
}

// OrderItem is one order line in responses.
type OrderItem struct {
	ID        string     `json:"id"`
	ProductID string     `json:"productId"`
	Quantity  int        `json:"quantity"`
	Price     float64    `json:"price"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// Order is the order representation in responses.
type Order struct {
	ID          string      `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	UserID      string      `json:"userId"`
	Status      string      `json:"status"`
	Untaxed     float64     `json:"untaxedAmount"`
	Tax         float64     `json:"taxAmount"`
	Discount    float64     `json:"discountAmount"`
	Shipping    float64     `json:"shippingCost"`
	Total       float64     `json:"totalAmount"`
	LateFee     float64     `json:"lateFee"`
	Note        string      `json:"note,omitempty"`
	Items       []OrderItem `json:"items"`
}

// Invoice is the invoice representation in responses.
type Invoice struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"orderId"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	Method      string     `json:"method,omitempty"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
}

// Availability is the availability check response.
type Availability struct {
	ProductID  string `json:"productId"`
	TotalStock int    `json:"totalStock"`
	Reserved   int    `json:"reserved"`
	Available  int    `json:"available"`
}
