package http

// Request and response bodies of the order API. Money amounts travel as
// decimal strings to avoid float rounding on the wire.

// MoneyJSON is a monetary value on the wire.
type MoneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// OrderItemJSON is one product with its unit cost.
type OrderItemJSON struct {
	ProductID string    `json:"productId"`
	Cost      MoneyJSON `json:"cost"`
}

// CreateOrderJSON is the body of POST /orders and PUT /orders/{orderId}.
type CreateOrderJSON struct {
	ClientID string          `json:"clientId"`
	Items    []OrderItemJSON `json:"items"`
}

// OrderItemsJSON is the body of PUT /orders/{orderId}/items.
type OrderItemsJSON struct {
	Items []OrderItemJSON `json:"items"`
}

// PayOrderJSON is the body of POST /orders/{orderId}/payment.
type PayOrderJSON struct {
	ClientID string    `json:"clientId"`
	Amount   MoneyJSON `json:"amount"`
}

// OrderCreatedJSON confirms order creation.
type OrderCreatedJSON struct {
	OrderID string `json:"orderId"`
}

// OrderJSON is the response of GET /orders/{orderId}.
type OrderJSON struct {
	OrderID  string          `json:"orderId"`
	ClientID string          `json:"clientId"`
	Status   string          `json:"status"`
	Items    []OrderItemJSON `json:"items"`
	Total    MoneyJSON       `json:"total"`
}

// ErrorJSON is the error body returned by all endpoints.
type ErrorJSON struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
