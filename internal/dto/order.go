package dto

import "time"

type PlaceOrderRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type OrderResponse struct {
	ID         uint      `json:"id"`
	ProductID  int       `json:"productId"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type OrderErrorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
