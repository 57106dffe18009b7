package wasteserver

import "time"

// Order is the wire shape of a collection order. ID is emitted twice because browser clients
// read `_id`.
type Order struct {
	MongoID          string    `json:"_id"`
	Id               string    `json:"id"`
	Company          string    `json:"company"`
	DistributorName  string    `json:"distributorName"`
	DistributorEmail string    `json:"distributorEmail"`
	OrderTypes       []string  `json:"orderTypes"`
	Quantity         float64   `json:"quantity"`
	ScheduledDate    time.Time `json:"scheduledDate"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CreateOrderRequest is the body of POST /api/orders. ScheduledDate accepts RFC 3339 or YYYY-MM-DD.
type CreateOrderRequest struct {
	Company          string   `json:"company"`
	DistributorName  string   `json:"distributorName"`
	DistributorEmail string   `json:"distributorEmail"`
	OrderTypes       []string `json:"orderTypes"`
	Quantity         float64  `json:"quantity"`
	ScheduledDate    string   `json:"scheduledDate"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/orders/:orderId/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
