package wasteserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/Apurer/wastewise-api/internal/domains/orders/adapters/http/mapper"
	orderdomain "github.com/Apurer/wastewise-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/wastewise-api/internal/domains/orders/ports"
)

// IdempotencyKeyHeader deduplicates order creation when durable workflows are enabled.
const IdempotencyKeyHeader = "Idempotency-Key"

const dateOnlyLayout = "2006-01-02"

var errInvalidScheduledDate = errors.New("scheduledDate must be an RFC 3339 timestamp or a YYYY-MM-DD date")

// OrderAPI wires HTTP transport with the order workflow service and its orchestrator.
type OrderAPI struct {
	service   orderports.Service
	workflows orderports.WorkflowOrchestrator
	location  *time.Location
}

// NewOrderAPI creates an OrderAPI. Date-only scheduled dates are read in loc, or time.Local when nil.
func NewOrderAPI(service orderports.Service, workflows orderports.WorkflowOrchestrator, loc *time.Location) OrderAPI {
	if loc == nil {
		loc = time.Local
	}
	return OrderAPI{service: service, workflows: workflows, location: loc}
}

// Post /api/orders
// Create a collection order
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	scheduled, err := parseScheduledDate(payload.ScheduledDate, api.location)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	transport := orderhttpmapper.Order{
		Company:          payload.Company,
		DistributorName:  payload.DistributorName,
		DistributorEmail: payload.DistributorEmail,
		OrderTypes:       payload.OrderTypes,
		Quantity:         payload.Quantity,
		ScheduledDate:    scheduled,
	}
	input := orderhttpmapper.ToCreateInput(transport, strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader)))
	created, err := api.createOrder(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrder(created))
}

func (api *OrderAPI) createOrder(ctx context.Context, input orderports.CreateOrderInput) (*orderdomain.Order, error) {
	if api.workflows != nil {
		return api.workflows.CreateOrder(ctx, input)
	}
	return api.service.CreateOrder(ctx, input)
}

// Get /api/orders
// List every order by scheduled date
func (api *OrderAPI) GetAllOrders(c *gin.Context) {
	orders, err := api.service.GetAllOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrders(orders))
}

// Get /api/orders/distributor/:email
// List the orders of one distributor
func (api *OrderAPI) GetOrdersByDistributor(c *gin.Context) {
	orders, err := api.service.GetOrdersByDistributor(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrders(orders))
}

// Get /api/orders/:orderId
// Find order by ID
func (api *OrderAPI) GetOrderById(c *gin.Context) {
	order, err := api.service.GetOrderByID(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrder(order))
}

// Patch /api/orders/:orderId/status
// Overwrite the order status
func (api *OrderAPI) UpdateOrderStatus(c *gin.Context) {
	var payload UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	order, err := api.service.UpdateOrderStatus(c.Request.Context(), c.Param("orderId"), payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrder(order))
}

// Delete /api/orders/:orderId
// Delete order by ID
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	if err := api.service.DeleteOrder(c.Request.Context(), c.Param("orderId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Order deleted successfully"})
}

// parseScheduledDate accepts RFC 3339 timestamps and bare dates. An empty value yields the zero
// time so the service reports the field as missing.
func parseScheduledDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dateOnlyLayout, raw, loc); err == nil {
		return t, nil
	}
	return time.Time{}, errInvalidScheduledDate
}

func toOrder(order *orderdomain.Order) Order {
	return fromTransportOrder(orderhttpmapper.FromDomainOrder(order))
}

func toOrders(orders []*orderdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, t := range orderhttpmapper.FromDomainOrders(orders) {
		result = append(result, fromTransportOrder(t))
	}
	return result
}

func fromTransportOrder(t orderhttpmapper.Order) Order {
	return Order{
		MongoID:          t.ID,
		Id:               t.ID,
		Company:          t.Company,
		DistributorName:  t.DistributorName,
		DistributorEmail: t.DistributorEmail,
		OrderTypes:       t.OrderTypes,
		Quantity:         t.Quantity,
		ScheduledDate:    t.ScheduledDate,
		Status:           t.Status,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
