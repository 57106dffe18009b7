package wasteserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the API routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		router.Handle(route.Method, route.Pattern, route.HandlerFunc)
	}
	return router
}

// DefaultHandleFunc answers routes whose handler is not wired.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

// ApiHandleFunctions groups the handlers of every API section.
type ApiHandleFunctions struct {
	// Routes for the order API part.
	OrderAPI OrderAPI
	// Routes for the distributor API part.
	DistributorAPI DistributorAPI
	// Routes for the location API part.
	LocationAPI LocationAPI
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{"Health", http.MethodGet, "/health", Health},

		{"CreateOrder", http.MethodPost, "/api/orders", handleFunctions.OrderAPI.CreateOrder},
		{"GetAllOrders", http.MethodGet, "/api/orders", handleFunctions.OrderAPI.GetAllOrders},
		{"GetOrdersByDistributor", http.MethodGet, "/api/orders/distributor/:email", handleFunctions.OrderAPI.GetOrdersByDistributor},
		{"GetOrderById", http.MethodGet, "/api/orders/:orderId", handleFunctions.OrderAPI.GetOrderById},
		{"UpdateOrderStatus", http.MethodPatch, "/api/orders/:orderId/status", handleFunctions.OrderAPI.UpdateOrderStatus},
		{"DeleteOrder", http.MethodDelete, "/api/orders/:orderId", handleFunctions.OrderAPI.DeleteOrder},

		{"RegisterDistributor", http.MethodPost, "/api/distributors/register", handleFunctions.DistributorAPI.Register},
		{"LoginDistributor", http.MethodPost, "/api/distributors/login", handleFunctions.DistributorAPI.Login},
		{"LogoutDistributor", http.MethodPost, "/api/distributors/logout", handleFunctions.DistributorAPI.Logout},
		{"GetAllDistributors", http.MethodGet, "/api/distributors", handleFunctions.DistributorAPI.GetAll},
		{"GetCurrentDistributorSession", http.MethodGet, "/api/distributors/me", handleFunctions.DistributorAPI.Me},

		{"GetDistricts", http.MethodGet, "/api/locations/districts", handleFunctions.LocationAPI.GetDistricts},
		{"GetCitiesByDistrict", http.MethodGet, "/api/locations/districts/:district/cities", handleFunctions.LocationAPI.GetCitiesByDistrict},
		{"ValidateLocation", http.MethodGet, "/api/locations/validate", handleFunctions.LocationAPI.ValidateLocation},
	}
}

// Get /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
