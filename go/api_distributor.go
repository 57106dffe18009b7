package wasteserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	distributorhttpmapper "github.com/Apurer/wastewise-api/internal/domains/distributors/adapters/http/mapper"
	distributorports "github.com/Apurer/wastewise-api/internal/domains/distributors/ports"
)

// DistributorAPI wires HTTP transport with the distributor directory.
type DistributorAPI struct {
	service distributorports.Service
}

func NewDistributorAPI(service distributorports.Service) DistributorAPI {
	return DistributorAPI{service: service}
}

// Post /api/distributors/register
// Register a distributor
func (api *DistributorAPI) Register(c *gin.Context) {
	var payload RegisterDistributorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	input := distributorhttpmapper.ToRegisterInput(distributorhttpmapper.Registration{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
		Address:  payload.Address,
	})
	created, err := api.service.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromTransportDistributor(distributorhttpmapper.FromDomainDistributor(created)))
}

// Post /api/distributors/login
// Log a distributor in and issue a session token
func (api *DistributorAPI) Login(c *gin.Context) {
	var payload LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	result, err := api.service.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{
		Token:       result.Token,
		ExpiresAt:   result.ExpiresAt,
		Distributor: fromTransportDistributor(distributorhttpmapper.FromDomainDistributor(result.Distributor)),
	})
}

// Post /api/distributors/logout
// End the session named by the bearer token
func (api *DistributorAPI) Logout(c *gin.Context) {
	if err := api.service.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

// Get /api/distributors/me
// Resolve the bearer token into the signed-in distributor's session
func (api *DistributorAPI) Me(c *gin.Context) {
	session, err := api.service.Authenticate(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{
		DistributorId: session.DistributorID,
		Email:         session.Email,
		ExpiresAt:     session.ExpiresAt,
	})
}

// Get /api/distributors
// List distributors without credentials
func (api *DistributorAPI) GetAll(c *gin.Context) {
	list, err := api.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	result := make([]Distributor, 0, len(list))
	for _, d := range distributorhttpmapper.FromDomainDistributors(list) {
		result = append(result, fromTransportDistributor(d))
	}
	c.JSON(http.StatusOK, result)
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return header
}

func fromTransportDistributor(d distributorhttpmapper.Distributor) Distributor {
	return Distributor{
		Id:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Address:   d.Address,
		CreatedAt: d.CreatedAt,
	}
}
