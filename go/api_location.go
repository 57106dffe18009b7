package wasteserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	locationapp "github.com/Apurer/wastewise-api/internal/domains/locations/application"
)

// LocationAPI serves the district and city reference table.
type LocationAPI struct {
	service *locationapp.Service
}

func NewLocationAPI(service *locationapp.Service) LocationAPI {
	return LocationAPI{service: service}
}

// Get /api/locations/districts
func (api *LocationAPI) GetDistricts(c *gin.Context) {
	c.JSON(http.StatusOK, api.service.DistrictOptions())
}

// Get /api/locations/districts/:district/cities
func (api *LocationAPI) GetCitiesByDistrict(c *gin.Context) {
	cities, err := api.service.CitiesByDistrict(c.Param("district"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// Get /api/locations/validate
// Check that a city belongs to a district
func (api *LocationAPI) ValidateLocation(c *gin.Context) {
	district, city := c.Query("district"), c.Query("city")
	if err := api.service.ValidateLocation(district, city); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, LocationValidation{Valid: true, District: district, City: city})
}
