package wasteserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	distributorapp "github.com/Apurer/wastewise-api/internal/domains/distributors/application"
	distributorports "github.com/Apurer/wastewise-api/internal/domains/distributors/ports"
	locationapp "github.com/Apurer/wastewise-api/internal/domains/locations/application"
	orderapp "github.com/Apurer/wastewise-api/internal/domains/orders/application"
	orderports "github.com/Apurer/wastewise-api/internal/domains/orders/ports"
	apierrors "github.com/Apurer/wastewise-api/internal/shared/errors"
)

// responder maps application errors onto problem responses. Unmatched errors fall through to the
// storage classifier and finally to 500.
var responder = apierrors.NewChainedResponder("",
	mapOrderError,
	mapDistributorError,
	mapLocationError,
)

func respondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

// respondBadRequest reports a body or parameter that could not be decoded.
func respondBadRequest(c *gin.Context, detail string) {
	responder.BadRequest(c, detail)
}

func mapOrderError(err error) (apierrors.ProblemDetail, bool) {
	var validation *orderapp.ValidationError
	switch {
	case errors.As(err, &validation):
		message := "Missing required fields"
		switch {
		case errors.Is(validation.Reason, orderports.ErrInvalidID):
			message = "Invalid order ID format"
		case errors.Is(validation.Reason, orderapp.ErrMissingDistributorEmail):
			message = "Distributor email is required"
		}
		return apierrors.NewValidationProblem(message, validation.Fields), true
	case errors.Is(err, orderports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail("Order not found"), true
	case errors.Is(err, orderapp.ErrScheduledInPast):
		return apierrors.ErrValidation.WithDetail("Scheduled date cannot be in the past"), true
	case errors.Is(err, orderapp.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapDistributorError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, distributorapp.ErrConflict):
		return apierrors.ErrConflict.WithDetail("Distributor with this email already exists"), true
	case errors.Is(err, distributorports.ErrSessionNotFound):
		return apierrors.ErrUnauthorized.WithDetail("Session is invalid or has expired"), true
	case errors.Is(err, distributorapp.ErrAuthentication):
		return apierrors.ErrUnauthorized.WithDetail("Invalid email or password"), true
	case errors.Is(err, distributorapp.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapLocationError(err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, locationapp.ErrInvalidLocation) {
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}
