package handlers

import (
	"errors"
	"net/http"

	"unicare/services/booking"
	"unicare/services/catalog"
	"unicare/services/doctor"
	"unicare/services/feedback"
	"unicare/services/records"
	"unicare/services/scheduling"
	userSvc "unicare/services/user"
	"unicare/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps known service error types onto HTTP statuses.
// Anything unrecognized is a 500.
func respondServiceError(c *gin.Context, err error) {
	var (
		schedValidation *scheduling.ValidationError
		schedNotFound   *scheduling.NotFoundError
		slotUnavailable *booking.SlotNotAvailableError
		slotBooked      *booking.SlotAlreadyBookedError
		bookNotFound    *booking.NotFoundError
		badCredentials  *userSvc.InvalidCredentialsError
		duplicateUser   *userSvc.DuplicateAccountError
		userNotFound    *userSvc.NotFoundError
		doctorNotFound  *doctor.NotFoundError
		catValidation   *catalog.ValidationError
		catNotFound     *catalog.NotFoundError
		noStock         *catalog.InsufficientStockError
		fbValidation    *feedback.ValidationError
		recordsDenied   *records.AccessDeniedError
	)

	switch {
	case errors.As(err, &schedValidation),
		errors.As(err, &catValidation),
		errors.As(err, &fbValidation):
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
	case errors.As(err, &schedNotFound),
		errors.As(err, &bookNotFound),
		errors.As(err, &userNotFound),
		errors.As(err, &doctorNotFound),
		errors.As(err, &catNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.As(err, &slotUnavailable),
		errors.As(err, &slotBooked),
		errors.As(err, &noStock):
		utils.JSONError(c, http.StatusConflict, "Conflict", err.Error())
	case errors.As(err, &badCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", err.Error())
	case errors.As(err, &duplicateUser):
		utils.JSONError(c, http.StatusConflict, "Account exists", err.Error())
	case errors.As(err, &recordsDenied):
		utils.JSONError(c, http.StatusForbidden, "Access denied", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}
