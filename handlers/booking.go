package handlers

import (
	"net/http"

	"unicare/middleware"
	"unicare/models"
	"unicare/services/booking"
	"unicare/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves appointment booking and lifecycle transitions.
type BookingHandler struct {
	Bookings booking.BookingService
}

func (h *BookingHandler) Book(c *gin.Context) {
	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	appointment, err := h.Bookings.Book(middleware.CallerID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func (h *BookingHandler) MyAppointments(c *gin.Context) {
	appointments, err := h.Bookings.GetForPatient(middleware.CallerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	err := h.Bookings.Cancel(c.Param("id"), middleware.CallerID(c), middleware.CallerIsAdmin(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment cancelled"})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	if err := h.Bookings.Complete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment completed"})
}

// DailyBookings is the admin report of all appointments on one date.
func (h *BookingHandler) DailyBookings(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "date query parameter is required")
		return
	}
	appointments, err := h.Bookings.DailyBookings(date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "appointments": appointments, "count": len(appointments)})
}
