package handlers

import (
	"net/http"

	"unicare/models"
	"unicare/services/scheduling"
	"unicare/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves templates, holidays, leaves and generation.
type ScheduleHandler struct {
	Schedules scheduling.ScheduleService
}

func (h *ScheduleHandler) CreateTemplate(c *gin.Context) {
	var req models.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	tmpl, err := h.Schedules.CreateTemplate(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tmpl)
}

func (h *ScheduleHandler) ListTemplates(c *gin.Context) {
	doctorID := c.Query("doctor_id")
	if doctorID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "doctor_id query parameter is required")
		return
	}
	templates, err := h.Schedules.GetTemplatesByDoctor(doctorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *ScheduleHandler) DeleteTemplate(c *gin.Context) {
	if err := h.Schedules.DeleteTemplate(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "template deleted"})
}

// Generate materializes slots for a doctor over a date range.
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req models.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	result, err := h.Schedules.GenerateSchedule(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ScheduleHandler) UpsertHoliday(c *gin.Context) {
	var req models.HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	holiday, err := h.Schedules.UpsertHoliday(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, holiday)
}

func (h *ScheduleHandler) ListHolidays(c *gin.Context) {
	holidays, err := h.Schedules.ListHolidays()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, holidays)
}

func (h *ScheduleHandler) DeleteHoliday(c *gin.Context) {
	if err := h.Schedules.DeleteHoliday(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "holiday deleted"})
}

func (h *ScheduleHandler) RequestLeave(c *gin.Context) {
	var req models.LeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	leave, err := h.Schedules.RequestLeave(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, leave)
}

func (h *ScheduleHandler) ListLeaves(c *gin.Context) {
	leaves, err := h.Schedules.ListLeaves(c.Query("doctor_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, leaves)
}

// DecideLeave approves or rejects a pending leave request.
func (h *ScheduleHandler) DecideLeave(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if err := h.Schedules.DecideLeave(c.Param("id"), req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "leave " + req.Status})
}
