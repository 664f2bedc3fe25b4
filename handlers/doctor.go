package handlers

import (
	"net/http"

	"unicare/models"
	doctorSvc "unicare/services/doctor"
	"unicare/utils"

	"github.com/gin-gonic/gin"
)

// DoctorHandler serves doctor profiles and availability.
type DoctorHandler struct {
	Doctors doctorSvc.DoctorService
}

func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.Doctors.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	d, err := h.Doctors.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// Availability returns the generated slot map, narrowed by the optional
// ?date=YYYY-MM-DD query.
func (h *DoctorHandler) Availability(c *gin.Context) {
	schedule, err := h.Doctors.Availability(c.Param("id"), c.Query("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor_id": c.Param("id"), "schedule": schedule})
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	created, err := h.Doctors.Create(&d)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	d.ID = c.Param("id")
	if err := h.Doctors.Update(&d); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	if err := h.Doctors.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "doctor deleted"})
}

func (h *DoctorHandler) UpdateStatus(c *gin.Context) {
	var req models.DoctorStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if err := h.Doctors.UpdateStatus(c.Param("id"), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}
