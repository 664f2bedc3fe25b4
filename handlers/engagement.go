package handlers

import (
	"net/http"

	"unicare/middleware"
	"unicare/models"
	feedbackSvc "unicare/services/feedback"
	"unicare/services/notification"
	recordsSvc "unicare/services/records"
	userSvc "unicare/services/user"
	"unicare/utils"

	"github.com/gin-gonic/gin"
)

// EngagementHandler serves campaigns, notifications, feedback, medical
// records and patient administration.
type EngagementHandler struct {
	Notifications notification.NotificationService
	Feedback      feedbackSvc.FeedbackService
	Records       recordsSvc.RecordService
	Users         userSvc.UserService
}

func (h *EngagementHandler) CreateCampaign(c *gin.Context) {
	var req models.CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	campaign, err := h.Notifications.CreateCampaign(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

func (h *EngagementHandler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.Notifications.ListCampaigns()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// LaunchCampaign activates a draft campaign and queues its fan-out.
func (h *EngagementHandler) LaunchCampaign(c *gin.Context) {
	if err := h.Notifications.LaunchCampaign(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "campaign launched"})
}

func (h *EngagementHandler) DeleteCampaign(c *gin.Context) {
	if err := h.Notifications.DeleteCampaign(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "campaign deleted"})
}

func (h *EngagementHandler) MyNotifications(c *gin.Context) {
	notifications, err := h.Notifications.ListForUser(middleware.CallerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *EngagementHandler) MarkNotificationRead(c *gin.Context) {
	if err := h.Notifications.MarkRead(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification read"})
}

func (h *EngagementHandler) SubmitFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	feedback, err := h.Feedback.Submit(middleware.CallerID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

func (h *EngagementHandler) ListFeedback(c *gin.Context) {
	feedback, err := h.Feedback.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

func (h *EngagementHandler) DoctorRating(c *gin.Context) {
	rating, err := h.Feedback.DoctorRating(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (h *EngagementHandler) CreateRecord(c *gin.Context) {
	var record models.MedicalRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	created, err := h.Records.Create(&record)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// MyRecords returns the caller's own medical records, gated on approval.
func (h *EngagementHandler) MyRecords(c *gin.Context) {
	records, err := h.Records.GetForPatient(middleware.CallerID(c), false)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// PatientRecords is the admin view of any patient's records.
func (h *EngagementHandler) PatientRecords(c *gin.Context) {
	records, err := h.Records.GetForPatient(c.Param("id"), true)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *EngagementHandler) ListPatients(c *gin.Context) {
	patients, err := h.Users.ListPatients()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *EngagementHandler) ApprovePatient(c *gin.Context) {
	if err := h.Users.ApprovePatient(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "patient approved"})
}
