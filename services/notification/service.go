package notification

import (
	"context"
	"fmt"
	"time"

	engagementRepo "unicare/database/repository/engagement"
	userRepo "unicare/database/repository/user"
	"unicare/models"
	"unicare/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NotificationService records notifications, delivers FCM pushes and runs
// campaign fan-outs. Delivery is best-effort; the stored record is the
// source of truth.
type NotificationService interface {
	// Notify stores a notification record and attempts a push.
	Notify(ctx context.Context, userID, title, body, kind string) error
	ListForUser(userID string) ([]models.Notification, error)
	MarkRead(id string) error

	CreateCampaign(req models.CampaignRequest) (*models.Campaign, error)
	ListCampaigns() ([]models.Campaign, error)
	// LaunchCampaign marks the campaign active and enqueues the fan-out.
	LaunchCampaign(campaignID string) error
	// FanOutCampaign notifies every user in the campaign audience. Runs on
	// the worker.
	FanOutCampaign(ctx context.Context, campaignID string) error
	DeleteCampaign(id string) error

	// ScheduleAppointmentReminder enqueues a reminder delivered near the slot.
	ScheduleAppointmentReminder(appointment *models.Appointment, fireAt time.Time) error
	// DeliverReminder sends the queued reminder. Runs on the worker.
	DeliverReminder(ctx context.Context, payload models.ReminderPayload) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users         userRepo.UserRepository
	Notifications engagementRepo.NotificationRepository
	Campaigns     engagementRepo.CampaignRepository
	Queue         *asynq.Client
	Logger        *zap.Logger
}

func (s *DefaultNotificationService) Notify(ctx context.Context, userID, title, body, kind string) error {
	record := &models.Notification{
		ID:     uuid.New().String(),
		UserID: userID,
		Title:  title,
		Body:   body,
		Kind:   kind,
	}
	if err := s.Notifications.Create(record); err != nil {
		return err
	}

	if err := s.sendPush(ctx, userID, title, body, map[string]string{"kind": kind}); err != nil {
		s.Logger.Debug("push delivery skipped",
			zap.String("userId", userID), zap.Error(err))
		return nil
	}
	return s.Notifications.MarkSent(record.ID)
}

// sendPush looks up the user's FCM token and sends a push message.
func (s *DefaultNotificationService) sendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("push delivery not configured")
	}
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return err
	}
	if u == nil || u.FCMToken == "" {
		return fmt.Errorf("user %s has no FCM token", userID)
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) ListForUser(userID string) ([]models.Notification, error) {
	return s.Notifications.GetByUser(userID)
}

func (s *DefaultNotificationService) MarkRead(id string) error {
	return s.Notifications.MarkRead(id)
}

func (s *DefaultNotificationService) CreateCampaign(req models.CampaignRequest) (*models.Campaign, error) {
	audience := req.Audience
	if audience == "" {
		audience = models.AudienceAll
	}
	switch audience {
	case models.AudienceAll, models.AudiencePatients, models.AudienceDoctors:
	default:
		return nil, fmt.Errorf("unknown campaign audience %q", audience)
	}

	campaign := &models.Campaign{
		ID:       uuid.New().String(),
		Title:    req.Title,
		Message:  req.Message,
		Audience: audience,
		Status:   models.CampaignDraft,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}
	if err := s.Campaigns.Create(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *DefaultNotificationService) ListCampaigns() ([]models.Campaign, error) {
	return s.Campaigns.GetAll()
}

func (s *DefaultNotificationService) LaunchCampaign(campaignID string) error {
	campaign, err := s.Campaigns.GetByID(campaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return fmt.Errorf("campaign with id %s not found", campaignID)
	}
	if campaign.Status == models.CampaignActive {
		return fmt.Errorf("campaign %s is already active", campaignID)
	}
	if err := s.Campaigns.SetStatus(campaignID, models.CampaignActive); err != nil {
		return err
	}

	task, opts, err := NewCampaignFanOutTask(models.CampaignPayload{CampaignID: campaignID})
	if err != nil {
		return err
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue campaign fan-out: %w", err)
	}
	s.Logger.Info("campaign launched", zap.String("campaignId", campaignID))
	return nil
}

func (s *DefaultNotificationService) FanOutCampaign(ctx context.Context, campaignID string) error {
	campaign, err := s.Campaigns.GetByID(campaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return fmt.Errorf("campaign with id %s not found", campaignID)
	}

	var roles []string
	switch campaign.Audience {
	case models.AudiencePatients:
		roles = []string{models.RolePatient}
	case models.AudienceDoctors:
		roles = []string{models.RoleDoctor}
	default:
		roles = []string{models.RolePatient, models.RoleDoctor}
	}

	delivered := 0
	for _, role := range roles {
		users, err := s.Users.GetByRole(role)
		if err != nil {
			return err
		}
		for _, u := range users {
			if err := s.Notify(ctx, u.ID, campaign.Title, campaign.Message, models.NotificationCampaign); err != nil {
				s.Logger.Warn("campaign notification failed",
					zap.String("campaignId", campaignID),
					zap.String("userId", u.ID), zap.Error(err))
				continue
			}
			delivered++
		}
	}
	s.Logger.Info("campaign fan-out finished",
		zap.String("campaignId", campaignID), zap.Int("delivered", delivered))
	return nil
}

func (s *DefaultNotificationService) DeleteCampaign(id string) error {
	return s.Campaigns.Delete(id)
}

func (s *DefaultNotificationService) ScheduleAppointmentReminder(appointment *models.Appointment, fireAt time.Time) error {
	payload := models.ReminderPayload{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		Date:          appointment.AppointmentDate,
		Time:          appointment.AppointmentTime,
	}
	task, opts, err := NewAppointmentReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue appointment reminder: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) DeliverReminder(ctx context.Context, payload models.ReminderPayload) error {
	title := "Appointment reminder"
	body := fmt.Sprintf("Your appointment is at %s on %s.", payload.Time, payload.Date)
	return s.Notify(ctx, payload.PatientID, title, body, models.NotificationReminder)
}
