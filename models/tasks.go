package models

// ReminderPayload is the queued payload for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointment_id"`
	PatientID     string `json:"patient_id"`
	DoctorID      string `json:"doctor_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

// CampaignPayload is the queued payload for a campaign fan-out.
type CampaignPayload struct {
	CampaignID string `json:"campaign_id"`
}
