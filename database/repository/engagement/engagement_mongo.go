package engagementRepo

import (
	"context"
	"fmt"
	"time"

	"unicare/database"
	"unicare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func ensureIDIndex(coll *mongo.Collection, extra ...mongo.IndexModel) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := append([]mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}, extra...)
	if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		fmt.Printf("failed to create indexes on %s: %v\n", coll.Name(), err)
	}
}

// --- Campaigns ---

type MongoCampaignRepo struct {
	coll *mongo.Collection
}

func NewMongoCampaignRepo() CampaignRepository {
	repo := &MongoCampaignRepo{coll: database.Collection("campaigns")}
	ensureIDIndex(repo.coll)
	return repo
}

func (r *MongoCampaignRepo) Create(campaign *models.Campaign) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	campaign.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, campaign); err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

func (r *MongoCampaignRepo) GetByID(id string) (*models.Campaign, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var campaign models.Campaign
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&campaign); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch campaign with id %s: %w", id, err)
	}
	return &campaign, nil
}

func (r *MongoCampaignRepo) GetAll() ([]models.Campaign, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaigns: %w", err)
	}
	var campaigns []models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, fmt.Errorf("failed to decode campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *MongoCampaignRepo) SetStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update campaign %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("campaign with id %s not found", id)
	}
	return nil
}

func (r *MongoCampaignRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete campaign with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("campaign with id %s not found", id)
	}
	return nil
}

// --- Notifications ---

type MongoNotificationRepo struct {
	coll *mongo.Collection
}

func NewMongoNotificationRepo() NotificationRepository {
	repo := &MongoNotificationRepo{coll: database.Collection("notifications")}
	ensureIDIndex(repo.coll, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return repo
}

func (r *MongoNotificationRepo) Create(notification *models.Notification) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	notification.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *MongoNotificationRepo) GetByUser(userID string) ([]models.Notification, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications for user %s: %w", userID, err)
	}
	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

func (r *MongoNotificationRepo) MarkSent(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"sentAt": now}})
	if err != nil {
		return fmt.Errorf("failed to mark notification %s sent: %w", id, err)
	}
	return nil
}

func (r *MongoNotificationRepo) MarkRead(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", id, err)
	}
	return nil
}

// --- Feedback ---

type MongoFeedbackRepo struct {
	coll *mongo.Collection
}

func NewMongoFeedbackRepo() FeedbackRepository {
	repo := &MongoFeedbackRepo{coll: database.Collection("feedback")}
	ensureIDIndex(repo.coll,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "appointmentId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		mongo.IndexModel{Keys: bson.D{{Key: "doctorId", Value: 1}}},
	)
	return repo
}

func (r *MongoFeedbackRepo) Create(feedback *models.Feedback) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	feedback.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, feedback); err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *MongoFeedbackRepo) GetByAppointment(appointmentID string) (*models.Feedback, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var feedback models.Feedback
	if err := r.coll.FindOne(ctx, bson.M{"appointmentId": appointmentID}).Decode(&feedback); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch feedback for appointment %s: %w", appointmentID, err)
	}
	return &feedback, nil
}

func (r *MongoFeedbackRepo) GetAll() ([]models.Feedback, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feedback: %w", err)
	}
	var feedback []models.Feedback
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return feedback, nil
}

// AggregateForDoctor groups the doctor's feedback in the database rather than
// loading every record.
func (r *MongoFeedbackRepo) AggregateForDoctor(doctorID string) (*models.DoctorRating, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"doctorId": doctorID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     "$doctorId",
			"count":   bson.M{"$sum": 1},
			"average": bson.M{"$avg": "$rating"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate feedback for doctor %s: %w", doctorID, err)
	}
	var results []models.DoctorRating
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode feedback aggregate: %w", err)
	}
	if len(results) == 0 {
		return &models.DoctorRating{DoctorID: doctorID}, nil
	}
	return &results[0], nil
}

// --- Medical records ---

type MongoRecordRepo struct {
	coll *mongo.Collection
}

func NewMongoRecordRepo() RecordRepository {
	repo := &MongoRecordRepo{coll: database.Collection("medical_records")}
	ensureIDIndex(repo.coll, mongo.IndexModel{
		Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "date", Value: -1}},
	})
	return repo
}

func (r *MongoRecordRepo) Create(record *models.MedicalRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if record.Date.IsZero() {
		record.Date = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}
	return nil
}

func (r *MongoRecordRepo) GetByPatient(patientID string) ([]models.MedicalRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records for patient %s: %w", patientID, err)
	}
	var records []models.MedicalRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return records, nil
}

func (r *MongoRecordRepo) GetByID(id string) (*models.MedicalRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var record models.MedicalRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch record with id %s: %w", id, err)
	}
	return &record, nil
}

func (r *MongoRecordRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete record with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("record with id %s not found", id)
	}
	return nil
}
