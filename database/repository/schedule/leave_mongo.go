package scheduleRepo

import (
	"fmt"
	"time"

	"unicare/database"
	"unicare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLeaveRepo implements LeaveRepository using MongoDB.
type MongoLeaveRepo struct {
	coll *mongo.Collection
}

// NewMongoLeaveRepo creates a new instance of LeaveRepository using MongoDB.
func NewMongoLeaveRepo() LeaveRepository {
	repo := &MongoLeaveRepo{coll: database.Collection("doctor_leaves")}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "status", Value: 1}}},
	})
	if err != nil {
		fmt.Printf("failed to create leave indexes: %v\n", err)
	}
	return repo
}

func (r *MongoLeaveRepo) Create(leave *models.DoctorLeave) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	leave.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, leave); err != nil {
		return fmt.Errorf("failed to create leave: %w", err)
	}
	return nil
}

func (r *MongoLeaveRepo) GetByID(id string) (*models.DoctorLeave, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var leave models.DoctorLeave
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&leave); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch leave with id %s: %w", id, err)
	}
	return &leave, nil
}

func (r *MongoLeaveRepo) GetByDoctor(doctorID string) ([]models.DoctorLeave, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaves for doctor %s: %w", doctorID, err)
	}
	var leaves []models.DoctorLeave
	if err := cursor.All(ctx, &leaves); err != nil {
		return nil, fmt.Errorf("failed to decode leaves: %w", err)
	}
	return leaves, nil
}

// GetApprovedInRange relies on ISO date strings ordering lexicographically:
// a leave overlaps [start, end] when startDate <= end and endDate >= start.
func (r *MongoLeaveRepo) GetApprovedInRange(doctorID, start, end string) ([]models.DoctorLeave, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId":  doctorID,
		"status":    models.LeaveApproved,
		"startDate": bson.M{"$lte": end},
		"endDate":   bson.M{"$gte": start},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch approved leaves for doctor %s: %w", doctorID, err)
	}
	var leaves []models.DoctorLeave
	if err := cursor.All(ctx, &leaves); err != nil {
		return nil, fmt.Errorf("failed to decode leaves: %w", err)
	}
	return leaves, nil
}

func (r *MongoLeaveRepo) SetStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update leave %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("leave with id %s not found", id)
	}
	return nil
}

func (r *MongoLeaveRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete leave with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("leave with id %s not found", id)
	}
	return nil
}
