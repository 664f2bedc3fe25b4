package scheduleRepo

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

// MongoTemplateRepo implements TemplateRepository using MongoDB.
type MongoTemplateRepo struct {
	coll *mongo.Collection
}

// NewMongoTemplateRepo creates a new instance of TemplateRepository using MongoDB.
func NewMongoTemplateRepo() TemplateRepository {
	repo := &MongoTemplateRepo{coll: database.Collection("schedule_templates")}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "doctorId", Value: 1}}},
	})
	if err != nil {
		fmt.Printf("failed to create template indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTemplateRepo) Create(template *models.ScheduleTemplate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	template.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, template); err != nil {
		return fmt.Errorf("failed to create schedule template: %w", err)
	}
	return nil
}

func (r *MongoTemplateRepo) GetByID(id string) (*models.ScheduleTemplate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var template models.ScheduleTemplate
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&template); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch template with id %s: %w", id, err)
	}
	return &template, nil
}

func (r *MongoTemplateRepo) GetByDoctor(doctorID string) ([]models.ScheduleTemplate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch templates for doctor %s: %w", doctorID, err)
	}
	var templates []models.ScheduleTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("failed to decode templates: %w", err)
	}
	return templates, nil
}

func (r *MongoTemplateRepo) Update(template *models.ScheduleTemplate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": template.ID}, bson.M{"$set": template})
	if err != nil {
		return fmt.Errorf("failed to update template with id %s: %w", template.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("template with id %s not found", template.ID)
	}
	return nil
}

func (r *MongoTemplateRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete template with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("template with id %s not found", id)
	}
	return nil
}
