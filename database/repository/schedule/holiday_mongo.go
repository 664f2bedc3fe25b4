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

// MongoHolidayRepo implements HolidayRepository using MongoDB.
type MongoHolidayRepo struct {
	coll *mongo.Collection
}

// NewMongoHolidayRepo creates a new instance of HolidayRepository using MongoDB.
func NewMongoHolidayRepo() HolidayRepository {
	repo := &MongoHolidayRepo{coll: database.Collection("holidays")}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		fmt.Printf("failed to create holiday indexes: %v\n", err)
	}
	return repo
}

// Upsert writes the holiday record keyed by date, so a date carries at most
// one override.
func (r *MongoHolidayRepo) Upsert(holiday *models.Holiday) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	holiday.CreatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"date": holiday.Date}, holiday, opts); err != nil {
		return fmt.Errorf("failed to upsert holiday for %s: %w", holiday.Date, err)
	}
	return nil
}

func (r *MongoHolidayRepo) GetByDate(date string) (*models.Holiday, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var holiday models.Holiday
	if err := r.coll.FindOne(ctx, bson.M{"date": date}).Decode(&holiday); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch holiday for %s: %w", date, err)
	}
	return &holiday, nil
}

func (r *MongoHolidayRepo) GetRange(start, end string) ([]models.Holiday, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": start, "$lte": end}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holidays in [%s, %s]: %w", start, end, err)
	}
	var holidays []models.Holiday
	if err := cursor.All(ctx, &holidays); err != nil {
		return nil, fmt.Errorf("failed to decode holidays: %w", err)
	}
	return holidays, nil
}

func (r *MongoHolidayRepo) GetAll() ([]models.Holiday, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holidays: %w", err)
	}
	var holidays []models.Holiday
	if err := cursor.All(ctx, &holidays); err != nil {
		return nil, fmt.Errorf("failed to decode holidays: %w", err)
	}
	return holidays, nil
}

func (r *MongoHolidayRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete holiday with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("holiday with id %s not found", id)
	}
	return nil
}
