package catalogRepo

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

// MongoMedicineRepo implements MedicineRepository using MongoDB.
type MongoMedicineRepo struct {
	coll   *mongo.Collection
	ledger *mongo.Collection
}

// NewMongoMedicineRepo creates a new instance of MedicineRepository using MongoDB.
func NewMongoMedicineRepo() MedicineRepository {
	repo := &MongoMedicineRepo{
		coll:   database.Collection("medicines"),
		ledger: database.Collection("stock_adjustments"),
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	if err != nil {
		fmt.Printf("failed to create medicine indexes: %v\n", err)
	}
	_, err = repo.ledger.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "medicineId", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		fmt.Printf("failed to create stock ledger indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMedicineRepo) Create(medicine *models.Medicine) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	medicine.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, medicine); err != nil {
		return fmt.Errorf("failed to create medicine: %w", err)
	}
	return nil
}

func (r *MongoMedicineRepo) GetByID(id string) (*models.Medicine, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var medicine models.Medicine
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&medicine); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch medicine with id %s: %w", id, err)
	}
	return &medicine, nil
}

func (r *MongoMedicineRepo) GetAll() ([]models.Medicine, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch medicines: %w", err)
	}
	var medicines []models.Medicine
	if err := cursor.All(ctx, &medicines); err != nil {
		return nil, fmt.Errorf("failed to decode medicines: %w", err)
	}
	return medicines, nil
}

func (r *MongoMedicineRepo) Update(medicine *models.Medicine) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": medicine.ID}, bson.M{"$set": medicine})
	if err != nil {
		return fmt.Errorf("failed to update medicine with id %s: %w", medicine.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("medicine with id %s not found", medicine.ID)
	}
	return nil
}

// AdjustStock conditions the $inc on the current quantity covering a negative
// delta, so concurrent dispenses cannot drive stock below zero. The ledger
// entry is written only after the counter moves.
func (r *MongoMedicineRepo) AdjustStock(adjustment *models.StockAdjustment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": adjustment.MedicineID}
	if adjustment.Delta < 0 {
		filter["stockQuantity"] = bson.M{"$gte": -adjustment.Delta}
	}

	result, err := r.coll.UpdateOne(ctx, filter,
		bson.M{"$inc": bson.M{"stockQuantity": adjustment.Delta}})
	if err != nil {
		return fmt.Errorf("failed to adjust stock for medicine %s: %w", adjustment.MedicineID, err)
	}
	if result.MatchedCount == 0 {
		if adjustment.Delta < 0 {
			return ErrInsufficientStock
		}
		return fmt.Errorf("medicine with id %s not found", adjustment.MedicineID)
	}

	adjustment.CreatedAt = time.Now()
	if _, err := r.ledger.InsertOne(ctx, adjustment); err != nil {
		return fmt.Errorf("failed to record stock adjustment: %w", err)
	}
	return nil
}

func (r *MongoMedicineRepo) GetAdjustments(medicineID string) ([]models.StockAdjustment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.ledger.Find(ctx, bson.M{"medicineId": medicineID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock adjustments: %w", err)
	}
	var adjustments []models.StockAdjustment
	if err := cursor.All(ctx, &adjustments); err != nil {
		return nil, fmt.Errorf("failed to decode stock adjustments: %w", err)
	}
	return adjustments, nil
}
