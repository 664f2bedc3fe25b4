package orderRepo

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

// OrderRepository stores pharmacy and lab orders.
type OrderRepository interface {
	CreateMedicineOrder(order *models.MedicineOrder) error
	GetMedicineOrdersByPatient(patientID string) ([]models.MedicineOrder, error)
	SetMedicineOrderStatus(id, status string) error
	CreateLabOrder(order *models.LabOrder) error
	GetLabOrdersByPatient(patientID string) ([]models.LabOrder, error)
	SetLabOrderStatus(id, status string) error
}

// MongoOrderRepo implements OrderRepository using MongoDB.
type MongoOrderRepo struct {
	medicineOrders *mongo.Collection
	labOrders      *mongo.Collection
}

// NewMongoOrderRepo creates a new instance of OrderRepository using MongoDB.
func NewMongoOrderRepo() OrderRepository {
	repo := &MongoOrderRepo{
		medicineOrders: database.Collection("medicine_orders"),
		labOrders:      database.Collection("lab_orders"),
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	for _, coll := range []*mongo.Collection{repo.medicineOrders, repo.labOrders} {
		_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "orderDate", Value: -1}}},
		})
		if err != nil {
			fmt.Printf("failed to create order indexes: %v\n", err)
		}
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOrderRepo) CreateMedicineOrder(order *models.MedicineOrder) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	order.OrderDate = time.Now()
	if _, err := r.medicineOrders.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to create medicine order: %w", err)
	}
	return nil
}

func (r *MongoOrderRepo) GetMedicineOrdersByPatient(patientID string) ([]models.MedicineOrder, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.medicineOrders.Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch medicine orders: %w", err)
	}
	var orders []models.MedicineOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode medicine orders: %w", err)
	}
	return orders, nil
}

func (r *MongoOrderRepo) SetMedicineOrderStatus(id, status string) error {
	return r.setStatus(r.medicineOrders, id, status)
}

func (r *MongoOrderRepo) CreateLabOrder(order *models.LabOrder) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	order.OrderDate = time.Now()
	if _, err := r.labOrders.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to create lab order: %w", err)
	}
	return nil
}

func (r *MongoOrderRepo) GetLabOrdersByPatient(patientID string) ([]models.LabOrder, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.labOrders.Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lab orders: %w", err)
	}
	var orders []models.LabOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode lab orders: %w", err)
	}
	return orders, nil
}

func (r *MongoOrderRepo) SetLabOrderStatus(id, status string) error {
	return r.setStatus(r.labOrders, id, status)
}

func (r *MongoOrderRepo) setStatus(coll *mongo.Collection, id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("order with id %s not found", id)
	}
	return nil
}
