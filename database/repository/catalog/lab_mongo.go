package catalogRepo

import (
	"fmt"
	"time"

	"unicare/database"
	"unicare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLabRepo implements LabRepository using MongoDB.
type MongoLabRepo struct {
	tests    *mongo.Collection
	packages *mongo.Collection
}

// NewMongoLabRepo creates a new instance of LabRepository using MongoDB.
func NewMongoLabRepo() LabRepository {
	repo := &MongoLabRepo{
		tests:    database.Collection("lab_tests"),
		packages: database.Collection("lab_packages"),
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := repo.tests.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		fmt.Printf("failed to create lab test indexes: %v\n", err)
	}
	_, err = repo.packages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create lab package indexes: %v\n", err)
	}
	return repo
}

func (r *MongoLabRepo) CreateTest(test *models.LabTest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	test.CreatedAt = time.Now()
	if _, err := r.tests.InsertOne(ctx, test); err != nil {
		return fmt.Errorf("failed to create lab test: %w", err)
	}
	return nil
}

func (r *MongoLabRepo) GetTests() ([]models.LabTest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.tests.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lab tests: %w", err)
	}
	var tests []models.LabTest
	if err := cursor.All(ctx, &tests); err != nil {
		return nil, fmt.Errorf("failed to decode lab tests: %w", err)
	}
	return tests, nil
}

func (r *MongoLabRepo) GetTestByID(id string) (*models.LabTest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var test models.LabTest
	if err := r.tests.FindOne(ctx, bson.M{"id": id}).Decode(&test); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch lab test with id %s: %w", id, err)
	}
	return &test, nil
}

func (r *MongoLabRepo) CreatePackage(pkg *models.LabPackage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pkg.CreatedAt = time.Now()
	if _, err := r.packages.InsertOne(ctx, pkg); err != nil {
		return fmt.Errorf("failed to create lab package: %w", err)
	}
	return nil
}

func (r *MongoLabRepo) GetPackages() ([]models.LabPackage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.packages.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lab packages: %w", err)
	}
	var packages []models.LabPackage
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("failed to decode lab packages: %w", err)
	}
	return packages, nil
}

func (r *MongoLabRepo) GetPackageByID(id string) (*models.LabPackage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pkg models.LabPackage
	if err := r.packages.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch lab package with id %s: %w", id, err)
	}
	return &pkg, nil
}
