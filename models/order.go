package models

import "time"

// Medicine order statuses.
const (
	OrderPending        = "pending"
	OrderReadyForPickup = "ready_for_pickup"
	OrderCompleted      = "completed"
	OrderCancelled      = "cancelled"
)

// Lab order statuses.
const (
	LabOrderScheduled       = "scheduled"
	LabOrderSampleCollected = "sample_collected"
	LabOrderInProgress      = "in_progress"
	LabOrderCompleted       = "completed"
)

// OrderItem is one line of a medicine order.
type OrderItem struct {
	MedicineID string  `bson:"medicineId" json:"medicine_id" binding:"required"`
	Quantity   int     `bson:"quantity" json:"quantity" binding:"required,gt=0"`
	Price      float64 `bson:"price" json:"price"`
}

// MedicineOrder is a pharmacy pickup order.
type MedicineOrder struct {
	ID          string      `bson:"id" json:"id"`
	PatientID   string      `bson:"patientId" json:"patient_id"`
	Items       []OrderItem `bson:"items" json:"items"`
	TotalAmount float64     `bson:"totalAmount" json:"total_amount"`
	Status      string      `bson:"status" json:"status"`
	OrderDate   time.Time   `bson:"orderDate" json:"order_date"`
	PickupDate  *time.Time  `bson:"pickupDate,omitempty" json:"pickup_date,omitempty"`
}

// LabOrder is an order of individual tests and/or packages.
type LabOrder struct {
	ID                   string     `bson:"id" json:"id"`
	PatientID            string     `bson:"patientId" json:"patient_id"`
	TestIDs              []string   `bson:"testIds" json:"test_ids"`
	PackageIDs           []string   `bson:"packageIds" json:"package_ids"`
	TotalAmount          float64    `bson:"totalAmount" json:"total_amount"`
	Status               string     `bson:"status" json:"status"`
	OrderDate            time.Time  `bson:"orderDate" json:"order_date"`
	SampleCollectionDate *time.Time `bson:"sampleCollectionDate,omitempty" json:"sample_collection_date,omitempty"`
}

// MedicineOrderRequest is the patient payload for a pharmacy order.
type MedicineOrderRequest struct {
	Items []OrderItem `json:"items" binding:"required,min=1"`
}

// LabOrderRequest is the patient payload for a lab order.
type LabOrderRequest struct {
	TestIDs    []string `json:"test_ids"`
	PackageIDs []string `json:"package_ids"`
}
