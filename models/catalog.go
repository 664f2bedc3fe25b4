package models

import "time"

// Medicine is a pharmacy catalog item. StockQuantity is only ever changed
// through the inventory ledger.
type Medicine struct {
	ID                   string    `bson:"id" json:"id"`
	Name                 string    `bson:"name" json:"name"`
	GenericName          string    `bson:"genericName,omitempty" json:"generic_name,omitempty"`
	Manufacturer         string    `bson:"manufacturer" json:"manufacturer"`
	Category             string    `bson:"category" json:"category"`
	Price                float64   `bson:"price" json:"price"`
	StockQuantity        int       `bson:"stockQuantity" json:"stock_quantity"`
	Description          string    `bson:"description,omitempty" json:"description,omitempty"`
	DosageForm           string    `bson:"dosageForm" json:"dosage_form"` // tablet, capsule, syrup
	Strength             string    `bson:"strength" json:"strength"`      // 500mg, 10ml
	PrescriptionRequired bool      `bson:"prescriptionRequired" json:"prescription_required"`
	CreatedAt            time.Time `bson:"createdAt" json:"created_at"`
}

// LabTest is a single orderable laboratory test.
type LabTest struct {
	ID                  string    `bson:"id" json:"id"`
	Name                string    `bson:"name" json:"name"`
	Code                string    `bson:"code" json:"code"`
	Category            string    `bson:"category" json:"category"`
	Price               float64   `bson:"price" json:"price"`
	EstimatedDuration   string    `bson:"estimatedDuration" json:"estimated_duration"` // "2-4 hours"
	SampleType          string    `bson:"sampleType" json:"sample_type"`               // blood, urine
	PreparationRequired string    `bson:"preparationRequired,omitempty" json:"preparation_required,omitempty"`
	Description         string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt           time.Time `bson:"createdAt" json:"created_at"`
}

// LabPackage bundles tests at a discount.
type LabPackage struct {
	ID                 string    `bson:"id" json:"id"`
	Name               string    `bson:"name" json:"name"`
	Description        string    `bson:"description" json:"description"`
	TestIDs            []string  `bson:"testIds" json:"test_ids"`
	OriginalPrice      float64   `bson:"originalPrice" json:"original_price"`
	PackagePrice       float64   `bson:"packagePrice" json:"package_price"`
	DiscountPercentage float64   `bson:"discountPercentage" json:"discount_percentage"`
	CreatedAt          time.Time `bson:"createdAt" json:"created_at"`
}

// StockAdjustment is one inventory ledger entry. Delta is positive for
// restocks, negative for dispensing.
type StockAdjustment struct {
	ID         string    `bson:"id" json:"id"`
	MedicineID string    `bson:"medicineId" json:"medicine_id"`
	Delta      int       `bson:"delta" json:"delta"`
	Reason     string    `bson:"reason" json:"reason"` // restock, dispense, correction
	ActorID    string    `bson:"actorId" json:"actor_id"`
	CreatedAt  time.Time `bson:"createdAt" json:"created_at"`
}

// StockAdjustRequest is the admin payload for a manual ledger entry.
type StockAdjustRequest struct {
	MedicineID string `json:"medicine_id" binding:"required"`
	Delta      int    `json:"delta" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

// InventoryItem is a medicine with its low-stock flag for the admin view.
type InventoryItem struct {
	Medicine
	LowStock bool `json:"low_stock"`
}
