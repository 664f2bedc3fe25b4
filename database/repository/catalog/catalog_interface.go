package catalogRepo

import (
	"errors"

	"unicare/models"
)

// ErrInsufficientStock is returned when a dispense would drive a medicine's
// stock below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// MedicineRepository stores the pharmacy catalog and its stock ledger.
type MedicineRepository interface {
	Create(medicine *models.Medicine) error
	GetByID(id string) (*models.Medicine, error)
	GetAll() ([]models.Medicine, error)
	Update(medicine *models.Medicine) error
	// AdjustStock applies a ledger delta atomically; a negative delta that
	// would underflow fails with ErrInsufficientStock and writes nothing.
	AdjustStock(adjustment *models.StockAdjustment) error
	// GetAdjustments returns the ledger entries for one medicine, newest first.
	GetAdjustments(medicineID string) ([]models.StockAdjustment, error)
}

// LabRepository stores lab tests and packages.
type LabRepository interface {
	CreateTest(test *models.LabTest) error
	GetTests() ([]models.LabTest, error)
	GetTestByID(id string) (*models.LabTest, error)
	CreatePackage(pkg *models.LabPackage) error
	GetPackages() ([]models.LabPackage, error)
	GetPackageByID(id string) (*models.LabPackage, error)
}
