package catalog

import (
	"errors"

	catalogRepo "unicare/database/repository/catalog"
	orderRepo "unicare/database/repository/order"
	"unicare/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// lowStockThreshold flags inventory items needing a restock.
const lowStockThreshold = 10

// CatalogService manages the pharmacy and lab catalogs, patient orders and
// the inventory ledger.
type CatalogService interface {
	CreateMedicine(medicine *models.Medicine) (*models.Medicine, error)
	ListMedicines() ([]models.Medicine, error)
	UpdateMedicine(medicine *models.Medicine) error

	CreateLabTest(test *models.LabTest) (*models.LabTest, error)
	ListLabTests() ([]models.LabTest, error)
	CreateLabPackage(pkg *models.LabPackage) (*models.LabPackage, error)
	ListLabPackages() ([]models.LabPackage, error)

	// PlaceMedicineOrder prices the items from the catalog and dispenses
	// stock through the ledger before recording the order.
	PlaceMedicineOrder(patientID string, req models.MedicineOrderRequest) (*models.MedicineOrder, error)
	GetMedicineOrders(patientID string) ([]models.MedicineOrder, error)
	SetMedicineOrderStatus(id, status string) error

	PlaceLabOrder(patientID string, req models.LabOrderRequest) (*models.LabOrder, error)
	GetLabOrders(patientID string) ([]models.LabOrder, error)
	SetLabOrderStatus(id, status string) error

	// AdjustStock records a manual ledger entry (restock or correction).
	AdjustStock(actorID string, req models.StockAdjustRequest) error
	// Inventory returns every medicine with its low-stock flag.
	Inventory() ([]models.InventoryItem, error)
	StockLedger(medicineID string) ([]models.StockAdjustment, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Medicines catalogRepo.MedicineRepository
	Labs      catalogRepo.LabRepository
	Orders    orderRepo.OrderRepository
	Logger    *zap.Logger
}

func (s *DefaultCatalogService) CreateMedicine(medicine *models.Medicine) (*models.Medicine, error) {
	if medicine.Price < 0 {
		return nil, newValidationError("medicine price must not be negative")
	}
	if medicine.StockQuantity < 0 {
		return nil, newValidationError("medicine stock must not be negative")
	}
	medicine.ID = uuid.New().String()
	if err := s.Medicines.Create(medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

func (s *DefaultCatalogService) ListMedicines() ([]models.Medicine, error) {
	return s.Medicines.GetAll()
}

func (s *DefaultCatalogService) UpdateMedicine(medicine *models.Medicine) error {
	existing, err := s.Medicines.GetByID(medicine.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return &NotFoundError{Resource: "medicine", ID: medicine.ID}
	}
	// Stock is owned by the ledger; keep the stored quantity.
	medicine.StockQuantity = existing.StockQuantity
	return s.Medicines.Update(medicine)
}

func (s *DefaultCatalogService) CreateLabTest(test *models.LabTest) (*models.LabTest, error) {
	test.ID = uuid.New().String()
	if err := s.Labs.CreateTest(test); err != nil {
		return nil, err
	}
	return test, nil
}

func (s *DefaultCatalogService) ListLabTests() ([]models.LabTest, error) {
	return s.Labs.GetTests()
}

func (s *DefaultCatalogService) CreateLabPackage(pkg *models.LabPackage) (*models.LabPackage, error) {
	for _, testID := range pkg.TestIDs {
		test, err := s.Labs.GetTestByID(testID)
		if err != nil {
			return nil, err
		}
		if test == nil {
			return nil, &NotFoundError{Resource: "lab test", ID: testID}
		}
	}
	pkg.ID = uuid.New().String()
	if err := s.Labs.CreatePackage(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *DefaultCatalogService) ListLabPackages() ([]models.LabPackage, error) {
	return s.Labs.GetPackages()
}

// PlaceMedicineOrder resolves each item against the catalog, dispenses stock
// through the ledger, and records the order. When a dispense fails partway,
// already dispensed items are restored with compensating ledger entries so
// the ledger stays an accurate history of what happened.
func (s *DefaultCatalogService) PlaceMedicineOrder(patientID string, req models.MedicineOrderRequest) (*models.MedicineOrder, error) {
	if len(req.Items) == 0 {
		return nil, newValidationError("order must contain at least one item")
	}

	order := &models.MedicineOrder{
		ID:        uuid.New().String(),
		PatientID: patientID,
		Status:    models.OrderPending,
	}

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, newValidationError("item quantity must be positive")
		}
		medicine, err := s.Medicines.GetByID(item.MedicineID)
		if err != nil {
			return nil, err
		}
		if medicine == nil {
			return nil, &NotFoundError{Resource: "medicine", ID: item.MedicineID}
		}
		req.Items[i].Price = medicine.Price
		order.TotalAmount += medicine.Price * float64(item.Quantity)
	}
	order.Items = req.Items

	var dispensed []models.OrderItem
	for _, item := range order.Items {
		err := s.Medicines.AdjustStock(&models.StockAdjustment{
			ID:         uuid.New().String(),
			MedicineID: item.MedicineID,
			Delta:      -item.Quantity,
			Reason:     "dispense",
			ActorID:    patientID,
		})
		if err != nil {
			s.restock(dispensed, patientID)
			if errors.Is(err, catalogRepo.ErrInsufficientStock) {
				return nil, &InsufficientStockError{MedicineID: item.MedicineID, Requested: item.Quantity}
			}
			return nil, err
		}
		dispensed = append(dispensed, item)
	}

	if err := s.Orders.CreateMedicineOrder(order); err != nil {
		s.restock(dispensed, patientID)
		return nil, err
	}

	s.Logger.Info("medicine order placed",
		zap.String("orderId", order.ID),
		zap.String("patientId", patientID),
		zap.Float64("total", order.TotalAmount))
	return order, nil
}

// restock reverses dispensed items after a failed order.
func (s *DefaultCatalogService) restock(items []models.OrderItem, actorID string) {
	for _, item := range items {
		err := s.Medicines.AdjustStock(&models.StockAdjustment{
			ID:         uuid.New().String(),
			MedicineID: item.MedicineID,
			Delta:      item.Quantity,
			Reason:     "correction",
			ActorID:    actorID,
		})
		if err != nil {
			s.Logger.Error("failed to restore stock after aborted order",
				zap.String("medicineId", item.MedicineID), zap.Error(err))
		}
	}
}

func (s *DefaultCatalogService) GetMedicineOrders(patientID string) ([]models.MedicineOrder, error) {
	return s.Orders.GetMedicineOrdersByPatient(patientID)
}

func (s *DefaultCatalogService) SetMedicineOrderStatus(id, status string) error {
	switch status {
	case models.OrderPending, models.OrderReadyForPickup, models.OrderCompleted, models.OrderCancelled:
	default:
		return newValidationError("unknown medicine order status %q", status)
	}
	return s.Orders.SetMedicineOrderStatus(id, status)
}

func (s *DefaultCatalogService) PlaceLabOrder(patientID string, req models.LabOrderRequest) (*models.LabOrder, error) {
	if len(req.TestIDs) == 0 && len(req.PackageIDs) == 0 {
		return nil, newValidationError("lab order must reference at least one test or package")
	}

	order := &models.LabOrder{
		ID:         uuid.New().String(),
		PatientID:  patientID,
		TestIDs:    req.TestIDs,
		PackageIDs: req.PackageIDs,
		Status:     models.LabOrderScheduled,
	}

	for _, testID := range req.TestIDs {
		test, err := s.Labs.GetTestByID(testID)
		if err != nil {
			return nil, err
		}
		if test == nil {
			return nil, &NotFoundError{Resource: "lab test", ID: testID}
		}
		order.TotalAmount += test.Price
	}
	for _, pkgID := range req.PackageIDs {
		pkg, err := s.Labs.GetPackageByID(pkgID)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			return nil, &NotFoundError{Resource: "lab package", ID: pkgID}
		}
		order.TotalAmount += pkg.PackagePrice
	}

	if err := s.Orders.CreateLabOrder(order); err != nil {
		return nil, err
	}
	s.Logger.Info("lab order placed",
		zap.String("orderId", order.ID), zap.String("patientId", patientID))
	return order, nil
}

func (s *DefaultCatalogService) GetLabOrders(patientID string) ([]models.LabOrder, error) {
	return s.Orders.GetLabOrdersByPatient(patientID)
}

func (s *DefaultCatalogService) SetLabOrderStatus(id, status string) error {
	switch status {
	case models.LabOrderScheduled, models.LabOrderSampleCollected,
		models.LabOrderInProgress, models.LabOrderCompleted:
	default:
		return newValidationError("unknown lab order status %q", status)
	}
	return s.Orders.SetLabOrderStatus(id, status)
}

func (s *DefaultCatalogService) AdjustStock(actorID string, req models.StockAdjustRequest) error {
	if req.Delta == 0 {
		return newValidationError("stock delta must not be zero")
	}
	medicine, err := s.Medicines.GetByID(req.MedicineID)
	if err != nil {
		return err
	}
	if medicine == nil {
		return &NotFoundError{Resource: "medicine", ID: req.MedicineID}
	}
	err = s.Medicines.AdjustStock(&models.StockAdjustment{
		ID:         uuid.New().String(),
		MedicineID: req.MedicineID,
		Delta:      req.Delta,
		Reason:     req.Reason,
		ActorID:    actorID,
	})
	if errors.Is(err, catalogRepo.ErrInsufficientStock) {
		return &InsufficientStockError{MedicineID: req.MedicineID, Requested: -req.Delta}
	}
	return err
}

func (s *DefaultCatalogService) Inventory() ([]models.InventoryItem, error) {
	medicines, err := s.Medicines.GetAll()
	if err != nil {
		return nil, err
	}
	items := make([]models.InventoryItem, 0, len(medicines))
	for _, m := range medicines {
		items = append(items, models.InventoryItem{
			Medicine: m,
			LowStock: m.StockQuantity < lowStockThreshold,
		})
	}
	return items, nil
}

func (s *DefaultCatalogService) StockLedger(medicineID string) ([]models.StockAdjustment, error) {
	return s.Medicines.GetAdjustments(medicineID)
}
