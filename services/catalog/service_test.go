package catalog

import (
	"errors"
	"testing"

	catalogRepo "unicare/database/repository/catalog"
	"unicare/models"

	"go.uber.org/zap"
)

type fakeMedicineRepo struct {
	medicines map[string]*models.Medicine
	ledger    []models.StockAdjustment
}

func (r *fakeMedicineRepo) Create(m *models.Medicine) error {
	r.medicines[m.ID] = m
	return nil
}

func (r *fakeMedicineRepo) GetByID(id string) (*models.Medicine, error) {
	m, ok := r.medicines[id]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

func (r *fakeMedicineRepo) GetAll() ([]models.Medicine, error) {
	var out []models.Medicine
	for _, m := range r.medicines {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMedicineRepo) Update(m *models.Medicine) error {
	r.medicines[m.ID] = m
	return nil
}

func (r *fakeMedicineRepo) AdjustStock(a *models.StockAdjustment) error {
	m, ok := r.medicines[a.MedicineID]
	if !ok {
		return errors.New("medicine not found")
	}
	if m.StockQuantity+a.Delta < 0 {
		return catalogRepo.ErrInsufficientStock
	}
	m.StockQuantity += a.Delta
	r.ledger = append(r.ledger, *a)
	return nil
}

func (r *fakeMedicineRepo) GetAdjustments(medicineID string) ([]models.StockAdjustment, error) {
	var out []models.StockAdjustment
	for _, e := range r.ledger {
		if e.MedicineID == medicineID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeLabRepo struct {
	tests    map[string]*models.LabTest
	packages map[string]*models.LabPackage
}

func (r *fakeLabRepo) CreateTest(t *models.LabTest) error {
	r.tests[t.ID] = t
	return nil
}

func (r *fakeLabRepo) GetTests() ([]models.LabTest, error) { return nil, nil }

func (r *fakeLabRepo) GetTestByID(id string) (*models.LabTest, error) {
	return r.tests[id], nil
}

func (r *fakeLabRepo) CreatePackage(p *models.LabPackage) error {
	r.packages[p.ID] = p
	return nil
}

func (r *fakeLabRepo) GetPackages() ([]models.LabPackage, error) { return nil, nil }

func (r *fakeLabRepo) GetPackageByID(id string) (*models.LabPackage, error) {
	return r.packages[id], nil
}

type fakeOrderRepo struct {
	medicineOrders []models.MedicineOrder
	labOrders      []models.LabOrder
	failCreate     bool
}

func (r *fakeOrderRepo) CreateMedicineOrder(o *models.MedicineOrder) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.medicineOrders = append(r.medicineOrders, *o)
	return nil
}

func (r *fakeOrderRepo) GetMedicineOrdersByPatient(patientID string) ([]models.MedicineOrder, error) {
	return r.medicineOrders, nil
}

func (r *fakeOrderRepo) SetMedicineOrderStatus(id, status string) error { return nil }

func (r *fakeOrderRepo) CreateLabOrder(o *models.LabOrder) error {
	r.labOrders = append(r.labOrders, *o)
	return nil
}

func (r *fakeOrderRepo) GetLabOrdersByPatient(patientID string) ([]models.LabOrder, error) {
	return r.labOrders, nil
}

func (r *fakeOrderRepo) SetLabOrderStatus(id, status string) error { return nil }

func newCatalogService() (*DefaultCatalogService, *fakeMedicineRepo, *fakeLabRepo, *fakeOrderRepo) {
	medicines := &fakeMedicineRepo{medicines: map[string]*models.Medicine{
		"med-1": {ID: "med-1", Name: "Paracetamol", Price: 2.5, StockQuantity: 100},
		"med-2": {ID: "med-2", Name: "Amoxicillin", Price: 8.0, StockQuantity: 3},
	}}
	labs := &fakeLabRepo{
		tests: map[string]*models.LabTest{
			"test-1": {ID: "test-1", Name: "CBC", Price: 15},
		},
		packages: map[string]*models.LabPackage{
			"pkg-1": {ID: "pkg-1", Name: "Basic panel", PackagePrice: 40},
		},
	}
	orders := &fakeOrderRepo{}
	svc := &DefaultCatalogService{
		Medicines: medicines,
		Labs:      labs,
		Orders:    orders,
		Logger:    zap.NewNop(),
	}
	return svc, medicines, labs, orders
}

func TestPlaceMedicineOrder(t *testing.T) {
	t.Run("prices from catalog and dispenses stock", func(t *testing.T) {
		svc, medicines, _, _ := newCatalogService()
		order, err := svc.PlaceMedicineOrder("patient-1", models.MedicineOrderRequest{
			Items: []models.OrderItem{
				{MedicineID: "med-1", Quantity: 4, Price: 999}, // client price ignored
				{MedicineID: "med-2", Quantity: 2},
			},
		})
		if err != nil {
			t.Fatalf("PlaceMedicineOrder returned error: %v", err)
		}
		if order.TotalAmount != 4*2.5+2*8.0 {
			t.Errorf("total = %v, want %v", order.TotalAmount, 4*2.5+2*8.0)
		}
		if order.Items[0].Price != 2.5 {
			t.Errorf("item price must come from the catalog, got %v", order.Items[0].Price)
		}
		if got := medicines.medicines["med-1"].StockQuantity; got != 96 {
			t.Errorf("med-1 stock = %d, want 96", got)
		}
		if got := medicines.medicines["med-2"].StockQuantity; got != 1 {
			t.Errorf("med-2 stock = %d, want 1", got)
		}
	})

	t.Run("insufficient stock restores earlier dispenses", func(t *testing.T) {
		svc, medicines, _, _ := newCatalogService()
		_, err := svc.PlaceMedicineOrder("patient-1", models.MedicineOrderRequest{
			Items: []models.OrderItem{
				{MedicineID: "med-1", Quantity: 10},
				{MedicineID: "med-2", Quantity: 5}, // only 3 in stock
			},
		})
		var noStock *InsufficientStockError
		if !errors.As(err, &noStock) {
			t.Fatalf("expected InsufficientStockError, got %v", err)
		}
		if got := medicines.medicines["med-1"].StockQuantity; got != 100 {
			t.Errorf("med-1 stock after rollback = %d, want 100", got)
		}
	})

	t.Run("order insert failure restores stock", func(t *testing.T) {
		svc, medicines, _, orders := newCatalogService()
		orders.failCreate = true
		_, err := svc.PlaceMedicineOrder("patient-1", models.MedicineOrderRequest{
			Items: []models.OrderItem{{MedicineID: "med-1", Quantity: 5}},
		})
		if err == nil {
			t.Fatal("expected error from order insert")
		}
		if got := medicines.medicines["med-1"].StockQuantity; got != 100 {
			t.Errorf("stock after rollback = %d, want 100", got)
		}
	})

	t.Run("unknown medicine", func(t *testing.T) {
		svc, _, _, _ := newCatalogService()
		_, err := svc.PlaceMedicineOrder("patient-1", models.MedicineOrderRequest{
			Items: []models.OrderItem{{MedicineID: "missing", Quantity: 1}},
		})
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}

func TestPlaceLabOrder(t *testing.T) {
	svc, _, _, orders := newCatalogService()

	order, err := svc.PlaceLabOrder("patient-1", models.LabOrderRequest{
		TestIDs:    []string{"test-1"},
		PackageIDs: []string{"pkg-1"},
	})
	if err != nil {
		t.Fatalf("PlaceLabOrder returned error: %v", err)
	}
	if order.TotalAmount != 55 {
		t.Errorf("total = %v, want 55", order.TotalAmount)
	}
	if order.Status != models.LabOrderScheduled {
		t.Errorf("status = %s, want scheduled", order.Status)
	}
	if len(orders.labOrders) != 1 {
		t.Errorf("expected one stored lab order, got %d", len(orders.labOrders))
	}

	t.Run("empty order rejected", func(t *testing.T) {
		_, err := svc.PlaceLabOrder("patient-1", models.LabOrderRequest{})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestAdjustStock(t *testing.T) {
	svc, medicines, _, _ := newCatalogService()

	if err := svc.AdjustStock("admin-1", models.StockAdjustRequest{
		MedicineID: "med-2", Delta: 20, Reason: "restock",
	}); err != nil {
		t.Fatalf("AdjustStock returned error: %v", err)
	}
	if got := medicines.medicines["med-2"].StockQuantity; got != 23 {
		t.Errorf("stock = %d, want 23", got)
	}

	t.Run("underflow rejected", func(t *testing.T) {
		err := svc.AdjustStock("admin-1", models.StockAdjustRequest{
			MedicineID: "med-2", Delta: -50, Reason: "correction",
		})
		var noStock *InsufficientStockError
		if !errors.As(err, &noStock) {
			t.Fatalf("expected InsufficientStockError, got %v", err)
		}
	})

	t.Run("zero delta rejected", func(t *testing.T) {
		err := svc.AdjustStock("admin-1", models.StockAdjustRequest{
			MedicineID: "med-2", Delta: 0, Reason: "noop",
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestInventoryLowStockFlag(t *testing.T) {
	svc, _, _, _ := newCatalogService()

	items, err := svc.Inventory()
	if err != nil {
		t.Fatalf("Inventory returned error: %v", err)
	}
	flags := map[string]bool{}
	for _, item := range items {
		flags[item.ID] = item.LowStock
	}
	if flags["med-1"] {
		t.Error("med-1 with 100 units must not be low stock")
	}
	if !flags["med-2"] {
		t.Error("med-2 with 3 units must be flagged low stock")
	}
}
