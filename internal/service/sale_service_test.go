package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/farm-management-api/internal/domain"
	"github.com/farm-management-api/internal/service"
)

// Фейковые репозитории в памяти с той же проверкой остатка, что и у
// настоящих: сервис тестируется в изоляции от БД.

type fakeHarvestRepo struct {
	harvests map[int64]*domain.Harvest
	sales    *fakeSaleRepo
}

func (f *fakeHarvestRepo) Create(ctx context.Context, harvest *domain.Harvest) error {
	f.harvests[harvest.ID] = harvest
	return nil
}

func (f *fakeHarvestRepo) GetByID(ctx context.Context, id int64) (*domain.Harvest, error) {
	harvest, ok := f.harvests[id]
	if !ok {
		return nil, domain.ErrHarvestNotFound
	}
	copied := *harvest
	return &copied, nil
}

func (f *fakeHarvestRepo) List(ctx context.Context) ([]domain.Harvest, error) { return nil, nil }

func (f *fakeHarvestRepo) Update(ctx context.Context, harvest *domain.Harvest) error { return nil }

func (f *fakeHarvestRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeHarvestRepo) ListAvailable(ctx context.Context) ([]domain.Harvest, error) {
	return nil, nil
}

func (f *fakeHarvestRepo) AvailableQuantity(ctx context.Context, harvestID int64) (int64, error) {
	return f.available(harvestID, nil)
}

func (f *fakeHarvestRepo) UpdateChecked(ctx context.Context, harvest *domain.Harvest) error {
	var sold int64
	for _, sale := range f.sales.sales {
		if sale.HarvestID == harvest.ID && sale.Status != domain.StatusCancelled {
			sold += sale.Quantity
		}
	}
	if harvest.Volume < sold {
		return domain.ErrVolumeBelowSold
	}
	f.harvests[harvest.ID] = harvest
	return nil
}

func (f *fakeHarvestRepo) available(harvestID int64, excludeSaleID *int64) (int64, error) {
	harvest, ok := f.harvests[harvestID]
	if !ok {
		return 0, domain.ErrHarvestNotFound
	}
	var sold int64
	for _, sale := range f.sales.sales {
		if sale.HarvestID != harvestID || sale.Status == domain.StatusCancelled {
			continue
		}
		if excludeSaleID != nil && sale.ID == *excludeSaleID {
			continue
		}
		sold += sale.Quantity
	}
	return harvest.Volume - sold, nil
}

type fakeSaleRepo struct {
	sales    map[int64]*domain.Sale
	nextID   int64
	harvests *fakeHarvestRepo
}

func (f *fakeSaleRepo) Create(ctx context.Context, sale *domain.Sale) error {
	f.nextID++
	sale.ID = f.nextID
	f.sales[sale.ID] = sale
	return nil
}

func (f *fakeSaleRepo) GetByID(ctx context.Context, id int64) (*domain.Sale, error) {
	sale, ok := f.sales[id]
	if !ok {
		return nil, domain.ErrSaleNotFound
	}
	copied := *sale
	return &copied, nil
}

func (f *fakeSaleRepo) List(ctx context.Context) ([]domain.Sale, error) { return nil, nil }

func (f *fakeSaleRepo) Update(ctx context.Context, sale *domain.Sale) error {
	f.sales[sale.ID] = sale
	return nil
}

func (f *fakeSaleRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.sales[id]; !ok {
		return domain.ErrSaleNotFound
	}
	delete(f.sales, id)
	return nil
}

func (f *fakeSaleRepo) CreateChecked(ctx context.Context, sale *domain.Sale) error {
	available, err := f.harvests.available(sale.HarvestID, nil)
	if err != nil {
		return err
	}
	if sale.Quantity > available {
		return domain.ErrInsufficientQuantity
	}
	sale.CreatedDate = time.Now()
	return f.Create(ctx, sale)
}

func (f *fakeSaleRepo) UpdateChecked(ctx context.Context, sale *domain.Sale) error {
	available, err := f.harvests.available(sale.HarvestID, &sale.ID)
	if err != nil {
		return err
	}
	if sale.Quantity > available {
		return domain.ErrInsufficientQuantity
	}
	return f.Update(ctx, sale)
}

func (f *fakeSaleRepo) ListByClient(ctx context.Context, clientID int64) ([]domain.Sale, error) {
	var sales []domain.Sale
	for _, sale := range f.sales {
		if sale.ClientID == clientID {
			sales = append(sales, *sale)
		}
	}
	return sales, nil
}

func (f *fakeSaleRepo) ListByHarvest(ctx context.Context, harvestID int64) ([]domain.Sale, error) {
	var sales []domain.Sale
	for _, sale := range f.sales {
		if sale.HarvestID == harvestID {
			sales = append(sales, *sale)
		}
	}
	return sales, nil
}

type fakeClientRepo struct {
	clients map[int64]*domain.Client
}

func (f *fakeClientRepo) Create(ctx context.Context, client *domain.Client) error { return nil }

func (f *fakeClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	client, ok := f.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	copied := *client
	return &copied, nil
}

func (f *fakeClientRepo) List(ctx context.Context) ([]domain.Client, error) { return nil, nil }

func (f *fakeClientRepo) Update(ctx context.Context, client *domain.Client) error { return nil }

func (f *fakeClientRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeClientRepo) DeleteCascade(ctx context.Context, id int64) error {
	if _, ok := f.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(f.clients, id)
	return nil
}

func newSaleFixture() (service.SaleService, *fakeSaleRepo) {
	harvestRepo := &fakeHarvestRepo{harvests: map[int64]*domain.Harvest{
		1: {ID: 1, FieldID: 1, CultureID: 1, Volume: 500, PricePerKg: 10},
	}}
	saleRepo := &fakeSaleRepo{sales: make(map[int64]*domain.Sale), harvests: harvestRepo}
	harvestRepo.sales = saleRepo
	clientRepo := &fakeClientRepo{clients: map[int64]*domain.Client{
		1: {ID: 1, CompanyName: "Grain Trade LLC", ContactPerson: "Petrenko", Phone: "+380501234567"},
	}}

	return service.NewSaleService(saleRepo, clientRepo, harvestRepo), saleRepo
}

func TestSaleService_CreateDefaultsStatus(t *testing.T) {
	svc, _ := newSaleFixture()

	created, err := svc.Create(context.Background(), &domain.Sale{
		ClientID: 1, HarvestID: 1, Quantity: 200, UnitPrice: 12,
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, created.Status)
	require.False(t, created.CreatedDate.IsZero())
}

func TestSaleService_CreateClientNotFound(t *testing.T) {
	svc, _ := newSaleFixture()

	_, err := svc.Create(context.Background(), &domain.Sale{
		ClientID: 99, HarvestID: 1, Quantity: 200, UnitPrice: 12,
	})
	require.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestSaleService_CreateHarvestNotFound(t *testing.T) {
	svc, _ := newSaleFixture()

	_, err := svc.Create(context.Background(), &domain.Sale{
		ClientID: 1, HarvestID: 99, Quantity: 200, UnitPrice: 12,
	})
	require.ErrorIs(t, err, domain.ErrHarvestNotFound)
}

func TestSaleService_CreateInsufficientQuantity(t *testing.T) {
	svc, _ := newSaleFixture()

	_, err := svc.Create(context.Background(), &domain.Sale{
		ClientID: 1, HarvestID: 1, Quantity: 501, UnitPrice: 12,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientQuantity)
}

func TestSaleService_UpdatePreservesCreatedDate(t *testing.T) {
	svc, repo := newSaleFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.Sale{
		ClientID: 1, HarvestID: 1, Quantity: 200, UnitPrice: 12,
	})
	require.NoError(t, err)
	originalDate := created.CreatedDate

	// Статус и дата создания не передаются при редактировании и
	// подставляются из существующей записи
	updated, err := svc.Update(ctx, &domain.Sale{
		ID: created.ID, ClientID: 1, HarvestID: 1, Quantity: 250, UnitPrice: 15,
	})
	require.NoError(t, err)
	require.Equal(t, originalDate, updated.CreatedDate)
	require.Equal(t, domain.StatusActive, updated.Status)
	require.EqualValues(t, 250, repo.sales[created.ID].Quantity)
}

func TestSaleService_UpdateExcludesOwnQuantity(t *testing.T) {
	svc, _ := newSaleFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.Sale{
		ClientID: 1, HarvestID: 1, Quantity: 300, UnitPrice: 12,
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, &domain.Sale{
		ID: created.ID, ClientID: 1, HarvestID: 1, Quantity: 500, UnitPrice: 12,
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, &domain.Sale{
		ID: created.ID, ClientID: 1, HarvestID: 1, Quantity: 501, UnitPrice: 12,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientQuantity)
}

func TestSaleService_UpdateMissingSale(t *testing.T) {
	svc, _ := newSaleFixture()

	_, err := svc.Update(context.Background(), &domain.Sale{
		ID: 99, ClientID: 1, HarvestID: 1, Quantity: 100, UnitPrice: 12,
	})
	require.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestSaleService_ListByClientMissing(t *testing.T) {
	svc, _ := newSaleFixture()

	_, err := svc.ListByClient(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrClientNotFound)
}
