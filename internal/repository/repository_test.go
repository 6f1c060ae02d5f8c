package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/farm-management-api/internal/domain"
	"github.com/farm-management-api/internal/repository"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "farm_test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&domain.Field{},
		&domain.Culture{},
		&domain.Employee{},
		&domain.Technique{},
		&domain.MaterialType{},
		&domain.Supplier{},
		&domain.WorkType{},
		&domain.Planting{},
		&domain.Harvest{},
		&domain.Client{},
		&domain.Sale{},
		&domain.Purchase{},
		&domain.Work{},
		&domain.MaterialUsage{},
		&domain.Expense{},
	)
	require.NoError(t, err)

	return db
}

// seedHarvest создаёт поле, культуру, урожай заданного объёма и клиента
func seedHarvest(t *testing.T, db *gorm.DB, volume int64) (*domain.Harvest, *domain.Client) {
	t.Helper()

	field := &domain.Field{Name: "North Field", Area: 120, SoilType: "Chernozem"}
	require.NoError(t, db.Create(field).Error)

	culture := &domain.Culture{Name: "Wheat", Seasonality: "Winter", AverageYield: 45}
	require.NoError(t, db.Create(culture).Error)

	harvest := &domain.Harvest{
		FieldID:     field.ID,
		CultureID:   culture.ID,
		HarvestDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Volume:      volume,
		PricePerKg:  10,
	}
	require.NoError(t, db.Create(harvest).Error)

	client := &domain.Client{CompanyName: "Grain Trade LLC", ContactPerson: "Petrenko", Phone: "+380501234567"}
	require.NoError(t, db.Create(client).Error)

	return harvest, client
}

func TestCRUDRepository_Lifecycle(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := repository.NewCRUD[domain.Field](db, domain.ErrFieldNotFound)

	field := &domain.Field{Name: "North Field", Area: 120, SoilType: "Chernozem"}
	require.NoError(t, repo.Create(ctx, field))
	require.NotZero(t, field.ID)

	got, err := repo.GetByID(ctx, field.ID)
	require.NoError(t, err)
	require.Equal(t, "North Field", got.Name)

	got.Name = "Renamed Field"
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, field.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed Field", updated.Name)

	second := &domain.Field{Name: "South Field", Area: 80, SoilType: "Loam"}
	require.NoError(t, repo.Create(ctx, second))

	fields, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	require.Equal(t, field.ID, fields[0].ID)

	require.NoError(t, repo.Delete(ctx, field.ID))

	_, err = repo.GetByID(ctx, field.ID)
	require.ErrorIs(t, err, domain.ErrFieldNotFound)

	require.ErrorIs(t, repo.Delete(ctx, field.ID), domain.ErrFieldNotFound)
}

func TestCRUDRepository_GetMissing(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewCRUD[domain.Culture](db, domain.ErrCultureNotFound)

	_, err := repo.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrCultureNotFound)
}

func TestCRUDRepository_Preloads(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	harvest, _ := seedHarvest(t, db, 500)

	repo := repository.NewCRUD[domain.Planting](db, domain.ErrPlantingNotFound, "Field", "Culture")
	planting := &domain.Planting{
		FieldID:    harvest.FieldID,
		CultureID:  harvest.CultureID,
		SowingDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, planting))

	got, err := repo.GetByID(ctx, planting.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Field)
	require.NotNil(t, got.Culture)
	require.Equal(t, "Wheat", got.Culture.Name)
}

func TestHarvestRepository_AvailableQuantity(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	harvest, client := seedHarvest(t, db, 500)

	harvestRepo := repository.NewHarvestRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	available, err := harvestRepo.AvailableQuantity(ctx, harvest.ID)
	require.NoError(t, err)
	require.EqualValues(t, 500, available)

	sale := &domain.Sale{ClientID: client.ID, HarvestID: harvest.ID, Quantity: 200, UnitPrice: 12, Status: domain.StatusActive}
	require.NoError(t, saleRepo.CreateChecked(ctx, sale))

	available, err = harvestRepo.AvailableQuantity(ctx, harvest.ID)
	require.NoError(t, err)
	require.EqualValues(t, 300, available)

	second := &domain.Sale{ClientID: client.ID, HarvestID: harvest.ID, Quantity: 300, UnitPrice: 12, Status: domain.StatusActive}
	require.NoError(t, saleRepo.CreateChecked(ctx, second))

	available, err = harvestRepo.AvailableQuantity(ctx, harvest.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, available)
}

func TestHarvestRepository_AvailableQuantityMissing(t *testing.T) {
	db := setupDB(t)
	harvestRepo := repository.NewHarvestRepository(db)

	_, err := harvestRepo.AvailableQuantity(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrHarvestNotFound)
}

func TestSaleRepository_CreateCheckedRejectsOversell(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	harvest, client := seedHarvest(t, db, 500)

	saleRepo := repository.NewSaleRepository(db)

	first := &domain.Sale{ClientID: client.ID, HarvestID: harvest.ID, Quantity: 500, UnitPrice: 12, Status: domain.StatusActive}
	require.NoError(t, saleRepo.CreateChecked(ctx, first))

	oversell := &domain.Sale{ClientID: client.ID, HarvestID: harvest.ID, Quantity: 1, UnitPrice: 12, Status: domain.StatusActive}
	err := saleRepo.CreateChecked(ctx, oversell)
	require.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	// Отклонённая вставка не оставляет строку
	var count int64
	require.NoError(t, db.Model(&domain.Sale{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSaleRepository_UpdateCheckedExcludesSelf(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	harvest, client := seedHarvest(t, db, 500)

	saleRepo := repository.NewSaleRepository(db)

	sale := &domain.Sale{ClientID: client.ID, HarvestID: harvest.ID, Quantity: 300, UnitPrice: 12, Status: domain.StatusActive}
	require.NoError(t, saleRepo.CreateChecked(ctx, sale))

	// Увеличение до полного объёма допустимо: собственное количество
	// продажи не учитывается в сумме проданного
	sale.Quantity = 500
	require.NoError(t, saleRepo.UpdateChecked(ctx, sale))

	sale.Quantity = 501
	require.ErrorIs(t, saleRepo.UpdateChecked(ctx, sale), domain.ErrInsufficientQuantity)
}

func TestHarvestRepository_UpdateCheckedRejectsVolumeBelowSold(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	harvest, client := seedHarvest(t, db, 500)

	harvestRepo := repository.NewHarvestRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	sale := &domain.Sale{ClientID: client.ID, HarvestID: harvest.ID, Quantity: 400, UnitPrice: 12, Status: domain.StatusActive}
	require.NoError(t, saleRepo.CreateChecked(ctx, sale))

	harvest.Volume = 100
	require.ErrorIs(t, harvestRepo.UpdateChecked(ctx, harvest), domain.ErrVolumeBelowSold)

	// Объём не изменился, остаток не ушёл в минус
	stored, err := harvestRepo.GetByID(ctx, harvest.ID)
	require.NoError(t, err)
	require.EqualValues(t, 500, stored.Volume)

	available, err := harvestRepo.AvailableQuantity(ctx, harvest.ID)
	require.NoError(t, err)
	require.EqualValues(t, 100, available)

	// Снижение до суммы проданного допустимо
	harvest.Volume = 400
	require.NoError(t, harvestRepo.UpdateChecked(ctx, harvest))

	available, err = harvestRepo.AvailableQuantity(ctx, harvest.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, available)
}

func TestHarvestRepository_UpdateCheckedIgnoresCancelledSales(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	harvest, client := seedHarvest(t, db, 500)

	harvestRepo := repository.NewHarvestRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	sale := &domain.Sale{ClientID: client.ID, HarvestID: harvest.ID, Quantity: 400, UnitPrice: 12, Status: domain.StatusCancelled}
	require.NoError(t, saleRepo.Create(ctx, sale))

	harvest.Volume = 100
	require.NoError(t, harvestRepo.UpdateChecked(ctx, harvest))
}

func TestSaleRepository_CancelledSaleFreesQuantity(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	harvest, client := seedHarvest(t, db, 500)

	harvestRepo := repository.NewHarvestRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	sale := &domain.Sale{ClientID: client.ID, HarvestID: harvest.ID, Quantity: 400, UnitPrice: 12, Status: domain.StatusActive}
	require.NoError(t, saleRepo.CreateChecked(ctx, sale))

	available, err := harvestRepo.AvailableQuantity(ctx, harvest.ID)
	require.NoError(t, err)
	require.EqualValues(t, 100, available)

	sale.Status = domain.StatusCancelled
	require.NoError(t, saleRepo.UpdateChecked(ctx, sale))

	available, err = harvestRepo.AvailableQuantity(ctx, harvest.ID)
	require.NoError(t, err)
	require.EqualValues(t, 500, available)
}

func TestHarvestRepository_ListAvailable(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	harvest, client := seedHarvest(t, db, 500)

	second := &domain.Harvest{
		FieldID:     harvest.FieldID,
		CultureID:   harvest.CultureID,
		HarvestDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		Volume:      300,
		PricePerKg:  8,
	}
	require.NoError(t, db.Create(second).Error)

	saleRepo := repository.NewSaleRepository(db)
	active := &domain.Sale{ClientID: client.ID, HarvestID: harvest.ID, Quantity: 200, UnitPrice: 12, Status: domain.StatusActive}
	require.NoError(t, saleRepo.CreateChecked(ctx, active))
	cancelled := &domain.Sale{ClientID: client.ID, HarvestID: harvest.ID, Quantity: 100, UnitPrice: 12, Status: domain.StatusCancelled}
	require.NoError(t, saleRepo.CreateChecked(ctx, cancelled))

	harvestRepo := repository.NewHarvestRepository(db)
	harvests, err := harvestRepo.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, harvests, 2)

	require.Equal(t, harvest.ID, harvests[0].ID)
	require.EqualValues(t, 300, harvests[0].AvailableQuantity)
	require.NotNil(t, harvests[0].Field)
	require.NotNil(t, harvests[0].Culture)

	require.Equal(t, second.ID, harvests[1].ID)
	require.EqualValues(t, 300, harvests[1].AvailableQuantity)
}

func TestSaleRepository_ListByClientAndHarvest(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	harvest, client := seedHarvest(t, db, 500)

	other := &domain.Client{CompanyName: "Agro Export", ContactPerson: "Shevchenko", Phone: "+380937654321"}
	require.NoError(t, db.Create(other).Error)

	saleRepo := repository.NewSaleRepository(db)
	require.NoError(t, saleRepo.CreateChecked(ctx, &domain.Sale{
		ClientID: client.ID, HarvestID: harvest.ID, Quantity: 100, UnitPrice: 12, Status: domain.StatusActive,
	}))
	require.NoError(t, saleRepo.CreateChecked(ctx, &domain.Sale{
		ClientID: other.ID, HarvestID: harvest.ID, Quantity: 150, UnitPrice: 14, Status: domain.StatusActive,
	}))

	byClient, err := saleRepo.ListByClient(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, byClient, 1)
	require.NotNil(t, byClient[0].Harvest)
	require.NotNil(t, byClient[0].Harvest.Culture)

	byHarvest, err := saleRepo.ListByHarvest(ctx, harvest.ID)
	require.NoError(t, err)
	require.Len(t, byHarvest, 2)
	require.NotNil(t, byHarvest[0].Client)
}

func TestClientRepository_DeleteCascade(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	harvest, client := seedHarvest(t, db, 500)

	saleRepo := repository.NewSaleRepository(db)
	require.NoError(t, saleRepo.CreateChecked(ctx, &domain.Sale{
		ClientID: client.ID, HarvestID: harvest.ID, Quantity: 100, UnitPrice: 12, Status: domain.StatusActive,
	}))
	require.NoError(t, saleRepo.CreateChecked(ctx, &domain.Sale{
		ClientID: client.ID, HarvestID: harvest.ID, Quantity: 200, UnitPrice: 12, Status: domain.StatusActive,
	}))

	clientRepo := repository.NewClientRepository(db)
	require.NoError(t, clientRepo.DeleteCascade(ctx, client.ID))

	_, err := clientRepo.GetByID(ctx, client.ID)
	require.ErrorIs(t, err, domain.ErrClientNotFound)

	var count int64
	require.NoError(t, db.Model(&domain.Sale{}).Where("client_id = ?", client.ID).Count(&count).Error)
	require.Zero(t, count)

	// Объём урожая освобождается вместе с удалёнными продажами
	harvestRepo := repository.NewHarvestRepository(db)
	available, err := harvestRepo.AvailableQuantity(ctx, harvest.ID)
	require.NoError(t, err)
	require.EqualValues(t, 500, available)
}

func TestClientRepository_DeleteCascadeMissing(t *testing.T) {
	db := setupDB(t)
	clientRepo := repository.NewClientRepository(db)

	err := clientRepo.DeleteCascade(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestMaterialUsageRepository_ListByWork(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	field := &domain.Field{Name: "South Field", Area: 80, SoilType: "Loam"}
	require.NoError(t, db.Create(field).Error)
	workType := &domain.WorkType{Name: "Plowing"}
	require.NoError(t, db.Create(workType).Error)
	material := &domain.MaterialType{Name: "Diesel", Type: "Fuel", Unit: "l"}
	require.NoError(t, db.Create(material).Error)

	work := &domain.Work{
		WorkTypeID: workType.ID,
		FieldID:    field.ID,
		Date:       time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		Duration:   8,
	}
	require.NoError(t, db.Create(work).Error)
	otherWork := &domain.Work{
		WorkTypeID: workType.ID,
		FieldID:    field.ID,
		Date:       time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC),
		Duration:   4,
	}
	require.NoError(t, db.Create(otherWork).Error)

	usageRepo := repository.NewMaterialUsageRepository(db)
	require.NoError(t, usageRepo.Create(ctx, &domain.MaterialUsage{MaterialTypeID: material.ID, Quantity: 50, WorkID: work.ID}))
	require.NoError(t, usageRepo.Create(ctx, &domain.MaterialUsage{MaterialTypeID: material.ID, Quantity: 20, WorkID: work.ID}))
	require.NoError(t, usageRepo.Create(ctx, &domain.MaterialUsage{MaterialTypeID: material.ID, Quantity: 30, WorkID: otherWork.ID}))

	usages, err := usageRepo.ListByWork(ctx, work.ID)
	require.NoError(t, err)
	require.Len(t, usages, 2)
	require.NotNil(t, usages[0].MaterialType)
	require.Equal(t, "Diesel", usages[0].MaterialType.Name)
}
