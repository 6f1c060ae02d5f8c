package repository

import (
	"context"

	"github.com/farm-management-api/internal/domain"
	"gorm.io/gorm"
)

// HarvestRepository расширяет CRUD операциями учёта остатков урожая
type HarvestRepository interface {
	CRUD[domain.Harvest]
	ListAvailable(ctx context.Context) ([]domain.Harvest, error)
	AvailableQuantity(ctx context.Context, harvestID int64) (int64, error)
	UpdateChecked(ctx context.Context, harvest *domain.Harvest) error
}

type harvestRepository struct {
	CRUD[domain.Harvest]
	db *gorm.DB
}

// NewHarvestRepository создаёт новый экземпляр репозитория
func NewHarvestRepository(db *gorm.DB) HarvestRepository {
	return &harvestRepository{
		CRUD: NewCRUD[domain.Harvest](db, domain.ErrHarvestNotFound, "Field", "Culture"),
		db:   db,
	}
}

// ListAvailable возвращает все урожаи с текущим доступным остатком.
// Остаток считается одним агрегирующим запросом по продажам на момент
// вызова и нигде не кешируется. Отменённые продажи не резервируют объём.
func (r *harvestRepository) ListAvailable(ctx context.Context) ([]domain.Harvest, error) {
	var harvests []domain.Harvest
	err := r.db.WithContext(ctx).
		Model(&domain.Harvest{}).
		Select("harvests.*, harvests.volume - COALESCE(SUM(sales.quantity), 0) AS available_quantity").
		Joins("LEFT JOIN sales ON sales.harvest_id = harvests.id AND sales.status <> ?", domain.StatusCancelled).
		Group("harvests.id").
		Preload("Field").
		Preload("Culture").
		Order("harvests.id ASC").
		Find(&harvests).Error
	return harvests, err
}

func (r *harvestRepository) AvailableQuantity(ctx context.Context, harvestID int64) (int64, error) {
	return availableQuantity(r.db.WithContext(ctx), harvestID, nil)
}

// UpdateChecked сохраняет урожай, если новый объём не меньше суммы
// неотменённых продаж. Сумма пересчитывается в транзакции записи:
// остаток не может стать отрицательным при уменьшении объёма.
func (r *harvestRepository) UpdateChecked(ctx context.Context, harvest *domain.Harvest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sold int64
		err := tx.Model(&domain.Sale{}).
			Where("harvest_id = ?", harvest.ID).
			Where("status <> ?", domain.StatusCancelled).
			Select("COALESCE(SUM(quantity), 0)").
			Scan(&sold).Error
		if err != nil {
			return err
		}
		if harvest.Volume < sold {
			return domain.ErrVolumeBelowSold
		}
		return tx.Save(harvest).Error
	})
}

// availableQuantity считает доступный остаток урожая: объём минус сумма
// неотменённых продаж. excludeSaleID исключает из суммы редактируемую
// продажу, чтобы её текущее количество не блокировало само себя.
func availableQuantity(tx *gorm.DB, harvestID int64, excludeSaleID *int64) (int64, error) {
	var harvest domain.Harvest
	if err := tx.Select("id", "volume").First(&harvest, harvestID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, domain.ErrHarvestNotFound
		}
		return 0, err
	}

	query := tx.Model(&domain.Sale{}).
		Where("harvest_id = ?", harvestID).
		Where("status <> ?", domain.StatusCancelled)
	if excludeSaleID != nil {
		query = query.Where("id <> ?", *excludeSaleID)
	}

	var sold int64
	if err := query.Select("COALESCE(SUM(quantity), 0)").Scan(&sold).Error; err != nil {
		return 0, err
	}

	return harvest.Volume - sold, nil
}
