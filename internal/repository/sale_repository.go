package repository

import (
	"context"

	"github.com/farm-management-api/internal/domain"
	"gorm.io/gorm"
)

// SaleRepository расширяет CRUD проверяемыми записями: доступный
// остаток урожая пересчитывается в той же транзакции, что и запись,
// поэтому проверка и вставка не могут разойтись.
type SaleRepository interface {
	CRUD[domain.Sale]
	CreateChecked(ctx context.Context, sale *domain.Sale) error
	UpdateChecked(ctx context.Context, sale *domain.Sale) error
	ListByClient(ctx context.Context, clientID int64) ([]domain.Sale, error)
	ListByHarvest(ctx context.Context, harvestID int64) ([]domain.Sale, error)
}

type saleRepository struct {
	CRUD[domain.Sale]
	db *gorm.DB
}

// NewSaleRepository создаёт новый экземпляр репозитория
func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{
		CRUD: NewCRUD[domain.Sale](db, domain.ErrSaleNotFound, "Client", "Harvest"),
		db:   db,
	}
}

// CreateChecked вставляет продажу, если её количество не превышает
// доступный остаток урожая. Превышение отклоняется, а не урезается.
func (r *saleRepository) CreateChecked(ctx context.Context, sale *domain.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		available, err := availableQuantity(tx, sale.HarvestID, nil)
		if err != nil {
			return err
		}
		if sale.Quantity > available {
			return domain.ErrInsufficientQuantity
		}
		return tx.Create(sale).Error
	})
}

// UpdateChecked сохраняет продажу с той же проверкой остатка.
// Текущее количество самой продажи не учитывается в сумме проданного,
// иначе её нельзя было бы увеличить до реального остатка урожая.
func (r *saleRepository) UpdateChecked(ctx context.Context, sale *domain.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		available, err := availableQuantity(tx, sale.HarvestID, &sale.ID)
		if err != nil {
			return err
		}
		if sale.Quantity > available {
			return domain.ErrInsufficientQuantity
		}
		return tx.Save(sale).Error
	})
}

func (r *saleRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Preload("Harvest").
		Preload("Harvest.Culture").
		Order("id ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) ListByHarvest(ctx context.Context, harvestID int64) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.db.WithContext(ctx).
		Where("harvest_id = ?", harvestID).
		Preload("Client").
		Order("id ASC").
		Find(&sales).Error
	return sales, err
}
