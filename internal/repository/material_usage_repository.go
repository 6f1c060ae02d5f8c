package repository

import (
	"context"

	"github.com/farm-management-api/internal/domain"
	"gorm.io/gorm"
)

// MaterialUsageRepository расширяет CRUD выборкой расходов по работе
type MaterialUsageRepository interface {
	CRUD[domain.MaterialUsage]
	ListByWork(ctx context.Context, workID int64) ([]domain.MaterialUsage, error)
}

type materialUsageRepository struct {
	CRUD[domain.MaterialUsage]
	db *gorm.DB
}

// NewMaterialUsageRepository создаёт новый экземпляр репозитория
func NewMaterialUsageRepository(db *gorm.DB) MaterialUsageRepository {
	return &materialUsageRepository{
		CRUD: NewCRUD[domain.MaterialUsage](db, domain.ErrMaterialUsageNotFound, "MaterialType", "Work"),
		db:   db,
	}
}

func (r *materialUsageRepository) ListByWork(ctx context.Context, workID int64) ([]domain.MaterialUsage, error) {
	var usages []domain.MaterialUsage
	err := r.db.WithContext(ctx).
		Where("work_id = ?", workID).
		Preload("MaterialType").
		Order("id ASC").
		Find(&usages).Error
	return usages, err
}
