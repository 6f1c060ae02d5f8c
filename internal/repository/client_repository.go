package repository

import (
	"context"

	"github.com/farm-management-api/internal/domain"
	"gorm.io/gorm"
)

// ClientRepository расширяет CRUD каскадным удалением клиента
type ClientRepository interface {
	CRUD[domain.Client]
	DeleteCascade(ctx context.Context, id int64) error
}

type clientRepository struct {
	CRUD[domain.Client]
	db *gorm.DB
}

// NewClientRepository создаёт новый экземпляр репозитория
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{
		CRUD: NewCRUD[domain.Client](db, domain.ErrClientNotFound),
		db:   db,
	}
}

// DeleteCascade удаляет клиента вместе со всеми его продажами.
// Оба удаления выполняются в одной транзакции: частичное удаление
// не должно оставлять осиротевшие продажи.
func (r *clientRepository) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&domain.Sale{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&domain.Client{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrClientNotFound
		}
		return nil
	})
}
