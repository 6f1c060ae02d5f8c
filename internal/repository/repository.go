package repository

import (
	"context"

	"gorm.io/gorm"
)

// CRUD определяет общий набор операций хранилища для сущности T.
// Каждая операция выполняет один запрос в рамках своей связи с БД
// и возвращает полностью заполненные объекты.
type CRUD[T any] interface {
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int64) error
}

// crudRepository - универсальная реализация CRUD поверх GORM.
// Заменяет собой повторяющиеся репозитории для каждой сущности.
type crudRepository[T any] struct {
	db       *gorm.DB
	notFound error
	preloads []string
}

// NewCRUD создаёт универсальный репозиторий для сущности T.
// notFound возвращается вместо gorm.ErrRecordNotFound, preloads
// перечисляют навигационные поля, загружаемые при чтении.
func NewCRUD[T any](db *gorm.DB, notFound error, preloads ...string) CRUD[T] {
	return &crudRepository[T]{db: db, notFound: notFound, preloads: preloads}
}

func (r *crudRepository[T]) withPreloads(ctx context.Context) *gorm.DB {
	query := r.db.WithContext(ctx)
	for _, preload := range r.preloads {
		query = query.Preload(preload)
	}
	return query
}

func (r *crudRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *crudRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := r.withPreloads(ctx).First(&entity, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, r.notFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *crudRepository[T]) List(ctx context.Context) ([]T, error) {
	var entities []T
	err := r.withPreloads(ctx).Order("id ASC").Find(&entities).Error
	return entities, err
}

func (r *crudRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *crudRepository[T]) Delete(ctx context.Context, id int64) error {
	var entity T
	result := r.db.WithContext(ctx).Delete(&entity, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}
	return nil
}
