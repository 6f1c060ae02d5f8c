package service

import (
	"context"

	"github.com/farm-management-api/internal/repository"
)

// Catalog определяет бизнес-логику справочных сущностей (поля,
// культуры, работники, техника, материалы, поставщики, виды работ).
// Дополнительных правил у них нет, операции делегируются репозиторию.
type Catalog[T any] interface {
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id int64, entity *T) error
	Delete(ctx context.Context, id int64) error
}

type catalogService[T any] struct {
	repo repository.CRUD[T]
}

// NewCatalog создаёт сервис справочника поверх репозитория
func NewCatalog[T any](repo repository.CRUD[T]) Catalog[T] {
	return &catalogService[T]{repo: repo}
}

func (s *catalogService[T]) Create(ctx context.Context, entity *T) error {
	return s.repo.Create(ctx, entity)
}

func (s *catalogService[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *catalogService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *catalogService[T]) Update(ctx context.Context, id int64, entity *T) error {
	// Проверяем существование записи: обновление несуществующего id
	// должно вернуть not found, а не создать новую строку
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Update(ctx, entity)
}

func (s *catalogService[T]) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
