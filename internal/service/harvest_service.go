package service

import (
	"context"

	"github.com/farm-management-api/internal/domain"
	"github.com/farm-management-api/internal/repository"
)

// HarvestService определяет бизнес-логику для урожаев и учёта остатков
type HarvestService interface {
	Create(ctx context.Context, harvest *domain.Harvest) (*domain.Harvest, error)
	GetByID(ctx context.Context, id int64) (*domain.Harvest, error)
	ListAvailable(ctx context.Context) ([]domain.Harvest, error)
	AvailableQuantity(ctx context.Context, id int64) (int64, error)
	Update(ctx context.Context, harvest *domain.Harvest) (*domain.Harvest, error)
	Delete(ctx context.Context, id int64) error
}

type harvestService struct {
	harvestRepo repository.HarvestRepository
	fieldRepo   repository.CRUD[domain.Field]
	cultureRepo repository.CRUD[domain.Culture]
}

// NewHarvestService создаёт новый экземпляр сервиса
func NewHarvestService(
	harvestRepo repository.HarvestRepository,
	fieldRepo repository.CRUD[domain.Field],
	cultureRepo repository.CRUD[domain.Culture],
) HarvestService {
	return &harvestService{
		harvestRepo: harvestRepo,
		fieldRepo:   fieldRepo,
		cultureRepo: cultureRepo,
	}
}

func (s *harvestService) Create(ctx context.Context, harvest *domain.Harvest) (*domain.Harvest, error) {
	if err := s.checkRefs(ctx, harvest); err != nil {
		return nil, err
	}
	if err := s.harvestRepo.Create(ctx, harvest); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, harvest.ID)
}

// GetByID возвращает урожай с заполненным доступным остатком
func (s *harvestService) GetByID(ctx context.Context, id int64) (*domain.Harvest, error) {
	harvest, err := s.harvestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	available, err := s.harvestRepo.AvailableQuantity(ctx, id)
	if err != nil {
		return nil, err
	}
	harvest.AvailableQuantity = available

	return harvest, nil
}

// ListAvailable возвращает все урожаи, каждый с текущим остатком
func (s *harvestService) ListAvailable(ctx context.Context) ([]domain.Harvest, error) {
	return s.harvestRepo.ListAvailable(ctx)
}

func (s *harvestService) AvailableQuantity(ctx context.Context, id int64) (int64, error) {
	return s.harvestRepo.AvailableQuantity(ctx, id)
}

func (s *harvestService) Update(ctx context.Context, harvest *domain.Harvest) (*domain.Harvest, error) {
	if _, err := s.harvestRepo.GetByID(ctx, harvest.ID); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, harvest); err != nil {
		return nil, err
	}
	// Объём нельзя уменьшить ниже уже проданного количества
	if err := s.harvestRepo.UpdateChecked(ctx, harvest); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, harvest.ID)
}

func (s *harvestService) Delete(ctx context.Context, id int64) error {
	return s.harvestRepo.Delete(ctx, id)
}

func (s *harvestService) checkRefs(ctx context.Context, harvest *domain.Harvest) error {
	if _, err := s.fieldRepo.GetByID(ctx, harvest.FieldID); err != nil {
		return err
	}
	if _, err := s.cultureRepo.GetByID(ctx, harvest.CultureID); err != nil {
		return err
	}
	return nil
}
