package service

import (
	"context"

	"github.com/farm-management-api/internal/domain"
	"github.com/farm-management-api/internal/repository"
)

// SaleService определяет бизнес-логику продаж. Количество каждой
// продажи проверяется против доступного остатка урожая в транзакции
// записи, превышение отклоняется как ошибка валидации.
type SaleService interface {
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	GetByID(ctx context.Context, id int64) (*domain.Sale, error)
	List(ctx context.Context) ([]domain.Sale, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Sale, error)
	ListByHarvest(ctx context.Context, harvestID int64) ([]domain.Sale, error)
	Update(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	Delete(ctx context.Context, id int64) error
}

type saleService struct {
	saleRepo    repository.SaleRepository
	clientRepo  repository.ClientRepository
	harvestRepo repository.HarvestRepository
}

// NewSaleService создаёт новый экземпляр сервиса
func NewSaleService(
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	harvestRepo repository.HarvestRepository,
) SaleService {
	return &saleService{
		saleRepo:    saleRepo,
		clientRepo:  clientRepo,
		harvestRepo: harvestRepo,
	}
}

func (s *saleService) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	if err := s.checkRefs(ctx, sale); err != nil {
		return nil, err
	}

	if sale.Status == "" {
		sale.Status = domain.StatusActive
	}

	if err := s.saleRepo.CreateChecked(ctx, sale); err != nil {
		return nil, err
	}

	return s.saleRepo.GetByID(ctx, sale.ID)
}

func (s *saleService) GetByID(ctx context.Context, id int64) (*domain.Sale, error) {
	return s.saleRepo.GetByID(ctx, id)
}

func (s *saleService) List(ctx context.Context) ([]domain.Sale, error) {
	return s.saleRepo.List(ctx)
}

func (s *saleService) ListByClient(ctx context.Context, clientID int64) ([]domain.Sale, error) {
	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.saleRepo.ListByClient(ctx, clientID)
}

func (s *saleService) ListByHarvest(ctx context.Context, harvestID int64) ([]domain.Sale, error) {
	if _, err := s.harvestRepo.GetByID(ctx, harvestID); err != nil {
		return nil, err
	}
	return s.saleRepo.ListByHarvest(ctx, harvestID)
}

func (s *saleService) Update(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	existing, err := s.saleRepo.GetByID(ctx, sale.ID)
	if err != nil {
		return nil, err
	}

	if err := s.checkRefs(ctx, sale); err != nil {
		return nil, err
	}

	// Дата создания не перезаписывается при редактировании
	sale.CreatedDate = existing.CreatedDate
	if sale.Status == "" {
		sale.Status = existing.Status
	}

	if err := s.saleRepo.UpdateChecked(ctx, sale); err != nil {
		return nil, err
	}

	return s.saleRepo.GetByID(ctx, sale.ID)
}

func (s *saleService) Delete(ctx context.Context, id int64) error {
	return s.saleRepo.Delete(ctx, id)
}

func (s *saleService) checkRefs(ctx context.Context, sale *domain.Sale) error {
	if _, err := s.clientRepo.GetByID(ctx, sale.ClientID); err != nil {
		return err
	}
	if _, err := s.harvestRepo.GetByID(ctx, sale.HarvestID); err != nil {
		return err
	}
	return nil
}
