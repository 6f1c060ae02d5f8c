package service

import (
	"context"

	"github.com/farm-management-api/internal/domain"
	"github.com/farm-management-api/internal/repository"
)

// PurchaseService определяет бизнес-логику закупок материалов
type PurchaseService interface {
	Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	GetByID(ctx context.Context, id int64) (*domain.Purchase, error)
	List(ctx context.Context) ([]domain.Purchase, error)
	Update(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	Delete(ctx context.Context, id int64) error
}

type purchaseService struct {
	purchaseRepo repository.CRUD[domain.Purchase]
	materialRepo repository.CRUD[domain.MaterialType]
	supplierRepo repository.CRUD[domain.Supplier]
}

// NewPurchaseService создаёт новый экземпляр сервиса
func NewPurchaseService(
	purchaseRepo repository.CRUD[domain.Purchase],
	materialRepo repository.CRUD[domain.MaterialType],
	supplierRepo repository.CRUD[domain.Supplier],
) PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		materialRepo: materialRepo,
		supplierRepo: supplierRepo,
	}
}

func (s *purchaseService) Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	if err := s.checkRefs(ctx, purchase); err != nil {
		return nil, err
	}

	if purchase.Status == "" {
		purchase.Status = domain.StatusActive
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	return s.purchaseRepo.GetByID(ctx, purchase.ID)
}

func (s *purchaseService) GetByID(ctx context.Context, id int64) (*domain.Purchase, error) {
	return s.purchaseRepo.GetByID(ctx, id)
}

func (s *purchaseService) List(ctx context.Context) ([]domain.Purchase, error) {
	return s.purchaseRepo.List(ctx)
}

func (s *purchaseService) Update(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	existing, err := s.purchaseRepo.GetByID(ctx, purchase.ID)
	if err != nil {
		return nil, err
	}

	if err := s.checkRefs(ctx, purchase); err != nil {
		return nil, err
	}

	if purchase.Status == "" {
		purchase.Status = existing.Status
	}

	if err := s.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, err
	}

	return s.purchaseRepo.GetByID(ctx, purchase.ID)
}

func (s *purchaseService) Delete(ctx context.Context, id int64) error {
	return s.purchaseRepo.Delete(ctx, id)
}

func (s *purchaseService) checkRefs(ctx context.Context, purchase *domain.Purchase) error {
	if _, err := s.materialRepo.GetByID(ctx, purchase.MaterialID); err != nil {
		return err
	}
	if _, err := s.supplierRepo.GetByID(ctx, purchase.SupplierID); err != nil {
		return err
	}
	return nil
}
