package service

import (
	"context"

	"github.com/farm-management-api/internal/domain"
	"github.com/farm-management-api/internal/repository"
)

// Сервисы посевов, расходов материалов и затрат: CRUD с проверкой
// существования связанных записей перед записью.

// PlantingService определяет бизнес-логику посевов
type PlantingService interface {
	Create(ctx context.Context, planting *domain.Planting) (*domain.Planting, error)
	GetByID(ctx context.Context, id int64) (*domain.Planting, error)
	List(ctx context.Context) ([]domain.Planting, error)
	Update(ctx context.Context, planting *domain.Planting) (*domain.Planting, error)
	Delete(ctx context.Context, id int64) error
}

type plantingService struct {
	plantingRepo repository.CRUD[domain.Planting]
	fieldRepo    repository.CRUD[domain.Field]
	cultureRepo  repository.CRUD[domain.Culture]
}

// NewPlantingService создаёт новый экземпляр сервиса
func NewPlantingService(
	plantingRepo repository.CRUD[domain.Planting],
	fieldRepo repository.CRUD[domain.Field],
	cultureRepo repository.CRUD[domain.Culture],
) PlantingService {
	return &plantingService{
		plantingRepo: plantingRepo,
		fieldRepo:    fieldRepo,
		cultureRepo:  cultureRepo,
	}
}

func (s *plantingService) Create(ctx context.Context, planting *domain.Planting) (*domain.Planting, error) {
	if err := s.checkRefs(ctx, planting); err != nil {
		return nil, err
	}
	if err := s.plantingRepo.Create(ctx, planting); err != nil {
		return nil, err
	}
	return s.plantingRepo.GetByID(ctx, planting.ID)
}

func (s *plantingService) GetByID(ctx context.Context, id int64) (*domain.Planting, error) {
	return s.plantingRepo.GetByID(ctx, id)
}

func (s *plantingService) List(ctx context.Context) ([]domain.Planting, error) {
	return s.plantingRepo.List(ctx)
}

func (s *plantingService) Update(ctx context.Context, planting *domain.Planting) (*domain.Planting, error) {
	if _, err := s.plantingRepo.GetByID(ctx, planting.ID); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, planting); err != nil {
		return nil, err
	}
	if err := s.plantingRepo.Update(ctx, planting); err != nil {
		return nil, err
	}
	return s.plantingRepo.GetByID(ctx, planting.ID)
}

func (s *plantingService) Delete(ctx context.Context, id int64) error {
	return s.plantingRepo.Delete(ctx, id)
}

func (s *plantingService) checkRefs(ctx context.Context, planting *domain.Planting) error {
	if _, err := s.fieldRepo.GetByID(ctx, planting.FieldID); err != nil {
		return err
	}
	if _, err := s.cultureRepo.GetByID(ctx, planting.CultureID); err != nil {
		return err
	}
	return nil
}

// MaterialUsageService определяет бизнес-логику расходов материалов
type MaterialUsageService interface {
	Create(ctx context.Context, usage *domain.MaterialUsage) (*domain.MaterialUsage, error)
	GetByID(ctx context.Context, id int64) (*domain.MaterialUsage, error)
	List(ctx context.Context) ([]domain.MaterialUsage, error)
	ListByWork(ctx context.Context, workID int64) ([]domain.MaterialUsage, error)
	Update(ctx context.Context, usage *domain.MaterialUsage) (*domain.MaterialUsage, error)
	Delete(ctx context.Context, id int64) error
}

type materialUsageService struct {
	usageRepo    repository.MaterialUsageRepository
	materialRepo repository.CRUD[domain.MaterialType]
	workRepo     repository.CRUD[domain.Work]
}

// NewMaterialUsageService создаёт новый экземпляр сервиса
func NewMaterialUsageService(
	usageRepo repository.MaterialUsageRepository,
	materialRepo repository.CRUD[domain.MaterialType],
	workRepo repository.CRUD[domain.Work],
) MaterialUsageService {
	return &materialUsageService{
		usageRepo:    usageRepo,
		materialRepo: materialRepo,
		workRepo:     workRepo,
	}
}

func (s *materialUsageService) Create(ctx context.Context, usage *domain.MaterialUsage) (*domain.MaterialUsage, error) {
	if err := s.checkRefs(ctx, usage); err != nil {
		return nil, err
	}
	if err := s.usageRepo.Create(ctx, usage); err != nil {
		return nil, err
	}
	return s.usageRepo.GetByID(ctx, usage.ID)
}

func (s *materialUsageService) GetByID(ctx context.Context, id int64) (*domain.MaterialUsage, error) {
	return s.usageRepo.GetByID(ctx, id)
}

func (s *materialUsageService) List(ctx context.Context) ([]domain.MaterialUsage, error) {
	return s.usageRepo.List(ctx)
}

func (s *materialUsageService) ListByWork(ctx context.Context, workID int64) ([]domain.MaterialUsage, error) {
	if _, err := s.workRepo.GetByID(ctx, workID); err != nil {
		return nil, err
	}
	return s.usageRepo.ListByWork(ctx, workID)
}

func (s *materialUsageService) Update(ctx context.Context, usage *domain.MaterialUsage) (*domain.MaterialUsage, error) {
	if _, err := s.usageRepo.GetByID(ctx, usage.ID); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, usage); err != nil {
		return nil, err
	}
	if err := s.usageRepo.Update(ctx, usage); err != nil {
		return nil, err
	}
	return s.usageRepo.GetByID(ctx, usage.ID)
}

func (s *materialUsageService) Delete(ctx context.Context, id int64) error {
	return s.usageRepo.Delete(ctx, id)
}

func (s *materialUsageService) checkRefs(ctx context.Context, usage *domain.MaterialUsage) error {
	if _, err := s.materialRepo.GetByID(ctx, usage.MaterialTypeID); err != nil {
		return err
	}
	if _, err := s.workRepo.GetByID(ctx, usage.WorkID); err != nil {
		return err
	}
	return nil
}

// ExpenseService определяет бизнес-логику затрат
type ExpenseService interface {
	Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	GetByID(ctx context.Context, id int64) (*domain.Expense, error)
	List(ctx context.Context) ([]domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	Delete(ctx context.Context, id int64) error
}

type expenseService struct {
	expenseRepo repository.CRUD[domain.Expense]
	workRepo    repository.CRUD[domain.Work]
}

// NewExpenseService создаёт новый экземпляр сервиса
func NewExpenseService(
	expenseRepo repository.CRUD[domain.Expense],
	workRepo repository.CRUD[domain.Work],
) ExpenseService {
	return &expenseService{
		expenseRepo: expenseRepo,
		workRepo:    workRepo,
	}
}

func (s *expenseService) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if err := s.checkRefs(ctx, expense); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return s.expenseRepo.GetByID(ctx, expense.ID)
}

func (s *expenseService) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	return s.expenseRepo.GetByID(ctx, id)
}

func (s *expenseService) List(ctx context.Context) ([]domain.Expense, error) {
	return s.expenseRepo.List(ctx)
}

func (s *expenseService) Update(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if _, err := s.expenseRepo.GetByID(ctx, expense.ID); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, expense); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return s.expenseRepo.GetByID(ctx, expense.ID)
}

func (s *expenseService) Delete(ctx context.Context, id int64) error {
	return s.expenseRepo.Delete(ctx, id)
}

func (s *expenseService) checkRefs(ctx context.Context, expense *domain.Expense) error {
	if expense.WorkID != nil {
		if _, err := s.workRepo.GetByID(ctx, *expense.WorkID); err != nil {
			return err
		}
	}
	return nil
}
