package service

import (
	"context"

	"github.com/farm-management-api/internal/domain"
	"github.com/farm-management-api/internal/repository"
)

// WorkService определяет бизнес-логику полевых работ.
// Стоимость работы - производное значение от назначенной техники,
// считается методом модели при формировании ответа.
type WorkService interface {
	Create(ctx context.Context, work *domain.Work) (*domain.Work, error)
	GetByID(ctx context.Context, id int64) (*domain.Work, error)
	List(ctx context.Context) ([]domain.Work, error)
	Update(ctx context.Context, work *domain.Work) (*domain.Work, error)
	Delete(ctx context.Context, id int64) error
}

type workService struct {
	workRepo      repository.CRUD[domain.Work]
	workTypeRepo  repository.CRUD[domain.WorkType]
	fieldRepo     repository.CRUD[domain.Field]
	techniqueRepo repository.CRUD[domain.Technique]
	employeeRepo  repository.CRUD[domain.Employee]
}

// NewWorkService создаёт новый экземпляр сервиса
func NewWorkService(
	workRepo repository.CRUD[domain.Work],
	workTypeRepo repository.CRUD[domain.WorkType],
	fieldRepo repository.CRUD[domain.Field],
	techniqueRepo repository.CRUD[domain.Technique],
	employeeRepo repository.CRUD[domain.Employee],
) WorkService {
	return &workService{
		workRepo:      workRepo,
		workTypeRepo:  workTypeRepo,
		fieldRepo:     fieldRepo,
		techniqueRepo: techniqueRepo,
		employeeRepo:  employeeRepo,
	}
}

func (s *workService) Create(ctx context.Context, work *domain.Work) (*domain.Work, error) {
	if err := s.checkRefs(ctx, work); err != nil {
		return nil, err
	}
	if err := s.workRepo.Create(ctx, work); err != nil {
		return nil, err
	}
	// Перечитываем с навигационными полями: ответу нужна техника
	// для расчёта стоимости
	return s.workRepo.GetByID(ctx, work.ID)
}

func (s *workService) GetByID(ctx context.Context, id int64) (*domain.Work, error) {
	return s.workRepo.GetByID(ctx, id)
}

func (s *workService) List(ctx context.Context) ([]domain.Work, error) {
	return s.workRepo.List(ctx)
}

func (s *workService) Update(ctx context.Context, work *domain.Work) (*domain.Work, error) {
	if _, err := s.workRepo.GetByID(ctx, work.ID); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, work); err != nil {
		return nil, err
	}
	if err := s.workRepo.Update(ctx, work); err != nil {
		return nil, err
	}
	return s.workRepo.GetByID(ctx, work.ID)
}

func (s *workService) Delete(ctx context.Context, id int64) error {
	return s.workRepo.Delete(ctx, id)
}

func (s *workService) checkRefs(ctx context.Context, work *domain.Work) error {
	if _, err := s.workTypeRepo.GetByID(ctx, work.WorkTypeID); err != nil {
		return err
	}
	if _, err := s.fieldRepo.GetByID(ctx, work.FieldID); err != nil {
		return err
	}
	if work.TechniqueID != nil {
		if _, err := s.techniqueRepo.GetByID(ctx, *work.TechniqueID); err != nil {
			return err
		}
	}
	if work.EmployeeID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *work.EmployeeID); err != nil {
			return err
		}
	}
	return nil
}
