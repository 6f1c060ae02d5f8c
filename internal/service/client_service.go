package service

import (
	"context"

	"github.com/farm-management-api/internal/domain"
	"github.com/farm-management-api/internal/repository"
)

// ClientService определяет бизнес-логику для клиентов.
// Удаление клиента всегда каскадное: его продажи удаляются вместе с ним
// в одной транзакции.
type ClientService interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int64) error
}

type clientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService создаёт новый экземпляр сервиса
func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) Create(ctx context.Context, client *domain.Client) error {
	return s.clientRepo.Create(ctx, client)
}

func (s *clientService) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) Update(ctx context.Context, client *domain.Client) error {
	if _, err := s.clientRepo.GetByID(ctx, client.ID); err != nil {
		return err
	}
	return s.clientRepo.Update(ctx, client)
}

func (s *clientService) Delete(ctx context.Context, id int64) error {
	return s.clientRepo.DeleteCascade(ctx, id)
}
