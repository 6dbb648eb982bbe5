package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
)

type CustomerService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

func (s *CustomerService) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) Create(ctx context.Context, input ports.CustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		Name:   input.Name,
		Phone:  input.Phone,
		IsGold: input.IsGold,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.logger.Info().Str("customer_id", customer.ID).Msg("customer created")
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, input ports.CustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		ID:     id,
		Name:   input.Name,
		Phone:  input.Phone,
		IsGold: input.IsGold,
	}
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes the customer and returns the deleted record.
func (s *CustomerService) Delete(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info().Str("customer_id", id).Msg("customer deleted")
	return customer, nil
}
