package rentals

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

// Service сервис чтения аренд и истории движений по балансу
type Service struct {
	rentalRepo  RentalRepository
	paymentRepo PaymentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса аренд
func NewService(
	rentalRepo RentalRepository,
	paymentRepo PaymentRepository,
	logger Logger,
) *Service {
	return &Service{
		rentalRepo:  rentalRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// GetByID получает аренду по ID
// Клиент видит только свою аренду, менеджер - любую
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.RentalResponse, error) {
	s.logger.Info("GetByID: fetching rental id=%d for actor=%d", id, actor.ActorID())

	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			s.logger.Warn("GetByID: rental id=%d not found", id)
			return nil, ErrRentalNotFound
		}
		s.logger.Error("GetByID: repository error for rental id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if client, ok := actor.(domain.ClientActor); ok && rental.ClientID != client.ID {
		s.logger.Warn("GetByID: access denied for client=%d to rental id=%d", client.ID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainRental(rental), nil
}

// GetUserRentals получает историю аренд клиента
// Опционально фильтрует по статусу
func (s *Service) GetUserRentals(ctx context.Context, req *models.GetUserRentalsRequest) (*models.RentalListResponse, error) {
	s.logger.Info("GetUserRentals: fetching rentals for client=%d, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.RentalStatus
	if req.Status != nil {
		status, err := models.ToDomainRentalStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserRentals: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	rentals, err := s.rentalRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserRentals: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetUserRentals - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserRentals: fetched %d rentals for client=%d", len(rentals), req.ClientID)
	return models.FromDomainRentalList(rentals), nil
}

// GetUserPayments получает историю движений по балансу клиента
func (s *Service) GetUserPayments(ctx context.Context, clientID int64) (*models.PaymentListResponse, error) {
	s.logger.Info("GetUserPayments: fetching payments for client=%d", clientID)

	payments, err := s.paymentRepo.GetByClientID(ctx, clientID)
	if err != nil {
		s.logger.Error("GetUserPayments: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetUserPayments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPaymentList(payments), nil
}
