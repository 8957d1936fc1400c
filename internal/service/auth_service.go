package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"carepal-be/internal/dto"
	"carepal-be/internal/entity"
	"carepal-be/internal/pkg/logger"
	"carepal-be/internal/repository/unitofwork"
	"carepal-be/pkg/events"
	natspub "carepal-be/pkg/nats"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type IAuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  *natspub.Publisher
	jwtSecret  []byte
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, publisher *natspub.Publisher, jwtSecret string, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		publisher:  publisher,
		jwtSecret:  []byte(jwtSecret),
		logger:     log,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	customer, err := s.uowFactory.CustomerRepository().FindByNIK(ctx, req.NIK)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("auth", "Login rejected", map[string]interface{}{"nik": req.NIK})
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(customer)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.BaseEvent{
		Type:       events.TypeCustomerLogin,
		Data:       map[string]interface{}{"customer_id": customer.Id.String()},
		OccurredAt: time.Now(),
	}); err != nil {
		s.logger.Warn("auth", "Failed to publish login event", map[string]interface{}{"error": err.Error()})
	}

	return &dto.LoginResponse{
		Token: token,
		Customer: dto.CustomerResponse{
			Id:        customer.Id,
			NIK:       customer.NIK,
			Name:      customer.Name,
			Email:     customer.Email,
			Phone:     customer.Phone,
			BirthDate: customer.BirthDate,
			BloodType: customer.BloodType,
		},
	}, nil
}

func (s *authService) signToken(customer *entity.Customer) (string, error) {
	claims := jwt.MapClaims{
		"customer_id": customer.Id.String(),
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
		"iat":         time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
