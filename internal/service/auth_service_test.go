package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"carepal-be/internal/dto"
	"carepal-be/internal/entity"
)

const testJWTSecret = "unit-test-secret"

func seedCustomer(t *testing.T, factory *fakeRepositoryFactory, nik, password string) *entity.Customer {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	customer := &entity.Customer{
		Id:           uuid.New(),
		NIK:          nik,
		PasswordHash: string(hash),
		Name:         "Siti Aminah",
		Email:        "siti@example.com",
		BloodType:    "O",
	}
	factory.customers.customer = customer
	return customer
}

func TestLoginSuccess(t *testing.T) {
	factory := newFakeRepositoryFactory()
	customer := seedCustomer(t, factory, "3201234567890001", "rahasia123")
	s := NewAuthService(factory, nil, testJWTSecret, nopLogger{})

	resp, err := s.Login(context.Background(), dto.LoginRequest{
		NIK:      "3201234567890001",
		Password: "rahasia123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, customer.Id, resp.Customer.Id)
	assert.Equal(t, customer.NIK, resp.Customer.NIK)
	assert.Equal(t, customer.Name, resp.Customer.Name)

	// The token must verify against the configured secret and carry the
	// customer id claim the middleware relies on.
	parsed, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, customer.Id.String(), claims["customer_id"])
}

func TestLoginWrongPassword(t *testing.T) {
	factory := newFakeRepositoryFactory()
	seedCustomer(t, factory, "3201234567890001", "rahasia123")
	s := NewAuthService(factory, nil, testJWTSecret, nopLogger{})

	resp, err := s.Login(context.Background(), dto.LoginRequest{
		NIK:      "3201234567890001",
		Password: "salah123",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func TestLoginUnknownNIK(t *testing.T) {
	factory := newFakeRepositoryFactory()
	seedCustomer(t, factory, "3201234567890001", "rahasia123")
	s := NewAuthService(factory, nil, testJWTSecret, nopLogger{})

	resp, err := s.Login(context.Background(), dto.LoginRequest{
		NIK:      "9999999999999999",
		Password: "rahasia123",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, resp)
}
