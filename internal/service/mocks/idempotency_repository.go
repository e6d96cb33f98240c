package mocks

import (
	"context"

	"github.com/benx421/moneybox/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockIdempotencyRepository is a mock type for the IdempotencyRepository type
type MockIdempotencyRepository struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, key, requestPath
func (_m *MockIdempotencyRepository) Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	ret := _m.Called(ctx, key, requestPath)

	var r0 *models.IdempotencyKey
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.IdempotencyKey)
	}

	return r0, ret.Error(1)
}

// Store provides a mock function with given fields: ctx, idemKey
func (_m *MockIdempotencyRepository) Store(ctx context.Context, idemKey *models.IdempotencyKey) error {
	ret := _m.Called(ctx, idemKey)
	return ret.Error(0)
}

// NewMockIdempotencyRepository creates a new instance of MockIdempotencyRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockIdempotencyRepository(t testingT) *MockIdempotencyRepository {
	m := &MockIdempotencyRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
