package mocks

import (
	"context"

	"github.com/benx421/moneybox/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountDirectory is a mock type for the AccountDirectory type
type MockAccountDirectory struct {
	mock.Mock
}

// GetAccountByID provides a mock function with given fields: ctx, id
func (_m *MockAccountDirectory) GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Account
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *models.Account); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Account)
	}

	return r0, ret.Error(1)
}

// Update provides a mock function with given fields: ctx, account
func (_m *MockAccountDirectory) Update(ctx context.Context, account *models.Account) error {
	ret := _m.Called(ctx, account)
	return ret.Error(0)
}

// NewMockAccountDirectory creates a new instance of MockAccountDirectory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAccountDirectory(t testingT) *MockAccountDirectory {
	m := &MockAccountDirectory{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
