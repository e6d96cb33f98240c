package mocks

import (
	"context"

	"github.com/benx421/moneybox/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockWithdrawer is a mock type for the Withdrawer type
type MockWithdrawer struct {
	mock.Mock
}

// Withdraw provides a mock function with given fields: ctx, accountID, amount
func (_m *MockWithdrawer) Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*models.Account, error) {
	ret := _m.Called(ctx, accountID, amount)

	var r0 *models.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Account)
	}

	return r0, ret.Error(1)
}

// NewMockWithdrawer creates a new instance of MockWithdrawer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockWithdrawer(t testingT) *MockWithdrawer {
	m := &MockWithdrawer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTransferrer is a mock type for the Transferrer type
type MockTransferrer struct {
	mock.Mock
}

// Transfer provides a mock function with given fields: ctx, fromAccountID, toAccountID, amount
func (_m *MockTransferrer) Transfer(ctx context.Context, fromAccountID, toAccountID uuid.UUID, amount decimal.Decimal) (*models.Account, *models.Account, error) {
	ret := _m.Called(ctx, fromAccountID, toAccountID, amount)

	var r0, r1 *models.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Account)
	}
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*models.Account)
	}

	return r0, r1, ret.Error(2)
}

// NewMockTransferrer creates a new instance of MockTransferrer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTransferrer(t testingT) *MockTransferrer {
	m := &MockTransferrer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockAccountGetter is a mock type for the AccountGetter type
type MockAccountGetter struct {
	mock.Mock
}

// GetAccount provides a mock function with given fields: ctx, accountID
func (_m *MockAccountGetter) GetAccount(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	ret := _m.Called(ctx, accountID)

	var r0 *models.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Account)
	}

	return r0, ret.Error(1)
}

// NewMockAccountGetter creates a new instance of MockAccountGetter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAccountGetter(t testingT) *MockAccountGetter {
	m := &MockAccountGetter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockHealthChecker is a mock type for the HealthChecker type
type MockHealthChecker struct {
	mock.Mock
}

// PingContext provides a mock function with given fields: ctx
func (_m *MockHealthChecker) PingContext(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// NewMockHealthChecker creates a new instance of MockHealthChecker. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockHealthChecker(t testingT) *MockHealthChecker {
	m := &MockHealthChecker{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
