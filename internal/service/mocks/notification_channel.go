package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockNotificationChannel is a mock type for the NotificationChannel type
type MockNotificationChannel struct {
	mock.Mock
}

// NotifyFundsLow provides a mock function with given fields: ctx, address
func (_m *MockNotificationChannel) NotifyFundsLow(ctx context.Context, address string) error {
	ret := _m.Called(ctx, address)
	return ret.Error(0)
}

// NotifyApproachingPayInLimit provides a mock function with given fields: ctx, address
func (_m *MockNotificationChannel) NotifyApproachingPayInLimit(ctx context.Context, address string) error {
	ret := _m.Called(ctx, address)
	return ret.Error(0)
}

// NewMockNotificationChannel creates a new instance of MockNotificationChannel. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockNotificationChannel(t testingT) *MockNotificationChannel {
	m := &MockNotificationChannel{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
