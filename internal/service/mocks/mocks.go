// Package mocks provides testify mocks for the service collaborators and
// service interfaces.
package mocks

import "github.com/stretchr/testify/mock"

type testingT interface {
	mock.TestingT
	Cleanup(func())
}
