package mocks

import (
	"context"

	"showroom-audit/core/rfid"

	"github.com/stretchr/testify/mock"
)

// Reader is a mock implementation of rfid.Reader
type Reader struct {
	mock.Mock
}

func (m *Reader) Initialize(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Reader) StartScan(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Reader) StopScan(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Reader) Subscribe(h rfid.Handler) func() {
	args := m.Called(h)
	if fn, ok := args.Get(0).(func()); ok {
		return fn
	}
	return func() {}
}
