package testhelpers

import (
	"context"

	"manito/domain/interfaces"

	"github.com/stretchr/testify/mock"
)

// MockDrawService is a mock implementation of DrawService
type MockDrawService struct {
	mock.Mock
}

func (m *MockDrawService) Commit(ctx context.Context, giverID string) (*interfaces.DrawResult, error) {
	args := m.Called(ctx, giverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.DrawResult), args.Error(1)
}

func (m *MockDrawService) Reveal(ctx context.Context, giverID, code string) (*interfaces.RevealResult, error) {
	args := m.Called(ctx, giverID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.RevealResult), args.Error(1)
}

func (m *MockDrawService) DrawnGivers(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockWishlistService is a mock implementation of WishlistService
type MockWishlistService struct {
	mock.Mock
}

func (m *MockWishlistService) Upsert(ctx context.Context, userID, text string) error {
	args := m.Called(ctx, userID, text)
	return args.Error(0)
}

func (m *MockWishlistService) Get(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

// MockAdminService is a mock implementation of AdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ResetAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAdminService) Status(ctx context.Context) (*interfaces.CompletionStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.CompletionStatus), args.Error(1)
}

// MockCompletionService is a mock implementation of CompletionService
type MockCompletionService struct {
	mock.Mock
}

func (m *MockCompletionService) Status(ctx context.Context) (*interfaces.CompletionStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.CompletionStatus), args.Error(1)
}
