package collections

import (
	"context"

	"stash-app-api/core/domain"
)

// mockStorage is a mock implementation of the CollectionStorage interface
type mockStorage struct {
	saveFunc        func(ctx context.Context, collection *domain.Collection) error
	getFunc         func(ctx context.Context, id string) (*domain.Collection, error)
	listByOwnerFunc func(ctx context.Context, ownerToken string) ([]*domain.Collection, error)
	deleteFunc      func(ctx context.Context, id string) error
}

func (m *mockStorage) Save(ctx context.Context, collection *domain.Collection) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, collection)
	}
	return nil
}

func (m *mockStorage) Get(ctx context.Context, id string) (*domain.Collection, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStorage) ListByOwner(ctx context.Context, ownerToken string) ([]*domain.Collection, error) {
	if m.listByOwnerFunc != nil {
		return m.listByOwnerFunc(ctx, ownerToken)
	}
	return nil, nil
}

func (m *mockStorage) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// mockLogger is a no-op implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
