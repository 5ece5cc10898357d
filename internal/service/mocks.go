package service

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockDocumentCleaner struct {
	mock.Mock
}

func (m *MockDocumentCleaner) DeleteDocumentsForTeam(ctx context.Context, teamID int64) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

type MockMembershipRemover struct {
	mock.Mock
}

func (m *MockMembershipRemover) DetachMember(ctx context.Context, repos repository.Repositories, memberID int64) error {
	args := m.Called(ctx, repos, memberID)
	return args.Error(0)
}

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, key string, body []byte) error {
	args := m.Called(ctx, key, body)
	return args.Error(0)
}

func (m *MockBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockStore не вызывает fn и возвращает заданную ошибку хранилища
type MockStore struct {
	mock.Mock
}

func (m *MockStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStore) ReadOnly(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	args := m.Called(ctx)
	return args.Error(0)
}
