package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"agrifarma/config"
	"agrifarma/internal/domain/repository"
	mockRepo "agrifarma/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			SessionTTL:        24 * time.Hour,
			MinPasswordLength: 6,
		},
	}
}

// repoMocks bundles one mock per repository behind a single factory.
type repoMocks struct {
	factory       *mockRepo.MockRepositoryFactory
	users         *mockRepo.MockUserRepository
	categories    *mockRepo.MockCategoryRepository
	products      *mockRepo.MockProductRepository
	posts         *mockRepo.MockPostRepository
	carts         *mockRepo.MockCartRepository
	orders        *mockRepo.MockOrderRepository
	consultations *mockRepo.MockConsultationRepository
	sessions      *mockRepo.MockSessionRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	m := &repoMocks{
		factory:       mockRepo.NewMockRepositoryFactory(t),
		users:         mockRepo.NewMockUserRepository(t),
		categories:    mockRepo.NewMockCategoryRepository(t),
		products:      mockRepo.NewMockProductRepository(t),
		posts:         mockRepo.NewMockPostRepository(t),
		carts:         mockRepo.NewMockCartRepository(t),
		orders:        mockRepo.NewMockOrderRepository(t),
		consultations: mockRepo.NewMockConsultationRepository(t),
		sessions:      mockRepo.NewMockSessionRepository(t),
	}

	m.factory.EXPECT().UserRepo().Return(m.users).Maybe()
	m.factory.EXPECT().CategoryRepo().Return(m.categories).Maybe()
	m.factory.EXPECT().ProductRepo().Return(m.products).Maybe()
	m.factory.EXPECT().PostRepo().Return(m.posts).Maybe()
	m.factory.EXPECT().CartRepo().Return(m.carts).Maybe()
	m.factory.EXPECT().OrderRepo().Return(m.orders).Maybe()
	m.factory.EXPECT().ConsultationRepo().Return(m.consultations).Maybe()
	m.factory.EXPECT().SessionRepo().Return(m.sessions).Maybe()

	return m
}

// txManager returns a transaction manager that runs fn against the mocked factory.
func (m *repoMocks) txManager(t *testing.T) *mockRepo.MockTransactionManager {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).
		Maybe()

	return txManager
}
