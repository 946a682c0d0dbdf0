//go:build integration

package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"agrifarma/internal/domain/entity"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/errors"
	"agrifarma/internal/infra/persistence/postgres"
	"agrifarma/internal/infra/persistence/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("agrifarma"),
		tcpostgres.WithUsername("agrifarma"),
		tcpostgres.WithPassword("agrifarma"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.OpenDSN(dsn, &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	return store.Configure(db, logger.Discard)
}

// resetSchema gives every test an empty, freshly migrated schema.
func resetSchema(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Exec("DROP SCHEMA public CASCADE").Error)
	require.NoError(t, db.Exec("CREATE SCHEMA public").Error)
	require.NoError(t, store.Migrate(db))
}

func TestRepositorySuite_Postgres(t *testing.T) {
	db := startPostgres(t)

	suite.Run(t, &RepositorySuite{open: func() (*gorm.DB, func()) {
		resetSchema(t, db)

		return db, func() {}
	}})
}

func TestDecrementStock_ConcurrentCheckouts(t *testing.T) {
	db := startPostgres(t)
	resetSchema(t, db)
	ctx := context.Background()

	owner := &entity.User{Username: "grower", Email: "grower@example.com", PasswordHash: "hash"}
	require.NoError(t, store.NewUserRepository(db).Create(ctx, owner))

	const stock = 5
	product := &entity.Product{
		UserID: owner.ID, Name: "Avocados", Description: "Hass", Category: "Fruit",
		StockQuantity: stock, Active: true,
	}
	require.NoError(t, store.NewProductRepository(db).Create(ctx, product))

	tm := store.NewTransactionManager(db)
	const buyers = 20

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				return f.ProductRepo().DecrementStock(ctx, product.ID, 1)
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, repository.ErrStockConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, stock, succeeded)
	assert.Equal(t, buyers-stock, conflicts)

	found, err := store.NewProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Zero(t, found.StockQuantity)
}
