// Command admin performs the operator tasks the web site does not expose:
// schema migration, consultant approval and housekeeping.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"agrifarma/config"
	"agrifarma/internal/domain/service"
	"agrifarma/internal/errors"
	"agrifarma/internal/infra/auth"
	logs "agrifarma/internal/infra/log"
	"agrifarma/internal/infra/persistence/store"
	"agrifarma/internal/infra/qrcode"
	"agrifarma/internal/infra/spreadsheet"
	"agrifarma/internal/infra/storage"
	"agrifarma/internal/usecase"
	"agrifarma/internal/usecase/impl"

	"github.com/spf13/cobra"
	"gocloud.dev/blob"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCommand(openEnvironment).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// environment is the infrastructure a command runs against.
type environment struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *gorm.DB
	storage service.FileStorage
	close   func() error
}

// envOpener connects to the configured database and upload bucket.
type envOpener func(ctx context.Context) (*environment, error)

// app is shared by every subcommand once the environment is open.
type app struct {
	env           *environment
	accounts      usecase.AccountUsecase
	sessions      usecase.SessionUsecase
	consultations usecase.ConsultationUsecase
	catalog       usecase.CatalogUsecase
}

func newRootCommand(open envOpener) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "admin",
		Short:         "Agrifarma operator commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := open(cmd.Context())
			if err != nil {
				return err
			}

			return a.init(env)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.env.close()
		},
	}

	cmd.AddCommand(newMigrateCommand(a))
	cmd.AddCommand(newConsultantCommand(a))
	cmd.AddCommand(newCategoryCommand(a))
	cmd.AddCommand(newSessionsCommand(a))
	cmd.AddCommand(newUserCommand(a))

	return cmd
}

func (a *app) init(env *environment) error {
	tokens, err := auth.NewSessionTokenGenerator(env.cfg)
	if err != nil {
		return err
	}

	txManager := store.NewTransactionManager(env.db)
	hasher := auth.NewBcryptHasher(env.cfg)

	a.env = env
	a.accounts = impl.NewAccountService(impl.AccountServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Storage:   env.storage,
		Logger:    env.logger,
	})
	a.sessions = impl.NewSessionService(impl.SessionServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Tokens:    tokens,
		Config:    env.cfg,
		Logger:    env.logger,
	})
	a.consultations = impl.NewConsultationService(impl.ConsultationServiceParams{
		TxManager: txManager,
		Logger:    env.logger,
	})
	a.catalog = impl.NewCatalogService(impl.CatalogServiceParams{
		TxManager: txManager,
		Storage:   env.storage,
		QRCode:    qrcode.NewQRCodeService(env.cfg),
		Sheets:    spreadsheet.NewProductSheetParser(),
		Logger:    env.logger,
	})

	return nil
}

func openEnvironment(ctx context.Context) (*environment, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	db, err := store.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Uploads.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open upload bucket %q", cfg.Uploads.BucketURL)
	}

	return &environment{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		storage: storage.NewWithBucket(bucket),
		close: func() error {
			bucketErr := bucket.Close()
			if err := closeDB(db); err != nil {
				return err
			}

			return bucketErr
		},
	}, nil
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
