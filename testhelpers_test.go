//go:build integration

package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgmodule "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/petcare-br/service-shelter/internal/application"
	"github.com/petcare-br/service-shelter/internal/repository"
)

// shelterStack holds the wired service layer on top of a real database.
type shelterStack struct {
	DB       *gorm.DB
	Pets     *application.PetService
	Tutores  *application.TutorService
	Cuidados *application.CareService
	Adocoes  *application.AdoptionService
	Cleanup  func()
}

// setupShelterStack starts a PostgreSQL container, migrates the schema and
// wires the full application stack without Kafka.
func setupShelterStack(t *testing.T) *shelterStack {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := pgmodule.Run(ctx, "postgres:16-alpine",
		pgmodule.WithDatabase("test_shelter"),
		pgmodule.WithUsername("test"),
		pgmodule.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	var db *gorm.DB
	require.Eventually(t, func() bool {
		db, err = gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			return false
		}
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, 30*time.Second, 1*time.Second, "PostgreSQL not ready for connections")

	require.NoError(t, db.AutoMigrate(
		&repository.PetModel{},
		&repository.TutorModel{},
		&repository.AdocaoModel{},
		&repository.CuidadoModel{},
	))
	// Backstop for the single-active-adoption rule, matching the SQL migration.
	require.NoError(t, db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_adocoes_pet_ativa
		 ON adocoes (pet_id) WHERE status = 'ATIVA'`,
	).Error)

	log := zap.NewNop()
	repos := repository.NewRepositories(db)
	uow := repository.NewTxManager(db)

	return &shelterStack{
		DB:       db,
		Pets:     application.NewPetService(repos, uow, nil, log),
		Tutores:  application.NewTutorService(repos, log),
		Cuidados: application.NewCareService(repos, log),
		Adocoes:  application.NewAdoptionService(repos, log),
		Cleanup: func() {
			if err := pgContainer.Terminate(ctx); err != nil {
				t.Logf("failed to terminate PostgreSQL container: %v", err)
			}
		},
	}
}
