package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"registration-sheets-be/internal/repository/unitofwork"
	"registration-sheets-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.OpportunityRepository())
	assert.NotNil(t, uow.RegistrationRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Registration Repository", func(t *testing.T) {
		count, err := uow.RegistrationRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Registration count: %d", count)
	})

	t.Run("Check Registration Meta Repository", func(t *testing.T) {
		values, err := uow.RegistrationMetaRepository().FindAllByKey(context.Background(), "previousPhaseRegistrationId", []int64{0})
		assert.NoError(t, err)
		t.Logf("Meta rows for probe id: %d", len(values))
	})
}
