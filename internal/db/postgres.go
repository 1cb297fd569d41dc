package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/types"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/utils"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/logger"
)

type PostgresService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  log.Info("Loading environment variables...")
  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "imkat", log)
  log.Debug("Environment variables loaded")

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  log.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    // Constraint violations must come back as gorm.ErrDuplicatedKey /
    // gorm.ErrForeignKeyViolated so the services can tell "duplicate"
    // apart from "referenced parent missing".
    TranslateError: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  return &PostgresService{db: db, log: serviceLog}, nil
}

// AutoMigrateAll migrates parents before children so the cascade foreign
// keys resolve on first run.
func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.Model{},
    &types.Exterior{},
    &types.Option{},
    &types.CostItem{},
    &types.ExteriorCostItem{},
    &types.Location{},
    &types.IFPMapping{},
    &types.LocationMarkup{},
    &types.AccessCode{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  return nil
}

// SeedAccessCode inserts the bootstrap access code when the credential table
// is empty, so a fresh deployment is reachable without manual SQL.
func (s *PostgresService) SeedAccessCode(code string) error {
  if code == "" {
    return nil
  }
  var count int64
  if err := s.db.Model(&types.AccessCode{}).Count(&count).Error; err != nil {
    return fmt.Errorf("Failed to count access codes: %w", err)
  }
  if count > 0 {
    return nil
  }
  record := types.AccessCode{ID: uuid.New(), Code: code, IsActive: true}
  if err := s.db.Create(&record).Error; err != nil {
    return fmt.Errorf("Failed to seed access code: %w", err)
  }
  s.log.Info("Seeded bootstrap access code")
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
