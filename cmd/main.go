package main

import (
  "fmt"
  "os"
  "time"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/logger"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/utils"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/db"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/repos"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/services"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/handlers"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/middleware"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/server"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  sessionTTLSeconds := utils.GetEnvAsInt("SESSION_TTL", 86400, log)
  accessCode := utils.GetEnv("ACCESS_CODE", "4192", nil)
  port := utils.GetEnv("PORT", "8080", log)
  corsOrigins := utils.GetEnvAsList("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}, log)
  secureCookie := utils.GetEnv("SECURE_COOKIE", "false", log) == "true"

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Error("Postgres auto migration failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.SeedAccessCode(accessCode); err != nil {
    log.Warn("Access code seeding failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  modelRepo := repos.NewModelRepo(thePG, log)
  exteriorRepo := repos.NewExteriorRepo(thePG, log)
  optionRepo := repos.NewOptionRepo(thePG, log)
  costItemRepo := repos.NewCostItemRepo(thePG, log)
  exteriorCostItemRepo := repos.NewExteriorCostItemRepo(thePG, log)
  locationRepo := repos.NewLocationRepo(thePG, log)
  ifpMappingRepo := repos.NewIFPMappingRepo(thePG, log)
  locationMarkupRepo := repos.NewLocationMarkupRepo(thePG, log)
  accessCodeRepo := repos.NewAccessCodeRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  authService := services.NewAuthService(thePG, log, accessCodeRepo, jwtSecretKey, time.Duration(sessionTTLSeconds)*time.Second)
  modelService := services.NewModelService(thePG, log, modelRepo)
  exteriorService := services.NewExteriorService(thePG, log, exteriorRepo)
  optionService := services.NewOptionService(thePG, log, optionRepo)
  costItemService := services.NewCostItemService(thePG, log, costItemRepo)
  exteriorCostItemService := services.NewExteriorCostItemService(thePG, log, exteriorCostItemRepo)
  locationService := services.NewLocationService(thePG, log, locationRepo)
  ifpMappingService := services.NewIFPMappingService(thePG, log, ifpMappingRepo, locationMarkupRepo)

  // Handlers
  log.Info("Setting up Handlers from main...")
  authHandler := handlers.NewAuthHandler(authService, secureCookie)
  modelHandler := handlers.NewModelHandler(modelService)
  exteriorHandler := handlers.NewExteriorHandler(exteriorService)
  optionHandler := handlers.NewOptionHandler(optionService)
  costItemHandler := handlers.NewCostItemHandler(costItemService)
  exteriorCostItemHandler := handlers.NewExteriorCostItemHandler(exteriorCostItemService)
  locationHandler := handlers.NewLocationHandler(locationService)
  ifpMappingHandler := handlers.NewIFPMappingHandler(ifpMappingService)

  // Middleware
  authMiddleware := middleware.NewAuthMiddleware(log, authService, secureCookie)

  // Router
  log.Info("Setting up Router from main...")
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:             authHandler,
    AuthMiddleware:          authMiddleware,
    ModelHandler:            modelHandler,
    ExteriorHandler:         exteriorHandler,
    OptionHandler:           optionHandler,
    CostItemHandler:         costItemHandler,
    ExteriorCostItemHandler: exteriorCostItemHandler,
    LocationHandler:         locationHandler,
    IFPMappingHandler:       ifpMappingHandler,
    CORSOrigins:             corsOrigins,
  })

  log.Info("Starting server...", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Fatal("Server exited", "error", err)
  }
}
