package server

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/handlers"
  "github.com/IMKAT-ADU/imkat-dashboard/internal/middleware"
)

type RouterConfig struct {
  AuthHandler             *handlers.AuthHandler
  AuthMiddleware          *middleware.AuthMiddleware
  ModelHandler            *handlers.ModelHandler
  ExteriorHandler         *handlers.ExteriorHandler
  OptionHandler           *handlers.OptionHandler
  CostItemHandler         *handlers.CostItemHandler
  ExteriorCostItemHandler *handlers.ExteriorCostItemHandler
  LocationHandler         *handlers.LocationHandler
  IFPMappingHandler       *handlers.IFPMappingHandler
  CORSOrigins             []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins:     cfg.CORSOrigins,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  // The session gate sees every request; its allow-list keeps the home,
  // healthcheck and auth paths open.
  router.Use(cfg.AuthMiddleware.RequireSession())

  router.GET("/", func(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"service": "imkat-dashboard"})
  })
  router.GET("/healthcheck", handlers.HealthCheck)

  api := router.Group("/api")
  {
    // Auth
    api.POST("/auth/login", cfg.AuthHandler.Login)
    api.GET("/auth/verify", cfg.AuthHandler.Verify)
    api.POST("/auth/logout", cfg.AuthHandler.Logout)

    // Models
    api.GET("/models", cfg.ModelHandler.List)
    api.POST("/models", cfg.ModelHandler.Create)
    api.GET("/models/:id", cfg.ModelHandler.Get)
    api.PATCH("/models/:id", cfg.ModelHandler.Update)
    api.DELETE("/models/:id", cfg.ModelHandler.Delete)

    // Exteriors
    api.GET("/exteriors", cfg.ExteriorHandler.List)
    api.POST("/exteriors", cfg.ExteriorHandler.Create)
    api.GET("/exteriors/:id", cfg.ExteriorHandler.Get)
    api.PATCH("/exteriors/:id", cfg.ExteriorHandler.Update)
    api.DELETE("/exteriors/:id", cfg.ExteriorHandler.Delete)

    // Options
    api.GET("/options", cfg.OptionHandler.List)
    api.POST("/options", cfg.OptionHandler.Create)
    api.GET("/options/:id", cfg.OptionHandler.Get)
    api.PATCH("/options/:id", cfg.OptionHandler.Update)
    api.DELETE("/options/:id", cfg.OptionHandler.Delete)

    // Cost items
    api.GET("/cost-items", cfg.CostItemHandler.List)
    api.POST("/cost-items", cfg.CostItemHandler.Create)
    api.GET("/cost-items/:id", cfg.CostItemHandler.Get)
    api.PATCH("/cost-items/:id", cfg.CostItemHandler.Update)
    api.DELETE("/cost-items/:id", cfg.CostItemHandler.Delete)

    // Exterior cost items
    api.GET("/exterior-cost-items", cfg.ExteriorCostItemHandler.List)
    api.POST("/exterior-cost-items", cfg.ExteriorCostItemHandler.Create)
    api.GET("/exterior-cost-items/:id", cfg.ExteriorCostItemHandler.Get)
    api.PATCH("/exterior-cost-items/:id", cfg.ExteriorCostItemHandler.Update)
    api.DELETE("/exterior-cost-items/:id", cfg.ExteriorCostItemHandler.Delete)

    // Locations
    api.GET("/locations", cfg.LocationHandler.List)
    api.POST("/locations", cfg.LocationHandler.Create)
    api.GET("/locations/:id", cfg.LocationHandler.Get)
    api.PATCH("/locations/:id", cfg.LocationHandler.Update)
    api.DELETE("/locations/:id", cfg.LocationHandler.Delete)

    // IFP mappings
    api.GET("/ifp-mappings", cfg.IFPMappingHandler.List)
    api.POST("/ifp-mappings", cfg.IFPMappingHandler.Create)
    api.GET("/ifp-mappings/:id", cfg.IFPMappingHandler.Get)
    api.PATCH("/ifp-mappings/:id", cfg.IFPMappingHandler.Update)
    api.DELETE("/ifp-mappings/:id", cfg.IFPMappingHandler.Delete)
  }

  return router
}
