package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"dogtor/internal/config"
	"dogtor/internal/handlers"
	"dogtor/internal/middleware"
	"dogtor/internal/repositories"
	"dogtor/internal/services"
	"dogtor/pkg/database"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	pool, err := database.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	ownerRepo := repositories.NewOwnerRepo(pool)
	petRepo := repositories.NewPetRepo(pool)
	speciesRepo := repositories.NewSpeciesRepo(pool)

	// Services
	tokenSvc := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	ownerSvc := services.NewOwnerService(ownerRepo, petRepo)
	petSvc := services.NewPetService(petRepo)
	speciesSvc := services.NewSpeciesService(speciesRepo)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(userRepo, tokenSvc, logger)
	ownerHandlers := handlers.NewOwnerHandlers(ownerSvc, logger)
	petHandlers := handlers.NewPetHandlers(petSvc, logger)
	speciesHandlers := handlers.NewSpeciesHandlers(speciesSvc, logger)
	healthHandlers := handlers.NewHealthHandlers(pool)

	e := newRouter(logger, userRepo, tokenSvc,
		authHandlers, ownerHandlers, petHandlers, speciesHandlers, healthHandlers)
	e.Use(echoMiddleware.Logger())

	logger.Info("dogtor server starting", zap.Int("port", cfg.Port))
	if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// newRouter builds the route table. Trailing-slash normalization must
// run as a pre-middleware, before the router matches the path.
func newRouter(
	logger *zap.Logger,
	userRepo repositories.UserRepository,
	tokens services.TokenService,
	authHandlers *handlers.AuthHandlers,
	ownerHandlers *handlers.OwnerHandlers,
	petHandlers *handlers.PetHandlers,
	speciesHandlers *handlers.SpeciesHandlers,
	healthHandlers *handlers.HealthHandlers,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(logger)

	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.Recover())

	// Public routes
	e.GET("/health", healthHandlers.HealthCheck)
	e.POST("/signup", authHandlers.Signup)
	e.POST("/login", authHandlers.Login)
	e.GET("/procedures", handlers.Procedures)

	// Protected routes (require a bearer token)
	protected := e.Group("", middleware.Auth(userRepo, tokens))

	protected.POST("/profile", authHandlers.Profile)

	protected.GET("/pets", petHandlers.ListPets)
	protected.GET("/pets/:id", petHandlers.GetPet)
	protected.POST("/pets", petHandlers.CreatePet)
	protected.PUT("/pets/:id", petHandlers.UpdatePet)
	protected.DELETE("/pets/:id", petHandlers.DeletePet)

	protected.GET("/owners", ownerHandlers.ListOwners)
	protected.GET("/owners/:id", ownerHandlers.GetOwner)
	protected.POST("/owners", ownerHandlers.CreateOwner)
	protected.PUT("/owners/:id", ownerHandlers.UpdateOwner)
	protected.DELETE("/owners/:id", ownerHandlers.DeleteOwner)

	protected.GET("/species", speciesHandlers.ListSpecies)
	protected.GET("/species/:id", speciesHandlers.GetSpecies)
	protected.POST("/species", speciesHandlers.CreateSpecies)
	protected.PUT("/species/:id", speciesHandlers.UpdateSpecies)
	protected.DELETE("/species/:id", speciesHandlers.DeleteSpecies)

	return e
}
