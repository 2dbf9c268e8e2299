package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dexianlabs/pastelaria-api/internal/audit"
	"github.com/dexianlabs/pastelaria-api/internal/config"
	"github.com/dexianlabs/pastelaria-api/internal/handlers"
	infraRepo "github.com/dexianlabs/pastelaria-api/internal/infra/repository"
	"github.com/dexianlabs/pastelaria-api/internal/mailer"
	"github.com/dexianlabs/pastelaria-api/internal/middleware"
	"github.com/dexianlabs/pastelaria-api/internal/storage"
	ucclient "github.com/dexianlabs/pastelaria-api/internal/usecase/client"
	ucorder "github.com/dexianlabs/pastelaria-api/internal/usecase/order"
	ucproduct "github.com/dexianlabs/pastelaria-api/internal/usecase/product"
	ucuser "github.com/dexianlabs/pastelaria-api/internal/usecase/user"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) {
	// ------------------------------
	// INFRA
	// ------------------------------
	userRepo := infraRepo.NewUserGormRepository(db)
	clientRepo := infraRepo.NewClientGormRepository(db)
	productRepo := infraRepo.NewProductGormRepository(db)
	orderRepo := infraRepo.NewOrderGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	mail := mailer.NewSMTPMailer(cfg, logger)
	photoStore := storage.NewS3PhotoStore(cfg)

	// ------------------------------
	// SERVICES
	// ------------------------------
	userService := ucuser.NewService(userRepo, auditDispatcher, logger)
	clientService := ucclient.NewService(clientRepo, userRepo, auditDispatcher, logger)
	productService := ucproduct.NewService(productRepo, photoStore, auditDispatcher, logger)
	orderService := ucorder.NewService(
		orderRepo,
		clientRepo,
		productRepo,
		mail,
		auditDispatcher,
		logger,
	)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	authHandler := handlers.NewAuthHandler(userService, userRepo, rdb, cfg)
	userHandler := handlers.NewUserHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// ------------------------------
	// PUBLIC
	// ------------------------------
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// ------------------------------
	// PRIVATE
	// ------------------------------
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg, rdb))
	{
		secured.POST("/logout", authHandler.Logout)

		secured.GET("/users", userHandler.List)
		secured.POST("/users", userHandler.Create)
		secured.GET("/users/:id", userHandler.Get)
		secured.PUT("/users/:id", userHandler.Update)
		secured.DELETE("/users/:id", userHandler.Delete)

		secured.GET("/clients", clientHandler.List)
		secured.POST("/clients", clientHandler.Create)
		secured.GET("/clients/:id", clientHandler.Get)
		secured.PUT("/clients/:id", clientHandler.Update)
		secured.DELETE("/clients/:id", clientHandler.Delete)

		secured.GET("/products", productHandler.List)
		secured.POST("/products", productHandler.Create)
		secured.GET("/products/:id", productHandler.Get)
		secured.PUT("/products/:id", productHandler.Update)
		secured.DELETE("/products/:id", productHandler.Delete)

		secured.GET("/orders", orderHandler.List)
		secured.POST("/orders", orderHandler.Create)
		secured.GET("/orders/:id", orderHandler.Get)
		secured.PUT("/orders/:id", orderHandler.Update)
		secured.DELETE("/orders/:id", orderHandler.Delete)
	}
}
