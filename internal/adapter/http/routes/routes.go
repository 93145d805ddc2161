package routes

import (
	"context"
	"log"

	_ "laminasycortes/docs" // swag-generated OpenAPI registration
	"laminasycortes/internal/adapter/http/handlers"
	"laminasycortes/internal/adapter/persistence/localstore"
	"laminasycortes/internal/adapter/persistence/repository"
	"laminasycortes/internal/config"
	infraauth "laminasycortes/internal/infrastructure/auth"
	"laminasycortes/internal/infrastructure/database"
	"laminasycortes/internal/infrastructure/pdf"
	"laminasycortes/internal/usecase"
	"laminasycortes/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the storage driver, the use cases and the HTTP surface, then
// serves until the process is stopped.
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	setRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func setRoutes(cfg config.Config) {
	var (
		quoteRepo interfaces.IQuoteRepository
		userRepo  interfaces.IUserRepository
	)

	// The storage driver decides the engine mode: the SQLite blob store is
	// the single-user local mode where anonymous quotes are allowed, DynamoDB
	// is the multi-user mode where every operation needs an identity.
	allowAnonymous := cfg.StorageDriver != config.DriverDynamoDB

	switch cfg.StorageDriver {
	case config.DriverDynamoDB:
		ddb := database.ConnectDynamoDB()
		quoteRepo = repository.NewQuoteDynamoRepository(ddb)
		userRepo = repository.NewUserDynamoRepository(ddb)
	default:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open sqlite database: %v", err)
		}
		store := localstore.NewStore(db)
		quoteRepo = localstore.NewQuoteLocalRepository(store)
		userRepo = localstore.NewUserLocalRepository(store)
	}

	tokens := infraauth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, allowAnonymous)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokens)

	if cfg.DemoSeed {
		if _, err := infraauth.EnsureDemoUser(context.Background(), authUseCase); err != nil {
			log.Printf("[auth] demo user bootstrap failed: %v", err)
		}
	}

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, pdf.New(cfg.CompanyName))
	authHandler := handlers.NewAuthHandler(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler, tokens)
	addQuoteRoutes(v1, quoteHandler, tokens, !allowAnonymous)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
