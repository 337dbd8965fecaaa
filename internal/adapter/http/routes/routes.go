package routes

import (
	"context"
	"log"
	"log/slog"
	"time"

	"andicot_proforma/internal/adapter/http/handlers"
	"andicot_proforma/internal/adapter/http/middleware"
	"andicot_proforma/internal/adapter/mailbox"
	"andicot_proforma/internal/adapter/persistence/repository"
	"andicot_proforma/internal/config"
	"andicot_proforma/internal/domain/quote"
	"andicot_proforma/internal/infrastructure/cache"
	"andicot_proforma/internal/infrastructure/database"
	"andicot_proforma/internal/infrastructure/messaging"
	"andicot_proforma/internal/infrastructure/metrics"
	"andicot_proforma/internal/infrastructure/storage"
	"andicot_proforma/internal/usecase"
	"andicot_proforma/internal/usecase/interfaces"
	"andicot_proforma/pkg/logging"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const janitorInterval = time.Minute

// Handlers groups what NewRouter mounts.
type Handlers struct {
	Catalog *handlers.CatalogHandler
	Quote   *handlers.QuoteHandler
	Contact *handlers.ContactHandler
}

// Run will start the server
func Run() {
	cfg := config.Load()
	logging.SetupWithLevel(logging.ParseLevel(cfg.Log.Level))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h, sessions, closeAll, err := buildHandlers(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err.Error())
	}
	defer closeAll()

	go sessions.RunJanitor(ctx, janitorInterval)

	router := NewRouter(cfg.Admin, h)
	slog.Info("[api][routes] listening", "port", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine with every public and admin route.
func NewRouter(admin config.AdminConfig, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)
	addQuoteRoutes(v1, h.Quote, h.Contact)
	addContactRoutes(v1, h.Contact)

	adminGroup := v1.Group(PathAdmin, middleware.AdminAuth(admin))
	addAdminRoutes(adminGroup, h.Catalog, h.Contact)

	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config) (Handlers, *usecase.QuoteSessionUseCase, func(), error) {
	awsCfg, err := database.LoadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return Handlers{}, nil, nil, err
	}
	ddb := database.NewDynamoDBClient(awsCfg, cfg.AWS.DynamoDBEndpoint)

	serviceRepo := repository.NewServiceDynamoRepository(ddb, cfg.Tables.Services)
	configRepo := repository.NewBusinessConfigDynamoRepository(ddb, cfg.Tables.Config)
	contactRepo := repository.NewContactMessageDynamoRepository(ddb, cfg.Tables.ContactMessages)

	var blobs interfaces.IBlobStore
	if cfg.Storage.Bucket != "" {
		s3Client := storage.NewS3Client(awsCfg, cfg.Storage.Endpoint)
		blobs = storage.NewS3BlobStore(s3Client, cfg.Storage, cfg.AWS.Region)
	} else {
		slog.Warn("[api][routes] S3_BUCKET not set, service image uploads disabled")
	}

	var closers []func() error

	var box interfaces.IQuoteMailbox = mailbox.NewMemoryMailbox()
	if rdb := cache.NewRedisClient(cfg.Redis); rdb != nil {
		if err := cache.Ping(ctx, rdb); err != nil {
			slog.Warn("[api][routes] redis unreachable, using in-process hand-off mailbox", "addr", cfg.Redis.Addr, "error", err)
			_ = rdb.Close()
		} else {
			box = mailbox.NewRedisMailbox(rdb, cfg.Redis.HandOffTTL)
			closers = append(closers, rdb.Close)
		}
	}

	var events interfaces.IContactEventPublisher = messaging.NoopContactPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher := messaging.NewKafkaContactPublisher(messaging.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.ContactTopic))
		events = publisher
		closers = append(closers, publisher.Close)
	}

	catalogUseCase := usecase.NewCatalogUseCase(serviceRepo, configRepo, blobs)
	sessionUseCase := usecase.NewQuoteSessionUseCase(
		catalogUseCase,
		box,
		quote.NewDispatcher(cfg.Quote.CompanyName, cfg.Quote.WhatsAppNumber),
		cfg.Quote.SessionIdleTTL,
	)
	contactUseCase := usecase.NewContactUseCase(contactRepo, events, sessionUseCase)

	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				slog.Warn("[api][routes] close failed", "error", err)
			}
		}
	}

	return Handlers{
		Catalog: handlers.NewCatalogHandler(catalogUseCase),
		Quote:   handlers.NewQuoteHandler(sessionUseCase),
		Contact: handlers.NewContactHandler(contactUseCase),
	}, sessionUseCase, closeAll, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(metrics.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("[api][routes] recovered from panic", "panic", recovered)
		c.AbortWithStatus(500)
	}))
}
