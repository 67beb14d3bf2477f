package bootstrap

import (
	"context"
	"log"
	"time"

	"registration-sheets-be/internal/config"
	"registration-sheets-be/internal/controller"
	"registration-sheets-be/internal/pkg/logger"
	"registration-sheets-be/internal/pkg/mailer"
	"registration-sheets-be/internal/repository/unitofwork"
	"registration-sheets-be/internal/service"
	"registration-sheets-be/pkg/cache"
	"registration-sheets-be/pkg/pdf"
	"registration-sheets-be/pkg/sheets/assemble"
	"registration-sheets-be/pkg/sheets/attachment"
	"registration-sheets-be/pkg/sheets/evaluation"
	"registration-sheets-be/pkg/sheets/loader"
	"registration-sheets-be/pkg/sheets/phase"

	pktNats "registration-sheets-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SheetController controller.ISheetController
	AdminController controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for the CLI entrypoint
	SheetService service.ISheetService

	// Infrastructure main.go must shut down
	Renderer      *pdf.RodRenderer
	NatsPublisher *pktNats.Publisher
	Logger        logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)

	cacheTTL := time.Duration(cfg.Sheets.CacheTTLMinutes) * time.Minute
	var sharedTier cache.Store
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Running on local cache only", err)
	} else {
		sharedTier = cache.NewRedisStore(rdb, "sheets")
	}
	localTier := cache.NewMemoryStore(cacheTTL, 2*cacheTTL)
	tieredCache := cache.NewTieredCache(sharedTier, localTier, sysLogger)

	// 3. PDF Collaborators
	sheetTemplate, err := pdf.NewSheetTemplate()
	if err != nil {
		log.Fatalf("[FATAL] Failed to parse sheet template: %v", err)
	}
	renderer, err := pdf.NewRodRenderer()
	if err != nil {
		log.Fatalf("[FATAL] Failed to start headless renderer: %v", err)
	}
	merger := pdf.NewPdfcpuMerger(sysLogger)

	// 4. Pipeline Components
	phaseResolver := phase.NewResolver(uowFactory, tieredCache, cacheTTL, sysLogger)
	batchLoader := loader.NewBatchLoader(uowFactory, sysLogger)
	evaluationEngine := evaluation.NewEngine(uowFactory, tieredCache, cacheTTL, sysLogger)
	assembler := assemble.NewAssembler(evaluationEngine)
	collector := attachment.NewCollector(cfg.Sheets.AttachmentsDir, sysLogger)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Sheets.ProgressTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Sheets.ProgressTopic,
		natsPub,
		emailService,
		cfg.Sheets.ReportEmail,
		sysLogger,
	)

	sheetService := service.NewSheetService(
		phaseResolver,
		batchLoader,
		evaluationEngine,
		assembler,
		sheetTemplate,
		renderer,
		merger,
		collector,
		publisherService,
		cfg.Sheets.OutputDir,
		cfg.Sheets.RenderWindow,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		SheetController: controller.NewSheetController(sheetService),
		AdminController: controller.NewAdminController(tieredCache, sysLogger),

		ConsumerService: consumerService,
		SheetService:    sheetService,

		Renderer:      renderer,
		NatsPublisher: natsPub,
		Logger:        sysLogger,
	}
}
