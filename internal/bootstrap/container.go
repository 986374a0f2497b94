package bootstrap

import (
	"context"
	"log"

	"contract-renewal-be/internal/config"
	"contract-renewal-be/internal/constant"
	"contract-renewal-be/internal/controller"
	"contract-renewal-be/internal/pkg/logger"
	"contract-renewal-be/internal/pkg/mailer"
	"contract-renewal-be/internal/repository/unitofwork"
	"contract-renewal-be/internal/service"
	"contract-renewal-be/pkg/extract"
	"contract-renewal-be/pkg/guard"
	"contract-renewal-be/pkg/llm/factory"
	"contract-renewal-be/pkg/pacific"
	"contract-renewal-be/pkg/storage"

	pktNats "contract-renewal-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AgreementController controller.IAgreementController
	EventController     controller.IEventController
	ShareController     controller.IShareController
	JobController       controller.IJobController

	// Background Services (Exposed for main.go to run)
	MailDispatchService service.IMailDispatchService
	SchedulerService    service.ISchedulerService

	// Job Services (Exposed for the one-shot CLI)
	RenewalService  service.IRenewalService
	ReminderService service.IReminderService

	Logger logger.ILogger
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
	// Publishing blocks until the dispatcher acks, so a reminder run
	// only returns once every queued email was handled. The one-shot
	// CLI relies on this to not exit mid-send.
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{
			BlockPublishUntilSubscriberAck: true,
		},
		watermillLogger,
	)

	// 3. Infrastructure
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenRouterKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	objectStorage, err := storage.NewMinioStorage(storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize object storage: %v", err)
	}
	if err := objectStorage.EnsureBucket(context.Background()); err != nil {
		log.Printf("[WARN] Failed to ensure storage bucket: %v", err)
	}

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Sweep guard: Redis when configured, in-process otherwise.
	var sweepGuard guard.SweepGuard
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sweepGuard = guard.NewRedisGuard(rdb)
	} else {
		sweepGuard = guard.NewMemoryGuard()
		log.Printf("[INFO] No Redis configured, sweep guard runs in-process")
	}

	clock := pacific.SystemClock{}

	// 4. Services
	publisherService := service.NewPublisherService(constant.ReminderTopicName, pubSub)
	mailDispatchService := service.NewMailDispatchService(
		pubSub,
		constant.ReminderTopicName,
		uowFactory,
		emailService,
		clock,
		cfg.App.ClientURL,
		sysLogger,
	)

	extractionService := service.NewExtractionService(llmProvider, sysLogger)
	uploadService := service.NewUploadService(
		uowFactory,
		objectStorage,
		extract.NewPDFExtractor(),
		extractionService,
		natsPub,
		sysLogger,
	)
	agreementService := service.NewAgreementService(uowFactory)

	eventService := service.NewEventService(
		uowFactory,
		emailService,
		objectStorage,
		natsPub,
		cfg.App.ClientURL,
		sysLogger,
	)
	renewalService := service.NewRenewalService(
		uowFactory,
		sweepGuard,
		clock,
		natsPub,
		sysLogger,
	)
	reminderService := service.NewReminderService(
		uowFactory,
		publisherService,
		clock,
		sysLogger,
	)
	schedulerService := service.NewSchedulerService(
		renewalService,
		reminderService,
		cfg.Cron.SweepHourUTC,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		AgreementController: controller.NewAgreementController(uploadService, agreementService),
		EventController:     controller.NewEventController(eventService, renewalService),
		ShareController:     controller.NewShareController(eventService),
		JobController:       controller.NewJobController(renewalService, reminderService),

		MailDispatchService: mailDispatchService,
		SchedulerService:    schedulerService,

		RenewalService:  renewalService,
		ReminderService: reminderService,

		Logger: sysLogger,
	}
}
