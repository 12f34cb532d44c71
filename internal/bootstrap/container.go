package bootstrap

import (
	"context"
	"log"
	"time"

	"getunlocked-be/internal/config"
	"getunlocked-be/internal/controller"
	"getunlocked-be/internal/handler"
	"getunlocked-be/internal/pkg/logger"
	"getunlocked-be/internal/pkg/mailer"
	"getunlocked-be/internal/pkg/serverutils"
	"getunlocked-be/internal/repository/implementation"
	"getunlocked-be/internal/repository/unitofwork"
	"getunlocked-be/internal/service"
	"getunlocked-be/internal/websocket"
	"getunlocked-be/pkg/llm/factory"
	pktNats "getunlocked-be/pkg/nats"
	"getunlocked-be/pkg/paypal"
	"getunlocked-be/pkg/quota"
	"getunlocked-be/pkg/ratelimit"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// interactionTopic is the in-process queue feeding interaction analysis.
const interactionTopic = "interaction.analyze"

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	ProfileController controller.IProfileController
	DNAController     controller.IDNAController
	MatchController   controller.IMatchController
	MessageController controller.IMessageController
	PaymentController controller.IPaymentController
	DigestController  controller.IDigestController
	EventController   controller.IEventController
	VaultController   controller.IVaultController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	serverutils.ConfigureJWT(cfg.App.JWTSecret)
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

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
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
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// PayPal
	paypalClient := paypal.NewClient(
		cfg.Keys.PayPalBaseURL,
		cfg.Keys.PayPalClientID,
		cfg.Keys.PayPalClientSecret,
	)

	messageQuota := quota.NewRedisCounter(rdb, "quota:messages")
	webhookLimiter := ratelimit.NewRedisLimiter(rdb, "ratelimit:webhook", 60, time.Minute)

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, interactionTopic)

	entitlementService := service.NewEntitlementService(uowFactory, sysLogger)
	eventService := service.NewEventService(uowFactory, natsPub)
	recorderService := service.NewRecorderService(entitlementService, publisherService, sysLogger)

	dnaService := service.NewDNAService(uowFactory, llmProvider, entitlementService, natsPub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, interactionTopic, dnaService)

	matchingService := service.NewMatchingService(uowFactory, llmProvider, recorderService, sysLogger)
	messageService := service.NewMessageService(
		uowFactory,
		entitlementService,
		recorderService,
		eventService,
		messageQuota,
		cfg.Quota.FreeDailyMessages,
		sysLogger,
	)
	paymentService := service.NewPaymentService(
		uowFactory,
		paypalClient,
		cfg.Keys.PayPalWebhookID,
		cfg.App.ClientURL,
		entitlementService,
		natsPub,
		emailService,
		sysLogger,
	)
	digestService := service.NewDigestService(uowFactory, llmProvider, entitlementService, sysLogger)
	journeyService := service.NewJourneyService(uowFactory, emailService, sysLogger)
	vaultService := service.NewVaultService(uowFactory)
	profileService := service.NewProfileService(uowFactory, eventService, recorderService, sysLogger)
	authService := service.NewAuthService(uowFactory, emailService, eventService)

	// 3.5 Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, natsPub, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		AuthController:    controller.NewAuthController(authService),
		ProfileController: controller.NewProfileController(profileService),
		DNAController:     controller.NewDNAController(dnaService),
		MatchController:   controller.NewMatchController(matchingService, profileService),
		MessageController: controller.NewMessageController(messageService),
		PaymentController: controller.NewPaymentController(paymentService, entitlementService, webhookLimiter),
		DigestController:  controller.NewDigestController(digestService),
		EventController:   controller.NewEventController(eventService, recorderService, journeyService),
		VaultController:   controller.NewVaultController(vaultService),

		ConsumerService: consumerService,
	}
}
