package app

import (
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/almog-gaya/nextprop-sub005/domain"
	"github.com/almog-gaya/nextprop-sub005/internal/config"
	"github.com/almog-gaya/nextprop-sub005/internal/infrastructure/database"
	"github.com/almog-gaya/nextprop-sub005/internal/infrastructure/providers"
	"github.com/almog-gaya/nextprop-sub005/internal/infrastructure/repositories"
	"github.com/almog-gaya/nextprop-sub005/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config
	Logger *logrus.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *database.RedisClient

	// Repositories
	BusinessRepo     domain.BusinessRepository
	VerificationRepo domain.VerificationRepository
	Conversations    domain.ConversationStore
	Guard            domain.ReplayGuard

	// Providers
	VerifyProvider  domain.VerifyProvider
	MessageProvider domain.MessageProvider

	// Services
	BusinessSvc     domain.BusinessService
	VerificationSvc domain.VerificationService
	MessagingSvc    domain.MessagingService
}

// NewLogger builds the process-wide structured logger
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)
	logger.SetOutput(os.Stdout)
	return logger
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	container := &Container{Config: cfg, Logger: logger}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initProviders()
	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
}

func (c *Container) initProviders() {
	client := providers.NewTwilioClient(c.Config.TwilioSID, c.Config.TwilioToken, c.Config.TwilioTimeout)
	c.VerifyProvider = providers.NewTwilioVerifyProvider(client)
	c.MessageProvider = providers.NewTwilioMessageProvider(client)
}

func (c *Container) initRepositories() {
	c.BusinessRepo = repositories.NewBusinessRepository(c.DB)
	c.VerificationRepo = repositories.NewVerificationRepository(c.DB)
	c.Conversations = repositories.NewConversationRepository(c.DB)
	c.Guard = repositories.NewReplayGuard(c.RedisClient.Client)
}

func (c *Container) initServices() {
	c.BusinessSvc = services.NewBusinessService(c.BusinessRepo, c.VerifyProvider)
	c.VerificationSvc = services.NewVerificationService(
		c.BusinessRepo,
		c.VerificationRepo,
		c.VerifyProvider,
		c.Guard,
		services.VerificationConfig{ResendWindow: c.Config.ResendWindow},
	)
	c.MessagingSvc = services.NewMessagingService(
		c.MessageProvider,
		c.BusinessRepo,
		c.Conversations,
		c.Guard,
		c.Logger,
		services.MessagingConfig{
			DefaultBusinessID: c.Config.DefaultBusinessID,
			DedupeTTL:         c.Config.DedupeTTL,
		},
	)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
