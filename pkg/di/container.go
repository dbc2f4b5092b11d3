package di

import (
	"taskman/application/serviceimpl"
	"taskman/domain/ports"
	"taskman/domain/repositories"
	"taskman/domain/services"
	natspkg "taskman/infrastructure/nats"
	"taskman/infrastructure/postgres"
	"taskman/interfaces/api/handlers"
	"taskman/pkg/config"
	"taskman/pkg/logger"

	"gorm.io/gorm"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB         *gorm.DB
	NATSClient *natspkg.Client // NATS connection สำหรับ notification fanout (optional)

	// Repositories
	PersonRepository repositories.PersonRepository
	TaskRepository   repositories.TaskRepository

	// Notifications
	Notifier ports.NotificationPublisher // nil ถ้า NATS ไม่ available

	// Services
	PersonService services.PersonService
	TaskService   services.TaskService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Initialize NATS Client (optional - graceful degradation)
	// ถ้าต่อไม่ได้ service ยังทำงานได้ แค่ไม่ส่ง notification
	natsClient, err := natspkg.NewClient(natspkg.ClientConfig{
		URL: c.Config.NATS.URL,
	})
	if err != nil {
		logger.Warn("NATS client initialization failed (notifications disabled)", "error", err)
	} else {
		c.NATSClient = natsClient
		c.Notifier = natspkg.NewNotificationPublisher(natsClient)
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.PersonRepository = postgres.NewPersonRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.PersonService = serviceimpl.NewPersonService(c.PersonRepository, c.Notifier)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.PersonRepository, c.Notifier)
	logger.Info("Services initialized")
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Close NATS connection
	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		} else {
			logger.Info("NATS connection closed")
		}
	}

	// Close database connection
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		PersonService: c.PersonService,
		TaskService:   c.TaskService,
	}
}
