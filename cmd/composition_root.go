package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "medassist/internal/adapters/in/http"
	"medassist/internal/adapters/out/genai"
	"medassist/internal/adapters/out/kafka"
	"medassist/internal/adapters/out/memory"
	"medassist/internal/adapters/out/metrics"
	"medassist/internal/adapters/out/payment"
	"medassist/internal/adapters/out/postgres"
	"medassist/internal/adapters/out/postgres/chatrepo"
	"medassist/internal/adapters/out/postgres/migrations"
	"medassist/internal/adapters/out/postgres/notificationrepo"
	"medassist/internal/adapters/out/postgres/orderrepo"
	"medassist/internal/adapters/out/staticcatalog"
	"medassist/internal/core/application/usecases/commands"
	"medassist/internal/core/application/usecases/queries"
	"medassist/internal/core/domain/model/order"
	"medassist/internal/core/domain/services"
	"medassist/internal/core/ports"
	"medassist/internal/jobs"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	configs Config
	logger  *slog.Logger

	uowFactory    ports.UnitOfWorkFactory
	orders        ports.OrderRepository
	notifications ports.NotificationRepository
	transcript    ports.ChatTranscript

	metrics   *metrics.Metrics
	publisher ports.OrderEventPublisher
	closers   []func() error

	factory   *order.Factory
	payments  ports.PaymentSimulator
	completer ports.ChatCompleter
	analyzer  ports.ImageAnalyzer
	searcher  ports.CatalogSearcher
	notifier  *services.OrderNotifier
}

// NewCompositionRoot opens the configured stores and builds the collaborators.
// Close releases what it opened.
func NewCompositionRoot(ctx context.Context, configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		configs: configs,
		logger:  logger,
		metrics: metrics.New(),
	}

	if err := c.openStorage(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}

	ids := order.NewRandomIDGenerator()
	existing, err := c.orders.List(ctx, order.UnknownKind)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("load order ids: %w", err)
	}
	for _, o := range existing {
		ids.Reserve(o.ID())
	}
	c.factory = order.NewFactory(ids)

	if err = c.openPublisher(); err != nil {
		_ = c.Close()
		return nil, err
	}

	delay, err := configs.PaymentDelayDuration()
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.payments = payment.NewSimulator(delay, logger)

	if err = c.openAssistant(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}

	c.notifier = services.NewOrderNotifier(c.notifications, c.transcript, logger)
	return c, nil
}

func (c *CompositionRoot) openStorage(ctx context.Context) error {
	if c.configs.StorageDriver != StoragePostgres {
		db := memory.NewDatabase()
		c.uowFactory = memory.NewUnitOfWorkFactory(db)
		c.orders = memory.NewOrderRepository(db)
		c.notifications = memory.NewNotificationRepository(db)
		c.transcript = memory.NewChatTranscript(db)
		c.logger.InfoContext(ctx, "Using in-memory storage")
		return nil
	}

	gormDB, err := OpenGormDB(c.configs)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	c.closers = append(c.closers, sqlDB.Close)

	if err = migrations.Up(ctx, sqlDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	if err = c.metrics.RegisterDB(sqlDB, c.configs.DBName); err != nil {
		return err
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	c.orders = orderrepo.NewGormOrderRepository(gormDB)
	c.notifications = notificationrepo.NewGormNotificationRepository(gormDB)
	c.transcript = chatrepo.NewGormChatTranscript(gormDB)
	c.logger.InfoContext(ctx, "Using postgres storage", "host", c.configs.DBHost, "db", c.configs.DBName)
	return nil
}

// OpenGormDB connects to Postgres with duplicate-key errors translated to gorm sentinels.
func OpenGormDB(configs Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

func (c *CompositionRoot) openPublisher() error {
	brokers := c.configs.KafkaBrokers()
	if len(brokers) == 0 {
		c.publisher = metrics.NewRecordingPublisher(c.metrics, kafka.NopOrderEventPublisher{})
		return nil
	}

	producer, err := kafka.NewOrderEventPublisher(brokers, c.configs.KafkaOrderChangedTopic, c.logger)
	if err != nil {
		return err
	}
	c.closers = append(c.closers, producer.Close)
	c.publisher = metrics.NewRecordingPublisher(c.metrics, producer)
	return nil
}

func (c *CompositionRoot) openAssistant(ctx context.Context) error {
	static, err := staticcatalog.New()
	if err != nil {
		return err
	}

	client, err := genai.NewClient(ctx, c.configs.GenAIAPIKey, c.logger,
		genai.WithBaseURL(c.configs.GenAIBaseURL),
		genai.WithModel(c.configs.GenAIModel),
	)
	if err != nil {
		return err
	}
	c.completer = client
	c.analyzer = client

	if c.configs.GenAIAPIKey == "" {
		c.logger.Warn("GENAI_API_KEY is empty, assistant replies use fallbacks and search uses the built-in catalog")
		c.searcher = static
		return nil
	}
	c.searcher = staticcatalog.NewFallbackSearcher(client, static, c.logger)
	return nil
}

// Close releases connections in reverse order of opening.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errList...)
}

// Metrics returns the registry behind /metrics.
func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceMedicineOrderCommandHandler() commands.PlaceMedicineOrderCommandHandler {
	return commands.NewPlaceMedicineOrderCommandHandler(
		c.orderUoWFactory(), c.factory, c.payments, c.notifier, c.publisher, c.logger,
	)
}

func (c *CompositionRoot) CreateBookLabTestCommandHandler() commands.BookLabTestCommandHandler {
	return commands.NewBookLabTestCommandHandler(
		c.orderUoWFactory(), c.factory, c.payments, c.notifier, c.publisher, c.logger,
	)
}

func (c *CompositionRoot) CreateAdvanceOrderStepCommandHandler() commands.AdvanceOrderStepCommandHandler {
	return commands.NewAdvanceOrderStepCommandHandler(c.orderUoWFactory(), c.notifier, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateSendChatMessageCommandHandler() commands.SendChatMessageCommandHandler {
	return commands.NewSendChatMessageCommandHandler(c.transcript, c.completer, c.logger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.notifications)
}

func (c *CompositionRoot) CreateGetChatTranscriptQueryHandler() queries.GetChatTranscriptQueryHandler {
	return queries.NewGetChatTranscriptQueryHandler(c.transcript)
}

func (c *CompositionRoot) CreateSearchCatalogQueryHandler() queries.SearchCatalogQueryHandler {
	return queries.NewSearchCatalogQueryHandler(c.searcher, c.logger)
}

func (c *CompositionRoot) CreateAnalyzeImageQueryHandler() queries.AnalyzeImageQueryHandler {
	return queries.NewAnalyzeImageQueryHandler(c.analyzer, c.logger)
}

// CreateHTTPServer wires every use case into the API server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		PlaceMedicineOrder:   c.CreatePlaceMedicineOrderCommandHandler(),
		BookLabTest:          c.CreateBookLabTestCommandHandler(),
		AdvanceOrderStep:     c.CreateAdvanceOrderStepCommandHandler(),
		MarkNotificationRead: c.CreateMarkNotificationReadCommandHandler(),
		SendChatMessage:      c.CreateSendChatMessageCommandHandler(),
		ListOrders:           c.CreateListOrdersQueryHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		ListNotifications:    c.CreateListNotificationsQueryHandler(),
		GetChatTranscript:    c.CreateGetChatTranscriptQueryHandler(),
		SearchCatalog:        c.CreateSearchCatalogQueryHandler(),
		AnalyzeImage:         c.CreateAnalyzeImageQueryHandler(),
	})
}

// CreateJobManager schedules order progress when ORDER_PROGRESS_SCHEDULE is set.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.configs.OrderProgressSchedule == "" {
		return jobs.NewJobManager(nil)
	}
	return jobs.NewJobManager(jobs.NewOrderProgressJob(
		c.configs.OrderProgressSchedule,
		c.CreateListOrdersQueryHandler(),
		c.CreateAdvanceOrderStepCommandHandler(),
		c.logger,
	))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
