package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpin "orderbot/internal/adapters/in/http"
	"orderbot/internal/adapters/out/memory"
	"orderbot/internal/adapters/out/postgres"
	"orderbot/internal/adapters/out/postgres/agentrepo"
	"orderbot/internal/adapters/out/postgres/catalogrepo"
	"orderbot/internal/adapters/out/postgres/orderrepo"
	"orderbot/internal/adapters/out/postgres/readmodel"
	"orderbot/internal/adapters/out/rabbitmq"
	"orderbot/internal/adapters/out/seed"
	"orderbot/internal/core/application/conversation"
	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/application/usecases/queries"
	"orderbot/internal/core/domain/services"
	"orderbot/internal/core/ports"
	"orderbot/internal/jobs"
)

// Backend is one storage implementation behind the ports.
type Backend struct {
	UoWFactory ports.UnitOfWorkFactory
	Orders     ports.OrderRepository
	Catalog    ports.CatalogRepository
	Agents     ports.AgentRepository
	Tastes     ports.TasteReader
	Sales      ports.SalesReader
	Close      func() error
}

// NewPostgresBackend connects to cfg's database and migrates the schema.
func NewPostgresBackend(ctx context.Context, cfg Config) (Backend, error) {
	db, err := postgres.Open(cfg.DSN())
	if err != nil {
		return Backend{}, fmt.Errorf("connect to postgres: %w", err)
	}
	if err = postgres.Migrate(ctx, db); err != nil {
		return Backend{}, fmt.Errorf("migrate schema: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return Backend{}, err
	}

	reads := readmodel.NewGormReadModel(db)
	return Backend{
		UoWFactory: postgres.NewGormUnitOfWorkFactory(db),
		Orders:     orderrepo.NewGormOrderRepository(db),
		Catalog:    catalogrepo.NewGormCatalogRepository(db),
		Agents:     agentrepo.NewGormAgentRepository(db),
		Tastes:     reads,
		Sales:      reads,
		Close:      sqlDB.Close,
	}, nil
}

// NewMemoryBackend keeps everything in process memory.
func NewMemoryBackend() Backend {
	store := memory.NewStore()
	reads := memory.NewReadModel(store)
	return Backend{
		UoWFactory: memory.NewUnitOfWorkFactory(store),
		Orders:     memory.NewOrderRepository(store),
		Catalog:    memory.NewCatalogRepository(store),
		Agents:     memory.NewAgentRepository(store),
		Tastes:     reads,
		Sales:      reads,
		Close:      func() error { return nil },
	}
}

// NewBackend opens the backend selected by cfg.Store.
func NewBackend(ctx context.Context, cfg Config) (Backend, error) {
	if cfg.Store == StoreMemory {
		return NewMemoryBackend(), nil
	}
	return NewPostgresBackend(ctx, cfg)
}

type CompositionRoot struct {
	cfg       Config
	backend   Backend
	publisher ports.OrderEventPublisher
	sessions  *conversation.SessionStore
	now       func() time.Time
	logger    *slog.Logger
}

// NewCompositionRoot wires the application over backend. A nil publisher
// disables order events.
func NewCompositionRoot(
	cfg Config,
	backend Backend,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) *CompositionRoot {
	return &CompositionRoot{
		cfg:       cfg,
		backend:   backend,
		publisher: publisher,
		sessions:  conversation.NewSessionStore(time.Now),
		now:       time.Now,
		logger:    logger,
	}
}

// NewPublisher dials RabbitMQ when cfg.RabbitMQURL is set and returns nil otherwise.
func NewPublisher(cfg Config, logger *slog.Logger) (*rabbitmq.Publisher, error) {
	if cfg.RabbitMQURL == "" {
		return nil, nil //nolint:nilnil // events are optional
	}
	return rabbitmq.Dial(cfg.RabbitMQURL, cfg.RabbitMQExchange, logger)
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.backend.UoWFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateOpenOrderCommandHandler() commands.OpenOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.backend.UoWFactory.Create()
	})
	return commands.NewOpenOrderCommandHandler(f, services.NewAgentDispatcher(nil), c.now)
}

func (c *CompositionRoot) CreateAddOrderLineCommandHandler() commands.AddOrderLineCommandHandler {
	var f commands.OrderLineUoWFactory = FuncOrderLineUoWFactory(func() commands.OrderLineUoW {
		return c.backend.UoWFactory.Create()
	})
	return commands.NewAddOrderLineCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveOrderLineCommandHandler() commands.RemoveOrderLineCommandHandler {
	var f commands.OrderLineUoWFactory = FuncOrderLineUoWFactory(func() commands.OrderLineUoW {
		return c.backend.UoWFactory.Create()
	})
	return commands.NewRemoveOrderLineCommandHandler(f)
}

func (c *CompositionRoot) CreateSetOrderRemarkCommandHandler() commands.SetOrderRemarkCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.backend.UoWFactory.Create()
	})
	return commands.NewSetOrderRemarkCommandHandler(f)
}

func (c *CompositionRoot) CreateSeedCatalogCommandHandler() commands.SeedCatalogCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.backend.UoWFactory.Create()
	})
	return commands.NewSeedCatalogCommandHandler(f)
}

func (c *CompositionRoot) CreateGetWeeklyIncomeQueryHandler() queries.GetWeeklyIncomeQueryHandler {
	return queries.NewGetWeeklyIncomeQueryHandler(c.backend.Sales)
}

func (c *CompositionRoot) CreateGetIncomeByDishTypeQueryHandler() queries.GetIncomeByDishTypeQueryHandler {
	return queries.NewGetIncomeByDishTypeQueryHandler(c.backend.Sales)
}

func (c *CompositionRoot) CreateGetDishSalesQueryHandler() queries.GetDishSalesQueryHandler {
	return queries.NewGetDishSalesQueryHandler(c.backend.Sales)
}

// Handlers collects every usecase the conversation drives.
func (c *CompositionRoot) Handlers() conversation.Handlers {
	return conversation.Handlers{
		RegisterCustomer: c.CreateRegisterCustomerCommandHandler(),
		OpenOrder:        c.CreateOpenOrderCommandHandler(),
		AddOrderLine:     c.CreateAddOrderLineCommandHandler(),
		RemoveOrderLine:  c.CreateRemoveOrderLineCommandHandler(),
		SetOrderRemark:   c.CreateSetOrderRemarkCommandHandler(),

		MenuSection:      queries.NewGetMenuSectionQueryHandler(c.backend.Catalog),
		Cart:             queries.NewGetCartQueryHandler(c.backend.Orders),
		Recommended:      queries.NewGetRecommendedDishesQueryHandler(c.backend.Orders, c.backend.Tastes),
		Favorites:        queries.NewGetFavoriteDishesQueryHandler(c.backend.Tastes),
		OrderAgent:       queries.NewGetOrderAgentQueryHandler(c.backend.Orders, c.backend.Agents),
		WeeklyIncome:     c.CreateGetWeeklyIncomeQueryHandler(),
		IncomeByDishType: c.CreateGetIncomeByDishTypeQueryHandler(),
		DishSales:        c.CreateGetDishSalesQueryHandler(),
	}
}

// Machine builds the conversation state machine over the shared session store.
func (c *CompositionRoot) Machine() *conversation.Machine {
	opts := []conversation.Option{conversation.WithLogger(c.logger)}
	if c.publisher != nil {
		opts = append(opts, conversation.WithEventPublisher(c.publisher))
	}
	return conversation.NewMachine(
		conversation.Config{
			BackOfficeCommand: c.cfg.BackOfficeCommand,
			PhotoDir:          c.cfg.PhotoDir,
			Website:           c.cfg.RestaurantWebsite,
			MenuURL:           c.cfg.MenuURL,
			Phone:             c.cfg.RestaurantPhone,
		},
		c.Handlers(),
		c.sessions,
		opts...,
	)
}

// HTTPServer builds the webhook and reports server.
func (c *CompositionRoot) HTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.Machine(),
		c.CreateGetWeeklyIncomeQueryHandler(),
		c.CreateGetIncomeByDishTypeQueryHandler(),
		c.CreateGetDishSalesQueryHandler(),
		c.now,
	)
}

// JobManager builds the background jobs.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.sessions, c.cfg.SessionTTL, c.cfg.SessionSweepSchedule, c.logger)
}

// Seed loads cfg.SeedFile into the store. Without a seed file it does nothing.
func (c *CompositionRoot) Seed(ctx context.Context) error {
	if c.cfg.SeedFile == "" {
		return nil
	}

	f, err := seed.Load(c.cfg.SeedFile)
	if err != nil {
		return err
	}
	cmd, err := f.Command()
	if err != nil {
		return fmt.Errorf("seed file %s: %w", c.cfg.SeedFile, err)
	}
	if err = c.CreateSeedCatalogCommandHandler().Handle(ctx, cmd); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	c.logger.InfoContext(ctx, "catalog seeded",
		"dishes", len(cmd.Dishes()), "agents", len(cmd.Agents()))
	return nil
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderLineUoWFactory func() commands.OrderLineUoW

func (f FuncOrderLineUoWFactory) Create() commands.OrderLineUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
