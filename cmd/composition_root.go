package cmd

import (
	"log/slog"

	"vinylshop/internal/adapters/out/postgres"
	"vinylshop/internal/adapters/out/postgres/clientrepo"
	"vinylshop/internal/adapters/out/postgres/outboxrepo"
	"vinylshop/internal/core/application/usecases/commands"
	"vinylshop/internal/core/application/usecases/queries"
	"vinylshop/internal/core/domain/model/kernel"
	"vinylshop/internal/core/domain/services"
	"vinylshop/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.TieredDeliveryCostPolicy
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	charge, err := kernel.MoneyFromString(configs.DeliveryCharge, configs.DeliveryCurrency)
	if err != nil {
		return CompositionRoot{}, err
	}

	threshold, err := kernel.MoneyFromString(configs.DeliveryThreshold, configs.DeliveryCurrency)
	if err != nil {
		return CompositionRoot{}, err
	}

	policy, err := services.NewTieredDeliveryCostPolicy(charge, threshold)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     policy,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderWithIDCommandHandler() commands.CreateOrderWithIDCommandHandler {
	return commands.NewCreateOrderWithIDCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddItemsToOrderCommandHandler() commands.AddItemsToOrderCommandHandler {
	return commands.NewAddItemsToOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(
		c.orderUoWFactory(),
		c.CreateClientReputationProvider(),
		c.policy,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateClientReputationProvider() ports.ClientReputationProvider {
	return clientrepo.NewGormClientReputationProvider(c.gormDB)
}

// CreateEventOutboxReader returns the relay's view of the outbox. Reads run
// outside any unit of work.
func (c *CompositionRoot) CreateEventOutboxReader() ports.EventOutboxReader {
	return outboxrepo.NewGormEventOutbox(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
