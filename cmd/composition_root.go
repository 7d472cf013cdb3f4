package cmd

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/adapters/out/cartclient"
	"rental/internal/adapters/out/kafka"
	"rental/internal/adapters/out/notify"
	"rental/internal/adapters/out/postgres"
	"rental/internal/adapters/out/redisx"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	logger    *slog.Logger
	now       func() time.Time
	publisher ports.OrderEventPublisher
	cart      ports.CartService
	notifier  ports.Notifier
	cache     queries.AvailabilityCache
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		now:        time.Now,
		publisher:  noopPublisher{},
		cart:       cartclient.NewClient(configs.CartServiceURL),
		notifier:   notify.NewLogNotifier(logger),
	}

	if configs.KafkaHost != "" && configs.KafkaOrderChangedTopic != "" {
		root.publisher = kafka.NewOrderChangedPublisher(
			[]string{configs.KafkaHost},
			configs.KafkaOrderChangedTopic,
			logger,
		)
	}

	if configs.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
		root.cache = redisx.NewAvailabilityCache(client, logger)
	}

	return root
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.cart, c.publisher, c.logger, c.now)
}

func (c *CompositionRoot) CreateSendOrderCommandHandler() commands.SendOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendOrderCommandHandler(f, c.notifier, c.publisher, c.logger, c.now)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.ConfirmOrderUoWFactory = FuncConfirmOrderUoWFactory(func() commands.ConfirmOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f, c.publisher, c.now)
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	var f commands.BillingUoWFactory = FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	var f commands.BillingUoWFactory = FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPayOrderCommandHandler(f, c.publisher, c.now)
}

func (c *CompositionRoot) CreatePickupOrderCommandHandler() commands.PickupOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPickupOrderCommandHandler(f, c.publisher, c.now)
}

func (c *CompositionRoot) CreateReturnOrderCommandHandler() commands.ReturnOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReturnOrderCommandHandler(f, services.NewFulfillmentEngine(), c.publisher, c.now)
}

func (c *CompositionRoot) CreateVoidInvoiceCommandHandler() commands.VoidInvoiceCommandHandler {
	var f commands.BillingUoWFactory = FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVoidInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckAvailabilityQueryHandler() queries.CheckAvailabilityQueryHandler {
	return queries.NewCheckAvailabilityQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) Notifier() ports.Notifier {
	return c.notifier
}

func (c *CompositionRoot) Now() func() time.Time {
	return c.now
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncConfirmOrderUoWFactory func() commands.ConfirmOrderUoW

func (f FuncConfirmOrderUoWFactory) Create() commands.ConfirmOrderUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

// noopPublisher stands in when Kafka is not configured.
type noopPublisher struct{}

func (noopPublisher) PublishOrderChanged(context.Context, order.ChangedEvent) {}
