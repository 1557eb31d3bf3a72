package cmd

import (
	"time"

	"procurement/internal/adapters/out/localfiles"
	"procurement/internal/adapters/out/policy"
	"procurement/internal/adapters/out/postgres"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	policy     ports.PolicyCheck
	files      ports.FileStore
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      systemClock{},
		policy:     policy.NewRolePolicy(),
		files:      localfiles.NewStore(config.AttachmentRoot),
	}
}

func (c *CompositionRoot) Clock() ports.Clock {
	return c.clock
}

func (c *CompositionRoot) Policy() ports.PolicyCheck {
	return c.policy
}

func (c *CompositionRoot) Files() ports.FileStore {
	return c.files
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderItemsCommandHandler() commands.UpdateOrderItemsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderItemsCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateScheduleDeliveryCommandHandler() commands.ScheduleDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleDeliveryCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateReceiveItemsCommandHandler() commands.ReceiveItemsCommandHandler {
	var f commands.ReceiptUoWFactory = FuncReceiptUoWFactory(func() commands.ReceiptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReceiveItemsCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateReviewDiscrepancyCommandHandler() commands.ReviewDiscrepancyCommandHandler {
	var f commands.DiscrepancyUoWFactory = FuncDiscrepancyUoWFactory(func() commands.DiscrepancyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewDiscrepancyCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveDiscrepancyCommandHandler() commands.ResolveDiscrepancyCommandHandler {
	var f commands.DiscrepancyUoWFactory = FuncDiscrepancyUoWFactory(func() commands.DiscrepancyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveDiscrepancyCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGenerateAssetsCommandHandler() commands.GenerateAssetsCommandHandler {
	var f commands.AssetUoWFactory = FuncAssetUoWFactory(func() commands.AssetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateAssetsCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueDeliveriesQueryHandler() queries.GetOverdueDeliveriesQueryHandler {
	return queries.NewGetOverdueDeliveriesQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetOpenDiscrepancyQueryHandler() queries.GetOpenDiscrepancyQueryHandler {
	return queries.NewGetOpenDiscrepancyQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDiscrepancyUoWFactory func() commands.DiscrepancyUoW

func (f FuncDiscrepancyUoWFactory) Create() commands.DiscrepancyUoW {
	return f()
}

type FuncReceiptUoWFactory func() commands.ReceiptUoW

func (f FuncReceiptUoWFactory) Create() commands.ReceiptUoW {
	return f()
}

type FuncAssetUoWFactory func() commands.AssetUoW

func (f FuncAssetUoWFactory) Create() commands.AssetUoW {
	return f()
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
