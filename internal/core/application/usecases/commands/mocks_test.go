package commands_test

import (
	"context"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/asset"
	"procurement/internal/core/domain/model/discrepancy"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDiscrepancyRepository struct{ mock.Mock }

func (m *MockDiscrepancyRepository) Add(ctx context.Context, c *discrepancy.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockDiscrepancyRepository) Update(ctx context.Context, c *discrepancy.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockDiscrepancyRepository) Get(ctx context.Context, id kernel.UUID) (*discrepancy.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discrepancy.Case), args.Error(1)
}
func (m *MockDiscrepancyRepository) GetOpenByOrder(ctx context.Context, orderID kernel.UUID) (*discrepancy.Case, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discrepancy.Case), args.Error(1)
}

type MockAssetRepository struct{ mock.Mock }

func (m *MockAssetRepository) AddBatch(ctx context.Context, assets []*asset.GeneratedAsset) error {
	args := m.Called(ctx, assets)
	return args.Error(0)
}
func (m *MockAssetRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*asset.GeneratedAsset, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*asset.GeneratedAsset), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDiscrepancyUoW struct{ mock.Mock }

func (m *MockDiscrepancyUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDiscrepancyUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDiscrepancyUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDiscrepancyUoW) DiscrepancyRepository() ports.DiscrepancyRepository {
	args := m.Called()
	return args.Get(0).(ports.DiscrepancyRepository)
}

type MockDiscrepancyUoWFactory struct{ mock.Mock }

func (m *MockDiscrepancyUoWFactory) Create() commands.DiscrepancyUoW {
	args := m.Called()
	return args.Get(0).(commands.DiscrepancyUoW)
}

type MockReceiptUoW struct{ mock.Mock }

func (m *MockReceiptUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReceiptUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReceiptUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReceiptUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockReceiptUoW) DiscrepancyRepository() ports.DiscrepancyRepository {
	args := m.Called()
	return args.Get(0).(ports.DiscrepancyRepository)
}

type MockReceiptUoWFactory struct{ mock.Mock }

func (m *MockReceiptUoWFactory) Create() commands.ReceiptUoW {
	args := m.Called()
	return args.Get(0).(commands.ReceiptUoW)
}

type MockAssetUoW struct{ mock.Mock }

func (m *MockAssetUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAssetUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAssetUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAssetUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockAssetUoW) AssetRepository() ports.AssetRepository {
	args := m.Called()
	return args.Get(0).(ports.AssetRepository)
}

type MockAssetUoWFactory struct{ mock.Mock }

func (m *MockAssetUoWFactory) Create() commands.AssetUoW {
	args := m.Called()
	return args.Get(0).(commands.AssetUoW)
}
