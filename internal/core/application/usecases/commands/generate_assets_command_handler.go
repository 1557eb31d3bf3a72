package commands

import (
	"context"

	"procurement/internal/core/domain/model/asset"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
)

// GenerateAssetsCommandHandler turns received line item units into persisted
// asset records. The asset rows and the order's generation counters commit
// in one transaction, and the order row carries a version check, so two
// concurrent runs can never both withdraw the same balance.
type GenerateAssetsCommandHandler struct {
	uowFactory AssetUoWFactory
	generator  services.AssetGenerator
	clock      ports.Clock
}

// NewGenerateAssetsCommandHandler creates a handler for asset generation.
func NewGenerateAssetsCommandHandler(uowFactory AssetUoWFactory, clock ports.Clock) GenerateAssetsCommandHandler {
	return GenerateAssetsCommandHandler{
		uowFactory: uowFactory,
		generator:  services.NewAssetGenerator(),
		clock:      clock,
	}
}

// Handle processes the generation command and returns the created records.
// All-or-nothing: one bad selection fails the whole run and nothing is
// persisted.
func (h *GenerateAssetsCommandHandler) Handle(
	ctx context.Context,
	cmd GenerateAssetsCommand,
) ([]*asset.GeneratedAsset, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	assets, err := h.generator.Generate(aggregate, cmd.Selections(), cmd.Actor(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.AssetRepository().AddBatch(ctx, assets); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assets, nil
}
