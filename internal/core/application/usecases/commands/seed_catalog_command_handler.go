package commands

import (
	"context"
)

// SeedCatalogCommandHandler saves the menu and the staff pool in one transaction.
// Running it again with the same data changes nothing.
type SeedCatalogCommandHandler struct {
	uowFactory UoWFactory
}

// NewSeedCatalogCommandHandler creates a handler for catalog seeding.
func NewSeedCatalogCommandHandler(uowFactory UoWFactory) SeedCatalogCommandHandler {
	return SeedCatalogCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores every dish and agent.
func (h SeedCatalogCommandHandler) Handle(ctx context.Context, cmd SeedCatalogCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	for _, d := range cmd.Dishes() {
		if err := catalogRepo.Save(ctx, d); err != nil {
			return err
		}
	}

	agentRepo := uow.AgentRepository()
	for _, a := range cmd.Agents() {
		if err := agentRepo.Save(ctx, a); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
