package ports

import (
	"context"

	"orderbot/internal/core/domain/model/agent"
	"orderbot/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for the delivery staff pool.
type AgentRepository interface {
	// Save inserts or renames an agent by phone.
	Save(ctx context.Context, a *agent.Agent) error

	// Get retrieves an agent by phone.
	Get(ctx context.Context, phone kernel.Phone) (*agent.Agent, error)

	// GetAll returns the whole pool ordered by phone.
	GetAll(ctx context.Context) ([]*agent.Agent, error)
}
