package services

import (
	"errors"
	"math/rand/v2"
	"sync"

	"orderbot/internal/core/domain/model/agent"
)

// ErrAgentNotFound is returned when the delivery staff pool is empty.
var ErrAgentNotFound = errors.New("agent not found")

// AgentDispatcher is a domain service that assigns a delivery agent to a new order.
//
// Business rules:
//   - Every agent in the pool is equally likely to be chosen
//   - No load or affinity is taken into account
//   - Agents must be valid
//
// Example usage:
//
//	dispatcher := NewAgentDispatcher(rand.NewPCG(1, 2))
//	a, err := dispatcher.Dispatch(pool)
//	if errors.Is(err, ErrAgentNotFound) {
//	    // No delivery staff configured
//	}
type AgentDispatcher struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewAgentDispatcher creates a dispatcher drawing from src. A nil src uses a
// randomly seeded source.
func NewAgentDispatcher(src rand.Source) *AgentDispatcher {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &AgentDispatcher{rnd: rand.New(src)}
}

// Dispatch picks one agent uniformly at random from agents.
//
// Returns:
//   - *agent.Agent: The chosen agent
//   - error: ErrAgentNotFound if agents is empty, or a validation error
func (d *AgentDispatcher) Dispatch(agents []*agent.Agent) (*agent.Agent, error) {
	if len(agents) == 0 {
		return nil, ErrAgentNotFound
	}

	for _, a := range agents {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	d.mu.Lock()
	i := d.rnd.IntN(len(agents))
	d.mu.Unlock()

	return agents[i], nil
}
