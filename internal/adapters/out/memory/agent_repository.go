package memory

import (
	"context"
	"sort"

	"orderbot/internal/core/domain/model/agent"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
)

// AgentRepository stores the delivery staff pool.
type AgentRepository struct {
	session
}

// NewAgentRepository returns a repository writing outside of any transaction.
func NewAgentRepository(store *Store) *AgentRepository {
	return &AgentRepository{session: session{store: store}}
}

func (r *AgentRepository) Save(_ context.Context, a *agent.Agent) error {
	if err := a.Validate(); err != nil {
		return err
	}

	key := a.Phone().String()
	return r.write(func() (func(), error) {
		prev, existed := r.store.agents[key]
		r.store.agents[key] = a
		return func() {
			if existed {
				r.store.agents[key] = prev
			} else {
				delete(r.store.agents, key)
			}
		}, nil
	})
}

func (r *AgentRepository) Get(_ context.Context, phone kernel.Phone) (*agent.Agent, error) {
	var (
		a  *agent.Agent
		ok bool
	)
	r.read(func() {
		a, ok = r.store.agents[phone.String()]
	})
	if !ok {
		return nil, errs.NewObjectNotFoundError("agent", phone.String())
	}
	return a, nil
}

func (r *AgentRepository) GetAll(_ context.Context) ([]*agent.Agent, error) {
	var agents []*agent.Agent
	r.read(func() {
		agents = make([]*agent.Agent, 0, len(r.store.agents))
		for _, a := range r.store.agents {
			agents = append(agents, a)
		}
	})
	sort.Slice(agents, func(i, j int) bool {
		return agents[i].Phone().String() < agents[j].Phone().String()
	})
	return agents, nil
}
