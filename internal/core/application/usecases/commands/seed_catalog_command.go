package commands

import (
	"errors"

	"orderbot/internal/core/domain/model/agent"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

var (
	ErrSeedCatalogCommandIsNotConstructed = errors.New(
		"SeedCatalogCommand must be created via NewSeedCatalogCommand constructor",
	)
)

// SeedCatalogCommand loads the menu and the delivery staff pool into the store.
type SeedCatalogCommand struct { //nolint:recvcheck //using for validation
	dishes []*catalog.Dish
	agents []*agent.Agent

	guard guard.ConstructorGuard
}

// NewSeedCatalogCommand creates the command. At least one agent is required:
// orders cannot be opened without delivery staff.
func NewSeedCatalogCommand(dishes []*catalog.Dish, agents []*agent.Agent) (SeedCatalogCommand, error) {
	if len(agents) == 0 {
		return SeedCatalogCommand{}, errs.NewValueIsRequiredError("agents")
	}
	for _, d := range dishes {
		if err := d.Validate(); err != nil {
			return SeedCatalogCommand{}, err
		}
	}
	for _, a := range agents {
		if err := a.Validate(); err != nil {
			return SeedCatalogCommand{}, err
		}
	}

	return SeedCatalogCommand{
		dishes: dishes,
		agents: agents,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SeedCatalogCommand) Validate() error {
	return c.guard.Validate(ErrSeedCatalogCommandIsNotConstructed)
}

// Dishes returns the menu items to store.
func (c SeedCatalogCommand) Dishes() []*catalog.Dish {
	return c.dishes
}

// Agents returns the delivery staff to store.
func (c SeedCatalogCommand) Agents() []*agent.Agent {
	return c.agents
}
