// Package agent holds the delivery agent entity. Agents form a fixed pool loaded
// from the seed file; orders reference them by phone.
package agent

import (
	"errors"
	"strings"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
)

// ErrAgentIsNotConstructed is returned when an Agent was not created through NewAgent.
var ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")

// Agent is a member of the delivery staff.
type Agent struct {
	phone         kernel.Phone
	name          string
	isConstructed bool
}

// NewAgent creates a delivery agent; both phone and name are required.
func NewAgent(phone kernel.Phone, name string) (*Agent, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	var phoneErr error
	if err := phone.Validate(); err != nil {
		phoneErr = errs.NewValueIsRequiredErrorWithCause("phone", err)
	}
	if err := errors.Join(phoneErr, nameErr); err != nil {
		return nil, err
	}

	return &Agent{
		phone:         phone,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the agent was created through NewAgent.
func (a *Agent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgentIsNotConstructed
	}
	return nil
}

// Phone returns the agent's contact phone.
func (a *Agent) Phone() kernel.Phone {
	return a.phone
}

// Name returns the agent's name.
func (a *Agent) Name() string {
	return a.name
}
