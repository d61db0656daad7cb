// Package agentrepo persists the delivery staff pool.
package agentrepo

import (
	"orderbot/internal/core/domain/model/agent"
	"orderbot/internal/core/domain/model/kernel"
)

// AgentDTO represents the database structure for persisting delivery agents.
type AgentDTO struct {
	Phone string `gorm:"type:varchar(13);primaryKey"`
	Name  string `gorm:"not null"`
}

// TableName specifies the database table name for delivery agents.
func (AgentDTO) TableName() string {
	return "delivery_agents"
}

func fromDomain(a *agent.Agent) AgentDTO {
	return AgentDTO{
		Phone: a.Phone().String(),
		Name:  a.Name(),
	}
}

func toDomain(dto AgentDTO) (*agent.Agent, error) {
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}
	return agent.NewAgent(phone, dto.Name)
}
