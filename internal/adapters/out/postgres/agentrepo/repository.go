package agentrepo

import (
	"context"

	"orderbot/internal/adapters/out/postgres/pgerr"
	"orderbot/internal/core/domain/model/agent"
	"orderbot/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAgentRepository implements AgentRepository using GORM.
type GormAgentRepository struct {
	db *gorm.DB
}

// NewGormAgentRepository creates a new GORM agent repository.
func NewGormAgentRepository(db *gorm.DB) *GormAgentRepository {
	return &GormAgentRepository{db: db}
}

// Save inserts the agent or renames the one stored under its phone.
func (r *GormAgentRepository) Save(ctx context.Context, a *agent.Agent) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&dto).Error
	return pgerr.Wrap("save agent", err)
}

// Get retrieves an agent by phone.
func (r *GormAgentRepository) Get(ctx context.Context, phone kernel.Phone) (*agent.Agent, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	var dto AgentDTO
	if err := r.db.WithContext(ctx).Take(&dto, "phone = ?", phone.String()).Error; err != nil {
		return nil, pgerr.NotFound("get agent", "agent", phone.String(), err)
	}
	return toDomain(dto)
}

// GetAll returns every agent ordered by phone.
func (r *GormAgentRepository) GetAll(ctx context.Context) ([]*agent.Agent, error) {
	var dtos []AgentDTO
	if err := r.db.WithContext(ctx).Order("phone").Find(&dtos).Error; err != nil {
		return nil, pgerr.Wrap("list agents", err)
	}

	agents := make([]*agent.Agent, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, nil
}
