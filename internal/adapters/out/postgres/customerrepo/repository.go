package customerrepo

import (
	"context"

	"orderbot/internal/adapters/out/postgres/pgerr"
	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Upsert inserts the customer or renames the one stored under its phone.
func (r *GormCustomerRepository) Upsert(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&dto).Error
	return pgerr.Wrap("upsert customer", err)
}

// Get retrieves a customer by phone.
func (r *GormCustomerRepository) Get(ctx context.Context, phone kernel.Phone) (*customer.Customer, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).Take(&dto, "phone = ?", phone.String()).Error; err != nil {
		return nil, pgerr.NotFound("get customer", "phone", phone.String(), err)
	}
	return toDomain(dto)
}
