package catalogrepo

import (
	"context"

	"orderbot/internal/adapters/out/postgres/pgerr"
	"orderbot/internal/core/domain/model/catalog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Save inserts or replaces a dish by number. A name already used by another
// dish is rejected with errs.ValueIsInvalidError.
func (r *GormCatalogRepository) Save(ctx context.Context, d *catalog.Dish) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "number"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "dish_type", "price", "tags"}),
	}).Create(&dto).Error
	return pgerr.Wrap("save dish", err)
}

// ListByType returns the dishes of one menu section ordered by number.
func (r *GormCatalogRepository) ListByType(ctx context.Context, dishType string) ([]*catalog.Dish, error) {
	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Where("dish_type = ?", dishType).Order("number").Find(&dtos).Error; err != nil {
		return nil, pgerr.Wrap("list dishes", err)
	}

	dishes := make([]*catalog.Dish, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}

// GetByName resolves a dish by its exact name.
func (r *GormCatalogRepository) GetByName(ctx context.Context, name string) (*catalog.Dish, error) {
	var dto DishDTO
	if err := r.db.WithContext(ctx).Take(&dto, "name = ?", name).Error; err != nil {
		return nil, pgerr.NotFound("get dish", "dish", name, err)
	}
	return toDomain(dto)
}
