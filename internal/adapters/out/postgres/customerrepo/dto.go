// Package customerrepo persists customers keyed by their normalized phone number.
package customerrepo

import (
	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	Phone string `gorm:"type:varchar(13);primaryKey"`
	Name  string `gorm:"not null"`
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		Phone: c.Phone().String(),
		Name:  c.Name(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(phone, dto.Name)
}
