// Package categoryrepo persists the category directory: the authoritative
// list of categories shown to users, decoupled from the physical catalog
// partitions.
package categoryrepo

import (
	"time"

	"storefront/internal/core/domain/model/category"
)

// CategoryDTO represents one category directory row. The canonical name is
// the primary key, which gives the uniqueness guarantee the domain relies
// on.
type CategoryDTO struct {
	Name        string    `gorm:"type:varchar(255);primaryKey"`
	DisplayName string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "categories".
func (CategoryDTO) TableName() string {
	return "categories"
}

// fromDomain converts a category descriptor to its database representation.
func fromDomain(descriptor *category.Descriptor) CategoryDTO {
	return CategoryDTO{
		Name:        descriptor.Name(),
		DisplayName: descriptor.DisplayName(),
		Description: descriptor.Description(),
		Active:      descriptor.IsActive(),
		CreatedAt:   descriptor.CreatedAt(),
		UpdatedAt:   descriptor.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a category descriptor.
func toDomain(dto CategoryDTO) (*category.Descriptor, error) {
	return category.RestoreDescriptor(
		dto.Name,
		dto.DisplayName,
		dto.Description,
		dto.Active,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
