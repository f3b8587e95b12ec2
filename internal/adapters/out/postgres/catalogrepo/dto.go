// Package catalogrepo persists the category-partitioned product catalog.
// Every category maps to its own physical table named by the canonical
// category name; partitions are created lazily on first insert and
// discovered by a structural scan of the schema.
package catalogrepo

import (
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents one product row inside a category partition. The
// partition itself carries the category, so no category column is stored;
// the table name is bound per query.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	LocalName     string    `gorm:"type:varchar(255);not null"`
	Price         int64     `gorm:"not null"`
	OriginalPrice *int64    `gorm:""`
	ImageRef      string    `gorm:"type:varchar(512);not null"`
	VideoRef      *string   `gorm:"type:varchar(512)"`
}

// fromDomain converts a product to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID(),
		Name:          p.Name(),
		LocalName:     p.LocalName(),
		Price:         p.Price(),
		OriginalPrice: p.OriginalPrice(),
		ImageRef:      p.ImageRef(),
		VideoRef:      p.VideoRef(),
	}
}

// toDomain converts a database DTO to a product. The category comes from
// the partition the row was read from.
func toDomain(dto ProductDTO, categoryName string) (*product.Product, error) {
	return product.RestoreProduct(
		dto.ID,
		dto.Name,
		dto.LocalName,
		dto.Price,
		dto.OriginalPrice,
		dto.ImageRef,
		dto.VideoRef,
		categoryName,
	)
}
