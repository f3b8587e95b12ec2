package catalogrepo

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements CatalogRepository over per-category
// partition tables.
//
// Product identifiers are not globally indexed, so ID-only lookups scan the
// discovered partitions in order. The catalog deliberately runs outside the
// unit of work: lazy partition creation issues DDL, which cannot live
// inside a business transaction.
type GormCatalogRepository struct {
	db       *gorm.DB
	registry *partitionRegistry
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:       db,
		registry: newPartitionRegistry(db),
	}
}

// Insert adds a product to the partition of its category, creating the
// partition if needed.
func (r *GormCatalogRepository) Insert(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if err := r.registry.ensure(ctx, p.Category()); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Table(p.Category()).Create(&dto).Error
}

// Get locates a product by identifier, either in one partition or by
// scanning all of them.
func (r *GormCatalogRepository) Get(ctx context.Context, id uuid.UUID, categoryName string) (*product.Product, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("productId")
	}

	partitions, err := r.searchSpace(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	for _, partition := range partitions {
		var dto ProductDTO
		err = r.db.WithContext(ctx).Table(partition).First(&dto, "id = ?", id).Error
		if err == nil {
			return toDomain(dto, partition)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return nil, errs.NewObjectNotFoundError("product", id.String())
}

// Update persists changes to a product. A category change moves the record:
// the insert into the target partition and the delete from the source share
// one transaction, and the stable identifier makes a retried move converge
// instead of duplicating the row.
func (r *GormCatalogRepository) Update(ctx context.Context, p *product.Product, fromCategory string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)

	if fromCategory == p.Category() {
		result := r.db.WithContext(ctx).Table(p.Category()).
			Where("id = ?", dto.ID).
			Select("*").Omit("id").Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("product", p.ID().String())
		}
		return nil
	}

	if err := r.registry.ensure(ctx, p.Category()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Table(p.Category()).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&dto).Error
		if err != nil {
			return err
		}

		return tx.Table(fromCategory).Delete(&ProductDTO{}, "id = ?", dto.ID).Error
	})
}

// Delete scans partitions for the product and removes it.
func (r *GormCatalogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("productId")
	}

	partitions, err := r.registry.list(ctx)
	if err != nil {
		return err
	}

	for _, partition := range partitions {
		result := r.db.WithContext(ctx).Table(partition).Delete(&ProductDTO{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}
	}

	return errs.NewObjectNotFoundError("product", id.String())
}

// ListByCategory retrieves every product in one category's partition. A
// missing partition yields an empty slice: the partition appears on first
// insert, so absence means no products yet.
func (r *GormCatalogRepository) ListByCategory(ctx context.Context, categoryName string) ([]*product.Product, error) {
	exists, err := r.registry.exists(ctx, categoryName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []*product.Product{}, nil
	}

	var dtos []ProductDTO
	err = r.db.WithContext(ctx).Table(categoryName).Order("name").Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos, categoryName)
}

// ListAll fans out across every discovered partition.
func (r *GormCatalogRepository) ListAll(ctx context.Context) ([]*product.Product, error) {
	partitions, err := r.registry.list(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0)
	for _, partition := range partitions {
		var dtos []ProductDTO
		err = r.db.WithContext(ctx).Table(partition).Order("name").Find(&dtos).Error
		if err != nil {
			return nil, err
		}
		converted, convErr := toDomainSlice(dtos, partition)
		if convErr != nil {
			return nil, convErr
		}
		products = append(products, converted...)
	}

	return products, nil
}

// ListFeatured retrieves up to limitPerCategory products from each of the
// given categories, skipping categories whose partition does not exist.
func (r *GormCatalogRepository) ListFeatured(
	ctx context.Context,
	categories []string,
	limitPerCategory int,
) ([]*product.Product, error) {
	if limitPerCategory <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limitPerCategory", limitPerCategory, 1, 100)
	}

	products := make([]*product.Product, 0)
	for _, categoryName := range categories {
		exists, err := r.registry.exists(ctx, categoryName)
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}

		var dtos []ProductDTO
		err = r.db.WithContext(ctx).Table(categoryName).
			Order("name").Limit(limitPerCategory).Find(&dtos).Error
		if err != nil {
			return nil, err
		}
		converted, convErr := toDomainSlice(dtos, categoryName)
		if convErr != nil {
			return nil, convErr
		}
		products = append(products, converted...)
	}

	return products, nil
}

// ApplyDiscount recomputes the price of every product carrying an original
// price, partition by partition. Each partition is repriced in its own
// transaction so one broken partition cannot abort the rest; failures are
// joined into the returned error.
func (r *GormCatalogRepository) ApplyDiscount(ctx context.Context, percent float64) (int64, error) {
	if percent < 0 || percent > 100 {
		return 0, errs.NewValueIsOutOfRangeError("discount", percent, 0, 100)
	}

	partitions, err := r.registry.list(ctx)
	if err != nil {
		return 0, err
	}

	var updated int64
	var failures []error
	for _, partition := range partitions {
		count, partErr := r.discountPartition(ctx, partition, percent)
		if partErr != nil {
			failures = append(failures, fmt.Errorf("partition %s: %w", partition, partErr))
			continue
		}
		updated += count
	}

	return updated, errors.Join(failures...)
}

func (r *GormCatalogRepository) discountPartition(ctx context.Context, partition string, percent float64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dtos []ProductDTO
		err := tx.Table(partition).Where("original_price IS NOT NULL").Find(&dtos).Error
		if err != nil {
			return err
		}

		for _, dto := range dtos {
			price := product.DiscountedPrice(*dto.OriginalPrice, percent)
			if price == dto.Price {
				continue
			}
			err = tx.Table(partition).Where("id = ?", dto.ID).Update("price", price).Error
			if err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListPartitions returns the identifiers of all physical partitions.
func (r *GormCatalogRepository) ListPartitions(ctx context.Context) ([]string, error) {
	return r.registry.list(ctx)
}

func (r *GormCatalogRepository) searchSpace(ctx context.Context, categoryName string) ([]string, error) {
	if categoryName == "" {
		return r.registry.list(ctx)
	}

	exists, err := r.registry.exists(ctx, categoryName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	return []string{categoryName}, nil
}

func toDomainSlice(dtos []ProductDTO, categoryName string) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto, categoryName)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
