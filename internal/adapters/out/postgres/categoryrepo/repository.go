package categoryrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/category"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCategoryRepository implements CategoryRepository using GORM. Requires
// gorm.Config{TranslateError: true} so a primary key collision surfaces as
// gorm.ErrDuplicatedKey.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Add persists a new descriptor.
func (r *GormCategoryRepository) Add(ctx context.Context, descriptor *category.Descriptor) error {
	if err := descriptor.Validate(); err != nil {
		return err
	}

	dto := fromDomain(descriptor)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("category", descriptor.Name(), err)
		}
		return err
	}

	return nil
}

// Get retrieves a descriptor by canonical name.
func (r *GormCategoryRepository) Get(ctx context.Context, name string) (*category.Descriptor, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists changes to an existing descriptor.
func (r *GormCategoryRepository) Update(ctx context.Context, descriptor *category.Descriptor) error {
	if err := descriptor.Validate(); err != nil {
		return err
	}

	dto := fromDomain(descriptor)
	result := r.db.WithContext(ctx).Model(&CategoryDTO{}).
		Where("name = ?", dto.Name).
		Select("display_name", "description", "active", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", descriptor.Name())
	}

	return nil
}

// List retrieves descriptors ordered by canonical name.
func (r *GormCategoryRepository) List(ctx context.Context, activeOnly bool) ([]*category.Descriptor, error) {
	query := r.db.WithContext(ctx).Order("name")
	if activeOnly {
		query = query.Where("active")
	}

	var dtos []CategoryDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	descriptors := make([]*category.Descriptor, 0, len(dtos))
	for _, dto := range dtos {
		descriptor, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, descriptor)
	}

	return descriptors, nil
}
