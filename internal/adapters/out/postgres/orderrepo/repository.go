package orderrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Status mutations are single conditional UPDATE statements. The WHERE
// clause carries the allowed predecessor statuses, so a concurrent change
// that invalidates the transition makes the update match zero rows instead
// of silently overwriting.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order by ID with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every order, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Order("created_at DESC, id DESC").Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByMobile retrieves all orders placed with the given mobile number,
// newest first.
func (r *GormOrderRepository) GetByMobile(ctx context.Context, mobile string) ([]*order.Order, error) {
	if mobile == "" {
		return nil, errs.NewValueIsRequiredError("mobile")
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("customer_mobile = ?", mobile).
		Order("created_at DESC, id DESC").Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// UpdateStatus conditionally sets the status. The update matches only rows
// whose stored status is in allowedFrom; when nothing matches, the stored
// status is read back to distinguish a missing order from a forbidden
// transition. A rejection names the stored status and its allowed targets,
// the same shape the domain transition table reports.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.OrderID,
	target order.Status,
	allowedFrom []order.Status,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status IN ?", id.String(), order.StatusStrings(allowedFrom)).
		Update("status", target.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var current string
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("status").Where("id = ?", id.String()).Scan(&current).Error
	if err != nil {
		return err
	}
	if current == "" {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	currentStatus, err := order.StatusFromString(current)
	if err != nil {
		return err
	}
	return errs.NewInvalidTransitionError(current, order.StatusStrings(currentStatus.AllowedTargets()))
}

// UpdatePaymentProof stores the screenshot metadata and the status it
// implies. The write is unconditional on the stored status because the
// verification outcome overrides the transition table.
func (r *GormOrderRepository) UpdatePaymentProof(
	ctx context.Context,
	id kernel.OrderID,
	proof order.PaymentProof,
	status order.Status,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	payment := paymentFromDomain(&proof)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.String()).
		Updates(map[string]any{
			"status":              status.String(),
			"payment_image_ref":   payment.ImageRef,
			"payment_uploaded_at": payment.UploadedAt,
			"payment_verified":    payment.Verified,
			"payment_verified_by": payment.VerifiedBy,
			"payment_verified_at": payment.VerifiedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// UpdateTransport stores the carrier assignment and forces the order into
// booked status.
func (r *GormOrderRepository) UpdateTransport(
	ctx context.Context,
	id kernel.OrderID,
	transport order.Transport,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if transport.Carrier == "" {
		return errs.NewValueIsRequiredError("transportName")
	}
	if transport.LRNumber == "" {
		return errs.NewValueIsRequiredError("lrNumber")
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.String()).
		Updates(map[string]any{
			"status":         order.Booked.String(),
			"transport_name": transport.Carrier,
			"lr_number":      transport.LRNumber,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// Delete permanently removes an order; the line items cascade.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
