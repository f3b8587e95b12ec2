// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The status is stored as its string token so the rows stay
// readable in ad-hoc queries and the conditional status update can match
// on the tokens directly.
type OrderDTO struct {
	ID        string      `gorm:"type:varchar(16);primaryKey"`
	Status    string      `gorm:"type:varchar(32);not null;index"`
	Total     int64       `gorm:"not null"`
	Customer  CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Payment   PaymentDTO  `gorm:"embedded;embeddedPrefix:payment_"`
	Transport *string     `gorm:"column:transport_name;type:varchar(255)"`
	LRNumber  *string     `gorm:"column:lr_number;type:varchar(64)"`
	CreatedAt time.Time   `gorm:"not null;index"`
	Items     []ItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer details within the order
// table.
type CustomerDTO struct {
	FullName string `gorm:"type:varchar(255);not null"`
	Mobile   string `gorm:"type:varchar(32);not null;index"`
	Email    string `gorm:"type:varchar(255)"`
	Address  string `gorm:"type:text;not null"`
	Pincode  string `gorm:"type:varchar(16);not null"`
}

// PaymentDTO represents the embedded payment screenshot metadata within the
// order table. All fields except Verified are null until a screenshot is
// uploaded.
type PaymentDTO struct {
	ImageRef   *string    `gorm:"type:varchar(512)"`
	UploadedAt *time.Time `gorm:""`
	Verified   bool       `gorm:"not null;default:false"`
	VerifiedBy *string    `gorm:"type:varchar(255)"`
	VerifiedAt *time.Time `gorm:""`
}

// ItemDTO represents one order line item row.
type ItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  string    `gorm:"type:varchar(16);not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Price    int64     `gorm:"not null"`
	Quantity int       `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().String()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:       uuid.New(),
			OrderID:  id,
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		})
	}

	customer := aggregate.Customer()
	dto := OrderDTO{
		ID:     id,
		Status: aggregate.Status().String(),
		Total:  aggregate.Total(),
		Customer: CustomerDTO{
			FullName: customer.FullName(),
			Mobile:   customer.Mobile(),
			Email:    customer.Email(),
			Address:  customer.Address(),
			Pincode:  customer.Pincode(),
		},
		Payment:   paymentFromDomain(aggregate.PaymentProof()),
		CreatedAt: aggregate.CreatedAt(),
		Items:     items,
	}

	if transport := aggregate.Transport(); transport != nil {
		dto.Transport = &transport.Carrier
		dto.LRNumber = &transport.LRNumber
	}

	return dto
}

func paymentFromDomain(proof *order.PaymentProof) PaymentDTO {
	if proof == nil {
		return PaymentDTO{}
	}
	return PaymentDTO{
		ImageRef:   &proof.ImageRef,
		UploadedAt: &proof.UploadedAt,
		Verified:   proof.Verified,
		VerifiedBy: &proof.VerifiedBy,
		VerifiedAt: proof.VerifiedAt,
	}
}

// toDomain converts a database DTO to an order aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.ParseOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := order.NewLineItem(itemDto.Name, itemDto.Price, itemDto.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	customer, err := order.NewCustomer(
		dto.Customer.FullName,
		dto.Customer.Mobile,
		dto.Customer.Email,
		dto.Customer.Address,
		dto.Customer.Pincode,
	)
	if err != nil {
		return nil, err
	}

	var proof *order.PaymentProof
	if dto.Payment.ImageRef != nil {
		verifiedBy := ""
		if dto.Payment.VerifiedBy != nil {
			verifiedBy = *dto.Payment.VerifiedBy
		}
		proof = &order.PaymentProof{
			ImageRef:   *dto.Payment.ImageRef,
			UploadedAt: *dto.Payment.UploadedAt,
			Verified:   dto.Payment.Verified,
			VerifiedBy: verifiedBy,
			VerifiedAt: dto.Payment.VerifiedAt,
		}
	}

	var transport *order.Transport
	if dto.Transport != nil && dto.LRNumber != nil {
		transport = &order.Transport{Carrier: *dto.Transport, LRNumber: *dto.LRNumber}
	}

	return order.RestoreOrder(id, items, dto.Total, customer, status, proof, transport, dto.CreatedAt)
}
