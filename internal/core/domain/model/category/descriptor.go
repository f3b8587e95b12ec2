// Package category contains the CategoryDescriptor entity and the name
// normalization that derives partition identifiers from display names.
//
// The descriptor directory is the authoritative list of categories shown to
// users. It is intentionally decoupled from the physical partitions: a
// partition is created lazily on the first product insert, and deactivating
// a descriptor never deletes the partition or its products.
package category

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
)

var (
	// ErrDescriptorIsNotConstructed is returned when a CategoryDescriptor was
	// not created through NewDescriptor or RestoreDescriptor.
	ErrDescriptorIsNotConstructed = errors.New(
		"CategoryDescriptor must be created via NewDescriptor constructor")
)

// Descriptor is the durable record of one category: its canonical
// (partition-derived) name, human-readable display metadata and an active
// flag. Canonical names are unique across the directory.
type Descriptor struct {
	name        string
	displayName string
	description string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewDescriptor creates an active descriptor, deriving the canonical name
// from the display name via NormalizeName.
func NewDescriptor(displayName, description string, createdAt time.Time) (*Descriptor, error) {
	name, err := NormalizeName(displayName)
	if err != nil {
		return nil, err
	}

	return &Descriptor{
		name:          name,
		displayName:   displayName,
		description:   description,
		active:        true,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreDescriptor reconstructs a descriptor from persistence.
func RestoreDescriptor(
	name, displayName, description string,
	active bool,
	createdAt, updatedAt time.Time,
) (*Descriptor, error) {
	if !IsPartitionName(name) {
		return nil, errs.NewValueIsInvalidError("category name")
	}

	return &Descriptor{
		name:          name,
		displayName:   displayName,
		description:   description,
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the descriptor was properly constructed.
func (d *Descriptor) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDescriptorIsNotConstructed
	}
	return nil
}

// Name returns the canonical category name, which is also the partition
// identifier of the category's product table.
func (d *Descriptor) Name() string { return d.name }

// DisplayName returns the human-readable category name.
func (d *Descriptor) DisplayName() string { return d.displayName }

// Description returns the category description, possibly empty.
func (d *Descriptor) Description() string { return d.description }

// IsActive reports whether the category is shown to users.
func (d *Descriptor) IsActive() bool { return d.active }

// CreatedAt returns the creation timestamp.
func (d *Descriptor) CreatedAt() time.Time { return d.createdAt }

// UpdatedAt returns the last modification timestamp.
func (d *Descriptor) UpdatedAt() time.Time { return d.updatedAt }

// Rename updates the display metadata. The canonical name never changes:
// it anchors the partition, so renaming only affects what users see.
func (d *Descriptor) Rename(displayName, description string, at time.Time) error {
	if displayName == "" {
		return errs.NewValueIsRequiredError("displayName")
	}
	d.displayName = displayName
	d.description = description
	d.updatedAt = at
	return nil
}

// Deactivate soft-deletes the descriptor. The partition and its products
// survive; only the directory listing changes.
func (d *Descriptor) Deactivate(at time.Time) {
	d.active = false
	d.updatedAt = at
}

// Activate re-enables a previously deactivated descriptor.
func (d *Descriptor) Activate(at time.Time) {
	d.active = true
	d.updatedAt = at
}
