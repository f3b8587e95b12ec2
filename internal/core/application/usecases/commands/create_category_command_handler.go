package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/category"
)

// CreateCategoryCommandHandler registers categories in the directory. The
// canonical name is derived from the display name, so two display names
// that normalize identically collide and the second registration fails.
type CreateCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory CategoryUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the category creation command and returns the derived
// canonical name.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	descriptor, err := category.NewDescriptor(cmd.DisplayName(), cmd.Description(), time.Now())
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CategoryRepository().Add(ctx, descriptor); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return descriptor.Name(), nil
}
