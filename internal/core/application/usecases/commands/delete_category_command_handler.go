package commands

import (
	"context"
	"time"
)

// DeleteCategoryCommandHandler deactivates category directory entries.
// Products in the category stay queryable by direct category listing; only
// the directory stops advertising the category.
type DeleteCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

// NewDeleteCategoryCommandHandler creates a handler for category deletion.
func NewDeleteCategoryCommandHandler(uowFactory CategoryUoWFactory) DeleteCategoryCommandHandler {
	return DeleteCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the category deletion command.
func (h *DeleteCategoryCommandHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	categoryRepo := uow.CategoryRepository()
	descriptor, err := categoryRepo.Get(ctx, cmd.Name())
	if err != nil {
		return err
	}

	descriptor.Deactivate(time.Now())

	if err = categoryRepo.Update(ctx, descriptor); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
