package commands

import (
	"context"
	"time"
)

// UpdateCategoryCommandHandler changes category display metadata.
type UpdateCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

// NewUpdateCategoryCommandHandler creates a handler for category updates.
func NewUpdateCategoryCommandHandler(uowFactory CategoryUoWFactory) UpdateCategoryCommandHandler {
	return UpdateCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the category update command.
func (h *UpdateCategoryCommandHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) error {
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

	if err = descriptor.Rename(cmd.DisplayName(), cmd.Description(), time.Now()); err != nil {
		return err
	}

	if err = categoryRepo.Update(ctx, descriptor); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
