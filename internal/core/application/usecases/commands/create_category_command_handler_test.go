package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/category"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(ctx context.Context, descriptor *category.Descriptor) error {
	args := m.Called(ctx, descriptor)
	return args.Error(0)
}
func (m *MockCategoryRepository) Get(ctx context.Context, name string) (*category.Descriptor, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Descriptor), args.Error(1)
}
func (m *MockCategoryRepository) Update(ctx context.Context, descriptor *category.Descriptor) error {
	args := m.Called(ctx, descriptor)
	return args.Error(0)
}
func (m *MockCategoryRepository) List(_ context.Context, _ bool) ([]*category.Descriptor, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCategoryUoW struct{ mock.Mock }

func (m *MockCategoryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCategoryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCategoryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCategoryUoW) CategoryRepository() ports.CategoryRepository {
	args := m.Called()
	return args.Get(0).(ports.CategoryRepository)
}

type MockCategoryUoWFactory struct{ mock.Mock }

func (m *MockCategoryUoWFactory) Create() commands.CategoryUoW {
	args := m.Called()
	return args.Get(0).(commands.CategoryUoW)
}

func TestCreateCategoryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCategoryCommand("Dry Fruits", "Nuts and dried fruit")
	require.NoError(t, err)

	repo := new(MockCategoryRepository)
	uow := new(MockCategoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CategoryRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*category.Descriptor")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCategoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCategoryCommandHandler(factory)
	name, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "DRY_FRUITS", name)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCategoryCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCategoryCommand("Spices", "")
	require.NoError(t, err)

	repo := new(MockCategoryRepository)
	uow := new(MockCategoryUoW)
	duplicate := errs.NewObjectAlreadyExistsError("category", "SPICES")
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CategoryRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*category.Descriptor")).Return(duplicate).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCategoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCategoryCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCategoryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateCategoryCommand("SPICES", "Whole Spices", "Whole and ground spices")
	require.NoError(t, err)

	descriptor, err := category.NewDescriptor("Spices", "", time.Now())
	require.NoError(t, err)

	repo := new(MockCategoryRepository)
	uow := new(MockCategoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CategoryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, "SPICES").Return(descriptor, nil).Once(),
		repo.On("Update", mock.Anything, descriptor).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCategoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCategoryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Whole Spices", descriptor.DisplayName())
	assert.Equal(t, "SPICES", descriptor.Name())
	repo.AssertExpectations(t)
}

func TestDeleteCategoryCommandHandler_Handle_Deactivates(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteCategoryCommand("SPICES")
	require.NoError(t, err)

	descriptor, err := category.NewDescriptor("Spices", "", time.Now())
	require.NoError(t, err)
	require.True(t, descriptor.IsActive())

	repo := new(MockCategoryRepository)
	uow := new(MockCategoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CategoryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, "SPICES").Return(descriptor, nil).Once(),
		repo.On("Update", mock.Anything, descriptor).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCategoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteCategoryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, descriptor.IsActive())
	repo.AssertExpectations(t)
}

func TestNewDeleteCategoryCommand_RejectsNonCanonicalName(t *testing.T) {
	_, err := commands.NewDeleteCategoryCommand("dry fruits")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
