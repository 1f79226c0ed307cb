package http_test

import (
	"context"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/application/views"
	"supplychain/internal/core/domain/model/network"
	"supplychain/internal/pkg/pagination"

	"github.com/stretchr/testify/mock"
)

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (views.Order, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.Order), args.Error(1)
}

type MockTransitionApplier struct{ mock.Mock }

func (m *MockTransitionApplier) Handle(ctx context.Context, cmd commands.ApplyTransitionCommand) (views.Order, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.Order), args.Error(1)
}

type MockOrderDeleter struct{ mock.Mock }

func (m *MockOrderDeleter) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockStockRegistrar struct{ mock.Mock }

func (m *MockStockRegistrar) Handle(ctx context.Context, cmd commands.RegisterStockCommand) (views.Stock, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.Stock), args.Error(1)
}

type MockPartnerRegistrar struct{ mock.Mock }

func (m *MockPartnerRegistrar) Handle(ctx context.Context, cmd commands.RegisterPartnerCommand) (*network.Partner, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*network.Partner), args.Error(1)
}

type MockPartnerDeactivator struct{ mock.Mock }

func (m *MockPartnerDeactivator) Handle(ctx context.Context, cmd commands.DeactivatePartnerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) Handle(ctx context.Context, query queries.ListOrdersQuery) (pagination.Page[views.Order], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(pagination.Page[views.Order]), args.Error(1)
}

type MockOrderGetter struct{ mock.Mock }

func (m *MockOrderGetter) Handle(ctx context.Context, query queries.GetOrderQuery) (views.Order, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(views.Order), args.Error(1)
}

type MockStockLister struct{ mock.Mock }

func (m *MockStockLister) Handle(ctx context.Context, query queries.ListStockQuery) (pagination.Page[views.Stock], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(pagination.Page[views.Stock]), args.Error(1)
}
