package mocks

import (
	"context"

	"formdemo/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockFormService struct {
	mock.Mock
}

func (m *MockFormService) Froyo(ctx context.Context, flavor string, toppings []string) *model.FroyoOrder {
	args := m.Called(ctx, flavor, toppings)
	return args.Get(0).(*model.FroyoOrder)
}

func (m *MockFormService) Favorites(ctx context.Context, color, animal, city string) *model.Favorites {
	args := m.Called(ctx, color, animal, city)
	return args.Get(0).(*model.Favorites)
}

func (m *MockFormService) SortMessage(ctx context.Context, message string) (*model.SecretMessage, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SecretMessage), args.Error(1)
}

func (m *MockFormService) Calculate(ctx context.Context, operand1, operand2, operation string) (*model.Calculation, error) {
	args := m.Called(ctx, operand1, operand2, operation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Calculation), args.Error(1)
}

func (m *MockFormService) Horoscope(ctx context.Context, name, sign string) *model.Horoscope {
	args := m.Called(ctx, name, sign)
	return args.Get(0).(*model.Horoscope)
}

func (m *MockFormService) Signs(ctx context.Context) []model.SignInfo {
	args := m.Called(ctx)
	return args.Get(0).([]model.SignInfo)
}
