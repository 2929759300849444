package customer

import (
	"context"

	"github.com/distromate/backoffice-service/internal/customer/dto"
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/shopspring/decimal"
)

type UseCase interface {
	CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error)
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	// ReturnDebt records a repayment that is not tied to a specific order:
	// the customer pays down their outstanding udhar directly.
	ReturnDebt(ctx context.Context, customerID string, amount decimal.Decimal) (*model.Customer, error)
}
