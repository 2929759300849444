package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/auth"
	"github.com/distromate/backoffice-service/internal/customer"
	"github.com/distromate/backoffice-service/internal/customer/dto"
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/distromate/backoffice-service/internal/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type customerUseCase struct {
	repo         customer.Repository
	transactions transaction.Repository
	logger       *zap.Logger
}

func NewCustomerUseCase(repo customer.Repository, transactions transaction.Repository, log *zap.Logger) customer.UseCase {
	return &customerUseCase{
		repo:         repo,
		transactions: transactions,
		logger:       log,
	}
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	existing, err := uc.repo.FindByContact(ctx, input.Contact)
	if err != nil {
		return nil, apperr.Internal("failed to check contact: %v", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("account already exists for this contact")
	}

	now := time.Now()
	c := &model.Customer{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:      input.Name,
		Address:   input.Address,
		Contact:   input.Contact,
		Orders:    model.StringList{},
		Udhar:     decimal.Zero,
		CreatedBy: auth.ActorID(ctx),
	}
	if input.BusinessName != "" {
		b := input.BusinessName
		c.BusinessName = &b
	}
	if input.Route != "" {
		r := input.Route
		c.Route = &r
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, apperr.Internal("failed to create customer: %v", err)
	}
	return c, nil
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperr.Internal("failed to load customer: %v", err)
	}
	if c == nil {
		return nil, apperr.NotFound("customer with this id not found")
	}

	if input.Contact != "" && input.Contact != c.Contact {
		other, err := uc.repo.FindByContact(ctx, input.Contact)
		if err != nil {
			return nil, apperr.Internal("failed to check contact: %v", err)
		}
		if other != nil {
			return nil, apperr.Conflict("account already exists for this contact")
		}
		c.Contact = input.Contact
	}
	if input.Name != "" {
		c.Name = input.Name
	}
	if input.Address != "" {
		c.Address = input.Address
	}
	if input.BusinessName != "" {
		b := input.BusinessName
		c.BusinessName = &b
	}
	if input.Route != "" {
		r := input.Route
		c.Route = &r
	}
	c.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, apperr.Internal("failed to update customer: %v", err)
	}
	return c, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load customer: %v", err)
	}
	if c == nil {
		return nil, apperr.NotFound("customer not found")
	}
	return c, nil
}

func (uc *customerUseCase) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	items, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list customers: %v", err)
	}
	return items, nil
}

func (uc *customerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("failed to load customer: %v", err)
	}
	if c == nil {
		return apperr.NotFound("customer not found with this id")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete customer: %v", err)
	}
	return nil
}

func (uc *customerUseCase) ReturnDebt(ctx context.Context, customerID string, amount decimal.Decimal) (*model.Customer, error) {
	if amount.IsNegative() {
		return nil, apperr.Validation("amount must be a non-negative number")
	}

	c, err := uc.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, apperr.Internal("failed to load customer: %v", err)
	}
	if c == nil {
		return nil, apperr.NotFound("customer not found")
	}
	if amount.GreaterThan(c.Udhar) {
		return nil, apperr.Validation("cannot pay more than the outstanding udhar amount")
	}

	now := time.Now()
	t := &model.Transaction{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Type:        model.TransactionSale,
		Amount:      amount,
		Description: fmt.Sprintf("%s (%s) paid %s against udhar of %s", c.Name, c.Address, amount, c.Udhar),
		CreatedBy:   auth.ActorID(ctx),
	}
	if err := uc.transactions.Create(ctx, t); err != nil {
		return nil, apperr.Internal("failed to record repayment transaction: %v", err)
	}

	c.Udhar = c.Udhar.Sub(amount)
	if c.Udhar.IsNegative() {
		c.Udhar = decimal.Zero
	}
	c.UpdatedAt = now
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, apperr.Internal("failed to update udhar: %v", err)
	}

	uc.logger.Info("udhar repaid",
		zap.String("customer_id", c.ID),
		zap.String("amount", amount.String()),
		zap.String("udhar", c.Udhar.String()),
	)
	return c, nil
}
