package handler

import (
	"net/http"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/customer"
	"github.com/distromate/backoffice-service/internal/customer/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	uc     customer.UseCase
	logger *zap.Logger
}

func NewCustomerHandler(uc customer.UseCase, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, logger: log}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var input dto.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	cust, err := h.uc.CreateCustomer(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create customer", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "customer": cust})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var input dto.UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	input.ID = c.Param("id")

	cust, err := h.uc.UpdateCustomer(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to update customer", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customer": cust})
}

func (h *CustomerHandler) Get(c *gin.Context) {
	cust, err := h.uc.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customer": cust})
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.uc.ListCustomers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list customers", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customers": customers})
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to delete customer", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CustomerHandler) ReturnDebt(c *gin.Context) {
	var input struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	cust, err := h.uc.ReturnDebt(c.Request.Context(), c.Param("id"), input.Amount)
	if err != nil {
		h.logger.Error("failed to return debt", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customer": cust})
}
