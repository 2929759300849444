package handler

import (
	"net/http"

	"github.com/distromate/backoffice-service/internal/apperr"
	"github.com/distromate/backoffice-service/internal/target"
	"github.com/distromate/backoffice-service/internal/target/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TargetHandler struct {
	uc     target.UseCase
	logger *zap.Logger
}

func NewTargetHandler(uc target.UseCase, log *zap.Logger) *TargetHandler {
	return &TargetHandler{uc: uc, logger: log}
}

func (h *TargetHandler) Create(c *gin.Context) {
	var input dto.CreateTargetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	input.UserID = c.Param("id")

	t, err := h.uc.CreateTarget(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create target", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "target": t})
}

func (h *TargetHandler) List(c *gin.Context) {
	targets, err := h.uc.ListTargets(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list targets", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "targets": targets})
}

func (h *TargetHandler) ListByUser(c *gin.Context) {
	targets, err := h.uc.ListUserTargets(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("failed to list user targets", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "targets": targets})
}

func (h *TargetHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteTarget(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to delete target", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Recompute refreshes the user's target progress on demand, the same path
// cart mutations trigger implicitly.
func (h *TargetHandler) Recompute(c *gin.Context) {
	if err := h.uc.RecomputeForUser(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to recompute targets", zap.Error(err))
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
