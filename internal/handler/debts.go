package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omgcarlo/RetailSavvy/internal/dto"
	"github.com/omgcarlo/RetailSavvy/internal/service"
)

type DebtsHandler struct{ svc service.DebtService }

func NewDebtsHandler(svc service.DebtService) *DebtsHandler {
	return &DebtsHandler{svc: svc}
}

func (h *DebtsHandler) List(c *gin.Context) {
	debts, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, debts)
}

func (h *DebtsHandler) Create(c *gin.Context) {
	var req dto.CreateDebtRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *DebtsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateDebtRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
