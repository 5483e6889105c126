package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hndang/clinic_mgmt_app/internal/core/ports/services"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
	"github.com/hndang/clinic_mgmt_app/internal/middleware"
)

type paymentHandler struct {
	paymentSvc services.PaymentSvcFacade
}

func newPaymentHandler(svc services.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentSvc: svc}
}

func registerPaymentRoutes(rg *gin.RouterGroup, svc services.PaymentSvcFacade) {
	h := newPaymentHandler(svc)
	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("/:id", h.getPayment)
	}
}

// createPayment godoc
// @Summary      Record a payment
// @Description  Atomically mints the payment number, writes the payment with its allocations, and moves each target service's paid balance. The declared amount must equal the sum of the allocations, and no allocation may exceed its target's outstanding debt.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      dto.CreatePaymentRequest  true  "Payment draft"
// @Success      201      {object}  dto.PaymentResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Failure      422      {object}  map[string]string
// @Router       /payments [post]
// @Security     BearerAuth
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payment, err := h.paymentSvc.CreatePayment(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("payment_number", payment.PaymentNumber))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// getPayment godoc
// @Summary      Get a payment
// @Description  Returns a payment with its allocations
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  map[string]string
// @Router       /payments/{id} [get]
// @Security     BearerAuth
func (h *paymentHandler) getPayment(c *gin.Context) {
	payment, err := h.paymentSvc.GetPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
