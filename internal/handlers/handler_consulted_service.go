package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hndang/clinic_mgmt_app/internal/core/ports/services"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
	"github.com/hndang/clinic_mgmt_app/internal/middleware"
)

type consultedServiceHandler struct {
	consultedSvc services.ConsultedServiceSvcFacade
}

func newConsultedServiceHandler(svc services.ConsultedServiceSvcFacade) *consultedServiceHandler {
	return &consultedServiceHandler{consultedSvc: svc}
}

func registerConsultedServiceRoutes(rg *gin.RouterGroup, svc services.ConsultedServiceSvcFacade) {
	h := newConsultedServiceHandler(svc)
	consulted := rg.Group("/consulted-services")
	{
		consulted.POST("", h.createConsultedService)
		consulted.GET("/:id", h.getConsultedService)
		consulted.PATCH("/:id", h.updateConsultedService)
	}
}

// createConsultedService godoc
// @Summary      Record a consulted service
// @Description  Records a catalog service sold to a customer, priced from the catalog entry at sale time. The amount paid starts at zero.
// @Tags         consulted-services
// @Accept       json
// @Produce      json
// @Param        consultedService  body      dto.CreateConsultedServiceRequest  true  "Sale data"
// @Success      201               {object}  dto.ConsultedServiceResponse
// @Failure      400               {object}  map[string]string
// @Failure      404               {object}  map[string]string
// @Router       /consulted-services [post]
// @Security     BearerAuth
func (h *consultedServiceHandler) createConsultedService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateConsultedServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	consulted, err := h.consultedSvc.CreateConsultedService(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToConsultedServiceResponse(consulted))
}

// getConsultedService godoc
// @Summary      Get a consulted service
// @Description  Returns one consulted service with its derived outstanding debt
// @Tags         consulted-services
// @Produce      json
// @Param        id   path      string  true  "Consulted service ID"
// @Success      200  {object}  dto.ConsultedServiceResponse
// @Failure      404  {object}  map[string]string
// @Router       /consulted-services/{id} [get]
// @Security     BearerAuth
func (h *consultedServiceHandler) getConsultedService(c *gin.Context) {
	consulted, err := h.consultedSvc.GetConsultedServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConsultedServiceResponse(consulted))
}

// updateConsultedService godoc
// @Summary      Update a consulted service
// @Description  Patches descriptive fields only; balances move exclusively through payments
// @Tags         consulted-services
// @Accept       json
// @Produce      json
// @Param        id                path      string                             true  "Consulted service ID"
// @Param        consultedService  body      dto.UpdateConsultedServiceRequest  true  "Fields to update"
// @Success      200               {object}  dto.ConsultedServiceResponse
// @Failure      400               {object}  map[string]string
// @Failure      404               {object}  map[string]string
// @Router       /consulted-services/{id} [patch]
// @Security     BearerAuth
func (h *consultedServiceHandler) updateConsultedService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateConsultedServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	consulted, err := h.consultedSvc.UpdateConsultedService(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConsultedServiceResponse(consulted))
}
