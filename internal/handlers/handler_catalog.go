package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hndang/clinic_mgmt_app/internal/core/ports/services"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
	"github.com/hndang/clinic_mgmt_app/internal/middleware"
)

type dentalServiceHandler struct {
	catalogSvc services.DentalServiceSvcFacade
}

func newDentalServiceHandler(svc services.DentalServiceSvcFacade) *dentalServiceHandler {
	return &dentalServiceHandler{catalogSvc: svc}
}

func registerDentalServiceRoutes(rg *gin.RouterGroup, svc services.DentalServiceSvcFacade) {
	h := newDentalServiceHandler(svc)
	catalog := rg.Group("/dental-services")
	{
		catalog.POST("", h.createDentalService)
		catalog.GET("", h.listDentalServices)
		catalog.GET("/:id", h.getDentalService)
		catalog.PUT("/:id", h.updateDentalService)
	}
}

// createDentalService godoc
// @Summary      Create a catalog entry
// @Tags         dental-services
// @Accept       json
// @Produce      json
// @Param        service  body      dto.CreateDentalServiceRequest  true  "Catalog entry"
// @Success      201      {object}  dto.DentalServiceResponse
// @Failure      400      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /dental-services [post]
// @Security     BearerAuth
func (h *dentalServiceHandler) createDentalService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDentalServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	service, err := h.catalogSvc.CreateDentalService(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDentalServiceResponse(service))
}

// listDentalServices godoc
// @Summary      List catalog entries
// @Tags         dental-services
// @Produce      json
// @Param        activeOnly  query    bool  false  "Return active entries only"
// @Success      200         {array}  dto.DentalServiceResponse
// @Router       /dental-services [get]
// @Security     BearerAuth
func (h *dentalServiceHandler) listDentalServices(c *gin.Context) {
	activeOnly := c.Query("activeOnly") == "true"

	services, err := h.catalogSvc.ListDentalServices(c.Request.Context(), activeOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListDentalServiceResponse(services))
}

// getDentalService godoc
// @Summary      Get a catalog entry
// @Tags         dental-services
// @Produce      json
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  dto.DentalServiceResponse
// @Failure      404  {object}  map[string]string
// @Router       /dental-services/{id} [get]
// @Security     BearerAuth
func (h *dentalServiceHandler) getDentalService(c *gin.Context) {
	service, err := h.catalogSvc.GetDentalServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDentalServiceResponse(service))
}

// updateDentalService godoc
// @Summary      Update a catalog entry
// @Description  Patches the provided fields; deactivating an entry hides it from new sales without touching past ones
// @Tags         dental-services
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Service ID"
// @Param        service  body      dto.UpdateDentalServiceRequest  true  "Fields to update"
// @Success      200      {object}  dto.DentalServiceResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /dental-services/{id} [put]
// @Security     BearerAuth
func (h *dentalServiceHandler) updateDentalService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateDentalServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	service, err := h.catalogSvc.UpdateDentalService(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDentalServiceResponse(service))
}
