package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hndang/clinic_mgmt_app/internal/core/ports/services"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
	"github.com/hndang/clinic_mgmt_app/internal/middleware"
)

type customerHandler struct {
	customerSvc         services.CustomerSvcFacade
	consultedServiceSvc services.ConsultedServiceSvcFacade
	paymentSvc          services.PaymentSvcFacade
	treatmentPlanSvc    services.TreatmentPlanSvcFacade
	followUpSvc         services.FollowUpSvcFacade
	sessionSvc          services.SessionSvcFacade
}

func newCustomerHandler(sc *services.ServiceContainer) *customerHandler {
	return &customerHandler{
		customerSvc:         sc.Customer,
		consultedServiceSvc: sc.ConsultedService,
		paymentSvc:          sc.Payment,
		treatmentPlanSvc:    sc.TreatmentPlan,
		followUpSvc:         sc.FollowUp,
		sessionSvc:          sc.Session,
	}
}

func registerCustomerRoutes(rg *gin.RouterGroup, sc *services.ServiceContainer) {
	h := newCustomerHandler(sc)
	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:id", h.getCustomer)
		customers.PUT("/:id", h.updateCustomer)
		customers.DELETE("/:id", h.deleteCustomer)

		customers.GET("/:id/consulted-services", h.listConsultedServices)
		customers.GET("/:id/payments", h.listPayments)
		customers.GET("/:id/treatment-plans", h.listTreatmentPlans)
		customers.GET("/:id/follow-up-calls", h.listFollowUpCalls)
		customers.GET("/:id/sessions", h.listSessions)
	}
}

// createCustomer godoc
// @Summary      Create a customer
// @Description  Creates a customer; its customer code is minted atomically with the row
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer  body      dto.CreateCustomerRequest  true  "Customer data"
// @Success      201       {object}  dto.CustomerResponse
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Router       /customers [post]
// @Security     BearerAuth
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	customer, err := h.customerSvc.CreateCustomer(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary      List customers
// @Description  Returns a cursor-paginated customer list, optionally filtered by clinic
// @Tags         customers
// @Produce      json
// @Param        clinicID   query     string  false  "Clinic filter"
// @Param        limit      query     int     false  "Page size (max 100)"
// @Param        nextToken  query     string  false  "Cursor from the previous page"
// @Success      200        {object}  dto.ListCustomersResponse
// @Failure      400        {object}  map[string]string
// @Router       /customers [get]
// @Security     BearerAuth
func (h *customerHandler) listCustomers(c *gin.Context) {
	var params dto.ListCustomersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.customerSvc.ListCustomers(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// getCustomer godoc
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  map[string]string
// @Router       /customers/{id} [get]
// @Security     BearerAuth
func (h *customerHandler) getCustomer(c *gin.Context) {
	customer, err := h.customerSvc.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// updateCustomer godoc
// @Summary      Update a customer
// @Description  Patches the provided fields; the customer code is immutable
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id        path      string                     true  "Customer ID"
// @Param        customer  body      dto.UpdateCustomerRequest  true  "Fields to update"
// @Success      200       {object}  dto.CustomerResponse
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /customers/{id} [put]
// @Security     BearerAuth
func (h *customerHandler) updateCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	customer, err := h.customerSvc.UpdateCustomer(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// deleteCustomer godoc
// @Summary      Delete a customer
// @Tags         customers
// @Param        id  path  string  true  "Customer ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /customers/{id} [delete]
// @Security     BearerAuth
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	if err := h.customerSvc.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// listConsultedServices godoc
// @Summary      List a customer's consulted services
// @Description  Returns the customer's consulted services with outstanding debts
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {array}   dto.ConsultedServiceResponse
// @Failure      404  {object}  map[string]string
// @Router       /customers/{id}/consulted-services [get]
// @Security     BearerAuth
func (h *customerHandler) listConsultedServices(c *gin.Context) {
	items, err := h.consultedServiceSvc.ListConsultedServicesByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListConsultedServiceResponse(items))
}

// listPayments godoc
// @Summary      List a customer's payments
// @Tags         customers
// @Produce      json
// @Param        id         path      string  true   "Customer ID"
// @Param        limit      query     int     false  "Page size (max 100)"
// @Param        nextToken  query     string  false  "Cursor from the previous page"
// @Success      200        {object}  dto.ListPaymentsResponse
// @Failure      400        {object}  map[string]string
// @Router       /customers/{id}/payments [get]
// @Security     BearerAuth
func (h *customerHandler) listPayments(c *gin.Context) {
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.paymentSvc.ListPaymentsByCustomer(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// listTreatmentPlans godoc
// @Summary      List a customer's treatment plans
// @Tags         customers
// @Produce      json
// @Param        id   path     string  true  "Customer ID"
// @Success      200  {array}  dto.TreatmentPlanResponse
// @Router       /customers/{id}/treatment-plans [get]
// @Security     BearerAuth
func (h *customerHandler) listTreatmentPlans(c *gin.Context) {
	plans, err := h.treatmentPlanSvc.ListTreatmentPlansByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListTreatmentPlanResponse(plans))
}

// listFollowUpCalls godoc
// @Summary      List a customer's follow-up calls
// @Tags         customers
// @Produce      json
// @Param        id   path     string  true  "Customer ID"
// @Success      200  {array}  dto.FollowUpCallResponse
// @Router       /customers/{id}/follow-up-calls [get]
// @Security     BearerAuth
func (h *customerHandler) listFollowUpCalls(c *gin.Context) {
	calls, err := h.followUpSvc.ListFollowUpCallsByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListFollowUpCallResponse(calls))
}

// listSessions godoc
// @Summary      List a customer's treatment sessions
// @Tags         customers
// @Produce      json
// @Param        id   path     string  true  "Customer ID"
// @Success      200  {array}  dto.TreatmentSessionResponse
// @Router       /customers/{id}/sessions [get]
// @Security     BearerAuth
func (h *customerHandler) listSessions(c *gin.Context) {
	sessions, err := h.sessionSvc.ListSessionsByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListTreatmentSessionResponse(sessions))
}
