package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hndang/clinic_mgmt_app/internal/core/ports/services"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
	"github.com/hndang/clinic_mgmt_app/internal/middleware"
)

type treatmentHandler struct {
	planSvc     services.TreatmentPlanSvcFacade
	followUpSvc services.FollowUpSvcFacade
	sessionSvc  services.SessionSvcFacade
}

func newTreatmentHandler(sc *services.ServiceContainer) *treatmentHandler {
	return &treatmentHandler{
		planSvc:     sc.TreatmentPlan,
		followUpSvc: sc.FollowUp,
		sessionSvc:  sc.Session,
	}
}

func registerTreatmentRoutes(rg *gin.RouterGroup, sc *services.ServiceContainer) {
	h := newTreatmentHandler(sc)

	plans := rg.Group("/treatment-plans")
	{
		plans.POST("", h.createTreatmentPlan)
		plans.GET("/:id", h.getTreatmentPlan)
		plans.PUT("/:id", h.updateTreatmentPlan)
	}

	calls := rg.Group("/follow-up-calls")
	{
		calls.POST("", h.addFollowUpCall)
		calls.GET("", h.listRecentFollowUpCalls)
	}

	rg.POST("/sessions", h.addSessionDetails)
}

// createTreatmentPlan godoc
// @Summary      Create a treatment plan
// @Description  Creates a plan in the PROPOSED state
// @Tags         treatment
// @Accept       json
// @Produce      json
// @Param        plan  body      dto.CreateTreatmentPlanRequest  true  "Plan data"
// @Success      201   {object}  dto.TreatmentPlanResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /treatment-plans [post]
// @Security     BearerAuth
func (h *treatmentHandler) createTreatmentPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTreatmentPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	plan, err := h.planSvc.CreateTreatmentPlan(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTreatmentPlanResponse(plan))
}

// getTreatmentPlan godoc
// @Summary      Get a treatment plan
// @Tags         treatment
// @Produce      json
// @Param        id   path      string  true  "Plan ID"
// @Success      200  {object}  dto.TreatmentPlanResponse
// @Failure      404  {object}  map[string]string
// @Router       /treatment-plans/{id} [get]
// @Security     BearerAuth
func (h *treatmentHandler) getTreatmentPlan(c *gin.Context) {
	plan, err := h.planSvc.GetTreatmentPlanByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTreatmentPlanResponse(plan))
}

// updateTreatmentPlan godoc
// @Summary      Update a treatment plan
// @Description  Patches the plan's fields; a provided item list replaces the existing one wholesale
// @Tags         treatment
// @Accept       json
// @Produce      json
// @Param        id    path      string                          true  "Plan ID"
// @Param        plan  body      dto.UpdateTreatmentPlanRequest  true  "Fields to update"
// @Success      200   {object}  dto.TreatmentPlanResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /treatment-plans/{id} [put]
// @Security     BearerAuth
func (h *treatmentHandler) updateTreatmentPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateTreatmentPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	plan, err := h.planSvc.UpdateTreatmentPlan(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTreatmentPlanResponse(plan))
}

// addFollowUpCall godoc
// @Summary      Record a follow-up call
// @Description  Appends one care-call record; the log is append-only
// @Tags         treatment
// @Accept       json
// @Produce      json
// @Param        call  body      dto.CreateFollowUpCallRequest  true  "Call data"
// @Success      201   {object}  dto.FollowUpCallResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /follow-up-calls [post]
// @Security     BearerAuth
func (h *treatmentHandler) addFollowUpCall(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFollowUpCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	call, err := h.followUpSvc.AddFollowUpCall(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFollowUpCallResponse(call))
}

// listRecentFollowUpCalls godoc
// @Summary      List recent follow-up calls
// @Description  Returns the latest calls across all customers
// @Tags         treatment
// @Produce      json
// @Param        limit  query    int  false  "Maximum calls to return"
// @Success      200    {array}  dto.FollowUpCallResponse
// @Router       /follow-up-calls [get]
// @Security     BearerAuth
func (h *treatmentHandler) listRecentFollowUpCalls(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}

	calls, err := h.followUpSvc.ListRecentFollowUpCalls(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListFollowUpCallResponse(calls))
}

// addSessionDetails godoc
// @Summary      Record treatment session details
// @Description  Appends procedures to the customer's session on the given day, creating the session when the day has none
// @Tags         treatment
// @Accept       json
// @Produce      json
// @Param        session  body      dto.AddSessionDetailsRequest  true  "Session details"
// @Success      200      {object}  dto.TreatmentSessionResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /sessions [post]
// @Security     BearerAuth
func (h *treatmentHandler) addSessionDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddSessionDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	session, err := h.sessionSvc.AddSessionDetails(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTreatmentSessionResponse(session))
}
