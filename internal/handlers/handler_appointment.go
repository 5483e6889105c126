package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hndang/clinic_mgmt_app/internal/core/ports/services"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
	"github.com/hndang/clinic_mgmt_app/internal/middleware"
)

type appointmentHandler struct {
	appointmentSvc services.AppointmentSvcFacade
}

func newAppointmentHandler(svc services.AppointmentSvcFacade) *appointmentHandler {
	return &appointmentHandler{appointmentSvc: svc}
}

func registerAppointmentRoutes(rg *gin.RouterGroup, svc services.AppointmentSvcFacade) {
	h := newAppointmentHandler(svc)
	appointments := rg.Group("/appointments")
	{
		appointments.POST("", h.createAppointment)
		appointments.GET("", h.listAppointments)
		appointments.GET("/:id", h.getAppointment)
		appointments.PUT("/:id", h.updateAppointment)
		appointments.DELETE("/:id", h.deleteAppointment)
	}
}

// createAppointment godoc
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        appointment  body      dto.CreateAppointmentRequest  true  "Appointment data"
// @Success      201          {object}  dto.AppointmentResponse
// @Failure      400          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Router       /appointments [post]
// @Security     BearerAuth
func (h *appointmentHandler) createAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	appointment, err := h.appointmentSvc.CreateAppointment(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAppointmentResponse(appointment))
}

// listAppointments godoc
// @Summary      List appointments in a date range
// @Description  Returns appointments with a scheduled time in [from, to), optionally filtered by clinic
// @Tags         appointments
// @Produce      json
// @Param        from      query     string  true   "Range start (YYYY-MM-DD)"
// @Param        to        query     string  true   "Range end, exclusive (YYYY-MM-DD)"
// @Param        clinicID  query     string  false  "Clinic filter"
// @Success      200       {array}   dto.AppointmentResponse
// @Failure      400       {object}  map[string]string
// @Router       /appointments [get]
// @Security     BearerAuth
func (h *appointmentHandler) listAppointments(c *gin.Context) {
	var params dto.ListAppointmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointments, err := h.appointmentSvc.ListAppointments(c.Request.Context(), params.ClinicID, params.From, params.To)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAppointmentResponse(appointments))
}

// getAppointment godoc
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Param        id   path      string  true  "Appointment ID"
// @Success      200  {object}  dto.AppointmentResponse
// @Failure      404  {object}  map[string]string
// @Router       /appointments/{id} [get]
// @Security     BearerAuth
func (h *appointmentHandler) getAppointment(c *gin.Context) {
	appointment, err := h.appointmentSvc.GetAppointmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appointment))
}

// updateAppointment godoc
// @Summary      Update an appointment
// @Description  Reschedules or re-statuses a visit
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id           path      string                        true  "Appointment ID"
// @Param        appointment  body      dto.UpdateAppointmentRequest  true  "Fields to update"
// @Success      200          {object}  dto.AppointmentResponse
// @Failure      400          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Router       /appointments/{id} [put]
// @Security     BearerAuth
func (h *appointmentHandler) updateAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	appointment, err := h.appointmentSvc.UpdateAppointment(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appointment))
}

// deleteAppointment godoc
// @Summary      Delete an appointment
// @Tags         appointments
// @Param        id  path  string  true  "Appointment ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /appointments/{id} [delete]
// @Security     BearerAuth
func (h *appointmentHandler) deleteAppointment(c *gin.Context) {
	if err := h.appointmentSvc.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
