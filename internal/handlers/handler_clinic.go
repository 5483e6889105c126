package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hndang/clinic_mgmt_app/internal/core/ports/services"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
)

type clinicHandler struct {
	clinicSvc services.ClinicSvcFacade
}

func newClinicHandler(svc services.ClinicSvcFacade) *clinicHandler {
	return &clinicHandler{clinicSvc: svc}
}

func registerClinicRoutes(rg *gin.RouterGroup, svc services.ClinicSvcFacade) {
	h := newClinicHandler(svc)
	clinics := rg.Group("/clinics")
	{
		clinics.GET("", h.listClinics)
		clinics.GET("/:id", h.getClinic)
	}
}

// listClinics godoc
// @Summary      List clinics
// @Tags         clinics
// @Produce      json
// @Success      200  {array}  dto.ClinicResponse
// @Router       /clinics [get]
// @Security     BearerAuth
func (h *clinicHandler) listClinics(c *gin.Context) {
	clinics, err := h.clinicSvc.ListClinics(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListClinicResponse(clinics))
}

// getClinic godoc
// @Summary      Get a clinic
// @Tags         clinics
// @Produce      json
// @Param        id   path      string  true  "Clinic ID"
// @Success      200  {object}  dto.ClinicResponse
// @Failure      404  {object}  map[string]string
// @Router       /clinics/{id} [get]
// @Security     BearerAuth
func (h *clinicHandler) getClinic(c *gin.Context) {
	clinic, err := h.clinicSvc.GetClinicByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClinicResponse(clinic))
}
