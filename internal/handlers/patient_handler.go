package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carelinehq/clinic-records/internal/httpresp"
	"github.com/carelinehq/clinic-records/internal/middleware"
	"github.com/carelinehq/clinic-records/internal/service"
)

type PatientHandler struct {
	patients *service.PatientService
}

func NewPatientHandler(patients *service.PatientService) *PatientHandler {
	return &PatientHandler{patients: patients}
}

func (h *PatientHandler) List(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	patients, err := h.patients.List(c.Request.Context(), caller, c.Query("query"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.List(c, patients)
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	caller := middleware.CallerFrom(c)

	p, err := h.patients.Get(c.Request.Context(), caller, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PatientHandler) Create(c *gin.Context) {
	var in service.PatientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}
	caller := middleware.CallerFrom(c)

	p, err := h.patients.Create(c.Request.Context(), caller, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.Created(c, p)
}

func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in service.PatientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}
	caller := middleware.CallerFrom(c)

	p, err := h.patients.Update(c.Request.Context(), caller, id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	caller := middleware.CallerFrom(c)

	if err := h.patients.Delete(c.Request.Context(), caller, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
