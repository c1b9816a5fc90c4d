package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carelinehq/clinic-records/internal/httpresp"
	"github.com/carelinehq/clinic-records/internal/middleware"
	"github.com/carelinehq/clinic-records/internal/service"
)

type PrescriptionHandler struct {
	prescriptions *service.PrescriptionService
}

func NewPrescriptionHandler(prescriptions *service.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{prescriptions: prescriptions}
}

func (h *PrescriptionHandler) List(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	prescriptions, err := h.prescriptions.List(c.Request.Context(), caller)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.List(c, prescriptions)
}

func (h *PrescriptionHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	caller := middleware.CallerFrom(c)

	p, err := h.prescriptions.Get(c.Request.Context(), caller, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PrescriptionHandler) Create(c *gin.Context) {
	var in service.PrescriptionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}
	caller := middleware.CallerFrom(c)

	p, err := h.prescriptions.Create(c.Request.Context(), caller, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.Created(c, p)
}

func (h *PrescriptionHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in service.PrescriptionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}
	caller := middleware.CallerFrom(c)

	p, err := h.prescriptions.Update(c.Request.Context(), caller, id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PrescriptionHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	caller := middleware.CallerFrom(c)

	if err := h.prescriptions.Delete(c.Request.Context(), caller, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
