package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carelinehq/clinic-records/internal/httpresp"
	"github.com/carelinehq/clinic-records/internal/middleware"
	"github.com/carelinehq/clinic-records/internal/service"
)

type DoctorHandler struct {
	doctors *service.DoctorService
}

func NewDoctorHandler(doctors *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctors: doctors}
}

func (h *DoctorHandler) List(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	doctors, err := h.doctors.List(c.Request.Context(), caller)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	caller := middleware.CallerFrom(c)

	d, err := h.doctors.Get(c.Request.Context(), caller, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var in service.DoctorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}
	caller := middleware.CallerFrom(c)

	d, err := h.doctors.Create(c.Request.Context(), caller, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.Created(c, d)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in service.DoctorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}
	caller := middleware.CallerFrom(c)

	d, err := h.doctors.Update(c.Request.Context(), caller, id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	caller := middleware.CallerFrom(c)

	if err := h.doctors.Delete(c.Request.Context(), caller, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
