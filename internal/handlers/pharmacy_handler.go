package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carelinehq/clinic-records/internal/httpresp"
	"github.com/carelinehq/clinic-records/internal/middleware"
	"github.com/carelinehq/clinic-records/internal/service"
)

type PharmacyHandler struct {
	pharmacies *service.PharmacyService
}

func NewPharmacyHandler(pharmacies *service.PharmacyService) *PharmacyHandler {
	return &PharmacyHandler{pharmacies: pharmacies}
}

func (h *PharmacyHandler) List(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	pharmacies, err := h.pharmacies.List(c.Request.Context(), caller)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.List(c, pharmacies)
}

func (h *PharmacyHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	caller := middleware.CallerFrom(c)

	p, err := h.pharmacies.Get(c.Request.Context(), caller, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PharmacyHandler) Create(c *gin.Context) {
	var in service.PharmacyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}
	caller := middleware.CallerFrom(c)

	p, err := h.pharmacies.Create(c.Request.Context(), caller, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.Created(c, p)
}

func (h *PharmacyHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in service.PharmacyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}
	caller := middleware.CallerFrom(c)

	p, err := h.pharmacies.Update(c.Request.Context(), caller, id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PharmacyHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	caller := middleware.CallerFrom(c)

	if err := h.pharmacies.Delete(c.Request.Context(), caller, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
