package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carelinehq/clinic-records/internal/httpresp"
	"github.com/carelinehq/clinic-records/internal/middleware"
	"github.com/carelinehq/clinic-records/internal/service"
)

type MedicalRecordHandler struct {
	records *service.MedicalRecordService
}

func NewMedicalRecordHandler(records *service.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{records: records}
}

func (h *MedicalRecordHandler) List(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	// ?patient=<id> narrows the list inside whatever the caller may see
	var patientID uint
	if raw := c.Query("patient"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_patient_filter"})
			return
		}
		patientID = uint(parsed)
	}

	records, err := h.records.List(c.Request.Context(), caller, patientID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.List(c, records)
}

func (h *MedicalRecordHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	caller := middleware.CallerFrom(c)

	r, err := h.records.Get(c.Request.Context(), caller, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *MedicalRecordHandler) Create(c *gin.Context) {
	var in service.MedicalRecordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}
	caller := middleware.CallerFrom(c)

	r, err := h.records.Create(c.Request.Context(), caller, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.Created(c, r)
}

func (h *MedicalRecordHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in service.MedicalRecordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}
	caller := middleware.CallerFrom(c)

	r, err := h.records.Update(c.Request.Context(), caller, id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *MedicalRecordHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	caller := middleware.CallerFrom(c)

	if err := h.records.Delete(c.Request.Context(), caller, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
