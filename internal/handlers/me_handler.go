package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/carelinehq/clinic-records/internal/middleware"
	"github.com/carelinehq/clinic-records/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe returns the authenticated user plus whichever profile their role
// links to, if one has been created yet.
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	}

	var patient models.Patient
	if err := h.db.Where("user_id = ?", userID).First(&patient).Error; err == nil {
		resp["patient_profile"] = patient
	}

	var doctor models.Doctor
	if err := h.db.Where("user_id = ?", userID).First(&doctor).Error; err == nil {
		resp["doctor_profile"] = doctor
	}

	c.JSON(http.StatusOK, resp)
}
