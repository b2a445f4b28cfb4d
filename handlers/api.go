package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-wavecleanup/db"
	"go-wavecleanup/forms"
	"go-wavecleanup/mission"
	"go-wavecleanup/mockdata"
	"go-wavecleanup/types"
)

// CreateUser handles POST /api/users, the mission sign-up endpoint.
func CreateUser(c *gin.Context, svc *mission.Service, logger *zap.Logger) {
	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
		return
	}

	user, err := svc.Signup(c.Request.Context(), req)
	if err != nil {
		respondSubmissionError(c, logger, "sign-up", err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func GetUser(c *gin.Context, store db.Store, logger *zap.Logger) {
	user, err := store.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error("fetching user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func CreateContactMessage(c *gin.Context, svc *mission.Service, logger *zap.Logger) {
	var m types.ContactMessage
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := svc.Contact(c.Request.Context(), m)
	if err != nil {
		respondSubmissionError(c, logger, "contact message", err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

func CreatePartnerApplication(c *gin.Context, svc *mission.Service, logger *zap.Logger) {
	var a types.PartnerApplication
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := svc.Apply(c.Request.Context(), a)
	if err != nil {
		respondSubmissionError(c, logger, "partner application", err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

func respondSubmissionError(c *gin.Context, logger *zap.Logger, what string, err error) {
	switch {
	case errors.Is(err, forms.ErrMissingFields),
		errors.Is(err, mission.ErrUnknownInquiryType),
		errors.Is(err, mission.ErrUnknownPartnerType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("storing "+what, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store " + what})
	}
}

func GetHotspots(c *gin.Context) {
	c.JSON(http.StatusOK, mockdata.Hotspots())
}

func GetHotspot(c *gin.Context) {
	h, ok := mockdata.HotspotByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hotspot not found"})
		return
	}
	c.JSON(http.StatusOK, h)
}

func GetWasteLocations(c *gin.Context) {
	c.JSON(http.StatusOK, mockdata.WasteLocations())
}

// GetDashboard returns the fixed dashboard data plus the live sign-up count.
func GetDashboard(c *gin.Context, store db.Store, now time.Time, logger *zap.Logger) {
	snapshot := mockdata.Dashboard(now)
	signups, err := store.CountUsers(c.Request.Context())
	if err != nil {
		logger.Warn("counting sign-ups", zap.Error(err))
		signups = 0
	}
	c.JSON(http.StatusOK, gin.H{
		"dashboard": snapshot,
		"signups":   signups,
	})
}

func GetLatestDigest(c *gin.Context, store db.Store, logger *zap.Logger) {
	d, found, err := store.LatestDigest(c.Request.Context())
	if err != nil {
		logger.Error("fetching latest digest", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve digest"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "No digest yet"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
