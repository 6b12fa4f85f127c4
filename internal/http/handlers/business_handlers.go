package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// BusinessHandlers handles business registration and verification HTTP requests
type BusinessHandlers struct {
	businessSvc     domain.BusinessService
	verificationSvc domain.VerificationService
	logger          *logrus.Logger
}

// NewBusinessHandlers creates new business handlers
func NewBusinessHandlers(businessSvc domain.BusinessService, verificationSvc domain.VerificationService, logger *logrus.Logger) *BusinessHandlers {
	return &BusinessHandlers{
		businessSvc:     businessSvc,
		verificationSvc: verificationSvc,
		logger:          logger,
	}
}

// RegisterRequest represents a business registration request
type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
}

// SendVerificationRequest represents a verification code send request
type SendVerificationRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Channel     string `json:"channel,omitempty"`
}

// CheckVerificationRequest represents a verification code check request
type CheckVerificationRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

// AssignNumberRequest represents a custom messaging number assignment
type AssignNumberRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

func businessJSON(b *domain.Business) gin.H {
	return gin.H{
		"id":                 b.ID,
		"name":               b.Name,
		"contact_email":      b.ContactEmail,
		"phone_number":       b.Phone,
		"verify_service_sid": b.VerifyServiceSID,
		"use_custom_number":  b.UseCustomNumber,
		"custom_number":      b.CustomNumber,
		"is_active":          b.IsActive,
		"created_at":         b.CreatedAt,
		"updated_at":         b.UpdatedAt,
	}
}

// Register handles business registration
func (h *BusinessHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business, err := h.businessSvc.Register(c.Request.Context(), req.Name, req.ContactEmail, req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPhoneNumber):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number must be in E.164 format"})
		case errors.Is(err, domain.ErrBusinessExists):
			c.JSON(http.StatusConflict, gin.H{"error": "An active business already uses this phone number"})
		default:
			abortUpstream(c, h.logger, "register business", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"business": businessJSON(business)})
}

// List handles listing all businesses
func (h *BusinessHandlers) List(c *gin.Context) {
	businesses, err := h.businessSvc.List(c.Request.Context())
	if err != nil {
		abortUpstream(c, h.logger, "list businesses", err)
		return
	}

	out := make([]gin.H, 0, len(businesses))
	for _, b := range businesses {
		out = append(out, businessJSON(b))
	}
	c.JSON(http.StatusOK, gin.H{"businesses": out})
}

// Get handles fetching one business
func (h *BusinessHandlers) Get(c *gin.Context) {
	id, ok := h.businessID(c)
	if !ok {
		return
	}

	business, err := h.businessSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		abortUpstream(c, h.logger, "get business", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"business": businessJSON(business)})
}

// Deactivate handles soft-deleting a business
func (h *BusinessHandlers) Deactivate(c *gin.Context) {
	id, ok := h.businessID(c)
	if !ok {
		return
	}

	if err := h.businessSvc.Deactivate(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		abortUpstream(c, h.logger, "deactivate business", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AssignNumber handles assigning a dedicated messaging number
func (h *BusinessHandlers) AssignNumber(c *gin.Context) {
	id, ok := h.businessID(c)
	if !ok {
		return
	}

	var req AssignNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business, err := h.businessSvc.AssignCustomNumber(c.Request.Context(), id, req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPhoneNumber):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number must be in E.164 format"})
		case errors.Is(err, domain.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		case errors.Is(err, domain.ErrBusinessExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Another business already uses this number"})
		default:
			abortUpstream(c, h.logger, "assign custom number", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"business": businessJSON(business)})
}

// SendVerification handles sending a one-time verification code
func (h *BusinessHandlers) SendVerification(c *gin.Context) {
	id, ok := h.businessID(c)
	if !ok {
		return
	}

	var req SendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.verificationSvc.SendCode(c.Request.Context(), id, req.PhoneNumber, req.Channel)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		case errors.Is(err, domain.ErrInvalidPhoneNumber), errors.Is(err, domain.ErrInvalidChannel):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrResendThrottled):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		default:
			abortUpstream(c, h.logger, "send verification code", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  result.Status,
		"sid":     result.Attempt.ProviderSID,
	})
}

// CheckVerification handles checking a submitted code. On a successful
// verdict the business is activated before the result is returned.
func (h *BusinessHandlers) CheckVerification(c *gin.Context) {
	id, ok := h.businessID(c)
	if !ok {
		return
	}

	var req CheckVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.verificationSvc.CheckCode(c.Request.Context(), id, req.PhoneNumber, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		case errors.Is(err, domain.ErrAttemptNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No verification attempt for this phone number"})
		case errors.Is(err, domain.ErrInvalidPhoneNumber):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number must be in E.164 format"})
		default:
			abortUpstream(c, h.logger, "check verification code", err)
		}
		return
	}

	if result.Valid {
		if err := h.businessSvc.Activate(c.Request.Context(), id); err != nil {
			h.logger.WithError(err).WithFields(logrus.Fields{
				"business_id": id,
				"phone":       req.PhoneNumber,
			}).Error("business activation failed after approved check")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate business"})
			return
		}
		h.logger.WithFields(logrus.Fields{
			"business_id": id,
			"phone":       req.PhoneNumber,
		}).Info("business verified and activated")
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":  result.Valid,
		"status": result.Check.ProviderStatus,
	})
}

func (h *BusinessHandlers) businessID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business id"})
		return 0, false
	}
	return uint(id), true
}
