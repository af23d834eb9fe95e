package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sokohub/models"
	"sokohub/registration"
	"sokohub/utils"
)

// RegistrationHandler serves the merchant registration wizard endpoints.
type RegistrationHandler struct {
	Service registration.Service
	Logger  *zap.Logger
}

func NewRegistrationHandler(svc registration.Service, logger *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{Service: svc, Logger: logger}
}

// StartSession handles POST /api/registration/sessions.
func (h *RegistrationHandler) StartSession(c *gin.Context) {
	session, err := h.Service.Start()
	if err != nil {
		h.Logger.Error("StartSession: failed to start registration session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to start registration", err.Error())
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSession handles GET /api/registration/sessions/:sessionId.
func (h *RegistrationHandler) GetSession(c *gin.Context) {
	session, err := h.Service.Get(c.Param("sessionId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateStep1 handles PUT /api/registration/sessions/:sessionId/step1.
func (h *RegistrationHandler) UpdateStep1(c *gin.Context) {
	var data models.RegistrationStep1
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid step payload", err.Error())
		return
	}
	session, err := h.Service.UpdateStep1(c.Param("sessionId"), data)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateStep2 handles PUT /api/registration/sessions/:sessionId/step2.
func (h *RegistrationHandler) UpdateStep2(c *gin.Context) {
	var data models.RegistrationStep2
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid step payload", err.Error())
		return
	}
	session, err := h.Service.UpdateStep2(c.Param("sessionId"), data)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// VerifyPhone handles POST /api/registration/sessions/:sessionId/verify-phone.
func (h *RegistrationHandler) VerifyPhone(c *gin.Context) {
	var body struct {
		Verified bool `json:"verified"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}
	session, err := h.Service.SetPhoneVerified(c.Param("sessionId"), body.Verified)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdatePassword handles PUT /api/registration/sessions/:sessionId/password.
func (h *RegistrationHandler) UpdatePassword(c *gin.Context) {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}
	session, err := h.Service.UpdatePassword(c.Param("sessionId"), body.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateStep5 handles PUT /api/registration/sessions/:sessionId/business.
func (h *RegistrationHandler) UpdateStep5(c *gin.Context) {
	var data models.RegistrationStep5
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid step payload", err.Error())
		return
	}
	session, err := h.Service.UpdateStep5(c.Param("sessionId"), data)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateStep6 handles PUT /api/registration/sessions/:sessionId/documents.
func (h *RegistrationHandler) UpdateStep6(c *gin.Context) {
	var data models.RegistrationStep6
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid step payload", err.Error())
		return
	}
	session, err := h.Service.UpdateStep6(c.Param("sessionId"), data)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSignature handles PUT /api/registration/sessions/:sessionId/signature.
func (h *RegistrationHandler) UpdateSignature(c *gin.Context) {
	var body struct {
		Signature string `json:"signature"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}
	session, err := h.Service.UpdateSignature(c.Param("sessionId"), body.Signature)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitSession handles POST /api/registration/sessions/:sessionId/submit.
func (h *RegistrationHandler) SubmitSession(c *gin.Context) {
	data, err := h.Service.Submit(c.Param("sessionId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	// The password never leaves the wizard through this surface.
	data.Password = ""
	c.JSON(http.StatusOK, gin.H{"registration": data, "status": "submitted"})
}

// ResetSession handles DELETE /api/registration/sessions/:sessionId.
func (h *RegistrationHandler) ResetSession(c *gin.Context) {
	if err := h.Service.Reset(c.Param("sessionId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

func (h *RegistrationHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, registration.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "registration session not found", err.Error())
	case errors.Is(err, registration.ErrAlreadySubmitted):
		utils.JSONError(c, http.StatusConflict, "registration already submitted", err.Error())
	case registration.IsValidationError(err):
		utils.JSONError(c, http.StatusBadRequest, "invalid registration data", err.Error())
	default:
		h.Logger.Error("registration: unexpected error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "registration failed", err.Error())
	}
}
