package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/digitalocean/lead-callback/pkg/clients/retell"
	"github.com/digitalocean/lead-callback/pkg/config"
	"github.com/digitalocean/lead-callback/pkg/middleware"
	"github.com/digitalocean/lead-callback/pkg/models"
	"github.com/digitalocean/lead-callback/pkg/services"
	"github.com/digitalocean/lead-callback/pkg/utils"
)

const (
	maxBodyBytes = 1 << 20

	callFailedMessage  = "Failed to create phone call"
	callCreatedMessage = "Call initiated successfully"
	indexMessage       = "Retell callback server is running"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	callbackService services.CallbackService
	config          *config.Config
	logger          *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(callbackService services.CallbackService, cfg *config.Config, logger *zap.Logger) *Handlers {
	return &Handlers{
		callbackService: callbackService,
		config:          cfg,
		logger:          logger.Named("api"),
	}
}

// Index confirms the server is running
func (h *Handlers) Index(c *gin.Context) {
	c.String(http.StatusOK, indexMessage)
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (h *Handlers) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Requested resource not found"})
}

// HandleLeadCapture initiates an outbound call to the lead's phone number
func (h *Handlers) HandleLeadCapture(c *gin.Context) {
	lead, err := bindLead(c)
	if err != nil {
		h.logger.Warn("Error parsing lead request",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.callbackService.RequestCallback(c.Request.Context(), lead)
	if err != nil {
		h.writeError(c, lead, err)
		return
	}

	if h.config.SuccessResponse == config.SuccessResponseMessage {
		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: callCreatedMessage})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: result.Body})
}

// bindLead reads lead fields from the body by content type, then fills the
// gaps from the query string
func bindLead(c *gin.Context) (models.LeadRequest, error) {
	var lead models.LeadRequest

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		return lead, fmt.Errorf("error reading request body: %w", err)
	}

	if len(bytes.TrimSpace(body)) > 0 {
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		if err := c.ShouldBind(&lead); err != nil {
			return lead, fmt.Errorf("error binding request body: %w", err)
		}
	}

	var query models.LeadRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		return lead, fmt.Errorf("error binding query: %w", err)
	}
	lead.FillMissing(query)

	return lead, nil
}

// writeError maps a callback failure to the caller's response
func (h *Handlers) writeError(c *gin.Context, lead models.LeadRequest, err error) {
	switch {
	case errors.Is(err, services.ErrPhoneRequired):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Phone number is required"})
		return
	case errors.Is(err, services.ErrPhoneInvalid):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Phone number must contain digits"})
		return
	}

	status := http.StatusInternalServerError
	var details interface{}

	var upstreamErr *retell.UpstreamError
	var transportErr *retell.TransportError
	switch {
	case errors.As(err, &upstreamErr):
		if h.config.PropagateUpstreamStatus {
			status = upstreamErr.StatusCode
		}
		details = upstreamErr.Details
	case errors.As(err, &transportErr):
		details = gin.H{"message": transportErr.Err.Error()}
	default:
		details = gin.H{"message": err.Error()}
	}

	h.logger.Error("Retell API error",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("phone_hash", utils.PhoneFingerprint(lead.PhoneValue())),
		zap.Int("status", status),
		zap.Any("details", details),
		zap.Error(err),
	)

	c.JSON(status, models.ErrorResponse{Error: callFailedMessage, Details: details})
}
