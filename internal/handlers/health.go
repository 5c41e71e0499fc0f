package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

// HealthHandler handles Lambda health check requests.
type HealthHandler struct {
	db    HealthChecker
	stage string
}

// NewHealthHandler creates a new health handler. db may be nil.
func NewHealthHandler(db HealthChecker, stage string) *HealthHandler {
	if stage == "" {
		stage = "unknown"
	}
	return &HealthHandler{db: db, stage: stage}
}

// HealthResponse is the response structure for health checks.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Stage     string `json:"stage"`
	Database  string `json:"database,omitempty"`
}

// Handle processes health check requests.
func (h *HealthHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "sme-financial-health",
		Version:   APIVersion,
		Stage:     h.stage,
		Database:  databaseState(ctx, h.db),
	}

	// A configured but unreachable database degrades the service.
	statusCode := http.StatusOK
	if response.Database == "disconnected" {
		response.Status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	return jsonResponse(corsHeaders(), statusCode, response)
}
