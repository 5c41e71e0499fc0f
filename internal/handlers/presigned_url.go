package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	s3service "sme-financial-health/internal/services/s3"
	"sme-financial-health/internal/utils"
)

const uploadURLExpiry = time.Hour

// UploadPresigner creates presigned upload URLs.
type UploadPresigner interface {
	GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiry time.Duration) (*s3service.PresignedURLResult, error)
}

// PresignedURLHandler handles requests for generating presigned S3 URLs.
type PresignedURLHandler struct {
	presigner UploadPresigner
}

// NewPresignedURLHandler creates a new presigned URL handler.
func NewPresignedURLHandler(presigner UploadPresigner) *PresignedURLHandler {
	return &PresignedURLHandler{presigner: presigner}
}

// PresignedURLResponse is the response structure for presigned URL requests.
type PresignedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	S3Key     string `json:"s3Key"`
	ExpiresIn int    `json:"expiresIn"`
}

// Handle processes the API Gateway request for generating presigned URLs.
func (h *PresignedURLHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := utils.GetLogger()
	headers := corsHeaders()

	// Handle CORS preflight
	if request.HTTPMethod == http.MethodOptions {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusOK,
			Headers:    headers,
		}, nil
	}

	filename := request.QueryStringParameters["filename"]
	if filename == "" {
		filename = "upload_" + uuid.New().String()[:8] + ".csv"
	}

	if !utils.IsSupportedUpload(filename) {
		return errorResponse(headers, http.StatusBadRequest, "Only CSV and XLSX files are allowed")
	}

	s3Key := s3service.UploadKey(sanitizeFilename(filename))

	presigned, err := h.presigner.GeneratePresignedUploadURL(ctx, s3Key, uploadContentType(filename), uploadURLExpiry)
	if err != nil {
		logger.Error("Failed to generate presigned URL", utils.Error(err))
		return errorResponse(headers, http.StatusInternalServerError, "Failed to generate upload URL")
	}

	logger.Info("Generated presigned URL", utils.String("s3Key", s3Key))

	return jsonResponse(headers, http.StatusOK, PresignedURLResponse{
		UploadURL: presigned.URL,
		S3Key:     s3Key,
		ExpiresIn: int(uploadURLExpiry.Seconds()),
	})
}

func uploadContentType(filename string) string {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return "text/csv"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// sanitizeFilename removes unsafe characters from filename.
func sanitizeFilename(filename string) string {
	var b strings.Builder
	for _, r := range filepath.Base(filename) {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	safe := b.String()
	if len(safe) > 100 {
		safe = safe[len(safe)-100:]
	}
	return safe
}

// errorResponse creates an error response.
func errorResponse(headers map[string]string, statusCode int, message string) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(Response{
		Status:  statusError,
		Message: message,
	})

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       string(body),
	}, nil
}
