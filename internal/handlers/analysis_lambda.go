package handlers

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"sme-financial-health/internal/services/assessment"
	"sme-financial-health/internal/services/translation"
	"sme-financial-health/internal/utils"
)

// AnalysisHandler serves single-business analysis through API Gateway.
type AnalysisHandler struct {
	assessor *assessment.Service
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(assessor *assessment.Service) *AnalysisHandler {
	return &AnalysisHandler{assessor: assessor}
}

// Handle analyzes the business named by the business_id path parameter.
func (h *AnalysisHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	headers := corsHeaders()

	if request.HTTPMethod == http.MethodOptions {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Headers: headers}, nil
	}

	businessID := request.PathParameters["business_id"]
	if businessID == "" {
		return jsonResponse(headers, http.StatusBadRequest, Response{Status: statusError, Message: "business_id is required"})
	}

	language := request.QueryStringParameters["language"]
	if language == "" {
		language = translation.English
	}

	out, err := h.assessor.Assess(ctx, businessID)
	if err != nil {
		status, body := errorBody(err)
		if status == http.StatusInternalServerError {
			utils.GetLogger().Error("Analysis failed", utils.String("business_id", businessID), utils.Error(err))
		}
		return jsonResponse(headers, status, body)
	}

	payload, err := analysisPayload(out, language)
	if err != nil {
		status, body := errorBody(err)
		return jsonResponse(headers, status, body)
	}

	return jsonResponse(headers, http.StatusOK, Response{Status: statusSuccess, Data: payload})
}
