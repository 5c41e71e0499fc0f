package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/services/analysis"
	"sme-financial-health/internal/services/assessment"
	"sme-financial-health/internal/services/recommendation"
	"sme-financial-health/internal/services/translation"
)

const dashboardPreview = 10

// AnalysisResponse is the body of a single-business analysis.
type AnalysisResponse struct {
	BusinessID      string                       `json:"business_id"`
	Analysis        interface{}                  `json:"analysis"`
	Recommendations *models.RecommendationResult `json:"recommendations"`
}

// BatchRequest is the body of a batch analysis request.
type BatchRequest struct {
	BusinessIDs []string `json:"business_ids" validate:"required,min=1"`
	Language    string   `json:"language"`
}

// BatchEntry is the outcome for one business of a batch.
type BatchEntry struct {
	BusinessID      string                       `json:"business_id"`
	Status          string                       `json:"status"`
	Analysis        interface{}                  `json:"analysis,omitempty"`
	Recommendations *models.RecommendationResult `json:"recommendations,omitempty"`
	Error           string                       `json:"error,omitempty"`
}

// DashboardResponse summarises the dataset.
type DashboardResponse struct {
	TotalBusinesses    int                      `json:"total_businesses"`
	TotalRevenue       float64                  `json:"total_revenue"`
	AverageHealthScore float64                  `json:"average_health_score"`
	RiskDistribution   map[string]int           `json:"risk_distribution"`
	Businesses         []models.BusinessSummary `json:"businesses"`
}

func languageOf(r *http.Request) string {
	if lang := r.URL.Query().Get("language"); lang != "" {
		return lang
	}
	return translation.English
}

// analysisPayload localizes the analysis for display when language is not English.
func analysisPayload(out *assessment.Outcome, language string) (*AnalysisResponse, error) {
	resp := &AnalysisResponse{
		BusinessID:      out.BusinessID,
		Analysis:        out.Analysis,
		Recommendations: out.Recommendations,
	}
	if language != translation.English {
		translated, err := translation.TranslateAnalysis(out.Analysis, language)
		if err != nil {
			return nil, err
		}
		resp.Analysis = translated
	}
	return resp, nil
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{
		Status:  statusSuccess,
		Message: "Financial Health Assessment API is running",
		Data: map[string]interface{}{
			"status":    "healthy",
			"database":  databaseState(r.Context(), s.db),
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   APIVersion,
		},
	})
}

func databaseState(ctx context.Context, db HealthChecker) string {
	if db == nil {
		return "not configured"
	}
	if err := db.HealthCheck(ctx); err != nil {
		return "disconnected"
	}
	return "connected"
}

func (s *Server) analysisHandler(w http.ResponseWriter, r *http.Request) {
	out, err := s.assessor.Assess(r.Context(), r.PathValue("business_id"))
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := analysisPayload(out, languageOf(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Status: statusSuccess, Data: payload})
}

func (s *Server) businessesHandler(w http.ResponseWriter, r *http.Request) {
	businesses, err := s.assessor.Source().List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Status: statusSuccess,
		Data:   businesses,
		Count:  count(len(businesses)),
	})
}

func (s *Server) batchAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Status: statusError, Message: "Invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Status: statusError, Message: "business_ids is required"})
		return
	}
	if req.Language == "" {
		req.Language = translation.English
	}

	results := make([]BatchEntry, 0, len(req.BusinessIDs))
	for _, id := range req.BusinessIDs {
		results = append(results, s.assessBatchEntry(r.Context(), id, req.Language))
	}

	writeJSON(w, http.StatusOK, Response{
		Status: statusSuccess,
		Data:   results,
		Count:  count(len(results)),
	})
}

func (s *Server) assessBatchEntry(ctx context.Context, id, language string) BatchEntry {
	out, err := s.assessor.Assess(ctx, id)
	if errors.Is(err, models.ErrBusinessNotFound) {
		return BatchEntry{BusinessID: id, Status: "not_found"}
	}
	if err != nil {
		return BatchEntry{BusinessID: id, Status: statusError, Error: err.Error()}
	}

	payload, err := analysisPayload(out, language)
	if err != nil {
		return BatchEntry{BusinessID: id, Status: statusError, Error: err.Error()}
	}

	return BatchEntry{
		BusinessID:      id,
		Status:          statusSuccess,
		Analysis:        payload.Analysis,
		Recommendations: payload.Recommendations,
	}
}

func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	businesses, err := s.assessor.Source().List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Status: statusSuccess, Data: buildDashboard(businesses)})
}

func buildDashboard(businesses []models.BusinessSummary) DashboardResponse {
	dist := make(map[string]int, 4)
	for _, c := range models.RiskCategories() {
		dist[translation.RiskKey(c)] = 0
	}

	revenue := decimal.Zero
	scoreSum := decimal.Zero
	scored := 0
	for _, b := range businesses {
		revenue = revenue.Add(decimal.NewFromFloat(b.AnnualRevenue))
		if b.FinancialHealthScore == nil {
			continue
		}
		score := decimal.NewFromFloat(*b.FinancialHealthScore)
		scoreSum = scoreSum.Add(score)
		scored++

		health := analysis.ClassifyHealth(int(score.RoundBank(0).IntPart()))
		dist[translation.RiskKey(health.RiskCategory)]++
	}

	avg := decimal.Zero
	if scored > 0 {
		avg = scoreSum.Div(decimal.NewFromInt(int64(scored))).RoundBank(2)
	}

	preview := businesses
	if len(preview) > dashboardPreview {
		preview = preview[:dashboardPreview]
	}

	return DashboardResponse{
		TotalBusinesses:    len(businesses),
		TotalRevenue:       revenue.InexactFloat64(),
		AverageHealthScore: avg.InexactFloat64(),
		RiskDistribution:   dist,
		Businesses:         preview,
	}
}

func (s *Server) languagesHandler(w http.ResponseWriter, r *http.Request) {
	languages := translation.SupportedLanguages()
	writeJSON(w, http.StatusOK, Response{
		Status: statusSuccess,
		Data:   languages,
		Count:  count(len(languages)),
	})
}

func (s *Server) translateHandler(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	language := languageOf(r)

	writeJSON(w, http.StatusOK, Response{
		Status: statusSuccess,
		Data: map[string]string{
			"key":         key,
			"language":    language,
			"translation": translation.Get(key, language),
		},
	})
}

// DocsResponse lists the endpoints alongside the reference data they use.
type DocsResponse struct {
	Endpoints  []map[string]string      `json:"endpoints"`
	Industries []string                 `json:"industries"`
	Products   []recommendation.Product `json:"products"`
}

func (s *Server) docsHandler(w http.ResponseWriter, r *http.Request) {
	routes := s.routes()
	endpoints := make([]map[string]string, 0, len(routes))
	for _, rt := range routes {
		endpoints = append(endpoints, map[string]string{
			"method":      rt.method,
			"path":        rt.path,
			"description": rt.description,
		})
	}

	writeJSON(w, http.StatusOK, Response{
		Status:  statusSuccess,
		Message: "Financial Health Assessment API",
		Data: DocsResponse{
			Endpoints:  endpoints,
			Industries: analysis.KnownIndustries(),
			Products:   recommendation.Products(),
		},
		Count: count(len(endpoints)),
	})
}
