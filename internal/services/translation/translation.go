// Package translation provides display labels for analysis output.
// Analysis field names stay stable; labels are substituted only for display.
package translation

import (
	"encoding/json"
	"fmt"
	"strings"

	"sme-financial-health/internal/models"
)

// Supported language codes.
const (
	English = "en"
	Hindi   = "hi"
)

// SupportedLanguages returns the language codes with a dictionary.
func SupportedLanguages() []string {
	return []string{English, Hindi}
}

// IsSupported reports whether a dictionary exists for language.
func IsSupported(language string) bool {
	_, ok := dictionaries[language]
	return ok
}

// Get returns the label for key. Unknown languages use English and unknown
// keys return the key itself.
func Get(key, language string) string {
	dict, ok := dictionaries[language]
	if !ok {
		dict = dictionaries[English]
	}
	if label, ok := dict[key]; ok {
		return label
	}
	return key
}

// RiskKey converts a risk category to its dictionary key, e.g. "low_risk".
func RiskKey(category models.RiskCategory) string {
	return strings.ReplaceAll(strings.ToLower(string(category)), " ", "_")
}

// TranslateAnalysis renders the analysis as a generic map with localized
// labels for financial metrics, liquidity ratios and the risk category.
// Every other section passes through unchanged.
func TranslateAnalysis(a *models.AnalysisResult, language string) (map[string]interface{}, error) {
	out, err := toMap(a)
	if err != nil {
		return nil, err
	}
	if language == English {
		return out, nil
	}

	for _, section := range []string{"financial_metrics", "liquidity_ratios"} {
		if fields, ok := out[section].(map[string]interface{}); ok {
			out[section] = translateKeys(fields, language)
		}
	}

	if health, ok := out["financial_health"].(map[string]interface{}); ok {
		health["risk_category"] = Get(RiskKey(a.FinancialHealth.RiskCategory), language)
	}

	return out, nil
}

func translateKeys(fields map[string]interface{}, language string) map[string]interface{} {
	translated := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		translated[Get(k, language)] = v
	}
	return translated
}

// toMap converts a value to a generic map through its JSON form.
func toMap(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return result, nil
}
