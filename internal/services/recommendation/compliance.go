package recommendation

import (
	"sme-financial-health/internal/models"
)

var industryRisks = map[string][4]string{
	models.IndustryManufacturing: {
		"Capital intensity - high fixed assets requirement",
		"Raw material price volatility",
		"Supply chain disruptions",
		"Regulatory compliance costs (environmental, safety)",
	},
	models.IndustryRetail: {
		"Seasonal demand fluctuations",
		"Competitive pressure on margins",
		"E-commerce disruption",
		"Real estate cost inflation",
	},
	models.IndustryServices: {
		"Client concentration risk",
		"Talent retention and costs",
		"Scalability challenges",
		"Regulatory changes",
	},
	models.IndustryLogistics: {
		"Fuel cost volatility",
		"Vehicle maintenance costs",
		"Driver availability",
		"Route optimization challenges",
	},
	models.IndustryEcommerce: {
		"High customer acquisition costs",
		"Payment gateway risk",
		"Supply chain complexity",
		"Cybersecurity threats",
	},
	models.IndustryAgriculture: {
		"Weather and climate risks",
		"Crop price volatility",
		"Limited access to credit",
		"Regulatory compliance (pesticides, GMO)",
	},
}

func assessIndustryRisks(r *models.FinancialRecord) *models.IndustryRisks {
	risks := []string{}
	if list, ok := industryRisks[r.IndustryType]; ok {
		risks = append(risks, list[:]...)
	}
	return &models.IndustryRisks{
		Industry:            r.Industry(),
		IdentifiedRisks:     risks,
		MitigationSuggested: true,
	}
}

func assessTaxCompliance(r *models.FinancialRecord) []models.ComplianceNote {
	var gst models.ComplianceNote
	switch r.GSTComplianceStatus {
	case models.GSTNonCompliant:
		gst = models.ComplianceNote{
			ComplianceArea: "GST",
			Status:         models.GSTNonCompliant,
			Priority:       models.PriorityCritical,
			Action:         "File pending GST returns and rectify compliance status",
			Benefit:        "Avoid penalties and improve creditworthiness",
		}
	case models.GSTDelayed:
		gst = models.ComplianceNote{
			ComplianceArea: "GST",
			Status:         models.GSTDelayed,
			Priority:       models.PriorityHigh,
			Action:         "File delayed GST returns immediately",
			Benefit:        "Minimize penalties and interest charges",
		}
	default:
		gst = models.ComplianceNote{
			ComplianceArea: "GST",
			Status:         models.GSTCompliant,
			Priority:       models.PriorityLow,
			Action:         "Maintain GST filing discipline",
			Benefit:        "Stay compliant with tax authorities",
		}
	}

	return []models.ComplianceNote{
		gst,
		{
			ComplianceArea: "Income Tax",
			Status:         "Review",
			Priority:       models.PriorityMedium,
			Action:         "Ensure timely filing of income tax returns and ITR",
			Benefit:        "Strengthen credit profile and compliance record",
		},
	}
}
