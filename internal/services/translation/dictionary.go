package translation

var dictionaries = map[string]map[string]string{
	English: {
		"app_name":  "Financial Health Assessment Tool",
		"dashboard": "Financial Dashboard",
		"report":    "Financial Report",

		"home":            "Home",
		"analysis":        "Analysis",
		"recommendations": "Recommendations",
		"reports":         "Reports",
		"settings":        "Settings",

		"annual_revenue":      "Annual Revenue",
		"total_expenses":      "Total Expenses",
		"net_profit":          "Net Profit",
		"total_assets":        "Total Assets",
		"total_liabilities":   "Total Liabilities",
		"equity":              "Equity",
		"current_assets":      "Current Assets",
		"current_liabilities": "Current Liabilities",
		"working_capital":     "Working Capital",

		"current_ratio":     "Current Ratio",
		"quick_ratio":       "Quick Ratio",
		"debt_equity_ratio": "Debt-to-Equity Ratio",
		"profit_margin":     "Profit Margin",
		"roa":               "Return on Assets (ROA)",
		"roe":               "Return on Equity (ROE)",
		"asset_turnover":    "Asset Turnover Ratio",
		"dscr":              "Debt Service Coverage Ratio",

		"financial_health_score": "Financial Health Score",
		"risk_category":          "Risk Category",
		"low_risk":               "Low Risk",
		"medium_risk":            "Medium Risk",
		"high_risk":              "High Risk",
		"critical_risk":          "Critical Risk",

		"recommended_actions":          "Recommended Actions",
		"financial_products":           "Suitable Financial Products",
		"cost_optimization":            "Cost Optimization Opportunities",
		"working_capital_optimization": "Working Capital Optimization",
		"tax_compliance":               "Tax Compliance Status",
		"gst_compliance":               "GST Compliance",

		"working_capital_loan": "Working Capital Loan",
		"term_loan":            "Term Loan",
		"equipment_financing":  "Equipment Financing",
		"business_credit_card": "Business Credit Card",
		"invoice_discounting":  "Invoice Discounting",
		"trade_credit":         "Trade Credit Line",

		"compliant":     "Compliant",
		"non_compliant": "Non-Compliant",
		"delayed":       "Delayed",
		"eligible":      "Eligible",
		"not_eligible":  "Not Eligible",

		"upload_data":     "Upload Financial Data",
		"generate_report": "Generate Report",
		"download_report": "Download Report",
		"view_analysis":   "View Analysis",
		"submit":          "Submit",
		"cancel":          "Cancel",
		"next":            "Next",
		"previous":        "Previous",

		"success":        "Success",
		"error":          "Error",
		"warning":        "Warning",
		"info":           "Information",
		"loading":        "Loading...",
		"no_data":        "No data available",
		"invalid_input":  "Invalid input",
		"required_field": "This field is required",
	},

	Hindi: {
		"app_name":  "वित्तीय स्वास्थ्य मूल्यांकन उपकरण",
		"dashboard": "वित्तीय डैशबोर्ड",
		"report":    "वित्तीय रिपोर्ट",

		"home":            "होम",
		"analysis":        "विश्लेषण",
		"recommendations": "सिफारिशें",
		"reports":         "रिपोर्ट",
		"settings":        "सेटिंग्स",

		"annual_revenue":      "वार्षिक राजस्व",
		"total_expenses":      "कुल खर्च",
		"net_profit":          "शुद्ध लाभ",
		"total_assets":        "कुल संपत्ति",
		"total_liabilities":   "कुल देयताएं",
		"equity":              "इक्विटी",
		"current_assets":      "वर्तमान संपत्ति",
		"current_liabilities": "वर्तमान देयताएं",
		"working_capital":     "कार्यशील पूंजी",

		"current_ratio":     "वर्तमान अनुपात",
		"quick_ratio":       "त्वरित अनुपात",
		"debt_equity_ratio": "कर्ज-इक्विटी अनुपात",
		"profit_margin":     "लाभ मार्जिन",
		"roa":               "संपत्ति पर वापसी (ROA)",
		"roe":               "इक्विटी पर वापसी (ROE)",
		"asset_turnover":    "संपत्ति कारोबार अनुपात",
		"dscr":              "ऋण सेवा कवरेज अनुपात",

		"financial_health_score": "वित्तीय स्वास्थ्य स्कोर",
		"risk_category":          "जोखिम श्रेणी",
		"low_risk":               "कम जोखिम",
		"medium_risk":            "मध्यम जोखिम",
		"high_risk":              "उच्च जोखिम",
		"critical_risk":          "गंभीर जोखिम",

		"recommended_actions":          "अनुशंसित कार्य",
		"financial_products":           "उपयुक्त वित्तीय उत्पाद",
		"cost_optimization":            "लागत अनुकूलन अवसर",
		"working_capital_optimization": "कार्यशील पूंजी अनुकूलन",
		"tax_compliance":               "कर अनुपालन स्थिति",
		"gst_compliance":               "GST अनुपालन",

		"working_capital_loan": "कार्यशील पूंजी ऋण",
		"term_loan":            "अवधि ऋण",
		"equipment_financing":  "उपकरण वित्तपोषण",
		"business_credit_card": "व्यावसायिक क्रेडिट कार्ड",
		"invoice_discounting":  "चालान छूट",
		"trade_credit":         "व्यापार क्रेडिट",

		"compliant":     "अनुपालन",
		"non_compliant": "अनुपालन न होना",
		"delayed":       "देरी से",
		"eligible":      "पात्र",
		"not_eligible":  "अपात्र",

		"upload_data":     "वित्तीय डेटा अपलोड करें",
		"generate_report": "रिपोर्ट बनाएं",
		"download_report": "रिपोर्ट डाउनलोड करें",
		"view_analysis":   "विश्लेषण देखें",
		"submit":          "जमा करना",
		"cancel":          "रद्द करना",
		"next":            "अगला",
		"previous":        "पिछला",

		"success":        "सफलता",
		"error":          "त्रुटि",
		"warning":        "चेतावनी",
		"info":           "जानकारी",
		"loading":        "लोड हो रहा है...",
		"no_data":        "कोई डेटा उपलब्ध नहीं",
		"invalid_input":  "अमान्य इनपुट",
		"required_field": "यह फील्ड आवश्यक है",
	},
}
