package models

import "strings"

// Represents a lead captured from a landing page form, bound from JSON, form or query values
type LeadRequest struct {
	Phone       string `json:"phone" form:"phone"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`
	Name        string `json:"name" form:"name"`
	CaseType    string `json:"case_type" form:"case_type"`
	LandingPage string `json:"landing_page" form:"landing_page"`
	UTMSource   string `json:"utm_source" form:"utm_source"`
	UTMCampaign string `json:"utm_campaign" form:"utm_campaign"`
}

// PhoneValue returns the first non-blank phone field
func (l LeadRequest) PhoneValue() string {
	if phone := strings.TrimSpace(l.Phone); phone != "" {
		return phone
	}
	return strings.TrimSpace(l.PhoneNumber)
}

// FillMissing copies values from fallback into fields l leaves empty
func (l *LeadRequest) FillMissing(fallback LeadRequest) {
	fill := func(dst *string, src string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = src
		}
	}

	// Body phone fields win over both query phone fields
	if l.PhoneValue() == "" {
		l.Phone = fallback.Phone
		l.PhoneNumber = fallback.PhoneNumber
	}
	fill(&l.Name, fallback.Name)
	fill(&l.CaseType, fallback.CaseType)
	fill(&l.LandingPage, fallback.LandingPage)
	fill(&l.UTMSource, fallback.UTMSource)
	fill(&l.UTMCampaign, fallback.UTMCampaign)
}
