package dto

// ExtractedFields mirrors the JSON object the extraction prompt asks the
// model for. Pointers distinguish "absent" from zero values.
type ExtractedFields struct {
	VendorName        string   `json:"vendor_name"`
	Products          []string `json:"products"`
	EffectiveDate     *string  `json:"effective_date"`
	EndDate           *string  `json:"end_date"`
	AutoRenews        bool     `json:"auto_renews"`
	RenewalTermMonths *int     `json:"renewal_term_months"`
	NoticePeriodDays  *int     `json:"notice_period_days"`
	InitialTermMonths *int     `json:"initial_term_months"`
}
