package models

import "github.com/rpgo/pillar-calculator/internal/domain"

// ProjectionResponse represents the response of a single projection
type ProjectionResponse struct {
	Rows       domain.ProjectionSeries `json:"rows"`
	FinalValue float64                 `json:"final_value"`
}

// CompareResponse represents the response of a comparison
type CompareResponse struct {
	Comparison *domain.Comparison `json:"comparison"`
	Display    DisplaySummary     `json:"display"`
}

// DisplaySummary holds grouped whole amounts ready to print.
type DisplaySummary struct {
	Direct     string   `json:"direct"`  // "CHF 1,734,334"
	Account    string   `json:"account"` // after final taxes
	Winner     string   `json:"winner"`
	Conclusion []string `json:"conclusion"`
}

// FormatsResponse lists the report formats
type FormatsResponse struct {
	Formats []string `json:"formats"`
	Aliases []string `json:"aliases"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SensitivityResponse lists the outcome per market return
type SensitivityResponse struct {
	Points []domain.SensitivityPoint `json:"points"`
}
