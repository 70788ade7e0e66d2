// Package model defines the aggregated company record persisted by the
// service.
package model

import "time"

// Stats is the fixed set of figures extracted from the statistics page.
// String fields keep whatever token the page exposed ("$246.4M", "-44%").
type Stats struct {
	AnnualRevenue      string `json:"annual revenue" bson:"annual_revenue"`
	VentureFunding     string `json:"venture funding" bson:"venture_funding"`
	RevenuePerEmployee string `json:"revenue per employee" bson:"revenue_per_employee"`
	TotalFunding       string `json:"total funding" bson:"total_funding"`
	CurrentValuation   string `json:"current valuation" bson:"current_valuation"`
	EmployeeCount      string `json:"employee count" bson:"employee_count"`
	Investors          int    `json:"investors" bson:"investors"`
	Industry           string `json:"industry" bson:"industry"`
}

// Company is the unit of output of one aggregation call. It is built once
// by the orchestrator and never mutated afterwards; CreatedAt/UpdatedAt are
// stamped at the persistence boundary, not by the pipeline.
type Company struct {
	Company     string              `json:"company" bson:"company"`
	Description string              `json:"description" bson:"description"`
	Country     string              `json:"country" bson:"country"`
	Info        map[string]string   `json:"company_info" bson:"company_info"`
	Fixed       Stats               `json:"company_info_fixed" bson:"company_info_fixed"`
	Competitors map[string][]string `json:"competitors" bson:"competitors"`
	Funding     map[string][]string `json:"funding" bson:"funding"`
	CreatedAt   time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at" bson:"updated_at"`
}
