package dto

import (
	"time"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
)

// SaveEstimateRequest prices an item and saves the result as an estimate or bill.
type SaveEstimateRequest struct {
	Kind          string       `json:"kind" binding:"omitempty,oneof=ESTIMATE BILL"`
	CustomerName  string       `json:"customerName" binding:"required,max=120"`
	CustomerPhone string       `json:"customerPhone" binding:"omitempty,max=20"`
	EstimateDate  string       `json:"estimateDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Quote         QuoteRequest `json:"quote"`
}

// ListEstimatesParams defines the query parameters for listing estimates.
type ListEstimatesParams struct {
	Kind      string `form:"kind" binding:"omitempty,oneof=ESTIMATE BILL"`
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ExportEstimatesParams defines the query parameters for the spreadsheet export.
type ExportEstimatesParams struct {
	Kind string `form:"kind" binding:"omitempty,oneof=ESTIMATE BILL"`
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// EstimateResponse defines the API representation of a saved estimate.
type EstimateResponse struct {
	EstimateID    string            `json:"estimateID"`
	Number        string            `json:"number"`
	Kind          string            `json:"kind"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone,omitempty"`
	EstimateDate  string            `json:"estimateDate"`
	ItemCode      string            `json:"itemCode"`
	ItemName      string            `json:"itemName"`
	GrossWeight   *string           `json:"grossWeight,omitempty"`
	Breakdown     BreakdownResponse `json:"breakdown"`
	CreatedAt     time.Time         `json:"createdAt"`
	CreatedBy     string            `json:"createdBy"`
}

// ListEstimatesResponse is a page of estimates.
type ListEstimatesResponse struct {
	Estimates []EstimateResponse `json:"estimates"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToEstimateResponse converts a domain.Estimate to its DTO.
func ToEstimateResponse(e *domain.Estimate) EstimateResponse {
	resp := EstimateResponse{
		EstimateID:    e.EstimateID,
		Number:        e.Number,
		Kind:          string(e.Kind),
		CustomerName:  e.CustomerName,
		CustomerPhone: e.CustomerPhone,
		EstimateDate:  e.EstimateDate.Format(DateLayout),
		ItemCode:      e.ItemCode,
		ItemName:      e.ItemName,
		Breakdown:     ToBreakdownResponse(&e.Breakdown),
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
	}
	if e.GrossWeight != nil {
		w := e.GrossWeight.String()
		resp.GrossWeight = &w
	}
	return resp
}

// ToListEstimateResponse converts estimates to their DTOs.
func ToListEstimateResponse(estimates []domain.Estimate) []EstimateResponse {
	responses := make([]EstimateResponse, len(estimates))
	for i := range estimates {
		responses[i] = ToEstimateResponse(&estimates[i])
	}
	return responses
}
