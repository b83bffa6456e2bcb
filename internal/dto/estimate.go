package dto

import (
	"time"

	"github.com/fieldhq/field_service_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEstimateRequest defines the data needed to create a new estimate.
// Subtotal and total are computed server-side from the items, discount and tax.
type CreateEstimateRequest struct {
	ClientID   string           `json:"clientID" binding:"required"`
	Title      string           `json:"title" binding:"required"`
	Items      []JobItemRequest `json:"items" binding:"required,min=1"`
	Discount   decimal.Decimal  `json:"discount"`
	Tax        decimal.Decimal  `json:"tax"`
	ValidUntil time.Time        `json:"validUntil" binding:"required"`
}

// UpdateEstimateStatusRequest moves an estimate through its approval flow.
type UpdateEstimateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent approved rejected"`
}

// ConvertEstimateRequest schedules the job created from an approved estimate.
type ConvertEstimateRequest struct {
	ScheduledDate string `json:"scheduledDate" binding:"required,calendardate"` // YYYY-MM-DD
	ScheduledTime string `json:"scheduledTime"`
}

// EstimateResponse defines the data returned for an estimate.
type EstimateResponse struct {
	EstimateID     string            `json:"estimateID"`
	ClientID       string            `json:"clientID"`
	ClientName     string            `json:"clientName"`
	Title          string            `json:"title"`
	Status         string            `json:"status"`
	Items          []JobItemResponse `json:"items,omitempty"`
	Subtotal       decimal.Decimal   `json:"subtotal"`
	Discount       decimal.Decimal   `json:"discount"`
	Tax            decimal.Decimal   `json:"tax"`
	Total          decimal.Decimal   `json:"total"`
	CreatedAt      time.Time         `json:"createdAt"`
	ValidUntil     time.Time         `json:"validUntil"`
	ConvertedJobID string            `json:"convertedJobID,omitempty"`
}

// ListEstimatesResponse is a page of estimates plus the cursor for the next page.
type ListEstimatesResponse struct {
	Estimates []EstimateResponse `json:"estimates"`
	NextToken string             `json:"nextToken,omitempty"`
}

// ToEstimateResponse converts a domain.Estimate to an EstimateResponse DTO.
func ToEstimateResponse(e *domain.Estimate) EstimateResponse {
	resp := EstimateResponse{
		EstimateID:     e.EstimateID,
		ClientID:       e.ClientID,
		ClientName:     e.ClientName,
		Title:          e.Title,
		Status:         string(e.Status),
		Subtotal:       e.Subtotal,
		Discount:       e.Discount,
		Tax:            e.Tax,
		Total:          e.Total,
		CreatedAt:      e.CreatedAt,
		ValidUntil:     e.ValidUntil,
		ConvertedJobID: e.ConvertedJobID,
	}
	for _, item := range e.Items {
		resp.Items = append(resp.Items, JobItemResponse{
			ItemID:      item.ItemID,
			Name:        item.Name,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Total,
			Type:        string(item.Type),
		})
	}
	return resp
}

// ToEstimateResponses converts a slice of domain.Estimate to []EstimateResponse.
func ToEstimateResponses(estimates []domain.Estimate) []EstimateResponse {
	responses := make([]EstimateResponse, len(estimates))
	for i := range estimates {
		responses[i] = ToEstimateResponse(&estimates[i])
	}
	return responses
}
