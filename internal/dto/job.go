package dto

import (
	"time"

	"github.com/fieldhq/field_service_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JobItemRequest defines one line item on a new job or estimate. Total is
// computed server-side as quantity x price.
type JobItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=service part"`
}

// CreateJobRequest defines the data needed to create a new job. The job
// arrives fully formed; the server assigns the ID, job number and the initial
// timeline event.
type CreateJobRequest struct {
	ClientID    string `json:"clientID" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	// Status must be one of the two entry states.
	Status   string `json:"status" binding:"required,oneof=scheduled estimate"`
	Priority string `json:"priority" binding:"omitempty,oneof=low medium high"`

	ScheduledDate     string `json:"scheduledDate" binding:"required,calendardate"` // YYYY-MM-DD
	ScheduledTime     string `json:"scheduledTime"`
	ScheduledEndTime  string `json:"scheduledEndTime"`
	EstimatedDuration int    `json:"estimatedDuration" binding:"omitempty,min=0"`

	TechnicianID   string `json:"technicianID"`
	TechnicianName string `json:"technicianName"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`

	Items []JobItemRequest `json:"items"`
	// Total is required when no items are given; with items it must either
	// be omitted (zero) or agree with the item totals.
	Total decimal.Decimal `json:"total"`

	Tags        []string `json:"tags"`
	ServicePlan string   `json:"servicePlan"`
	Notes       string   `json:"notes"`
}

// AdvanceJobStatusRequest asks for a single lifecycle transition.
type AdvanceJobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled en_route in_progress completed cancelled"`
	Note   string `json:"note"`
}

// RecordPaymentRequest defines the data needed to record a payment against a job.
type RecordPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Method        string          `json:"method" binding:"required,oneof=cash check card other"`
	InvoiceID     string          `json:"invoiceID"`
	TransactionID string          `json:"transactionID"`
	Notes         string          `json:"notes"`
}

// TimelineEventResponse defines the data returned for a timeline event.
type TimelineEventResponse struct {
	EventID   string    `json:"eventID"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// JobItemResponse defines the data returned for a line item.
type JobItemResponse struct {
	ItemID      string          `json:"itemID"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
	Type        string          `json:"type"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	JobID         string          `json:"jobID"`
	InvoiceID     string          `json:"invoiceID,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transactionID,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
	Notes         string          `json:"notes,omitempty"`
}

// JobResponse defines the data returned for a job.
type JobResponse struct {
	JobID             string                  `json:"jobID"`
	JobNumber         string                  `json:"jobNumber"`
	ClientID          string                  `json:"clientID"`
	ClientName        string                  `json:"clientName"`
	ClientPhone       string                  `json:"clientPhone,omitempty"`
	Title             string                  `json:"title"`
	Description       string                  `json:"description,omitempty"`
	Status            string                  `json:"status"`
	Priority          string                  `json:"priority,omitempty"`
	ScheduledDate     string                  `json:"scheduledDate"`
	ScheduledTime     string                  `json:"scheduledTime,omitempty"`
	ScheduledEndTime  string                  `json:"scheduledEndTime,omitempty"`
	EstimatedDuration int                     `json:"estimatedDuration,omitempty"`
	TechnicianID      string                  `json:"technicianID,omitempty"`
	TechnicianName    string                  `json:"technicianName,omitempty"`
	Address           string                  `json:"address,omitempty"`
	City              string                  `json:"city,omitempty"`
	State             string                  `json:"state,omitempty"`
	Zip               string                  `json:"zip,omitempty"`
	Total             decimal.Decimal         `json:"total"`
	Paid              decimal.Decimal         `json:"paid"`
	Balance           decimal.Decimal         `json:"balance"`
	PaymentStatus     string                  `json:"paymentStatus"`
	InvoiceNumber     string                  `json:"invoiceNumber,omitempty"`
	Items             []JobItemResponse       `json:"items,omitempty"`
	Payments          []PaymentResponse       `json:"payments,omitempty"`
	Tags              []string                `json:"tags,omitempty"`
	ServicePlan       string                  `json:"servicePlan,omitempty"`
	Notes             string                  `json:"notes,omitempty"`
	Timeline          []TimelineEventResponse `json:"timeline"`
}

// ListJobsResponse is a page of jobs plus the cursor for the next page.
type ListJobsResponse struct {
	Jobs      []JobResponse `json:"jobs"`
	NextToken string        `json:"nextToken,omitempty"`
}

// ToJobResponse converts a domain.Job to a JobResponse DTO.
func ToJobResponse(job *domain.Job) JobResponse {
	resp := JobResponse{
		JobID:             job.JobID,
		JobNumber:         job.JobNumber,
		ClientID:          job.ClientID,
		ClientName:        job.ClientName,
		ClientPhone:       job.ClientPhone,
		Title:             job.Title,
		Description:       job.Description,
		Status:            string(job.Status),
		Priority:          string(job.Priority),
		ScheduledDate:     job.ScheduledDate.String(),
		ScheduledTime:     job.ScheduledTime,
		ScheduledEndTime:  job.ScheduledEndTime,
		EstimatedDuration: job.EstimatedDuration,
		TechnicianID:      job.TechnicianID,
		TechnicianName:    job.TechnicianName,
		Address:           job.Address,
		City:              job.City,
		State:             job.State,
		Zip:               job.Zip,
		Total:             job.Total,
		Paid:              job.Paid,
		Balance:           job.Balance,
		PaymentStatus:     string(job.PaymentStatus),
		InvoiceNumber:     job.InvoiceNumber,
		Tags:              job.Tags,
		ServicePlan:       job.ServicePlan,
		Notes:             job.Notes,
	}
	for _, item := range job.Items {
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
	for _, p := range job.Payments {
		resp.Payments = append(resp.Payments, ToPaymentResponse(p))
	}
	for _, ev := range job.Timeline {
		resp.Timeline = append(resp.Timeline, TimelineEventResponse{
			EventID:   ev.EventID,
			Status:    string(ev.Status),
			Timestamp: ev.Timestamp,
			Note:      ev.Note,
		})
	}
	return resp
}

// ToPaymentResponse converts a domain.Payment to a PaymentResponse DTO.
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		JobID:         p.JobID,
		InvoiceID:     p.InvoiceID,
		Amount:        p.Amount,
		Method:        string(p.Method),
		TransactionID: p.TransactionID,
		Timestamp:     p.Timestamp,
		Notes:         p.Notes,
	}
}

// ToJobResponses converts a slice of domain.Job to []JobResponse.
func ToJobResponses(jobs []domain.Job) []JobResponse {
	responses := make([]JobResponse, len(jobs))
	for i := range jobs {
		responses[i] = ToJobResponse(&jobs[i])
	}
	return responses
}
