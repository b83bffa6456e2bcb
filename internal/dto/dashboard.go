package dto

import (
	"github.com/fieldhq/field_service_app/internal/core/domain"
	"github.com/fieldhq/field_service_app/internal/utils"
	"github.com/shopspring/decimal"
)

// DashboardSummaryResponse is the KPI record for one reference date. Monetary
// metrics carry both the raw decimal and a pre-formatted display string.
type DashboardSummaryResponse struct {
	Date            string          `json:"date"`
	Jobs            int             `json:"jobs"`
	Revenue         decimal.Decimal `json:"revenue"`
	RevenueDisplay  string          `json:"revenueDisplay"`
	Sales           decimal.Decimal `json:"sales"`
	SalesDisplay    string          `json:"salesDisplay"`
	Payments        decimal.Decimal `json:"payments"`
	PaymentsDisplay string          `json:"paymentsDisplay"`
	Estimates       int             `json:"estimates"`
	JobsUndone      int             `json:"jobsUndone"`
}

// TodoItemResponse defines one actionable dashboard entry.
type TodoItemResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	Count  int    `json:"count"`
}

// ToDashboardSummaryResponse converts a domain.DashboardSummary to its DTO.
func ToDashboardSummaryResponse(s domain.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		Date:            s.Date.String(),
		Jobs:            s.Jobs,
		Revenue:         s.Revenue,
		RevenueDisplay:  utils.FormatMoney(s.Revenue),
		Sales:           s.Sales,
		SalesDisplay:    utils.FormatMoney(s.Sales),
		Payments:        s.Payments,
		PaymentsDisplay: utils.FormatMoney(s.Payments),
		Estimates:       s.Estimates,
		JobsUndone:      s.JobsUndone,
	}
}

// ToTodoItemResponses converts domain to-do items to their DTOs.
func ToTodoItemResponses(items []domain.TodoItem) []TodoItemResponse {
	responses := make([]TodoItemResponse, len(items))
	for i, item := range items {
		responses[i] = TodoItemResponse{Title: item.Title, Detail: item.Detail, Count: item.Count}
	}
	return responses
}
