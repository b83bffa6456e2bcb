package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/fieldhq/field_service_app/internal/core/domain"
	portssvc "github.com/fieldhq/field_service_app/internal/core/ports/services"
	"github.com/fieldhq/field_service_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JobService ---
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) GetJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobService) ListJobs(ctx context.Context, limit int, nextToken string) ([]domain.Job, string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.String(1), args.Error(2)
}

func (m *MockJobService) ListJobsOnDate(ctx context.Context, date domain.CalendarDate) ([]domain.Job, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobService) CreateJob(ctx context.Context, req dto.CreateJobRequest) (*domain.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobService) AdvanceJobStatus(ctx context.Context, jobID string, req dto.AdvanceJobStatusRequest) (*domain.Job, error) {
	args := m.Called(ctx, jobID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobService) RecordPayment(ctx context.Context, jobID string, req dto.RecordPaymentRequest) (*domain.Job, error) {
	args := m.Called(ctx, jobID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.JobSvcFacade = (*MockJobService)(nil)

// --- Test Suite ---
type JobHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockJobService *MockJobService
}

func (suite *JobHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	registerCustomValidators()
	suite.router = gin.New()
	suite.mockJobService = new(MockJobService)

	v1 := suite.router.Group("/api/v1")
	registerJobRoutes(v1, suite.mockJobService)
}

func (suite *JobHandlerTestSuite) testJob() *domain.Job {
	return &domain.Job{
		JobID:         "job-1",
		JobNumber:     "JOB-0001",
		ClientID:      "cl-1",
		ClientName:    "Margaret Okafor",
		Title:         "Furnace tune-up",
		Status:        domain.JobStatusScheduled,
		ScheduledDate: domain.CalendarDate{Year: 2024, Month: time.June, Day: 1},
		Total:         decimal.NewFromInt(200),
		Paid:          decimal.Zero,
		Balance:       decimal.NewFromInt(200),
		PaymentStatus: domain.PaymentStatusUnpaid,
		Timeline: []domain.JobTimelineEvent{{
			EventID:   "ev-1",
			Status:    domain.JobStatusScheduled,
			Timestamp: time.Date(2024, time.May, 28, 9, 0, 0, 0, time.UTC),
		}},
	}
}

// --- Test Cases ---

func (suite *JobHandlerTestSuite) TestGetJobByID_Success() {
	suite.mockJobService.On("GetJobByID", mock.Anything, "job-1").Return(suite.testJob(), nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/jobs/job-1", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.JobResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("job-1", resp.JobID)
	suite.Equal("scheduled", resp.Status)
	suite.Equal("2024-06-01", resp.ScheduledDate)
}

func (suite *JobHandlerTestSuite) TestGetJobByID_NotFound() {
	suite.mockJobService.On("GetJobByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/jobs/missing", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JobHandlerTestSuite) TestCreateJob_Success() {
	suite.mockJobService.On("CreateJob", mock.Anything, mock.AnythingOfType("dto.CreateJobRequest")).
		Return(suite.testJob(), nil).Once()

	body := `{"clientID":"cl-1","title":"Furnace tune-up","status":"scheduled","scheduledDate":"2024-06-01"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *JobHandlerTestSuite) TestCreateJob_RejectsUnknownStatus() {
	body := `{"clientID":"cl-1","title":"Furnace tune-up","status":"finished","scheduledDate":"2024-06-01"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	// Binding rejects statuses outside the two entry states.
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJobService.AssertNotCalled(suite.T(), "CreateJob", mock.Anything, mock.Anything)
}

func (suite *JobHandlerTestSuite) TestCreateJob_RejectsMalformedDate() {
	body := `{"clientID":"cl-1","title":"Furnace tune-up","status":"scheduled","scheduledDate":"06/01/2024"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJobService.AssertNotCalled(suite.T(), "CreateJob", mock.Anything, mock.Anything)
}

func (suite *JobHandlerTestSuite) TestAdvanceJobStatus_Conflict() {
	suite.mockJobService.On("AdvanceJobStatus", mock.Anything, "job-1", mock.AnythingOfType("dto.AdvanceJobStatusRequest")).
		Return(nil, apperrors.ErrInvalidTransition).Once()

	body := `{"status":"completed"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs/job-1/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *JobHandlerTestSuite) TestRecordPayment_Overpayment() {
	suite.mockJobService.On("RecordPayment", mock.Anything, "job-1", mock.AnythingOfType("dto.RecordPaymentRequest")).
		Return(nil, apperrors.ErrInvariantViolation).Once()

	body := `{"amount":"500","method":"card"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs/job-1/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *JobHandlerTestSuite) TestListJobs_WithDateFilter() {
	june1 := domain.CalendarDate{Year: 2024, Month: time.June, Day: 1}
	suite.mockJobService.On("ListJobsOnDate", mock.Anything, june1).
		Return([]domain.Job{*suite.testJob()}, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/jobs?date=2024-06-01", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListJobsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Jobs, 1)
	suite.Empty(resp.NextToken)
}

func (suite *JobHandlerTestSuite) TestListJobs_BadDate() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/jobs?date=June-1st", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJobService.AssertNotCalled(suite.T(), "ListJobsOnDate", mock.Anything, mock.Anything)
}

func (suite *JobHandlerTestSuite) TestListJobs_Paginated() {
	suite.mockJobService.On("ListJobs", mock.Anything, 20, "").
		Return([]domain.Job{*suite.testJob()}, "tok-next", nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListJobsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("tok-next", resp.NextToken)
}

func TestJobHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JobHandlerTestSuite))
}
