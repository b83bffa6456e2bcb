package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/fieldhq/field_service_app/internal/core/domain"
	portssvc "github.com/fieldhq/field_service_app/internal/core/ports/services"
	"github.com/fieldhq/field_service_app/internal/core/services"
	"github.com/fieldhq/field_service_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockJobRepository is a mock type for the JobRepositoryFacade interface
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListJobs(ctx context.Context, afterID string, limit int) ([]domain.Job, error) {
	args := m.Called(ctx, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) Snapshot(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) CountJobs(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockJobRepository) SaveJob(ctx context.Context, job domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) ReplaceJob(ctx context.Context, job domain.Job, expectedVersion int) error {
	args := m.Called(ctx, job, expectedVersion)
	return args.Error(0)
}

// MockClientRepository is a mock type for the ClientReader interface
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, afterID string, limit int) ([]domain.Client, error) {
	args := m.Called(ctx, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByJobID(ctx context.Context, jobID string) (*domain.Invoice, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, afterID string, limit int) ([]domain.Invoice, error) {
	args := m.Called(ctx, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) CountInvoices(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

// --- Test Suite Setup ---

type JobServiceTestSuite struct {
	suite.Suite
	mockJobRepo     *MockJobRepository
	mockClientRepo  *MockClientRepository
	mockInvoiceRepo *MockInvoiceRepository
	service         portssvc.JobSvcFacade
}

func (suite *JobServiceTestSuite) SetupTest() {
	suite.mockJobRepo = new(MockJobRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.service = services.NewJobService(
		suite.mockJobRepo,
		suite.mockClientRepo,
		services.WithInvoiceRepository(suite.mockInvoiceRepo),
	)
}

func (suite *JobServiceTestSuite) testClient() *domain.Client {
	return &domain.Client{
		ClientID: "cl-1",
		Name:     "Margaret Okafor",
		Phone:    "(555) 010-2231",
	}
}

func (suite *JobServiceTestSuite) scheduledJob() *domain.Job {
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
			Note:      "Job created",
		}},
	}
}

// --- Test Cases ---

func (suite *JobServiceTestSuite) TestCreateJob_Success() {
	ctx := context.Background()
	req := dto.CreateJobRequest{
		ClientID:      "cl-1",
		Title:         "AC repair",
		Status:        "scheduled",
		ScheduledDate: "2024-06-01",
		Items: []dto.JobItemRequest{
			{Name: "Labor", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(75), Type: "service"},
			{Name: "Capacitor", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(50), Type: "part"},
		},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, "cl-1").Return(suite.testClient(), nil).Once()
	suite.mockJobRepo.On("CountJobs", ctx).Return(4, nil).Once()
	suite.mockJobRepo.On("SaveJob", ctx, mock.AnythingOfType("domain.Job")).Return(nil).Once()

	createdJob, err := suite.service.CreateJob(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdJob)
	suite.NotEmpty(createdJob.JobID)
	suite.Equal("JOB-0005", createdJob.JobNumber)
	suite.Equal("Margaret Okafor", createdJob.ClientName)
	suite.Equal(domain.JobStatusScheduled, createdJob.Status)
	suite.Equal(domain.PriorityMedium, createdJob.Priority)
	suite.Equal("200", createdJob.Total.String())
	suite.Equal("200", createdJob.Balance.String())
	suite.True(createdJob.Paid.IsZero())
	suite.Equal(domain.PaymentStatusUnpaid, createdJob.PaymentStatus)
	suite.Require().Len(createdJob.Timeline, 1)
	suite.Equal(domain.JobStatusScheduled, createdJob.Timeline[0].Status)
	suite.Require().Len(createdJob.Items, 2)
	suite.Equal("150", createdJob.Items[0].Total.String())

	suite.mockJobRepo.AssertExpectations(suite.T())
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *JobServiceTestSuite) TestCreateJob_TotalMismatch() {
	ctx := context.Background()
	req := dto.CreateJobRequest{
		ClientID:      "cl-1",
		Title:         "AC repair",
		Status:        "scheduled",
		ScheduledDate: "2024-06-01",
		Total:         decimal.NewFromInt(999),
		Items: []dto.JobItemRequest{
			{Name: "Labor", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(75), Type: "service"},
		},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, "cl-1").Return(suite.testClient(), nil).Once()

	createdJob, err := suite.service.CreateJob(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdJob)
	suite.ErrorIs(err, apperrors.ErrInvariantViolation)
	suite.mockJobRepo.AssertNotCalled(suite.T(), "SaveJob", mock.Anything, mock.Anything)
}

func (suite *JobServiceTestSuite) TestCreateJob_ClientNotFound() {
	ctx := context.Background()
	req := dto.CreateJobRequest{
		ClientID:      "missing",
		Title:         "AC repair",
		Status:        "scheduled",
		ScheduledDate: "2024-06-01",
	}

	suite.mockClientRepo.On("FindClientByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	createdJob, err := suite.service.CreateJob(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdJob)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JobServiceTestSuite) TestCreateJob_BadDate() {
	ctx := context.Background()
	req := dto.CreateJobRequest{
		ClientID:      "cl-1",
		Title:         "AC repair",
		Status:        "scheduled",
		ScheduledDate: "06/01/2024",
	}

	createdJob, err := suite.service.CreateJob(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdJob)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "FindClientByID", mock.Anything, mock.Anything)
}

func (suite *JobServiceTestSuite) TestAdvanceJobStatus_Success() {
	ctx := context.Background()
	job := suite.scheduledJob()

	suite.mockJobRepo.On("FindJobByID", ctx, "job-1").Return(job, nil).Once()
	suite.mockJobRepo.On("ReplaceJob", ctx, mock.AnythingOfType("domain.Job"), 1).Return(nil).Once()

	updated, err := suite.service.AdvanceJobStatus(ctx, "job-1", dto.AdvanceJobStatusRequest{
		Status: "en_route",
		Note:   "Heading out",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(domain.JobStatusEnRoute, updated.Status)
	suite.Len(updated.Timeline, 2)
	suite.Equal("Heading out", updated.Timeline[1].Note)

	suite.mockJobRepo.AssertExpectations(suite.T())
}

func (suite *JobServiceTestSuite) TestAdvanceJobStatus_InvalidTransition() {
	ctx := context.Background()
	job := suite.scheduledJob()

	suite.mockJobRepo.On("FindJobByID", ctx, "job-1").Return(job, nil).Once()

	updated, err := suite.service.AdvanceJobStatus(ctx, "job-1", dto.AdvanceJobStatusRequest{
		Status: "completed",
	})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockJobRepo.AssertNotCalled(suite.T(), "ReplaceJob", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JobServiceTestSuite) TestAdvanceJobStatus_ConcurrentConflict() {
	ctx := context.Background()
	job := suite.scheduledJob()

	suite.mockJobRepo.On("FindJobByID", ctx, "job-1").Return(job, nil).Once()
	suite.mockJobRepo.On("ReplaceJob", ctx, mock.AnythingOfType("domain.Job"), 1).Return(apperrors.ErrConflict).Once()

	updated, err := suite.service.AdvanceJobStatus(ctx, "job-1", dto.AdvanceJobStatusRequest{
		Status: "en_route",
	})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *JobServiceTestSuite) TestRecordPayment_PartialPayment() {
	ctx := context.Background()
	job := suite.scheduledJob()

	suite.mockJobRepo.On("FindJobByID", ctx, "job-1").Return(job, nil).Once()
	suite.mockJobRepo.On("ReplaceJob", ctx, mock.AnythingOfType("domain.Job"), 1).Return(nil).Once()

	updated, err := suite.service.RecordPayment(ctx, "job-1", dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(80),
		Method: "cash",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal("80", updated.Paid.String())
	suite.Equal("120", updated.Balance.String())
	suite.Equal(domain.PaymentStatusPartial, updated.PaymentStatus)
	suite.Require().Len(updated.Payments, 1)
	suite.Equal(domain.MethodCash, updated.Payments[0].Method)

	suite.mockJobRepo.AssertExpectations(suite.T())
}

func (suite *JobServiceTestSuite) TestRecordPayment_Overpayment() {
	ctx := context.Background()
	job := suite.scheduledJob()

	suite.mockJobRepo.On("FindJobByID", ctx, "job-1").Return(job, nil).Once()

	updated, err := suite.service.RecordPayment(ctx, "job-1", dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(500),
		Method: "card",
	})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrInvariantViolation)
	suite.mockJobRepo.AssertNotCalled(suite.T(), "ReplaceJob", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JobServiceTestSuite) TestRecordPayment_SettlesInvoice() {
	ctx := context.Background()
	job := suite.scheduledJob()
	invoice := &domain.Invoice{
		InvoiceID:     "inv-1",
		JobID:         "job-1",
		InvoiceNumber: "INV-0001",
		ClientID:      "cl-1",
		Amount:        decimal.NewFromInt(200),
		Paid:          decimal.Zero,
		Balance:       decimal.NewFromInt(200),
		Status:        domain.PaymentStatusUnpaid,
		CreatedAt:     time.Now(),
	}

	suite.mockJobRepo.On("FindJobByID", ctx, "job-1").Return(job, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(invoice, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Paid.Equal(decimal.NewFromInt(200)) && inv.Status == domain.PaymentStatusPaid
	})).Return(nil).Once()
	suite.mockJobRepo.On("ReplaceJob", ctx, mock.AnythingOfType("domain.Job"), 1).Return(nil).Once()

	updated, err := suite.service.RecordPayment(ctx, "job-1", dto.RecordPaymentRequest{
		Amount:    decimal.NewFromInt(200),
		Method:    "card",
		InvoiceID: "inv-1",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentStatusPaid, updated.PaymentStatus)

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockJobRepo.AssertExpectations(suite.T())
}

func (suite *JobServiceTestSuite) TestRecordPayment_ConflictLeavesInvoiceUntouched() {
	ctx := context.Background()
	job := suite.scheduledJob()
	invoice := &domain.Invoice{
		InvoiceID:     "inv-1",
		JobID:         "job-1",
		InvoiceNumber: "INV-0001",
		ClientID:      "cl-1",
		Amount:        decimal.NewFromInt(200),
		Paid:          decimal.Zero,
		Balance:       decimal.NewFromInt(200),
		Status:        domain.PaymentStatusUnpaid,
		CreatedAt:     time.Now(),
	}

	suite.mockJobRepo.On("FindJobByID", ctx, "job-1").Return(job, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(invoice, nil).Once()
	suite.mockJobRepo.On("ReplaceJob", ctx, mock.AnythingOfType("domain.Job"), 1).
		Return(apperrors.ErrConflict).Once()

	updated, err := suite.service.RecordPayment(ctx, "job-1", dto.RecordPaymentRequest{
		Amount:    decimal.NewFromInt(200),
		Method:    "card",
		InvoiceID: "inv-1",
	})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
	// A payment that never landed on the job must not settle the invoice.
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
}

func (suite *JobServiceTestSuite) TestRecordPayment_InvoiceFailureRestoresJob() {
	ctx := context.Background()
	job := suite.scheduledJob()
	invoice := &domain.Invoice{
		InvoiceID:     "inv-1",
		JobID:         "job-1",
		InvoiceNumber: "INV-0001",
		ClientID:      "cl-1",
		Amount:        decimal.NewFromInt(200),
		Paid:          decimal.Zero,
		Balance:       decimal.NewFromInt(200),
		Status:        domain.PaymentStatusUnpaid,
		CreatedAt:     time.Now(),
	}

	suite.mockJobRepo.On("FindJobByID", ctx, "job-1").Return(job, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(invoice, nil).Once()
	suite.mockJobRepo.On("ReplaceJob", ctx, mock.MatchedBy(func(j domain.Job) bool {
		return len(j.Payments) == 1
	}), 1).Return(nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoice", ctx, mock.AnythingOfType("domain.Invoice")).
		Return(assert.AnError).Once()
	// The job write is undone when the invoice cannot be settled.
	suite.mockJobRepo.On("ReplaceJob", ctx, mock.MatchedBy(func(j domain.Job) bool {
		return len(j.Payments) == 0
	}), 2).Return(nil).Once()

	updated, err := suite.service.RecordPayment(ctx, "job-1", dto.RecordPaymentRequest{
		Amount:    decimal.NewFromInt(200),
		Method:    "card",
		InvoiceID: "inv-1",
	})

	suite.Require().Error(err)
	suite.Nil(updated)

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockJobRepo.AssertExpectations(suite.T())
}

func (suite *JobServiceTestSuite) TestListJobs_ReturnsTokenOnFullPage() {
	ctx := context.Background()
	jobs := []domain.Job{*suite.scheduledJob(), *suite.scheduledJob()}
	jobs[1].JobID = "job-2"

	suite.mockJobRepo.On("ListJobs", ctx, "", 2).Return(jobs, nil).Once()

	page, token, err := suite.service.ListJobs(ctx, 2, "")

	suite.Require().NoError(err)
	suite.Len(page, 2)
	suite.NotEmpty(token)
}

func (suite *JobServiceTestSuite) TestListJobs_NoTokenOnShortPage() {
	ctx := context.Background()
	jobs := []domain.Job{*suite.scheduledJob()}

	suite.mockJobRepo.On("ListJobs", ctx, "", 20).Return(jobs, nil).Once()

	page, token, err := suite.service.ListJobs(ctx, 20, "")

	suite.Require().NoError(err)
	suite.Len(page, 1)
	suite.Empty(token)
}

func (suite *JobServiceTestSuite) TestListJobs_RejectsGarbageToken() {
	ctx := context.Background()

	page, token, err := suite.service.ListJobs(ctx, 20, "%%%not-base64%%%")

	suite.Require().Error(err)
	suite.Nil(page)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JobServiceTestSuite) TestListJobsOnDate_FiltersSchedule() {
	ctx := context.Background()
	june1 := domain.CalendarDate{Year: 2024, Month: time.June, Day: 1}
	other := *suite.scheduledJob()
	other.JobID = "job-2"
	other.ScheduledDate = domain.CalendarDate{Year: 2024, Month: time.June, Day: 2}

	suite.mockJobRepo.On("Snapshot", ctx).Return([]domain.Job{*suite.scheduledJob(), other}, nil).Once()

	jobs, err := suite.service.ListJobsOnDate(ctx, june1)

	suite.Require().NoError(err)
	suite.Require().Len(jobs, 1)
	suite.Equal("job-1", jobs[0].JobID)
}

func TestJobServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JobServiceTestSuite))
}
