// Package seed loads a fixture catalog into the in-memory repositories on
// startup, so the API serves a realistic data set without a database.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fieldhq/field_service_app/internal/core/domain"
	"github.com/fieldhq/field_service_app/internal/repositories/database/memory"
)

//go:embed fixtures.json
var embeddedFixtures []byte

// Catalog is the shape of a seed fixture file.
type Catalog struct {
	Users     []domain.User          `json:"users"`
	Clients   []domain.Client        `json:"clients"`
	Jobs      []domain.Job           `json:"jobs"`
	Estimates []domain.Estimate      `json:"estimates"`
	Invoices  []domain.Invoice       `json:"invoices"`
	Threads   []domain.MessageThread `json:"threads"`
	Messages  []domain.Message       `json:"messages"`
}

// Load parses the fixture catalog. A non-empty path overrides the embedded
// fixtures with a file on disk.
func Load(path string) (*Catalog, error) {
	data := embeddedFixtures
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading seed file %s: %w", path, err)
		}
		data = fileData
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing seed catalog: %w", err)
	}
	return &catalog, nil
}

// Apply validates every seeded entity and saves it into the repositories.
// Seed data is trusted input, but a fixture that breaks a domain invariant
// should fail startup rather than poison the dashboard numbers.
func (cat *Catalog) Apply(ctx context.Context, repos *memory.RepositoryContainer) error {
	team := make(map[string]domain.User, len(cat.Users))
	for _, user := range cat.Users {
		team[user.UserID] = user
	}

	for _, client := range cat.Clients {
		if err := repos.Client.SaveClient(ctx, client); err != nil {
			return fmt.Errorf("seeding client %s: %w", client.ClientID, err)
		}
	}
	for _, job := range cat.Jobs {
		if job.TechnicianID != "" {
			tech, ok := team[job.TechnicianID]
			if !ok {
				return fmt.Errorf("seed job %s references unknown technician %s", job.JobID, job.TechnicianID)
			}
			if job.TechnicianName == "" {
				job.TechnicianName = tech.Name
			}
		}
		if err := job.Validate(); err != nil {
			return fmt.Errorf("seed job %s is invalid: %w", job.JobID, err)
		}
		if err := repos.Job.SaveJob(ctx, job); err != nil {
			return fmt.Errorf("seeding job %s: %w", job.JobID, err)
		}
	}
	for _, estimate := range cat.Estimates {
		if err := estimate.Validate(); err != nil {
			return fmt.Errorf("seed estimate %s is invalid: %w", estimate.EstimateID, err)
		}
		if err := repos.Estimate.SaveEstimate(ctx, estimate); err != nil {
			return fmt.Errorf("seeding estimate %s: %w", estimate.EstimateID, err)
		}
	}
	for _, invoice := range cat.Invoices {
		if err := invoice.Validate(); err != nil {
			return fmt.Errorf("seed invoice %s is invalid: %w", invoice.InvoiceID, err)
		}
		if err := repos.Invoice.SaveInvoice(ctx, invoice); err != nil {
			return fmt.Errorf("seeding invoice %s: %w", invoice.InvoiceID, err)
		}
	}
	// Threads first; SaveMessage rebuilds each thread's summary and unread
	// count from the messages as they land.
	for _, thread := range cat.Threads {
		if err := repos.Message.SaveThread(ctx, thread); err != nil {
			return fmt.Errorf("seeding thread %s: %w", thread.ThreadID, err)
		}
	}
	for _, message := range cat.Messages {
		if err := repos.Message.SaveMessage(ctx, message); err != nil {
			return fmt.Errorf("seeding message %s: %w", message.MessageID, err)
		}
	}
	return nil
}
