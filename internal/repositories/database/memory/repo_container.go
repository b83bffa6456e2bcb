package memory

// RepositoryContainer holds all in-memory repositories backing the service
// layer. The catalogs live for the process lifetime; persistence is out of
// scope for this system.
type RepositoryContainer struct {
	Job      *JobRepository
	Client   *ClientRepository
	Estimate *EstimateRepository
	Invoice  *InvoiceRepository
	Message  *MessageRepository
}

// NewRepositoryContainer creates empty repositories for every catalog.
func NewRepositoryContainer() *RepositoryContainer {
	return &RepositoryContainer{
		Job:      NewJobRepository(),
		Client:   NewClientRepository(),
		Estimate: NewEstimateRepository(),
		Invoice:  NewInvoiceRepository(),
		Message:  NewMessageRepository(),
	}
}
