package admin

import (
	"context"
	"io"

	lawyerRepo "legalaid/database/repository/lawyer"
	ngoRepo "legalaid/database/repository/ngo"
	"legalaid/models"
	"legalaid/services/directory"

	"github.com/hibiken/asynq"
)

// TaskTypeDirectoryImport is the asynq task consumed by the background
// import worker.
const TaskTypeDirectoryImport = "directory:import"

// ImportTaskPayload addresses one authoritative source for a background run.
type ImportTaskPayload struct {
	Source string `json:"source"`
}

// AdminService exposes the administrative surface: approval, pending review,
// and the authoritative-registry import triggers.
type AdminService interface {
	GetPendingLawyers() ([]models.Lawyer, error)
	GetPendingNGOs() ([]models.NGO, error)
	ApproveLawyer(ctx context.Context, id string) error
	ApproveNGO(ctx context.Context, id string) error

	// ImportSource runs one bundled authoritative snapshot synchronously.
	ImportSource(ctx context.Context, sourceTag string) (*models.ImportSummary, error)
	// ImportUploaded runs an admin-uploaded authoritative file; accepted
	// identically to the bundled snapshots.
	ImportUploaded(ctx context.Context, sourceTag string, r io.Reader) (*models.ImportSummary, error)
	// EnqueueImport schedules a background import so the triggering request
	// is not held open.
	EnqueueImport(sourceTag string) error
	// UploadDirectoryCSV ingests a manual INTERNAL-source CSV.
	UploadDirectoryCSV(r io.Reader) (*models.ImportSummary, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Lawyers   lawyerRepo.LawyerRepository
	NGOs      ngoRepo.NGORepository
	Directory directory.DirectoryService

	// TaskClient, when set, enables background import scheduling.
	TaskClient *asynq.Client
}
