package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"legalaid/config"
	"legalaid/models"
	"legalaid/services/directory"
	"legalaid/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Bundled snapshot filenames under IMPORT_DATA_DIR.
const (
	barCouncilFile = "bar_council_data.csv"
	ngoDarpanFile  = "ngo_darpan_data.csv"
)

func (a *DefaultAdminService) GetPendingLawyers() ([]models.Lawyer, error) {
	return a.Lawyers.GetPending()
}

func (a *DefaultAdminService) GetPendingNGOs() ([]models.NGO, error) {
	return a.NGOs.GetPending()
}

func (a *DefaultAdminService) ApproveLawyer(ctx context.Context, id string) error {
	return a.Directory.ApproveLawyer(ctx, id)
}

func (a *DefaultAdminService) ApproveNGO(ctx context.Context, id string) error {
	return a.Directory.ApproveNGO(ctx, id)
}

// sourceFor maps a source tag to its feed definition and bundled filename.
func sourceFor(sourceTag string) (directory.ImportSource, string, error) {
	switch sourceTag {
	case models.SourceBarCouncil:
		return directory.BarCouncilSource, barCouncilFile, nil
	case models.SourceNGODarpan:
		return directory.NGODarpanSource, ngoDarpanFile, nil
	default:
		return directory.ImportSource{}, "", fmt.Errorf("unknown import source %q", sourceTag)
	}
}

// ImportSource opens the bundled snapshot for the source and runs the batch.
// Nothing commits if the file cannot be opened.
func (a *DefaultAdminService) ImportSource(ctx context.Context, sourceTag string) (*models.ImportSummary, error) {
	source, filename, err := sourceFor(sourceTag)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(config.AppConfig.ImportDataDir, filename)
	f, err := os.Open(path)
	if err != nil {
		return nil, directory.SourceUnavailableError{Source: sourceTag, Err: err}
	}
	defer f.Close()

	return a.Directory.ImportBatch(ctx, source, f)
}

// ImportUploaded runs an admin-uploaded file through the same batch path as
// the bundled snapshots.
func (a *DefaultAdminService) ImportUploaded(ctx context.Context, sourceTag string, r io.Reader) (*models.ImportSummary, error) {
	source, _, err := sourceFor(sourceTag)
	if err != nil {
		return nil, err
	}
	return a.Directory.ImportBatch(ctx, source, r)
}

// EnqueueImport hands the import to the background worker.
func (a *DefaultAdminService) EnqueueImport(sourceTag string) error {
	if a.TaskClient == nil {
		return fmt.Errorf("background imports are not configured")
	}
	if _, _, err := sourceFor(sourceTag); err != nil {
		return err
	}

	payload, err := json.Marshal(ImportTaskPayload{Source: sourceTag})
	if err != nil {
		return fmt.Errorf("failed to marshal import task: %w", err)
	}
	task := asynq.NewTask(TaskTypeDirectoryImport, payload)
	info, err := a.TaskClient.Enqueue(task)
	if err != nil {
		return fmt.Errorf("failed to enqueue import task: %w", err)
	}
	utils.GetLogger().Info("queued directory import",
		zap.String("source", sourceTag),
		zap.String("taskId", info.ID))
	return nil
}

func (a *DefaultAdminService) UploadDirectoryCSV(r io.Reader) (*models.ImportSummary, error) {
	return a.Directory.UploadInternalCSV(r)
}
