package directory

import (
	"bufio"
	"io"
	"strings"
	"time"

	"legalaid/models"
	"legalaid/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadInternalCSV ingests an admin-uploaded CSV of manual directory entries.
// Columns: name,type,specialization,state,district,phone. Entries carry source
// INTERNAL, no natural key, and stay unverified and unapproved.
func (s *DefaultDirectoryService) UploadInternalCSV(r io.Reader) (*models.ImportSummary, error) {
	if r == nil {
		return nil, SourceUnavailableError{Source: models.SourceInternal, Err: io.ErrUnexpectedEOF}
	}

	summary := &models.ImportSummary{Source: models.SourceInternal}
	scanner := bufio.NewScanner(r)
	header := true

	for scanner.Scan() {
		line := scanner.Text()
		if header {
			header = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 6 {
			summary.Skipped++
			continue
		}

		name := strings.TrimSpace(fields[0])
		kind := strings.ToUpper(strings.TrimSpace(fields[1]))
		specialization := strings.TrimSpace(fields[2])
		state := strings.TrimSpace(fields[3])
		district := strings.TrimSpace(fields[4])
		phone := strings.TrimSpace(fields[5])

		if name == "" || state == "" || district == "" {
			summary.Skipped++
			continue
		}
		if kind != models.KindLawyer && kind != models.KindNGO {
			summary.Skipped++
			continue
		}

		now := time.Now().UTC()
		entry := models.DirectoryListing{
			ID:             uuid.New().String(),
			Kind:           kind,
			Source:         models.SourceInternal,
			Name:           name,
			Specialization: specialization,
			State:          state,
			District:       district,
			ContactPhone:   phone,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.Listings.Create(&entry); err != nil {
			utils.GetLogger().Warn("failed to store internal entry, continuing", zap.String("name", name), zap.Error(err))
			summary.Skipped++
			continue
		}
		summary.Imported++
	}

	if err := scanner.Err(); err != nil {
		return nil, SourceUnavailableError{Source: models.SourceInternal, Err: err}
	}
	return summary, nil
}
