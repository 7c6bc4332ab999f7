package directory

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"legalaid/models"
	"legalaid/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImportSource describes one authoritative registry feed: its source tag, the
// listing kind it produces, the minimum column count, and the row parser.
type ImportSource struct {
	Tag       string
	Kind      string
	MinFields int
	parseRow  func(fields []string) (models.DirectoryListing, bool)
}

// BarCouncilSource is the bar council roll feed.
// Columns: barCouncilId,name,state,district,specialization,year
var BarCouncilSource = ImportSource{
	Tag:       models.SourceBarCouncil,
	Kind:      models.KindLawyer,
	MinFields: 5,
	parseRow:  parseBarCouncilRow,
}

// NGODarpanSource is the NGO Darpan registry feed.
// Columns: registrationNumber,name,state,district,specialization,contactPhone
var NGODarpanSource = ImportSource{
	Tag:       models.SourceNGODarpan,
	Kind:      models.KindNGO,
	MinFields: 6,
	parseRow:  parseNGODarpanRow,
}

func parseBarCouncilRow(fields []string) (models.DirectoryListing, bool) {
	entry := models.DirectoryListing{
		NaturalKey:     strings.TrimSpace(fields[0]),
		Name:           strings.TrimSpace(fields[1]),
		State:          strings.TrimSpace(fields[2]),
		District:       strings.TrimSpace(fields[3]),
		Specialization: strings.TrimSpace(fields[4]),
	}
	if entry.NaturalKey == "" || entry.Name == "" || entry.State == "" || entry.District == "" {
		return models.DirectoryListing{}, false
	}
	// Enrollment year column is optional in the roll snapshot.
	if len(fields) > 5 {
		if year, err := strconv.Atoi(strings.TrimSpace(fields[5])); err == nil && year > 0 {
			if exp := time.Now().Year() - year; exp > 0 {
				entry.ExperienceYears = exp
			}
		}
	}
	return entry, true
}

func parseNGODarpanRow(fields []string) (models.DirectoryListing, bool) {
	entry := models.DirectoryListing{
		NaturalKey:     strings.TrimSpace(fields[0]),
		Name:           strings.TrimSpace(fields[1]),
		State:          strings.TrimSpace(fields[2]),
		District:       strings.TrimSpace(fields[3]),
		Specialization: strings.TrimSpace(fields[4]),
		ContactPhone:   strings.TrimSpace(fields[5]),
	}
	if entry.NaturalKey == "" || entry.Name == "" || entry.State == "" || entry.District == "" {
		return models.DirectoryListing{}, false
	}
	return entry, true
}

// ImportBatch reads the delimited source line by line. The first line is a
// header. Rows failing the column-count or required-field checks are counted
// as skipped and never abort the batch; only a stream failure does.
func (s *DefaultDirectoryService) ImportBatch(ctx context.Context, source ImportSource, r io.Reader) (*models.ImportSummary, error) {
	logger := utils.GetLogger()
	if r == nil {
		return nil, SourceUnavailableError{Source: source.Tag, Err: io.ErrUnexpectedEOF}
	}

	summary := &models.ImportSummary{Source: source.Tag}
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

		// Split keeping empty trailing fields.
		fields := strings.Split(line, ",")
		if len(fields) < source.MinFields {
			summary.Skipped++
			continue
		}
		entry, ok := source.parseRow(fields)
		if !ok {
			summary.Skipped++
			continue
		}

		imported, err := s.upsertAuthoritative(source, &entry)
		if err != nil {
			logger.Warn("import row failed, continuing batch",
				zap.String("source", source.Tag),
				zap.String("naturalKey", entry.NaturalKey),
				zap.Error(err))
			summary.Skipped++
			continue
		}
		if imported {
			summary.Imported++
		} else {
			summary.Skipped++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, SourceUnavailableError{Source: source.Tag, Err: err}
	}

	logger.Info("batch import finished",
		zap.String("source", source.Tag),
		zap.Int("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped))
	return summary, nil
}

// upsertAuthoritative inserts one authoritative listing, or marks an existing
// listing for the same key as verified. Returns false when the row is an
// idempotent no-op.
func (s *DefaultDirectoryService) upsertAuthoritative(source ImportSource, entry *models.DirectoryListing) (bool, error) {
	existing, err := s.Listings.FindByKindAndKey(source.Kind, entry.NaturalKey)
	if err != nil {
		return false, err
	}

	if existing != nil {
		if existing.Source == source.Tag {
			// Re-import of the same authoritative file: nothing to do.
			return false, nil
		}
		if existing.Verified {
			return false, nil
		}
		// The key was already listed from another source (typically a
		// self-registration). Attest it instead of creating a duplicate.
		existing.Verified = true
		existing.UpdatedAt = time.Now().UTC()
		if err := s.Listings.Update(existing); err != nil {
			return false, err
		}
		s.reverifyProviders(source.Kind, entry.NaturalKey)
		return true, nil
	}

	now := time.Now().UTC()
	entry.ID = uuid.New().String()
	entry.Kind = source.Kind
	entry.Source = source.Tag
	entry.Verified = true  // authoritative sources attest by definition
	entry.Approved = false // admin approval still gates visibility
	entry.CreatedAt = now
	entry.UpdatedAt = now
	if err := s.Listings.Create(entry); err != nil {
		return false, err
	}

	s.reverifyProviders(source.Kind, entry.NaturalKey)
	return true, nil
}

// reverifyProviders marks already-registered providers whose natural key is
// now attested. The match is case-insensitive on this path. Failures are
// logged; they never abort the batch.
func (s *DefaultDirectoryService) reverifyProviders(kind, naturalKey string) {
	logger := utils.GetLogger()
	now := time.Now().UTC()

	switch kind {
	case models.KindLawyer:
		lawyers, err := s.Lawyers.FindByBarCouncilIDFold(naturalKey)
		if err != nil {
			logger.Warn("lawyer re-verification scan failed", zap.String("naturalKey", naturalKey), zap.Error(err))
			return
		}
		for i := range lawyers {
			l := lawyers[i]
			if l.Verified {
				continue
			}
			l.Verified = true
			l.UpdatedAt = now
			if err := s.Lawyers.Update(&l); err != nil {
				logger.Warn("failed to mark lawyer verified", zap.String("id", l.ID), zap.Error(err))
				continue
			}
			logger.Info("lawyer verified via authoritative import",
				zap.String("id", l.ID), zap.String("barCouncilId", l.BarCouncilID))
		}
	case models.KindNGO:
		ngos, err := s.NGOs.FindByRegistrationNumberFold(naturalKey)
		if err != nil {
			logger.Warn("ngo re-verification scan failed", zap.String("naturalKey", naturalKey), zap.Error(err))
			return
		}
		for i := range ngos {
			n := ngos[i]
			if n.Verified {
				continue
			}
			n.Verified = true
			n.UpdatedAt = now
			if err := s.NGOs.Update(&n); err != nil {
				logger.Warn("failed to mark ngo verified", zap.String("id", n.ID), zap.Error(err))
				continue
			}
			logger.Info("ngo verified via authoritative import",
				zap.String("id", n.ID), zap.String("registrationNumber", n.RegistrationNumber))
		}
	}
}
