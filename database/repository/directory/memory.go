package directoryRepo

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"legalaid/models"
)

// MemoryDirectoryRepo is an in-memory DirectoryRepository used in tests and
// local development. Entries keep insertion order so pagination is stable.
type MemoryDirectoryRepo struct {
	mu      sync.RWMutex
	entries []models.DirectoryListing

	// Shared stores for the transactional pair writes.
	lawyers *MemoryLawyerStore
	ngos    *MemoryNGOStore
}

// MemoryLawyerStore holds lawyer records for the in-memory pair writes.
type MemoryLawyerStore struct {
	mu      sync.RWMutex
	Records map[string]models.Lawyer
}

// MemoryNGOStore holds NGO records for the in-memory pair writes.
type MemoryNGOStore struct {
	mu      sync.RWMutex
	Records map[string]models.NGO
}

func NewMemoryLawyerStore() *MemoryLawyerStore {
	return &MemoryLawyerStore{Records: make(map[string]models.Lawyer)}
}

func NewMemoryNGOStore() *MemoryNGOStore {
	return &MemoryNGOStore{Records: make(map[string]models.NGO)}
}

// Snapshot returns a copy of all lawyer records.
func (s *MemoryLawyerStore) Snapshot() []models.Lawyer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Lawyer, 0, len(s.Records))
	for _, l := range s.Records {
		out = append(out, l)
	}
	return out
}

func (s *MemoryLawyerStore) Put(l models.Lawyer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Records[l.ID] = l
}

func (s *MemoryLawyerStore) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.Records[id]
	return ok
}

func (s *MemoryLawyerStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Records, id)
}

// Snapshot returns a copy of all NGO records.
func (s *MemoryNGOStore) Snapshot() []models.NGO {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.NGO, 0, len(s.Records))
	for _, n := range s.Records {
		out = append(out, n)
	}
	return out
}

func (s *MemoryNGOStore) Put(n models.NGO) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Records[n.ID] = n
}

func (s *MemoryNGOStore) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.Records[id]
	return ok
}

func (s *MemoryNGOStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Records, id)
}

// NewMemoryDirectoryRepo creates an in-memory DirectoryRepository sharing the
// given provider stores.
func NewMemoryDirectoryRepo(lawyers *MemoryLawyerStore, ngos *MemoryNGOStore) *MemoryDirectoryRepo {
	return &MemoryDirectoryRepo{lawyers: lawyers, ngos: ngos}
}

func (r *MemoryDirectoryRepo) GetByID(id string) (*models.DirectoryListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.entries {
		if r.entries[i].ID == id {
			e := r.entries[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *MemoryDirectoryRepo) FindByKindAndKey(kind, naturalKey string) (*models.DirectoryListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.entries {
		if r.entries[i].Kind == kind && r.entries[i].NaturalKey == naturalKey && naturalKey != "" {
			e := r.entries[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *MemoryDirectoryRepo) ExistsBySource(kind, naturalKey, source string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.entries {
		e := &r.entries[i]
		if e.Kind == kind && e.NaturalKey == naturalKey && e.Source == source {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryDirectoryRepo) ExistsAuthoritative(kind, naturalKey string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.entries {
		e := &r.entries[i]
		if e.Kind != kind || e.NaturalKey != naturalKey {
			continue
		}
		for _, src := range models.AuthoritativeSources {
			if e.Source == src {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *MemoryDirectoryRepo) Create(entry *models.DirectoryListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *MemoryDirectoryRepo) Update(entry *models.DirectoryListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updateLocked(entry)
}

func (r *MemoryDirectoryRepo) updateLocked(entry *models.DirectoryListing) error {
	for i := range r.entries {
		if r.entries[i].ID == entry.ID {
			r.entries[i] = *entry
			return nil
		}
	}
	return fmt.Errorf("directory entry with id %s not found", entry.ID)
}

func (r *MemoryDirectoryRepo) DeleteByKindAndKey(kind, naturalKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.entries[:0]
	for i := range r.entries {
		if r.entries[i].Kind == kind && r.entries[i].NaturalKey == naturalKey {
			continue
		}
		kept = append(kept, r.entries[i])
	}
	r.entries = kept
	return nil
}

func (r *MemoryDirectoryRepo) Search(criteria DirectorySearchCriteria) ([]models.DirectoryListing, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.DirectoryListing
	for i := range r.entries {
		e := r.entries[i]
		if !e.Approved {
			continue
		}
		if criteria.Kind != "" && e.Kind != criteria.Kind {
			continue
		}
		if criteria.State != "" && e.State != criteria.State {
			continue
		}
		if criteria.District != "" && e.District != criteria.District {
			continue
		}
		if criteria.Specialization != "" && e.Specialization != criteria.Specialization {
			continue
		}
		if criteria.MinExperience > 0 && e.ExperienceYears < criteria.MinExperience {
			continue
		}
		matched = append(matched, e)
	}

	total := int64(len(matched))
	start := criteria.Page * criteria.PageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + criteria.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *MemoryDirectoryRepo) SaveWithLawyer(ctx context.Context, entry *models.DirectoryListing, lawyer *models.Lawyer) error {
	r.lawyers.mu.Lock()
	r.lawyers.Records[lawyer.ID] = *lawyer
	r.lawyers.mu.Unlock()
	return r.upsert(entry)
}

func (r *MemoryDirectoryRepo) SaveWithNGO(ctx context.Context, entry *models.DirectoryListing, ngo *models.NGO) error {
	r.ngos.mu.Lock()
	r.ngos.Records[ngo.ID] = *ngo
	r.ngos.mu.Unlock()
	return r.upsert(entry)
}

func (r *MemoryDirectoryRepo) upsert(entry *models.DirectoryListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.updateLocked(entry); err != nil {
		r.entries = append(r.entries, *entry)
	}
	return nil
}

// Count reports the number of stored listings, optionally restricted to a
// (kind, key) pair. Test helper.
func (r *MemoryDirectoryRepo) Count(kind, naturalKey string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if kind == "" && naturalKey == "" {
		return len(r.entries)
	}
	n := 0
	for i := range r.entries {
		e := &r.entries[i]
		if (kind == "" || e.Kind == kind) && (naturalKey == "" || strings.EqualFold(e.NaturalKey, naturalKey)) {
			n++
		}
	}
	return n
}
