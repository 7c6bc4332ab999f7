package lawyerRepo

import (
	"fmt"
	"sort"
	"strings"

	directoryRepo "legalaid/database/repository/directory"
	"legalaid/models"
)

// MemoryLawyerRepo is an in-memory LawyerRepository backed by the shared
// store used for transactional pair writes. Test and local-dev use only.
type MemoryLawyerRepo struct {
	store *directoryRepo.MemoryLawyerStore
}

// NewMemoryLawyerRepo creates an in-memory LawyerRepository over the store.
func NewMemoryLawyerRepo(store *directoryRepo.MemoryLawyerStore) *MemoryLawyerRepo {
	return &MemoryLawyerRepo{store: store}
}

func (r *MemoryLawyerRepo) find(match func(*models.Lawyer) bool) (*models.Lawyer, error) {
	for _, l := range r.store.Snapshot() {
		if match(&l) {
			found := l
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryLawyerRepo) GetByID(id string) (*models.Lawyer, error) {
	return r.find(func(l *models.Lawyer) bool { return l.ID == id })
}

func (r *MemoryLawyerRepo) GetByEmail(email string) (*models.Lawyer, error) {
	return r.find(func(l *models.Lawyer) bool { return l.Email == email })
}

func (r *MemoryLawyerRepo) GetByBarCouncilID(barCouncilID string) (*models.Lawyer, error) {
	return r.find(func(l *models.Lawyer) bool { return l.BarCouncilID == barCouncilID })
}

func (r *MemoryLawyerRepo) FindByBarCouncilIDFold(barCouncilID string) ([]models.Lawyer, error) {
	var matched []models.Lawyer
	for _, l := range r.store.Snapshot() {
		if strings.EqualFold(l.BarCouncilID, barCouncilID) {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

func (r *MemoryLawyerRepo) GetAll() ([]models.Lawyer, error) {
	all := r.store.Snapshot()
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *MemoryLawyerRepo) GetPending() ([]models.Lawyer, error) {
	var pending []models.Lawyer
	for _, l := range r.store.Snapshot() {
		if !l.Approved {
			pending = append(pending, l)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].ID < pending[j].ID })
	return pending, nil
}

func (r *MemoryLawyerRepo) Create(lawyer *models.Lawyer) error {
	r.store.Put(*lawyer)
	return nil
}

func (r *MemoryLawyerRepo) Update(lawyer *models.Lawyer) error {
	if !r.store.Has(lawyer.ID) {
		return fmt.Errorf("lawyer with id %s not found", lawyer.ID)
	}
	r.store.Put(*lawyer)
	return nil
}

func (r *MemoryLawyerRepo) Delete(id string) error {
	if !r.store.Has(id) {
		return fmt.Errorf("lawyer with id %s not found", id)
	}
	r.store.Remove(id)
	return nil
}

func (r *MemoryLawyerRepo) ExistsByEmail(email string) (bool, error) {
	l, _ := r.GetByEmail(email)
	return l != nil, nil
}

func (r *MemoryLawyerRepo) ExistsByBarCouncilID(barCouncilID string) (bool, error) {
	l, _ := r.GetByBarCouncilID(barCouncilID)
	return l != nil, nil
}

func (r *MemoryLawyerRepo) ExistsByAadhar(aadharNumber string) (bool, error) {
	l, _ := r.find(func(l *models.Lawyer) bool { return l.AadharNumber == aadharNumber })
	return l != nil, nil
}
