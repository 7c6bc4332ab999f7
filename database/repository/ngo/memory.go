package ngoRepo

import (
	"fmt"
	"sort"
	"strings"

	directoryRepo "legalaid/database/repository/directory"
	"legalaid/models"
)

// MemoryNGORepo is an in-memory NGORepository backed by the shared store used
// for transactional pair writes. Test and local-dev use only.
type MemoryNGORepo struct {
	store *directoryRepo.MemoryNGOStore
}

// NewMemoryNGORepo creates an in-memory NGORepository over the store.
func NewMemoryNGORepo(store *directoryRepo.MemoryNGOStore) *MemoryNGORepo {
	return &MemoryNGORepo{store: store}
}

func (r *MemoryNGORepo) find(match func(*models.NGO) bool) (*models.NGO, error) {
	for _, n := range r.store.Snapshot() {
		if match(&n) {
			found := n
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryNGORepo) GetByID(id string) (*models.NGO, error) {
	return r.find(func(n *models.NGO) bool { return n.ID == id })
}

func (r *MemoryNGORepo) GetByEmail(email string) (*models.NGO, error) {
	return r.find(func(n *models.NGO) bool { return n.Email == email })
}

func (r *MemoryNGORepo) GetByRegistrationNumber(registrationNumber string) (*models.NGO, error) {
	return r.find(func(n *models.NGO) bool { return n.RegistrationNumber == registrationNumber })
}

func (r *MemoryNGORepo) FindByRegistrationNumberFold(registrationNumber string) ([]models.NGO, error) {
	var matched []models.NGO
	for _, n := range r.store.Snapshot() {
		if strings.EqualFold(n.RegistrationNumber, registrationNumber) {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

func (r *MemoryNGORepo) GetAll() ([]models.NGO, error) {
	all := r.store.Snapshot()
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *MemoryNGORepo) GetPending() ([]models.NGO, error) {
	var pending []models.NGO
	for _, n := range r.store.Snapshot() {
		if !n.Approved {
			pending = append(pending, n)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].ID < pending[j].ID })
	return pending, nil
}

func (r *MemoryNGORepo) Create(ngo *models.NGO) error {
	r.store.Put(*ngo)
	return nil
}

func (r *MemoryNGORepo) Update(ngo *models.NGO) error {
	if !r.store.Has(ngo.ID) {
		return fmt.Errorf("ngo with id %s not found", ngo.ID)
	}
	r.store.Put(*ngo)
	return nil
}

func (r *MemoryNGORepo) Delete(id string) error {
	if !r.store.Has(id) {
		return fmt.Errorf("ngo with id %s not found", id)
	}
	r.store.Remove(id)
	return nil
}

func (r *MemoryNGORepo) ExistsByEmail(email string) (bool, error) {
	n, _ := r.GetByEmail(email)
	return n != nil, nil
}

func (r *MemoryNGORepo) ExistsByRegistrationNumber(registrationNumber string) (bool, error) {
	n, _ := r.GetByRegistrationNumber(registrationNumber)
	return n != nil, nil
}
