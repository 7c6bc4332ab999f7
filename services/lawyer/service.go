package lawyer

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"legalaid/models"
	"legalaid/services/directory"
	"legalaid/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the form, checks uniqueness, derives the initial
// verified flag from the directory oracle, and persists the lawyer together
// with its listing in one transaction.
func (s *DefaultLawyerService) Register(ctx context.Context, input RegistrationInput) (*models.Lawyer, error) {
	if input.FullName == "" {
		return nil, directory.ValidationError{Field: "fullName", Message: "required"}
	}
	if input.Email == "" {
		return nil, directory.ValidationError{Field: "email", Message: "required"}
	}
	if input.Phone == "" {
		return nil, directory.ValidationError{Field: "phone", Message: "required"}
	}
	if input.BarCouncilID == "" {
		return nil, directory.ValidationError{Field: "barCouncilId", Message: "required"}
	}
	if input.Password == "" {
		return nil, directory.ValidationError{Field: "password", Message: "required"}
	}

	experience, err := strconv.Atoi(input.Experience)
	if err != nil || experience < 0 {
		return nil, directory.ValidationError{Field: "experience", Message: "must be a non-negative integer"}
	}
	latitude, err := parseCoordinate("latitude", input.Latitude)
	if err != nil {
		return nil, err
	}
	longitude, err := parseCoordinate("longitude", input.Longitude)
	if err != nil {
		return nil, err
	}
	if latitude == nil && longitude == nil && s.Geocoder != nil {
		address := strings.Join([]string{input.Address, input.District, input.State}, ", ")
		if coords, err := s.Geocoder.Geocode(ctx, address); err == nil && coords != nil {
			latitude = &coords.Latitude
			longitude = &coords.Longitude
		}
	}

	if exists, err := s.Repo.ExistsByEmail(input.Email); err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	} else if exists {
		return nil, directory.ConflictError{Field: "email", Value: input.Email}
	}
	if input.AadharNumber != "" {
		if exists, err := s.Repo.ExistsByAadhar(input.AadharNumber); err != nil {
			return nil, fmt.Errorf("failed to check existing aadhar: %w", err)
		} else if exists {
			return nil, directory.ConflictError{Field: "aadharNumber", Value: input.AadharNumber}
		}
	}
	if exists, err := s.Repo.ExistsByBarCouncilID(input.BarCouncilID); err != nil {
		return nil, fmt.Errorf("failed to check existing bar council id: %w", err)
	} else if exists {
		return nil, directory.ConflictError{Field: "barCouncilId", Value: input.BarCouncilID}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Verification is fixed at registration time by the oracle; only a later
	// authoritative import can flip it afterwards.
	verified, err := s.Directory.IsAttested(models.KindLawyer, input.BarCouncilID)
	if err != nil {
		return nil, fmt.Errorf("failed to check attestation: %w", err)
	}

	now := time.Now().UTC()
	lawyer := &models.Lawyer{
		ID:                     uuid.New().String(),
		FullName:               input.FullName,
		Email:                  input.Email,
		Phone:                  input.Phone,
		AadharNumber:           input.AadharNumber,
		BarCouncilID:           input.BarCouncilID,
		BarState:               input.BarState,
		Specialization:         input.Specialization,
		ExperienceYears:        experience,
		Address:                input.Address,
		District:               input.District,
		City:                   input.City,
		State:                  input.State,
		Latitude:               latitude,
		Longitude:              longitude,
		AadharProofURL:         input.AadharProofURL,
		AadharProofFilename:    input.AadharProofFilename,
		BarCertificateURL:      input.BarCertificateURL,
		BarCertificateFilename: input.BarCertificateFilename,
		PasswordHash:           string(hashed),
		Verified:               verified,
		Approved:               false,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if _, err := s.Directory.SyncLawyer(ctx, lawyer); err != nil {
		return nil, fmt.Errorf("failed to register lawyer: %w", err)
	}

	utils.GetLogger().Info("lawyer registered",
		zap.String("id", lawyer.ID),
		zap.String("barCouncilId", lawyer.BarCouncilID),
		zap.Bool("verified", lawyer.Verified))
	return lawyer, nil
}

// Update applies a partial profile edit and re-syncs the listing's mirrored
// fields. Verified and approved are never changed by this path.
func (s *DefaultLawyerService) Update(ctx context.Context, id string, input UpdateInput) (*models.Lawyer, error) {
	lawyer, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, directory.NotFoundError{Resource: "lawyer", ID: id}
	}

	if input.Experience != nil {
		experience, err := strconv.Atoi(*input.Experience)
		if err != nil || experience < 0 {
			return nil, directory.ValidationError{Field: "experience", Message: "must be a non-negative integer"}
		}
		lawyer.ExperienceYears = experience
	}
	if input.Latitude != nil {
		latitude, err := parseCoordinate("latitude", *input.Latitude)
		if err != nil {
			return nil, err
		}
		lawyer.Latitude = latitude
	}
	if input.Longitude != nil {
		longitude, err := parseCoordinate("longitude", *input.Longitude)
		if err != nil {
			return nil, err
		}
		lawyer.Longitude = longitude
	}
	if input.FullName != nil {
		lawyer.FullName = *input.FullName
	}
	if input.Phone != nil {
		lawyer.Phone = *input.Phone
	}
	if input.Specialization != nil {
		lawyer.Specialization = *input.Specialization
	}
	if input.Address != nil {
		lawyer.Address = *input.Address
	}
	if input.District != nil {
		lawyer.District = *input.District
	}
	if input.City != nil {
		lawyer.City = *input.City
	}
	if input.State != nil {
		lawyer.State = *input.State
	}
	lawyer.UpdatedAt = time.Now().UTC()

	if _, err := s.Directory.SyncLawyer(ctx, lawyer); err != nil {
		return nil, fmt.Errorf("failed to update lawyer: %w", err)
	}
	return lawyer, nil
}

// Delete removes the lawyer and its directory listing.
func (s *DefaultLawyerService) Delete(ctx context.Context, id string) error {
	lawyer, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if lawyer == nil {
		return directory.NotFoundError{Resource: "lawyer", ID: id}
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	if err := s.Directory.RemoveListing(models.KindLawyer, lawyer.BarCouncilID); err != nil {
		return fmt.Errorf("lawyer deleted but listing removal failed: %w", err)
	}
	return nil
}

func (s *DefaultLawyerService) GetByID(id string) (*models.Lawyer, error) {
	lawyer, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, directory.NotFoundError{Resource: "lawyer", ID: id}
	}
	return lawyer, nil
}

func (s *DefaultLawyerService) GetAll() ([]models.Lawyer, error) {
	return s.Repo.GetAll()
}

// Authenticate verifies credentials and issues a JWT whose hash is stored on
// the record.
func (s *DefaultLawyerService) Authenticate(email, password string) (*models.Lawyer, string, error) {
	lawyer, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if lawyer == nil {
		return nil, "", directory.NotFoundError{Resource: "lawyer", ID: email}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(lawyer.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(lawyer.ID, lawyer.Email, 24*time.Hour)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate auth token: %w", err)
	}
	lawyer.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(lawyer); err != nil {
		return nil, "", fmt.Errorf("failed to store token hash: %w", err)
	}
	return lawyer, token, nil
}

// parseCoordinate validates an optional decimal coordinate; empty means unset.
func parseCoordinate(field, raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, directory.ValidationError{Field: field, Message: "must be a decimal number"}
	}
	return &value, nil
}
