package ngo

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
// verified flag from the directory oracle, and persists the NGO together with
// its listing in one transaction.
func (s *DefaultNGOService) Register(ctx context.Context, input RegistrationInput) (*models.NGO, error) {
	if input.Name == "" {
		return nil, directory.ValidationError{Field: "name", Message: "required"}
	}
	if input.Email == "" {
		return nil, directory.ValidationError{Field: "email", Message: "required"}
	}
	if input.RegistrationNumber == "" {
		return nil, directory.ValidationError{Field: "registrationNumber", Message: "required"}
	}
	if input.Password == "" {
		return nil, directory.ValidationError{Field: "password", Message: "required"}
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
	if exists, err := s.Repo.ExistsByRegistrationNumber(input.RegistrationNumber); err != nil {
		return nil, fmt.Errorf("failed to check existing registration number: %w", err)
	} else if exists {
		return nil, directory.ConflictError{Field: "registrationNumber", Value: input.RegistrationNumber}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	verified, err := s.Directory.IsAttested(models.KindNGO, input.RegistrationNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check attestation: %w", err)
	}

	now := time.Now().UTC()
	ngo := &models.NGO{
		ID:                              uuid.New().String(),
		Name:                            input.Name,
		NGOType:                         input.NGOType,
		RegistrationNumber:              input.RegistrationNumber,
		ContactPhone:                    input.ContactPhone,
		Email:                           input.Email,
		Specialization:                  input.Specialization,
		Address:                         input.Address,
		State:                           input.State,
		District:                        input.District,
		City:                            input.City,
		Pincode:                         input.Pincode,
		Latitude:                        latitude,
		Longitude:                       longitude,
		RegistrationCertificateURL:      input.RegistrationCertificateURL,
		RegistrationCertificateFilename: input.RegistrationCertificateFilename,
		PasswordHash:                    string(hashed),
		Verified:                        verified,
		Approved:                        false,
		CreatedAt:                       now,
		UpdatedAt:                       now,
	}

	if _, err := s.Directory.SyncNGO(ctx, ngo); err != nil {
		return nil, fmt.Errorf("failed to register ngo: %w", err)
	}

	utils.GetLogger().Info("ngo registered",
		zap.String("id", ngo.ID),
		zap.String("registrationNumber", ngo.RegistrationNumber),
		zap.Bool("verified", ngo.Verified))
	return ngo, nil
}

// Update applies a partial profile edit and re-syncs the listing's mirrored
// fields. Verified and approved are never changed by this path.
func (s *DefaultNGOService) Update(ctx context.Context, id string, input UpdateInput) (*models.NGO, error) {
	ngo, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ngo == nil {
		return nil, directory.NotFoundError{Resource: "ngo", ID: id}
	}

	if input.Latitude != nil {
		latitude, err := parseCoordinate("latitude", *input.Latitude)
		if err != nil {
			return nil, err
		}
		ngo.Latitude = latitude
	}
	if input.Longitude != nil {
		longitude, err := parseCoordinate("longitude", *input.Longitude)
		if err != nil {
			return nil, err
		}
		ngo.Longitude = longitude
	}
	if input.Name != nil {
		ngo.Name = *input.Name
	}
	if input.NGOType != nil {
		ngo.NGOType = *input.NGOType
	}
	if input.ContactPhone != nil {
		ngo.ContactPhone = *input.ContactPhone
	}
	if input.Specialization != nil {
		ngo.Specialization = *input.Specialization
	}
	if input.Address != nil {
		ngo.Address = *input.Address
	}
	if input.State != nil {
		ngo.State = *input.State
	}
	if input.District != nil {
		ngo.District = *input.District
	}
	if input.City != nil {
		ngo.City = *input.City
	}
	if input.Pincode != nil {
		ngo.Pincode = *input.Pincode
	}
	ngo.UpdatedAt = time.Now().UTC()

	if _, err := s.Directory.SyncNGO(ctx, ngo); err != nil {
		return nil, fmt.Errorf("failed to update ngo: %w", err)
	}
	return ngo, nil
}

// Delete removes the NGO and its directory listing.
func (s *DefaultNGOService) Delete(ctx context.Context, id string) error {
	ngo, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if ngo == nil {
		return directory.NotFoundError{Resource: "ngo", ID: id}
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	if err := s.Directory.RemoveListing(models.KindNGO, ngo.RegistrationNumber); err != nil {
		return fmt.Errorf("ngo deleted but listing removal failed: %w", err)
	}
	return nil
}

func (s *DefaultNGOService) GetByID(id string) (*models.NGO, error) {
	ngo, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ngo == nil {
		return nil, directory.NotFoundError{Resource: "ngo", ID: id}
	}
	return ngo, nil
}

func (s *DefaultNGOService) GetAll() ([]models.NGO, error) {
	return s.Repo.GetAll()
}

// Authenticate verifies credentials and issues a JWT whose hash is stored on
// the record.
func (s *DefaultNGOService) Authenticate(email, password string) (*models.NGO, string, error) {
	ngo, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if ngo == nil {
		return nil, "", directory.NotFoundError{Resource: "ngo", ID: email}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ngo.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(ngo.ID, ngo.Email, 24*time.Hour)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate auth token: %w", err)
	}
	ngo.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(ngo); err != nil {
		return nil, "", fmt.Errorf("failed to store token hash: %w", err)
	}
	return ngo, token, nil
}

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
