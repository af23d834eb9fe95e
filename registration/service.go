// Package registration implements the multi-step merchant registration
// wizard as a session service. Wizard state is persisted through the
// storage adapter after every step so an interrupted registration resumes
// where it left off.
package registration

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sokohub/models"
	"sokohub/storage"
)

const sessionKeyPrefix = "registration-session:"

// Service defines the interface for managing a registration wizard session.
type Service interface {
	Start() (models.RegistrationSession, error)
	Get(sessionID string) (models.RegistrationSession, error)
	UpdateStep1(sessionID string, data models.RegistrationStep1) (models.RegistrationSession, error)
	UpdateStep2(sessionID string, data models.RegistrationStep2) (models.RegistrationSession, error)
	SetPhoneVerified(sessionID string, verified bool) (models.RegistrationSession, error)
	UpdatePassword(sessionID string, password string) (models.RegistrationSession, error)
	UpdateStep5(sessionID string, data models.RegistrationStep5) (models.RegistrationSession, error)
	UpdateStep6(sessionID string, data models.RegistrationStep6) (models.RegistrationSession, error)
	UpdateSignature(sessionID string, signature string) (models.RegistrationSession, error)
	Submit(sessionID string) (models.RegistrationData, error)
	Reset(sessionID string) error
}

// DefaultService implements Service over a storage adapter.
type DefaultService struct {
	Adapter storage.Adapter
	Logger  *zap.Logger

	mu sync.Mutex
}

// Start creates a fresh wizard session and persists it.
func (s *DefaultService) Start() (models.RegistrationSession, error) {
	now := time.Now().UTC()
	session := models.RegistrationSession{
		SessionID: uuid.New().String(),
		Data: models.RegistrationData{
			CountryCode: "+254",
		},
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := s.save(session); err != nil {
		return models.RegistrationSession{}, err
	}
	s.logger().Info("registration session started", zap.String("sessionID", session.SessionID))
	return session, nil
}

// Get loads an existing wizard session.
func (s *DefaultService) Get(sessionID string) (models.RegistrationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(sessionID)
}

func (s *DefaultService) UpdateStep1(sessionID string, data models.RegistrationStep1) (models.RegistrationSession, error) {
	if err := validateStep1(data); err != nil {
		return models.RegistrationSession{}, err
	}
	return s.mutate(sessionID, func(d *models.RegistrationData) {
		d.Country = data.Country
		d.AgreeToTerms = data.AgreeToTerms
	})
}

func (s *DefaultService) UpdateStep2(sessionID string, data models.RegistrationStep2) (models.RegistrationSession, error) {
	if err := validateStep2(data); err != nil {
		return models.RegistrationSession{}, err
	}
	return s.mutate(sessionID, func(d *models.RegistrationData) {
		d.FullName = data.FullName
		d.CountryCode = data.CountryCode
		d.PhoneNumber = data.PhoneNumber
		// Changing the phone number invalidates a prior verification.
		d.IsPhoneVerified = false
	})
}

func (s *DefaultService) SetPhoneVerified(sessionID string, verified bool) (models.RegistrationSession, error) {
	return s.mutate(sessionID, func(d *models.RegistrationData) {
		d.IsPhoneVerified = verified
	})
}

func (s *DefaultService) UpdatePassword(sessionID string, password string) (models.RegistrationSession, error) {
	if err := validatePassword(password); err != nil {
		return models.RegistrationSession{}, err
	}
	return s.mutate(sessionID, func(d *models.RegistrationData) {
		d.Password = password
	})
}

func (s *DefaultService) UpdateStep5(sessionID string, data models.RegistrationStep5) (models.RegistrationSession, error) {
	if err := validateStep5(data); err != nil {
		return models.RegistrationSession{}, err
	}
	return s.mutate(sessionID, func(d *models.RegistrationData) {
		d.BusinessName = data.BusinessName
		d.BusinessCategory = data.BusinessCategory
		d.BusinessAddress = data.BusinessAddress
		d.NationalID = data.NationalID
		d.BusinessWebsite = data.BusinessWebsite
		d.ContractFiles = data.ContractFiles
	})
}

func (s *DefaultService) UpdateStep6(sessionID string, data models.RegistrationStep6) (models.RegistrationSession, error) {
	if err := validateStep6(data); err != nil {
		return models.RegistrationSession{}, err
	}
	return s.mutate(sessionID, func(d *models.RegistrationData) {
		d.NationalIDFront = data.NationalIDFront
		d.NationalIDBack = data.NationalIDBack
		d.CommercialRegistration = data.CommercialRegistration
		d.TaxRegistration = data.TaxRegistration
	})
}

func (s *DefaultService) UpdateSignature(sessionID string, signature string) (models.RegistrationSession, error) {
	return s.mutate(sessionID, func(d *models.RegistrationData) {
		d.Signature = signature
	})
}

// Submit validates the complete wizard, marks the session submitted and
// returns the assembled registration payload. Handing the payload to the
// onboarding pipeline happens outside this service.
func (s *DefaultService) Submit(sessionID string) (models.RegistrationData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(sessionID)
	if err != nil {
		return models.RegistrationData{}, err
	}
	if session.Submitted {
		return models.RegistrationData{}, ErrAlreadySubmitted
	}
	if err := validateComplete(session.Data); err != nil {
		return models.RegistrationData{}, err
	}

	session.Submitted = true
	session.LastUpdatedAt = time.Now().UTC()
	if err := s.save(session); err != nil {
		return models.RegistrationData{}, err
	}
	s.logger().Info("registration submitted",
		zap.String("sessionID", sessionID),
		zap.String("businessName", session.Data.BusinessName))
	return session.Data, nil
}

// Reset discards the wizard session.
func (s *DefaultService) Reset(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Adapter.Delete(sessionKeyPrefix + sessionID); err != nil {
		return fmt.Errorf("failed to delete registration session: %w", err)
	}
	return nil
}

// mutate loads the session, applies fn to its data and persists the result.
func (s *DefaultService) mutate(sessionID string, fn func(*models.RegistrationData)) (models.RegistrationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(sessionID)
	if err != nil {
		return models.RegistrationSession{}, err
	}
	if session.Submitted {
		return models.RegistrationSession{}, ErrAlreadySubmitted
	}
	fn(&session.Data)
	session.LastUpdatedAt = time.Now().UTC()
	if err := s.save(session); err != nil {
		return models.RegistrationSession{}, err
	}
	return session, nil
}

func (s *DefaultService) load(sessionID string) (models.RegistrationSession, error) {
	data, err := s.Adapter.Load(sessionKeyPrefix + sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.RegistrationSession{}, ErrSessionNotFound
		}
		return models.RegistrationSession{}, fmt.Errorf("failed to load registration session: %w", err)
	}
	var session models.RegistrationSession
	if err := json.Unmarshal(data, &session); err != nil {
		return models.RegistrationSession{}, fmt.Errorf("failed to parse registration session: %w", err)
	}
	return session, nil
}

func (s *DefaultService) save(session models.RegistrationSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal registration session: %w", err)
	}
	if err := s.Adapter.Save(sessionKeyPrefix+session.SessionID, data); err != nil {
		return fmt.Errorf("failed to store registration session: %w", err)
	}
	return nil
}

func (s *DefaultService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
