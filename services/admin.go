package services

import (
	"crypto/subtle"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"cmu-health/models"
	"cmu-health/registry"
)

// AdminService backs the admin panel: the login gate, the doctor
// availability form and the patient history box.
type AdminService struct {
	registry    *registry.Registry
	credentials models.Credentials
	validate    *validator.Validate
	log         logrus.FieldLogger
}

// NewAdminService hashes the configured admin password so the plain text is
// not kept around.
func NewAdminService(reg *registry.Registry, username, password string, log logrus.FieldLogger) (*AdminService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AdminService{
		registry:    reg,
		credentials: models.Credentials{Username: username, PasswordHash: string(hash)},
		validate:    validator.New(),
		log:         log.WithField("component", "admin"),
	}, nil
}

// Login returns ErrInvalidCredentials unless both username and password match.
func (a *AdminService) Login(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.credentials.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(a.credentials.PasswordHash), []byte(password))
	if !userOK || passErr != nil {
		a.log.WithField("username", username).Warn("admin login rejected")
		return ErrInvalidCredentials
	}
	a.log.WithField("username", username).Info("admin logged in")
	return nil
}

// SetAvailability acknowledges an availability change. Nothing is stored.
func (a *AdminService) SetAvailability(form models.AvailabilityForm) (models.AvailabilityUpdate, error) {
	if err := requireAll(a.validate, form); err != nil {
		return models.AvailabilityUpdate{}, err
	}
	update := models.AvailabilityUpdate{
		Department:   form.Department,
		Doctor:       form.Doctor,
		Availability: form.Availability,
		Message:      fmt.Sprintf("%s in %s set to %s", form.Doctor, form.Department, form.Availability),
	}
	a.log.WithFields(logrus.Fields{
		"department":   form.Department,
		"doctor":       form.Doctor,
		"availability": form.Availability,
	}).Info("doctor availability updated")
	return update, nil
}

func (a *AdminService) PatientHistory() ([]models.PatientRecord, string) {
	return a.registry.PatientHistory(), a.registry.HistoryText()
}

// ReplacePatientHistory parses the history box and swaps the whole mapping.
// Lines without a "name: history" separator are dropped and reported.
func (a *AdminService) ReplacePatientHistory(text string) models.HistoryReplacement {
	records, dropped := registry.ParsePatientHistory(text)
	a.registry.ReplacePatientHistory(records)

	for _, line := range dropped {
		a.log.WithField("line", line).Warn("dropped malformed patient history line")
	}
	a.log.WithFields(logrus.Fields{
		"records": len(records),
		"dropped": len(dropped),
	}).Info("patient history replaced")

	if dropped == nil {
		dropped = []string{}
	}
	return models.HistoryReplacement{Records: records, Dropped: dropped}
}
