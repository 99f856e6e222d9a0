package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cmu-health/models"
	"cmu-health/registry"
	"cmu-health/validation"
)

// BookingService confirms appointments. It deliberately keeps the clinic's
// loose rules: the doctor is not checked against the department, slots are
// never reserved and confirmations are not stored.
type BookingService struct {
	registry *registry.Registry
	validate *validator.Validate
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewBookingService(reg *registry.Registry, log logrus.FieldLogger) *BookingService {
	return &BookingService{
		registry: reg,
		validate: validator.New(),
		log:      log.WithField("component", "booking"),
		now:      time.Now,
	}
}

func (s *BookingService) Departments() []models.Department {
	return s.registry.Departments()
}

func (s *BookingService) ListDoctors(department string) []models.Doctor {
	return s.registry.ListDoctors(department)
}

func (s *BookingService) Slots() []models.AppointmentSlot {
	return s.registry.Slots()
}

// PatientHistory looks up a patient's record by exact name.
func (s *BookingService) PatientHistory(name string) (models.PatientRecord, bool) {
	return s.registry.History(name)
}

// Book returns ErrMissingSelection unless department, doctor and time are all
// set. A patient e-mail, when given, has to be well formed.
func (s *BookingService) Book(form models.BookingForm) (models.Confirmation, error) {
	if err := requireAll(s.validate, form); err != nil {
		return models.Confirmation{}, err
	}
	if form.PatientEmail != "" {
		if err := validation.ValidateEmail(form.PatientEmail); err != nil {
			return models.Confirmation{}, err
		}
	}

	conf := models.Confirmation{
		ID:         uuid.New(),
		Department: form.Department,
		Doctor:     form.Doctor,
		Time:       form.Time,
		Message:    fmt.Sprintf("Booked with %s (%s) at %s", form.Doctor, form.Department, form.Time),
		BookedAt:   s.now().UTC(),
	}
	s.log.WithFields(logrus.Fields{
		"confirmation_id": conf.ID,
		"department":      conf.Department,
		"doctor":          conf.Doctor,
		"time":            conf.Time,
	}).Info("appointment booked")
	return conf, nil
}

// requireAll maps any failed `required` tag to ErrMissingSelection.
func requireAll(v *validator.Validate, form interface{}) error {
	err := v.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return ErrMissingSelection
	}
	return fmt.Errorf("validate form: %w", err)
}
