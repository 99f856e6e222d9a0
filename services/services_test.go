package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmu-health/models"
	"cmu-health/registry"
	"cmu-health/validation"
)

func newBooking(t *testing.T) *BookingService {
	t.Helper()
	log, _ := test.NewNullLogger()
	s := NewBookingService(registry.New(), log)
	s.now = func() time.Time { return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC) }
	return s
}

func newAdmin(t *testing.T) (*AdminService, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	a, err := NewAdminService(registry.New(), "admin", "admin123", log)
	require.NoError(t, err)
	return a, hook
}

func TestBookReturnsConfirmation(t *testing.T) {
	s := newBooking(t)

	conf, err := s.Book(models.BookingForm{Department: "Cardiology", Doctor: "Dr. Smith", Time: "9:00 AM"})
	require.NoError(t, err)

	assert.Equal(t, "Booked with Dr. Smith (Cardiology) at 9:00 AM", conf.Message)
	assert.Equal(t, "Cardiology", conf.Department)
	assert.Equal(t, "Dr. Smith", conf.Doctor)
	assert.Equal(t, "9:00 AM", conf.Time)
	assert.NotEqual(t, uuid.Nil, conf.ID)
	assert.Equal(t, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), conf.BookedAt)
}

func TestBookIgnoresDepartmentMembershipAndDoubleBooking(t *testing.T) {
	s := newBooking(t)
	form := models.BookingForm{Department: "Neurology", Doctor: "Dr. Smith", Time: "9:00 AM"}

	first, err := s.Book(form)
	require.NoError(t, err)
	second, err := s.Book(form)
	require.NoError(t, err)

	assert.Contains(t, second.Message, "Dr. Smith")
	assert.Contains(t, second.Message, "Neurology")
	assert.Contains(t, second.Message, "9:00 AM")
	assert.NotEqual(t, first.ID, second.ID)
}

func TestBookRequiresEverySelection(t *testing.T) {
	s := newBooking(t)

	for _, form := range []models.BookingForm{
		{Doctor: "Dr. Smith", Time: "9:00 AM"},
		{Department: "Cardiology", Time: "9:00 AM"},
		{Department: "Cardiology", Doctor: "Dr. Smith"},
		{},
	} {
		_, err := s.Book(form)
		assert.ErrorIs(t, err, ErrMissingSelection)
	}
}

func TestBookValidatesOptionalEmail(t *testing.T) {
	s := newBooking(t)

	_, err := s.Book(models.BookingForm{Department: "Cardiology", Doctor: "Dr. Smith", Time: "9:00 AM", PatientEmail: "bad"})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.FieldEmail, verr.Field)

	_, err = s.Book(models.BookingForm{Department: "Cardiology", Doctor: "Dr. Smith", Time: "9:00 AM", PatientEmail: "a@b.com"})
	assert.NoError(t, err)
}

func TestSlipIsPDF(t *testing.T) {
	s := newBooking(t)
	conf, err := s.Book(models.BookingForm{Department: "Pediatrics", Doctor: "Dr. Miller", Time: "2:00 PM"})
	require.NoError(t, err)

	pdf, err := s.Slip(conf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestListDoctorsUnknownDepartment(t *testing.T) {
	s := newBooking(t)
	assert.Len(t, s.ListDoctors("Dermatology"), 2)
	assert.Empty(t, s.ListDoctors("Radiology"))
}

func TestPatientHistory(t *testing.T) {
	s := newBooking(t)

	rec, ok := s.PatientHistory("Jane Smith")
	require.True(t, ok)
	assert.Equal(t, "Skin allergy on 01/15/2024", rec.History)

	_, ok = s.PatientHistory("Nobody")
	assert.False(t, ok)
}

func TestAdminLogin(t *testing.T) {
	a, _ := newAdmin(t)

	assert.NoError(t, a.Login("admin", "admin123"))
	assert.ErrorIs(t, a.Login("admin", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, a.Login("root", "admin123"), ErrInvalidCredentials)
	assert.ErrorIs(t, a.Login("", ""), ErrInvalidCredentials)
	assert.NotEqual(t, "admin123", a.credentials.PasswordHash)
}

func TestSetAvailability(t *testing.T) {
	a, _ := newAdmin(t)

	update, err := a.SetAvailability(models.AvailabilityForm{Department: "Cardiology", Doctor: "Dr. Smith", Availability: models.Unavailable})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Smith in Cardiology set to Unavailable", update.Message)

	_, err = a.SetAvailability(models.AvailabilityForm{Department: "Cardiology", Doctor: "Dr. Smith"})
	assert.ErrorIs(t, err, ErrMissingSelection)
}

func TestReplacePatientHistory(t *testing.T) {
	a, hook := newAdmin(t)

	result := a.ReplacePatientHistory("John Doe: flu\nbadline\nJane: cold")

	assert.Equal(t, []models.PatientRecord{
		{Name: "John Doe", History: "flu"},
		{Name: "Jane", History: "cold"},
	}, result.Records)
	assert.Equal(t, []string{"badline"}, result.Dropped)

	records, text := a.PatientHistory()
	assert.Equal(t, result.Records, records)
	assert.Equal(t, "John Doe: flu\nJane: cold\n", text)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["line"] == "badline" {
			warned = true
		}
	}
	assert.True(t, warned, "dropped line should be logged")

	clean := a.ReplacePatientHistory("Ann: ok")
	assert.NotNil(t, clean.Dropped)
	assert.Empty(t, clean.Dropped)
}
