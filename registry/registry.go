// Package registry is the clinic's in-memory data: departments, the doctors in
// each department, the bookable time slots and the patient history box.
// Everything is seeded at startup and nothing is written to disk.
package registry

import (
	"strings"
	"sync"

	"cmu-health/models"
)

var (
	defaultDepartments = []models.Department{"Cardiology", "Dermatology", "Pediatrics", "Neurology"}

	defaultDoctors = map[models.Department][]string{
		"Cardiology":  {"Dr. Smith", "Dr. Johnson"},
		"Dermatology": {"Dr. Brown", "Dr. Davis"},
		"Pediatrics":  {"Dr. Miller", "Dr. Wilson"},
		"Neurology":   {"Dr. Moore", "Dr. Taylor"},
	}

	defaultSlots = []models.AppointmentSlot{"9:00 AM", "10:00 AM", "11:00 AM", "2:00 PM", "3:00 PM"}

	defaultHistory = []models.PatientRecord{
		{Name: "John Doe", History: "Flu treated on 01/10/2024"},
		{Name: "Jane Smith", History: "Skin allergy on 01/15/2024"},
	}
)

// Registry is owned by the application root and handed to every handler.
// Departments, doctors and slots are fixed after construction; the patient
// history can be swapped wholesale by the admin.
type Registry struct {
	departments []models.Department
	doctors     map[models.Department][]string
	slots       []models.AppointmentSlot

	mu      sync.RWMutex
	history []models.PatientRecord
}

// New returns the registry with the clinic's seed data.
func New() *Registry {
	return NewWith(defaultDepartments, defaultDoctors, defaultSlots, defaultHistory)
}

func NewWith(departments []models.Department, doctors map[models.Department][]string, slots []models.AppointmentSlot, history []models.PatientRecord) *Registry {
	r := &Registry{
		departments: append([]models.Department(nil), departments...),
		doctors:     make(map[models.Department][]string, len(doctors)),
		slots:       append([]models.AppointmentSlot(nil), slots...),
	}
	for dept, names := range doctors {
		r.doctors[dept] = append([]string(nil), names...)
	}
	r.history = dedupe(history)
	return r
}

func (r *Registry) Departments() []models.Department {
	return append([]models.Department(nil), r.departments...)
}

// ListDoctors returns the doctors of a department. An unknown department
// yields an empty list, not an error.
func (r *Registry) ListDoctors(department string) []models.Doctor {
	names := r.doctors[models.Department(department)]
	doctors := make([]models.Doctor, 0, len(names))
	for _, name := range names {
		doctors = append(doctors, models.Doctor{Name: name, Department: models.Department(department)})
	}
	return doctors
}

func (r *Registry) Slots() []models.AppointmentSlot {
	return append([]models.AppointmentSlot(nil), r.slots...)
}

func (r *Registry) PatientHistory() []models.PatientRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.PatientRecord(nil), r.history...)
}

func (r *Registry) History(name string) (models.PatientRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.history {
		if rec.Name == name {
			return rec, true
		}
	}
	return models.PatientRecord{}, false
}

// HistoryText renders the history the way the admin text box shows it,
// one "name: history" line per patient.
func (r *Registry) HistoryText() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	for _, rec := range r.history {
		b.WriteString(rec.Name)
		b.WriteString(historySeparator)
		b.WriteString(rec.History)
		b.WriteByte('\n')
	}
	return b.String()
}

// ReplacePatientHistory swaps the whole mapping. Records that repeat a name
// keep the first position and the last value.
func (r *Registry) ReplacePatientHistory(records []models.PatientRecord) {
	next := dedupe(records)

	r.mu.Lock()
	r.history = next
	r.mu.Unlock()
}

func dedupe(records []models.PatientRecord) []models.PatientRecord {
	out := make([]models.PatientRecord, 0, len(records))
	index := make(map[string]int, len(records))
	for _, rec := range records {
		if i, ok := index[rec.Name]; ok {
			out[i].History = rec.History
			continue
		}
		index[rec.Name] = len(out)
		out = append(out, rec)
	}
	return out
}
