package registry

import (
	"strings"

	"cmu-health/models"
)

const historySeparator = ": "

// ParsePatientHistory reads the admin history box. Each line of the form
// "name: history" becomes a record, split on the first separator with both
// halves trimmed. Lines without the separator are returned in dropped.
func ParsePatientHistory(text string) (records []models.PatientRecord, dropped []string) {
	records = []models.PatientRecord{}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return records, nil
	}

	for _, line := range strings.Split(trimmed, "\n") {
		name, history, ok := strings.Cut(line, historySeparator)
		if !ok {
			dropped = append(dropped, line)
			continue
		}
		records = append(records, models.PatientRecord{
			Name:    strings.TrimSpace(name),
			History: strings.TrimSpace(history),
		})
	}
	return dedupe(records), dropped
}
