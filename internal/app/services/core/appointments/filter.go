package appointments

import (
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"sort"
	"strings"
)

// FilterBySearchTerm narrows an already-fetched list by case-insensitive
// substring match on patient name, patient phone or doctor name. An empty
// term returns the list unchanged.
func FilterBySearchTerm(list []models.Appointment, term string) []models.Appointment {
	if term == "" {
		return list
	}
	needle := strings.ToLower(term)

	filtered := make([]models.Appointment, 0, len(list))
	for _, appointment := range list {
		if strings.Contains(strings.ToLower(appointment.Patient.Name), needle) ||
			strings.Contains(strings.ToLower(appointment.Patient.Phone), needle) ||
			strings.Contains(strings.ToLower(appointment.Doctor.Name), needle) {
			filtered = append(filtered, appointment)
		}
	}
	return filtered
}

// SortAppointments orders the filtered set by the given key. The sort is
// stable so records that compare equal keep their fetched order. Date plus
// "HH:MM" time compare correctly as plain strings.
func SortAppointments(list []models.Appointment, sortKey, sortDir string) {
	descending := sortDir == constvars.SortDescending

	var less func(a, b models.Appointment) bool
	switch sortKey {
	case constvars.SortKeyPatientName:
		less = func(a, b models.Appointment) bool {
			return strings.ToLower(a.Patient.Name) < strings.ToLower(b.Patient.Name)
		}
	default:
		less = func(a, b models.Appointment) bool {
			if a.Date != b.Date {
				return a.Date < b.Date
			}
			return a.Time < b.Time
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		if descending {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})
}

// CanCancel reports whether a patient may still cancel the appointment. Only
// pending appointments offer the action.
func CanCancel(appointment *models.Appointment) bool {
	return appointment.Status == constvars.AppointmentStatusPending
}
