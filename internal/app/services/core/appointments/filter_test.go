package appointments

import (
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleAppointments() []models.Appointment {
	return []models.Appointment{
		{
			ID:      "appt-1",
			Patient: models.PersonRef{Name: "Meera Nair", Phone: "9876543210"},
			Doctor:  models.PersonRef{Name: "Asha Rao"},
			Date:    "2030-01-12",
			Time:    "10:00",
			Status:  constvars.AppointmentStatusPending,
		},
		{
			ID:      "appt-2",
			Patient: models.PersonRef{Name: "Arjun Menon", Phone: "9123456780"},
			Doctor:  models.PersonRef{Name: "Vikram Iyer"},
			Date:    "2030-01-11",
			Time:    "09:00",
			Status:  constvars.AppointmentStatusCompleted,
		},
		{
			ID:      "appt-3",
			Patient: models.PersonRef{Name: "Fatima Khan", Phone: "9000011111"},
			Doctor:  models.PersonRef{Name: "Asha Rao"},
			Date:    "2030-01-11",
			Time:    "14:00",
			Status:  constvars.AppointmentStatusCancelled,
		},
	}
}

func ids(list []models.Appointment) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterBySearchTerm(t *testing.T) {
	list := sampleAppointments()

	t.Run("Empty term returns everything", func(t *testing.T) {
		assert.Len(t, FilterBySearchTerm(list, ""), 3)
	})

	t.Run("Patient name matches case-insensitively", func(t *testing.T) {
		assert.Equal(t, []string{"appt-1"}, ids(FilterBySearchTerm(list, "meera")))
		assert.Equal(t, []string{"appt-1"}, ids(FilterBySearchTerm(list, "MEERA")))
	})

	t.Run("Doctor name matches too", func(t *testing.T) {
		assert.Equal(t, []string{"appt-1", "appt-3"}, ids(FilterBySearchTerm(list, "asha")))
	})

	t.Run("Phone matches on raw digits", func(t *testing.T) {
		assert.Equal(t, []string{"appt-2"}, ids(FilterBySearchTerm(list, "912345")))
	})

	t.Run("Phone matches case-insensitively", func(t *testing.T) {
		withExtension := []models.Appointment{{
			ID:      "appt-ext",
			Patient: models.PersonRef{Name: "Rohan Das", Phone: "9876543210 EXT 12"},
		}}
		assert.Equal(t, []string{"appt-ext"}, ids(FilterBySearchTerm(withExtension, "ext 12")))
	})

	t.Run("No match yields empty non-nil slice", func(t *testing.T) {
		result := FilterBySearchTerm(list, "zzz")
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestSortAppointments(t *testing.T) {
	t.Run("Default key orders by date then time", func(t *testing.T) {
		list := sampleAppointments()
		SortAppointments(list, constvars.SortKeyDateTime, constvars.SortAscending)
		assert.Equal(t, []string{"appt-2", "appt-3", "appt-1"}, ids(list))
	})

	t.Run("Descending reverses the order", func(t *testing.T) {
		list := sampleAppointments()
		SortAppointments(list, constvars.SortKeyDateTime, constvars.SortDescending)
		assert.Equal(t, []string{"appt-1", "appt-3", "appt-2"}, ids(list))
	})

	t.Run("Patient name key ignores case", func(t *testing.T) {
		list := sampleAppointments()
		SortAppointments(list, constvars.SortKeyPatientName, constvars.SortAscending)
		assert.Equal(t, []string{"appt-2", "appt-3", "appt-1"}, ids(list))
	})

	t.Run("Equal keys keep fetched order", func(t *testing.T) {
		list := []models.Appointment{
			{ID: "a", Date: "2030-01-11", Time: "09:00"},
			{ID: "b", Date: "2030-01-11", Time: "09:00"},
			{ID: "c", Date: "2030-01-10", Time: "09:00"},
		}
		SortAppointments(list, constvars.SortKeyDateTime, constvars.SortAscending)
		assert.Equal(t, []string{"c", "a", "b"}, ids(list))
	})
}

func TestCanCancel(t *testing.T) {
	assert.True(t, CanCancel(&models.Appointment{Status: constvars.AppointmentStatusPending}))
	assert.False(t, CanCancel(&models.Appointment{Status: constvars.AppointmentStatusCompleted}))
	assert.False(t, CanCancel(&models.Appointment{Status: constvars.AppointmentStatusCancelled}))
}
