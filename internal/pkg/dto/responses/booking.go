package responses

// AvailableSlots carries the resolved slot list for one (doctor, date) pair.
// An empty Slots list is a valid loaded state, distinct from a fetch that is
// still in flight (Stale=true means the result was discarded because the draft
// moved on to a different doctor or date before the fetch returned).
type AvailableSlots struct {
	DoctorID string   `json:"doctorId"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
	Stale    bool     `json:"stale,omitempty"`
}

// BookingDraft is the caller-visible view of their in-progress booking form.
type BookingDraft struct {
	DoctorID     string   `json:"doctorId"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Symptoms     string   `json:"symptoms"`
	Department   string   `json:"department"`
	Slots        []string `json:"slots"`
	SlotsLoading bool     `json:"slotsLoading"`
}
