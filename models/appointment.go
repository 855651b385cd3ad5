package models

// Appointment occupies exactly one slot, identified by its (date, time) pair.
type Appointment struct {
	Name string `bson:"name" json:"name"`
	Date string `bson:"date" json:"date"` // e.g., "2024-05-01"
	Time string `bson:"time" json:"time"` // e.g., "10:00"
}

// Less orders appointments by date, then time.
func (a Appointment) Less(b Appointment) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.Time < b.Time
}
