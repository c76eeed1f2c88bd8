package models

import "time"

// Layouts for the date and time fields carried by Event.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// Event represents a calendar event owned by a single user
type Event struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Category    string `json:"category"`
	Reminder    int    `json:"reminder"` // lead time in minutes; 0 disables reminders
	Username    string `json:"username"`
}

// Due combines the Date and Time fields into the moment the event starts.
func (e Event) Due() (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, e.Date+" "+e.Time, time.Local)
}

// Day parses only the Date field. Events with an unparsable date sort
// before everything else.
func (e Event) Day() time.Time {
	d, err := time.ParseInLocation(DateLayout, e.Date, time.Local)
	if err != nil {
		return time.Time{}
	}
	return d
}

// CreateEventRequest represents the create event request body
type CreateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Category    string `json:"category"`
	Reminder    int    `json:"reminder"`
}
