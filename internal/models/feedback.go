package models

import "time"

// FeedbackEntry is a free-text message left through the contact form.
// Entries live in memory only; submission to a backend is simulated.
type FeedbackEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
