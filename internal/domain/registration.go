package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "Registered"
)

// Response is one answered dynamic question on a registration form.
type Response struct {
	Question string `json:"question" firestore:"question"`
	Answer   string `json:"answer" firestore:"answer"`
}

// Registration is an event signup. (EventID, Email) is the natural key.
type Registration struct {
	ID           string             `json:"id" firestore:"-"`
	EventID      string             `json:"event_id" firestore:"event_id"`
	EventTitle   string             `json:"event_title" firestore:"event_title"`
	Name         string             `json:"name" firestore:"name"`
	Email        string             `json:"email" firestore:"email"`
	Team         string             `json:"team,omitempty" firestore:"team"`
	Department   string             `json:"department,omitempty" firestore:"department"`
	EnrollmentNo string             `json:"enrollment_no,omitempty" firestore:"enrollment_no"`
	Responses    []Response         `json:"responses,omitempty" firestore:"responses"`
	Status       RegistrationStatus `json:"status" firestore:"status"`
	CreatedAt    time.Time          `json:"created_at" firestore:"created_at"`
}
