package domain

import "time"

// Event is a club event open for registration.
type Event struct {
	ID          string    `json:"id" firestore:"-"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	Venue       string    `json:"venue" firestore:"venue"`
	StartsAt    time.Time `json:"starts_at" firestore:"starts_at"`
	EndsAt      time.Time `json:"ends_at" firestore:"ends_at"`
	Capacity    int       `json:"capacity" firestore:"capacity"`
	Questions   []string  `json:"questions,omitempty" firestore:"questions"`
	CreatedAt   time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updated_at"`
}
