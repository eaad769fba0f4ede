package domain

import "time"

// Member is derived from an Application when an admin approves it.
type Member struct {
	ID       string    `json:"id" firestore:"-"`
	Name     string    `json:"name" firestore:"name"`
	Email    string    `json:"email" firestore:"email"`
	Branch   string    `json:"branch" firestore:"branch"`
	Year     string    `json:"year" firestore:"year"`
	Domain   string    `json:"domain" firestore:"domain"`
	JoinedAt time.Time `json:"joined_at" firestore:"joined_at"`
}
