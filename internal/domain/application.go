package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusApproved ApplicationStatus = "Approved"
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)

// Application is a membership application. Email is the natural key: at
// most one application exists per address, and applicants never mutate a
// record after creation; resubmission is a duplicate.
type Application struct {
	ID        string            `json:"id" firestore:"-"`
	Name      string            `json:"name" firestore:"name"`
	Email     string            `json:"email" firestore:"email"`
	Branch    string            `json:"branch" firestore:"branch"`
	Year      string            `json:"year" firestore:"year"`
	College   string            `json:"college" firestore:"college"`
	Domain    string            `json:"domain" firestore:"domain"`
	Reason    string            `json:"reason" firestore:"reason"`
	LinkedIn  string            `json:"linkedin,omitempty" firestore:"linkedin"`
	GitHub    string            `json:"github,omitempty" firestore:"github"`
	Status    ApplicationStatus `json:"status" firestore:"status"`
	CreatedAt time.Time         `json:"created_at" firestore:"created_at"`
}
