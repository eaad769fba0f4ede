package domain

import "time"

type NotificationChannel string

const (
	ChannelEmail  NotificationChannel = "email"
	ChannelSheets NotificationChannel = "sheets"
)

// DeadLetter records a failed best-effort notification so the cron sweep
// can retry it. The originating request has already succeeded by the time
// one of these is written.
type DeadLetter struct {
	ID            string              `json:"id" firestore:"-"`
	Channel       NotificationChannel `json:"channel" firestore:"channel"`
	Operation     string              `json:"operation" firestore:"operation"`
	Payload       map[string]string   `json:"payload" firestore:"payload"`
	Reason        string              `json:"reason" firestore:"reason"`
	Attempts      int                 `json:"attempts" firestore:"attempts"`
	CreatedAt     time.Time           `json:"created_at" firestore:"created_at"`
	LastAttemptAt time.Time           `json:"last_attempt_at" firestore:"last_attempt_at"`
}
