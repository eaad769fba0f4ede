package jobs

import (
	"context"
	"time"

	"clubhub-backend/internal/logger"
)

const deadLetterSweepLimit = 100

// RetryNotifications re-dispatches dead-lettered notifications. Letters
// that succeed are removed; letters that fail again get their attempt
// count bumped. Letters past the attempt cap stay put and are only
// reported, so a broken downstream cannot loop forever.
func (jr *JobRunner) RetryNotifications() {
	jr.runWithRecovery("RetryNotifications", func() {
		ctx := context.Background()
		maxAttempts := jr.config.Scheduler.MaxRetryAttempts

		letters, err := jr.deadLetters.List(ctx, deadLetterSweepLimit)
		if err != nil {
			logger.Error("Failed to list dead letters", "error", err)
			return
		}

		retried, succeeded, exhausted := 0, 0, 0
		for i := range letters {
			letter := &letters[i]

			if letter.Attempts >= maxAttempts {
				exhausted++
				logger.Warn("Dead letter exhausted its retries",
					"id", letter.ID,
					"channel", letter.Channel,
					"operation", letter.Operation,
					"attempts", letter.Attempts,
				)
				continue
			}

			retried++
			if err := jr.retrier.Retry(ctx, letter); err != nil {
				letter.Attempts++
				letter.Reason = err.Error()
				letter.LastAttemptAt = time.Now().UTC()
				if updateErr := jr.deadLetters.Update(ctx, letter); updateErr != nil {
					logger.Error("Failed to update dead letter", "id", letter.ID, "error", updateErr)
				}
				logger.Warn("Dead letter retry failed",
					"id", letter.ID,
					"channel", letter.Channel,
					"operation", letter.Operation,
					"attempts", letter.Attempts,
					"error", err,
				)
				continue
			}

			if err := jr.deadLetters.Delete(ctx, letter.ID); err != nil {
				logger.Error("Failed to delete retried dead letter", "id", letter.ID, "error", err)
				continue
			}
			succeeded++
		}

		logger.Info("Dead letter sweep finished",
			"listed", len(letters),
			"retried", retried,
			"succeeded", succeeded,
			"exhausted", exhausted,
		)
	})
}
