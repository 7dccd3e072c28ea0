package utils

import (
	"encoding/json"
	"lms/database"
	"lms/models"
	"log"
)

// Fire-and-forget notification pipeline: requests hand a record to a
// buffered channel and move on; a single worker goroutine drains it into
// the notifications table. A slow or failing store can neither add
// latency nor fail the triggering operation.

var notifyQueue chan models.Notification

// StartNotificationWorker initializes the queue and starts the worker.
// Call once from main before the server accepts requests.
func StartNotificationWorker() {
	notifyQueue = make(chan models.Notification, 256)

	go func() {
		log.Println("[NOTIFY] Notification worker started")
		for n := range notifyQueue {
			if err := database.Database.Db.Create(&n).Error; err != nil {
				log.Printf("[NOTIFY] Failed to store notification for user %d: %v", n.UserID, err)
			}
		}
	}()
}

// Notify enqueues an internal notification for a user. Never blocks and
// never returns an error: a full queue drops the record with a log line.
func Notify(userID uint, title, message, severity string, data map[string]interface{}) {
	payload := ""
	if data != nil {
		if raw, err := json.Marshal(data); err == nil {
			payload = string(raw)
		}
	}

	n := models.Notification{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Severity: severity,
		Data:     payload,
	}

	if notifyQueue == nil {
		log.Printf("[NOTIFY] Worker not running, dropping notification for user %d", userID)
		return
	}

	select {
	case notifyQueue <- n:
	default:
		log.Printf("[NOTIFY] Queue full, dropping notification for user %d", userID)
	}
}
