package utils

import (
	"testing"

	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyWithoutWorkerDoesNotPanic(t *testing.T) {
	notifyQueue = nil

	assert.NotPanics(t, func() {
		Notify(1, "Course approved", "Your course is live.", models.SeveritySuccess, nil)
	})
}

func TestNotifyNeverBlocksOnFullQueue(t *testing.T) {
	// Unbuffered channel with no worker draining it: a blocking send
	// would hang the test here.
	notifyQueue = make(chan models.Notification)
	defer func() { notifyQueue = nil }()

	assert.NotPanics(t, func() {
		Notify(2, "Course rejected", "See moderation notes.", models.SeverityError, map[string]interface{}{
			"courseId": 7,
			"reason":   "duplicate content",
		})
	})
}

func TestNotifyEnqueuesRecordWithPayload(t *testing.T) {
	notifyQueue = make(chan models.Notification, 1)
	defer func() { notifyQueue = nil }()

	Notify(5, "Enrollment confirmed", "Welcome aboard!", models.SeverityInfo, map[string]interface{}{
		"courseId": 12,
	})

	require.Len(t, notifyQueue, 1)
	n := <-notifyQueue
	assert.Equal(t, uint(5), n.UserID)
	assert.Equal(t, "Enrollment confirmed", n.Title)
	assert.Equal(t, models.SeverityInfo, n.Severity)
	assert.JSONEq(t, `{"courseId":12}`, n.Data)
}
