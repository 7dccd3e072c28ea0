package controllers

import (
	"errors"
	"fmt"
	"testing"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestEnrollmentCreateErrorMapsDuplicateKeyToConflict(t *testing.T) {
	status, kind, message := enrollmentCreateError(gorm.ErrDuplicatedKey)

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, middleware.KindDuplicateEnrollment, kind)
	assert.Equal(t, "Already enrolled in this course!", message)
}

func TestEnrollmentCreateErrorUnwrapsDuplicateKey(t *testing.T) {
	// Drivers and gorm hooks may wrap the sentinel; the mapping must
	// still recognize it.
	wrapped := fmt.Errorf("insert enrollments: %w", gorm.ErrDuplicatedKey)

	status, kind, _ := enrollmentCreateError(wrapped)

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, middleware.KindDuplicateEnrollment, kind)
}

func TestEnrollmentCreateErrorOtherFailuresAreServerFaults(t *testing.T) {
	status, kind, _ := enrollmentCreateError(errors.New("connection reset"))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, middleware.KindExternalService, kind)
}
