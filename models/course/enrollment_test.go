package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name         string
		lessonIndex  int
		totalLessons int
		want         int
		wantValid    bool
	}{
		{"first lesson of ten", 0, 10, 10, true},
		{"middle lesson rounds", 3, 7, 57, true},
		{"last lesson reaches hundred", 9, 10, 100, true},
		{"single lesson course", 0, 1, 100, true},
		{"index past total is capped", 12, 10, 100, true},
		{"zero total lessons", 0, 0, 0, false},
		{"negative total lessons", 0, -3, 0, false},
		{"negative lesson index", -1, 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, valid := ComputeProgress(tt.lessonIndex, tt.totalLessons)
			assert.Equal(t, tt.wantValid, valid)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, EnrollmentInProgress, DeriveStatus(0))
	assert.Equal(t, EnrollmentInProgress, DeriveStatus(50))
	assert.Equal(t, EnrollmentInProgress, DeriveStatus(99))
	assert.Equal(t, EnrollmentCompleted, DeriveStatus(100))
}
