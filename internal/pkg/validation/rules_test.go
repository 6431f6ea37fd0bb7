package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInstitutionalEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"emma.johnson@stu.uni-munich.de", true},
		{"staff.member@uni-munich.de", true},
		{"first-last@stu.uni-munich.de", true},
		{"emma@gmail.com", false},
		{"emma.johnson@stu.uni-munich.de.evil.com", false},
		{"@stu.uni-munich.de", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInstitutionalEmail(tt.email))
		})
	}
}

func TestSetEmailPattern(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, SetEmailPattern(DefaultEmailPattern))
	})

	require.NoError(t, SetEmailPattern(`^[a-z.]+@example\.edu$`))
	assert.True(t, IsInstitutionalEmail("jane.doe@example.edu"))
	assert.False(t, IsInstitutionalEmail("jane.doe@stu.uni-munich.de"))

	assert.Error(t, SetEmailPattern(`([`))
}

func TestIsValidRating(t *testing.T) {
	assert.True(t, IsValidRating(0))
	assert.True(t, IsValidRating(4.4))
	assert.True(t, IsValidRating(5))
	assert.False(t, IsValidRating(-0.1))
	assert.False(t, IsValidRating(5.1))
}
