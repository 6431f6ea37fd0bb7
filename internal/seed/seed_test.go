package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguages(t *testing.T) {
	languages := Languages()
	require.Len(t, languages, 10)

	codes := map[string]bool{}
	for _, lang := range languages {
		assert.NotEmpty(t, lang.Code)
		assert.NotEmpty(t, lang.Name)
		assert.True(t, lang.IsActive)
		assert.False(t, codes[lang.Code], "duplicate code %s", lang.Code)
		codes[lang.Code] = true
	}
	assert.True(t, codes["en"])
	assert.True(t, codes["de"])
	assert.True(t, codes["tr"])
}

func TestCountries(t *testing.T) {
	countries := Countries()
	require.Len(t, countries, 8)

	codes := map[string]bool{}
	for _, country := range countries {
		assert.NotEmpty(t, country.Code)
		assert.NotEmpty(t, country.Name)
		assert.True(t, country.IsActive)
		assert.False(t, codes[country.Code], "duplicate code %s", country.Code)
		codes[country.Code] = true
	}
	assert.True(t, codes["DE"])
	assert.True(t, codes["TR"])
}

func TestMajors(t *testing.T) {
	majors := Majors()
	require.Len(t, majors, 4)

	names := map[string]bool{}
	for _, major := range majors {
		assert.NotEmpty(t, major.Name)
		assert.Equal(t, "Engineering", major.Department)
		assert.True(t, major.IsActive)
		assert.False(t, names[major.Name], "duplicate major %s", major.Name)
		names[major.Name] = true
	}
	assert.True(t, names["Software Engineering"])
}

func TestMainMentors(t *testing.T) {
	mentors := MainMentors()
	require.Len(t, mentors, 4)

	emails := map[string]bool{}
	for _, profile := range mentors {
		assert.NotEmpty(t, profile.FirstName)
		assert.NotEmpty(t, profile.LastName)
		assert.True(t, strings.HasSuffix(profile.Email, "@stu.uni-munich.de"), "unexpected domain for %s", profile.Email)
		assert.False(t, emails[profile.Email], "duplicate email %s", profile.Email)
		emails[profile.Email] = true

		assert.NotEmpty(t, profile.Mentor.Bio)
		assert.NotEmpty(t, profile.Mentor.Languages)
		assert.NotEmpty(t, profile.Mentor.Majors)
		assert.True(t, profile.Mentor.IsAvailable)
		assert.Positive(t, profile.Mentor.MaxMentees)
	}
}
