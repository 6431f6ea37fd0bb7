// Package seed holds the canonical data sets used to bootstrap an
// empty deployment: the reference tables and the main mentor profiles.
package seed

import (
	"github.com/derya/mentorlink/internal/app/models"
)

// Languages returns the canonical language list
func Languages() []models.Language {
	return []models.Language{
		{Code: "de", Name: "German", IsActive: true},
		{Code: "en", Name: "English", IsActive: true},
		{Code: "tr", Name: "Turkish", IsActive: true},
		{Code: "ro", Name: "Romanian", IsActive: true},
		{Code: "ru", Name: "Russian", IsActive: true},
		{Code: "it", Name: "Italian", IsActive: true},
		{Code: "mk", Name: "Macedonian", IsActive: true},
		{Code: "sq", Name: "Albanian", IsActive: true},
		{Code: "lv", Name: "Latvian", IsActive: true},
		{Code: "lg", Name: "Luganda", IsActive: true},
	}
}

// Countries returns the canonical country list
func Countries() []models.Country {
	return []models.Country{
		{Code: "DE", Name: "Germany", IsActive: true},
		{Code: "TR", Name: "Turkey", IsActive: true},
		{Code: "UG", Name: "Uganda", IsActive: true},
		{Code: "IT", Name: "Italy", IsActive: true},
		{Code: "RO", Name: "Romania", IsActive: true},
		{Code: "LV", Name: "Latvia", IsActive: true},
		{Code: "AL", Name: "Albania", IsActive: true},
		{Code: "MK", Name: "North Macedonia", IsActive: true},
	}
}

// Majors returns the canonical major list
func Majors() []models.Major {
	return []models.Major{
		{Name: "Software Engineering", Department: "Engineering", IsActive: true},
		{Name: "Cyber Security", Department: "Engineering", IsActive: true},
		{Name: "Data Science And AI", Department: "Engineering", IsActive: true},
		{Name: "Digital Industrial Engineering", Department: "Engineering", IsActive: true},
	}
}
