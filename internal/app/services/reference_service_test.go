package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derya/mentorlink/internal/app/models"
)

func TestSeedLanguages_SkipsPopulatedTable(t *testing.T) {
	inserted := false
	repo := &fakeLanguageRepo{
		countFn: func(ctx context.Context) (int64, error) {
			return 3, nil
		},
		insertManyFn: func(ctx context.Context, languages []models.Language) error {
			inserted = true
			return nil
		},
	}
	svc := NewLanguageService(repo, testLogger)

	result, err := svc.SeedLanguages(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Seeded)
	assert.Zero(t, result.Inserted)
	assert.False(t, inserted)
}

func TestSeedLanguages_InsertsCanonicalList(t *testing.T) {
	var got []models.Language
	repo := &fakeLanguageRepo{
		insertManyFn: func(ctx context.Context, languages []models.Language) error {
			got = languages
			return nil
		},
	}
	svc := NewLanguageService(repo, testLogger)

	result, err := svc.SeedLanguages(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Seeded)
	assert.Equal(t, 10, result.Inserted)
	assert.Len(t, got, 10)
	for _, lang := range got {
		assert.True(t, lang.IsActive)
	}
}

func TestCreateLanguage_ActiveByDefault(t *testing.T) {
	var created *models.Language
	repo := &fakeLanguageRepo{
		createFn: func(ctx context.Context, language *models.Language) error {
			language.ID = 1
			created = language
			return nil
		},
	}
	svc := NewLanguageService(repo, testLogger)

	language, err := svc.CreateLanguage(context.Background(), "fr", "French")
	require.NoError(t, err)

	assert.True(t, created.IsActive)
	assert.Equal(t, "fr", language.Code)
	assert.Equal(t, "French", language.Name)
}
