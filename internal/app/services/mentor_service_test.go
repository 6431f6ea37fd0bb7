package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derya/mentorlink/internal/app/models"
	"github.com/derya/mentorlink/internal/app/models/dto"
	"github.com/derya/mentorlink/internal/pkg/apperrors"
	"github.com/derya/mentorlink/internal/seed"
)

func TestComputeNextRating(t *testing.T) {
	tests := []struct {
		name          string
		currentRating float64
		totalRatings  int
		newRating     float64
		want          float64
	}{
		{"first rating", 0, 0, 4.8, 4.8},
		{"second rating averages", 4.8, 1, 4.0, 4.4},
		{"rounds to one decimal", 4.0, 2, 4.5, 4.2},
		{"rounds half up", 4.0, 1, 4.1, 4.1},
		{"five star streak stays five", 5.0, 9, 5.0, 5.0},
		{"zero rating pulls average down", 4.0, 1, 0, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeNextRating(tt.currentRating, tt.totalRatings, tt.newRating)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestUpdateRating_RetriesOnConcurrentWrite(t *testing.T) {
	attempts := 0
	mentorRepo := &fakeMentorRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Mentor, error) {
			return &models.Mentor{ID: id, UserID: 2, Rating: 4.0, TotalRatings: 2}, nil
		},
		updateRatingFn: func(ctx context.Context, id int64, rating float64, totalRatings, expectedTotal int) (bool, error) {
			attempts++
			// First write loses the race, second one lands.
			return attempts > 1, nil
		},
	}
	svc := NewMentorService(mentorRepo, &fakeUserRepo{}, "", testLogger)

	mentor, err := svc.UpdateRating(context.Background(), 1, 5.0)
	require.NoError(t, err)

	assert.Equal(t, 2, attempts)
	assert.InDelta(t, 4.3, mentor.Rating, 0.0001)
	assert.Equal(t, 3, mentor.TotalRatings)
}

func TestUpdateRating_ConflictAfterExhaustedRetries(t *testing.T) {
	attempts := 0
	mentorRepo := &fakeMentorRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Mentor, error) {
			return &models.Mentor{ID: id, Rating: 4.0, TotalRatings: 2}, nil
		},
		updateRatingFn: func(ctx context.Context, id int64, rating float64, totalRatings, expectedTotal int) (bool, error) {
			attempts++
			return false, nil
		},
	}
	svc := NewMentorService(mentorRepo, &fakeUserRepo{}, "", testLogger)

	_, err := svc.UpdateRating(context.Background(), 1, 5.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, ratingUpdateRetries, attempts)
}

func TestUpdateRating_PassesOptimisticToken(t *testing.T) {
	mentorRepo := &fakeMentorRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Mentor, error) {
			return &models.Mentor{ID: id, Rating: 4.4, TotalRatings: 7}, nil
		},
		updateRatingFn: func(ctx context.Context, id int64, rating float64, totalRatings, expectedTotal int) (bool, error) {
			assert.Equal(t, 7, expectedTotal)
			assert.Equal(t, 8, totalRatings)
			return true, nil
		},
	}
	svc := NewMentorService(mentorRepo, &fakeUserRepo{}, "", testLogger)

	_, err := svc.UpdateRating(context.Background(), 1, 3.0)
	require.NoError(t, err)
}

func TestCreateMentor_DuplicateProfile(t *testing.T) {
	mentorRepo := &fakeMentorRepo{
		existsByUserIDFn: func(ctx context.Context, userID int64) (bool, error) {
			return true, nil
		},
	}
	svc := NewMentorService(mentorRepo, &fakeUserRepo{}, "", testLogger)

	_, err := svc.CreateMentor(context.Background(), &dto.CreateMentorRequest{UserID: 7, Bio: "bio"})
	assert.ErrorIs(t, err, apperrors.ErrMentorAlreadyExists)
}

func TestCreateMentor_Defaults(t *testing.T) {
	var created *models.Mentor
	mentorRepo := &fakeMentorRepo{
		createFn: func(ctx context.Context, mentor *models.Mentor) error {
			mentor.ID = 1
			created = mentor
			return nil
		},
	}
	userRepo := &fakeUserRepo{
		getPublicByIDsFn: func(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
			return map[int64]*models.User{7: {ID: 7, FirstName: "Sarah", LastName: "Chen"}}, nil
		},
	}
	svc := NewMentorService(mentorRepo, userRepo, "", testLogger)

	mentor, err := svc.CreateMentor(context.Background(), &dto.CreateMentorRequest{UserID: 7, Bio: "bio"})
	require.NoError(t, err)

	assert.True(t, created.IsAvailable)
	assert.Equal(t, 5, created.MaxMentees)
	require.NotNil(t, mentor.User)
	assert.Equal(t, "Sarah", mentor.User.FirstName)
	assert.Empty(t, mentor.User.Password)
}

func TestGetAllMentors_DanglingUserLeftNil(t *testing.T) {
	mentorRepo := &fakeMentorRepo{
		getAllFn: func(ctx context.Context, filters models.MentorFilters) ([]*models.Mentor, error) {
			return []*models.Mentor{
				{ID: 1, UserID: 7},
				{ID: 2, UserID: 99},
			}, nil
		},
	}
	userRepo := &fakeUserRepo{
		getPublicByIDsFn: func(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
			return map[int64]*models.User{7: {ID: 7}}, nil
		},
	}
	svc := NewMentorService(mentorRepo, userRepo, "", testLogger)

	mentors, err := svc.GetAllMentors(context.Background(), models.MentorFilters{})
	require.NoError(t, err)
	require.Len(t, mentors, 2)
	assert.NotNil(t, mentors[0].User)
	assert.Nil(t, mentors[1].User)
}

func TestSeedMainMentors_DisabledWithoutPassword(t *testing.T) {
	svc := NewMentorService(&fakeMentorRepo{}, &fakeUserRepo{}, "", testLogger)

	_, err := svc.SeedMainMentors(context.Background(), "anything")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestSeedMainMentors_RejectsWrongPassword(t *testing.T) {
	svc := NewMentorService(&fakeMentorRepo{}, &fakeUserRepo{}, "s3cret", testLogger)

	_, err := svc.SeedMainMentors(context.Background(), "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestSeedMainMentors_CreatesUsersAndProfiles(t *testing.T) {
	var nextUserID int64
	userRepo := &fakeUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, apperrors.ErrUserNotFound
		},
		createFn: func(ctx context.Context, user *models.User) error {
			nextUserID++
			user.ID = nextUserID
			assert.True(t, user.IsMentor)
			assert.Equal(t, models.RoleStudent, user.Role)
			assert.NotEmpty(t, user.Password)
			return nil
		},
	}
	var createdProfiles int
	mentorRepo := &fakeMentorRepo{
		createFn: func(ctx context.Context, mentor *models.Mentor) error {
			createdProfiles++
			assert.NotZero(t, mentor.UserID)
			return nil
		},
	}
	svc := NewMentorService(mentorRepo, userRepo, "s3cret", testLogger)

	result, err := svc.SeedMainMentors(context.Background(), "s3cret")
	require.NoError(t, err)

	want := len(seed.MainMentors())
	assert.Equal(t, want, result.Created)
	assert.Zero(t, result.AlreadyExists)
	assert.Zero(t, result.Errors)
	assert.Equal(t, want, createdProfiles)
	assert.Len(t, result.Outcomes, want)
}

func TestSeedMainMentors_SkipsExistingProfiles(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, IsMentor: true}, nil
		},
	}
	mentorRepo := &fakeMentorRepo{
		existsByUserIDFn: func(ctx context.Context, userID int64) (bool, error) {
			return true, nil
		},
	}
	svc := NewMentorService(mentorRepo, userRepo, "s3cret", testLogger)

	result, err := svc.SeedMainMentors(context.Background(), "s3cret")
	require.NoError(t, err)

	assert.Zero(t, result.Created)
	assert.Equal(t, len(seed.MainMentors()), result.AlreadyExists)
}

func TestSeedMainMentors_ForcesMentorFlagOnExistingUser(t *testing.T) {
	var updated *models.User
	userRepo := &fakeUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 3, Email: email, IsMentor: false}, nil
		},
		updateFn: func(ctx context.Context, user *models.User) error {
			updated = user
			return nil
		},
	}
	svc := NewMentorService(&fakeMentorRepo{}, userRepo, "s3cret", testLogger)

	_, err := svc.SeedMainMentors(context.Background(), "s3cret")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.IsMentor)
}
