package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/derya/mentorlink/internal/app/models"
)

// testLogger discards output so test runs stay quiet.
var testLogger = zerolog.Nop()

type fakeUserRepo struct {
	createFn         func(ctx context.Context, user *models.User) error
	getAllFn         func(ctx context.Context) ([]*models.User, error)
	getMentorUsersFn func(ctx context.Context) ([]*models.User, error)
	getByIDFn        func(ctx context.Context, id int64) (*models.User, error)
	getByEmailFn     func(ctx context.Context, email string) (*models.User, error)
	getPublicByIDsFn func(ctx context.Context, ids []int64) (map[int64]*models.User, error)
	existsByEmailFn  func(ctx context.Context, email string) (bool, error)
	updateFn         func(ctx context.Context, user *models.User) error
	deleteFn         func(ctx context.Context, id int64) error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeUserRepo) GetMentorUsers(ctx context.Context) ([]*models.User, error) {
	if f.getMentorUsersFn != nil {
		return f.getMentorUsersFn(ctx)
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return &models.User{ID: id}, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return &models.User{Email: email}, nil
}

func (f *fakeUserRepo) GetPublicByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
	if f.getPublicByIDsFn != nil {
		return f.getPublicByIDsFn(ctx, ids)
	}
	return map[int64]*models.User{}, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.existsByEmailFn != nil {
		return f.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, user)
	}
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeMentorRepo struct {
	createFn         func(ctx context.Context, mentor *models.Mentor) error
	getAllFn         func(ctx context.Context, filters models.MentorFilters) ([]*models.Mentor, error)
	getByIDFn        func(ctx context.Context, id int64) (*models.Mentor, error)
	getByUserIDFn    func(ctx context.Context, userID int64) (*models.Mentor, error)
	getByIDsFn       func(ctx context.Context, ids []int64) (map[int64]*models.Mentor, error)
	existsByUserIDFn func(ctx context.Context, userID int64) (bool, error)
	updateFn         func(ctx context.Context, mentor *models.Mentor) error
	updateRatingFn   func(ctx context.Context, id int64, rating float64, totalRatings, expectedTotal int) (bool, error)
	deleteFn         func(ctx context.Context, id int64) error
}

func (f *fakeMentorRepo) Create(ctx context.Context, mentor *models.Mentor) error {
	if f.createFn != nil {
		return f.createFn(ctx, mentor)
	}
	return nil
}

func (f *fakeMentorRepo) GetAll(ctx context.Context, filters models.MentorFilters) ([]*models.Mentor, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, filters)
	}
	return nil, nil
}

func (f *fakeMentorRepo) GetByID(ctx context.Context, id int64) (*models.Mentor, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return &models.Mentor{ID: id}, nil
}

func (f *fakeMentorRepo) GetByUserID(ctx context.Context, userID int64) (*models.Mentor, error) {
	if f.getByUserIDFn != nil {
		return f.getByUserIDFn(ctx, userID)
	}
	return &models.Mentor{UserID: userID}, nil
}

func (f *fakeMentorRepo) GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.Mentor, error) {
	if f.getByIDsFn != nil {
		return f.getByIDsFn(ctx, ids)
	}
	return map[int64]*models.Mentor{}, nil
}

func (f *fakeMentorRepo) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	if f.existsByUserIDFn != nil {
		return f.existsByUserIDFn(ctx, userID)
	}
	return false, nil
}

func (f *fakeMentorRepo) Update(ctx context.Context, mentor *models.Mentor) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, mentor)
	}
	return nil
}

func (f *fakeMentorRepo) UpdateRating(ctx context.Context, id int64, rating float64, totalRatings, expectedTotal int) (bool, error) {
	if f.updateRatingFn != nil {
		return f.updateRatingFn(ctx, id, rating, totalRatings, expectedTotal)
	}
	return true, nil
}

func (f *fakeMentorRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeRequestRepo struct {
	createFn               func(ctx context.Context, request *models.MentorshipRequest) error
	getAllFn               func(ctx context.Context) ([]*models.MentorshipRequest, error)
	getByStudentIDFn       func(ctx context.Context, studentID int64) ([]*models.MentorshipRequest, error)
	getByMentorIDFn        func(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error)
	getPendingByMentorIDFn func(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error)
	getByIDFn              func(ctx context.Context, id int64) (*models.MentorshipRequest, error)
	updateFn               func(ctx context.Context, request *models.MentorshipRequest) error
	deleteFn               func(ctx context.Context, id int64) error
}

func (f *fakeRequestRepo) Create(ctx context.Context, request *models.MentorshipRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, request)
	}
	return nil
}

func (f *fakeRequestRepo) GetAll(ctx context.Context) ([]*models.MentorshipRequest, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeRequestRepo) GetByStudentID(ctx context.Context, studentID int64) ([]*models.MentorshipRequest, error) {
	if f.getByStudentIDFn != nil {
		return f.getByStudentIDFn(ctx, studentID)
	}
	return nil, nil
}

func (f *fakeRequestRepo) GetByMentorID(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error) {
	if f.getByMentorIDFn != nil {
		return f.getByMentorIDFn(ctx, mentorID)
	}
	return nil, nil
}

func (f *fakeRequestRepo) GetPendingByMentorID(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error) {
	if f.getPendingByMentorIDFn != nil {
		return f.getPendingByMentorIDFn(ctx, mentorID)
	}
	return nil, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return &models.MentorshipRequest{ID: id}, nil
}

func (f *fakeRequestRepo) Update(ctx context.Context, request *models.MentorshipRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, request)
	}
	return nil
}

func (f *fakeRequestRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeSessionRepo struct {
	createFn         func(ctx context.Context, session *models.MentoringSession) error
	getAllFn         func(ctx context.Context) ([]*models.MentoringSession, error)
	getByStudentIDFn func(ctx context.Context, studentID int64) ([]*models.MentoringSession, error)
	getByMentorIDFn  func(ctx context.Context, mentorID int64) ([]*models.MentoringSession, error)
	getUpcomingFn    func(ctx context.Context, participantID int64, asMentor bool) ([]*models.MentoringSession, error)
	getByIDFn        func(ctx context.Context, id int64) (*models.MentoringSession, error)
	updateFn         func(ctx context.Context, session *models.MentoringSession) error
	deleteFn         func(ctx context.Context, id int64) error
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *models.MentoringSession) error {
	if f.createFn != nil {
		return f.createFn(ctx, session)
	}
	return nil
}

func (f *fakeSessionRepo) GetAll(ctx context.Context) ([]*models.MentoringSession, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeSessionRepo) GetByStudentID(ctx context.Context, studentID int64) ([]*models.MentoringSession, error) {
	if f.getByStudentIDFn != nil {
		return f.getByStudentIDFn(ctx, studentID)
	}
	return nil, nil
}

func (f *fakeSessionRepo) GetByMentorID(ctx context.Context, mentorID int64) ([]*models.MentoringSession, error) {
	if f.getByMentorIDFn != nil {
		return f.getByMentorIDFn(ctx, mentorID)
	}
	return nil, nil
}

func (f *fakeSessionRepo) GetUpcoming(ctx context.Context, participantID int64, asMentor bool) ([]*models.MentoringSession, error) {
	if f.getUpcomingFn != nil {
		return f.getUpcomingFn(ctx, participantID, asMentor)
	}
	return nil, nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id int64) (*models.MentoringSession, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return &models.MentoringSession{ID: id}, nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, session *models.MentoringSession) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, session)
	}
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeLanguageRepo struct {
	createFn       func(ctx context.Context, language *models.Language) error
	getAllActiveFn func(ctx context.Context) ([]*models.Language, error)
	getByIDFn      func(ctx context.Context, id int64) (*models.Language, error)
	deleteFn       func(ctx context.Context, id int64) error
	countFn        func(ctx context.Context) (int64, error)
	insertManyFn   func(ctx context.Context, languages []models.Language) error
}

func (f *fakeLanguageRepo) Create(ctx context.Context, language *models.Language) error {
	if f.createFn != nil {
		return f.createFn(ctx, language)
	}
	return nil
}

func (f *fakeLanguageRepo) GetAllActive(ctx context.Context) ([]*models.Language, error) {
	if f.getAllActiveFn != nil {
		return f.getAllActiveFn(ctx)
	}
	return nil, nil
}

func (f *fakeLanguageRepo) GetByID(ctx context.Context, id int64) (*models.Language, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return &models.Language{ID: id}, nil
}

func (f *fakeLanguageRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeLanguageRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx)
	}
	return 0, nil
}

func (f *fakeLanguageRepo) InsertMany(ctx context.Context, languages []models.Language) error {
	if f.insertManyFn != nil {
		return f.insertManyFn(ctx, languages)
	}
	return nil
}
