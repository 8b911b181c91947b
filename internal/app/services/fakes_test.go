package services

import (
	"context"
	"time"

	"github.com/yigit/examport/internal/app/models"
	"github.com/yigit/examport/internal/pkg/apperrors"
)

// In-memory repository fakes mirroring the constraint behavior of the real
// repositories: unique violations come back as the same typed errors the
// postgres layer maps from constraint names.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64

	ownedCourses map[int64]int
	enrollments  map[int64]int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:        make(map[int64]*models.User),
		nextID:       1,
		ownedCourses: make(map[int64]int),
		enrollments:  make(map[int64]int),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	for id, u := range r.users {
		if id == user.ID {
			continue
		}
		if u.Username == user.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	hash := stored.PasswordHash
	copied := *user
	copied.PasswordHash = hash
	copied.UpdatedAt = time.Now()
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, userID int64) error {
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	now := time.Now()
	u.LastLoginAt = &now
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, userID int64, passwordHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) Deactivate(_ context.Context, userID int64) error {
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.IsActive = false
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) CountOwnedCourses(_ context.Context, userID int64) (int, error) {
	return r.ownedCourses[userID], nil
}

func (r *fakeUserRepo) CountEnrollments(_ context.Context, userID int64) (int, error) {
	return r.enrollments[userID], nil
}

type fakeCourseRepo struct {
	courses  map[int64]*models.Course
	nextID   int64
	enrolled map[[2]int64]*models.Enrollment
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		courses:  make(map[int64]*models.Course),
		nextID:   1,
		enrolled: make(map[[2]int64]*models.Enrollment),
	}
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	for _, c := range r.courses {
		if c.Code == course.Code {
			return apperrors.ErrCourseCodeAlreadyExists
		}
	}
	course.ID = r.nextID
	r.nextID++
	course.CreatedAt = time.Now()
	stored := *course
	r.courses[course.ID] = &stored
	return nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCourseRepo) GetAll(_ context.Context, includeInactive bool) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(r.courses))
	for _, c := range r.courses {
		if !includeInactive && !c.IsActive {
			continue
		}
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeCourseRepo) GetByInstructor(_ context.Context, userID int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range r.courses {
		if c.CreatedBy == userID && c.IsActive {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) GetEnrolledCourses(_ context.Context, userID int64) ([]*models.Course, error) {
	var out []*models.Course
	for key := range r.enrolled {
		if key[1] != userID {
			continue
		}
		if c, ok := r.courses[key[0]]; ok && c.IsActive {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := r.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for id, c := range r.courses {
		if id != course.ID && c.Code == course.Code {
			return apperrors.ErrCourseCodeAlreadyExists
		}
	}
	copied := *course
	r.courses[course.ID] = &copied
	return nil
}

func (r *fakeCourseRepo) SoftDelete(_ context.Context, id int64) error {
	c, ok := r.courses[id]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	c.IsActive = false
	return nil
}

func (r *fakeCourseRepo) Enroll(_ context.Context, enrollment *models.Enrollment) error {
	key := [2]int64{enrollment.CourseID, enrollment.UserID}
	if _, ok := r.enrolled[key]; ok {
		return apperrors.ErrAlreadyEnrolled
	}
	enrollment.EnrollmentDate = time.Now()
	stored := *enrollment
	r.enrolled[key] = &stored
	return nil
}

func (r *fakeCourseRepo) IsEnrolled(_ context.Context, courseID, userID int64) (bool, error) {
	_, ok := r.enrolled[[2]int64{courseID, userID}]
	return ok, nil
}

type fakeExamRepo struct {
	exams  map[int64]*models.Exam
	nextID int64
}

func newFakeExamRepo() *fakeExamRepo {
	return &fakeExamRepo{exams: make(map[int64]*models.Exam), nextID: 1}
}

func (r *fakeExamRepo) Create(_ context.Context, exam *models.Exam) error {
	exam.ID = r.nextID
	r.nextID++
	exam.CreatedAt = time.Now()
	stored := *exam
	r.exams[exam.ID] = &stored
	return nil
}

func (r *fakeExamRepo) GetByID(_ context.Context, id int64) (*models.Exam, error) {
	e, ok := r.exams[id]
	if !ok || !e.IsActive {
		return nil, apperrors.ErrExamNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeExamRepo) GetByCourse(_ context.Context, courseID int64) ([]*models.Exam, error) {
	var out []*models.Exam
	for _, e := range r.exams {
		if e.CourseID == courseID && e.IsActive {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeExamRepo) GetByCreator(_ context.Context, userID int64) ([]*models.Exam, error) {
	var out []*models.Exam
	for _, e := range r.exams {
		if e.CreatedBy == userID && e.IsActive {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeExamRepo) GetAvailableForStudent(_ context.Context, courseID int64, now time.Time) ([]*models.Exam, error) {
	var out []*models.Exam
	for _, e := range r.exams {
		if e.CourseID == courseID && e.AvailableAt(now) {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeExamRepo) Publish(_ context.Context, id int64) error {
	e, ok := r.exams[id]
	if !ok || !e.IsActive {
		return apperrors.ErrExamNotFound
	}
	e.IsPublished = true
	return nil
}

func (r *fakeExamRepo) Update(_ context.Context, exam *models.Exam) error {
	if _, ok := r.exams[exam.ID]; !ok {
		return apperrors.ErrExamNotFound
	}
	copied := *exam
	r.exams[exam.ID] = &copied
	return nil
}

func (r *fakeExamRepo) SoftDelete(_ context.Context, id int64) error {
	e, ok := r.exams[id]
	if !ok {
		return apperrors.ErrExamNotFound
	}
	e.IsActive = false
	return nil
}

type fakeQuestionRepo struct {
	questions map[int64]*models.Question
	options   map[int64]*models.QuestionOption
	nextID    int64
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{
		questions: make(map[int64]*models.Question),
		options:   make(map[int64]*models.QuestionOption),
		nextID:    1,
	}
}

func (r *fakeQuestionRepo) Create(_ context.Context, question *models.Question) error {
	question.ID = r.nextID
	r.nextID++
	question.CreatedAt = time.Now()
	stored := *question
	stored.Options = nil
	r.questions[question.ID] = &stored
	return nil
}

func (r *fakeQuestionRepo) GetByID(_ context.Context, id int64) (*models.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, apperrors.ErrQuestionNotFound
	}
	copied := *q
	copied.Options = nil
	return &copied, nil
}

func (r *fakeQuestionRepo) GetByExam(_ context.Context, examID int64) ([]*models.Question, error) {
	var out []*models.Question
	for _, q := range r.questions {
		if q.ExamID == examID {
			copied := *q
			copied.Options = nil
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) GetWithOptions(_ context.Context, id int64) (*models.Question, error) {
	q, err := r.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	for _, o := range r.options {
		if o.QuestionID == id {
			copied := *o
			q.Options = append(q.Options, &copied)
		}
	}
	return q, nil
}

func (r *fakeQuestionRepo) GetByExamWithOptions(_ context.Context, examID int64) ([]*models.Question, error) {
	questions, err := r.GetByExam(context.Background(), examID)
	if err != nil {
		return nil, err
	}
	for _, q := range questions {
		for _, o := range r.options {
			if o.QuestionID == q.ID {
				copied := *o
				q.Options = append(q.Options, &copied)
			}
		}
	}
	return questions, nil
}

func (r *fakeQuestionRepo) Update(_ context.Context, question *models.Question) error {
	if _, ok := r.questions[question.ID]; !ok {
		return apperrors.ErrQuestionNotFound
	}
	copied := *question
	copied.Options = nil
	r.questions[question.ID] = &copied
	return nil
}

func (r *fakeQuestionRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.questions[id]; !ok {
		return apperrors.ErrQuestionNotFound
	}
	delete(r.questions, id)
	for oid, o := range r.options {
		if o.QuestionID == id {
			delete(r.options, oid)
		}
	}
	return nil
}

func (r *fakeQuestionRepo) AddOption(_ context.Context, option *models.QuestionOption) error {
	if _, ok := r.questions[option.QuestionID]; !ok {
		return apperrors.ErrQuestionNotFound
	}
	option.ID = r.nextID
	r.nextID++
	stored := *option
	r.options[option.ID] = &stored
	return nil
}

func (r *fakeQuestionRepo) GetOptionByID(_ context.Context, id int64) (*models.QuestionOption, error) {
	o, ok := r.options[id]
	if !ok {
		return nil, apperrors.ErrOptionNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *fakeQuestionRepo) UpdateOption(_ context.Context, option *models.QuestionOption) error {
	if _, ok := r.options[option.ID]; !ok {
		return apperrors.ErrOptionNotFound
	}
	copied := *option
	r.options[option.ID] = &copied
	return nil
}

func (r *fakeQuestionRepo) DeleteOption(_ context.Context, id int64) error {
	if _, ok := r.options[id]; !ok {
		return apperrors.ErrOptionNotFound
	}
	delete(r.options, id)
	return nil
}
