package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examport/internal/app/models"
	"github.com/yigit/examport/internal/app/models/dto"
	"github.com/yigit/examport/internal/app/services"
	"github.com/yigit/examport/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memUserRepo backs controller tests with an in-memory user store that
// raises the same typed conflicts as the postgres repository.
type memUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
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
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memUserRepo) GetAll(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) UpdateLastLogin(_ context.Context, _ int64) error { return nil }

func (r *memUserRepo) UpdatePassword(_ context.Context, userID int64, passwordHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *memUserRepo) Deactivate(_ context.Context, userID int64) error {
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.IsActive = false
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) CountOwnedCourses(_ context.Context, _ int64) (int, error) { return 0, nil }
func (r *memUserRepo) CountEnrollments(_ context.Context, _ int64) (int, error)  { return 0, nil }

func newUserRouter() *gin.Engine {
	controller := NewUserController(services.NewUserService(newMemUserRepo()))
	router := gin.New()
	router.POST("/api/users", controller.CreateUser)
	router.GET("/api/users/:id", controller.GetUserByID)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

const validUserBody = `{
	"username": "alice",
	"email": "alice@example.com",
	"password": "s3cretpassword",
	"firstName": "Alice",
	"lastName": "Smith",
	"role": "teacher"
}`

func TestCreateUserEndpoint(t *testing.T) {
	router := newUserRouter()

	w := doJSON(router, http.MethodPost, "/api/users", validUserBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", w.Code, w.Body.String())
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data, _ := resp.Data.(map[string]interface{})
	if data["username"] != "alice" {
		t.Errorf("username = %v", data["username"])
	}
	if _, leaked := data["passwordHash"]; leaked {
		t.Error("password hash serialized in response")
	}
}

func TestCreateUserEndpointDuplicate(t *testing.T) {
	router := newUserRouter()

	if w := doJSON(router, http.MethodPost, "/api/users", validUserBody); w.Code != http.StatusCreated {
		t.Fatalf("first create: %d", w.Code)
	}

	w := doJSON(router, http.MethodPost, "/api/users", validUserBody)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409, body: %s", w.Code, w.Body.String())
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeResourceAlreadyExists {
		t.Errorf("error = %+v, want RES_002", resp.Error)
	}
}

func TestCreateUserEndpointBadBody(t *testing.T) {
	router := newUserRouter()

	// Missing required fields fails gin binding before the service runs.
	w := doJSON(router, http.MethodPost, "/api/users", `{"username": "alice"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	w = doJSON(router, http.MethodPost, "/api/users", `not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetUserEndpoint(t *testing.T) {
	router := newUserRouter()

	if w := doJSON(router, http.MethodPost, "/api/users", validUserBody); w.Code != http.StatusCreated {
		t.Fatalf("create: %d", w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/1", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/404", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing user status = %d, want 404", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", w.Code)
	}
}
