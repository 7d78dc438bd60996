package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/middleware"
)

// stubUserService scripts the service layer so the handler mapping
// can be exercised without a database.
type stubUserService struct {
	registerResult *user.UserDTO
	registerErr    error
	loginErr       error
	currentUser    *user.UserDTO
	currentErr     error
	getErr         error
	deleteErr      error
}

func (s *stubUserService) Register(context.Context, user.CreateUserRequest) (*user.UserDTO, error) {
	return s.registerResult, s.registerErr
}

func (s *stubUserService) Login(context.Context, user.LoginRequest) (*user.TokenResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &user.TokenResponse{AccessToken: "tok", TokenType: "bearer"}, nil
}

func (s *stubUserService) CurrentUser(context.Context, string) (*user.UserDTO, error) {
	return s.currentUser, s.currentErr
}

func (s *stubUserService) Get(context.Context, int64) (*user.UserDTO, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &user.UserDTO{ID: 3, Username: "alice", Email: "a@x.com"}, nil
}

func (s *stubUserService) Update(_ context.Context, id int64, _ user.UpdateUserRequest) (*user.UserDTO, error) {
	return &user.UserDTO{ID: id}, nil
}

func (s *stubUserService) Delete(context.Context, int64) error {
	return s.deleteErr
}

type stubPostService struct {
	listErr error
}

func (s *stubPostService) Create(context.Context, post.CreatePostRequest) (*post.PostDTO, error) {
	return nil, nil
}
func (s *stubPostService) Get(context.Context, int64) (*post.PostDTO, error) { return nil, nil }
func (s *stubPostService) List(context.Context) ([]post.PostDTO, error)      { return nil, nil }
func (s *stubPostService) ListByUser(context.Context, int64) ([]post.PostDTO, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return []post.PostDTO{}, nil
}
func (s *stubPostService) UpdateFull(context.Context, int64, post.CreatePostRequest) (*post.PostDTO, error) {
	return nil, nil
}
func (s *stubPostService) UpdatePartial(context.Context, int64, post.UpdatePostRequest) (*post.PostDTO, error) {
	return nil, nil
}
func (s *stubPostService) Delete(context.Context, int64) error { return nil }

func newRouter(users *stubUserService, posts *stubPostService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(users, posts)

	r := gin.New()
	r.POST("/users", h.Register)
	r.POST("/users/token", h.Login)
	r.GET("/users/me", middleware.Auth(users), h.Me)
	r.GET("/users/:id", h.Get)
	r.GET("/users/:id/posts", h.GetPosts)
	r.DELETE("/users/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_Created(t *testing.T) {
	users := &stubUserService{registerResult: &user.UserDTO{ID: 7, Username: "alice", Email: "a@x.com"}}
	r := newRouter(users, &stubPostService{})

	w := doJSON(t, r, http.MethodPost, "/users",
		`{"username":"alice","email":"a@x.com","password":"sup3r-secret"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/v1/users/7", w.Header().Get("Location"))

	var body struct {
		Success bool         `json:"success"`
		Data    user.UserDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(7), body.Data.ID)
}

func TestRegister_DuplicateIsConflict(t *testing.T) {
	users := &stubUserService{registerErr: user.ErrUsernameTaken}
	r := newRouter(users, &stubPostService{})

	w := doJSON(t, r, http.MethodPost, "/users",
		`{"username":"alice","email":"a@x.com","password":"sup3r-secret"}`)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "username already exists")
}

func TestLogin_InvalidCredentialsIs401(t *testing.T) {
	users := &stubUserService{loginErr: user.ErrInvalidCredentials}
	r := newRouter(users, &stubPostService{})

	w := doJSON(t, r, http.MethodPost, "/users/token",
		`{"email":"a@x.com","password":"wrong-password"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestLogin_FormEncodedUsesUsernameField(t *testing.T) {
	users := &stubUserService{}
	r := newRouter(users, &stubPostService{})

	req := httptest.NewRequest(http.MethodPost, "/users/token",
		strings.NewReader("username=a%40x.com&password=sup3r-secret"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token":"tok"`)
}

func TestMe_RequiresValidToken(t *testing.T) {
	users := &stubUserService{currentErr: user.ErrUnauthorized}
	r := newRouter(users, &stubPostService{})

	// No header at all.
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Bearer token the service rejects.
	req = httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer expired")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_ReturnsCurrentUser(t *testing.T) {
	users := &stubUserService{currentUser: &user.UserDTO{ID: 3, Username: "alice"}}
	r := newRouter(users, &stubPostService{})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestGet_NotFound(t *testing.T) {
	users := &stubUserService{getErr: user.ErrUserNotFound}
	r := newRouter(users, &stubPostService{})

	w := doJSON(t, r, http.MethodGet, "/users/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGet_InvalidID(t *testing.T) {
	r := newRouter(&stubUserService{}, &stubPostService{})

	w := doJSON(t, r, http.MethodGet, "/users/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPosts_UserMissing(t *testing.T) {
	r := newRouter(&stubUserService{}, &stubPostService{listErr: post.ErrOwnerNotFound})

	w := doJSON(t, r, http.MethodGet, "/users/99/posts", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
}

func TestDelete_NoContent(t *testing.T) {
	r := newRouter(&stubUserService{}, &stubPostService{})

	w := doJSON(t, r, http.MethodDelete, "/users/3", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
