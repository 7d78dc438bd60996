package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// UserHandler maps HTTP requests onto the user service. It is
// stateless; it only binds, validates, delegates and translates
// domain errors to status codes.
type UserHandler struct {
	service     user.Service
	postService post.Service
}

func NewUserHandler(service user.Service, postService post.Service) *UserHandler {
	return &UserHandler{
		service:     service,
		postService: postService,
	}
}

// Register handles POST /users
func (h *UserHandler) Register(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/users/"+strconv.FormatInt(dto.ID, 10))
	response.Success(c, http.StatusCreated, dto)
}

// Login handles POST /users/token. The OAuth2 password form carries
// the email in its username field; JSON bodies use "email" directly.
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	tok, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tok)
}

// Me handles GET /users/me. The auth middleware has already resolved
// the token to a user.
func (h *UserHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.Unauthorized(c, "invalid or expired token")
		return
	}
	response.Success(c, http.StatusOK, u)
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	dto, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, dto)
}

// GetPosts handles GET /users/:id/posts, the user's posts most
// recent first.
func (h *UserHandler) GetPosts(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	posts, err := h.postService.ListByUser(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts)
}

// Update handles PATCH /users/:id, a partial update.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, dto)
}

// Delete handles DELETE /users/:id; the user's posts go with it.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid user id")
		return 0, false
	}
	return id, true
}

// handleError maps domain errors to transport status codes. The
// domain layer knows nothing about HTTP; this is the only place the
// translation happens for user routes.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var dup *user.DuplicateError
	var vErrs validation.Errors

	switch {
	case errors.As(err, &dup):
		response.Conflict(c, dup.Error())
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, post.ErrOwnerNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, "incorrect email or password")
	case errors.Is(err, user.ErrUnauthorized):
		response.Unauthorized(c, "invalid or expired token")
	default:
		logger.Error("user handler", err)
		response.InternalServerError(c, "internal server error")
	}
}
