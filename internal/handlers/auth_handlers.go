package handlers

import (
	"errors"
	"net/http"

	"dogtor/internal/common"
	"dogtor/internal/models"
	"dogtor/internal/repositories"
	"dogtor/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// loginFillerHash keeps the unknown-email login path as expensive as a
// real password comparison, so both failure causes cost one bcrypt check.
var loginFillerHash, _ = bcrypt.GenerateFromPassword([]byte("dogtor-login-filler"), bcrypt.DefaultCost)

// AuthHandlers handles signup, login and the profile endpoint.
type AuthHandlers struct {
	userRepo repositories.UserRepository
	tokens   services.TokenService
	logger   *zap.Logger
}

func NewAuthHandlers(userRepo repositories.UserRepository, tokens services.TokenService, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// SignupRequest represents the signup request payload.
type SignupRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// Signup registers a new application user. The password is stored as a
// salted bcrypt hash, never as plaintext. No token is issued here.
func (h *AuthHandlers) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	if _, err := h.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "email already taken")
	} else if !errors.Is(err, common.ErrNotFound) {
		h.logger.Error("signup email lookup failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("password hashing failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := h.userRepo.Create(ctx, user); err != nil {
		h.logger.Error("user insert failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
	}

	h.logger.Info("user created", zap.Int64("user_id", user.ID))
	return c.JSON(http.StatusCreated, map[string]string{"detail": "user created successfully"})
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks the credentials and issues a bearer token. Unknown email
// and wrong password are deliberately indistinguishable to the caller.
func (h *AuthHandlers) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing email or password")
	}

	user, err := h.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(loginFillerHash, []byte(req.Password))
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
		}
		h.logger.Error("login email lookup failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to log in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.logger.Error("token issuance failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to log in")
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

// ProfileResponse represents the caller's profile.
type ProfileResponse struct {
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     string  `json:"email"`
}

// Profile returns the details of the authenticated user.
func (h *AuthHandlers) Profile(c echo.Context) error {
	user, ok := common.UserFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	})
}
