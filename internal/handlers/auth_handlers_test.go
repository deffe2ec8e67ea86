package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dogtor/internal/common"
	"dogtor/internal/models"
	"dogtor/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requireHTTPError(t *testing.T, err error, code int, message string) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, code, he.Code)
	assert.Equal(t, message, he.Message)
}

func TestSignup_MissingEmail(t *testing.T) {
	userRepo := &MockUserRepository{}
	h := NewAuthHandlers(userRepo, services.NewTokenService("test-secret", 30*time.Minute), zap.NewNop())

	c, _ := newJSONContext(http.MethodPost, "/signup", `{"password":"secret","first_name":"Jane"}`)
	err := h.Signup(c)
	requireHTTPError(t, err, http.StatusBadRequest, "email is required")
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignup_EmailTaken(t *testing.T) {
	userRepo := &MockUserRepository{}
	h := NewAuthHandlers(userRepo, services.NewTokenService("test-secret", 30*time.Minute), zap.NewNop())

	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&models.User{ID: 1, Email: "jane@example.com"}, nil)

	c, _ := newJSONContext(http.MethodPost, "/signup", `{"email":"jane@example.com","password":"secret"}`)
	err := h.Signup(c)
	requireHTTPError(t, err, http.StatusBadRequest, "email already taken")
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignup_HashesPassword(t *testing.T) {
	userRepo := &MockUserRepository{}
	h := NewAuthHandlers(userRepo, services.NewTokenService("test-secret", 30*time.Minute), zap.NewNop())

	var created *models.User
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, common.ErrNotFound)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.User)
		created.ID = 1
	})

	c, rec := newJSONContext(http.MethodPost, "/signup", `{"email":"jane@example.com","password":"secret","first_name":"Jane"}`)
	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "user created successfully", body["detail"])

	require.NotNil(t, created)
	assert.NotEqual(t, "secret", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret")))
	userRepo.AssertExpectations(t)
}

func TestLogin_MissingFields(t *testing.T) {
	userRepo := &MockUserRepository{}
	h := NewAuthHandlers(userRepo, services.NewTokenService("test-secret", 30*time.Minute), zap.NewNop())

	c, _ := newJSONContext(http.MethodPost, "/login", `{"email":"jane@example.com"}`)
	err := h.Login(c)
	requireHTTPError(t, err, http.StatusBadRequest, "missing email or password")
}

// Unknown email and wrong password must produce identical responses.
func TestLogin_FailuresIndistinguishable(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRepo := &MockUserRepository{}
	h := NewAuthHandlers(userRepo, services.NewTokenService("test-secret", 30*time.Minute), zap.NewNop())

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, common.ErrNotFound)
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&models.User{ID: 1, Email: "jane@example.com", PasswordHash: string(hash)}, nil)

	c, _ := newJSONContext(http.MethodPost, "/login", `{"email":"nobody@example.com","password":"whatever"}`)
	unknownEmail := h.Login(c)

	c, _ = newJSONContext(http.MethodPost, "/login", `{"email":"jane@example.com","password":"wrong-password"}`)
	wrongPassword := h.Login(c)

	requireHTTPError(t, unknownEmail, http.StatusUnauthorized, "invalid email or password")
	requireHTTPError(t, wrongPassword, http.StatusUnauthorized, "invalid email or password")
	assert.Equal(t, unknownEmail, wrongPassword)
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRepo := &MockUserRepository{}
	tokens := services.NewTokenService("test-secret", 30*time.Minute)
	h := NewAuthHandlers(userRepo, tokens, zap.NewNop())

	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&models.User{ID: 42, Email: "jane@example.com", PasswordHash: string(hash)}, nil)

	c, rec := newJSONContext(http.MethodPost, "/login", `{"email":"jane@example.com","password":"secret"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	userID, err := tokens.Verify(body["token"])
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestProfile_ReturnsAuthenticatedUser(t *testing.T) {
	last := "Doe"
	user := &models.User{ID: 42, FirstName: "Jane", LastName: &last, Email: "jane@example.com"}

	h := NewAuthHandlers(&MockUserRepository{}, services.NewTokenService("test-secret", 30*time.Minute), zap.NewNop())

	c, rec := newJSONContext(http.MethodPost, "/profile", "")
	c.SetRequest(c.Request().WithContext(common.WithUser(c.Request().Context(), user)))

	require.NoError(t, h.Profile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Jane", body.FirstName)
	assert.Equal(t, "jane@example.com", body.Email)
	require.NotNil(t, body.LastName)
	assert.Equal(t, "Doe", *body.LastName)
}
