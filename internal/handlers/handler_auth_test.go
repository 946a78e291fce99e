package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/healthpredictor/health_predictor_app/internal/apperrors"
	"github.com/healthpredictor/health_predictor_app/internal/core/domain"
	portssvc "github.com/healthpredictor/health_predictor_app/internal/core/ports/services"
	"github.com/healthpredictor/health_predictor_app/internal/core/services"
	"github.com/healthpredictor/health_predictor_app/internal/dto"
	"github.com/healthpredictor/health_predictor_app/internal/handlers"
	"github.com/healthpredictor/health_predictor_app/internal/middleware"
	"github.com/healthpredictor/health_predictor_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpsertGoogleUser(ctx context.Context, name, email, photoURL, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, name, email, photoURL, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	tokenService    portssvc.TokenSvcFacade
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockUserService = new(MockUserService)
	suite.tokenService = services.NewTokenService(&config.Config{
		JWTSecret:         "handler-test-secret",
		JWTExpiryDuration: 24 * time.Hour,
		JWTIssuer:         "test-issuer",
	})

	h := handlers.NewAuthHandler(suite.mockUserService, suite.tokenService)
	suite.router = gin.New()
	suite.router.POST("/signup", h.Signup)
	suite.router.POST("/login", h.Login)

	protected := suite.router.Group("/", middleware.AuthMiddleware(suite.tokenService))
	protected.GET("/dashboard", handlers.Dashboard)
}

func (suite *AuthHandlerTestSuite) performJSON(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)
	return rr
}

func (suite *AuthHandlerTestSuite) decodeMessage(rr *httptest.ResponseRecorder) string {
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	return body["message"]
}

// --- Signup ---

func (suite *AuthHandlerTestSuite) TestSignup_Success() {
	user := &domain.User{UserID: uuid.NewString(), Username: "alice"}
	suite.mockUserService.On("CreateUser", mock.Anything, dto.SignupRequest{Username: "alice", Password: "pw123"}).
		Return(user, nil).Once()

	rr := suite.performJSON(http.MethodPost, "/signup", gin.H{"username": "alice", "password": "pw123"}, nil)

	suite.Equal(http.StatusOK, rr.Code)
	var resp dto.SignupResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal("User created", resp.Message)
	suite.Equal("alice", resp.User.Username)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestSignup_MissingFields() {
	rr := suite.performJSON(http.MethodPost, "/signup", gin.H{"username": "alice"}, nil)

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Equal("Username and password required", suite.decodeMessage(rr))
	suite.mockUserService.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestSignup_DuplicateUsername() {
	suite.mockUserService.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	rr := suite.performJSON(http.MethodPost, "/signup", gin.H{"username": "alice", "password": "pw123"}, nil)

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Equal("User already exists", suite.decodeMessage(rr))
}

func (suite *AuthHandlerTestSuite) TestSignup_ServerError() {
	suite.mockUserService.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	rr := suite.performJSON(http.MethodPost, "/signup", gin.H{"username": "alice", "password": "pw123"}, nil)

	suite.Equal(http.StatusInternalServerError, rr.Code)
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	suite.Equal("Server error", body["error"])
}

// --- Login ---

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: uuid.NewString(), Username: "alice"}
	suite.mockUserService.On("AuthenticateUser", mock.Anything, "alice", "pw123").
		Return(user, nil).Once()

	rr := suite.performJSON(http.MethodPost, "/login", gin.H{"username": "alice", "password": "pw123"}, nil)

	suite.Equal(http.StatusOK, rr.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal("alice", resp.Username)
	suite.Require().NotEmpty(resp.Token)

	// The issued token must decode back to the same identity.
	claims, err := suite.tokenService.ValidateAccessToken(context.Background(), resp.Token)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.UserID)
	suite.Equal("alice", claims.Username)
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingFields() {
	rr := suite.performJSON(http.MethodPost, "/login", gin.H{"password": "pw123"}, nil)

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Equal("Username and password required", suite.decodeMessage(rr))
}

func (suite *AuthHandlerTestSuite) TestLogin_UserNotFound() {
	suite.mockUserService.On("AuthenticateUser", mock.Anything, "ghost", "pw123").
		Return(nil, apperrors.ErrNotFound).Once()

	rr := suite.performJSON(http.MethodPost, "/login", gin.H{"username": "ghost", "password": "pw123"}, nil)

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Equal("User not found", suite.decodeMessage(rr))
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	suite.mockUserService.On("AuthenticateUser", mock.Anything, "alice", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()

	rr := suite.performJSON(http.MethodPost, "/login", gin.H{"username": "alice", "password": "wrong"}, nil)

	suite.Equal(http.StatusUnauthorized, rr.Code)
	suite.Equal("Invalid password", suite.decodeMessage(rr))
}

// --- Dashboard ---

func (suite *AuthHandlerTestSuite) TestDashboard_NoToken() {
	rr := suite.performJSON(http.MethodGet, "/dashboard", nil, nil)

	suite.Equal(http.StatusForbidden, rr.Code)
	suite.Equal("Token required", suite.decodeMessage(rr))
}

func (suite *AuthHandlerTestSuite) TestDashboard_MalformedHeader() {
	rr := suite.performJSON(http.MethodGet, "/dashboard", nil, map[string]string{
		"Authorization": "eyJhbGciOiJIUzI1NiJ9.not-a-bearer-header",
	})

	suite.Equal(http.StatusForbidden, rr.Code)
	suite.Equal("Token required", suite.decodeMessage(rr))
}

func (suite *AuthHandlerTestSuite) TestDashboard_InvalidToken() {
	rr := suite.performJSON(http.MethodGet, "/dashboard", nil, map[string]string{
		"Authorization": "Bearer not.a.token",
	})

	suite.Equal(http.StatusUnauthorized, rr.Code)
	suite.Equal("Invalid token", suite.decodeMessage(rr))
}

func (suite *AuthHandlerTestSuite) TestDashboard_ValidToken() {
	user := &domain.User{UserID: uuid.NewString(), Username: "alice"}
	token, _, err := suite.tokenService.GenerateAccessToken(context.Background(), user)
	suite.Require().NoError(err)

	rr := suite.performJSON(http.MethodGet, "/dashboard", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	suite.Equal(http.StatusOK, rr.Code)
	var resp dto.DashboardResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal("Welcome to dashboard", resp.Message)
	suite.Equal(user.UserID, resp.User.ID)
	suite.Equal("alice", resp.User.Username)
}

// --- Run Suite ---
func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
