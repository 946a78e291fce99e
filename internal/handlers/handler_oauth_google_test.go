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

	"github.com/healthpredictor/health_predictor_app/internal/core/domain"
	portssvc "github.com/healthpredictor/health_predictor_app/internal/core/ports/services"
	"github.com/healthpredictor/health_predictor_app/internal/core/services"
	"github.com/healthpredictor/health_predictor_app/internal/dto"
	"github.com/healthpredictor/health_predictor_app/internal/handlers"
	"github.com/healthpredictor/health_predictor_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

// --- Test Suite ---
type GoogleOAuthHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockUserService  *MockUserService
	mockOAuthService *MockGoogleOAuthService
	tokenService     portssvc.TokenSvcFacade
}

func (suite *GoogleOAuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockUserService = new(MockUserService)
	suite.mockOAuthService = new(MockGoogleOAuthService)

	cfg := &config.Config{
		GoogleClientID:    "test-client-id",
		JWTSecret:         "oauth-handler-test-secret",
		JWTExpiryDuration: 24 * time.Hour,
		JWTIssuer:         "test-issuer",
	}
	suite.tokenService = services.NewTokenService(cfg)

	h := handlers.NewGoogleOAuthHandler(cfg, suite.mockOAuthService, suite.mockUserService, suite.tokenService)
	suite.router = gin.New()
	suite.router.POST("/auth/google", h.GoogleSignIn)
	suite.router.POST("/auth/google/exchange-code", h.ExchangeCodeGoogle)
}

func (suite *GoogleOAuthHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(body))

	req, err := http.NewRequest(http.MethodPost, path, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)
	return rr
}

func (suite *GoogleOAuthHandlerTestSuite) responseMessage(rr *httptest.ResponseRecorder) string {
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	return body["message"]
}

// --- GoogleSignIn ---

func (suite *GoogleOAuthHandlerTestSuite) TestGoogleSignIn_Success() {
	user := &domain.User{
		UserID:         uuid.NewString(),
		Email:          "a@example.com",
		Name:           "Alice",
		PhotoURL:       "http://photo/1",
		ProviderUserID: "g-123",
		AuthProvider:   domain.ProviderGoogle,
	}
	suite.mockUserService.On("UpsertGoogleUser", mock.Anything, "Alice", "a@example.com", "http://photo/1", "g-123").
		Return(user, nil).Once()

	rr := suite.postJSON("/auth/google", gin.H{
		"name":     "Alice",
		"email":    "a@example.com",
		"photo":    "http://photo/1",
		"googleId": "g-123",
	})

	suite.Equal(http.StatusOK, rr.Code)
	var resp dto.GoogleSignInResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal("a@example.com", resp.User.Email)
	suite.Equal("Alice", resp.User.Name)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *GoogleOAuthHandlerTestSuite) TestGoogleSignIn_MissingFields() {
	for _, body := range []gin.H{
		{"email": "a@example.com", "googleId": "g-123"},
		{"name": "Alice", "googleId": "g-123"},
		{"name": "Alice", "email": "a@example.com"},
		{},
	} {
		rr := suite.postJSON("/auth/google", body)

		suite.Equal(http.StatusBadRequest, rr.Code)
		suite.Equal("Name, email and googleId required", suite.responseMessage(rr))
	}
	suite.mockUserService.AssertNotCalled(suite.T(), "UpsertGoogleUser",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoogleOAuthHandlerTestSuite) TestGoogleSignIn_TokenSubjectMismatch() {
	suite.mockOAuthService.On("ValidateGoogleIDToken", mock.Anything, "some-id-token").
		Return(&idtoken.Payload{Subject: "g-999"}, nil).Once()

	rr := suite.postJSON("/auth/google", gin.H{
		"name":     "Alice",
		"email":    "a@example.com",
		"googleId": "g-123",
		"idToken":  "some-id-token",
	})

	suite.Equal(http.StatusUnauthorized, rr.Code)
	suite.Equal("Invalid Google ID token", suite.responseMessage(rr))
	// A profile whose ID token belongs to someone else must never be stored.
	suite.mockUserService.AssertNotCalled(suite.T(), "UpsertGoogleUser",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockOAuthService.AssertExpectations(suite.T())
}

func (suite *GoogleOAuthHandlerTestSuite) TestGoogleSignIn_InvalidIDToken() {
	suite.mockOAuthService.On("ValidateGoogleIDToken", mock.Anything, "bad-token").
		Return(nil, errors.New("token validation failed")).Once()

	rr := suite.postJSON("/auth/google", gin.H{
		"name":     "Alice",
		"email":    "a@example.com",
		"googleId": "g-123",
		"idToken":  "bad-token",
	})

	suite.Equal(http.StatusUnauthorized, rr.Code)
	suite.Equal("Invalid Google ID token", suite.responseMessage(rr))
	suite.mockUserService.AssertNotCalled(suite.T(), "UpsertGoogleUser",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoogleOAuthHandlerTestSuite) TestGoogleSignIn_VerifiedToken() {
	user := &domain.User{UserID: uuid.NewString(), Email: "a@example.com", Name: "Alice"}
	suite.mockOAuthService.On("ValidateGoogleIDToken", mock.Anything, "good-token").
		Return(&idtoken.Payload{Subject: "g-123"}, nil).Once()
	suite.mockUserService.On("UpsertGoogleUser", mock.Anything, "Alice", "a@example.com", "", "g-123").
		Return(user, nil).Once()

	rr := suite.postJSON("/auth/google", gin.H{
		"name":     "Alice",
		"email":    "a@example.com",
		"googleId": "g-123",
		"idToken":  "good-token",
	})

	suite.Equal(http.StatusOK, rr.Code)
	suite.mockOAuthService.AssertExpectations(suite.T())
	suite.mockUserService.AssertExpectations(suite.T())
}

// --- ExchangeCodeGoogle ---

func (suite *GoogleOAuthHandlerTestSuite) TestExchangeCode_Success() {
	googleToken := (&oauth2.Token{AccessToken: "access"}).
		WithExtra(map[string]interface{}{"id_token": "google-id-token"})
	payload := &idtoken.Payload{
		Subject: "g-123",
		Claims: map[string]interface{}{
			"email":   "a@example.com",
			"name":    "Alice",
			"picture": "http://photo/1",
		},
	}
	user := &domain.User{UserID: uuid.NewString(), Email: "a@example.com", Name: "Alice"}

	suite.mockOAuthService.On("ExchangeCodeForToken", mock.Anything, "auth-code").
		Return(googleToken, nil).Once()
	suite.mockOAuthService.On("ValidateGoogleIDToken", mock.Anything, "google-id-token").
		Return(payload, nil).Once()
	suite.mockUserService.On("UpsertGoogleUser", mock.Anything, "Alice", "a@example.com", "http://photo/1", "g-123").
		Return(user, nil).Once()

	rr := suite.postJSON("/auth/google/exchange-code", gin.H{"code": "auth-code"})

	suite.Equal(http.StatusOK, rr.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal("a@example.com", resp.Username)
	suite.Require().NotEmpty(resp.Token)

	claims, err := suite.tokenService.ValidateAccessToken(context.Background(), resp.Token)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.UserID)
	suite.mockOAuthService.AssertExpectations(suite.T())
}

func (suite *GoogleOAuthHandlerTestSuite) TestExchangeCode_MissingCode() {
	rr := suite.postJSON("/auth/google/exchange-code", gin.H{})

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.mockOAuthService.AssertNotCalled(suite.T(), "ExchangeCodeForToken", mock.Anything, mock.Anything)
}

func (suite *GoogleOAuthHandlerTestSuite) TestExchangeCode_InvalidGrant() {
	suite.mockOAuthService.On("ExchangeCodeForToken", mock.Anything, "stale-code").
		Return(nil, errors.New(`oauth2: "invalid_grant"`)).Once()

	rr := suite.postJSON("/auth/google/exchange-code", gin.H{"code": "stale-code"})

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "UpsertGoogleUser",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoogleOAuthHandlerTestSuite) TestExchangeCode_NoIDTokenInResponse() {
	suite.mockOAuthService.On("ExchangeCodeForToken", mock.Anything, "auth-code").
		Return(&oauth2.Token{AccessToken: "access"}, nil).Once()

	rr := suite.postJSON("/auth/google/exchange-code", gin.H{"code": "auth-code"})

	suite.Equal(http.StatusInternalServerError, rr.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "UpsertGoogleUser",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestGoogleOAuthHandler(t *testing.T) {
	suite.Run(t, new(GoogleOAuthHandlerTestSuite))
}
