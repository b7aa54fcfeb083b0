package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/SscSPs/invoice_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const testIssuer = "ifa-test"

// handlerSuite holds the router and token plumbing shared by the handler suites.
type handlerSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret string
	userID    string
}

// generateTestToken creates a signed JWT whose subject is userID.
func (s *handlerSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		s.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// newAPI builds a fresh router behind the auth middleware and returns its /api/v1 group.
func (s *handlerSuite) newAPI() *gin.RouterGroup {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.jwtSecret = "test-secret-key-that-is-long-enough"
	s.userID = uuid.NewString()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		dto.RegisterValidators(v)
	}
	s.router.Use(middleware.AuthMiddleware(s.jwtSecret, testIssuer))
	return s.router.Group("/api/v1")
}

func (s *handlerSuite) do(method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, url, nil)
	} else {
		req, _ = http.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+s.generateTestToken(s.userID))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}
