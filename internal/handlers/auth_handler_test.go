package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dmaulana/cinetix/config"
	"github.com/dmaulana/cinetix/internal/middleware"
	"github.com/dmaulana/cinetix/internal/models"
)

// MockUserRepo mocks the user repository interface
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func setupAuthTestRouter(users *MockUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{JWTSecret: testSecret}

	router.Use(middleware.RepositoryMiddleware(nil, users))

	router.POST("/register", Register)
	router.POST("/login", Login(cfg))

	return router
}

func TestRegister(t *testing.T) {
	mockRepo := new(MockUserRepo)
	mockRepo.On("FindByEmail", "moviegoer@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = 7
	}).Return(nil)

	router := setupAuthTestRouter(mockRepo)

	reqJSON, _ := json.Marshal(gin.H{"email": "moviegoer@example.com", "password": "secret123"})
	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(reqJSON))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message": "User registered successfully."}`, w.Body.String())
	mockRepo.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepo)
	mockRepo.On("FindByEmail", "moviegoer@example.com").Return(&models.User{
		ID: 7, Email: "moviegoer@example.com",
	}, nil)

	router := setupAuthTestRouter(mockRepo)

	reqJSON, _ := json.Marshal(gin.H{"email": "moviegoer@example.com", "password": "secret123"})
	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(reqJSON))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegisterInvalidBody(t *testing.T) {
	mockRepo := new(MockUserRepo)
	router := setupAuthTestRouter(mockRepo)

	reqJSON, _ := json.Marshal(gin.H{"email": "not-an-email", "password": "123"})
	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(reqJSON))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "FindByEmail", mock.Anything)
}

func TestLoginIssuesTokenForUser(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockRepo := new(MockUserRepo)
	mockRepo.On("FindByEmail", "moviegoer@example.com").Return(&models.User{
		ID: 7, Email: "moviegoer@example.com", Password: string(hashed),
	}, nil)

	router := setupAuthTestRouter(mockRepo)

	reqJSON, _ := json.Marshal(gin.H{"email": "moviegoer@example.com", "password": "secret123"})
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(reqJSON))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(7), resp.User.ID)
	assert.Equal(t, "moviegoer@example.com", resp.User.Email)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(7), claims["userId"])
	assert.NotEmpty(t, claims["jti"])
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockRepo := new(MockUserRepo)
	mockRepo.On("FindByEmail", "moviegoer@example.com").Return(&models.User{
		ID: 7, Email: "moviegoer@example.com", Password: string(hashed),
	}, nil)

	router := setupAuthTestRouter(mockRepo)

	reqJSON, _ := json.Marshal(gin.H{"email": "moviegoer@example.com", "password": "wrong-pass"})
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(reqJSON))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Invalid credentials."}`, w.Body.String())
}

func TestLoginUnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepo)
	mockRepo.On("FindByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	router := setupAuthTestRouter(mockRepo)

	reqJSON, _ := json.Marshal(gin.H{"email": "ghost@example.com", "password": "secret123"})
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(reqJSON))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Invalid credentials."}`, w.Body.String())
}
