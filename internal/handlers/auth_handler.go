package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dmaulana/cinetix/config"
	"github.com/dmaulana/cinetix/internal/helpers"
	"github.com/dmaulana/cinetix/internal/middleware"
	"github.com/dmaulana/cinetix/internal/models"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	repo := middleware.GetUserRepository(c)
	if repo == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	if _, err := repo.FindByEmail(req.Email); err == nil {
		helpers.RespondWithError(c, http.StatusConflict, "User already exists.")
		return
	} else if err != gorm.ErrRecordNotFound {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to hash the password.")
		return
	}

	user := models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := repo.Create(&user); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully."})
}

func Login(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
			return
		}

		repo := middleware.GetUserRepository(c)
		if repo == nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		user, err := repo.FindByEmail(req.Email)
		if err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"userId": user.ID,
			"exp":    time.Now().Add(24 * time.Hour).Unix(),
			"iat":    time.Now().Unix(),
			"jti":    uuid.New().String(),
		})

		tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
		if err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": tokenString,
			"user": gin.H{
				"id":    user.ID,
				"email": user.Email,
			},
		})
	}
}
