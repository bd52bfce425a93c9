package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mydiaryhq/mydiary-api/internal/application"
	"github.com/mydiaryhq/mydiary-api/internal/domain/repository"
)

// AuthHandler exposes the legacy signup/login endpoints. Response bodies and
// status codes here are an external contract kept bit-for-bit compatible with
// the original API, including the 201 on successful login.
type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// Field names are capitalized in the legacy payloads.
type signupRequest struct {
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Email     string `json:"Email"`
	Password  string `json:"Password"`
}

type loginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

// Signup POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Message": "Invalid request payload"})
		return
	}

	_, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		var verr *application.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"Message": verr.Message})
		case errors.Is(err, repository.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"Message": "Email already registered"})
		default:
			h.Logger.WithError(err).Error("signup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Successfully registered."})
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Message": "Invalid request payload"})
		return
	}

	token, _, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidEmail):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Failed, Invalid email! Please try again"})
		case errors.Is(err, application.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Failed, Invalid password! Please try again"})
		default:
			h.Logger.WithError(err).Error("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	// The original API answered 201 on login; preserved for compatibility.
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Successfully login.",
		"auth_token": token,
	})
}
