package controllers

import (
	"net/http"
	"strings"

	"disaster-alert-be/models"
	"disaster-alert-be/store"
	"disaster-alert-be/utils"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// AuthController serves registration, login and account verification.
type AuthController struct {
	users     UserStore
	jwtSecret string
	env       string
	clock     clockwork.Clock
	log       *zap.Logger
}

func NewAuthController(users UserStore, jwtSecret, env string, clock clockwork.Clock, log *zap.Logger) *AuthController {
	return &AuthController{users: users, jwtSecret: jwtSecret, env: env, clock: clock, log: log}
}

// Register handles POST /api/auth/register. Email uniqueness is enforced
// by the unique index, not by a pre-insert lookup.
func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
		UserType string `json:"userType"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := requireFieldsErr(c, map[string]string{
		"fullName": input.FullName,
		"email":    input.Email,
		"password": input.Password,
	}, "fullName", "email", "password"); err != nil {
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !utils.ValidEmail(email) {
		fail(c, http.StatusBadRequest, "Invalid email format")
		return
	}
	if !utils.ValidPassword(input.Password) {
		fail(c, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}

	userType := models.UserType(input.UserType)
	if userType != models.Admin {
		userType = models.Citizen
	}

	user := &models.User{
		FullName:  strings.TrimSpace(input.FullName),
		Email:     email,
		Password:  input.Password,
		Phone:     strings.TrimSpace(input.Phone),
		UserType:  userType,
		Verified:  false,
		CreatedAt: ac.clock.Now().UTC(),
		LastLogin: nil,
		Active:    true,
	}

	if err := user.HashPassword(); err != nil {
		ac.log.Error("failed to hash password", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	id, err := ac.users.Insert(ctx, user)
	if err == store.ErrDuplicateEmail {
		fail(c, http.StatusConflict, "User with this email already exists")
		return
	}
	if err != nil {
		ac.log.Error("failed to insert user", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Registration successful",
		"user": gin.H{
			"id":    id,
			"name":  user.FullName,
			"email": user.Email,
			"type":  user.UserType,
		},
	})
}

// Login handles POST /api/auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		UserType string `json:"userType"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	user, err := ac.users.FindByEmail(ctx, email)
	if err == store.ErrNotFound {
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		ac.log.Error("failed to look up user", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Login failed")
		return
	}

	if !user.ComparePassword(input.Password) {
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	now := ac.clock.Now().UTC()
	if err := ac.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// Login still succeeds; the stamp is advisory.
		ac.log.Warn("failed to update last login", zap.String("user_id", user.ID.Hex()), zap.Error(err))
	}

	ac.setAuthCookie(c, user)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user.Public(),
	})
}

func (ac *AuthController) setAuthCookie(c *gin.Context, user *models.User) {
	if ac.jwtSecret == "" {
		return
	}

	token, err := utils.GenerateToken(ac.jwtSecret, user.ID.Hex(), string(user.UserType))
	if err != nil {
		ac.log.Warn("failed to generate token", zap.Error(err))
		return
	}

	secure := ac.env == "production"
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("auth_token", token, 3600, "/", "", secure, true)
}

// VerifyUser handles POST /api/auth/verify/:userId. The flag only moves
// false to true; re-verifying reports not found, as a no-op update.
func (ac *AuthController) VerifyUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	err = ac.users.Verify(ctx, id, ac.clock.Now().UTC())
	if err == store.ErrNotFound {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		ac.log.Error("failed to verify user", zap.String("id", id.Hex()), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to verify user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User verified successfully"})
}

// GetMe handles GET /api/auth/me for an authenticated user.
func (ac *AuthController) GetMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	user, err := ac.users.FindByID(ctx, id)
	if err == store.ErrNotFound {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		ac.log.Error("failed to fetch user", zap.String("id", id.Hex()), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
