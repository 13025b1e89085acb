package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"inkwell-api/models"
	"inkwell-api/repositories"
	"inkwell-api/services"
	"inkwell-api/utils"
)

// AuthController is the login collaborator: it owns user creation and
// session tokens. Everything else treats users as an external identity.
type AuthController struct {
	users        *repositories.UserRepository
	jwtSecret    string
	emailService *services.EmailService
}

func NewAuthController(users *repositories.UserRepository, jwtSecret string, emailService *services.EmailService) *AuthController {
	return &AuthController{
		users:        users,
		jwtSecret:    jwtSecret,
		emailService: emailService,
	}
}

type RegisterRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string          `json:"token"`
	User  models.UserView `json:"user"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if !utils.IsValidUsername(req.Username) {
		utils.SendValidationErrors(c, map[string]string{
			"username": "Username must be 3-50 characters of letters, digits and underscores",
		})
		return
	}
	if ac.users.UsernameTaken(req.Username) {
		utils.SendError(c, http.StatusConflict, "Username already taken")
		return
	}
	if ac.users.EmailTaken(req.Email) {
		utils.SendError(c, http.StatusConflict, "Email already registered")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := ac.users.Create(&user); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	if err := ac.emailService.SendWelcomeEmail(user.Email, user.Username); err != nil {
		// Best effort; registration stands
		log.Printf("welcome email to %s: %v", user.Email, err)
	}

	token, err := ac.generateJWT(user.ID, user.Username)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user.View()})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ac.users.FindByUsername(req.Username)
	if err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := ac.generateJWT(user.ID, user.Username)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user.View()})
}

// LoginForm is the landing target for unauthenticated redirects.
func (ac *AuthController) LoginForm(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error":   "Authentication required",
		"message": "Log in via POST /auth/login",
	})
}

func (ac *AuthController) generateJWT(userID, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
