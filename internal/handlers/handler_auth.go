package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/banking_portal/internal/core/ports/services"
	"github.com/SscSPs/banking_portal/internal/dto"
	"github.com/SscSPs/banking_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userService portssvc.UserSvcFacade
	authService portssvc.AuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, as portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{
		userService: us,
		authService: as,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login is rate limited per client IP.
func registerAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, loginLimit gin.HandlerFunc) {
	h := NewAuthHandler(services.User, services.Auth)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		if loginLimit != nil {
			auth.POST("/login", loginLimit, h.Login)
		} else {
			auth.POST("/login", h.Login)
		}
	}
}

// Login godoc
// @Summary Login
// @Description Authenticates with an account number or email and returns a JWT whose subject is the account number.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "Login")
		return
	}

	token, expiresAt, account, err := h.authService.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondWithError(c, err, "Failed to login")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:         token,
		ExpiresAt:     expiresAt,
		AccountNumber: account.AccountNumber,
	})
}

// Register godoc
// @Summary Register new user
// @Description Creates a user and opens their account with a zero balance.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "Register")
		return
	}

	user, account, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to register user")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User registered",
		slog.String("user_id", user.UserID),
		slog.String("account_number", account.AccountNumber))
	c.JSON(http.StatusCreated, dto.ToRegisterResponse(user, account))
}
