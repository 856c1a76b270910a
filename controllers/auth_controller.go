package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/samir25141/SwiggyCloneBySamir/entity"
	"github.com/samir25141/SwiggyCloneBySamir/pkg/resp"
	"github.com/samir25141/SwiggyCloneBySamir/services"
	"github.com/samir25141/SwiggyCloneBySamir/utils"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "All fields are required")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		resp.BadRequest(c, "All fields are required")
		return
	}

	token, user, err := a.Svc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, "Email already in use")
			return
		}
		resp.ServerError(c, "Failed to register", err)
		return
	}

	resp.OK(c, gin.H{"token": token, "user": publicUser(user)})
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid email or password")
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.BadRequest(c, "Invalid email or password")
			return
		}
		resp.ServerError(c, "Failed to login", err)
		return
	}

	resp.OK(c, gin.H{"token": token, "user": publicUser(user)})
}

// GET /api/auth/me (ต้อง login)
func (a *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	user, err := a.Svc.GetProfile(uid)
	if err != nil {
		resp.BadRequest(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"user": publicUser(user)})
}

func publicUser(u *entity.User) gin.H {
	return gin.H{"id": u.ID, "name": u.Name, "email": u.Email}
}
