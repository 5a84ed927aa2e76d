package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/officinaverde/blog-api/internal/pkg/auth"
	"github.com/officinaverde/blog-api/pkg/domain/model"
	"github.com/officinaverde/blog-api/pkg/response"
	auth_service "github.com/officinaverde/blog-api/pkg/service/auth"
)

// Handler bundles the authentication HTTP handlers.
type Handler struct {
	svc auth_service.AuthService
}

// NewHandler is the constructor for Handler.
func NewHandler(svc auth_service.AuthService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	session, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, session, "account created")
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	session, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, session, "logged in")
}

// Logout is stateless: tokens are short-lived and no server-side session
// exists, so the client simply discards its pair.
func (h *Handler) Logout(c *gin.Context) {
	response.Success(c, nil, "logged out")
}

func (h *Handler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	session, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, session, "session refreshed")
}

// Me returns the profile of the authenticated user.
func (h *Handler) Me(c *gin.Context) {
	value, exists := c.Get(appauth.ClaimsKey)
	if !exists {
		response.Fail(c, http.StatusUnauthorized, "missing authentication")
		return
	}
	claims, ok := value.(*appauth.CustomClaims)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "missing authentication")
		return
	}
	user, err := h.svc.CurrentUser(c.Request.Context(), claims.UserID)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, user, "ok")
}
