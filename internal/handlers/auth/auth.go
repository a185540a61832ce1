package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/config"
	"taskboard/internal/httperr"
	"taskboard/internal/middleware"
	"taskboard/internal/models"
	"taskboard/internal/stores"
	"taskboard/internal/token"
	"taskboard/internal/user"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type AuthHandler struct {
	UserStore         stores.UserStore
	RefreshTokenStore stores.RefreshTokenStore
	Hasher            user.PasswordHasher
	TokenService      token.TokenService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(
	userStore stores.UserStore,
	refreshTokenStore stores.RefreshTokenStore,
	hasher user.PasswordHasher,
	tokenService token.TokenService,
) *AuthHandler {
	return &AuthHandler{
		UserStore:         userStore,
		RefreshTokenStore: refreshTokenStore,
		Hasher:            hasher,
		TokenService:      tokenService,
	}
}

// issueTokenPair signs an access/refresh pair for u and persists the
// refresh token's literal value with its expiry. Each call adds a row;
// earlier rows for the same user are left alone on purpose, so every live
// session keeps its own refresh token until logout or expiry.
func (h *AuthHandler) issueTokenPair(u *models.User) (accessToken, refreshToken string, err error) {
	accessToken, err = h.TokenService.GenerateAccessToken(u.ID, u.Email, config.AccessTokenExpiration)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = h.TokenService.GenerateRefreshToken(u.ID, config.RefreshTokenExpiration)
	if err != nil {
		return "", "", err
	}

	rt := models.RefreshToken{
		Token:     refreshToken,
		UserID:    u.ID,
		ExpiresAt: time.Now().Add(config.RefreshTokenExpiration),
	}
	if err = h.RefreshTokenStore.Create(&rt); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	if _, err := h.UserStore.FindByEmail(req.Email); err == nil {
		httperr.Respond(c, httperr.Conflict("email already registered"))
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	hashedPassword, err := h.Hasher.Hash([]byte(req.Password))
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	u := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := h.UserStore.CreateUser(u); err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	accessToken, refreshToken, err := h.issueTokenPair(u)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user":         u,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	u, err := h.UserStore.FindByEmail(req.Email)
	if err != nil {
		httperr.Respond(c, httperr.InvalidCredentials())
		return
	}

	if err := h.Hasher.Compare([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Respond(c, httperr.InvalidCredentials())
		return
	}

	accessToken, refreshToken, err := h.issueTokenPair(u)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user":         u,
	})
}

// RefreshToken exchanges a live refresh token for a new access token. The
// refresh token itself is not replaced. The stored expiry and the token's
// own embedded expiry are both checked; a stored row whose expiry has
// passed is removed on sight.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.Unauthorized("refresh token required"))
		return
	}

	rt, err := h.RefreshTokenStore.FindByToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			httperr.Respond(c, httperr.Forbidden("invalid or expired refresh token"))
			return
		}
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	if time.Now().After(rt.ExpiresAt) {
		if err := h.RefreshTokenStore.DeleteByID(rt.ID); err != nil {
			httperr.Respond(c, httperr.Internal(err))
			return
		}
		httperr.Respond(c, httperr.Forbidden("invalid or expired refresh token"))
		return
	}

	if _, err := h.TokenService.VerifyRefreshToken(req.RefreshToken); err != nil {
		httperr.Respond(c, httperr.Forbidden("invalid refresh token"))
		return
	}

	accessToken, err := h.TokenService.GenerateAccessToken(rt.User.ID, rt.User.Email, config.AccessTokenExpiration)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

// Logout revokes the refresh token. Revoking a token that was never issued,
// is already revoked, or was not sent at all is still a success.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	_ = c.ShouldBindJSON(&req)

	if req.RefreshToken != "" {
		if err := h.RefreshTokenStore.DeleteByToken(req.RefreshToken); err != nil {
			httperr.Respond(c, httperr.Internal(err))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "logout successful"})
}

func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID := c.GetUint(middleware.UserIDKey)

	u, err := h.UserStore.GetByID(userID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			httperr.Respond(c, httperr.NotFound("user not found"))
			return
		}
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}
