package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/clinic-server/internal/api/http/middleware"
	"github.com/dtroode/clinic-server/internal/api/http/response"
	"github.com/dtroode/clinic-server/internal/logger"
	"github.com/dtroode/clinic-server/internal/model"
)

// AuthService defines registration and login.
type AuthService interface {
	Register(ctx context.Context, input model.RegisterInput) (model.User, error)
	Login(ctx context.Context, email, password string) (model.TokenPair, error)
}

// TokenService defines refresh rotation and logout.
type TokenService interface {
	Refresh(ctx context.Context, access, refresh string) (model.TokenPair, error)
	Logout(ctx context.Context, access model.Claims, refresh string) error
}

// CookieConfig describes the refresh token cookie.
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// Auth handles the authentication endpoints.
type Auth struct {
	authService    AuthService
	tokenService   TokenService
	contextManager model.ContextManager
	cookie         CookieConfig
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(
	authService AuthService,
	tokenService TokenService,
	contextManager model.ContextManager,
	cookie CookieConfig,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		authService:    authService,
		tokenService:   tokenService,
		contextManager: contextManager,
		cookie:         cookie,
		logger:         logger,
	}
}

// Register creates an account. The role comes from the role query parameter.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var input model.RegisterInput
	if err := decodeStrict(w, r, &input); err != nil {
		response.WriteError(w, r, err)
		return
	}
	input.Role = model.Role(r.URL.Query().Get("role"))

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		h.logger.Debug("Auth handler: registration failed",
			"email", input.Email,
			"error", err.Error())
		response.WriteError(w, r, err)
		return
	}

	h.logger.Info("Auth handler: user registered",
		"user_id", user.ID,
		"role", user.Role)
	response.WriteJSON(w, http.StatusCreated, user)
}

// Login checks credentials, sets the refresh cookie and returns the access token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeStrict(w, r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	pair, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		response.WriteError(w, r, err)
		return
	}

	h.setRefreshCookie(w, pair.Refresh.Raw)
	response.WriteJSON(w, http.StatusOK, tokenResponse{AccessToken: pair.Access.Raw, TokenType: "bearer"})
}

// Refresh rotates the refresh cookie. A bearer access token, when sent, is
// revoked as part of the rotation.
func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	access, _ := middleware.BearerToken(r)
	refresh := h.refreshCookie(r)

	pair, err := h.tokenService.Refresh(r.Context(), access, refresh)
	if err != nil {
		h.logger.Debug("Auth handler: refresh failed",
			"error", err.Error())
		response.WriteError(w, r, err)
		return
	}

	h.setRefreshCookie(w, pair.Refresh.Raw)
	response.WriteJSON(w, http.StatusOK, tokenResponse{AccessToken: pair.Access.Raw, TokenType: "bearer"})
}

// Logout revokes the access token that authenticated the request and the
// refresh cookie, then clears the cookie. It runs behind Authenticate.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	access, ok := h.contextManager.GetAccessClaimsFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, model.NewAuthError(model.ErrInvalidToken, "not authenticated"))
		return
	}

	if err := h.tokenService.Logout(r.Context(), access, h.refreshCookie(r)); err != nil {
		h.logger.Debug("Auth handler: logout failed",
			"error", err.Error())
		response.WriteError(w, r, err)
		return
	}

	h.clearRefreshCookie(w)
	response.WriteJSON(w, http.StatusOK, detailResponse{Detail: "logged out"})
}

func (h *Auth) refreshCookie(r *http.Request) string {
	c, err := r.Cookie(h.cookie.Name)
	if err != nil {
		return ""
	}
	return c.Value
}

func (h *Auth) setRefreshCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(h.cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Auth) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
