package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/hamzemohamed32/codementor/store"
)

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int32  `json:"id"`
	Username string `json:"username"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

func (s *APIV1Service) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	request := &signupRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	username := strings.TrimSpace(request.Username)
	if username == "" || request.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password required")
	}
	if len(request.Password) < 6 {
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at least 6 characters")
	}

	if existing, err := s.Store.GetUser(ctx, &store.FindUser{Username: &username}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to look up user")
	} else if existing != nil {
		return echo.NewHTTPError(http.StatusConflict, "username already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to hash password")
	}

	user, err := s.Store.CreateUser(ctx, &store.User{
		UID:          shortuuid.New(),
		Username:     username,
		Nickname:     username,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create user")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue token")
	}
	return c.JSON(http.StatusOK, &authResponse{
		AccessToken: token,
		User:        userResponse{ID: user.ID, Username: user.Username},
	})
}

func (s *APIV1Service) Login(c echo.Context) error {
	ctx := c.Request().Context()

	request := &signupRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	username := strings.TrimSpace(request.Username)
	if username == "" || request.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password required")
	}

	user, err := s.Store.GetUser(ctx, &store.FindUser{Username: &username})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to look up user")
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue token")
	}
	return c.JSON(http.StatusOK, &authResponse{
		AccessToken: token,
		User:        userResponse{ID: user.ID, Username: user.Username},
	})
}
