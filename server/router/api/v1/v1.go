package v1

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hamzemohamed32/codementor/internal/profile"
	"github.com/hamzemohamed32/codementor/plugin/ai"
	"github.com/hamzemohamed32/codementor/server/middleware"
	"github.com/hamzemohamed32/codementor/server/service/chat"
	"github.com/hamzemohamed32/codementor/server/service/kickoff"
	"github.com/hamzemohamed32/codementor/store"
)

const (
	userIDContextKey = "user-id"
	tokenDuration    = 7 * 24 * time.Hour
)

type APIV1Service struct {
	Secret  string
	Profile *profile.Profile
	Store   *store.Store

	ChatService *chat.Service
	Kickoff     *kickoff.Orchestrator

	chatLimiter *middleware.RateLimiter
}

func NewAPIV1Service(secret string, profile *profile.Profile, st *store.Store, gateway *ai.Gateway) *APIV1Service {
	return &APIV1Service{
		Secret:      secret,
		Profile:     profile,
		Store:       st,
		ChatService: chat.NewService(st, gateway),
		Kickoff:     kickoff.NewOrchestrator(st, gateway, 2),
		chatLimiter: middleware.NewRateLimiter(3*time.Second, 5),
	}
}

// RegisterRoutes mounts the REST surface under /api/v1. Auth endpoints are
// public; everything else requires a bearer token.
func (s *APIV1Service) RegisterRoutes(e *echo.Echo) {
	apiGroup := e.Group("/api/v1")

	apiGroup.POST("/auth/signup", s.Signup)
	apiGroup.POST("/auth/login", s.Login)

	protected := apiGroup.Group("", s.authMiddleware)
	protected.GET("/projects", s.ListProjects)
	protected.POST("/projects", s.CreateProject)
	protected.GET("/projects/:id", s.GetProject)
	protected.GET("/tasks", s.ListTasks)
	protected.POST("/tasks", s.CreateTask)
	protected.PATCH("/tasks/:id", s.UpdateTask)
	protected.GET("/artifacts", s.ListArtifacts)
	protected.GET("/artifacts/:id", s.GetArtifact)
	protected.POST("/artifacts", s.CreateArtifact)
	protected.GET("/projects/:projectId/messages", s.GetChatHistory)
	protected.POST("/projects/:projectId/messages", s.SendMessage)
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

func (s *APIV1Service) issueToken(user *store.User) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(user.ID)),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
		Username: user.Username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.Secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}
	return signed, nil
}

func (s *APIV1Service) parseToken(raw string) (int32, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &tokenClaims{}
	parsed, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(s.Secret), nil
	})
	if err != nil {
		return 0, err
	}
	if !parsed.Valid || claims.Subject == "" {
		return 0, errors.New("invalid token")
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 32)
	if err != nil {
		return 0, errors.Wrap(err, "invalid subject claim")
	}
	return int32(userID), nil
}

func (s *APIV1Service) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authz := strings.TrimSpace(c.Request().Header.Get("Authorization"))
		parts := strings.Fields(authz)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		userID, err := s.parseToken(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		c.Set(userIDContextKey, userID)
		return next(c)
	}
}

func userIDFromContext(c echo.Context) (int32, bool) {
	userID, ok := c.Get(userIDContextKey).(int32)
	return userID, ok
}

func parseID(raw string) (int32, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid id %q", raw)
	}
	return int32(id), nil
}
