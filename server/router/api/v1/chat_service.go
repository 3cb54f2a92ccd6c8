package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hamzemohamed32/codementor/server/service/chat"
	"github.com/hamzemohamed32/codementor/store"
)

type sendMessageRequest struct {
	Content  string `json:"content"`
	RoleMode string `json:"roleMode"`
}

type messageResponse struct {
	ID        int32  `json:"id"`
	UID       string `json:"uid"`
	ProjectID int32  `json:"projectId"`
	RoleMode  string `json:"roleMode"`
	Content   string `json:"content"`
	CreatedTs int64  `json:"createdTs"`
}

type sendMessageResponse struct {
	UserMessage *messageResponse `json:"userMessage"`
	AIMessage   *messageResponse `json:"aiMessage"`
}

func convertMessage(message *store.Message) *messageResponse {
	return &messageResponse{
		ID:        message.ID,
		UID:       message.UID,
		ProjectID: message.ProjectID,
		RoleMode:  message.Role,
		Content:   message.Content,
		CreatedTs: message.CreatedTs,
	}
}

// SendMessage appends the user's turn and the assistant's reply. An upstream
// LLM failure is not an HTTP error; the stored fallback reply comes back with
// status 200 like any other assistant message.
func (s *APIV1Service) SendMessage(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := userIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	if !s.chatLimiter.Allow(userID) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many messages, slow down")
	}

	projectID, err := parseID(c.Param("projectId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project id")
	}
	request := &sendMessageRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	result, err := s.ChatService.SendMessage(ctx, projectID, request.RoleMode, request.Content)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyContent) {
			return echo.NewHTTPError(http.StatusBadRequest, "message content is required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to send message")
	}
	return c.JSON(http.StatusOK, &sendMessageResponse{
		UserMessage: convertMessage(result.UserMessage),
		AIMessage:   convertMessage(result.AssistantMessage),
	})
}

func (s *APIV1Service) GetChatHistory(c echo.Context) error {
	ctx := c.Request().Context()

	projectID, err := parseID(c.Param("projectId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project id")
	}
	history, err := s.ChatService.GetHistory(ctx, projectID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch chat history")
	}
	response := make([]*messageResponse, 0, len(history))
	for _, message := range history {
		response = append(response, convertMessage(message))
	}
	return c.JSON(http.StatusOK, response)
}
