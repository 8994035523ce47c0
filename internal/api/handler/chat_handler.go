package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peakform/fitness-api/internal/core/ports"
)

// ChatHandler forwards authenticated chat messages to the AI assistant.
type ChatHandler struct {
	assistant ports.Assistant
}

func NewChatHandler(assistant ports.Assistant) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// Chat answers a free-form fitness question.
//
// @Summary      Chat with the fitness assistant
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Message"
// @Success      200   {object}  chatResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reply, err := h.assistant.ChatReply(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatResponse{Message: reply})
}
