package handler

import (
	"fieldtofork/internal/usecase"
	"fieldtofork/pkg/response"

	"github.com/labstack/echo/v4"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type openThreadRequest struct {
	OtherUserID string `json:"other_user_id" validate:"required"`
	ProductID   string `json:"product_id" validate:"required"`
}

func (h *ChatHandler) OpenThread(c echo.Context) error {
	var req openThreadRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	thread, err := h.chatUseCase.OpenThread(c.Request().Context(), uid, req.OtherUserID, req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, thread)
}

func (h *ChatHandler) ListThreads(c echo.Context) error {
	uid := c.Get("uid").(string)

	threads, err := h.chatUseCase.ListThreads(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, threads)
}

func (h *ChatHandler) ListMessages(c echo.Context) error {
	uid := c.Get("uid").(string)

	messages, err := h.chatUseCase.ListMessages(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), uid, usecase.SendMessageInput{
		ThreadID: c.Param("id"),
		Text:     req.Text,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) Typing(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.chatUseCase.Typing(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Typing recorded",
	})
}

func (h *ChatHandler) DeleteMessage(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.chatUseCase.DeleteMessage(c.Request().Context(), uid, c.Param("id"), c.Param("messageId")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Message deleted",
	})
}
