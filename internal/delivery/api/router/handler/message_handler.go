package handler

import (
	"log/slog"
	"net/http"

	"leadhub/internal/delivery/api/response"
	"leadhub/internal/domain/entity"
	"leadhub/internal/domain/repository"
	"leadhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// MessageHandler serves chat messages and the inbox view.
type MessageHandler struct {
	messageUC usecase.MessageUsecase
	logger    *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// SendMessageRequest is a chat message to another user.
type SendMessageRequest struct {
	RecipientUserID uuid.UUID `json:"recipient_user_id" validate:"required"`
	Message         string    `json:"message" validate:"notblank,max=4000"`
}

// SendMessage stores a message from the caller.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		var req SendMessageRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
		}
		if err := c.Validate(&req); err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
		}

		message, err := h.messageUC.SendMessage(c.Request().Context(), caller, &usecase.SendMessageInput{
			SenderUserID:    caller.UserID,
			RecipientUserID: req.RecipientUserID,
			Message:         req.Message,
		})
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusCreated, toMessageResponse(message))
	})
}

// FetchHistory returns the newest message of each conversation.
// Without ?user_id an admin sees every conversation and anyone else their own.
func (h *MessageHandler) FetchHistory(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		partyID, err := optionalUUIDQuery(c, "user_id")
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
		}
		if partyID == nil && !caller.IsAdmin() {
			partyID = &caller.UserID
		}

		var skip, take int
		if err := echo.QueryParamsBinder(c).Int("skip", &skip).Int("take", &take).BindError(); err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "Invalid paging parameters")
		}

		messages, err := h.messageUC.FetchHistory(c.Request().Context(), caller, partyID, skip, take)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, mapSlice(messages, toMessageResponse))
	})
}

// ListConversation pages through the messages between ?user_id (default the caller) and ?with.
func (h *MessageHandler) ListConversation(c echo.Context) error {
	return withCaller(c, func(caller *entity.Caller) error {
		userID, err := optionalUUIDQuery(c, "user_id")
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
		}
		if userID == nil {
			userID = &caller.UserID
		}

		otherID, err := uuid.Parse(c.QueryParam("with"))
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Query parameter with must be a user ID")
		}

		page, err := bindPage(c)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "Invalid paging parameters")
		}

		result, err := h.messageUC.ListConversation(c.Request().Context(), caller, repository.ConversationFilter{
			UserIDOne: *userID,
			UserIDTwo: otherID,
			Search:    c.QueryParam("search"),
		}, page)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, PageResponse[MessageResponse]{
			TotalCount: result.TotalCount,
			Items:      mapSlice(result.Messages, toMessageResponse),
		})
	})
}
