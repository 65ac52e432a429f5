package handler

import (
	"net/http"
	"testing"
	"time"

	domainerrors "leadhub/internal/domain/errors"
	"leadhub/internal/domain/entity"
	"leadhub/internal/domain/repository"
	"leadhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMessageTestServer(caller *entity.Caller) (*echo.Echo, *mockMessageUsecase) {
	uc := new(mockMessageUsecase)
	h := NewMessageHandler(MessageHandlerParams{MessageUC: uc, Logger: discardLogger})

	e := newTestEcho(caller)
	e.POST("/messages", h.SendMessage)
	e.GET("/messages/history", h.FetchHistory)
	e.GET("/messages/conversation", h.ListConversation)

	return e, uc
}

func TestMessageHandler_SendMessage(t *testing.T) {
	caller := &entity.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	recipientID := uuid.New()

	t.Run("sends as the caller", func(t *testing.T) {
		e, uc := newMessageTestServer(caller)
		uc.On("SendMessage", mock.Anything, caller, &usecase.SendMessageInput{
			SenderUserID:    caller.UserID,
			RecipientUserID: recipientID,
			Message:         "Is the price negotiable?",
		}).Return(&entity.Message{
			ID:              uuid.New(),
			SenderUserID:    caller.UserID,
			RecipientUserID: recipientID,
			Message:         "Is the price negotiable?",
			Sender:          &entity.User{FirstName: "Ana", LastName: "Lopez"},
			CreatedAt:       time.Now(),
		}, nil).Once()

		rec := doJSON(e, http.MethodPost, "/messages", `{"recipient_user_id": "`+recipientID.String()+`", "message": "Is the price negotiable?"}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var got MessageResponse
		decode(t, rec, &got)
		assert.Equal(t, "Ana Lopez", got.SenderName)
		assert.Empty(t, got.RecipientName)
		uc.AssertExpectations(t)
	})

	t.Run("blank message", func(t *testing.T) {
		e, uc := newMessageTestServer(caller)

		rec := doJSON(e, http.MethodPost, "/messages", `{"recipient_user_id": "`+recipientID.String()+`", "message": "   "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMessageHandler_FetchHistory(t *testing.T) {
	userID := uuid.New()
	admin := &entity.Caller{UserID: uuid.New(), Role: entity.RoleAdmin}
	user := &entity.Caller{UserID: uuid.New(), Role: entity.RoleUser}

	tests := []struct {
		name        string
		caller      *entity.Caller
		query       string
		wantPartyID *uuid.UUID
		wantSkip    int
		wantTake    int
	}{
		{name: "admin without party sees everything", caller: admin, query: "?take=20", wantTake: 20},
		{name: "user defaults to self", caller: user, query: "?skip=5&take=5", wantPartyID: &user.UserID, wantSkip: 5, wantTake: 5},
		{name: "explicit party", caller: admin, query: "?user_id=" + userID.String(), wantPartyID: &userID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, uc := newMessageTestServer(tt.caller)
			uc.On("FetchHistory", mock.Anything, tt.caller, tt.wantPartyID, tt.wantSkip, tt.wantTake).
				Return([]*entity.Message{{ID: uuid.New()}}, nil).Once()

			rec := doJSON(e, http.MethodGet, "/messages/history"+tt.query, "")

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var got []MessageResponse
			decode(t, rec, &got)
			assert.Len(t, got, 1)
			uc.AssertExpectations(t)
		})
	}
}

func TestMessageHandler_FetchHistory_Forbidden(t *testing.T) {
	user := &entity.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	otherID := uuid.New()

	e, uc := newMessageTestServer(user)
	uc.On("FetchHistory", mock.Anything, user, &otherID, 0, 0).Return(nil, domainerrors.ErrForbidden).Once()

	rec := doJSON(e, http.MethodGet, "/messages/history?user_id="+otherID.String(), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMessageHandler_ListConversation(t *testing.T) {
	caller := &entity.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	otherID := uuid.New()

	t.Run("pages the conversation", func(t *testing.T) {
		e, uc := newMessageTestServer(caller)
		uc.On("ListConversation", mock.Anything, caller,
			repository.ConversationFilter{UserIDOne: caller.UserID, UserIDTwo: otherID},
			repository.Pagination{Take: 2},
		).Return(&usecase.ConversationPage{TotalCount: 3, Messages: []*entity.Message{{ID: uuid.New()}, {ID: uuid.New()}}}, nil).Once()

		rec := doJSON(e, http.MethodGet, "/messages/conversation?with="+otherID.String()+"&take=2", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got PageResponse[MessageResponse]
		decode(t, rec, &got)
		assert.EqualValues(t, 3, got.TotalCount)
		assert.Len(t, got.Items, 2)
		uc.AssertExpectations(t)
	})

	t.Run("requires the counterparty", func(t *testing.T) {
		e, _ := newMessageTestServer(caller)

		rec := doJSON(e, http.MethodGet, "/messages/conversation", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec, nil)
		assert.Equal(t, "INVALID_ID", env.Error.Code)
	})
}
