package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"clementus360/ai-helper-web/llm"
	"clementus360/ai-helper-web/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type savedMessage struct {
	sessionID, sender, content string
}

type fakeChatStore struct {
	history []types.Message
	loadErr error
	saveErr error
	saved   []savedMessage
}

func (f *fakeChatStore) GetMessages(id types.Identity, sessionID string) ([]types.Message, error) {
	return f.history, f.loadErr
}

func (f *fakeChatStore) SaveMessage(id types.Identity, sessionID, sender, content string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, savedMessage{sessionID, sender, content})
	return nil
}

type fakeModel struct {
	reply string
	err   error
	got   llm.ChatRequest
}

func (f *fakeModel) Chat(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
	f.got = req
	if f.err != nil {
		return llm.ChatResponse{}, f.err
	}
	return llm.ChatResponse{Choices: []llm.ChatChoice{{Message: llm.ChatMessage{Role: "assistant", Content: f.reply}}}}, nil
}

func signedIn(r *http.Request) (types.Identity, error) {
	return types.Identity{UserID: "u1", Token: "tok"}, nil
}

func anonymous(r *http.Request) (types.Identity, error) {
	return types.Identity{}, errors.New("no token")
}

func chatPost(sessionID, message string) *http.Request {
	r := postForm("/chat/"+sessionID, url.Values{"message": {message}})
	r.SetPathValue("chat_id", sessionID)
	return r
}

func TestChatHandlerSavesBothMessages(t *testing.T) {
	store := &fakeChatStore{history: []types.Message{
		{Sender: "user", Content: "earlier question"},
		{Sender: "ai", Content: "earlier answer"},
	}}
	model := &fakeModel{reply: "Try breaking it into steps."}

	w := httptest.NewRecorder()
	ChatHandler(store, model, "gpt-test", signedIn)(w, chatPost("42", "I'm stuck"))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/chat/42", w.Header().Get("Location"))
	assert.Equal(t, []savedMessage{
		{"42", "user", "I'm stuck"},
		{"42", "ai", "Try breaking it into steps."},
	}, store.saved)

	assert.Equal(t, "gpt-test", model.got.Model)
	assert.Equal(t, "u1", model.got.User)
	require.Len(t, model.got.Messages, 3)
	assert.Equal(t, "assistant", model.got.Messages[1].Role)
	assert.Equal(t, llm.ChatMessage{Role: "user", Content: "I'm stuck"}, model.got.Messages[2])
}

func TestChatHandlerTrimsHistory(t *testing.T) {
	var history []types.Message
	for i := 0; i < 25; i++ {
		history = append(history, types.Message{Sender: "user", Content: fmt.Sprint(i)})
	}
	model := &fakeModel{reply: "ok"}

	w := httptest.NewRecorder()
	ChatHandler(&fakeChatStore{history: history}, model, "gpt-test", signedIn)(w, chatPost("42", "next"))

	require.Len(t, model.got.Messages, 11)
	assert.Equal(t, "15", model.got.Messages[0].Content)
}

func TestChatHandlerModelFailure(t *testing.T) {
	store := &fakeChatStore{loadErr: errors.New("db down")}

	w := httptest.NewRecorder()
	ChatHandler(store, &fakeModel{err: errors.New("timeout")}, "gpt-test", signedIn)(w, chatPost("42", "hello"))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	require.Len(t, store.saved, 2)
	assert.Equal(t, fallbackReply, store.saved[1].content)
}

func TestChatHandlerRequiresSignIn(t *testing.T) {
	store := &fakeChatStore{}

	w := httptest.NewRecorder()
	ChatHandler(store, &fakeModel{}, "gpt-test", anonymous)(w, chatPost("42", "hello"))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Empty(t, store.saved)
}

func TestChatHandlerEmptyMessage(t *testing.T) {
	store := &fakeChatStore{}

	w := httptest.NewRecorder()
	ChatHandler(store, &fakeModel{}, "gpt-test", signedIn)(w, chatPost("42", "   "))

	assert.Equal(t, "/chat/42", w.Header().Get("Location"))
	assert.Empty(t, store.saved)
}

func TestChatHandlerSaveFailure(t *testing.T) {
	store := &fakeChatStore{saveErr: errors.New("insert failed")}
	model := &fakeModel{reply: "unused"}

	w := httptest.NewRecorder()
	ChatHandler(store, model, "gpt-test", signedIn)(w, chatPost("42", "hello"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, model.got.Model)
}
