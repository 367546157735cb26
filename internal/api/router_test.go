package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gian-ai/assistant-be/internal/models"
	"github.com/gian-ai/assistant-be/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s stubCompleter) Complete(ctx context.Context, content string) (string, error) {
	return s.reply, s.err
}

type sentEmail struct {
	to, subject, body string
}

type recordingMailer struct {
	sent []sentEmail
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentEmail{to: to, subject: subject, body: body})
	return nil
}

func newTestRouter(completer stubCompleter, mail *recordingMailer) (http.Handler, *storage.MemStorage) {
	store := storage.NewMemStorage()
	return NewRouter(store, completer, mail, "http://localhost:3000"), store
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateReminderEndToEnd(t *testing.T) {
	router, _ := newTestRouter(stubCompleter{}, &recordingMailer{})

	rec := doJSON(t, router, http.MethodPost, "/api/reminders",
		`{"title":"Buy milk","datetime":"2025-01-02T09:00:00Z"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Decode into a raw map so a null description is distinguishable
	// from a missing key.
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Buy milk", body["title"])
	assert.Equal(t, false, body["completed"])
	assert.Contains(t, body, "description")
	assert.Nil(t, body["description"])
}

func TestCreateReminderValidationFailure(t *testing.T) {
	router, store := newTestRouter(stubCompleter{}, &recordingMailer{})

	rec := doJSON(t, router, http.MethodPost, "/api/reminders", `{"title":"No date"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.GetReminders(), "rejected create must not write")
}

func TestUpdateReminderNotFound(t *testing.T) {
	router, _ := newTestRouter(stubCompleter{}, &recordingMailer{})

	rec := doJSON(t, router, http.MethodPatch, "/api/reminders/999", `{"completed":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateReminderPartialPatch(t *testing.T) {
	router, store := newTestRouter(stubCompleter{}, &recordingMailer{})

	doJSON(t, router, http.MethodPost, "/api/reminders",
		`{"title":"Dentist","description":"Calle Mayor 5","datetime":"2025-04-10T16:30:00Z"}`)

	rec := doJSON(t, router, http.MethodPatch, "/api/reminders/1", `{"completed":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Reminder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.True(t, updated.Completed)
	assert.Equal(t, "Dentist", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Calle Mayor 5", *updated.Description)

	stored, ok := store.GetReminderByID(1)
	require.True(t, ok)
	assert.True(t, stored.Completed)
}

func TestDeleteReminder(t *testing.T) {
	router, _ := newTestRouter(stubCompleter{}, &recordingMailer{})

	doJSON(t, router, http.MethodPost, "/api/reminders",
		`{"title":"Water plants","datetime":"2025-06-01T08:00:00Z"}`)

	rec := doJSON(t, router, http.MethodDelete, "/api/reminders/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = doJSON(t, router, http.MethodDelete, "/api/reminders/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMessageExchange(t *testing.T) {
	router, _ := newTestRouter(stubCompleter{reply: "¡Hola!"}, &recordingMailer{})

	rec := doJSON(t, router, http.MethodPost, "/api/messages", `{"content":"hola"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var exchange struct {
		UserMessage models.Message `json:"userMessage"`
		AIMessage   models.Message `json:"aiMessage"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exchange))
	assert.Equal(t, "hola", exchange.UserMessage.Content)
	assert.Equal(t, models.SenderUser, exchange.UserMessage.Sender)
	assert.Equal(t, "¡Hola!", exchange.AIMessage.Content)
	assert.Equal(t, models.SenderAssistant, exchange.AIMessage.Sender)

	rec = doJSON(t, router, http.MethodGet, "/api/messages", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var history []models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, "hola", history[0].Content)
	assert.Equal(t, "¡Hola!", history[1].Content)
}

func TestMessageExchangeProviderFailureLeavesUserMessage(t *testing.T) {
	router, store := newTestRouter(stubCompleter{err: context.DeadlineExceeded}, &recordingMailer{})

	rec := doJSON(t, router, http.MethodPost, "/api/messages", `{"content":"hola"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// No rollback: the saved user message stays with no paired reply.
	history := store.GetMessages()
	require.Len(t, history, 1)
	assert.Equal(t, models.SenderUser, history[0].Sender)
	assert.Equal(t, "hola", history[0].Content)
}

func TestMessageValidationFailure(t *testing.T) {
	router, store := newTestRouter(stubCompleter{reply: "unused"}, &recordingMailer{})

	rec := doJSON(t, router, http.MethodPost, "/api/messages", `{"content":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.GetMessages())
}

func TestClearMessages(t *testing.T) {
	router, _ := newTestRouter(stubCompleter{reply: "¡Hola!"}, &recordingMailer{})

	doJSON(t, router, http.MethodPost, "/api/messages", `{"content":"hola"}`)

	rec := doJSON(t, router, http.MethodDelete, "/api/messages", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/messages", "")
	var history []models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Empty(t, history)
}

func TestSettingUpsert(t *testing.T) {
	router, _ := newTestRouter(stubCompleter{}, &recordingMailer{})

	rec := doJSON(t, router, http.MethodPut, "/api/settings/theme", `{"value":"dark"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var first models.Setting
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))

	rec = doJSON(t, router, http.MethodPut, "/api/settings/theme", `{"value":"light"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var second models.Setting
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "light", second.Value)

	rec = doJSON(t, router, http.MethodGet, "/api/settings", "")
	var all []models.Setting
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, "theme", all[0].Key)
}

func TestSettingMissingValueRejected(t *testing.T) {
	router, _ := newTestRouter(stubCompleter{}, &recordingMailer{})

	rec := doJSON(t, router, http.MethodPut, "/api/settings/theme", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/settings", "")
	var all []models.Setting
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Empty(t, all, "rejected upsert must not write")
}

func TestSendEmail(t *testing.T) {
	mail := &recordingMailer{}
	router, _ := newTestRouter(stubCompleter{}, mail)

	rec := doJSON(t, router, http.MethodPost, "/api/send-email",
		`{"to":"ana@example.com","subject":"Hola","content":"¿Qué tal?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "ana@example.com", mail.sent[0].to)
}

func TestSendEmailMissingFields(t *testing.T) {
	mail := &recordingMailer{}
	router, _ := newTestRouter(stubCompleter{}, mail)

	rec := doJSON(t, router, http.MethodPost, "/api/send-email",
		`{"to":"ana@example.com","subject":"Hola"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, mail.sent, "mailer must not be called for invalid input")
}
