package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"clinic/internal/entities"
	"clinic/internal/server/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type recordingSender struct {
	sent []entities.Notification
}

func (s *recordingSender) Send(_ context.Context, n entities.Notification) {
	s.sent = append(s.sent, n)
}

func TestNotifications_Send(t *testing.T) {
	sender := &recordingSender{}
	r := gin.New()
	handlers.NewNotifications(sender).Register(r)

	rec := do(t, r, http.MethodPost, "/notifications", entities.Notification{Recipient: "x@y.com", Message: "hi"})

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, []entities.Notification{{Recipient: "x@y.com", Message: "hi"}}, sender.sent)

	rec = do(t, r, http.MethodGet, "/notifications", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "notifications are not queryable")
}

func TestNotifications_BadBody(t *testing.T) {
	sender := &recordingSender{}
	r := gin.New()
	handlers.NewNotifications(sender).Register(r)

	rec := do(t, r, http.MethodPost, "/notifications", `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, sender.sent)
}
