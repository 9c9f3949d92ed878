package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"clinic/internal/common/commonerr"
	"clinic/internal/entities"
	"clinic/pkg/sl"

	"github.com/gin-gonic/gin"
)

type Sender interface {
	Send(ctx context.Context, n entities.Notification)
}

type Notifications struct {
	sender Sender
}

func NewNotifications(sender Sender) Notifications {
	return Notifications{sender: sender}
}

func (h Notifications) Register(r gin.IRouter) {
	r.POST("/notifications", h.Send())
}

// Send accepts the notification and answers before anything is delivered.
func (h Notifications) Send() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var n entities.Notification
		if err := ctx.ShouldBindJSON(&n); err != nil {
			slog.Error("fail to decode request body", sl.Error(err))
			ctx.AbortWithStatusJSON(http.StatusBadRequest, commonerr.New("invalid request body"))
			return
		}

		h.sender.Send(ctx.Request.Context(), n)

		ctx.Status(http.StatusAccepted)
	}
}
