// Package notification records notifications. Nothing is delivered: every
// notification is logged and then handed to the configured recorders.
package notification

import (
	"context"
	"log/slog"

	"clinic/internal/entities"
	"clinic/pkg/sl"
)

type Recorder interface {
	Record(ctx context.Context, n entities.Notification) error
}

type Service struct {
	log       *slog.Logger
	recorders []Recorder
}

func New(log *slog.Logger, recorders ...Recorder) *Service {
	return &Service{
		log:       log,
		recorders: recorders,
	}
}

// Send never fails from the caller's point of view. Recorder errors are
// logged and dropped.
func (s *Service) Send(ctx context.Context, n entities.Notification) {
	s.log.Info("notification sent",
		slog.String("recipient", n.Recipient),
		slog.String("message", n.Message),
	)

	for _, r := range s.recorders {
		if err := r.Record(ctx, n); err != nil {
			s.log.Error("failed to record notification", slog.String("recipient", n.Recipient), sl.Error(err))
		}
	}
}
