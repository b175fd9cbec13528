package notify

import (
	"context"
	"log/slog"
)

// LogSender writes pushes to the log instead of delivering them. It backs
// local runs without a gateway.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "log_sender")}
}

func (s *LogSender) Send(ctx context.Context, address, text string) error {
	s.logger.InfoContext(ctx, "Push", "address", address, "text", text)
	return nil
}
