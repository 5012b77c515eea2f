package app

import (
	"log/slog"
	"os"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/logx"
)

func NewLogger() logx.Logger {
	base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return logx.NewSlogAdapter(base)
}
