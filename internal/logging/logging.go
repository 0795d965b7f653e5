package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Init 使用 tint 处理器设置全局 slog 日志，级别取自配置。
func Init(level string) {
	InitWithWriter(os.Stderr, level)
}

// InitWithWriter 与 Init 相同，但允许指定输出目标。
func InitWithWriter(w io.Writer, level string) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      ParseLevel(level),
			AddSource:  true,
			TimeFormat: time.DateTime,
		}),
	))
}

// ParseLevel maps a config string onto a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
