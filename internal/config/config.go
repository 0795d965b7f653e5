package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	GinMode       string
	LogLevel      string
	UploadDir     string
	UploadURLPath string
	CORSOrigins   []string
	StoreWorkers  int
	FTPTimeout    time.Duration
	SMTP          SMTPConfig
}

// SMTPConfig 描述联系表单通知邮件使用的 SMTP 账户。
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Enabled 仅在账号与密码都配置时返回 true。
func (c SMTPConfig) Enabled() bool {
	return c.User != "" && c.Password != ""
}

// LoadDotEnv 尝试加载 .env 文件，文件不存在时静默忽略。
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := envOr("PORT", "8001")

	listenAddr := envOr("LISTEN_ADDR", "")
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	smtpUser := envOr("SMTP_USER", "")

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  envOr("DATABASE_PATH", "builder.db"),
		GinMode:       ginMode(envOr("GIN_MODE", "release")),
		LogLevel:      envOr("LOG_LEVEL", "info"),
		UploadDir:     envOr("UPLOAD_DIR", "uploads"),
		UploadURLPath: strings.TrimRight(envOr("UPLOAD_URL_PATH", "/api/uploads"), "/"),
		CORSOrigins:   splitList(envOr("CORS_ORIGINS", "*")),
		StoreWorkers:  envInt("STORE_WORKERS", 3),
		FTPTimeout:    envDuration("FTP_TIMEOUT", 30*time.Second),
		SMTP: SMTPConfig{
			Host:     envOr("SMTP_HOST", "smtp.gmail.com"),
			Port:     envInt("SMTP_PORT", 587),
			User:     smtpUser,
			Password: envOr("SMTP_PASSWORD", ""),
			From:     envOr("FROM_EMAIL", smtpUser),
		},
	}
}

// ginMode 只接受 gin 认识的模式，其余值回退到 release。
func ginMode(raw string) string {
	switch mode := strings.ToLower(raw); mode {
	case "debug", "release", "test":
		return mode
	default:
		return "release"
	}
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envInt(key string, fallback int) int {
	raw := envOr(key, "")
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := envOr(key, "")
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		items = append(items, trimmed)
	}
	return items
}
