package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitebuilder/internal/db"
	"gorm.io/gorm"
)

// DefaultStatusLimit 是心跳列表默认返回的条数。
const DefaultStatusLimit = 1000

// ErrClientNameMissing 表示心跳缺少 client_name。
var ErrClientNameMissing = errors.New("client name is required")

// StatusService 记录和读取心跳日志。
type StatusService struct {
	store *db.Store
	now   func() time.Time
}

// NewStatusService 构造 StatusService。
func NewStatusService(store *db.Store) *StatusService {
	return &StatusService{store: store, now: utcNow}
}

// Create 追加一条心跳记录。
func (s *StatusService) Create(ctx context.Context, clientName string) (*db.StatusCheck, error) {
	name := strings.TrimSpace(clientName)
	if name == "" {
		return nil, ErrClientNameMissing
	}

	check := db.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: name,
		Timestamp:  s.now(),
	}

	err := s.store.Run(ctx, "status.create", func(tx *gorm.DB) error {
		return tx.Create(&check).Error
	})
	if err != nil {
		return nil, fmt.Errorf("insert status check: %w", err)
	}
	return &check, nil
}

// List 按时间倒序返回心跳记录，limit 非正数时使用默认值。
func (s *StatusService) List(ctx context.Context, limit int) ([]db.StatusCheck, error) {
	if limit <= 0 {
		limit = DefaultStatusLimit
	}

	checks := make([]db.StatusCheck, 0)
	err := s.store.Run(ctx, "status.list", func(tx *gorm.DB) error {
		return tx.Order("timestamp desc").Limit(limit).Find(&checks).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	return checks, nil
}
