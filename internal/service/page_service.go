package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitebuilder/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound       = errors.New("page not found")
	ErrPageNameMissing    = errors.New("page name is required")
	ErrPageProjectMissing = errors.New("page project id is required")
)

// PageInput 描述新建页面所需字段。
type PageInput struct {
	ProjectID string
	Name      string
	Blocks    json.RawMessage
	IsHome    bool
}

// PageUpdate 是页面的局部更新，nil 字段保持不变。
type PageUpdate struct {
	Name   *string
	Blocks json.RawMessage
	IsHome *bool
}

// PageService 管理项目下的页面。
type PageService struct {
	store *db.Store
	now   func() time.Time
}

// NewPageService 构造 PageService。
func NewPageService(store *db.Store) *PageService {
	return &PageService{store: store, now: utcNow}
}

// Create 在项目末尾追加页面。标记为首页时，清除兄弟页面首页标记与插入在同一事务内完成。
func (s *PageService) Create(ctx context.Context, input PageInput) (*db.Page, error) {
	projectID := strings.TrimSpace(input.ProjectID)
	if projectID == "" {
		return nil, ErrPageProjectMissing
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrPageNameMissing
	}
	blocks, err := normalizeBlocks(input.Blocks)
	if err != nil {
		return nil, err
	}

	now := s.now()
	page := db.Page{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Name:      name,
		Blocks:    blocks,
		IsHome:    input.IsHome,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.store.Run(ctx, "page.create", func(tx *gorm.DB) error {
		return tx.Transaction(func(tx *gorm.DB) error {
			if err := projectExists(tx, projectID); err != nil {
				return err
			}
			order, err := nextPageOrder(tx, projectID)
			if err != nil {
				return err
			}
			page.PageOrder = order
			if page.IsHome {
				if err := clearHome(tx, projectID, now); err != nil {
					return err
				}
			}
			return tx.Create(&page).Error
		})
	})
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create page: %w", err)
	}
	return &page, nil
}

// List 按 page_order 升序返回项目的页面。
func (s *PageService) List(ctx context.Context, projectID string) ([]db.Page, error) {
	pages := make([]db.Page, 0)
	err := s.store.Run(ctx, "page.list", func(tx *gorm.DB) error {
		return tx.Where("project_id = ?", projectID).
			Order("page_order asc").
			Order("created_at asc").
			Find(&pages).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list pages of %s: %w", projectID, err)
	}
	return pages, nil
}

// Get 读取单个页面。
func (s *PageService) Get(ctx context.Context, id string) (*db.Page, error) {
	var page db.Page
	err := s.store.Run(ctx, "page.get", func(tx *gorm.DB) error {
		return tx.First(&page, "id = ?", id).Error
	})
	if err != nil {
		return nil, notFound(err, ErrPageNotFound)
	}
	return &page, nil
}

// Update 只修改提供的字段，并总是刷新 updated_at。
func (s *PageService) Update(ctx context.Context, id string, input PageUpdate) (*db.Page, error) {
	now := s.now()
	updates := map[string]interface{}{"updated_at": now}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrPageNameMissing
		}
		updates["name"] = name
	}
	if present(input.Blocks) {
		blocks, err := normalizeBlocks(input.Blocks)
		if err != nil {
			return nil, err
		}
		updates["blocks"] = blocks
	}
	if input.IsHome != nil {
		updates["is_home"] = *input.IsHome
	}

	var page db.Page
	err := s.store.Run(ctx, "page.update", func(tx *gorm.DB) error {
		return tx.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&page, "id = ?", id).Error; err != nil {
				return err
			}
			if input.IsHome != nil && *input.IsHome {
				if err := clearHome(tx, page.ProjectID, now); err != nil {
					return err
				}
			}
			if err := tx.Model(&db.Page{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
			return tx.First(&page, "id = ?", id).Error
		})
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("update page %s: %w", id, err)
	}
	return &page, nil
}

// Delete 删除页面。
func (s *PageService) Delete(ctx context.Context, id string) error {
	var removed int64
	err := s.store.Run(ctx, "page.delete", func(tx *gorm.DB) error {
		result := tx.Delete(&db.Page{}, "id = ?", id)
		removed = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return fmt.Errorf("delete page %s: %w", id, err)
	}
	if removed == 0 {
		return ErrPageNotFound
	}
	return nil
}

// Duplicate 复制页面内容到同一项目的新页面，副本不是首页且排在最后。
func (s *PageService) Duplicate(ctx context.Context, id, newName string) (*db.Page, error) {
	name := strings.TrimSpace(newName)
	if name == "" {
		return nil, ErrPageNameMissing
	}

	now := s.now()
	var copied db.Page
	err := s.store.Run(ctx, "page.duplicate", func(tx *gorm.DB) error {
		return tx.Transaction(func(tx *gorm.DB) error {
			var source db.Page
			if err := tx.First(&source, "id = ?", id).Error; err != nil {
				return err
			}
			order, err := nextPageOrder(tx, source.ProjectID)
			if err != nil {
				return err
			}
			copied = db.Page{
				ID:        uuid.NewString(),
				ProjectID: source.ProjectID,
				Name:      name,
				Blocks:    source.Blocks,
				IsHome:    false,
				PageOrder: order,
				CreatedAt: now,
				UpdatedAt: now,
			}
			return tx.Create(&copied).Error
		})
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("duplicate page %s: %w", id, err)
	}
	return &copied, nil
}

func nextPageOrder(tx *gorm.DB, projectID string) (int, error) {
	var maxOrder int
	if err := tx.Model(&db.Page{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(MAX(page_order), 0)").
		Scan(&maxOrder).Error; err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}

func clearHome(tx *gorm.DB, projectID string, now time.Time) error {
	return tx.Model(&db.Page{}).
		Where("project_id = ? AND is_home = ?", projectID, true).
		Updates(map[string]interface{}{"is_home": false, "updated_at": now}).Error
}
