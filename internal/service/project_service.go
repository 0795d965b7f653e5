package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sitebuilder/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrProjectIDMissing   = errors.New("project id is required")
	ErrProjectNameMissing = errors.New("project name is required")
)

// ProjectInput 描述保存项目时可写的字段。
type ProjectInput struct {
	ID     string
	Name   string
	Blocks json.RawMessage
}

// ProjectService handles project persistence and the shared navigation menu.
type ProjectService struct {
	store *db.Store
	now   func() time.Time
}

// NewProjectService 构造 ProjectService。
func NewProjectService(store *db.Store) *ProjectService {
	return &ProjectService{store: store, now: utcNow}
}

// Save 按 id 插入或覆盖项目。已存在时只更新 name、blocks 与 updated_at，后写者胜出。
func (s *ProjectService) Save(ctx context.Context, input ProjectInput) (*db.Project, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, ErrProjectIDMissing
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProjectNameMissing
	}
	blocks, err := normalizeBlocks(input.Blocks)
	if err != nil {
		return nil, err
	}

	now := s.now()
	project := db.Project{
		ID:        id,
		Name:      name,
		Blocks:    blocks,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var saved db.Project
	err = s.store.Run(ctx, "project.save", func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"name":       name,
				"blocks":     blocks,
				"updated_at": now,
			}),
		}).Create(&project).Error; err != nil {
			return err
		}
		return tx.First(&saved, "id = ?", id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("save project %s: %w", id, err)
	}
	return &saved, nil
}

// List 返回全部项目，最近更新的在前。
func (s *ProjectService) List(ctx context.Context) ([]db.Project, error) {
	projects := make([]db.Project, 0)
	err := s.store.Run(ctx, "project.list", func(tx *gorm.DB) error {
		return tx.Order("updated_at desc").Find(&projects).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Get 读取单个项目。
func (s *ProjectService) Get(ctx context.Context, id string) (*db.Project, error) {
	var project db.Project
	err := s.store.Run(ctx, "project.get", func(tx *gorm.DB) error {
		return tx.First(&project, "id = ?", id).Error
	})
	if err != nil {
		return nil, notFound(err, ErrProjectNotFound)
	}
	return &project, nil
}

// Delete 删除项目，页面与站点设置随外键级联删除。
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	var removed int64
	err := s.store.Run(ctx, "project.delete", func(tx *gorm.DB) error {
		result := tx.Delete(&db.Project{}, "id = ?", id)
		removed = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	if removed == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// UpdateSharedMenu 替换项目的共享菜单，menu 为空或 null 时清除。
func (s *ProjectService) UpdateSharedMenu(ctx context.Context, projectID string, menu json.RawMessage) error {
	value, err := normalizeMenu(menu)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{"updated_at": s.now()}
	if value == nil {
		updates["shared_menu"] = nil
	} else {
		updates["shared_menu"] = *value
	}

	var touched int64
	err = s.store.Run(ctx, "project.shared_menu.update", func(tx *gorm.DB) error {
		result := tx.Model(&db.Project{}).Where("id = ?", projectID).Updates(updates)
		touched = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return fmt.Errorf("update shared menu of %s: %w", projectID, err)
	}
	if touched == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// GetSharedMenu 返回共享菜单，未设置时返回 nil。
func (s *ProjectService) GetSharedMenu(ctx context.Context, projectID string) (json.RawMessage, error) {
	var project db.Project
	err := s.store.Run(ctx, "project.shared_menu.get", func(tx *gorm.DB) error {
		return tx.Select("id", "shared_menu").First(&project, "id = ?", projectID).Error
	})
	if err != nil {
		return nil, notFound(err, ErrProjectNotFound)
	}
	if project.SharedMenu == nil || len(*project.SharedMenu) == 0 {
		return nil, nil
	}
	return json.RawMessage(*project.SharedMenu), nil
}

func projectExists(tx *gorm.DB, id string) error {
	var count int64
	if err := tx.Model(&db.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrProjectNotFound
	}
	return nil
}
