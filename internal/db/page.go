package db

import (
	"time"

	"gorm.io/datatypes"
)

// Page represents one routable page of a project with its own block list.
type Page struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	ProjectID string         `gorm:"not null;index" json:"project_id"`
	Project   *Project       `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Name      string         `gorm:"not null" json:"name"`
	Blocks    datatypes.JSON `gorm:"not null" json:"blocks"`
	IsHome    bool           `gorm:"not null" json:"is_home"`
	PageOrder int            `gorm:"not null;index" json:"page_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableName 自定义表名以保持命名一致。
func (Page) TableName() string {
	return "pages"
}
