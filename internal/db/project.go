package db

import (
	"time"

	"gorm.io/datatypes"
)

// Project 是站点的顶层容器，Blocks 保留单页项目的旧版区块列表。
type Project struct {
	ID         string          `gorm:"primaryKey" json:"id"`
	Name       string          `gorm:"not null" json:"name"`
	Blocks     datatypes.JSON  `gorm:"not null" json:"blocks"`
	SharedMenu *datatypes.JSON `json:"shared_menu"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TableName 自定义表名以保持命名一致。
func (Project) TableName() string {
	return "projects"
}
