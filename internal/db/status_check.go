package db

import "time"

// StatusCheck 是只追加的心跳记录。
type StatusCheck struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	ClientName string    `gorm:"not null" json:"client_name"`
	Timestamp  time.Time `gorm:"not null;index" json:"timestamp"`
}

// TableName 自定义表名以保持命名一致。
func (StatusCheck) TableName() string {
	return "status_checks"
}
