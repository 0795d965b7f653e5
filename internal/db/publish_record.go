package db

import "time"

// PublishRecord remembers the hash of the last file pushed to a publish target,
// so unchanged files can be skipped on the next incremental publish.
type PublishRecord struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Target      string    `gorm:"not null;uniqueIndex:idx_publish_target_file" json:"target"`
	FileName    string    `gorm:"not null;uniqueIndex:idx_publish_target_file" json:"file_name"`
	ContentHash string    `gorm:"size:64;not null" json:"content_hash"`
	PublishedAt time.Time `gorm:"not null" json:"published_at"`
}

// TableName 自定义表名以保持命名一致。
func (PublishRecord) TableName() string {
	return "publish_records"
}
