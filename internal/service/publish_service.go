package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sitebuilder/internal/db"
	"github.com/sitebuilder/internal/metrics"
	"github.com/sitebuilder/internal/publish"
	"github.com/sitebuilder/internal/render"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Uploader transfers files to a remote host.
type Uploader interface {
	Upload(ctx context.Context, creds publish.Credentials, files []publish.File) (publish.Receipt, error)
}

// PublishResult 汇总一次发布的结果。
type PublishResult struct {
	FilesUploaded []string `json:"files_uploaded"`
	Skipped       []string `json:"skipped"`
}

// PublishService 渲染区块并推送到 FTP，记录每个文件的内容哈希以支持增量发布。
type PublishService struct {
	store    *db.Store
	renderer *render.Renderer
	uploader Uploader
	now      func() time.Time
}

// NewPublishService 构造 PublishService。
func NewPublishService(store *db.Store, renderer *render.Renderer, uploader Uploader) *PublishService {
	return &PublishService{store: store, renderer: renderer, uploader: uploader, now: utcNow}
}

// Publish 校验凭据、渲染 index.html 并上传。开启 PublishOnlyChanges 时，
// 与上次发布内容相同的文件会被跳过。
func (s *PublishService) Publish(ctx context.Context, creds publish.Credentials, blocks []render.Block) (PublishResult, error) {
	result, err := s.publish(ctx, creds, blocks)
	metrics.IncPublish(err)
	return result, err
}

func (s *PublishService) publish(ctx context.Context, creds publish.Credentials, blocks []render.Block) (PublishResult, error) {
	result := PublishResult{FilesUploaded: []string{}, Skipped: []string{}}

	if err := creds.Validate(); err != nil {
		return result, err
	}
	creds = creds.Normalize()

	document, err := s.renderer.Render(blocks)
	if err != nil {
		return result, err
	}
	files := []publish.File{{Name: publish.IndexFile, Content: []byte(document)}}

	hashes := make(map[string]string, len(files))
	for _, file := range files {
		hashes[file.Name] = contentHash(file.Content)
	}

	target := creds.Target()
	pending := files
	if creds.PublishOnlyChanges {
		previous, err := s.publishedHashes(ctx, target)
		if err != nil {
			return result, err
		}
		pending = pending[:0:0]
		for _, file := range files {
			if previous[file.Name] == hashes[file.Name] {
				result.Skipped = append(result.Skipped, file.Name)
				continue
			}
			pending = append(pending, file)
		}
	}

	if len(pending) == 0 {
		slog.Info("publish skipped, nothing changed", "target", target)
		return result, nil
	}

	receipt, err := s.uploader.Upload(ctx, creds, pending)
	if err != nil {
		slog.Error("ftp publish failed", "host", creds.Host, "err", err)
		return result, err
	}
	result.FilesUploaded = append(result.FilesUploaded, receipt.Files...)

	// 文件没有进入目标目录时不记录历史，下次发布会重新上传
	if receipt.InLoginDir {
		slog.Warn("files landed outside the root folder, publish history not updated", "target", target)
		return result, nil
	}
	if err := s.recordPublished(ctx, target, receipt.Files, hashes); err != nil {
		slog.Warn("could not record publish history", "target", target, "err", err)
	}
	return result, nil
}

func (s *PublishService) publishedHashes(ctx context.Context, target string) (map[string]string, error) {
	var records []db.PublishRecord
	err := s.store.Run(ctx, "publish.history", func(tx *gorm.DB) error {
		return tx.Where("target = ?", target).Find(&records).Error
	})
	if err != nil {
		return nil, fmt.Errorf("load publish history: %w", err)
	}

	hashes := make(map[string]string, len(records))
	for _, record := range records {
		hashes[record.FileName] = record.ContentHash
	}
	return hashes, nil
}

func (s *PublishService) recordPublished(ctx context.Context, target string, names []string, hashes map[string]string) error {
	now := s.now()
	return s.store.Run(ctx, "publish.record", func(tx *gorm.DB) error {
		for _, name := range names {
			record := db.PublishRecord{
				ID:          uuid.NewString(),
				Target:      target,
				FileName:    name,
				ContentHash: hashes[name],
				PublishedAt: now,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "target"}, {Name: "file_name"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"content_hash": record.ContentHash,
					"published_at": now,
				}),
			}).Create(&record).Error; err != nil {
				return fmt.Errorf("record %s: %w", name, err)
			}
		}
		return nil
	})
}

func contentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
