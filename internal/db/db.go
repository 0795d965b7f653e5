package db

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sitebuilder/internal/metrics"
	"golang.org/x/sync/semaphore"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DefaultWorkers 是同时执行的存储操作上限。
const DefaultWorkers = 3

// Store 持有数据库连接，并把所有阻塞的存储操作限制在固定数量的工作槽内。
type Store struct {
	gdb     *gorm.DB
	sem     *semaphore.Weighted
	workers int
}

// Open 打开（必要时创建）SQLite 文件、开启外键约束并执行自动迁移。
// databasePath 为空时将回退到默认值 builder.db。
func Open(databasePath string, workers int, opts ...gorm.Option) (*Store, error) {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "builder.db"
	}

	if err := ensureParentDir(path); err != nil {
		return nil, err
	}

	if len(opts) == 0 {
		opts = []gorm.Option{&gorm.Config{}}
	}

	gdb, err := gorm.Open(sqlite.Open(buildDSN(path)), opts...)
	if err != nil {
		return nil, err
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}

	return New(gdb, workers), nil
}

// New 基于已有的 gorm 连接构造 Store，主要用于测试。
func New(gdb *gorm.DB, workers int) *Store {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Store{
		gdb:     gdb,
		sem:     semaphore.NewWeighted(int64(workers)),
		workers: workers,
	}
}

// Migrate 为全部模型创建或更新表结构。
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&Project{},
		&Page{},
		&SiteSettings{},
		&StatusCheck{},
		&PublishRecord{},
	)
}

// Run 在获得工作槽后执行 fn。等待期间 ctx 被取消时直接返回 ctx 的错误。
// fn 返回的错误原样向上传递，不做重试。
func (s *Store) Run(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	started := time.Now()
	if err := s.sem.Acquire(ctx, 1); err != nil {
		metrics.ObserveStoreOperation(op, started, err)
		return err
	}
	defer s.sem.Release(1)

	err := fn(s.gdb.WithContext(ctx))
	metrics.ObserveStoreOperation(op, started, err)
	return err
}

// Workers reports the size of the worker pool.
func (s *Store) Workers() int {
	return s.workers
}

// DB exposes the underlying gorm instance for migrations and tests.
func (s *Store) DB() *gorm.DB {
	return s.gdb
}

// Close 关闭底层连接池。
func (s *Store) Close() error {
	sqlDB, err := s.gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func buildDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

func ensureParentDir(path string) error {
	if strings.HasPrefix(path, "file:") || strings.HasPrefix(path, ":memory:") {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
