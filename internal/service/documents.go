package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrBlocksInvalid 表示区块列表不是由对象组成的 JSON 数组。
	ErrBlocksInvalid = errors.New("blocks must be a JSON array of objects")
	// ErrMenuInvalid 表示共享菜单不是 JSON 对象。
	ErrMenuInvalid = errors.New("shared menu must be a JSON object")
)

func utcNow() time.Time {
	return time.Now().UTC()
}

// present 判断可选 JSON 字段是否被提供，null 视为未提供。
func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// normalizeBlocks 校验区块列表并压缩为存储格式，缺省时为空数组。
func normalizeBlocks(raw json.RawMessage) (datatypes.JSON, error) {
	if !present(raw) {
		return datatypes.JSON("[]"), nil
	}

	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, ErrBlocksInvalid
	}
	for _, item := range items {
		if item == nil {
			return nil, ErrBlocksInvalid
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, ErrBlocksInvalid
	}
	return datatypes.JSON(buf.Bytes()), nil
}

func normalizeMenu(raw json.RawMessage) (*datatypes.JSON, error) {
	if !present(raw) {
		return nil, nil
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, ErrMenuInvalid
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, ErrMenuInvalid
	}
	menu := datatypes.JSON(buf.Bytes())
	return &menu, nil
}

// notFound 将 gorm 的记录不存在错误替换为业务层的哨兵错误。
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
