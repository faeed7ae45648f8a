package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("file not found")
	ErrAlreadyExists = errors.New("file already exists")
	ErrInvalidName   = errors.New("invalid file name")
)

// Backend 以文件名为键的文件存储,所有名称都相对于同一个根目录
type Backend interface {
	// List 返回根目录下的文件名(不递归,不含目录),按名称排序
	List(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, name string) (bool, error)
	// Read 文件不存在时返回 ErrNotFound
	Read(ctx context.Context, name string) ([]byte, error)
	// Write 覆盖写入完整内容,文件不存在时创建
	Write(ctx context.Context, name string, data []byte) error
	// Create 仅在文件不存在时创建,否则返回 ErrAlreadyExists
	Create(ctx context.Context, name string, data []byte) error
	// Delete 文件不存在时返回 ErrNotFound
	Delete(ctx context.Context, name string) error
}

// Usage 存储目录用量统计
type Usage struct {
	Files int   `json:"files"`
	Bytes int64 `json:"bytes"`
}

// Inspector 存储目录的健康检查与统计
type Inspector interface {
	Ping(ctx context.Context) error
	Usage(ctx context.Context) (Usage, error)
}
