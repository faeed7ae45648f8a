package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
)

const defaultFileMode os.FileMode = 0644

// LocalBackend 基于 afero 的本地目录存储
type LocalBackend struct {
	fs       afero.Fs
	root     string
	fileMode os.FileMode
}

// Options LocalBackend 选项
type Options struct {
	CreateRoot bool
	FileMode   os.FileMode
}

// NewLocalBackend 创建以 root 为根目录的存储
func NewLocalBackend(root string, opts Options) (*LocalBackend, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root is empty")
	}

	osFs := afero.NewOsFs()
	info, err := osFs.Stat(root)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("storage root is not a directory: %s", root)
		}
	case errors.Is(err, fs.ErrNotExist) && opts.CreateRoot:
		if err := osFs.MkdirAll(root, 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage root: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat storage root: %w", err)
	}

	backend := NewBackend(afero.NewBasePathFs(osFs, root), opts.FileMode)
	backend.root = root
	return backend, nil
}

// NewBackend 在任意 afero.Fs 上创建存储,其根目录 "/" 即存储根
func NewBackend(fsys afero.Fs, mode os.FileMode) *LocalBackend {
	if mode == 0 {
		mode = defaultFileMode
	}
	return &LocalBackend{
		fs:       fsys,
		root:     "/",
		fileMode: mode,
	}
}

// Root 返回存储根目录
func (b *LocalBackend) Root() string {
	return b.root
}

func (b *LocalBackend) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	infos, err := afero.ReadDir(b.fs, "/")
	if err != nil {
		return nil, fmt.Errorf("failed to read storage root: %w", err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.Mode().IsRegular() {
			names = append(names, info.Name())
		}
	}
	return names, nil
}

func (b *LocalBackend) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	p, err := resolve(name)
	if err != nil {
		return false, err
	}

	info, err := b.fs.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", name, err)
	}
	return info.Mode().IsRegular(), nil
}

func (b *LocalBackend) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := resolve(name)
	if err != nil {
		return nil, err
	}

	if err := b.requireFile(p); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(b.fs, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func (b *LocalBackend) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := resolve(name)
	if err != nil {
		return err
	}

	if err := afero.WriteFile(b.fs, p, data, b.fileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (b *LocalBackend) Create(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := resolve(name)
	if err != nil {
		return err
	}

	f, err := b.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, b.fileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create %s: %w", name, err)
	}

	_, werr := f.Write(data)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		// 写入失败时不留下半截文件
		_ = b.fs.Remove(p)
		return fmt.Errorf("failed to write %s: %w", name, werr)
	}
	return nil
}

func (b *LocalBackend) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := resolve(name)
	if err != nil {
		return err
	}

	if err := b.requireFile(p); err != nil {
		return err
	}

	if err := b.fs.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}

// Ping 检查根目录是否可访问
func (b *LocalBackend) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := b.fs.Stat("/")
	if err != nil {
		return fmt.Errorf("storage root unreachable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage root is not a directory")
	}
	return nil
}

// Usage 统计根目录下的文件数与总字节数
func (b *LocalBackend) Usage(ctx context.Context) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}

	infos, err := afero.ReadDir(b.fs, "/")
	if err != nil {
		return Usage{}, fmt.Errorf("failed to read storage root: %w", err)
	}

	var u Usage
	for _, info := range infos {
		if info.Mode().IsRegular() {
			u.Files++
			u.Bytes += info.Size()
		}
	}
	return u, nil
}

func (b *LocalBackend) requireFile(p string) error {
	info, err := b.fs.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to stat %s: %w", strings.TrimPrefix(p, "/"), err)
	}
	if !info.Mode().IsRegular() {
		return ErrNotFound
	}
	return nil
}

// resolve 将文件名映射为根目录下的绝对路径,只接受单层文件名
func resolve(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return path.Join("/", name), nil
}
