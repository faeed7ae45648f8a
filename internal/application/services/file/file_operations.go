package file

import (
	"context"
	"errors"

	"github.com/easayliu/local-files-api/internal/application/contracts"
	"github.com/easayliu/local-files-api/internal/infrastructure/filesystem"
	"github.com/easayliu/local-files-api/internal/infrastructure/storage"
	"github.com/easayliu/local-files-api/pkg/logger"
)

// ListFiles 列出存储根目录下的全部文件名
func (s *AppFileService) ListFiles(ctx context.Context) ([]string, error) {
	names, err := s.backend.List(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	return names, nil
}

// CreateFile 新建文件,同名文件已存在时返回冲突且不写入
func (s *AppFileService) CreateFile(ctx context.Context, req contracts.CreateFileRequest) error {
	if err := s.validator.Validate(req.Filename); err != nil {
		return invalidFilename(err)
	}

	exists, err := s.backend.Exists(ctx, req.Filename)
	if err != nil {
		return internalError(err)
	}
	if exists {
		return contracts.NewServiceError(contracts.ErrorCodeConflict, contracts.MessageAlreadyExists)
	}

	// 排他创建,并发创建同名文件时只有一个成功
	if err := s.backend.Create(ctx, req.Filename, []byte(req.Content)); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return contracts.NewServiceError(contracts.ErrorCodeConflict, contracts.MessageAlreadyExists)
		}
		return internalError(err)
	}

	logger.Info("File created", "filename", req.Filename, "bytes", len(req.Content))
	return nil
}

// ReadFile 读取文件全部内容
func (s *AppFileService) ReadFile(ctx context.Context, filename string) (string, error) {
	notFound := contracts.NewServiceError(contracts.ErrorCodeNotFound, contracts.MessageReadNotFound)

	if s.validator.Validate(filename) != nil {
		return "", notFound
	}

	exists, err := s.backend.Exists(ctx, filename)
	if err != nil {
		return "", internalError(err)
	}
	if !exists {
		return "", notFound
	}

	data, err := s.backend.Read(ctx, filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", notFound
		}
		return "", internalError(err)
	}
	return string(data), nil
}

// UpdateFile 用新内容整体覆盖已有文件
func (s *AppFileService) UpdateFile(ctx context.Context, filename string, req contracts.UpdateFileRequest) error {
	if s.validator.Validate(filename) != nil {
		return notExists()
	}

	exists, err := s.backend.Exists(ctx, filename)
	if err != nil {
		return internalError(err)
	}
	if !exists {
		return notExists()
	}

	if err := s.backend.Write(ctx, filename, []byte(req.Content)); err != nil {
		return internalError(err)
	}

	logger.Info("File updated", "filename", filename, "bytes", len(req.Content))
	return nil
}

// DeleteFile 删除文件
func (s *AppFileService) DeleteFile(ctx context.Context, filename string) error {
	if s.validator.Validate(filename) != nil {
		return notExists()
	}

	exists, err := s.backend.Exists(ctx, filename)
	if err != nil {
		return internalError(err)
	}
	if !exists {
		return notExists()
	}

	if err := s.backend.Delete(ctx, filename); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notExists()
		}
		return internalError(err)
	}

	logger.Info("File deleted", "filename", filename)
	return nil
}

func notExists() *contracts.ServiceError {
	return contracts.NewServiceError(contracts.ErrorCodeNotFound, contracts.MessageNotExists)
}

func internalError(err error) *contracts.ServiceError {
	return contracts.NewServiceErrorWithCause(contracts.ErrorCodeInternalError, contracts.MessageInternalError, err)
}

func invalidFilename(err error) *contracts.ServiceError {
	reason := err.Error()
	var verr *filesystem.FilenameValidationError
	if errors.As(err, &verr) {
		reason = verr.Reason
	}
	return contracts.NewServiceErrorWithDetails(
		contracts.ErrorCodeInvalidRequest,
		"El campo filename no es válido.",
		map[string][]string{"filename": {reason}},
	)
}
