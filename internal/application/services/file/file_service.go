package file

import (
	"github.com/easayliu/local-files-api/internal/application/contracts"
	"github.com/easayliu/local-files-api/internal/infrastructure/filesystem"
	"github.com/easayliu/local-files-api/internal/infrastructure/storage"
)

// AppFileService 应用层文件服务 - 校验文件名并编排存储调用
// 每次调用都重新查询存储,不缓存任何状态
type AppFileService struct {
	backend   storage.Backend
	validator *filesystem.FilenameValidator
}

// NewAppFileService 创建应用文件服务
func NewAppFileService(backend storage.Backend, validator *filesystem.FilenameValidator) contracts.FileService {
	if validator == nil {
		validator = filesystem.NewFilenameValidator(0)
	}
	return &AppFileService{
		backend:   backend,
		validator: validator,
	}
}
