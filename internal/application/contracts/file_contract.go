package contracts

import "context"

// 响应消息,需与既有客户端保持一致
const (
	MessageListed         = "Listado de ficheros"
	MessageSaved          = "Guardado con éxito"
	MessageAlreadyExists  = "El archivo ya existe"
	MessageRead           = "Archivo leído con éxito"
	MessageReadNotFound   = "Archivo no encontrado"
	MessageNotExists      = "El archivo no existe"
	MessageUpdated        = "Actualizado con éxito"
	MessageDeleted        = "Eliminado con éxito"
	MessageInternalError  = "Error interno del servidor"
	MessageTooManyRequest = "Demasiadas solicitudes"
	MessageUnavailable    = "Almacenamiento no disponible"
)

// CreateFileRequest 新建文件请求
type CreateFileRequest struct {
	Filename string `json:"filename" form:"filename" binding:"required,notblank" example:"a.txt"`
	Content  string `json:"content" form:"content" binding:"required,notblank" example:"hello"`
}

// UpdateFileRequest 更新文件请求,内容整体覆盖
type UpdateFileRequest struct {
	Content string `json:"content" form:"content" binding:"required,notblank" example:"world"`
}

// FileService 文件应用服务
type FileService interface {
	ListFiles(ctx context.Context) ([]string, error)
	CreateFile(ctx context.Context, req CreateFileRequest) error
	ReadFile(ctx context.Context, filename string) (string, error)
	UpdateFile(ctx context.Context, filename string, req UpdateFileRequest) error
	DeleteFile(ctx context.Context, filename string) error
}
