package handlers

import (
	"net/http"

	"github.com/easayliu/local-files-api/internal/application/contracts"
	"github.com/easayliu/local-files-api/internal/application/services"
	"github.com/easayliu/local-files-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// FileHandler 文件资源处理器 - 纯协议转换层,错误交给 ErrorHandlerMiddleware
type FileHandler struct {
	container *services.ServiceContainer
}

// NewFileHandler 创建文件处理器
func NewFileHandler(container *services.ServiceContainer) *FileHandler {
	return &FileHandler{
		container: container,
	}
}

// ListFiles 列出全部文件
// @Summary 列出文件
// @Description 列出存储目录下的全部文件名
// @Tags 文件
// @Produce json
// @Success 200 {object} utils.Response "Listado de ficheros"
// @Failure 500 {object} utils.Response "Error interno del servidor"
// @Router /files [get]
func (h *FileHandler) ListFiles(c *gin.Context) {
	names, err := h.container.GetFileService().ListFiles(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	utils.Content(c, http.StatusOK, contracts.MessageListed, names)
}

// CreateFile 新建文件
// @Summary 新建文件
// @Description 同名文件已存在时返回409且不写入
// @Tags 文件
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body contracts.CreateFileRequest true "文件名与内容"
// @Success 200 {object} utils.Response "Guardado con éxito"
// @Failure 409 {object} utils.Response "El archivo ya existe"
// @Failure 422 {object} utils.Response "校验失败"
// @Router /files [post]
func (h *FileHandler) CreateFile(c *gin.Context) {
	var req contracts.CreateFileRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(bindingError(&req, err))
		return
	}

	if err := h.container.GetFileService().CreateFile(c.Request.Context(), req); err != nil {
		_ = c.Error(err)
		return
	}

	utils.Message(c, http.StatusOK, contracts.MessageSaved)
}

// ReadFile 读取文件内容
// @Summary 读取文件
// @Tags 文件
// @Produce json
// @Param filename path string true "文件名"
// @Success 200 {object} utils.Response "Archivo leído con éxito"
// @Failure 404 {object} utils.Response "Archivo no encontrado"
// @Router /files/{filename} [get]
func (h *FileHandler) ReadFile(c *gin.Context) {
	content, err := h.container.GetFileService().ReadFile(c.Request.Context(), c.Param("filename"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	utils.Content(c, http.StatusOK, contracts.MessageRead, content)
}

// UpdateFile 覆盖文件内容
// @Summary 更新文件
// @Description 用请求中的content整体覆盖文件,不做合并
// @Tags 文件
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param filename path string true "文件名"
// @Param request body contracts.UpdateFileRequest true "新内容"
// @Success 200 {object} utils.Response "Actualizado con éxito"
// @Failure 404 {object} utils.Response "El archivo no existe"
// @Failure 422 {object} utils.Response "校验失败"
// @Router /files/{filename} [put]
// @Router /files/{filename} [patch]
func (h *FileHandler) UpdateFile(c *gin.Context) {
	var req contracts.UpdateFileRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(bindingError(&req, err))
		return
	}

	if err := h.container.GetFileService().UpdateFile(c.Request.Context(), c.Param("filename"), req); err != nil {
		_ = c.Error(err)
		return
	}

	utils.Message(c, http.StatusOK, contracts.MessageUpdated)
}

// DeleteFile 删除文件
// @Summary 删除文件
// @Tags 文件
// @Produce json
// @Param filename path string true "文件名"
// @Success 200 {object} utils.Response "Eliminado con éxito"
// @Failure 404 {object} utils.Response "El archivo no existe"
// @Router /files/{filename} [delete]
func (h *FileHandler) DeleteFile(c *gin.Context) {
	if err := h.container.GetFileService().DeleteFile(c.Request.Context(), c.Param("filename")); err != nil {
		_ = c.Error(err)
		return
	}

	utils.Message(c, http.StatusOK, contracts.MessageDeleted)
}
