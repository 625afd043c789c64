package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"carelink_backend/internal/middleware"
	"carelink_backend/internal/models"
	"carelink_backend/internal/services"
	"carelink_backend/internal/services/dto"
	"carelink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// dataPartName is the multipart field carrying the JSON application.
const dataPartName = "data"

// maxFormMemory bounds the in-memory portion of multipart parsing;
// larger parts spill to temp files.
const maxFormMemory = 32 << 20

type SupplierHandler struct {
	*BaseHandler
	supplierService services.SupplierService
}

func NewSupplierHandler(base *BaseHandler, supplierService services.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		BaseHandler:     base,
		supplierService: supplierService,
	}
}

func (h *SupplierHandler) RegisterRoutes(r *gin.RouterGroup) {
	suppliers := r.Group("/suppliers")
	{
		// Applicant-facing. The form is public; applicants have no
		// accounts.
		suppliers.POST("", h.CreateSupplier)

		staff := suppliers.Group("")
		staff.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleStaff))
		{
			staff.GET("", h.ListSuppliers)
			staff.GET("/:id", h.GetSupplier)
			staff.PUT("/:id", h.UpdateSupplier)
			staff.PATCH("/:id", h.UpdateSupplier)
			staff.PATCH("/:id/status", h.UpdateSupplierStatus)
			staff.DELETE("/:id", h.DeleteSupplier)
		}
	}

	// The frontend calls cleanup after an abandoned submission, before
	// any account exists, so it stays unauthenticated.
	r.POST("/cleanup", h.Cleanup)
}

// CreateSupplier accepts the multipart submission: a "data" part with
// the JSON application plus idCardFile, bankFile and certFile_<i>
// document parts.
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("failed to parse form: "+err.Error()))
		return
	}

	dataRaw := c.Request.FormValue(dataPartName)
	if dataRaw == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("missing \"data\" form field"))
		return
	}

	var req dto.CreateSupplierRequest
	if err := json.Unmarshal([]byte(dataRaw), &req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid JSON in \"data\" field: "+err.Error()))
		return
	}

	if !h.ValidateStruct(c, &req) {
		return
	}

	files, err := collectFiles(c.Request.MultipartForm)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.supplierService.Create(c.Request.Context(), h.GetDB(c), &req, files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	resp, err := h.supplierService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.supplierService.Get(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSupplierRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.supplierService.Update(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SupplierHandler) UpdateSupplierStatus(c *gin.Context) {
	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.supplierService.UpdateStatus(h.GetDB(c), id, models.SupplierStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	if err := h.supplierService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted"})
}

// Cleanup deletes orphaned storage keys after an abandoned submission.
func (h *SupplierHandler) Cleanup(c *gin.Context) {
	var req dto.CleanupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	deleted, failed := h.supplierService.Cleanup(c.Request.Context(), req.Keys)
	c.JSON(http.StatusOK, gin.H{
		"deleted": len(deleted),
		"failed":  failed,
	})
}

// collectFiles reads every known file part into memory. Unknown field
// names are rejected so a typo in the frontend fails loudly instead of
// silently dropping a document.
func collectFiles(form *multipart.Form) ([]dto.UploadedFile, error) {
	if form == nil {
		return nil, nil
	}

	files := make([]dto.UploadedFile, 0, len(form.File))
	for field, headers := range form.File {
		if !knownFileField(field) {
			return nil, apperrors.NewBadRequestError("unexpected file field: " + field)
		}
		if len(headers) == 0 {
			continue
		}

		f, err := readFilePart(field, headers[0])
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func knownFileField(field string) bool {
	if field == services.FileFieldIDCard || field == services.FileFieldBank {
		return true
	}
	if strings.HasPrefix(field, "certFile_") {
		var i int
		_, err := fmt.Sscanf(field, services.FileFieldCertFmt, &i)
		return err == nil && i >= 0
	}
	return false
}

func readFilePart(field string, header *multipart.FileHeader) (dto.UploadedFile, error) {
	part, err := header.Open()
	if err != nil {
		return dto.UploadedFile{}, apperrors.NewBadRequestError("failed to open file part: " + field)
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		return dto.UploadedFile{}, apperrors.InternalError(err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return dto.UploadedFile{
		FieldName:   field,
		FileName:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
