package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the intake domain. Messages that
// reach the public form are bilingual, mirroring the submission UI.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrStorageFailure wraps an object-storage error that survived the
// retry budget. The message is deliberately generic.
func ErrStorageFailure(err error) *AppError {
	return Wrap(err, CodeStorageFailure, "storage", "Failed to store uploaded file", http.StatusInternalServerError)
}

// File intake rejections shown directly to applicants.
var (
	ErrFileTooLarge = New(
		CodeFileTooLarge,
		"upload",
		"檔案大小超過10MB限制 File size exceeds the 10MB limit",
		http.StatusBadRequest,
	)

	ErrInvalidFileType = New(
		CodeInvalidFileType,
		"upload",
		"檔案格式無效，只接受JPEG、PNG、GIF或PDF Invalid file type. Only JPEG, PNG, GIF or PDF are allowed",
		http.StatusBadRequest,
	)

	ErrDuplicateHKID = New(
		CodeAlreadyExists,
		"supplier",
		"此身份證號碼已遞交申請 An application with this HKID already exists",
		http.StatusConflict,
	)

	ErrDuplicateEmail = New(
		CodeAlreadyExists,
		"supplier",
		"此電郵地址已遞交申請 An application with this email already exists",
		http.StatusConflict,
	)

	ErrSupplierNotFound = New(
		CodeNotFound,
		"supplier",
		"找不到申請記錄 Supplier application not found",
		http.StatusNotFound,
	)

	ErrStatusTransition = New(
		CodeInvalidStatus,
		"supplier",
		"只可審批待處理的申請 Only pending applications can be approved or rejected",
		http.StatusBadRequest,
	)
)
