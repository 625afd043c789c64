package dto

import (
	"time"

	"carelink_backend/internal/models"
)

// CreateSupplierRequest is the JSON document carried in the "data" part
// of the multipart submission. File parts travel alongside it and are
// attached by the handler.
type CreateSupplierRequest struct {
	SupplierType  string               `json:"supplierType" validate:"required,supplier_type"`
	ContactPerson ContactPersonPayload `json:"contactPerson"`
	Gender        string               `json:"gender" validate:"required,oneof=M F"`
	HKID          string               `json:"hkid" validate:"required,hkid"`
	Address       AddressPayload       `json:"address"`
	DateOfBirth   DateOfBirthPayload   `json:"dateOfBirth"`
	BankAccount   *BankAccountPayload  `json:"bankAccount"`

	Certifications []CertificationPayload `json:"professionalCertifications" validate:"dive"`
}

type ContactPersonPayload struct {
	NameEn string `json:"nameEn" validate:"required"`
	NameCn string `json:"nameCn" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required,hk_phone"`
}

type AddressPayload struct {
	Street       string `json:"street"`
	AddressLine2 string `json:"addressLine2"`
	District     string `json:"district" validate:"required,hk_district"`
}

type DateOfBirthPayload struct {
	Day   string `json:"day" validate:"required"`
	Month string `json:"month" validate:"required"`
	Year  string `json:"year" validate:"required"`
}

type BankAccountPayload struct {
	Bank           string `json:"bank" validate:"required"`
	BankCode       string `json:"bankCode" validate:"required"`
	AccountNumber  string `json:"accountNumber" validate:"required"`
	CardHolderName string `json:"cardHolderName" validate:"required"`
}

type CertificationPayload struct {
	Name       string `json:"name" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`
}

// UploadedFile is one validated file part, already read into memory.
type UploadedFile struct {
	FieldName   string
	FileName    string
	ContentType string
	Data        []byte
}

// UpdateSupplierRequest corrects fields of an existing application.
// Nil fields are left untouched.
type UpdateSupplierRequest struct {
	SupplierType  *string               `json:"supplierType" validate:"omitempty,supplier_type"`
	ContactPerson *ContactPersonPayload `json:"contactPerson"`
	Gender        *string               `json:"gender" validate:"omitempty,oneof=M F"`
	Address       *AddressPayload       `json:"address"`
	DateOfBirth   *DateOfBirthPayload   `json:"dateOfBirth"`
	BankAccount   *BankAccountPayload   `json:"bankAccount"`
}

// UpdateStatusRequest moves a pending application to a decision.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Approved Rejected"`
}

// CleanupRequest lists storage keys to delete, used by the client to
// roll back orphaned uploads after an abandoned submission.
type CleanupRequest struct {
	Keys []string `json:"keys" validate:"required,min=1"`
}

// SupplierResponse is the API representation of one application.
type SupplierResponse struct {
	ID             string                 `json:"id"`
	SupplierType   models.SupplierType    `json:"supplierType"`
	ContactPerson  models.ContactPerson   `json:"contactPerson"`
	Gender         models.Gender          `json:"gender"`
	HKID           string                 `json:"hkid"`
	Address        models.Address         `json:"address"`
	DateOfBirth    models.DateOfBirth     `json:"dateOfBirth"`
	IdCardFileURL  string                 `json:"idCardFileUrl"`
	BankAccount    models.BankAccount     `json:"bankAccount"`
	Certifications []models.Certification `json:"professionalCertifications"`
	Documents      []string               `json:"documents"`
	Status         models.SupplierStatus  `json:"status"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// NewSupplierResponse flattens the stored JSON sections back into the
// structured response.
func NewSupplierResponse(s *models.Supplier) *SupplierResponse {
	certs := s.GetCertifications()
	if certs == nil {
		certs = []models.Certification{}
	}
	docs := s.GetDocuments()
	if docs == nil {
		docs = []string{}
	}

	return &SupplierResponse{
		ID:             s.ID,
		SupplierType:   s.SupplierType,
		ContactPerson:  s.GetContactPerson(),
		Gender:         s.Gender,
		HKID:           s.HKID,
		Address:        s.GetAddress(),
		DateOfBirth:    s.GetDateOfBirth(),
		IdCardFileURL:  s.IdCardFileURL,
		BankAccount:    s.GetBankAccount(),
		Certifications: certs,
		Documents:      docs,
		Status:         s.Status,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
