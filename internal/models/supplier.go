package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// ContactPerson is the applicant's contact block. Names are collected in
// both English and Chinese because official documents use both.
type ContactPerson struct {
	NameEn string `json:"nameEn"`
	NameCn string `json:"nameCn"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

type Address struct {
	Street       string `json:"street"`
	AddressLine2 string `json:"addressLine2"`
	District     string `json:"district"`
}

type DateOfBirth struct {
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

type BankAccount struct {
	Bank           string `json:"bank"`
	BankCode       string `json:"bankCode"`
	AccountNumber  string `json:"accountNumber"`
	CardHolderName string `json:"cardHolderName"`
	FileURL        string `json:"fileUrl"`
}

type Certification struct {
	Name       string    `json:"name"`
	ExpiryDate string    `json:"expiryDate"`
	FileURL    string    `json:"fileUrl"`
	UploadDate time.Time `json:"uploadDate"`
}

// Supplier is one intake submission. Scalar fields that participate in
// uniqueness or filtering are columns; the nested form sections are
// stored as JSON documents.
type Supplier struct {
	BaseModel
	SupplierType SupplierType   `gorm:"not null;index" json:"supplierType"`
	Gender       Gender         `gorm:"not null" json:"gender"`
	HKID         string         `gorm:"column:hkid;uniqueIndex;not null" json:"hkid"`
	ContactEmail string         `gorm:"uniqueIndex;not null" json:"contactEmail"`
	Status       SupplierStatus `gorm:"not null;default:'Pending';index" json:"status"`

	IdCardFileURL string `gorm:"column:id_card_file_url;not null" json:"idCardFileUrl"`

	ContactPerson  datatypes.JSON `gorm:"type:jsonb" json:"-"`
	Address        datatypes.JSON `gorm:"type:jsonb" json:"-"`
	DateOfBirth    datatypes.JSON `gorm:"type:jsonb" json:"-"`
	BankAccount    datatypes.JSON `gorm:"type:jsonb" json:"-"`
	Certifications datatypes.JSON `gorm:"type:jsonb" json:"-"`
	Documents      datatypes.JSON `gorm:"type:jsonb" json:"-"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

func (s *Supplier) GetContactPerson() ContactPerson {
	var cp ContactPerson
	if len(s.ContactPerson) > 0 {
		_ = json.Unmarshal(s.ContactPerson, &cp)
	}
	return cp
}

func (s *Supplier) SetContactPerson(cp ContactPerson) {
	data, _ := json.Marshal(cp)
	s.ContactPerson = datatypes.JSON(data)
	s.ContactEmail = cp.Email
}

func (s *Supplier) GetAddress() Address {
	var a Address
	if len(s.Address) > 0 {
		_ = json.Unmarshal(s.Address, &a)
	}
	return a
}

func (s *Supplier) SetAddress(a Address) {
	data, _ := json.Marshal(a)
	s.Address = datatypes.JSON(data)
}

func (s *Supplier) GetDateOfBirth() DateOfBirth {
	var d DateOfBirth
	if len(s.DateOfBirth) > 0 {
		_ = json.Unmarshal(s.DateOfBirth, &d)
	}
	return d
}

func (s *Supplier) SetDateOfBirth(d DateOfBirth) {
	data, _ := json.Marshal(d)
	s.DateOfBirth = datatypes.JSON(data)
}

func (s *Supplier) GetBankAccount() BankAccount {
	var b BankAccount
	if len(s.BankAccount) > 0 {
		_ = json.Unmarshal(s.BankAccount, &b)
	}
	return b
}

func (s *Supplier) SetBankAccount(b BankAccount) {
	data, _ := json.Marshal(b)
	s.BankAccount = datatypes.JSON(data)
}

func (s *Supplier) GetCertifications() []Certification {
	var certs []Certification
	if len(s.Certifications) > 0 {
		_ = json.Unmarshal(s.Certifications, &certs)
	}
	return certs
}

func (s *Supplier) SetCertifications(certs []Certification) {
	data, _ := json.Marshal(certs)
	s.Certifications = datatypes.JSON(data)
}

func (s *Supplier) GetDocuments() []string {
	var docs []string
	if len(s.Documents) > 0 {
		_ = json.Unmarshal(s.Documents, &docs)
	}
	return docs
}

func (s *Supplier) SetDocuments(docs []string) {
	data, _ := json.Marshal(docs)
	s.Documents = datatypes.JSON(data)
}
