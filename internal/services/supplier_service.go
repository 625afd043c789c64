package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"carelink_backend/internal/email"
	"carelink_backend/internal/logger"
	"carelink_backend/internal/models"
	"carelink_backend/internal/repositories"
	"carelink_backend/internal/services/dto"
	"carelink_backend/internal/storage"
	"carelink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Multipart field names of the document uploads.
const (
	FileFieldIDCard   = "idCardFile"
	FileFieldBank     = "bankFile"
	FileFieldCertFmt  = "certFile_%d"
	signedURLValidity = time.Hour
)

// Storage folders per document kind.
const (
	folderIDCards        = "idCards"
	folderBankFiles      = "bankFiles"
	folderCertifications = "certifications"
)

// SupplierService orchestrates the intake pipeline: validate files,
// generate keys, upload, persist, and the administrative passthroughs.
// There is deliberately no transaction spanning upload and persist; a
// failed persist can leave uploaded files behind, and the cleanup
// operation is the client's compensation path.
type SupplierService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateSupplierRequest, files []dto.UploadedFile) (*dto.SupplierResponse, error)
	List(db *gorm.DB) ([]*dto.SupplierResponse, error)
	Get(db *gorm.DB, id string) (*dto.SupplierResponse, error)
	Update(db *gorm.DB, id string, req *dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)
	UpdateStatus(db *gorm.DB, id string, status models.SupplierStatus) (*dto.SupplierResponse, error)
	Delete(db *gorm.DB, id string) error
	Cleanup(ctx context.Context, keys []string) (deleted []string, failed []string)
	FileURL(ctx context.Context, key string) (string, error)
}

type supplierService struct {
	supplierRepo repositories.SupplierRepository
	storage      storage.Storage
	rules        storage.UploadRules
	mailer       email.Sender
}

func NewSupplierService(
	supplierRepo repositories.SupplierRepository,
	store storage.Storage,
	rules storage.UploadRules,
	mailer email.Sender,
) SupplierService {
	if mailer == nil {
		mailer = email.NopSender{}
	}
	return &supplierService{
		supplierRepo: supplierRepo,
		storage:      store,
		rules:        rules,
		mailer:       mailer,
	}
}

func (s *supplierService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateSupplierRequest, files []dto.UploadedFile) (*dto.SupplierResponse, error) {
	// Uniqueness first, so the applicant learns about a duplicate before
	// any file leaves their browser's upload.
	if exists, err := s.supplierRepo.ExistsByHKID(db, req.HKID); err != nil {
		return nil, apperrors.InternalError(err)
	} else if exists {
		return nil, apperrors.ErrDuplicateHKID
	}
	if exists, err := s.supplierRepo.ExistsByEmail(db, req.ContactPerson.Email); err != nil {
		return nil, apperrors.InternalError(err)
	} else if exists {
		return nil, apperrors.ErrDuplicateEmail
	}

	byField := make(map[string]dto.UploadedFile, len(files))
	for _, f := range files {
		byField[f.FieldName] = f
	}

	// All files must pass validation before the first storage call.
	for _, f := range files {
		if err := s.rules.Validate(int64(len(f.Data)), f.ContentType); err != nil {
			return nil, err
		}
	}

	idCard, ok := byField[FileFieldIDCard]
	if !ok {
		return nil, apperrors.NewBadRequestError("請上傳身份證文件 Please upload ID card document")
	}
	if req.BankAccount != nil {
		if _, ok := byField[FileFieldBank]; !ok {
			return nil, apperrors.NewBadRequestError("請上傳銀行帳戶文件 Please upload bank account document")
		}
	}
	for i := range req.Certifications {
		if _, ok := byField[fmt.Sprintf(FileFieldCertFmt, i)]; !ok {
			return nil, apperrors.NewBadRequestError("請上傳專業認證文件 Please upload professional certification document")
		}
	}

	// Sequential uploads; the retry policy inside the storage client is
	// the only recovery. A failure here aborts the submission and the
	// already-uploaded files stay behind for the cleanup endpoint.
	idCardURL, err := s.uploadFile(ctx, folderIDCards, idCard)
	if err != nil {
		return nil, err
	}

	supplier := &models.Supplier{
		SupplierType:  models.SupplierType(req.SupplierType),
		Gender:        models.Gender(req.Gender),
		HKID:          req.HKID,
		Status:        models.SupplierStatusPending,
		IdCardFileURL: idCardURL,
	}
	supplier.SetContactPerson(models.ContactPerson{
		NameEn: req.ContactPerson.NameEn,
		NameCn: req.ContactPerson.NameCn,
		Email:  req.ContactPerson.Email,
		Phone:  req.ContactPerson.Phone,
	})
	supplier.SetAddress(models.Address{
		Street:       req.Address.Street,
		AddressLine2: req.Address.AddressLine2,
		District:     req.Address.District,
	})
	supplier.SetDateOfBirth(models.DateOfBirth{
		Day:   req.DateOfBirth.Day,
		Month: req.DateOfBirth.Month,
		Year:  req.DateOfBirth.Year,
	})

	if req.BankAccount != nil {
		bankURL, err := s.uploadFile(ctx, folderBankFiles, byField[FileFieldBank])
		if err != nil {
			return nil, err
		}
		supplier.SetBankAccount(models.BankAccount{
			Bank:           req.BankAccount.Bank,
			BankCode:       req.BankAccount.BankCode,
			AccountNumber:  req.BankAccount.AccountNumber,
			CardHolderName: req.BankAccount.CardHolderName,
			FileURL:        bankURL,
		})
	}

	certs := make([]models.Certification, 0, len(req.Certifications))
	for i, c := range req.Certifications {
		certURL, err := s.uploadFile(ctx, folderCertifications, byField[fmt.Sprintf(FileFieldCertFmt, i)])
		if err != nil {
			return nil, err
		}
		certs = append(certs, models.Certification{
			Name:       c.Name,
			ExpiryDate: c.ExpiryDate,
			FileURL:    certURL,
			UploadDate: time.Now().UTC(),
		})
	}
	supplier.SetCertifications(certs)
	supplier.SetDocuments([]string{})

	if err := s.supplierRepo.Create(db, supplier); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "supplier application created",
		"supplier_id", supplier.ID,
		"supplier_type", supplier.SupplierType,
	)

	s.sendAcknowledgement(supplier)

	return dto.NewSupplierResponse(supplier), nil
}

func (s *supplierService) uploadFile(ctx context.Context, folder string, f dto.UploadedFile) (string, error) {
	key := storage.FileKey(folder, f.FileName)

	if err := s.storage.Save(ctx, key, bytes.NewReader(f.Data), f.ContentType); err != nil {
		return "", apperrors.ErrStorageFailure(err)
	}

	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		// The object is stored; fall back to the raw key so the record
		// still references it.
		return key, nil
	}
	return url, nil
}

func (s *supplierService) List(db *gorm.DB) ([]*dto.SupplierResponse, error) {
	suppliers, err := s.supplierRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		responses = append(responses, dto.NewSupplierResponse(&suppliers[i]))
	}
	return responses, nil
}

func (s *supplierService) Get(db *gorm.DB, id string) (*dto.SupplierResponse, error) {
	supplier, err := s.findSupplier(db, id)
	if err != nil {
		return nil, err
	}
	return dto.NewSupplierResponse(supplier), nil
}

func (s *supplierService) Update(db *gorm.DB, id string, req *dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := s.findSupplier(db, id)
	if err != nil {
		return nil, err
	}

	if req.SupplierType != nil {
		supplier.SupplierType = models.SupplierType(*req.SupplierType)
	}
	if req.Gender != nil {
		supplier.Gender = models.Gender(*req.Gender)
	}
	if req.ContactPerson != nil {
		supplier.SetContactPerson(models.ContactPerson{
			NameEn: req.ContactPerson.NameEn,
			NameCn: req.ContactPerson.NameCn,
			Email:  req.ContactPerson.Email,
			Phone:  req.ContactPerson.Phone,
		})
	}
	if req.Address != nil {
		supplier.SetAddress(models.Address{
			Street:       req.Address.Street,
			AddressLine2: req.Address.AddressLine2,
			District:     req.Address.District,
		})
	}
	if req.DateOfBirth != nil {
		supplier.SetDateOfBirth(models.DateOfBirth{
			Day:   req.DateOfBirth.Day,
			Month: req.DateOfBirth.Month,
			Year:  req.DateOfBirth.Year,
		})
	}
	if req.BankAccount != nil {
		bank := supplier.GetBankAccount()
		bank.Bank = req.BankAccount.Bank
		bank.BankCode = req.BankAccount.BankCode
		bank.AccountNumber = req.BankAccount.AccountNumber
		bank.CardHolderName = req.BankAccount.CardHolderName
		supplier.SetBankAccount(bank)
	}

	if err := s.supplierRepo.Update(db, supplier); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewSupplierResponse(supplier), nil
}

func (s *supplierService) UpdateStatus(db *gorm.DB, id string, status models.SupplierStatus) (*dto.SupplierResponse, error) {
	supplier, err := s.findSupplier(db, id)
	if err != nil {
		return nil, err
	}

	if !supplier.Status.ValidTransition(status) {
		return nil, apperrors.ErrStatusTransition
	}

	supplier.Status = status
	if err := s.supplierRepo.Update(db, supplier); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewSupplierResponse(supplier), nil
}

// Delete removes the record only. Stored files are not cascaded; the
// record holds the only reference and orphans are accepted.
func (s *supplierService) Delete(db *gorm.DB, id string) error {
	if err := s.supplierRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrSupplierNotFound) {
			return apperrors.ErrSupplierNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Cleanup deletes a batch of storage keys, best effort. Failures are
// reported per key and never abort the batch.
func (s *supplierService) Cleanup(ctx context.Context, keys []string) (deleted []string, failed []string) {
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			logger.CtxWithError(ctx, "cleanup: failed to delete storage key", err, "key", key)
			failed = append(failed, key)
			continue
		}
		deleted = append(deleted, key)
	}
	return deleted, failed
}

// FileURL returns a time-limited signed URL for a stored document.
func (s *supplierService) FileURL(ctx context.Context, key string) (string, error) {
	url, err := s.storage.GetSignedURL(ctx, key, signedURLValidity)
	if err != nil {
		return "", apperrors.ErrStorageFailure(err)
	}
	return url, nil
}

func (s *supplierService) findSupplier(db *gorm.DB, id string) (*models.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSupplierNotFound) {
			return nil, apperrors.ErrSupplierNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return supplier, nil
}

func (s *supplierService) sendAcknowledgement(supplier *models.Supplier) {
	contact := supplier.GetContactPerson()
	if contact.Email == "" {
		return
	}

	subject := "申請已收到 Application received"
	body := fmt.Sprintf(
		"%s %s,\n\n我們已收到您的申請，現正處理中。\nWe have received your application and it is now being processed.\n\nReference: %s\n",
		contact.NameCn, contact.NameEn, supplier.ID,
	)

	// Fire and forget; the submission already succeeded.
	go func() {
		if err := s.mailer.Send([]string{contact.Email}, subject, body); err != nil {
			logger.WithError(err).Warn("failed to send acknowledgement email", "supplier_id", supplier.ID)
		}
	}()
}
