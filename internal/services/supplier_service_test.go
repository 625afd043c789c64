package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"carelink_backend/database"
	"carelink_backend/internal/models"
	"carelink_backend/internal/repositories"
	"carelink_backend/internal/services/dto"
	"carelink_backend/internal/storage"
	"carelink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// fakeStorage records calls and can be made to fail every Save.
type fakeStorage struct {
	saves   []string
	deletes []string
	failPut bool
}

func (f *fakeStorage) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	if f.failPut {
		return errors.New("bucket unavailable")
	}
	f.saves = append(f.saves, key)
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, key string) (bool, error) { return false, nil }

func (f *fakeStorage) GetURL(ctx context.Context, key string) (string, error) {
	return "https://files.example.com/" + key, nil
}

func (f *fakeStorage) GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "https://files.example.com/" + key + "?signed", nil
}

func (f *fakeStorage) GetSize(ctx context.Context, key string) (int64, error) { return 0, nil }

func newServiceTest(t *testing.T) (*gorm.DB, *fakeStorage, SupplierService) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	store := &fakeStorage{}
	svc := NewSupplierService(repositories.NewSupplierRepository(), store, storage.DefaultUploadRules(), nil)
	return db, store, svc
}

func validRequest(hkid, email string) *dto.CreateSupplierRequest {
	return &dto.CreateSupplierRequest{
		SupplierType: "RN",
		ContactPerson: dto.ContactPersonPayload{
			NameEn: "Jane Doe",
			NameCn: "陳小姐",
			Email:  email,
			Phone:  "91234567",
		},
		Gender: "F",
		HKID:   hkid,
		Address: dto.AddressPayload{
			District: "Sha Tin",
		},
		DateOfBirth: dto.DateOfBirthPayload{Day: "01", Month: "02", Year: "1990"},
	}
}

func idCardFile() dto.UploadedFile {
	return dto.UploadedFile{
		FieldName:   FileFieldIDCard,
		FileName:    "idcard.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	}
}

func TestCreateUploadsAndPersists(t *testing.T) {
	db, store, svc := newServiceTest(t)

	resp, err := svc.Create(context.Background(), db, validRequest("A123456(3)", "a@example.com"), []dto.UploadedFile{idCardFile()})
	require.NoError(t, err)

	assert.Equal(t, models.SupplierStatusPending, resp.Status)
	assert.NotEmpty(t, resp.IdCardFileURL)
	require.Len(t, store.saves, 1)
	assert.Contains(t, store.saves[0], "idCards/")

	var count int64
	db.Model(&models.Supplier{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateRejectsInvalidFileBeforeAnyUpload(t *testing.T) {
	db, store, svc := newServiceTest(t)

	bad := idCardFile()
	bad.ContentType = "application/zip"

	_, err := svc.Create(context.Background(), db, validRequest("A123456(3)", "a@example.com"), []dto.UploadedFile{bad})
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
	assert.Empty(t, store.saves, "no storage call may happen for a rejected file")
}

func TestCreateRejectsOversizedFileBeforeAnyUpload(t *testing.T) {
	db, store, svc := newServiceTest(t)

	big := idCardFile()
	big.Data = make([]byte, storage.DefaultUploadRules().MaxSize+1)

	_, err := svc.Create(context.Background(), db, validRequest("A123456(3)", "a@example.com"), []dto.UploadedFile{big})
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	assert.Empty(t, store.saves)
}

func TestCreateStorageFailureAbortsSubmission(t *testing.T) {
	db, store, svc := newServiceTest(t)
	store.failPut = true

	_, err := svc.Create(context.Background(), db, validRequest("A123456(3)", "a@example.com"), []dto.UploadedFile{idCardFile()})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeStorageFailure, appErr.Code)

	var count int64
	db.Model(&models.Supplier{}).Count(&count)
	assert.Zero(t, count, "nothing may be persisted when the upload failed")
}

func TestCreateDuplicateHKID(t *testing.T) {
	db, _, svc := newServiceTest(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, db, validRequest("A123456(3)", "a@example.com"), []dto.UploadedFile{idCardFile()})
	require.NoError(t, err)

	_, err = svc.Create(ctx, db, validRequest("A123456(3)", "b@example.com"), []dto.UploadedFile{idCardFile()})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateHKID)
}

func TestCreateDuplicateEmail(t *testing.T) {
	db, _, svc := newServiceTest(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, db, validRequest("A123456(3)", "a@example.com"), []dto.UploadedFile{idCardFile()})
	require.NoError(t, err)

	_, err = svc.Create(ctx, db, validRequest("B654321(9)", "a@example.com"), []dto.UploadedFile{idCardFile()})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestCleanupReportsPerKeyOutcome(t *testing.T) {
	_, store, svc := newServiceTest(t)

	deleted, failed := svc.Cleanup(context.Background(), []string{"idCards/a.png", "idCards/b.png"})
	assert.Len(t, deleted, 2)
	assert.Empty(t, failed)
	assert.Equal(t, []string{"idCards/a.png", "idCards/b.png"}, store.deletes)
}
