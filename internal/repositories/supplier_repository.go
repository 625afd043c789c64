package repositories

import (
	"errors"

	"carelink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSupplierNotFound = errors.New("supplier not found")

// SupplierRepository is the persistence layer for intake applications.
// The *gorm.DB is passed per call so the same repository works against
// the pool and against a test transaction.
type SupplierRepository interface {
	Create(db *gorm.DB, supplier *models.Supplier) error
	FindByID(db *gorm.DB, id string) (*models.Supplier, error)
	FindAll(db *gorm.DB) ([]models.Supplier, error)
	Update(db *gorm.DB, supplier *models.Supplier) error
	Delete(db *gorm.DB, id string) error
	ExistsByHKID(db *gorm.DB, hkid string) (bool, error)
	ExistsByEmail(db *gorm.DB, email string) (bool, error)
}

type supplierRepository struct{}

func NewSupplierRepository() SupplierRepository {
	return &supplierRepository{}
}

func (r *supplierRepository) Create(db *gorm.DB, supplier *models.Supplier) error {
	return db.Create(supplier).Error
}

func (r *supplierRepository) FindByID(db *gorm.DB, id string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := db.First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) FindAll(db *gorm.DB) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := db.Order("created_at DESC").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *supplierRepository) Update(db *gorm.DB, supplier *models.Supplier) error {
	result := db.Save(supplier)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

func (r *supplierRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

func (r *supplierRepository) ExistsByHKID(db *gorm.DB, hkid string) (bool, error) {
	var count int64
	if err := db.Model(&models.Supplier{}).Where("hkid = ?", hkid).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *supplierRepository) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	var count int64
	if err := db.Model(&models.Supplier{}).Where("contact_email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
