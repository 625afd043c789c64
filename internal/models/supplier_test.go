package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	assert.True(t, SupplierStatusPending.ValidTransition(SupplierStatusApproved))
	assert.True(t, SupplierStatusPending.ValidTransition(SupplierStatusRejected))

	assert.False(t, SupplierStatusPending.ValidTransition(SupplierStatusPending))
	assert.False(t, SupplierStatusApproved.ValidTransition(SupplierStatusRejected))
	assert.False(t, SupplierStatusRejected.ValidTransition(SupplierStatusApproved))
	assert.False(t, SupplierStatusApproved.ValidTransition(SupplierStatusPending))
}

func TestSupplierJSONSections(t *testing.T) {
	var s Supplier

	s.SetContactPerson(ContactPerson{
		NameEn: "Jane Doe",
		NameCn: "陳小姐",
		Email:  "jane@example.com",
		Phone:  "91234567",
	})
	s.SetCertifications([]Certification{
		{Name: "RN License", ExpiryDate: "2027-12-31", FileURL: "certifications/a.pdf"},
	})

	// SetContactPerson mirrors the email into the indexed column.
	assert.Equal(t, "jane@example.com", s.ContactEmail)

	cp := s.GetContactPerson()
	assert.Equal(t, "Jane Doe", cp.NameEn)
	assert.Equal(t, "陳小姐", cp.NameCn)

	certs := s.GetCertifications()
	assert.Len(t, certs, 1)
	assert.Equal(t, "RN License", certs[0].Name)

	// Unset sections decode to zero values.
	assert.Empty(t, s.GetBankAccount().Bank)
	assert.Nil(t, s.GetDocuments())
}

func TestIsHongKongDistrict(t *testing.T) {
	assert.True(t, IsHongKongDistrict("Sha Tin"))
	assert.True(t, IsHongKongDistrict("Central and Western"))
	assert.False(t, IsHongKongDistrict("Kowloon Tong"))
	assert.False(t, IsHongKongDistrict(""))
}
