package validator

import (
	"testing"

	"carelink_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() dto.CreateSupplierRequest {
	return dto.CreateSupplierRequest{
		SupplierType: "RN",
		ContactPerson: dto.ContactPersonPayload{
			NameEn: "Jane Doe",
			NameCn: "陳小姐",
			Email:  "jane@example.com",
			Phone:  "91234567",
		},
		Gender: "F",
		HKID:   "A123456(7)",
		Address: dto.AddressPayload{
			Street:   "1 Nathan Road",
			District: "Yau Tsim Mong",
		},
		DateOfBirth: dto.DateOfBirthPayload{
			Day:   "01",
			Month: "02",
			Year:  "1990",
		},
	}
}

func TestValidRequestPasses(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(validCreateRequest()))
}

func TestHKIDRule(t *testing.T) {
	v := New()

	valid := []string{"A123456(7)", "AB123456(A)", "a1234567", "XY123456A"}
	for _, hkid := range valid {
		req := validCreateRequest()
		req.HKID = hkid
		assert.NoError(t, v.Validate(req), "hkid %q should pass", hkid)
	}

	invalid := []string{"", "1234567", "A12345", "A123456(B)", "ABC123456(7)"}
	for _, hkid := range invalid {
		req := validCreateRequest()
		req.HKID = hkid
		assert.Error(t, v.Validate(req), "hkid %q should fail", hkid)
	}
}

func TestPhoneRule(t *testing.T) {
	v := New()

	req := validCreateRequest()
	req.ContactPerson.Phone = "9123456" // seven digits
	assert.Error(t, v.Validate(req))

	req.ContactPerson.Phone = "91234567"
	assert.NoError(t, v.Validate(req))
}

func TestDistrictRule(t *testing.T) {
	v := New()

	req := validCreateRequest()
	req.Address.District = "Kowloon Tong" // not one of the 18 districts
	assert.Error(t, v.Validate(req))

	req.Address.District = "Sha Tin"
	assert.NoError(t, v.Validate(req))
}

func TestSupplierTypeRule(t *testing.T) {
	v := New()

	for _, st := range []string{"RN", "EN", "PCW", "HCA"} {
		req := validCreateRequest()
		req.SupplierType = st
		assert.NoError(t, v.Validate(req), "supplier type %q should pass", st)
	}

	req := validCreateRequest()
	req.SupplierType = "DOCTOR"
	assert.Error(t, v.Validate(req))
}

func TestMissingRequiredFieldReportsBilingualMessage(t *testing.T) {
	v := New()

	req := validCreateRequest()
	req.HKID = ""
	err := v.Validate(req)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "請輸入香港身份證號碼 Please enter HKID number", vErr.Errors["hkid"])
}

func TestOptionalBankAccountValidatedWhenPresent(t *testing.T) {
	v := New()

	req := validCreateRequest()
	req.BankAccount = &dto.BankAccountPayload{
		Bank:     "HSBC",
		BankCode: "004",
		// accountNumber and cardHolderName missing
	}
	assert.Error(t, v.Validate(req))

	req.BankAccount.AccountNumber = "123456789"
	req.BankAccount.CardHolderName = "Jane Doe"
	assert.NoError(t, v.Validate(req))
}
