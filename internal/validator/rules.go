package validator

import (
	"regexp"

	"carelink_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// HKID: one or two prefix letters, six digits, then a check digit which
// may be 0-9 or A, optionally in parentheses. Check-digit arithmetic is
// not verified here; the form only guards the shape.
var hkidPattern = regexp.MustCompile(`^[A-Za-z]{1,2}[0-9]{6}([0-9Aa]|\([0-9Aa]\))$`)

// Hong Kong subscriber numbers are eight digits.
var hkPhonePattern = regexp.MustCompile(`^[0-9]{8}$`)

func registerIntakeRules(v *validator.Validate) {
	_ = v.RegisterValidation("hkid", func(fl validator.FieldLevel) bool {
		return hkidPattern.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("hk_phone", func(fl validator.FieldLevel) bool {
		return hkPhonePattern.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("hk_district", func(fl validator.FieldLevel) bool {
		return models.IsHongKongDistrict(fl.Field().String())
	})

	_ = v.RegisterValidation("supplier_type", func(fl validator.FieldLevel) bool {
		switch models.SupplierType(fl.Field().String()) {
		case models.SupplierTypeRN, models.SupplierTypeEN, models.SupplierTypePCW, models.SupplierTypeHCA:
			return true
		}
		return false
	})
}

// Required-field messages mirror the bilingual prompts of the public
// form, keyed by JSON field name.
var bilingualMessages = map[string]string{
	"supplierType":   "請選擇供應商類型 Please select supplier type",
	"nameEn":         "請輸入英文姓名 Please enter name in English",
	"nameCn":         "請輸入中文姓名 Please enter name in Chinese",
	"email":          "請輸入電郵地址 Please enter email address",
	"phone":          "請輸入聯絡電話 Please enter phone number",
	"gender":         "請選擇性別 Please select gender",
	"district":       "請選擇地區 Please select district",
	"hkid":           "請輸入香港身份證號碼 Please enter HKID number",
	"day":            "請輸入日期 Please enter day",
	"month":          "請輸入月份 Please enter month",
	"year":           "請輸入年份 Please enter year",
	"name":           "請輸入認證名稱 Please enter certification name",
	"expiryDate":     "請輸入認證到期日 Please enter certification expiry date",
	"bank":           "請選擇銀行 Please select bank",
	"bankCode":       "請輸入銀行代碼 Please enter bank code",
	"accountNumber":  "請輸入銀行帳戶號碼 Please enter bank account number",
	"cardHolderName": "請輸入持卡人姓名 Please enter card holder name",
}
