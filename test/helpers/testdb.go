package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"carelink_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a staff account, hashing the given raw password.
func CreateUser(t *testing.T, db *gorm.DB, name, email, password string, role models.UserRole) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err, "failed to hash test password")

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error, "failed to create test user")
	return user
}

// CreateAndLoginAdmin creates an admin with a unique email and returns
// its bearer token.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) string {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	password := "password123"
	CreateUser(t, ts.DB, "Test Admin", email, password, models.UserRoleAdmin)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+body)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	assert.NotEmpty(t, loginResponse.Token)
	return loginResponse.Token
}

// PNG file header bytes, enough for http.DetectContentType.
var pngContent = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

// IDCardPart returns a valid PNG id-card attachment.
func IDCardPart() FilePart {
	return FilePart{
		FieldName:   "idCardFile",
		FileName:    "idcard.png",
		ContentType: "image/png",
		Content:     pngContent,
	}
}

// ApplicationData returns a complete valid submission payload with a
// unique HKID and email. Mutate the map to build invalid variants.
func ApplicationData(seq int) map[string]interface{} {
	return map[string]interface{}{
		"supplierType": "RN",
		"contactPerson": map[string]interface{}{
			"nameEn": "Jane Doe",
			"nameCn": "陳小姐",
			"email":  fmt.Sprintf("jane_%d@example.com", seq),
			"phone":  "91234567",
		},
		"gender": "F",
		"hkid":   fmt.Sprintf("A%06d(3)", seq%1000000),
		"address": map[string]interface{}{
			"street":   "1 Nathan Road",
			"district": "Yau Tsim Mong",
		},
		"dateOfBirth": map[string]interface{}{
			"day":   "01",
			"month": "02",
			"year":  "1990",
		},
	}
}
