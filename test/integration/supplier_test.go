package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"carelink_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type supplierResponse struct {
	ID            string `json:"id"`
	SupplierType  string `json:"supplierType"`
	ContactPerson struct {
		NameEn string `json:"nameEn"`
		NameCn string `json:"nameCn"`
		Email  string `json:"email"`
		Phone  string `json:"phone"`
	} `json:"contactPerson"`
	Gender        string `json:"gender"`
	HKID          string `json:"hkid"`
	IdCardFileURL string `json:"idCardFileUrl"`
	Status        string `json:"status"`
	BankAccount   struct {
		Bank    string `json:"bank"`
		FileURL string `json:"fileUrl"`
	} `json:"bankAccount"`
	Certifications []struct {
		Name    string `json:"name"`
		FileURL string `json:"fileUrl"`
	} `json:"professionalCertifications"`
}

func createSupplier(t *testing.T, ts *helpers.TestServer, data map[string]interface{}, files []helpers.FilePart) supplierResponse {
	res, body := ts.SendMultipart(t, "/api/v1/suppliers", data, files)
	require.Equal(t, http.StatusCreated, res.StatusCode, "create should succeed, got: "+body)

	var created supplierResponse
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	return created
}

func TestCreateSupplierWithIDCard(t *testing.T) {
	ts := GetTestServer(t)

	data := helpers.ApplicationData(nextSeq())
	created := createSupplier(t, ts, data, []helpers.FilePart{helpers.IDCardPart()})

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "RN", created.SupplierType)
	assert.Equal(t, "Jane Doe", created.ContactPerson.NameEn)
	assert.Equal(t, "陳小姐", created.ContactPerson.NameCn)
	assert.Equal(t, "Pending", created.Status)
	assert.NotEmpty(t, created.IdCardFileURL)
}

func TestCreateSupplierRoundTrip(t *testing.T) {
	ts := GetTestServer(t)
	token := helpers.CreateAndLoginAdmin(t, ts)

	data := helpers.ApplicationData(nextSeq())
	created := createSupplier(t, ts, data, []helpers.FilePart{helpers.IDCardPart()})

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/suppliers/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var fetched supplierResponse
	require.NoError(t, json.Unmarshal([]byte(body), &fetched))
	assert.Equal(t, created, fetched)
}

func TestCreateSupplierWithBankAndCertifications(t *testing.T) {
	ts := GetTestServer(t)

	data := helpers.ApplicationData(nextSeq())
	data["bankAccount"] = map[string]interface{}{
		"bank":           "HSBC",
		"bankCode":       "004",
		"accountNumber":  "123456789",
		"cardHolderName": "Jane Doe",
	}
	data["professionalCertifications"] = []map[string]interface{}{
		{"name": "Registered Nurse License", "expiryDate": "2027-12-31"},
	}

	files := []helpers.FilePart{
		helpers.IDCardPart(),
		{FieldName: "bankFile", FileName: "statement.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4 test")},
		{FieldName: "certFile_0", FileName: "license.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4 test")},
	}

	created := createSupplier(t, ts, data, files)

	assert.Equal(t, "HSBC", created.BankAccount.Bank)
	assert.NotEmpty(t, created.BankAccount.FileURL)
	require.Len(t, created.Certifications, 1)
	assert.Equal(t, "Registered Nurse License", created.Certifications[0].Name)
	assert.NotEmpty(t, created.Certifications[0].FileURL)
}

func TestCreateSupplierMissingHKID(t *testing.T) {
	ts := GetTestServer(t)

	data := helpers.ApplicationData(nextSeq())
	data["hkid"] = ""

	res, body := ts.SendMultipart(t, "/api/v1/suppliers", data, []helpers.FilePart{helpers.IDCardPart()})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "請輸入香港身份證號碼")
}

func TestCreateSupplierMissingIDCardFile(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendMultipart(t, "/api/v1/suppliers", helpers.ApplicationData(nextSeq()), nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Please upload ID card document")
}

func TestCreateSupplierRejectsInvalidFileType(t *testing.T) {
	ts := GetTestServer(t)

	files := []helpers.FilePart{
		{FieldName: "idCardFile", FileName: "archive.zip", ContentType: "application/zip", Content: []byte("PK")},
	}
	res, body := ts.SendMultipart(t, "/api/v1/suppliers", helpers.ApplicationData(nextSeq()), files)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Invalid file type")
}

func TestCreateSupplierDuplicateHKID(t *testing.T) {
	ts := GetTestServer(t)

	n := nextSeq()
	createSupplier(t, ts, helpers.ApplicationData(n), []helpers.FilePart{helpers.IDCardPart()})

	// Same HKID, different email.
	dup := helpers.ApplicationData(n)
	dup["contactPerson"].(map[string]interface{})["email"] = "other@example.com"

	res, body := ts.SendMultipart(t, "/api/v1/suppliers", dup, []helpers.FilePart{helpers.IDCardPart()})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "An application with this HKID already exists")
}

func TestGetUnknownSupplier(t *testing.T) {
	ts := GetTestServer(t)
	token := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/suppliers/00000000-0000-0000-0000-000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Supplier application not found")
}

func TestListSuppliersRequiresAuth(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/suppliers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestListSuppliers(t *testing.T) {
	ts := GetTestServer(t)
	token := helpers.CreateAndLoginAdmin(t, ts)

	created := createSupplier(t, ts, helpers.ApplicationData(nextSeq()), []helpers.FilePart{helpers.IDCardPart()})

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/suppliers", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list []supplierResponse
	require.NoError(t, json.Unmarshal([]byte(body), &list))

	found := false
	for _, s := range list {
		if s.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found, "created supplier should appear in the list")
}

func TestUpdateSupplier(t *testing.T) {
	ts := GetTestServer(t)
	token := helpers.CreateAndLoginAdmin(t, ts)

	created := createSupplier(t, ts, helpers.ApplicationData(nextSeq()), []helpers.FilePart{helpers.IDCardPart()})

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/suppliers/"+created.ID, token, map[string]interface{}{
		"supplierType": "EN",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated supplierResponse
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "EN", updated.SupplierType)
	// Untouched fields survive the partial update.
	assert.Equal(t, created.ContactPerson.Email, updated.ContactPerson.Email)

	// PATCH is an alias for the same partial update.
	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/suppliers/"+created.ID, token, map[string]interface{}{
		"supplierType": "PCW",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "PCW", updated.SupplierType)
	assert.Equal(t, created.ContactPerson.Email, updated.ContactPerson.Email)
}

func TestStatusTransitions(t *testing.T) {
	ts := GetTestServer(t)
	token := helpers.CreateAndLoginAdmin(t, ts)

	created := createSupplier(t, ts, helpers.ApplicationData(nextSeq()), []helpers.FilePart{helpers.IDCardPart()})

	res, body := ts.SendRequest(t, http.MethodPatch, "/api/v1/suppliers/"+created.ID+"/status", token, map[string]interface{}{
		"status": "Approved",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var approved supplierResponse
	require.NoError(t, json.Unmarshal([]byte(body), &approved))
	assert.Equal(t, "Approved", approved.Status)

	// Approved is terminal.
	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/suppliers/"+created.ID+"/status", token, map[string]interface{}{
		"status": "Rejected",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Only pending applications")
}

func TestStatusRejectsUnknownValue(t *testing.T) {
	ts := GetTestServer(t)
	token := helpers.CreateAndLoginAdmin(t, ts)

	created := createSupplier(t, ts, helpers.ApplicationData(nextSeq()), []helpers.FilePart{helpers.IDCardPart()})

	res, _ := ts.SendRequest(t, http.MethodPatch, "/api/v1/suppliers/"+created.ID+"/status", token, map[string]interface{}{
		"status": "Pending",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestDeleteSupplier(t *testing.T) {
	ts := GetTestServer(t)
	token := helpers.CreateAndLoginAdmin(t, ts)

	created := createSupplier(t, ts, helpers.ApplicationData(nextSeq()), []helpers.FilePart{helpers.IDCardPart()})

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/suppliers/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/suppliers/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCleanupDeletesOrphanedKeys(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/cleanup", "", map[string]interface{}{
		"keys": []string{"idCards/orphan-1.png", "bankFiles/orphan-2.pdf"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var result struct {
		Deleted int      `json:"deleted"`
		Failed  []string `json:"failed"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	// Local storage treats deleting a missing key as success.
	assert.Equal(t, 2, result.Deleted)
	assert.Empty(t, result.Failed)
}

func TestCleanupRequiresKeys(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/cleanup", "", map[string]interface{}{
		"keys": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
