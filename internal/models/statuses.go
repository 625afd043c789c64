package models

type SupplierStatus string
type SupplierType string
type Gender string
type UserRole string

const (
	// Lifecycle of an application. Pending may move to Approved or
	// Rejected; both are terminal.
	SupplierStatusPending  SupplierStatus = "Pending"
	SupplierStatusApproved SupplierStatus = "Approved"
	SupplierStatusRejected SupplierStatus = "Rejected"

	// Care-worker roles the company recruits for.
	SupplierTypeRN  SupplierType = "RN"  // Registered Nurse 註冊護士
	SupplierTypeEN  SupplierType = "EN"  // Enrolled Nurse 登記護士
	SupplierTypePCW SupplierType = "PCW" // Personal Care Worker 個人護理員
	SupplierTypeHCA SupplierType = "HCA" // Health Care Assistant 保健員

	GenderMale   Gender = "M"
	GenderFemale Gender = "F"

	UserRoleAdmin UserRole = "admin"
	UserRoleStaff UserRole = "staff"
)

// ValidTransition reports whether a status change is allowed.
func (s SupplierStatus) ValidTransition(to SupplierStatus) bool {
	if s != SupplierStatusPending {
		return false
	}
	return to == SupplierStatusApproved || to == SupplierStatusRejected
}
