package handlers

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	SupplierHandler *SupplierHandler
	FileHandler     *FileHandler
	MetaHandler     *MetaHandler
}
