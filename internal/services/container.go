package services

// ServiceContainer holds every service for dependency injection into
// the handlers.
type ServiceContainer struct {
	AuthService     AuthService
	SupplierService SupplierService
}
