package store

// Storages bundles every store-layer component for injection into the
// service layer.
type Storages struct {
	CardVault         CardVault
	UserRepository    UserRepository
	SessionRepository SessionRepository
}
