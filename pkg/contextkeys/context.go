package contextkeys

// Custom key type so values set by this package cannot collide with
// keys set by other packages on the same context.
type contextKey string

// DBContextKey is the key under which the active *gorm.DB (pool or
// test transaction) is stored in the request context.
const DBContextKey = contextKey("db")
