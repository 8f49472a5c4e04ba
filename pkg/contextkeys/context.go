package contextkeys

// Custom type to avoid context key collisions.
type contextKey string

// DBContextKey is the key under which *gorm.DB (the pool, or a test
// transaction) travels through the request context.
const DBContextKey = contextKey("db")
