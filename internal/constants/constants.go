package constants

// Context keys
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Password policy
const (
	MinPasswordLength = 8
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// AI chore suggestions
const (
	MaxSuggestedChores = 20
)
