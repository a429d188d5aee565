package constants

// Session / context keys
const (
	ContextKeyUserID = "user_id"
	ContextKeyDeal   = "deal"
	ContextKeyTask   = "task"
	SessionName      = "deal_session"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Auth
const MinPasswordLength = 8
