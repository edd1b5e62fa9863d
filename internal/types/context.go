package types

// ContextUserKey is the gin context key under which the auth middleware
// stores the acting user's identifier.
const ContextUserKey = "user_id"
