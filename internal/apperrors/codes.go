package apperrors

// Error codes grouped by domain.
const (
	// Authentication
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUserInactive       ErrorCode = "USER_INACTIVE"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Business rules
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeWrongPassword      ErrorCode = "WRONG_CURRENT_PASSWORD"
	CodeCreateFailed       ErrorCode = "CREATE_FAILED"

	// Resources
	CodeEventNotFound ErrorCode = "EVENT_NOT_FOUND"
	CodeNotPermitted  ErrorCode = "NOT_PERMITTED"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
