package apperrors

import "errors"

// Resource errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrNewsNotFound     = errors.New("news item not found")
	ErrFacultyNotFound  = errors.New("faculty not found")
	ErrDraftNotFound    = errors.New("registration draft not found")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthorizedAdmin  = errors.New("identity is not the authorized administrator")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Admission workflow errors, surfaced verbatim to the candidate as short strings
var (
	ErrStoreNotConfigured   = errors.New("storage collaborator is not configured")
	ErrPhotoUploadFailed    = errors.New("photo upload failed")
	ErrDocumentUploadFailed = errors.New("document upload failed")
	ErrRecordInsertFailed   = errors.New("record insert failed")
	ErrPhotoTooLarge        = errors.New("passport photo exceeds the 5 MB limit")
	ErrPhotoNotImage        = errors.New("passport photo must be an image file")
	ErrDocumentsMissing     = errors.New("at least one academic document is required")
	ErrStageIncomplete      = errors.New("current stage is incomplete")
	ErrInvalidTransition    = errors.New("transition not allowed from current stage")
	ErrDepartmentMismatch   = errors.New("department does not belong to the selected faculty")
)
