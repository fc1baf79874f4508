package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrEmptyPatch = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_PATCH",
		"Request body contains no updatable fields",
		"",
	)

	ErrInvalidQuery = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUERY",
		"Invalid query parameter",
		"",
	)

	ErrInvalidUpload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_UPLOAD",
		"Invalid or missing upload file",
		"",
	)

	ErrInvalidResetToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RESET_TOKEN",
		"Invalid or expired reset token",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect username or password",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrTokenRevoked = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_REVOKED",
		"Token has been revoked",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Permission errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to perform this action",
		"",
	)

	ErrNotShopOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_SHOP_OWNER",
		"You do not own this shop",
		"",
	)

	ErrNotReviewAuthor = NewBaseError(
		http.StatusForbidden,
		"NOT_REVIEW_AUTHOR",
		"You did not write this review",
		"",
	)

	// Not-found errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"Shop not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Location not found",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	ErrWishListItemNotFound = NewBaseError(
		http.StatusNotFound,
		"WISHLIST_ITEM_NOT_FOUND",
		"Wishlist item not found",
		"",
	)

	ErrAdvertisementNotFound = NewBaseError(
		http.StatusNotFound,
		"ADVERTISEMENT_NOT_FOUND",
		"Advertisement not found",
		"",
	)

	ErrFollowerNotFound = NewBaseError(
		http.StatusNotFound,
		"FOLLOWER_NOT_FOUND",
		"You are not following this shop",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrNoResults = NewBaseError(
		http.StatusNotFound,
		"NO_RESULTS",
		"No results found",
		"",
	)

	ErrUnknownTrendingSort = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_TRENDING_SORT",
		"Unknown trending sort",
		"",
	)

	// Conflict errors
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"Username is already taken",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"Email is already registered",
		"",
	)

	ErrDuplicateCategory = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_CATEGORY",
		"Category already exists",
		"",
	)

	ErrDuplicateLocation = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_LOCATION",
		"Location already exists",
		"",
	)

	ErrDuplicateProduct = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_PRODUCT",
		"The shop already lists a product with this name",
		"",
	)

	ErrAlreadyFollowing = NewBaseError(
		http.StatusConflict,
		"ALREADY_FOLLOWING",
		"You already follow this shop",
		"",
	)

	ErrDuplicateReview = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_REVIEW",
		"You already reviewed this product",
		"",
	)

	ErrDuplicateWishListItem = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_WISHLIST_ITEM",
		"Product is already in your cart",
		"",
	)

	// Infrastructure errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"File storage failed",
		"",
	)

	ErrMailFailed = NewBaseError(
		http.StatusInternalServerError,
		"MAIL_FAILED",
		"Failed to send email",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// FieldError is a validation failure keyed by wire field name.
type FieldError struct {
	fields map[string]string
}

// NewFieldError creates a validation error for the given field messages.
func NewFieldError(fields map[string]string) *FieldError {
	return &FieldError{fields: fields}
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return ErrValidationFailed.Message()
}

// HTTPCode returns the HTTP status code
func (e *FieldError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *FieldError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *FieldError) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns detailed error information
func (e *FieldError) Details() string {
	return ""
}

// Fields returns the per-field messages.
func (e *FieldError) Fields() map[string]string {
	return e.fields
}
