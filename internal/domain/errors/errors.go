package errors

import (
	"net/http"

	"beacon/internal/errors"
)

// AppError is an error the API can render: status, business code and a
// user-facing message. Details never leave the server for 5xx responses.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// domainError is a sentinel AppError. Compare with errors.Is after wrapping.
type domainError struct {
	httpCode  int
	errorCode string
	message   string
}

func define(httpCode int, errorCode, message string) *domainError {
	return &domainError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *domainError) Error() string     { return e.message }
func (e *domainError) HTTPCode() int     { return e.httpCode }
func (e *domainError) ErrorCode() string { return e.errorCode }
func (e *domainError) Message() string   { return e.message }
func (e *domainError) Details() string   { return "" }

// WrapMessage adds caller context while keeping the sentinel matchable.
func (e *domainError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Queue
var (
	ErrQueueEntryNotFound      = define(http.StatusNotFound, "QUEUE_ENTRY_NOT_FOUND", "找不到該推播佇列項目")
	ErrQueueEntryStateConflict = define(http.StatusConflict, "QUEUE_ENTRY_STATE_CONFLICT", "推播佇列項目狀態已變更")
	ErrCategoryDisabled        = define(http.StatusUnprocessableEntity, "CATEGORY_DISABLED", "使用者已關閉此類通知")
	ErrInvalidPayload          = define(http.StatusBadRequest, "INVALID_PAYLOAD", "推播內容格式錯誤")
	ErrInvalidFilter           = define(http.StatusBadRequest, "INVALID_FILTER", "篩選條件格式錯誤")
)

// Devices and history
var (
	ErrDeviceTokenNotFound = define(http.StatusNotFound, "DEVICE_TOKEN_NOT_FOUND", "找不到該裝置推播權杖")
	ErrInvalidPlatform     = define(http.StatusBadRequest, "INVALID_PLATFORM", "不支援的裝置平台")
	ErrHistoryNotFound     = define(http.StatusNotFound, "NOTIFICATION_NOT_FOUND", "找不到該通知紀錄")
)

// Social events
var (
	ErrUnknownEventType   = define(http.StatusBadRequest, "UNKNOWN_EVENT_TYPE", "不支援的事件類型")
	ErrEventPublishFailed = define(http.StatusServiceUnavailable, "EVENT_PUBLISH_FAILED", "事件發布失敗")
)

var (
	ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "輸入資料驗證失敗")
	ErrNotFound         = define(http.StatusNotFound, "NOT_FOUND", "找不到該資源")
)

// databaseError is any unexpected persistence failure; always a 500.
type databaseError struct {
	err     error
	details string
}

// NewDatabaseExecuteError wraps a driver error with the operation that failed.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &databaseError{err: err, details: details}
}

func (e *databaseError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *databaseError) Unwrap() error     { return e.err }
func (e *databaseError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *databaseError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *databaseError) Message() string   { return "資料庫執行失敗" }
func (e *databaseError) Details() string   { return e.details }
