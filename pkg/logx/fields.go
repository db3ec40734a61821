package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldCallbackData    = "callback-data"
	FieldCategory        = "category"
	FieldChatID          = "chat-id"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldGiftID          = "gift-id"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldMessageID       = "message-id"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldSelectionID     = "selection-id"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldUpdateID        = "update-id"
	FieldURL             = "url"
	FieldUserID          = "user-id"
)
