package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	Forbidden           failure.ErrorCode = "Forbidden"
	Unauthorized        failure.ErrorCode = "Unauthorized"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	InvalidPaging       failure.ErrorCode = "InvalidPaging"

	// Каталог подарков
	GiftNotFound       failure.ErrorCode = "GiftNotFound"
	InvalidGiftID      failure.ErrorCode = "InvalidGiftID"
	InvalidSpreadsheet failure.ErrorCode = "InvalidSpreadsheet"
	EmptyCatalogFile   failure.ErrorCode = "EmptyCatalogFile"

	// Подбор
	InvalidAge         failure.ErrorCode = "InvalidAge"
	InvalidRecipient   failure.ErrorCode = "InvalidRecipient"
	InvalidBudget      failure.ErrorCode = "InvalidBudget"
	InvalidTrendScore  failure.ErrorCode = "InvalidTrendScore"
	IncompleteCriteria failure.ErrorCode = "IncompleteCriteria"
	UnexpectedStep     failure.ErrorCode = "UnexpectedStep"

	// История и пользователи
	SelectionNotFound failure.ErrorCode = "SelectionNotFound"
	InvalidUserID     failure.ErrorCode = "InvalidUserID"
	UserNotFound      failure.ErrorCode = "UserNotFound"
	SessionNotFound   failure.ErrorCode = "SessionNotFound"
)
