package server

import (
	"git.appkode.ru/pub/go/failure"

	"gift_bot/internal/domain"
	"gift_bot/pkg/errcodes"
)

// httpError переводит доменные ошибки в ошибки failure, по которым
// reply.Error выбирает статус. Остальные ошибки отдаются как 500.
func httpError(err error) error {
	code, ok := domain.GetCode(err)
	if !ok {
		return err
	}

	switch code {
	case errcodes.GiftNotFound, errcodes.SelectionNotFound, errcodes.UserNotFound, errcodes.NotFound:
		return failure.NewNotFoundError(
			err.Error(),
			failure.WithCode(code),
			failure.WithDescription(domain.Message(err)),
		)
	case errcodes.InvalidSpreadsheet, errcodes.EmptyCatalogFile, errcodes.InvalidPaging,
		errcodes.InvalidGiftID, errcodes.InvalidUserID, errcodes.ValidationError:
		return failure.NewInvalidArgumentError(
			err.Error(),
			failure.WithCode(code),
			failure.WithDescription(domain.Message(err)),
		)
	case errcodes.Forbidden:
		return failure.NewForbiddenError(
			err.Error(),
			failure.WithCode(code),
			failure.WithDescription(domain.Message(err)),
		)
	default:
		return err
	}
}
