package conversation

import (
	"gift_bot/internal/domain"
	"gift_bot/pkg/errcodes"
)

// IsValidation ошибка ввода: пользователя нужно переспросить.
func IsValidation(err error) bool {
	return domain.HasCode(err,
		errcodes.InvalidAge, errcodes.InvalidRecipient, errcodes.InvalidBudget,
		errcodes.InvalidTrendScore, errcodes.ValidationError,
	)
}

// IsUnexpectedStep действие не относится к текущему шагу диалога.
func IsUnexpectedStep(err error) bool {
	return domain.HasCode(err, errcodes.UnexpectedStep)
}
