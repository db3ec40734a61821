package entity

import "time"

// User пользователь бота. Идентификатор совпадает с Telegram ID.
type User struct {
	TelegramID int64     `json:"telegram_id" db:"telegram_id"`
	Name       string    `json:"name" db:"name"`
	Username   string    `json:"username" db:"username"`
	Phone      string    `json:"phone" db:"phone"`
	IsAdmin    bool      `json:"is_admin" db:"is_admin"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Registered пользователь поделился телефоном и указал имя.
func (u User) Registered() bool {
	return u.Phone != "" && u.Name != ""
}
