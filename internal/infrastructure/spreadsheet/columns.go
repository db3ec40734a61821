package spreadsheet

import "gift_bot/internal/domain/value"

// Заголовки колонок файла каталога.
const (
	ColName            = "Название"
	ColDescription     = "Описание"
	ColCategory        = "Категория"
	ColSubcategory     = "Подкатегория"
	ColLink            = "Ссылка"
	ColAgeRange        = "Возраст"
	ColPrice           = "Стоимость"
	ColCity            = "Город"
	ColMarketplace     = "Маркетплейсы"
	ColTrendScore      = "Трендовый (10)/Традиционный (1)"
	ColConsumable      = "Подарок, который используется и исчезает"
	ColCreativityScore = "Креативный (10)/Консервативный (1)"
	ColImage           = "Фото"
)

//nolint:gochecknoglobals
var recipientColumns = map[value.Recipient]string{
	value.RecipientFriend:  "Подруге",
	value.RecipientWife:    "Жене",
	value.RecipientSister:  "Сестре",
	value.RecipientMother:  "Маме",
	value.RecipientHusband: "Мужу/Парню",
	value.RecipientBrother: "Брату",
	value.RecipientFather:  "Отцу",
	value.RecipientMan:     "Мужчина",
	value.RecipientWoman:   "Женщина",
}

// Header порядок колонок при выгрузке шаблона.
func Header() []string {
	header := []string{
		ColName, ColDescription, ColCategory, ColSubcategory, ColLink, ColAgeRange,
		ColPrice, ColCity, ColMarketplace, ColTrendScore, ColConsumable, ColCreativityScore,
	}
	for _, r := range value.Recipients {
		header = append(header, recipientColumns[r])
	}
	return append(header, ColImage)
}

// requiredColumns без них файл не принимается.
func requiredColumns() []string {
	cols := []string{ColName, ColCategory, ColMarketplace, ColConsumable}
	for _, r := range value.Recipients {
		cols = append(cols, recipientColumns[r])
	}
	return cols
}
