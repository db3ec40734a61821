package value

// Recipient ключ получателя подарка: friend, wife, mother и т.д.
type Recipient string

const (
	RecipientFriend  Recipient = "friend"
	RecipientWife    Recipient = "wife"
	RecipientSister  Recipient = "sister"
	RecipientMother  Recipient = "mother"
	RecipientHusband Recipient = "husband"
	RecipientBrother Recipient = "brother"
	RecipientFather  Recipient = "father"
	RecipientMan     Recipient = "man"
	RecipientWoman   Recipient = "woman"
)

// Recipients все известные получатели в порядке кнопок бота.
var Recipients = []Recipient{ //nolint:gochecknoglobals
	RecipientFriend, RecipientWife, RecipientSister,
	RecipientMother, RecipientHusband, RecipientBrother,
	RecipientFather, RecipientMan, RecipientWoman,
}

//nolint:gochecknoglobals
var recipientColumns = map[Recipient]string{
	RecipientFriend:  "for_friend",
	RecipientWife:    "for_wife",
	RecipientSister:  "for_sister",
	RecipientMother:  "for_mother",
	RecipientHusband: "for_husband",
	RecipientBrother: "for_brother",
	RecipientFather:  "for_father",
	RecipientMan:     "for_man",
	RecipientWoman:   "for_woman",
}

//nolint:gochecknoglobals
var recipientTitles = map[Recipient]string{
	RecipientFriend:  "Подруге",
	RecipientWife:    "Жене",
	RecipientSister:  "Сестре",
	RecipientMother:  "Маме",
	RecipientHusband: "Мужу/Парню",
	RecipientBrother: "Брату",
	RecipientFather:  "Отцу",
	RecipientMan:     "Мужчина",
	RecipientWoman:   "Женщина",
}

func (r Recipient) String() string {
	return string(r)
}

// Known true для одного из девяти поддерживаемых ключей.
func (r Recipient) Known() bool {
	_, ok := recipientColumns[r]
	return ok
}

// Column имя булевой колонки каталога. Пусто для неизвестного ключа.
func (r Recipient) Column() string {
	return recipientColumns[r]
}

// Title подпись для пользователя. Для неизвестного ключа: сам ключ.
func (r Recipient) Title() string {
	if t, ok := recipientTitles[r]; ok {
		return t
	}
	return string(r)
}

// RecipientFlags набор получателей, которым подходит подарок.
type RecipientFlags map[Recipient]bool

func (f RecipientFlags) Has(r Recipient) bool {
	return f[r]
}

// Keys отмеченные получатели, отсортированные по порядку Recipients.
func (f RecipientFlags) Keys() []Recipient {
	keys := make([]Recipient, 0, len(f))
	for _, r := range Recipients {
		if f[r] {
			keys = append(keys, r)
		}
	}
	return keys
}

func (f RecipientFlags) Strings() []string {
	keys := f.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}
