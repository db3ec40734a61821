package view

import (
	"fmt"
	"html"
	"strings"

	"github.com/mymmrac/telego"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/service/catalog"
	"gift_bot/internal/domain/service/paginator"
)

const maxDescription = 700

//nolint:gochecknoglobals
var printer = message.NewPrinter(language.Russian)

// Screen готовое к отправке сообщение. Images: имена картинок
// по порядку, показывается первая найденная.
type Screen struct {
	Text     string
	Keyboard *telego.InlineKeyboardMarkup
	Images   []string
}

func FormatPrice(price float64) string {
	return printer.Sprintf("%.2f", price)
}

// CategoryWord склонение слова "категория" после "в N".
func CategoryWord(n int) string {
	if n%10 == 1 && n%100 != 11 {
		return "категории"
	}
	return "категориях"
}

func MainMenuScreen(text string, isAdmin bool) Screen {
	return Screen{Text: text, Keyboard: MainMenuKeyboard(isAdmin)}
}

// ResultsScreen страница результата: категория, ссылки на подарки и счётчик страниц.
func ResultsScreen(page paginator.Page, fromHistory bool) Screen {
	var sb strings.Builder

	header := ResultsHeader
	if fromHistory {
		header = HistoryHeader
	}

	sb.WriteString(fmt.Sprintf(header, page.Total, CategoryWord(page.Total)))
	sb.WriteString(fmt.Sprintf(CurrentPage, html.EscapeString(page.Category)))

	images := make([]string, 0, len(page.Gifts))
	for i, g := range page.Gifts {
		sb.WriteString(fmt.Sprintf("%d) %s\n", i+1, link(g.Name, g.Link)))
		if g.ImageName != "" {
			images = append(images, g.ImageName)
		}
	}

	sb.WriteString(fmt.Sprintf(PageCounter, page.Index+1, page.Total))

	return Screen{
		Text:     sb.String(),
		Keyboard: ResultsKeyboard(page),
		Images:   images,
	}
}

// GiftScreen карточка подарка из результата подбора.
func GiftScreen(g entity.Gift) Screen {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<b>%s</b>\n", html.EscapeString(g.Name)))
	sb.WriteString(fmt.Sprintf(Price, FormatPrice(g.Price)))
	sb.WriteString("\n\n")

	if desc := Truncate(g.Description, maxDescription); desc != "" {
		sb.WriteString(fmt.Sprintf("<i>%s</i>\n\n", html.EscapeString(desc)))
	}

	if g.Link != "" {
		sb.WriteString(link(More, g.Link))
	}

	return Screen{
		Text:     strings.TrimRight(sb.String(), "\n"),
		Keyboard: GiftKeyboard(),
		Images:   nonEmpty(g.ImageName),
	}
}

func HistoryScreen(selections []entity.Selection, isAdmin bool) Screen {
	if len(selections) == 0 {
		return MainMenuScreen(HistoryEmpty, isAdmin)
	}
	return Screen{Text: HistoryChoose, Keyboard: HistoryKeyboard(selections)}
}

func CatalogScreen(page catalog.Page) Screen {
	if len(page.Gifts) == 0 && !page.HasPrev {
		return Screen{Text: CatalogEmpty, Keyboard: BackToAdminKeyboard()}
	}
	return Screen{Text: CatalogTitle, Keyboard: CatalogKeyboard(page)}
}

// CatalogGiftScreen карточка подарка для админа.
func CatalogGiftScreen(g entity.Gift) Screen {
	text := fmt.Sprintf("🎁 %s\n\n📝 %s\n\n💰 %s₽",
		html.EscapeString(g.Name),
		html.EscapeString(g.Description),
		FormatPrice(g.Price),
	)

	return Screen{
		Text:     text,
		Keyboard: CatalogGiftKeyboard(),
		Images:   nonEmpty(g.ImageName),
	}
}

func StatsScreen(stats entity.CatalogStats) Screen {
	var sb strings.Builder

	sb.WriteString("📊 <b>Статистика</b>\n\n")
	sb.WriteString(fmt.Sprintf("👥 Пользователей: %d\n", stats.TotalUsers))
	sb.WriteString(fmt.Sprintf("🎁 Подборок: %d\n", stats.TotalSelections))
	sb.WriteString(fmt.Sprintf("📦 Подарков в каталоге: %d\n", stats.TotalGifts))
	sb.WriteString(fmt.Sprintf("🗂 Категорий: %d\n", stats.TotalCategories))

	if len(stats.PopularCategories) > 0 {
		sb.WriteString("\n<b>Популярные категории</b>\n")
		for _, c := range stats.PopularCategories {
			sb.WriteString(fmt.Sprintf("• %s: %d\n", html.EscapeString(c.Category), c.Count))
		}
	}

	sb.WriteString("\n<b>Цены</b>\n")
	for _, b := range stats.PriceDistribution {
		sb.WriteString(fmt.Sprintf("• %s ₽: %d\n", b.Label, b.Count))
	}

	sb.WriteString("\n<b>Подборки за неделю</b>\n")
	for _, d := range stats.DailyActivity {
		sb.WriteString(fmt.Sprintf("• %s: %d\n", d.Day, d.Count))
	}

	return Screen{Text: strings.TrimRight(sb.String(), "\n"), Keyboard: BackToAdminKeyboard()}
}

// Truncate обрезает строку до limit символов с многоточием.
func Truncate(s string, limit int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= limit {
		return string(r)
	}
	return string(r[:limit-3]) + "..."
}

func link(text, href string) string {
	if href == "" {
		return html.EscapeString(text)
	}
	return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(href), html.EscapeString(text))
}

func nonEmpty(name string) []string {
	if name == "" {
		return nil
	}
	return []string{name}
}
