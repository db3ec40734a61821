package spreadsheet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"gift_bot/internal/domain"
	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/value"
	"gift_bot/pkg/errcodes"
)

const (
	yes = "да"
	no  = "нет"
)

// Parser читает каталог из xlsx: первый лист, первая строка: заголовки.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse возвращает подарки и число пропущенных строк. Строки с
// некорректными значениями пропускаются, отсутствие обязательных
// колонок: ошибка всего файла.
func (p *Parser) Parse(ctx context.Context, r io.Reader) ([]entity.Gift, int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, domain.WrapError(err, errcodes.InvalidSpreadsheet, "failed to open spreadsheet")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, domain.NewError(errcodes.InvalidSpreadsheet, "spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, 0, domain.WrapError(err, errcodes.InvalidSpreadsheet, "failed to read rows")
	}

	if len(rows) == 0 {
		return nil, 0, domain.NewError(errcodes.EmptyCatalogFile, "spreadsheet is empty")
	}

	index := headerIndex(rows[0])

	missing := lo.Filter(requiredColumns(), func(col string, _ int) bool {
		_, ok := index[col]
		return !ok
	})
	if len(missing) > 0 {
		return nil, 0, domain.NewError(errcodes.InvalidSpreadsheet,
			"missing columns: "+strings.Join(missing, ", "))
	}

	gifts := make([]entity.Gift, 0, len(rows)-1)
	skipped := 0

	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}

		g, err := parseRow(rowReader{index: index, row: row})
		if err != nil {
			skipped++
			logger(ctx).Warn("catalog row skipped",
				slog.Int("row", i+2),
				slog.String("reason", err.Error()),
			)
			continue
		}

		gifts = append(gifts, g)
	}

	return gifts, skipped, nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, dup := index[h]; !dup && h != "" {
			index[h] = i
		}
	}
	return index
}

func blank(row []string) bool {
	return lo.EveryBy(row, func(c string) bool { return strings.TrimSpace(c) == "" })
}

type rowReader struct {
	index map[string]int
	row   []string
}

func (r rowReader) str(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[i])
}

// flag Да/Нет, пустая ячейка: Нет.
func (r rowReader) flag(col string) (bool, error) {
	switch strings.ToLower(r.str(col)) {
	case yes:
		return true, nil
	case no, "":
		return false, nil
	default:
		return false, fmt.Errorf("%s: expected Да or Нет, got %q", col, r.str(col))
	}
}

func (r rowReader) number(col string, def float64) (float64, error) {
	s := strings.ReplaceAll(strings.ReplaceAll(r.str(col), " ", ""), ",", ".")
	if s == "" {
		return def, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: %q is not a number", col, r.str(col))
	}
	return v, nil
}

func (r rowReader) score(col string, def int) (int, error) {
	v, err := r.number(col, float64(def))
	if err != nil {
		return 0, err
	}

	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%s: %q is not an integer", col, r.str(col))
	}

	score := int(v)
	if score < value.MinTrendScore || score > value.MaxTrendScore {
		return 0, fmt.Errorf("%s: %d is out of 1..10", col, score)
	}
	return score, nil
}

func parseRow(r rowReader) (entity.Gift, error) {
	g := entity.Gift{
		Name:        r.str(ColName),
		Description: r.str(ColDescription),
		Category:    r.str(ColCategory),
		Subcategory: r.str(ColSubcategory),
		Link:        r.str(ColLink),
		AgeRange:    r.str(ColAgeRange),
		City:        r.str(ColCity),
		ImageName:   r.str(ColImage),
		Recipients:  value.RecipientFlags{},
	}

	if g.Name == "" {
		return entity.Gift{}, fmt.Errorf("%s is empty", ColName)
	}

	var err error

	if g.Price, err = r.number(ColPrice, 0); err != nil {
		return entity.Gift{}, err
	}
	if g.Price < 0 {
		return entity.Gift{}, fmt.Errorf("%s is negative", ColPrice)
	}
	if g.TrendScore, err = r.score(ColTrendScore, value.DefaultTrendScore); err != nil {
		return entity.Gift{}, err
	}
	if g.CreativityScore, err = r.score(ColCreativityScore, value.DefaultCreativityScore); err != nil {
		return entity.Gift{}, err
	}
	if g.MarketplaceAvailable, err = r.flag(ColMarketplace); err != nil {
		return entity.Gift{}, err
	}
	if g.Consumable, err = r.flag(ColConsumable); err != nil {
		return entity.Gift{}, err
	}

	for _, recipient := range value.Recipients {
		ok, err := r.flag(recipientColumns[recipient])
		if err != nil {
			return entity.Gift{}, err
		}
		if ok {
			g.Recipients[recipient] = true
		}
	}

	return g, nil
}
