package spreadsheet

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/value"
)

const sheetName = "Sheet1"

// Write выгружает каталог в xlsx в формате, который читает Parser.
func Write(gifts []entity.Gift) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(sheetName, "A1", toRow(Header())); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, g := range gifts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}

		if err := f.SetSheetRow(sheetName, cell, toRow(giftRow(g))); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write buffer: %w", err)
	}

	return buf, nil
}

func giftRow(g entity.Gift) []string {
	row := []string{
		g.Name, g.Description, g.Category, g.Subcategory, g.Link, g.AgeRange,
		strconv.FormatFloat(g.Price, 'f', -1, 64), g.City,
		yesNo(g.MarketplaceAvailable),
		strconv.Itoa(g.TrendScore),
		yesNo(g.Consumable),
		strconv.Itoa(g.CreativityScore),
	}
	for _, r := range value.Recipients {
		row = append(row, yesNo(g.Recipients.Has(r)))
	}
	return append(row, g.ImageName)
}

func yesNo(b bool) string {
	if b {
		return "Да"
	}
	return "Нет"
}

func toRow(cells []string) *[]any {
	row := make([]any, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return &row
}
