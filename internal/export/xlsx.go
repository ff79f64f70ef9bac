package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/five82/hackdex/internal/render"
)

// SheetName is the worksheet written by WriteXLSX.
const SheetName = "Hacks"

var columns = []string{
	"ID", "Title", "Creator", "Base", "Status", "Difficulty", "Story",
	"Length", "Last updated", "Pokédex", "Features", "Languages", "Link",
}

// WriteXLSX writes doc as a workbook with a header row and one row per hack.
// Optional fields the hack lacks are left blank.
func WriteXLSX(w io.Writer, doc Document) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("open sheet writer: %w", err)
	}
	if err := sw.SetPanes(&excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, name := range columns {
		header[i] = excelize.Cell{StyleID: bold, Value: name}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, card := range render.BuildCards(doc.Hacks, doc.Labeler) {
		hack := doc.Hacks[i]
		row := []interface{}{
			card.ID,
			card.Title,
			card.Creator,
			card.BaseLabel,
			card.StatusLabel,
			blockValue(card, "Difficulty"),
			blockValue(card, "Story"),
			blockValue(card, "Length"),
			blockValue(card, "Last updated"),
			blockValue(card, "Pokédex"),
			blockValue(card, "Features"),
			strings.Join(hack.Languages, ", "),
			absoluteLink(doc.BaseURL, card.Link),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2) // A2, A3, ...
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func blockValue(card render.Card, label string) string {
	block, ok := card.Block(label)
	if !ok {
		return ""
	}
	return block.Value
}
