package core

import "github.com/xuri/excelize/v2"

// Border line styles, using excelize's style indexes.
const (
	LineNone = 0
	LineThin = 1
)

// Built-in number format ids.
const (
	NumFmtGeneral  = 0
	NumFmtInteger  = 1  // 0
	NumFmtDecimal2 = 2  // 0.00
	NumFmtPercent2 = 10 // 0.00%
)

const (
	colorBlack    = "000000"
	colorGridGray = "BFBFBF"
	colorHeader   = "BCD6EE"
	reportFont    = "微软雅黑"
	reportSize    = 11
)

// Side is one edge of a cell border. A nil *Side means no line.
type Side struct {
	Style int
	Color string
}

// Border holds the four edges of a cell or a region outline.
type Border struct {
	Left, Top, Right, Bottom *Side
}

// UniformBorder uses the same side on all four edges.
func UniformBorder(s Side) *Border {
	return &Border{Left: &s, Top: &s, Right: &s, Bottom: &s}
}

func (b *Border) clone() *Border {
	if b == nil {
		return &Border{}
	}
	c := *b
	return &c
}

// CellStyle describes the visual attributes of a cell. Unset (nil) fields
// are left alone when a style is overlaid on an existing one.
type CellStyle struct {
	Border    *Border
	Fill      *excelize.Fill
	Font      *excelize.Font
	Alignment *excelize.Alignment
	NumFmt    *int
}

// Overlay returns s with every field that o sets replaced by o's value.
func (s CellStyle) Overlay(o CellStyle) CellStyle {
	if o.Border != nil {
		s.Border = o.Border
	}
	if o.Fill != nil {
		s.Fill = o.Fill
	}
	if o.Font != nil {
		s.Font = o.Font
	}
	if o.Alignment != nil {
		s.Alignment = o.Alignment
	}
	if o.NumFmt != nil {
		s.NumFmt = o.NumFmt
	}
	return s
}

// NumberFormat returns the number format id, General when unset.
func (s CellStyle) NumberFormat() int {
	if s.NumFmt == nil {
		return NumFmtGeneral
	}
	return *s.NumFmt
}

func (s CellStyle) toExcelize() *excelize.Style {
	st := &excelize.Style{
		Font:      s.Font,
		Alignment: s.Alignment,
		NumFmt:    s.NumberFormat(),
	}
	if s.Fill != nil {
		st.Fill = *s.Fill
	}
	if s.Border != nil {
		edges := []struct {
			name string
			side *Side
		}{
			{"left", s.Border.Left},
			{"top", s.Border.Top},
			{"right", s.Border.Right},
			{"bottom", s.Border.Bottom},
		}
		for _, e := range edges {
			if e.side == nil || e.side.Style == LineNone {
				continue
			}
			st.Border = append(st.Border, excelize.Border{Type: e.name, Color: e.side.Color, Style: e.side.Style})
		}
	}
	return st
}

func numFmt(id int) *int { return &id }

func thinBorder(color string) *Border {
	return UniformBorder(Side{Style: LineThin, Color: color})
}

func centered() *excelize.Alignment {
	return &excelize.Alignment{Horizontal: "center", Vertical: "center"}
}

func bodyFont() *excelize.Font {
	return &excelize.Font{Family: reportFont, Size: reportSize}
}
