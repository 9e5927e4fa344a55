package core

import "github.com/xuri/excelize/v2"

// gridSide is the seam drawn between cells inside a styled range.
var gridSide = Side{Style: LineThin, Color: colorGridGray}

// StyleRange styles every cell of region so that, seen as a whole, it reads
// as one cell: interior seams get the light grid line and only the outline
// takes style.Border. Fill, font, alignment and number format are applied to
// every cell when set. With merge the region is merged first.
func StyleRange(s *Sheet, region Region, style CellStyle, merge bool) error {
	if merge {
		if err := s.Merge(region); err != nil {
			return err
		}
	}

	inner := CellStyle{
		Fill:      style.Fill,
		Font:      style.Font,
		Alignment: style.Alignment,
		NumFmt:    style.NumFmt,
	}
	for row := region.Top; row <= region.Bottom; row++ {
		for col := region.Left; col <= region.Right; col++ {
			cs := inner
			cs.Border = UniformBorder(gridSide)
			if err := s.ApplyStyle(row, col, cs); err != nil {
				return err
			}
		}
	}

	outline := style.Border.clone()
	for col := region.Left; col <= region.Right; col++ {
		if err := s.setEdge(region.Top, col, func(b *Border) { b.Top = outline.Top }); err != nil {
			return err
		}
		if err := s.setEdge(region.Bottom, col, func(b *Border) { b.Bottom = outline.Bottom }); err != nil {
			return err
		}
	}
	for row := region.Top; row <= region.Bottom; row++ {
		if err := s.setEdge(row, region.Left, func(b *Border) { b.Left = outline.Left }); err != nil {
			return err
		}
		if err := s.setEdge(row, region.Right, func(b *Border) { b.Right = outline.Right }); err != nil {
			return err
		}
	}
	return nil
}

// SetHeader styles a header range and, when name is set, writes it into the
// first cell.
func SetHeader(s *Sheet, region Region, name interface{}, merge bool) error {
	if name != nil && name != "" {
		if err := s.SetValue(region.Top, region.Left, name); err != nil {
			return err
		}
	}
	return StyleRange(s, region, CellStyle{
		Border:    thinBorder(colorBlack),
		Fill:      &excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colorHeader}},
		Font:      bodyFont(),
		Alignment: centered(),
	}, merge)
}

// SetTitle writes a bold title without border or fill.
func SetTitle(s *Sheet, row, col int, title string) error {
	if err := s.ApplyStyle(row, col, CellStyle{
		Font: &excelize.Font{Family: reportFont, Size: reportSize, Bold: true},
	}); err != nil {
		return err
	}
	return s.SetValue(row, col, title)
}

// SetBody styles a range of body cells.
func SetBody(s *Sheet, region Region) error {
	return StyleRange(s, region, CellStyle{
		Border:    thinBorder(colorBlack),
		Font:      bodyFont(),
		Alignment: centered(),
	}, false)
}

// SetBodyNumeric is SetBody with the General format as a placeholder that
// the renderer replaces per value.
func SetBodyNumeric(s *Sheet, region Region) error {
	return StyleRange(s, region, CellStyle{
		Border:    thinBorder(colorBlack),
		Font:      bodyFont(),
		Alignment: centered(),
		NumFmt:    numFmt(NumFmtGeneral),
	}, false)
}
