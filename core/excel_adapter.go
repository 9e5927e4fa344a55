package core

import "github.com/xuri/excelize/v2"

// ExcelFile abstracts the workbook operations used by the report so that
// layout code can be exercised against a recording fake.
type ExcelFile interface {
	Close() error
	GetCellValue(sheet, cell string) (string, error)
	GetColWidth(sheet, col string) (float64, error)
	GetMergeCells(sheet string) ([]excelize.MergeCell, error)
	GetSheetList() []string
	MergeCell(sheet, hcell, vcell string) error
	NewSheet(name string) (int, error)
	NewStyle(style *excelize.Style) (int, error)
	SaveAs(name string) error
	SetActiveSheet(index int)
	SetCellStyle(sheet, hcell, vcell string, styleID int) error
	SetCellValue(sheet, cell string, value interface{}) error
	SetColWidth(sheet, startCol, endCol string, width float64) error
	SetSelection(sheet, cell string) error
	SetSheetName(source, target string) error
}

type ExcelizeFile struct {
	file *excelize.File
}

// NewExcelFile starts an empty workbook holding the default "Sheet1".
func NewExcelFile() *ExcelizeFile {
	return &ExcelizeFile{file: excelize.NewFile()}
}

func (e *ExcelizeFile) Close() error {
	return e.file.Close()
}

func (e *ExcelizeFile) GetCellValue(sheet, cell string) (string, error) {
	return e.file.GetCellValue(sheet, cell)
}

func (e *ExcelizeFile) GetColWidth(sheet, col string) (float64, error) {
	return e.file.GetColWidth(sheet, col)
}

func (e *ExcelizeFile) GetMergeCells(sheet string) ([]excelize.MergeCell, error) {
	return e.file.GetMergeCells(sheet)
}

func (e *ExcelizeFile) GetSheetList() []string {
	return e.file.GetSheetList()
}

func (e *ExcelizeFile) MergeCell(sheet, hcell, vcell string) error {
	return e.file.MergeCell(sheet, hcell, vcell)
}

func (e *ExcelizeFile) NewSheet(name string) (int, error) {
	return e.file.NewSheet(name)
}

func (e *ExcelizeFile) NewStyle(style *excelize.Style) (int, error) {
	return e.file.NewStyle(style)
}

func (e *ExcelizeFile) SaveAs(name string) error {
	return e.file.SaveAs(name)
}

func (e *ExcelizeFile) SetActiveSheet(index int) {
	e.file.SetActiveSheet(index)
}

func (e *ExcelizeFile) SetCellStyle(sheet, hcell, vcell string, styleID int) error {
	return e.file.SetCellStyle(sheet, hcell, vcell, styleID)
}

func (e *ExcelizeFile) SetCellValue(sheet, cell string, value interface{}) error {
	return e.file.SetCellValue(sheet, cell, value)
}

func (e *ExcelizeFile) SetColWidth(sheet, startCol, endCol string, width float64) error {
	return e.file.SetColWidth(sheet, startCol, endCol, width)
}

func (e *ExcelizeFile) SetSheetName(source, target string) error {
	return e.file.SetSheetName(source, target)
}

func (e *ExcelizeFile) SetSelection(sheet, cell string) error {
	// Keep any frozen/split panes and only move the active cell.
	panes, err := e.file.GetPanes(sheet)
	if err == nil {
		panes.Selection = []excelize.Selection{{ActiveCell: cell, SQRef: cell}}
		return e.file.SetPanes(sheet, &panes)
	}
	return e.file.SetPanes(sheet, &excelize.Panes{
		Selection: []excelize.Selection{{ActiveCell: cell, SQRef: cell}},
	})
}
