package core

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ExcelizeFile is a thin wrapper; this checks the delegation is wired.
func TestExcelizeFile_BasicOperations(t *testing.T) {
	adapter := NewExcelFile()
	defer adapter.Close()

	sheet := "Sheet1"
	if err := adapter.SetCellValue(sheet, "A1", "Hello World"); err != nil {
		t.Fatalf("SetCellValue failed: %v", err)
	}
	got, err := adapter.GetCellValue(sheet, "A1")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if got != "Hello World" {
		t.Errorf("GetCellValue = %q, want %q", got, "Hello World")
	}

	if err := adapter.SetSheetName(sheet, "Overview"); err != nil {
		t.Fatalf("SetSheetName failed: %v", err)
	}
	if _, err := adapter.NewSheet("Detail"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	if got := adapter.GetSheetList(); !reflect.DeepEqual(got, []string{"Overview", "Detail"}) {
		t.Fatalf("GetSheetList = %v", got)
	}

	if err := adapter.MergeCell("Overview", "B2", "C3"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}
	merges, err := adapter.GetMergeCells("Overview")
	if err != nil {
		t.Fatalf("GetMergeCells failed: %v", err)
	}
	if len(merges) != 1 || merges[0].GetStartAxis() != "B2" || merges[0].GetEndAxis() != "C3" {
		t.Errorf("expected merge B2:C3, got %v", merges)
	}

	if err := adapter.SetColWidth("Overview", "B", "B", 12.5); err != nil {
		t.Fatalf("SetColWidth failed: %v", err)
	}
	if w, _ := adapter.GetColWidth("Overview", "B"); w != 12.5 {
		t.Errorf("GetColWidth = %v, want 12.5", w)
	}

	styleID, err := adapter.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := adapter.SetCellStyle("Overview", "A1", "A1", styleID); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}
}

func TestExcelizeFile_SetSelectionAndSave(t *testing.T) {
	adapter := NewExcelFile()
	if err := adapter.SetCellValue("Sheet1", "D9", "far away"); err != nil {
		t.Fatal(err)
	}
	if err := adapter.SetSelection("Sheet1", "A1"); err != nil {
		t.Fatalf("SetSelection failed: %v", err)
	}
	adapter.SetActiveSheet(0)

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := adapter.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	if err := adapter.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()
	panes, err := f.GetPanes("Sheet1")
	if err != nil {
		t.Fatalf("GetPanes: %v", err)
	}
	if len(panes.Selection) != 1 || panes.Selection[0].ActiveCell != "A1" {
		t.Errorf("selection = %+v, want A1", panes.Selection)
	}
}
