// Package inventory exports decoded SITAC figures as an XLSX table.
package inventory

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/martinemde/comeng/kml"
	"github.com/martinemde/comeng/sitac"
)

// SheetName is the worksheet the inventory is written to.
const SheetName = "Figures"

// Header is the first row of the sheet.
var Header = []interface{}{
	"Name", "Kind", "Latitude", "Longitude",
	"Horizontal (m)", "Vertical (m)", "Rings", "Ring distance (m)", "Points",
}

// Row summarizes one figure. Latitude/Longitude are the figure's anchor:
// the point itself, the first vertex, the center or the start corner.
type Row struct {
	Name         string
	Kind         sitac.FigureKind
	Latitude     float64
	Longitude    float64
	Horizontal   float64
	Vertical     float64
	Rings        int
	RingDistance float64
	Points       int
}

// Rows summarizes every non-nil figure in order.
func Rows(figs []sitac.Figure) []Row {
	rows := make([]Row, 0, len(figs))
	for _, f := range figs {
		if sitac.IsNil(f) {
			continue
		}
		rows = append(rows, rowOf(f))
	}
	return rows
}

func rowOf(f sitac.Figure) Row {
	row := Row{Name: f.FigureName(), Kind: f.Kind()}
	anchor := func(p sitac.Point) {
		row.Latitude, row.Longitude = p.Latitude, p.Longitude
	}
	switch fig := f.(type) {
	case *sitac.Point:
		anchor(*fig)
		row.Points = 1
	case *sitac.Line:
		if len(fig.Points) > 0 {
			anchor(fig.Points[0])
		}
		row.Points = len(fig.Points)
	case *sitac.Polygon:
		if len(fig.Points) > 0 {
			anchor(fig.Points[0])
		}
		row.Points = len(fig.Points)
	case *sitac.Rectangle:
		anchor(fig.Start)
		row.Horizontal, row.Vertical = fig.Horizontal, fig.Vertical
		row.Points = 1
	case *sitac.Bullseye:
		anchor(fig.Center)
		row.Horizontal, row.Vertical = fig.HRadius*2, fig.VRadius*2
		row.Rings, row.RingDistance = fig.Rings, fig.RingDistance
		row.Points = 1
	case *sitac.Ellipse:
		anchor(fig.Center)
		row.Horizontal, row.Vertical = fig.HRadius*2, fig.VRadius*2
		row.Points = 1
	case *sitac.Corridor:
		anchor(fig.Start)
		row.Horizontal = fig.Width
		row.Points = 2
	}
	return row
}

func (r Row) cells() []interface{} {
	return []interface{}{
		r.Name, string(r.Kind), r.Latitude, r.Longitude,
		r.Horizontal, r.Vertical, r.Rings, r.RingDistance, r.Points,
	}
}

// Write saves the inventory of figs to path, creating a missing parent directory.
func Write(path string, figs []sitac.Figure) error {
	if err := kml.EnsureParentDir(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("opening stream writer: %w", err)
	}
	if err := sw.SetRow("A1", Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range Rows(figs) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row.cells()); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flushing sheet: %w", err)
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving inventory: %w", err)
	}
	return nil
}
