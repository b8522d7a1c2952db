package export

import (
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/pathanim"
)

// Track sheet page layout in millimeters (A4 landscape).
const (
	sheetWidth   = 297.0
	sheetHeight  = 210.0
	sheetMargin  = 15.0
	sheetTitleY  = 10.0
	sheetMarkerR = 1.2
)

// SheetTrack is one track on a track sheet.
type SheetTrack struct {
	Name  string
	Color string
	Track pathanim.Track
}

// WriteTrackSheet draws every track, fitted into an A4 landscape page with
// the frame's aspect ratio, and writes the PDF to path. Each track is a
// polyline in its color with a marker at its first point.
func WriteTrackSheet(path string, frame pathanim.Size, tracks []SheetTrack) error {
	if !frame.Valid() {
		return pathanim.ErrInvalidCanvas
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Motion tracks", true)
	pdf.AddPage()

	scale := math.Min(
		(sheetWidth-2*sheetMargin)/frame.Width,
		(sheetHeight-2*sheetMargin)/frame.Height,
	)
	ox := (sheetWidth - frame.Width*scale) / 2
	oy := (sheetHeight - frame.Height*scale) / 2
	at := func(p pathanim.Point) (float64, float64) {
		return ox + p.X*scale, oy + p.Y*scale
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(sheetMargin, sheetTitleY,
		fmt.Sprintf("%d tracks, %gx%g px, %d points each", len(tracks), frame.Width, frame.Height, pathanim.TrackLength))

	pdf.SetDrawColor(160, 160, 160)
	pdf.SetLineWidth(0.2)
	pdf.Rect(ox, oy, frame.Width*scale, frame.Height*scale, "D")

	pdf.SetLineWidth(0.5)
	for _, t := range tracks {
		if len(t.Track) == 0 {
			continue
		}
		c := pathanim.ColorOr(t.Color, pathanim.Black)
		pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
		pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		pdf.SetTextColor(int(c.R), int(c.G), int(c.B))

		for i := 1; i < len(t.Track); i++ {
			x0, y0 := at(t.Track[i-1])
			x1, y1 := at(t.Track[i])
			pdf.Line(x0, y0, x1, y1)
		}
		x, y := at(t.Track[0])
		pdf.Circle(x, y, sheetMarkerR, "F")
		if t.Name != "" {
			pdf.Text(x+2*sheetMarkerR, y-sheetMarkerR, t.Name)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export: track sheet: %w", err)
	}
	return nil
}
