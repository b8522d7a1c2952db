package pathanim

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// FormatVersion is the persisted document format written by EncodeDocument.
const FormatVersion = 1

// DefaultCanvas is the canvas of new documents and sessions.
var DefaultCanvas = Size{Width: 512, Height: 512}

// ImageRef locates an image in host storage.
type ImageRef struct {
	Name      string `json:"name"`
	Subfolder string `json:"subfolder,omitempty"`
	Type      string `json:"type,omitempty"`
}

// Document is the persisted session: canvas, paths and an optional
// background image reference.
//
// Canvas is the zero Size when the persisted form does not record one.
// Consumers pick their own fallback with CanvasOr: rendering uses the
// frame size, so such documents are drawn unscaled.
type Document struct {
	FormatVersion int
	Canvas        Size
	Paths         []*Path
	Background    *ImageRef
}

// NewDocument returns an empty document on the default canvas.
func NewDocument() *Document {
	return &Document{FormatVersion: FormatVersion, Canvas: DefaultCanvas}
}

// HasCanvas reports whether the document records a canvas size.
func (d *Document) HasCanvas() bool {
	return d.Canvas != Size{}
}

// CanvasOr returns the document's canvas, or fallback when it has none.
func (d *Document) CanvasOr(fallback Size) Size {
	if !d.HasCanvas() {
		return fallback
	}
	return d.Canvas
}

type documentJSON struct {
	FormatVersion int        `json:"formatVersion"`
	Canvas        *Size      `json:"canvas_size,omitempty"`
	Paths         []pathJSON `json:"paths"`
	Background    *ImageRef  `json:"background_image,omitempty"`
}

type pathJSON struct {
	ID             json.RawMessage `json:"id,omitempty"`
	Name           string          `json:"name,omitempty"`
	Color          string          `json:"color,omitempty"`
	Points         []Point         `json:"points"`
	Kind           string          `json:"kind,omitempty"`
	IsSinglePoint  bool            `json:"isSinglePoint,omitempty"`
	Direction      string          `json:"direction,omitempty"`
	StartTime      *float64        `json:"startTime,omitempty"`
	EndTime        *float64        `json:"endTime,omitempty"`
	Interpolation  Interpolation   `json:"interpolation,omitempty"`
	VisibilityMode Visibility      `json:"visibilityMode,omitempty"`
	Generation     json.RawMessage `json:"generation,omitempty"`
}

// DecodeDocument decodes a persisted document. Syntax and type errors are
// returned; recoverable content problems (paths without points, unknown
// enum values, unreadable generator parameters) are logged and repaired.
func DecodeDocument(data []byte) (*Document, error) {
	var raw documentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("pathanim: decode document: %w", err)
	}
	doc := &Document{
		FormatVersion: raw.FormatVersion,
		Background:    raw.Background,
	}
	if raw.Canvas != nil {
		doc.Canvas = *raw.Canvas
	}
	for i, pj := range raw.Paths {
		p, err := pj.path()
		if err != nil {
			Logger().Warn("pathanim: skipping path", "index", i, "name", pj.Name, "err", err)
			continue
		}
		doc.Paths = append(doc.Paths, p)
	}
	return doc, nil
}

// ParseDocument decodes a document and never fails: malformed or missing
// input yields an empty document on the default canvas.
func ParseDocument(data []byte) *Document {
	if len(bytes.TrimSpace(data)) == 0 {
		return NewDocument()
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		Logger().Warn("pathanim: invalid document, using empty path set", "err", err)
		return NewDocument()
	}
	return doc
}

// EncodeDocument serializes a document in the current format version.
func EncodeDocument(doc *Document) ([]byte, error) {
	out := documentJSON{
		FormatVersion: FormatVersion,
		Paths:         make([]pathJSON, 0, len(doc.Paths)),
		Background:    doc.Background,
	}
	if doc.HasCanvas() {
		canvas := doc.Canvas
		out.Canvas = &canvas
	}
	for _, p := range doc.Paths {
		pj, err := newPathJSON(p)
		if err != nil {
			return nil, err
		}
		out.Paths = append(out.Paths, pj)
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("pathanim: encode document: %w", err)
	}
	return b, nil
}

func newPathJSON(p *Path) (pathJSON, error) {
	id, _ := json.Marshal(p.ID)
	start, end := p.Window.Start, p.Window.End
	pj := pathJSON{
		ID:             id,
		Name:           p.Name,
		Color:          p.Color,
		Points:         p.Points,
		Kind:           p.Kind.Name(),
		IsSinglePoint:  p.IsAnchor(),
		Direction:      p.Direction.String(),
		StartTime:      &start,
		EndTime:        &end,
		Interpolation:  p.Interpolation,
		VisibilityMode: p.Visibility,
	}
	if params, ok := p.Params(); ok {
		gen, err := json.Marshal(params)
		if err != nil {
			return pathJSON{}, fmt.Errorf("pathanim: encode %s params: %w", params.Name(), err)
		}
		pj.Generation = gen
	}
	return pj, nil
}

// path converts the wire form into a Path, repairing what it can.
func (pj pathJSON) path() (*Path, error) {
	kind := pj.kind()
	if pj.IsSinglePoint {
		kind = Anchor{}
	}
	p, err := NewPath(pj.Points, kind)
	if err != nil {
		return nil, err
	}
	p.ID = decodeID(pj.ID)
	p.Name = pj.Name
	p.Color = pj.Color

	if err := p.Direction.UnmarshalText([]byte(pj.Direction)); err != nil {
		Logger().Warn("pathanim: unknown direction, using clockwise", "id", p.ID, "direction", pj.Direction)
	}

	start, end := 0.0, 1.0
	if pj.StartTime != nil {
		start = *pj.StartTime
	}
	if pj.EndTime != nil {
		end = *pj.EndTime
	}
	p.SetWindow(start, end)

	if pj.Interpolation != "" {
		if !pj.Interpolation.Valid() {
			Logger().Warn("pathanim: unknown interpolation, using linear", "id", p.ID, "interpolation", pj.Interpolation)
		} else {
			p.Interpolation = pj.Interpolation
		}
	}
	if pj.VisibilityMode != "" {
		if !pj.VisibilityMode.Valid() {
			Logger().Warn("pathanim: unknown visibility mode, using pop", "id", p.ID, "visibilityMode", pj.VisibilityMode)
		} else {
			p.Visibility = pj.VisibilityMode
		}
	}
	return p, nil
}

// kind decodes the path variant. Generated kinds whose parameters are
// missing or unreadable fall back to freehand: the points stay valid, only
// regeneration is lost.
func (pj pathJSON) kind() Kind {
	var params GenerationParams
	switch pj.Kind {
	case "static", "anchor":
		return Anchor{}
	case "orbit":
		params = decodeParams[OrbitParams](pj.Generation)
	case "arc":
		params = decodeParams[ArcParams](pj.Generation)
	case "zoombox":
		params = decodeParams[ZoomCornerParams](pj.Generation)
	default:
		return Freehand{}
	}
	if params == nil {
		Logger().Warn("pathanim: generated path without parameters, treating as freehand", "kind", pj.Kind)
		return Freehand{}
	}
	return Generated{Params: params}
}

func decodeParams[T GenerationParams](raw json.RawMessage) GenerationParams {
	if len(raw) == 0 {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

// decodeID accepts string and numeric ids. Paths without one get a fresh
// UUID.
func decodeID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return uuid.NewString()
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		return n.String()
	}
	return uuid.NewString()
}
