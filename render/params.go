// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Shape is the figure drawn at each path's position.
type Shape string

const (
	ShapeCircle   Shape = "circle"
	ShapeSquare   Shape = "square"
	ShapeTriangle Shape = "triangle"
	ShapeHexagon  Shape = "hexagon"
	ShapeStar     Shape = "star"
)

// Valid reports whether s is a known shape.
func (s Shape) Valid() bool {
	switch s {
	case ShapeCircle, ShapeSquare, ShapeTriangle, ShapeHexagon, ShapeStar:
		return true
	}
	return false
}

// Params configures an animation batch.
type Params struct {
	// FrameWidth and FrameHeight are the output frame size in pixels.
	// Paths are scaled from the document canvas to this size.
	// Range: 64-4096. Default: 512x512.
	FrameWidth  int `json:"frame_width" toml:"frame_width" yaml:"frame_width"`
	FrameHeight int `json:"frame_height" toml:"frame_height" yaml:"frame_height"`

	// FrameCount is the number of frames. Range: 1-500. Default: 30.
	FrameCount int `json:"frame_count" toml:"frame_count" yaml:"frame_count"`

	Shape Shape `json:"shape" toml:"shape" yaml:"shape"`

	// ShapeSize is the shape's bounding size in pixels. Range: 1-500.
	ShapeSize int `json:"shape_size" toml:"shape_size" yaml:"shape_size"`

	// Colors accept every form ParseColor does. Invalid colors fall back
	// to the default of the field.
	ShapeColor  string `json:"shape_color" toml:"shape_color" yaml:"shape_color"`
	BgColor     string `json:"bg_color" toml:"bg_color" yaml:"bg_color"`
	BorderColor string `json:"border_color" toml:"border_color" yaml:"border_color"`

	// BlurRadius is the gaussian standard deviation in pixels. Range: 0-50.
	BlurRadius float64 `json:"blur_radius" toml:"blur_radius" yaml:"blur_radius"`

	// TrailLength weights the previous frame in the motion trail.
	// Range: 0-1; 0 disables the trail.
	TrailLength float64 `json:"trail_length" toml:"trail_length" yaml:"trail_length"`

	// RotationSpeed is the rotation in degrees over the whole batch.
	// Range: -360 to 360.
	RotationSpeed float64 `json:"rotation_speed" toml:"rotation_speed" yaml:"rotation_speed"`

	// BorderWidth is drawn inside the shape outline. Range: 0-20.
	BorderWidth int `json:"border_width" toml:"border_width" yaml:"border_width"`

	// StartTimePercent and EndTimePercent form the global timeline
	// override. It is active unless they are exactly 0 and 100.
	StartTimePercent float64 `json:"start_time_percent" toml:"start_time_percent" yaml:"start_time_percent"`
	EndTimePercent   float64 `json:"end_time_percent" toml:"end_time_percent" yaml:"end_time_percent"`

	// OverridePathLength is the target arc length in pixels for every
	// motion path. -1 and 0 disable it. Range: -1 to 8192.
	OverridePathLength int `json:"override_path_length" toml:"override_path_length" yaml:"override_path_length"`

	// PathLengthMultiplier scales the (possibly overridden) length.
	// Range: 0.01-100.
	PathLengthMultiplier float64 `json:"path_length_multiplier" toml:"path_length_multiplier" yaml:"path_length_multiplier"`
}

// DefaultParams returns the default batch configuration.
func DefaultParams() Params {
	return Params{
		FrameWidth:           512,
		FrameHeight:          512,
		FrameCount:           30,
		Shape:                ShapeCircle,
		ShapeSize:            20,
		ShapeColor:           "white",
		BgColor:              "black",
		BorderColor:          "white",
		EndTimePercent:       100,
		OverridePathLength:   -1,
		PathLengthMultiplier: 1,
	}
}

func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi // false for NaN
}

// Validate checks every structural parameter and returns a *ConfigError
// for the first one out of range.
func (p *Params) Validate() error {
	ints := []struct {
		field  string
		v      int
		lo, hi int
	}{
		{"frame_width", p.FrameWidth, 64, 4096},
		{"frame_height", p.FrameHeight, 64, 4096},
		{"frame_count", p.FrameCount, 1, 500},
		{"shape_size", p.ShapeSize, 1, 500},
		{"border_width", p.BorderWidth, 0, 20},
		{"override_path_length", p.OverridePathLength, -1, 8192},
	}
	for _, c := range ints {
		if c.v < c.lo || c.v > c.hi {
			return &ConfigError{Field: c.field, Value: c.v, Reason: fmt.Sprintf("must be in [%d, %d]", c.lo, c.hi)}
		}
	}

	if !p.Shape.Valid() {
		return &ConfigError{Field: "shape", Value: p.Shape, Reason: "must be circle, square, triangle, hexagon or star"}
	}

	floats := []struct {
		field  string
		v      float64
		lo, hi float64
	}{
		{"blur_radius", p.BlurRadius, 0, 50},
		{"trail_length", p.TrailLength, 0, 1},
		{"rotation_speed", p.RotationSpeed, -360, 360},
		{"start_time_percent", p.StartTimePercent, 0, 100},
		{"end_time_percent", p.EndTimePercent, 0, 100},
		{"path_length_multiplier", p.PathLengthMultiplier, 0.01, 100},
	}
	for _, c := range floats {
		if !inRange(c.v, c.lo, c.hi) {
			return &ConfigError{Field: c.field, Value: c.v, Reason: fmt.Sprintf("must be in [%g, %g]", c.lo, c.hi)}
		}
	}
	return nil
}

// LoadParams reads parameters from a .toml, .yaml, .yml or .json file,
// overlaying DefaultParams, and validates the result. A leading ~ in path
// expands to the home directory.
func LoadParams(path string) (Params, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Params{}, fmt.Errorf("render: load params: %w", err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return Params{}, fmt.Errorf("render: load params: %w", err)
	}
	p, err := DecodeParams(data, filepath.Ext(expanded))
	if err != nil {
		return Params{}, fmt.Errorf("render: load params %s: %w", path, err)
	}
	return p, nil
}

// DecodeParams decodes data in the given format ("toml", "yaml", "yml" or
// "json", with or without a leading dot) over DefaultParams. Unknown keys
// are errors.
func DecodeParams(data []byte, format string) (Params, error) {
	p := DefaultParams()
	var err error
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&p)
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&p); errors.Is(err, io.EOF) {
			err = nil
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err = dec.Decode(&p); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return Params{}, err
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
