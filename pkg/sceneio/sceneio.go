package sceneio

import (
	"os"

	"github.com/BurntSushi/toml"
	"cogentcore.org/core/math32"

	"github.com/matzehuels/sketch3d/pkg/errors"
	"github.com/matzehuels/sketch3d/pkg/geom"
	"github.com/matzehuels/sketch3d/pkg/scene"
)

// File is a decoded scene description.
type File struct {
	View   *ViewConfig   `toml:"view"`
	Export *ExportConfig `toml:"export"`
	Marks  []MarkConfig  `toml:"mark"`
	Lines  []LineConfig  `toml:"line"`
	Faces  []FaceConfig  `toml:"face"`
	Axes   []AxisConfig  `toml:"axis"`
}

// ViewConfig declares the camera. Either a direction (semi-automatic
// view) or a rotation plus position (explicit view); direction wins when
// both are present.
type ViewConfig struct {
	FOV       float32   `toml:"fov"`
	Direction []float32 `toml:"direction"`
	Rotation  []float32 `toml:"rotation"` // axis x, y, z, angle in degrees
	Position  []float32 `toml:"position"`
}

// ExportConfig declares export size and sorter tolerance.
type ExportConfig struct {
	Width     float32     `toml:"width"`
	Height    float32     `toml:"height"`
	Epsilon   float32     `toml:"epsilon"`
	MinRegion [][]float32 `toml:"min_region"` // [min, max] corner pair
	MaxRegion [][]float32 `toml:"max_region"`
}

// MarkConfig declares one point mark.
type MarkConfig struct {
	Pos      []float32 `toml:"pos"`
	Style    string    `toml:"style"`
	Template string    `toml:"template"`
	Rotation float32   `toml:"rotation"`
	Scale    float32   `toml:"scale"`
}

// LineConfig declares one stroked segment.
type LineConfig struct {
	From  []float32 `toml:"from"`
	To    []float32 `toml:"to"`
	Style string    `toml:"style"`
}

// FaceConfig declares one filled polygon.
type FaceConfig struct {
	Points  [][]float32 `toml:"points"`
	Front   string      `toml:"front"`
	Back    string      `toml:"back"`
	Outline string      `toml:"outline"`
}

// AxisConfig declares one adapting axis.
type AxisConfig struct {
	From   []float32 `toml:"from"`
	To     []float32 `toml:"to"`
	Style  string    `toml:"style"`
	Format string    `toml:"format"`
	Labels string    `toml:"labels"`
	Tick   float32   `toml:"tick"`
}

// Parse decodes a TOML scene description.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding scene file")
	}
	return &f, nil
}

// Load reads and decodes a scene file, returning the raw bytes alongside
// for content hashing.
func Load(path string) (*File, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %q", path)
		}
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading scene file %q", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}
	return f, data, nil
}

// Scene builds a scene from the decoded description. Malformed entries
// are dropped, never reported.
func (f *File) Scene() *scene.Scene {
	s := scene.New()

	if f.Export != nil {
		f.applyExport(s)
	}
	if f.View != nil {
		f.applyView(s)
	}

	for _, m := range f.Marks {
		pos, ok := vec3(m.Pos)
		if !ok {
			continue
		}
		scale := m.Scale
		if scale == 0 {
			scale = 1
		}
		s.AddMark(pos, m.Style, m.Template, m.Rotation, scale)
	}
	for _, l := range f.Lines {
		from, okFrom := vec3(l.From)
		to, okTo := vec3(l.To)
		if !okFrom || !okTo {
			continue
		}
		s.AddLine(geom.Seg3(from, to), l.Style)
	}
	for _, fc := range f.Faces {
		pts := make([]math32.Vector3, 0, len(fc.Points))
		for _, p := range fc.Points {
			v, ok := vec3(p)
			if !ok {
				pts = nil
				break
			}
			pts = append(pts, v)
		}
		if pts == nil {
			continue
		}
		s.AddFace(pts, fc.Front, fc.Back, fc.Outline)
	}
	for _, a := range f.Axes {
		from, okFrom := vec3(a.From)
		to, okTo := vec3(a.To)
		if !okFrom || !okTo {
			continue
		}
		s.AddAxis(a.Style, a.Format, a.Labels, a.Tick, from, to)
	}
	return s
}

func (f *File) applyExport(s *scene.Scene) {
	ex := f.Export
	if ex.Width > 0 && ex.Height > 0 {
		s.SetExportSize(ex.Width, ex.Height)
	}
	if ex.Epsilon > 0 {
		s.SetEpsilon(ex.Epsilon)
	}
	if b, ok := region(ex.MinRegion); ok {
		s.SetMinRegion(b)
	}
	if b, ok := region(ex.MaxRegion); ok {
		s.SetMaxRegion(b)
	}
}

func (f *File) applyView(s *scene.Scene) {
	v := f.View
	if dir, ok := vec3(v.Direction); ok {
		s.SetViewDirectional(v.FOV, dir)
		return
	}
	if len(v.Rotation) == 4 {
		axis, ok := vec3(v.Rotation[:3])
		if !ok || axis.Length() == 0 {
			return
		}
		rt := geom.Rotate(math32.NewQuatAxisAngle(axis.Normal(), math32.DegToRad(v.Rotation[3])))
		if pos, ok := vec3(v.Position); ok {
			rt.Pos = pos
		}
		s.SetViewExplicit(v.FOV, rt)
	}
}

// vec3 converts a decoded coordinate triple, rejecting short or long
// arrays.
func vec3(v []float32) (math32.Vector3, bool) {
	if len(v) != 3 {
		return math32.Vector3{}, false
	}
	return math32.Vec3(v[0], v[1], v[2]), true
}

// region converts a [min, max] corner pair into a box.
func region(corners [][]float32) (math32.Box3, bool) {
	if len(corners) != 2 {
		return math32.Box3{}, false
	}
	lo, okLo := vec3(corners[0])
	hi, okHi := vec3(corners[1])
	if !okLo || !okHi {
		return math32.Box3{}, false
	}
	b := math32.B3Empty()
	b.ExpandByPoint(lo)
	b.ExpandByPoint(hi)
	return b, true
}
