package sceneio

import (
	"testing"

	"github.com/matzehuels/sketch3d/pkg/errors"
	"github.com/matzehuels/sketch3d/pkg/scene"
)

const sample = `
[view]
fov = 45
direction = [1, 1, 1]

[export]
width = 12
height = 8

[[mark]]
pos = [0, 0, 1]
style = "draw=black"
template = "\\pgfuseplotmark{o}"

[[line]]
from = [0, 0, 0]
to = [0, 0, 2]
style = "thick"

[[face]]
points = [[0,0,0], [1,0,0], [1,1,0], [0,1,0]]
front = "fill=gray"
back = "fill=lightgray"
outline = "draw=black"

[[axis]]
from = [0, 0, 0]
to = [1, 0, 0]
style = "thin"
tick = 0.5
`

func TestParseAndBuildScene(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	s := f.Scene()
	objs := s.Objects()
	if len(objs) != 4 {
		t.Fatalf("scene has %d objects, want 4", len(objs))
	}
	if _, ok := objs[0].(*scene.MarkObject); !ok {
		t.Fatalf("object 0 is %T, want mark", objs[0])
	}
	if _, ok := objs[3].(*scene.AxisObject); !ok {
		t.Fatalf("object 3 is %T, want axis", objs[3])
	}
}

func TestParseInvalidTOML(t *testing.T) {
	_, err := Parse([]byte("[[face\npoints ="))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestMalformedEntriesDroppedSilently(t *testing.T) {
	src := `
[[mark]]
pos = [1, 2]        # short vector

[[line]]
from = [0, 0, 0]
to = [1, 0]         # short vector

[[face]]
points = [[0,0,0], [1,0,0]]   # too few points

[[face]]
points = [[0,0,0], [1,0,0], [1,1,0]]
front = "fill=gray"
`
	f, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n := len(f.Scene().Objects()); n != 1 {
		t.Fatalf("scene has %d objects, want just the valid face", n)
	}
}

func TestDefaultMarkScale(t *testing.T) {
	f, err := Parse([]byte("[[mark]]\npos = [0, 0, 1]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m, ok := f.Scene().Objects()[0].(*scene.MarkObject)
	if !ok {
		t.Fatal("expected a mark object")
	}
	if m.Scale != 1 {
		t.Fatalf("default scale = %g, want 1", m.Scale)
	}
}

func TestExplicitViewFromRotation(t *testing.T) {
	src := `
[view]
fov = 60
rotation = [0, 1, 0, 90]
position = [0, 0, 5]

[[mark]]
pos = [0, 0, 0]
`
	f, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// The explicit view resolves even with empty bounds context.
	s := f.Scene()
	if len(s.Objects()) != 1 {
		t.Fatal("mark lost")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load("/nonexistent/scene.toml")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Fatalf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExportRegionApplied(t *testing.T) {
	src := `
[export]
width = 10
height = 10
min_region = [[-1,-1,-1], [1,1,1]]

[[mark]]
pos = [0, 0, 0]
`
	f, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b := f.Scene().Bounds()
	if b.Min.X != -1 || b.Max.X != 1 {
		t.Fatalf("min region not applied: %v..%v", b.Min, b.Max)
	}
}
