// Package drawable holds renderer-independent geometry attached to the scene
// graph. The viewer draws it with raylib; tests read it back directly.
package drawable

import (
	"errors"
	"fmt"

	"turntable/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrTopologyChanged = errors.New("line topology changed")

// Color is linear RGBA in [0, 1].
type Color struct {
	R, G, B, A float32
}

var White = Color{1, 1, 1, 1}

func Gray(intensity float32) Color {
	return Color{intensity, intensity, intensity, 1}
}

type LinePoint struct {
	Point     mgl32.Vec3
	Thickness float32
	Color     Color
}

type Line struct {
	Points []LinePoint
	Cyclic bool
}

// Lines is a line-list component. Its topology (line count and points per
// line) is fixed at creation; updates may only move or recolor points.
type Lines struct {
	engine.BaseComponent
	lines   []Line
	version uint64
}

// CreateLines attaches a new line list to parent.
func CreateLines(parent *engine.GameObject, lines []Line) (*Lines, error) {
	if parent == nil {
		return nil, fmt.Errorf("create lines: %w", engine.ErrNoParent)
	}
	l := &Lines{lines: cloneLines(nil, lines)}
	parent.AddComponent(l)
	return l, nil
}

// SetLines replaces every line. Copies are taken, so the caller keeps
// ownership of lines.
func (l *Lines) SetLines(lines []Line) error {
	if len(lines) != len(l.lines) {
		return fmt.Errorf("%w: %d lines, want %d", ErrTopologyChanged, len(lines), len(l.lines))
	}
	for i := range lines {
		if len(lines[i].Points) != len(l.lines[i].Points) {
			return fmt.Errorf("%w: line %d has %d points, want %d",
				ErrTopologyChanged, i, len(lines[i].Points), len(l.lines[i].Points))
		}
	}
	l.lines = cloneLines(l.lines, lines)
	l.version++
	return nil
}

// Lines returns the current lines. Callers must not modify them.
func (l *Lines) Lines() []Line {
	return l.lines
}

// Version counts successful SetLines calls.
func (l *Lines) Version() uint64 {
	return l.version
}

// VertexCount is the total number of points across all lines.
func (l *Lines) VertexCount() int {
	n := 0
	for _, line := range l.lines {
		n += len(line.Points)
	}
	return n
}

func cloneLines(dst, src []Line) []Line {
	if cap(dst) < len(src) {
		dst = make([]Line, len(src))
	}
	dst = dst[:len(src)]
	for i, line := range src {
		dst[i].Cyclic = line.Cyclic
		dst[i].Points = append(dst[i].Points[:0], line.Points...)
	}
	return dst
}
