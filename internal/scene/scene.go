// SPDX-License-Identifier: MIT

// Package scene loads transform scripts from YAML or TOML and replays them
// onto a transform.Stack.
//
// A script is a name plus an ordered list of steps:
//
//	name: orbit
//	steps:
//	  - op: translate
//	    args: [0, 0, -5]
//	  - op: rotate
//	    args: [1.5707963267948966]
//	    axis: [0, 1, 0]
//
// Angles are radians. Matrices are given row-major with 16 or 9 elements.
package scene

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/glmath/euler"
	"github.com/katalvlaran/glmath/matrix"
	"github.com/katalvlaran/glmath/quaternion"
	"github.com/katalvlaran/glmath/transform"
	"github.com/katalvlaran/glmath/vector"
)

// Sentinel errors.
var (
	// ErrBadStep is returned for a step whose operands have the wrong kind or
	// count. It matches matrix.ErrTypeMismatch.
	ErrBadStep = fmt.Errorf("%w: bad script step", matrix.ErrTypeMismatch)

	// ErrUnknownOp is returned for a step with an unrecognized op.
	ErrUnknownOp = fmt.Errorf("%w: unknown script op", matrix.ErrInvalidArgument)

	// ErrUnsupportedFormat is returned by Parse for a format other than YAML or TOML.
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported script format", matrix.ErrInvalidArgument)
)

// Format names a script encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Script ops.
const (
	OpPush         = "push"
	OpPop          = "pop"
	OpLoad         = "load"
	OpLoadIdentity = "load_identity"
	OpTranslate    = "translate"
	OpScale        = "scale"
	OpRotate       = "rotate"
	OpQuaternion   = "quaternion"
	OpEuler        = "euler"
	OpOrtho        = "ortho"
	OpPerspective  = "perspective"
	OpLookAt       = "look_at"
	OpMultiply     = "multiply"
)

// Step is one stack operation. Numeric fields are decoded loosely so that
// operand kinds can be checked when the step runs.
type Step struct {
	Op     string   `yaml:"op" toml:"op"`
	Args   []any    `yaml:"args,omitempty" toml:"args,omitempty"`
	Axis   []any    `yaml:"axis,omitempty" toml:"axis,omitempty"`
	Order  []string `yaml:"order,omitempty" toml:"order,omitempty"`
	Matrix []any    `yaml:"matrix,omitempty" toml:"matrix,omitempty"`
}

// Script is a named sequence of steps.
type Script struct {
	Name  string `yaml:"name" toml:"name"`
	Steps []Step `yaml:"steps" toml:"steps"`
}

// DetectFormat picks a format from the file extension; anything other than
// .toml is treated as YAML.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}

	return FormatYAML
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}

	return s, nil
}

// Parse decodes a script in the given format.
//
// Errors: ErrUnsupportedFormat, decoder errors.
func Parse(data []byte, f Format) (*Script, error) {
	var s Script
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("scene: yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("scene: toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("scene: Parse(%q): %w", f, ErrUnsupportedFormat)
	}

	return &s, nil
}

// Run replays the script onto a fresh stack and returns it. Execution stops at
// the first failing step.
func Run(s *Script) (*transform.Stack, error) {
	st := transform.NewStack()
	if s == nil {
		return st, nil
	}
	for i, step := range s.Steps {
		if err := apply(st, step); err != nil {
			return nil, fmt.Errorf("scene: step %d (%s): %w", i+1, step.Op, err)
		}
	}

	return st, nil
}

func apply(st *transform.Stack, step Step) error {
	switch step.Op {
	case OpPush:
		if len(step.Matrix) == 0 {
			st.Push()
			return nil
		}
		m, err := matrixOf(step.Matrix)
		if err != nil {
			return err
		}
		return st.PushMatrix(m)

	case OpPop:
		a, err := numbers("args", step.Args, 0, 1)
		if err != nil {
			return err
		}
		n := 1
		if len(a) == 1 {
			if a[0] != math.Trunc(a[0]) || math.IsInf(a[0], 0) {
				return fmt.Errorf("%w: args[0]: pop count %v is not an integer", ErrBadStep, a[0])
			}
			n = int(a[0])
		}
		return st.Pop(n)

	case OpLoad:
		m, err := matrixOf(step.Matrix)
		if err != nil {
			return err
		}
		return st.Load(m)

	case OpLoadIdentity:
		st.LoadIdentity()
		return nil

	case OpTranslate:
		a, err := numbers("args", step.Args, 3)
		if err != nil {
			return err
		}
		st.Translate(a[0], a[1], a[2])
		return nil

	case OpScale:
		a, err := numbers("args", step.Args, 1, 3)
		if err != nil {
			return err
		}
		if len(a) == 1 {
			a = []float64{a[0], a[0], a[0]}
		}
		st.Scale(a[0], a[1], a[2])
		return nil

	case OpRotate:
		a, err := numbers("args", step.Args, 1)
		if err != nil {
			return err
		}
		axis, err := numbers("axis", step.Axis, 3)
		if err != nil {
			return err
		}
		return st.RotateAxis(a[0], vector.Vec3(axis))

	case OpQuaternion:
		a, err := numbers("args", step.Args, 4)
		if err != nil {
			return err
		}
		q := quaternion.Quat{W: a[0], X: a[1], Y: a[2], Z: a[3]}
		if q.SquaredNorm() == 0 {
			return quaternion.ErrDivideByZero
		}
		return st.Rotate(q.Normalize())

	case OpEuler:
		a, err := numbers("args", step.Args, 3)
		if err != nil {
			return err
		}
		order := lo.Map(step.Order, func(o string, _ int) euler.Axis { return euler.Axis(o) })
		m, err := euler.Angle{Yaw: a[0], Pitch: a[1], Roll: a[2]}.Matrix(order...)
		if err != nil {
			return err
		}
		return st.Mul(m)

	case OpOrtho:
		a, err := numbers("args", step.Args, 6)
		if err != nil {
			return err
		}
		return st.Ortho(a[0], a[1], a[2], a[3], a[4], a[5])

	case OpPerspective:
		a, err := numbers("args", step.Args, 4)
		if err != nil {
			return err
		}
		return st.Perspective(a[0], a[1], a[2], a[3])

	case OpLookAt:
		a, err := numbers("args", step.Args, 9)
		if err != nil {
			return err
		}
		return st.LookAt(vector.Vec3(a[0:3]), vector.Vec3(a[3:6]), vector.Vec3(a[6:9]))

	case OpMultiply:
		m, err := matrixOf(step.Matrix)
		if err != nil {
			return err
		}
		return st.Mul(m)
	}

	return ErrUnknownOp
}

// numbers converts decoded operands to float64, requiring one of the given counts.
func numbers(field string, vals []any, counts ...int) ([]float64, error) {
	if !lo.Contains(counts, len(vals)) {
		return nil, fmt.Errorf("%w: %s: want %v values, got %d", ErrBadStep, field, counts, len(vals))
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d]: %T is not a number", ErrBadStep, field, i, v)
		}
		out[i] = f
	}

	return out, nil
}

// matrixOf builds a 4×4 matrix from 16 elements, or expands a 3×3 one from 9.
func matrixOf(vals []any) (*matrix.Matrix[float64], error) {
	e, err := numbers("matrix", vals, 16, 9)
	if err != nil {
		return nil, err
	}
	if len(e) == 16 {
		return matrix.New(4, e)
	}
	m, err := matrix.New(3, e)
	if err != nil {
		return nil, err
	}

	return m.Expand()
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}

	return 0, false
}
