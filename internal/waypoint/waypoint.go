// Package waypoint loads waypoint sequences from YAML files and turns them
// into trajectories.
//
// A file names the basis family and lists the waypoints in order:
//
//	family: quintic
//	waypoints:
//	  - position: [0, 0, 0]
//	    velocity: [0, 1, 0]
//	    acceleration: [0, 0, 0]
//
// Each waypoint must carry exactly the states its family blends: position and
// velocity for cubic, plus acceleration for quintic, plus jerk for septic.
package waypoint

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	trajectory "github.com/tphakala/go-motion-planning"
	"github.com/tphakala/go-motion-planning/hermite"
	"github.com/tphakala/go-motion-planning/vec"
)

// ErrInvalidFile indicates a waypoint file that cannot describe a trajectory.
var ErrInvalidFile = errors.New("invalid waypoint file")

// Evaluator is the trajectory type produced from a file.
type Evaluator = trajectory.Evaluator[float64, vec.VecN[float64]]

// File is the decoded form of a waypoint file.
type File struct {
	Family    string     `yaml:"family"`
	Waypoints []Waypoint `yaml:"waypoints"`
}

// Waypoint holds one waypoint's states. Unused states are left empty.
type Waypoint struct {
	Position     []float64 `yaml:"position"`
	Velocity     []float64 `yaml:"velocity"`
	Acceleration []float64 `yaml:"acceleration,omitempty"`
	Jerk         []float64 `yaml:"jerk,omitempty"`
}

// Load reads and validates the waypoint file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Decode reads and validates a waypoint file from r.
func Decode(r io.Reader) (*File, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Encode writes file as YAML.
func Encode(w io.Writer, file *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(file); err != nil {
		return err
	}
	return enc.Close()
}

// family resolves the family name; an empty name selects quintic.
func (f *File) family() (*hermite.Family, error) {
	name := f.Family
	if name == "" {
		name = hermite.Quintic.Name()
	}
	fam, ok := hermite.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown family %q", ErrInvalidFile, f.Family)
	}
	return fam, nil
}

// Validate checks that every waypoint carries the states of the file's family
// and that all vectors share one non-zero dimension.
func (f *File) Validate() error {
	fam, err := f.family()
	if err != nil {
		return err
	}

	dim := -1
	for i, w := range f.Waypoints {
		for order := range hermite.MaxDerivative + 1 {
			state := w.state(order)
			if order >= fam.Orders() {
				if len(state) > 0 {
					return fmt.Errorf("%w: waypoint %d has %s, unused by the %s family",
						ErrInvalidFile, i, stateNames[order], fam.Name())
				}
				continue
			}

			switch {
			case len(state) == 0:
				return fmt.Errorf("%w: waypoint %d is missing %s required by the %s family",
					ErrInvalidFile, i, stateNames[order], fam.Name())
			case dim < 0:
				dim = len(state)
			case len(state) != dim:
				return fmt.Errorf("%w: waypoint %d %s has dimension %d, want %d",
					ErrInvalidFile, i, stateNames[order], len(state), dim)
			}
		}
	}
	return nil
}

// Dim returns the dimension of the waypoint vectors, or 0 for an empty file.
func (f *File) Dim() int {
	if len(f.Waypoints) == 0 {
		return 0
	}
	return len(f.Waypoints[0].Position)
}

// Trajectory builds an evaluator over the file's waypoints using the file's
// family. The vectors are copied, so later edits to f do not affect it.
func (f *File) Trajectory() (Evaluator, error) {
	fam, err := f.family()
	if err != nil {
		return nil, err
	}

	var (
		tr  Evaluator
		out error
	)
	switch fam {
	case hermite.Cubic:
		poses := make([]trajectory.Pose2[vec.VecN[float64]], len(f.Waypoints))
		for i, w := range f.Waypoints {
			poses[i] = trajectory.Pose2[vec.VecN[float64]]{
				Position: vec.N(w.Position...),
				Velocity: vec.N(w.Velocity...),
			}
		}
		tr, out = trajectory.NewCubic[float64](poses)
	case hermite.Quintic:
		poses := make([]trajectory.Pose3[vec.VecN[float64]], len(f.Waypoints))
		for i, w := range f.Waypoints {
			poses[i] = trajectory.Pose3[vec.VecN[float64]]{
				Position:     vec.N(w.Position...),
				Velocity:     vec.N(w.Velocity...),
				Acceleration: vec.N(w.Acceleration...),
			}
		}
		tr, out = trajectory.NewQuintic[float64](poses)
	default:
		poses := make([]trajectory.Pose4[vec.VecN[float64]], len(f.Waypoints))
		for i, w := range f.Waypoints {
			poses[i] = trajectory.Pose4[vec.VecN[float64]]{
				Position:     vec.N(w.Position...),
				Velocity:     vec.N(w.Velocity...),
				Acceleration: vec.N(w.Acceleration...),
				Jerk:         vec.N(w.Jerk...),
			}
		}
		tr, out = trajectory.NewSeptic[float64](poses)
	}

	if out != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, out)
	}
	return tr, nil
}

func (w *Waypoint) state(order int) []float64 {
	switch order {
	case 0:
		return w.Position
	case 1:
		return w.Velocity
	case 2:
		return w.Acceleration
	default:
		return w.Jerk
	}
}
