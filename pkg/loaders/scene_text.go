// Package loaders reads the line-keyed text scene format. Each line is a
// keyword followed by whitespace-separated numbers. Unknown keywords and
// malformed numbers are silently skipped, leaving defaults in place.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jmars/go-implicit-pathtracer/pkg/core"
	"github.com/jmars/go-implicit-pathtracer/pkg/geometry"
	"github.com/jmars/go-implicit-pathtracer/pkg/scene"
)

// Loader defaults for fields the scene file may omit
const (
	DefaultRayDepth = 6
	DefaultSamples  = 64
	DefaultSeed     = 42
)

// LoadScene reads and parses a scene file
func LoadScene(path string) (*scene.Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene %s: %w", path, err)
	}
	defer file.Close()

	return ParseScene(file)
}

// ParseScene parses a scene description from a reader. The returned scene is
// fully finalized: lights are sorted to the primitive prefix and the PRNG is
// seeded with the default master seed.
func ParseScene(r io.Reader) (*scene.Scene, error) {
	s := &scene.Scene{
		RayDepth: DefaultRayDepth,
		Samples:  DefaultSamples,
	}

	// Index of the primitive being built; appends can reallocate the slice,
	// so the element is re-addressed per line.
	current := -1

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		key, args := fields[0], fields[1:]
		switch key {
		case "DIMENSIONS":
			if w, h, ok := parseInt2(args); ok {
				s.Width, s.Height = w, h
			}
		case "BG_COLOR":
			if v, ok := parseVec3(args); ok {
				s.Background = v
			}
		case "CAMERA_POSITION":
			if v, ok := parseVec3(args); ok {
				s.Camera.Position = v
			}
		case "CAMERA_RIGHT":
			if v, ok := parseVec3(args); ok {
				s.Camera.Right = v
			}
		case "CAMERA_UP":
			if v, ok := parseVec3(args); ok {
				s.Camera.Up = v
			}
		case "CAMERA_FORWARD":
			if v, ok := parseVec3(args); ok {
				s.Camera.Forward = v
			}
		case "CAMERA_FOV_X":
			if f, ok := parseFloat(args); ok {
				s.Camera.FovX = f
			}
		case "RAY_DEPTH":
			if d, ok := parseInt(args); ok {
				s.RayDepth = d
			}
		case "SAMPLES":
			if n, ok := parseInt(args); ok {
				s.Samples = n
			}
		case "NEW_PRIMITIVE":
			s.Primitives = append(s.Primitives, geometry.Primitive{
				Rotation: core.IdentityQuaternion(),
				IOR:      1,
			})
			current = len(s.Primitives) - 1
		default:
			if current >= 0 {
				parsePrimitiveKey(&s.Primitives[current], key, args)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}

	// A NEW_PRIMITIVE block that never named a shape describes nothing
	kept := s.Primitives[:0]
	for _, p := range s.Primitives {
		if p.Shape != nil {
			kept = append(kept, p)
		}
	}
	s.Primitives = kept

	s.FinalizeLights()
	s.SetSeed(DefaultSeed)
	return s, nil
}

// parsePrimitiveKey applies a primitive-block keyword to the primitive being
// built. Keys seen before any NEW_PRIMITIVE, and unknown keys, are skipped.
func parsePrimitiveKey(p *geometry.Primitive, key string, args []string) {
	switch key {
	case "PLANE":
		if v, ok := parseVec3(args); ok {
			p.Shape = geometry.NewPlane(v)
		}
	case "ELLIPSOID":
		if v, ok := parseVec3(args); ok {
			p.Shape = geometry.NewEllipsoid(v)
		}
	case "BOX":
		if v, ok := parseVec3(args); ok {
			p.Shape = geometry.NewBox(v)
		}
	case "POSITION":
		if v, ok := parseVec3(args); ok {
			p.Position = v
		}
	case "ROTATION":
		if q, ok := parseQuaternion(args); ok {
			p.Rotation = q
		}
	case "COLOR":
		if v, ok := parseVec3(args); ok {
			p.Color = v
		}
	case "EMISSION":
		if v, ok := parseVec3(args); ok {
			p.Emission = v
		}
	case "METALLIC":
		p.Surface = geometry.Metallic
	case "DIELECTRIC":
		p.Surface = geometry.Dielectric
	case "IOR":
		if f, ok := parseFloat(args); ok {
			p.IOR = f
		}
	}
}

func parseFloat(args []string) (float32, bool) {
	if len(args) < 1 {
		return 0, false
	}
	f, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

func parseInt(args []string) (int, bool) {
	if len(args) < 1 {
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseInt2(args []string) (int, int, bool) {
	if len(args) < 2 {
		return 0, 0, false
	}
	a, errA := strconv.Atoi(args[0])
	b, errB := strconv.Atoi(args[1])
	if errA != nil || errB != nil {
		return 0, 0, false
	}
	return a, b, true
}

func parseVec3(args []string) (core.Vec3, bool) {
	if len(args) < 3 {
		return core.Vec3{}, false
	}
	var v [3]float32
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return core.Vec3{}, false
		}
		v[i] = float32(f)
	}
	return core.NewVec3(v[0], v[1], v[2]), true
}

func parseQuaternion(args []string) (core.Quaternion, bool) {
	if len(args) < 4 {
		return core.Quaternion{}, false
	}
	var q [4]float32
	for i := 0; i < 4; i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return core.Quaternion{}, false
		}
		q[i] = float32(f)
	}
	return core.NewQuaternion(q[0], q[1], q[2], q[3]), true
}
