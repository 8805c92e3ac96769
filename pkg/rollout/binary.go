package rollout

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/clothsim-tools/rolloutview/pkg/math"
)

// Container format errors.
var (
	ErrInvalidMagic       = errors.New("invalid rollout magic: expected 'ROLL'")
	ErrUnsupportedVersion = errors.New("unsupported rollout version")
	ErrTruncatedData      = errors.New("truncated rollout data")
	ErrInvalidDimensions  = errors.New("invalid rollout dimensions")
	ErrFaceOutOfRange     = errors.New("face index out of range")
)

// Version represents the container file version.
type Version struct {
	Major uint8
	Minor uint8
}

// String returns the version as "Major.Minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Container flag bits.
const (
	flagObstacle      = 1 << 0 // obstacle positions and faces present
	flagClothPerFrame = 1 << 1 // cloth faces recorded per frame
	flagObstPerFrame  = 1 << 2 // obstacle faces recorded per frame
)

// Bounds on declared counts. The caps mostly reject garbage headers before
// allocating; a mesh needs at least one full triangle.
const (
	minVertices = 3

	maxFrames   = 1 << 20
	maxVertices = 1 << 24
	maxFaces    = 1 << 24
)

// Load reads and parses a rollout container file.
func Load(path string) (*Rollout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rollout %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing rollout %s: %w", path, err)
	}
	return r, nil
}

// Parse parses a rollout container from raw bytes.
//
// Layout (little endian): magic "ROLL", version (minor, major), flags byte,
// then uint32 counts (frames, cloth vertices, cloth faces, and obstacle
// vertices/faces when flagged), followed by float32 position data and uint32
// face data in declaration order.
func Parse(data []byte) (*Rollout, error) {
	if len(data) < 7 {
		return nil, ErrTruncatedData
	}

	if string(data[0:4]) != "ROLL" {
		return nil, ErrInvalidMagic
	}

	// Version is stored as [minor, major]
	version := Version{
		Major: data[5],
		Minor: data[4],
	}
	if version.Major != 1 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, version)
	}

	flags := data[6]
	hasObstacle := flags&flagObstacle != 0

	r := bytes.NewReader(data[7:])

	frames, err := readCount(r, "frames", 1, maxFrames)
	if err != nil {
		return nil, err
	}
	clothVerts, err := readCount(r, "cloth vertices", minVertices, maxVertices)
	if err != nil {
		return nil, err
	}
	clothFaces, err := readCount(r, "cloth faces", 1, maxFaces)
	if err != nil {
		return nil, err
	}

	var obstVerts, obstFaces uint32
	if hasObstacle {
		if obstVerts, err = readCount(r, "obstacle vertices", minVertices, maxVertices); err != nil {
			return nil, err
		}
		if obstFaces, err = readCount(r, "obstacle faces", 1, maxFaces); err != nil {
			return nil, err
		}
	}

	out := &Rollout{}

	if out.ClothPositions, err = readPositions(r, frames, clothVerts, "cloth"); err != nil {
		return nil, err
	}
	if out.ClothFaces, err = readFaceSet(r, frames, clothFaces, flags&flagClothPerFrame != 0, "cloth"); err != nil {
		return nil, err
	}

	if hasObstacle {
		if out.ObstaclePositions, err = readPositions(r, frames, obstVerts, "obstacle"); err != nil {
			return nil, err
		}
		if out.ObstacleFaces, err = readFaceSet(r, frames, obstFaces, flags&flagObstPerFrame != 0, "obstacle"); err != nil {
			return nil, err
		}
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}

	return out, nil
}

func readCount(r *bytes.Reader, name string, min, limit uint32) (uint32, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return 0, fmt.Errorf("%w: reading %s count", ErrTruncatedData, name)
	}
	if n < min || n > limit {
		return 0, fmt.Errorf("%w: %s = %d", ErrInvalidDimensions, name, n)
	}
	return n, nil
}

func readPositions(r *bytes.Reader, frames, verts uint32, which string) ([][]math.Vec3, error) {
	out := make([][]math.Vec3, frames)
	buf := make([]float32, 3*verts)
	for f := range out {
		if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
			return nil, fmt.Errorf("%w: %s positions, frame %d", ErrTruncatedData, which, f)
		}
		frame := make([]math.Vec3, verts)
		for i := range frame {
			frame[i] = math.Vec3{X: buf[3*i], Y: buf[3*i+1], Z: buf[3*i+2]}
		}
		out[f] = frame
	}
	return out, nil
}

func readFaceSet(r *bytes.Reader, frames, count uint32, perFrame bool, which string) (FaceSet, error) {
	readOne := func(frame int) (Faces, error) {
		faces := make(Faces, count)
		if err := binary.Read(r, binary.LittleEndian, faces); err != nil {
			if frame >= 0 {
				return nil, fmt.Errorf("%w: %s faces, frame %d", ErrTruncatedData, which, frame)
			}
			return nil, fmt.Errorf("%w: %s faces", ErrTruncatedData, which)
		}
		return faces, nil
	}

	if !perFrame {
		faces, err := readOne(-1)
		if err != nil {
			return FaceSet{}, err
		}
		return FaceSet{Static: faces}, nil
	}

	sets := make([]Faces, frames)
	for f := range sets {
		faces, err := readOne(f)
		if err != nil {
			return FaceSet{}, err
		}
		sets[f] = faces
	}
	return FaceSet{PerFrame: sets}, nil
}
