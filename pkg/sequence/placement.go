// Package sequence turns raw rollout arrays into renderable mesh sequences:
// it places geometry on a shared floor plane, mutes display colors, and tags
// the result with names and opacities.
package sequence

import (
	"github.com/clothsim-tools/rolloutview/pkg/math"
)

// hoverMargin keeps a cloth with no obstacle visibly above the implicit
// floor instead of resting on it.
const hoverMargin = 2

// Place translates cloth and obstacle geometry onto the floor plane and then
// shifts both horizontally by xShift (X axis) and yShift (Z axis). Y is up.
//
// The floor offset is the minimum Y over all obstacle frames and the first
// cloth frame when an obstacle is present. Without an obstacle it is the
// minimum Y of cloth frame 0 minus hoverMargin. Later cloth frames may dip
// below the floor; the offset is fixed at frame 0 so the floor itself never
// animates.
//
// Inputs are not mutated. A nil obstacle passes through as nil.
func Place(cloth, obstacle [][]math.Vec3, xShift, yShift float32) ([][]math.Vec3, [][]math.Vec3) {
	floorOffset := minY(cloth[0])
	if obstacle != nil {
		for _, frame := range obstacle {
			if m := minY(frame); m < floorOffset {
				floorOffset = m
			}
		}
	} else {
		floorOffset -= hoverMargin
	}

	shift := func(frames [][]math.Vec3) [][]math.Vec3 {
		out := make([][]math.Vec3, len(frames))
		for f, frame := range frames {
			placed := make([]math.Vec3, len(frame))
			for i, p := range frame {
				placed[i] = math.Vec3{
					X: p.X + xShift,
					Y: p.Y - floorOffset,
					Z: p.Z + yShift,
				}
			}
			out[f] = placed
		}
		return out
	}

	placedCloth := shift(cloth)
	if obstacle == nil {
		return placedCloth, nil
	}
	return placedCloth, shift(obstacle)
}

func minY(frame []math.Vec3) float32 {
	m := frame[0].Y
	for _, p := range frame[1:] {
		if p.Y < m {
			m = p.Y
		}
	}
	return m
}
