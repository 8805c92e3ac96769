package viewer

// playback advances an animation clock at a fixed frame rate. The clock
// wraps around at the end of the sequence so playback loops.
type playback struct {
	fps    float64
	frames int

	playing bool
	pos     float64 // fractional frame position
}

// newPlayback returns a running clock at the given rate.
func newPlayback(fps, frames int) *playback {
	if fps <= 0 {
		fps = 30
	}
	return &playback{
		fps:     float64(fps),
		frames:  frames,
		playing: true,
	}
}

// Advance moves the clock by dt seconds and returns the current frame.
func (p *playback) Advance(dt float64) int {
	if p.playing {
		p.pos += dt * p.fps
		for p.pos >= float64(p.frames) {
			p.pos -= float64(p.frames)
		}
	}
	return p.Frame()
}

// Frame returns the current frame index.
func (p *playback) Frame() int {
	return int(p.pos)
}

// TogglePause flips between playing and paused.
func (p *playback) TogglePause() {
	p.playing = !p.playing
}

// Playing reports whether the clock is running.
func (p *playback) Playing() bool {
	return p.playing
}

// Step pauses playback and moves by delta frames, wrapping at both ends.
func (p *playback) Step(delta int) {
	p.playing = false
	f := (p.Frame() + delta) % p.frames
	if f < 0 {
		f += p.frames
	}
	p.pos = float64(f)
}
