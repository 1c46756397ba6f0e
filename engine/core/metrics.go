package core

import "time"

const AVG_COUNT uint8 = 30

// FrameStats keeps a rolling average of the last AVG_COUNT frame times and
// a frames-per-second counter refreshed once per accumulated second. Until
// the first second has accumulated, fps is estimated from the average.
type FrameStats struct {
	frameAVGCounter    uint8
	msTimes            [AVG_COUNT]float64
	msAvg              float64
	samples            int
	frames             int32
	accumulatedFrameMS float64
	fps                float64
	measured           bool
	total              int
}

func NewFrameStats() *FrameStats {
	return &FrameStats{}
}

func (s *FrameStats) Update(frameElapsed time.Duration) {
	// Calculate frame ms average
	frameMS := float64(frameElapsed) / float64(time.Millisecond)
	s.msTimes[s.frameAVGCounter] = frameMS
	if s.samples < int(AVG_COUNT) {
		s.samples++
	}
	sum := 0.0
	for i := 0; i < s.samples; i++ {
		sum += s.msTimes[i]
	}
	s.msAvg = sum / float64(s.samples)

	s.frameAVGCounter++
	s.frameAVGCounter %= AVG_COUNT

	// Calculate Frames per second.
	s.accumulatedFrameMS += frameMS
	s.frames++
	if s.accumulatedFrameMS >= 1000 {
		s.fps = float64(s.frames)
		s.measured = true
		s.accumulatedFrameMS -= 1000
		s.frames = 0
	} else if !s.measured && s.msAvg > 0 {
		s.fps = 1000 / s.msAvg
	}

	s.total++
}

func (s *FrameStats) FPS() float64 {
	return s.fps
}

// FrameTime returns the average frame time in milliseconds.
func (s *FrameStats) FrameTime() float64 {
	return s.msAvg
}

func (s *FrameStats) Frames() int {
	return s.total
}

func (s *FrameStats) Frame() (float64, float64) {
	return s.fps, s.msAvg
}
