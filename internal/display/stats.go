package display

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	statsFontSize   = 20
	statsPadding    = 12
	statsLineHeight = statsFontSize + 4
	// statsInterval: only refresh the text every N frames to limit allocations.
	statsInterval = 30
)

// stats draws FPS and heap usage in the top-right corner when show is set.
type stats struct {
	show       bool
	frameCount uint32
	fpsText    string
	memText    string
	memStats   runtime.MemStats
}

// draw renders the overlay. Call after EndMode3D so it sits on top of the scene.
func (s *stats) draw() {
	if !s.show {
		return
	}
	s.frameCount++
	if s.frameCount%statsInterval == 0 || s.fpsText == "" {
		s.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		runtime.ReadMemStats(&s.memStats)
		s.memText = fmt.Sprintf("Mem: %.2f MiB", float64(s.memStats.Alloc)/(1024*1024))
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(statsPadding)
	for _, text := range []string{s.fpsText, s.memText} {
		x := screenW - rl.MeasureText(text, statsFontSize) - statsPadding
		rl.DrawText(text, x, y, statsFontSize, rl.Green)
		y += statsLineHeight
	}
}
