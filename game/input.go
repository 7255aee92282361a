package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input during an episode.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// In manual mode Space is the flap key, so pause moves to P.
	pauseKey := int32(rl.KeySpace)
	if g.manual {
		pauseKey = rl.KeyP
	}
	if rl.IsKeyPressed(pauseKey) {
		g.paused = !g.paused
	}

	if !g.manual {
		// Steps-per-frame control with < > keys (comma and period)
		if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerFrame > 1 {
			g.stepsPerFrame--
		}
		if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerFrame < 10 {
			g.stepsPerFrame++
		}
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.resetEpisode()
	}

	if rl.IsKeyPressed(rl.KeyQ) {
		g.quit = true
	}

	if rl.IsKeyPressed(rl.KeyTab) && g.panel != nil {
		g.panel.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyN) && g.netView != nil {
		g.netView.Toggle()
	}
}

// applyPanelActions folds control-panel interaction back into game state.
func (g *Game) applyPanelActions(steps int, togglePause, restart bool) {
	if steps >= 1 && steps <= 10 {
		g.stepsPerFrame = steps
	}
	if togglePause {
		g.paused = !g.paused
	}
	if restart {
		g.resetEpisode()
	}
}
