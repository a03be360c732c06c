package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/censorbox/internal/audio"
	"github.com/vovakirdan/censorbox/internal/config"
	"github.com/vovakirdan/censorbox/internal/core"
	"github.com/vovakirdan/censorbox/internal/round"
	"github.com/vovakirdan/censorbox/internal/storage"
)

// Env bundles the collaborators shared by the boot screen, the menu and the device.
type Env struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables persistence
	Logger  *log.Logger
	Cues    round.Emitter // Sink for round cues
	Mute    *audio.Switch // Mute switch inside Cues, toggled by the player
}

// muted reports the current mute state.
func (e *Env) muted() bool {
	return e.Mute != nil && e.Mute.Muted()
}

// toggleMute flips the mute switch and persists the new state.
func (e *Env) toggleMute() {
	if e.Mute == nil {
		return
	}
	muted := e.Mute.Toggle()
	e.logger().Info("mute toggled", "muted", muted)
	if e.Store == nil {
		return
	}
	if err := e.Store.SetMuted(muted); err != nil {
		e.logger().Warn("could not save mute preference", "err", err)
	}
}

// rememberDifficulty persists the last selected difficulty.
func (e *Env) rememberDifficulty(name string) {
	if e.Store == nil {
		return
	}
	if err := e.Store.SetLastDifficulty(name); err != nil {
		e.logger().Warn("could not save difficulty", "err", err)
	}
}

// lastDifficulty returns the stored difficulty, or "" if none or unavailable.
func (e *Env) lastDifficulty() string {
	if e.Store == nil {
		return ""
	}
	name, err := e.Store.LastDifficulty()
	if err != nil {
		e.logger().Warn("could not read difficulty", "err", err)
		return ""
	}
	return name
}

// cues returns the cue sink, never nil.
func (e *Env) cues() round.Emitter {
	if e.Cues == nil {
		return round.Discard
	}
	return e.Cues
}

func (e *Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.Default()
	}
	return e.Logger
}
