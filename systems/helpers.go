package systems

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/components"
	"github.com/mossfell/mossfell/tags"
)

// Missing singletons degrade a system to a no-op for the frame. That must
// be observable but not spam: each message logs once per process.
var warned = map[string]bool{}

func warnOnce(key, format string, args ...any) {
	if warned[key] {
		return
	}
	warned[key] = true
	log.Printf(format, args...)
}

// clock returns the frame clock, or nil (with a one-time warning) when the
// singleton is missing.
func clock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		warnOnce("clock", "no clock singleton; systems idle this frame")
		return nil
	}
	return components.Clock.Get(entry)
}

// inputState returns the logical input singleton, or nil when missing.
func inputState(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		warnOnce("input", "no input singleton; treating all actions as released")
		return nil
	}
	return components.Input.Get(entry)
}

// mainCamera returns the camera entry, or nil when missing.
func mainCamera(e *ecs.ECS) *donburi.Entry {
	entry, ok := tags.MainCamera.First(e.World)
	if !ok {
		warnOnce("camera", "no main camera; camera systems skipped")
		return nil
	}
	return entry
}

// playerEntry returns the single player entry, or nil when missing (e.g.
// before spawn); systems skip their work for the frame.
func playerEntry(e *ecs.ECS) *donburi.Entry {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		warnOnce("player", "no player; locomotion systems skipped")
		return nil
	}
	return entry
}
