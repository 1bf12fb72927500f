package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/components"
)

// UpdateBusy ticks every Busy marker and removes it once its timer
// finishes. This is the only way a Busy marker is cleared.
func UpdateBusy(e *ecs.ECS) {
	c := clock(e)
	if c == nil {
		return
	}

	var finished []*donburi.Entry
	components.Busy.Each(e.World, func(entry *donburi.Entry) {
		busy := components.Busy.Get(entry)
		busy.Timer.Tick(c.DeltaDuration())
		if busy.Timer.Finished() {
			finished = append(finished, entry)
		}
	})
	for _, entry := range finished {
		entry.RemoveComponent(components.Busy)
	}
}

// UpdateLanding ticks every Landing marker and removes it once its timer
// finishes, ending the post-landing turn-speed boost.
func UpdateLanding(e *ecs.ECS) {
	c := clock(e)
	if c == nil {
		return
	}

	var finished []*donburi.Entry
	components.Landing.Each(e.World, func(entry *donburi.Entry) {
		landing := components.Landing.Get(entry)
		landing.Timer.Tick(c.DeltaDuration())
		if landing.Timer.Finished() {
			finished = append(finished, entry)
		}
	})
	for _, entry := range finished {
		entry.RemoveComponent(components.Landing)
	}
}
