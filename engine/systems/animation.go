package systems

import (
	"github.com/spaghettifunk/donut/engine/resources"
)

// LoadAnimation keeps the decoded animation as is; playback lives with
// the caller.
func (rm *ResourceManager) LoadAnimation(a *resources.Animation) {
	logReplace(rm.animations, resources.CategoryAnimation, a.Name)
	rm.animations[a.Name] = a
}

func (rm *ResourceManager) GetAnimation(name string) (*resources.Animation, bool) {
	a, ok := rm.animations[name]
	return a, ok
}
