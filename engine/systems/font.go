package systems

import (
	"github.com/spaghettifunk/donut/engine/renderer/metadata"
	"github.com/spaghettifunk/donut/engine/resources"
)

func (rm *ResourceManager) LoadFont(f *resources.Font) {
	rm.AddFont(metadata.NewFont(f))
}

func (rm *ResourceManager) AddFont(f *metadata.Font) {
	logReplace(rm.fonts, resources.CategoryFont, f.Name)
	rm.fonts[f.Name] = f
}

func (rm *ResourceManager) GetFont(name string) (*metadata.Font, bool) {
	f, ok := rm.fonts[name]
	return f, ok
}
