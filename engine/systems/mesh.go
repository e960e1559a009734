package systems

import (
	"github.com/spaghettifunk/donut/engine/renderer/metadata"
	"github.com/spaghettifunk/donut/engine/resources"
)

func (rm *ResourceManager) LoadGeometry(g *resources.Geometry) {
	logReplace(rm.meshes, resources.CategoryMesh, g.Name)
	rm.meshes[g.Name] = metadata.NewMesh(g)
}

// GetGeometry returns the mesh stored under name. There is no fallback
// mesh; callers skip drawing what is missing.
func (rm *ResourceManager) GetGeometry(name string) (*metadata.Mesh, bool) {
	m, ok := rm.meshes[name]
	return m, ok
}
