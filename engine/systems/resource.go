package systems

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"github.com/spaghettifunk/donut/engine/core"
	"github.com/spaghettifunk/donut/engine/renderer/metadata"
	"github.com/spaghettifunk/donut/engine/resources"
)

/** @brief The configuration for the resource manager */
type ResourceManagerConfig struct {
	/**
	 * @brief Source used to pick a candidate of every texture set. Nil
	 * seeds a source from the clock.
	 */
	Rand *rand.Rand
}

/**
 * @brief Owns every loaded resource in name keyed tables, one per
 * category. Loading replaces an entry with the same name. Lookups never
 * fail: missing textures resolve to the error texture and every other
 * category reports absence.
 *
 * A ResourceManager has a single owner and is not safe for concurrent
 * use. Decode on any number of goroutines, then load from the owner.
 */
type ResourceManager struct {
	rand         *rand.Rand
	errorTexture *metadata.Texture

	textures   map[string]*metadata.Texture
	shaders    map[string]*metadata.Shader
	meshes     map[string]*metadata.Mesh
	fonts      map[string]*metadata.Font
	animations map[string]*resources.Animation
}

/** @brief Number of entries held per table. */
type ResourceStats struct {
	Textures   int
	Shaders    int
	Meshes     int
	Fonts      int
	Animations int
}

func (s ResourceStats) String() string {
	return fmt.Sprintf("textures=%d shaders=%d meshes=%d fonts=%d animations=%d",
		s.Textures, s.Shaders, s.Meshes, s.Fonts, s.Animations)
}

func NewResourceManager(config *ResourceManagerConfig) *ResourceManager {
	rm := &ResourceManager{
		errorTexture: metadata.NewErrorTexture(),
		textures:     make(map[string]*metadata.Texture),
		shaders:      make(map[string]*metadata.Shader),
		meshes:       make(map[string]*metadata.Mesh),
		fonts:        make(map[string]*metadata.Font),
		animations:   make(map[string]*resources.Animation),
	}

	if config != nil && config.Rand != nil {
		rm.rand = config.Rand
	} else {
		rm.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	core.LogDebug("Resource manager initialized.")
	return rm
}

// NewSeededRand returns a source for ResourceManagerConfig. The same seed
// picks the same set candidates on every run.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

/**
 * @brief Loads a decoded asset into the table of its category. Texture
 * sets and sprites end up in the texture table.
 * @return core.ErrUnknownAsset for assets no table holds, such as raw
 * chunks.
 */
func (rm *ResourceManager) LoadAsset(asset resources.Asset) error {
	switch a := asset.(type) {
	case *resources.Texture:
		rm.LoadTexture(a)
	case *resources.Set:
		rm.LoadSet(a)
	case *resources.Sprite:
		rm.LoadSprite(a)
	case *resources.Shader:
		rm.LoadShader(a)
	case *resources.Geometry:
		rm.LoadGeometry(a)
	case *resources.Font:
		rm.LoadFont(a)
	case *resources.Animation:
		rm.LoadAnimation(a)
	default:
		return fmt.Errorf("%w: %T (%s)", core.ErrUnknownAsset, asset, asset.Category())
	}
	return nil
}

/**
 * @brief Loads every asset in order and returns how many were stored.
 * Assets without a table are skipped.
 */
func (rm *ResourceManager) LoadAssets(assets []resources.Asset) int {
	loaded := 0
	for _, a := range assets {
		if err := rm.LoadAsset(a); err != nil {
			core.LogDebug("skipping asset: %s", err)
			continue
		}
		loaded++
	}
	return loaded
}

/**
 * @brief Looks a resource up by category and name.
 * @return core.ErrNotFound when the table has no such entry, including
 * for textures.
 */
func (rm *ResourceManager) Lookup(category resources.Category, name string) (interface{}, error) {
	var (
		res interface{}
		ok  bool
	)
	switch category {
	case resources.CategoryTexture:
		res, ok = rm.textures[name]
	case resources.CategoryShader:
		res, ok = rm.GetShader(name)
	case resources.CategoryMesh:
		res, ok = rm.meshes[name]
	case resources.CategoryFont:
		res, ok = rm.fonts[name]
	case resources.CategoryAnimation:
		res, ok = rm.animations[name]
	default:
		return nil, fmt.Errorf("%w: category %s", core.ErrUnknownAsset, category)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", core.ErrNotFound, category, name)
	}
	return res, nil
}

func (rm *ResourceManager) Stats() ResourceStats {
	return ResourceStats{
		Textures:   len(rm.textures),
		Shaders:    len(rm.shaders),
		Meshes:     len(rm.meshes),
		Fonts:      len(rm.fonts),
		Animations: len(rm.animations),
	}
}

// Names lists the entries of one table in sorted order.
func (rm *ResourceManager) Names(category resources.Category) []string {
	var names []string
	switch category {
	case resources.CategoryTexture:
		names = keys(rm.textures)
	case resources.CategoryShader:
		names = keys(rm.shaders)
	case resources.CategoryMesh:
		names = keys(rm.meshes)
	case resources.CategoryFont:
		names = keys(rm.fonts)
	case resources.CategoryAnimation:
		names = keys(rm.animations)
	}
	slices.Sort(names)
	return names
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func logReplace[V any](table map[string]V, category resources.Category, name string) {
	if _, ok := table[name]; ok {
		core.LogDebug("replacing %s %s", category, name)
	}
}
