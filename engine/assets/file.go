package assets

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"

	"github.com/spaghettifunk/donut/engine/assets/loaders"
	"github.com/spaghettifunk/donut/engine/core"
	"github.com/spaghettifunk/donut/engine/p3d"
	"github.com/spaghettifunk/donut/engine/systems"
)

/** @brief A parsed and decoded P3D file. */
type File struct {
	Path string
	/** @brief xxhash of the file contents. */
	Checksum uint64
	Root     *p3d.Chunk
	Decoded  []Decoded
}

/**
 * @brief Reads, parses and decodes P3D files, keeping count of what went
 * through it.
 */
type AssetLoader struct {
	registry *loaders.Registry
	jobs     *systems.JobSystem
	metrics  *core.LoadMetrics
}

/**
 * @brief Creates a loader. A nil registry uses loaders.NewRegistry, a nil
 * job system decodes on the calling goroutine and a nil metrics value
 * gets a private one.
 */
func NewAssetLoader(registry *loaders.Registry, js *systems.JobSystem, metrics *core.LoadMetrics) *AssetLoader {
	if registry == nil {
		registry = loaders.NewRegistry()
	}
	if metrics == nil {
		metrics = &core.LoadMetrics{}
	}
	return &AssetLoader{registry: registry, jobs: js, metrics: metrics}
}

func (l *AssetLoader) Metrics() *core.LoadMetrics {
	return l.metrics
}

/**
 * @brief Loads one file. A file that cannot be read or parsed returns a
 * nil File. Chunk decode failures return the File with every asset that
 * did decode, together with the combined failures.
 */
func (l *AssetLoader) LoadFile(path string) (*File, error) {
	l.metrics.Files.Add(1)

	data, err := os.ReadFile(path)
	if err != nil {
		l.metrics.FailedFiles.Add(1)
		return nil, err
	}
	l.metrics.Bytes.Add(int64(len(data)))

	root, err := p3d.LoadFile(data)
	if err != nil {
		l.metrics.FailedFiles.Add(1)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l.metrics.Chunks.Add(int64(root.Count()))

	f := &File{Path: path, Checksum: xxhash.Sum64(data), Root: root}
	if l.jobs != nil && l.jobs.Workers() > 1 {
		f.Decoded, err = DecodeConcurrent(root, l.registry, l.jobs)
	} else {
		f.Decoded, err = DecodeKnownChunks(root, l.registry)
	}

	for _, d := range f.Decoded {
		if d.Raw() {
			l.metrics.Unrecognized.Add(1)
		} else {
			l.metrics.Decoded.Add(1)
		}
	}
	if err != nil {
		failures := multierr.Errors(err)
		l.metrics.DecodeFailures.Add(int64(len(failures)))
		for _, e := range failures {
			core.LogWarn("%s: %s", path, e)
		}
		return f, fmt.Errorf("%s: %w", path, err)
	}

	core.LogDebug("loaded %s: %d chunks, %d top level", path, root.Count(), len(root.Children))
	return f, nil
}

// LoadP3DFile loads one file with the default registry on the calling
// goroutine.
func LoadP3DFile(path string) (*File, error) {
	return NewAssetLoader(nil, nil, nil).LoadFile(path)
}
