package assets

import (
	"sync"

	"go.uber.org/multierr"

	"github.com/spaghettifunk/donut/engine/assets/loaders"
	"github.com/spaghettifunk/donut/engine/p3d"
	"github.com/spaghettifunk/donut/engine/resources"
	"github.com/spaghettifunk/donut/engine/systems"
)

/** @brief One top level chunk of a file and what it decoded to. */
type Decoded struct {
	Chunk *p3d.Chunk
	Asset resources.Asset
}

func (d Decoded) Category() resources.Category {
	return d.Asset.Category()
}

// Raw reports whether no decoder knew the chunk.
func (d Decoded) Raw() bool {
	_, ok := d.Asset.(*resources.RawChunk)
	return ok
}

/**
 * @brief Decodes every child of root in file order. A chunk that fails to
 * decode is left out of the result and its error is combined into the
 * returned error, so callers get every asset that did decode together
 * with every failure.
 */
func DecodeKnownChunks(root *p3d.Chunk, registry *loaders.Registry) ([]Decoded, error) {
	out := make([]Decoded, 0, len(root.Children))
	var errs error
	for _, c := range root.Children {
		asset, err := registry.Decode(c)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, Decoded{Chunk: c, Asset: asset})
	}
	return out, errs
}

/**
 * @brief Same as DecodeKnownChunks, with each chunk decoded as its own job
 * on js. The result keeps file order and the call returns once every
 * chunk is done.
 */
func DecodeConcurrent(root *p3d.Chunk, registry *loaders.Registry, js *systems.JobSystem) ([]Decoded, error) {
	n := len(root.Children)
	results := make([]resources.Asset, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i, c := range root.Children {
		js.Submit(systems.JobTask{
			Run: func() error {
				asset, err := registry.Decode(c)
				results[i] = asset
				return err
			},
			OnFailure:            func(err error) { errs[i] = err },
			OnCompletionCallback: wg.Done,
		})
	}
	wg.Wait()

	out := make([]Decoded, 0, n)
	for i, c := range root.Children {
		if errs[i] == nil {
			out = append(out, Decoded{Chunk: c, Asset: results[i]})
		}
	}
	return out, multierr.Combine(errs...)
}

// Assets drops the chunks, keeping the order.
func Assets(decoded []Decoded) []resources.Asset {
	out := make([]resources.Asset, len(decoded))
	for i, d := range decoded {
		out[i] = d.Asset
	}
	return out
}
