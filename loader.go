package willowxr

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// assetQueueCap bounds how many finished loads can wait for the next frame
// before loader goroutines block.
const assetQueueCap = 16

// ErrNilAsset is returned when a loader reports success without a node.
var ErrNilAsset = errors.New("willowxr: loader returned nil node")

// AssetLoader produces a scene-graph node for a named asset. Decoding
// (glTF, compressed meshes) is the loader's business; the core treats the
// result as opaque. Load may block and is always called off the frame thread.
type AssetLoader interface {
	Load(ctx context.Context, name string) (*Node, error)
}

// FuncLoader adapts a plain function to AssetLoader.
type FuncLoader func(ctx context.Context, name string) (*Node, error)

// Load calls f.
func (f FuncLoader) Load(ctx context.Context, name string) (*Node, error) {
	return f(ctx, name)
}

// PlaceholderLoader returns an empty model node named after the asset.
// Headless tools use it where no decoder is available.
var PlaceholderLoader = FuncLoader(func(ctx context.Context, name string) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return NewModel(name), nil
})

type assetResult struct {
	name    string
	node    *Node
	pos     mgl64.Vec3
	handler func(*Node)
	err     error
}

// LoadAsset starts loading name on a separate goroutine. When it finishes,
// the next Update adds the node to the world at pos and then calls handler
// (which may be nil). Load failures are logged and otherwise ignored. A load
// whose ctx ends while it waits for queue room is dropped.
func (s *Scene) LoadAsset(ctx context.Context, loader AssetLoader, name string, pos mgl64.Vec3, handler func(*Node)) {
	s.pendingAssets.Add(1)
	go func() {
		node, err := loader.Load(ctx, name)
		if err == nil && node == nil {
			err = ErrNilAsset
		}
		if err != nil {
			err = fmt.Errorf("load %s: %w", name, err)
		}
		select {
		case s.assets <- assetResult{name: name, node: node, pos: pos, handler: handler, err: err}:
		case <-ctx.Done():
			s.pendingAssets.Add(-1)
			select {
			case s.assetWake <- struct{}{}:
			default:
			}
		}
	}()
}

// PendingAssets returns how many LoadAsset calls have not been applied yet.
func (s *Scene) PendingAssets() int {
	return int(s.pendingAssets.Load())
}

// AwaitAssets blocks until every pending load has been applied or ctx ends.
// It must be called from the frame thread.
func (s *Scene) AwaitAssets(ctx context.Context) error {
	for s.pendingAssets.Load() > 0 {
		select {
		case r := <-s.assets:
			s.applyAsset(r)
		case <-s.assetWake:
		case <-ctx.Done():
			return fmt.Errorf("await assets: %w", ctx.Err())
		}
	}
	return nil
}

// drainAssets applies every load that has finished without blocking.
func (s *Scene) drainAssets() {
	for s.pendingAssets.Load() > 0 {
		select {
		case r := <-s.assets:
			s.applyAsset(r)
		default:
			return
		}
	}
}

func (s *Scene) applyAsset(r assetResult) {
	s.pendingAssets.Add(-1)
	if r.err != nil {
		s.logf("asset: %v", r.err)
		return
	}
	s.world.AddChild(r.node)
	r.node.SetPosition(r.pos)
	s.debugf("asset %s loaded at %v", r.name, r.pos)
	if r.handler != nil {
		r.handler(r.node)
	}
}
