package layout

import "go.uber.org/atomic"

// SurfaceID is an opaque handle for a registered surface. Holders of an ID
// own nothing; the surface may be removed underneath them, and lookups on a
// stale ID simply fail.
type SurfaceID int64

// SurfaceNone is the zero handle. A surface registered with SurfaceNone as
// parent is a root (a window / screen).
const SurfaceNone SurfaceID = 0

var nextSurfaceID = atomic.NewInt64(0)

type surfaceNode struct {
	parent SurfaceID
	frame  Rect
}

// Registry tracks surfaces and their frames, each frame expressed in the
// parent surface's coordinate space. All methods must be called from the UI
// thread; the registry is deliberately unsynchronized.
type Registry struct {
	surfaces map[SurfaceID]surfaceNode
}

func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[SurfaceID]surfaceNode)}
}

// Register adds a surface under parent and returns its handle. Pass
// SurfaceNone to register a root surface.
func (r *Registry) Register(parent SurfaceID, frame Rect) SurfaceID {
	id := SurfaceID(nextSurfaceID.Inc())
	r.surfaces[id] = surfaceNode{parent: parent, frame: frame}
	return id
}

// Update replaces a surface's frame. Unknown IDs are ignored.
func (r *Registry) Update(id SurfaceID, frame Rect) {
	node, ok := r.surfaces[id]
	if !ok {
		return
	}
	node.frame = frame
	r.surfaces[id] = node
}

// Remove forgets a surface. Children are not cascaded; a child whose parent
// is gone fails conversion, which is the intended degraded outcome.
func (r *Registry) Remove(id SurfaceID) {
	delete(r.surfaces, id)
}

func (r *Registry) Contains(id SurfaceID) bool {
	_, ok := r.surfaces[id]
	return ok
}

// Frame returns the surface's frame in its parent's coordinates.
func (r *Registry) Frame(id SurfaceID) (Rect, bool) {
	node, ok := r.surfaces[id]
	return node.frame, ok
}

// toRoot walks the parent chain, accumulating the surface's origin in root
// coordinates. The depth cap guards against a miswired parent cycle.
func (r *Registry) toRoot(id SurfaceID) (root SurfaceID, origin Point, ok bool) {
	const maxDepth = 64

	cur := id
	for depth := 0; depth < maxDepth; depth++ {
		node, found := r.surfaces[cur]
		if !found {
			return SurfaceNone, Point{}, false
		}
		origin.X += node.frame.X
		origin.Y += node.frame.Y
		if node.parent == SurfaceNone {
			return cur, origin, true
		}
		cur = node.parent
	}
	return SurfaceNone, Point{}, false
}

// Convert maps a rectangle from one surface's local coordinates to
// another's, routing through their common root. It reports ok=false when
// either surface is unknown or the two do not share a root (which can
// happen transiently during window transitions); callers are expected to
// skip positioning rather than fail.
func (r *Registry) Convert(rect Rect, from, to SurfaceID) (Rect, bool) {
	fromRoot, fromOrigin, ok := r.toRoot(from)
	if !ok {
		return rect, false
	}
	toRoot, toOrigin, ok := r.toRoot(to)
	if !ok || fromRoot != toRoot {
		return rect, false
	}
	return rect.Offset(fromOrigin.X-toOrigin.X, fromOrigin.Y-toOrigin.Y), true
}
