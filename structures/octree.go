// Package structures implements physim's spatial index: a node-array
// octree used to accelerate point-location and sphere-range queries
// over a cloud of points or a triangle soup's centroids, grounded in
// physim's original structures/octree module.
//
// Unlike the original's pointer-linked node tree, this octree stores
// its nodes in a single flat slice and refers to children by index,
// avoiding one heap allocation per node and keeping the whole
// structure contiguous for cache-friendly traversal.
package structures

import "github.com/lluisalemanypuig/physim/math/lin"

// DefaultLOD is the level-of-detail threshold used when a caller does
// not supply one: a cell holding this many or fewer items is never
// subdivided further.
const DefaultLOD = 8

const maxDepth = 32

// noChild marks an absent child slot in node.children.
const noChild = -1

type node struct {
	min, max lin.V3
	idxs     []int
	leaf     bool
	children [8]int
}

// Octree partitions a fixed set of reference points (one per item,
// e.g. a vertex or a triangle centroid) into at most 8 children per
// cell, recursively, down to a level-of-detail threshold.
type Octree struct {
	points []lin.V3
	lod    int
	nodes  []node
}

// New partitions the given points directly: index i of the octree
// corresponds to points[i].
func New(points []lin.V3, lod int) *Octree {
	if lod <= 0 {
		lod = DefaultLOD
	}
	o := &Octree{points: points, lod: lod}
	idxs := make([]int, len(points))
	for i := range idxs {
		idxs[i] = i
	}
	min, max := bounds(points, idxs)
	o.build(min, max, idxs, 0)
	return o
}

// NewFromTriangles partitions a triangle soup by each triangle's
// centroid: vertices holds the unique vertex positions and tris holds
// vertex indices, three per triangle. The octree's item index i then
// refers to the i-th triangle (vertices tris[3i], tris[3i+1],
// tris[3i+2]).
func NewFromTriangles(vertices []lin.V3, tris []int, lod int) *Octree {
	n := len(tris) / 3
	centroids := make([]lin.V3, n)
	for i := 0; i < n; i++ {
		a := vertices[tris[3*i]]
		b := vertices[tris[3*i+1]]
		c := vertices[tris[3*i+2]]
		centroids[i] = a.Add(b).Add(c).Scale(1.0 / 3.0)
	}
	return New(centroids, lod)
}

func bounds(points []lin.V3, idxs []int) (lin.V3, lin.V3) {
	min, max := points[idxs[0]], points[idxs[0]]
	for _, i := range idxs[1:] {
		min = min.Min(points[i])
		max = max.Max(points[i])
	}
	return min, max
}

// build appends a node covering idxs within [min,max] and returns its
// index in o.nodes.
func (o *Octree) build(min, max lin.V3, idxs []int, depth int) int {
	idx := len(o.nodes)
	o.nodes = append(o.nodes, node{min: min, max: max})

	if len(idxs) <= o.lod || depth >= maxDepth {
		o.nodes[idx].leaf = true
		o.nodes[idx].idxs = idxs
		for i := range o.nodes[idx].children {
			o.nodes[idx].children[i] = noChild
		}
		return idx
	}

	center := min.Add(max).Scale(0.5)
	var buckets [8][]int
	for _, i := range idxs {
		k := octant(center, o.points[i])
		buckets[k] = append(buckets[k], i)
	}

	var children [8]int
	anyEmpty := false
	for k := 0; k < 8; k++ {
		if len(buckets[k]) == 0 {
			children[k] = noChild
			continue
		}
		if len(buckets[k]) == len(idxs) {
			// this split did not separate anything: stop to avoid
			// infinite recursion on coincident points.
			anyEmpty = true
			break
		}
		cmin, cmax := octantBounds(min, max, center, k)
		children[k] = o.build(cmin, cmax, buckets[k], depth+1)
	}
	if anyEmpty {
		o.nodes = o.nodes[:idx+1]
		o.nodes[idx].leaf = true
		o.nodes[idx].idxs = idxs
		for i := range o.nodes[idx].children {
			o.nodes[idx].children[i] = noChild
		}
		return idx
	}

	o.nodes[idx].children = children
	return idx
}

// octant returns which of the 8 octants around center p falls into.
func octant(center, p lin.V3) int {
	k := 0
	if p.X >= center.X {
		k |= 1
	}
	if p.Y >= center.Y {
		k |= 2
	}
	if p.Z >= center.Z {
		k |= 4
	}
	return k
}

func octantBounds(min, max, center lin.V3, k int) (lin.V3, lin.V3) {
	cmin, cmax := min, max
	if k&1 != 0 {
		cmin.X = center.X
	} else {
		cmax.X = center.X
	}
	if k&2 != 0 {
		cmin.Y = center.Y
	} else {
		cmax.Y = center.Y
	}
	if k&4 != 0 {
		cmin.Z = center.Z
	} else {
		cmax.Z = center.Z
	}
	return cmin, cmax
}

func overlapsSphere(min, max, c lin.V3, r float32) bool {
	d2 := float32(0)
	if c.X < min.X {
		d2 += (min.X - c.X) * (min.X - c.X)
	} else if c.X > max.X {
		d2 += (c.X - max.X) * (c.X - max.X)
	}
	if c.Y < min.Y {
		d2 += (min.Y - c.Y) * (min.Y - c.Y)
	} else if c.Y > max.Y {
		d2 += (c.Y - max.Y) * (c.Y - max.Y)
	}
	if c.Z < min.Z {
		d2 += (min.Z - c.Z) * (min.Z - c.Z)
	} else if c.Z > max.Z {
		d2 += (c.Z - max.Z) * (c.Z - max.Z)
	}
	return d2 <= r*r
}

// IndicesForPoint returns the (not necessarily unique) indices stored
// in the cell containing p. If p falls outside the octree's overall
// bounds, the indices of the nearest boundary cell on its path are
// still returned: the search simply follows the octant p would belong
// to at each level.
func (o *Octree) IndicesForPoint(p lin.V3) []int {
	if len(o.nodes) == 0 {
		return nil
	}
	i := 0
	for {
		n := &o.nodes[i]
		if n.leaf {
			return n.idxs
		}
		center := n.min.Add(n.max).Scale(0.5)
		k := octant(center, p)
		if n.children[k] == noChild {
			// empty octant: return every index stored under this cell
			// instead of nothing, since queries must never
			// under-approximate.
			return o.nearestPopulatedLeaf(i)
		}
		i = n.children[k]
	}
}

func (o *Octree) nearestPopulatedLeaf(i int) []int {
	n := &o.nodes[i]
	if n.leaf {
		return n.idxs
	}
	var out []int
	for _, c := range n.children {
		if c == noChild {
			continue
		}
		out = append(out, o.nearestPopulatedLeaf(c)...)
	}
	return out
}

// IndicesInSphere returns the (not necessarily unique) indices stored
// in every cell that overlaps the sphere of radius r centered at p.
// The result may over-approximate (include items of a cell that
// overlaps the sphere but that themselves lie outside it) but never
// under-approximates.
func (o *Octree) IndicesInSphere(p lin.V3, r float32) []int {
	if len(o.nodes) == 0 {
		return nil
	}
	var out []int
	o.collectSphere(0, p, r, &out)
	return out
}

func (o *Octree) collectSphere(i int, p lin.V3, r float32, out *[]int) {
	n := &o.nodes[i]
	if !overlapsSphere(n.min, n.max, p, r) {
		return
	}
	if n.leaf {
		*out = append(*out, n.idxs...)
		return
	}
	for _, c := range n.children {
		if c != noChild {
			o.collectSphere(c, p, r, out)
		}
	}
}

// Box is an axis-aligned bounding box, exposed for debug introspection
// (Boxes) without pulling in the geometry package.
type Box struct {
	Min, Max lin.V3
}

// Boxes returns the bounding box of every cell in the tree, matching
// physim's get_boxes debug accessor.
func (o *Octree) Boxes() []Box {
	boxes := make([]Box, len(o.nodes))
	for i, n := range o.nodes {
		boxes[i] = Box{Min: n.min, Max: n.max}
	}
	return boxes
}
