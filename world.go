package gltf

// WorldCache holds per-node world matrices computed for one scene. It is
// created for a particular Document and reused across Compute calls;
// computing a new scene resets every node's visitation state. The cache is
// owned by the caller and must not be shared across goroutines without
// external synchronization.
type WorldCache struct {
	doc    *Document
	matrix [][16]float32
	state  []nodeState
	scene  int
	valid  bool
}

// NewWorldCache allocates a cache sized to doc's current node count.
func NewWorldCache(doc *Document) *WorldCache {
	n := doc.NodeCount()
	return &WorldCache{
		doc:    doc,
		matrix: make([][16]float32, n),
		state:  make([]nodeState, n),
		scene:  -1,
	}
}

// localMatrix composes a node's local transform: the explicit matrix when
// present, else column-major T·R·S from its TRS fields.
func localMatrix(n Node) [16]float32 {
	if n.HasMatrix {
		return n.Matrix
	}

	x, y, z, w := n.Rotation[0], n.Rotation[1], n.Rotation[2], n.Rotation[3]

	r00 := 1 - 2*(y*y+z*z)
	r01 := 2 * (x*y - w*z)
	r02 := 2 * (x*z + w*y)
	r10 := 2 * (x*y + w*z)
	r11 := 1 - 2*(x*x+z*z)
	r12 := 2 * (y*z - w*x)
	r20 := 2 * (x*z - w*y)
	r21 := 2 * (y*z + w*x)
	r22 := 1 - 2*(x*x+y*y)

	sx, sy, sz := n.Scale[0], n.Scale[1], n.Scale[2]

	var m [16]float32
	m[0], m[1], m[2], m[3] = r00*sx, r10*sx, r20*sx, 0
	m[4], m[5], m[6], m[7] = r01*sy, r11*sy, r21*sy, 0
	m[8], m[9], m[10], m[11] = r02*sz, r12*sz, r22*sz, 0
	m[12], m[13], m[14], m[15] = n.Translation[0], n.Translation[1], n.Translation[2], 1
	return m
}

// mulMatrix returns a·b in column-major 4x4 layout (a applied after b, i.e.
// a is the parent world matrix and b is the child local matrix — the
// result is parent_world · local).
func mulMatrix(a, b [16]float32) [16]float32 {
	var out [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// dfsFrame is one entry of the explicit traversal stack: the node being
// visited, its already-computed world matrix, and how many of its children
// have been pushed so far.
type dfsFrame struct {
	node       int
	world      [16]float32
	nextChild  int
}

// Compute evaluates world matrices for every node reachable from
// scene sceneIndex's root nodes, via an iterative DFS with cycle
// detection. It resets all per-node state before walking.
func (c *WorldCache) Compute(sceneIndex int) error {
	if sceneIndex < 0 || sceneIndex >= c.doc.SceneCount() {
		return rangeErrf(elemPath("root.scenes", sceneIndex), "scene index out of range")
	}

	for i := range c.state {
		c.state[i] = stateUnvisited
	}
	c.valid = false
	c.scene = sceneIndex

	roots := c.doc.SceneRoots(sceneIndex)
	for _, root := range roots {
		if root < 0 || root >= len(c.state) {
			return parseErrf(elemPath("root.scenes", sceneIndex)+".nodes", "root node index %d out of range", root)
		}
		if err := c.walkFrom(root, identityMatrix()); err != nil {
			return err
		}
	}

	c.valid = true
	return nil
}

func (c *WorldCache) walkFrom(root int, parentWorld [16]float32) error {
	if c.state[root] == stateDone {
		return nil
	}

	node, _ := c.doc.Node(root)
	stack := []dfsFrame{{node: root, world: mulMatrix(parentWorld, localMatrix(node))}}
	c.state[root] = stateVisiting
	c.matrix[root] = stack[0].world

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := c.doc.NodeChildren(top.node)

		if top.nextChild >= len(children) {
			c.state[top.node] = stateDone
			stack = stack[:len(stack)-1]
			continue
		}

		child := children[top.nextChild]
		top.nextChild++

		if child < 0 || child >= len(c.state) {
			return parseErrf(elemPath("root.nodes", top.node)+".children", "child index %d out of range", child)
		}
		switch c.state[child] {
		case stateVisiting:
			return parseErrf(elemPath("root.nodes", child), "cycle detected in scene graph")
		case stateDone:
			continue
		}

		childNode, _ := c.doc.Node(child)
		childWorld := mulMatrix(top.world, localMatrix(childNode))
		c.matrix[child] = childWorld
		c.state[child] = stateVisiting
		stack = append(stack, dfsFrame{node: child, world: childWorld})
	}
	return nil
}

// WorldMatrix returns node i's computed world matrix and true, or the zero
// matrix and false when the cache is invalid or the node was never
// reached from the computed scene's roots.
func (c *WorldCache) WorldMatrix(i int) ([16]float32, bool) {
	if !c.valid || i < 0 || i >= len(c.state) || c.state[i] != stateDone {
		return [16]float32{}, false
	}
	return c.matrix[i], true
}

func identityMatrix() [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
