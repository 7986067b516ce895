// Command gltfdump loads a glTF or GLB file and prints a summary report of
// its scenes, meshes, and materials. It is a demo, not part of the core
// library's tested surface.
package main

import (
	"fmt"
	"os"

	"github.com/kr/pretty"

	"github.com/oxygltf/gltf"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: gltfdump <file.gltf|file.glb>\n")
		os.Exit(2)
	}

	doc, err := gltf.Load(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "gltfdump: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("asset: version=%s generator=%q\n", doc.AssetVersion(), doc.AssetGenerator())
	fmt.Printf("scenes=%d nodes=%d meshes=%d primitives=%d accessors=%d materials=%d\n",
		doc.SceneCount(), doc.NodeCount(), doc.MeshCount(), doc.PrimitiveCount(),
		doc.AccessorCount(), doc.MaterialCount())

	sceneIdx := doc.DefaultScene()
	if sceneIdx < 0 && doc.SceneCount() > 0 {
		sceneIdx = 0
	}
	if sceneIdx >= 0 {
		cache := gltf.NewWorldCache(doc)
		if err := cache.Compute(sceneIdx); err != nil {
			fmt.Printf("gltf: world compute for scene %d: %v\n", sceneIdx, err)
		} else {
			dumpScene(doc, cache, sceneIdx)
		}
	}

	for mi := 0; mi < doc.MeshCount(); mi++ {
		for _, pi := range doc.MeshPrimitives(mi) {
			prim, _ := doc.Primitive(pi)
			if prim.Material < 0 {
				continue
			}
			mat, _ := doc.Material(prim.Material)
			fmt.Printf("mesh %d prim %d material: %# v\n", mi, pi, pretty.Formatter(mat))
		}
	}
}

func dumpScene(doc *gltf.Document, cache *gltf.WorldCache, sceneIdx int) {
	fmt.Printf("scene %d %q roots=%v\n", sceneIdx, doc.SceneName(sceneIdx), doc.SceneRoots(sceneIdx))
	for _, root := range doc.SceneRoots(sceneIdx) {
		dumpNode(doc, cache, root, 1)
	}
}

func dumpNode(doc *gltf.Document, cache *gltf.WorldCache, nodeIdx, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	world, ok := cache.WorldMatrix(nodeIdx)
	if !ok {
		fmt.Printf("%snode %d %q: world matrix not computed\n", indent, nodeIdx, doc.NodeName(nodeIdx))
		return
	}
	fmt.Printf("%snode %d %q world translation=(%.3f, %.3f, %.3f)\n",
		indent, nodeIdx, doc.NodeName(nodeIdx), world[12], world[13], world[14])
	for _, child := range doc.NodeChildren(nodeIdx) {
		dumpNode(doc, cache, child, depth+1)
	}
}
