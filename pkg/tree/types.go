// Package tree derives a hierarchical folder/file view from the flat record
// collection. The tree is recomputed on every render and never persisted.
package tree

import "github.com/miniide/miniide-cli/pkg/models"

// Node is a folder or file in the derived tree. File nodes carry the backing
// record; folder nodes only a path. Children are held as an ordered slice so
// a file and a folder sharing the same name can coexist as siblings.
type Node struct {
	Path     string
	Name     string
	IsDir    bool
	Record   models.FileRecord
	Children []*Node
	Depth    int
}

// IsLeaf reports whether the node has no children to show.
func (n *Node) IsLeaf() bool {
	return !n.IsDir || len(n.Children) == 0
}

// Folder returns the child folder with the given name, if any.
func (n *Node) Folder(name string) *Node {
	for _, c := range n.Children {
		if c.IsDir && c.Name == name {
			return c
		}
	}
	return nil
}

// Flatten returns every visible node in display order, skipping the children
// of any folder whose path appears in collapsed. The root itself is omitted.
func (n *Node) Flatten(collapsed map[string]bool) []*Node {
	var out []*Node
	for _, c := range n.Children {
		out = append(out, c)
		if c.IsDir && !collapsed[c.Path] {
			out = append(out, c.Flatten(collapsed)...)
		}
	}
	return out
}

// Files returns every file node in the subtree in display order.
func (n *Node) Files() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.IsDir {
			out = append(out, c.Files()...)
		} else {
			out = append(out, c)
		}
	}
	return out
}
