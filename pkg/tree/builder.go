package tree

import (
	"sort"
	"strings"

	"github.com/miniide/miniide-cli/pkg/models"
)

// Build constructs the folder/file tree for a record collection. Folder nodes
// are created lazily for every path prefix; the terminal segment becomes a
// file leaf. At each level folders sort before files, both ascending by name.
//
// A record whose full path is also a prefix of another record's path (both
// "a" and "a/b" exist) yields a file leaf and a folder node side by side
// rather than an error; the store's uniqueness invariant covers ids, not the
// file/folder namespace.
func Build(records []models.FileRecord) *Node {
	sorted := make([]models.FileRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return pathLess(sorted[i].Name, sorted[j].Name)
	})

	root := &Node{IsDir: true}
	for _, rec := range sorted {
		insert(root, rec)
	}
	sortChildren(root)
	number(root, 0)
	return root
}

func insert(root *Node, rec models.FileRecord) {
	parts := strings.Split(rec.Name, "/")
	current := root
	currentPath := ""
	for i, part := range parts {
		if currentPath == "" {
			currentPath = part
		} else {
			currentPath = currentPath + "/" + part
		}
		if i == len(parts)-1 {
			current.Children = append(current.Children, &Node{
				Path:   rec.Name,
				Name:   part,
				Record: rec,
			})
			continue
		}
		folder := current.Folder(part)
		if folder == nil {
			folder = &Node{Path: currentPath, Name: part, IsDir: true}
			current.Children = append(current.Children, folder)
		}
		current = folder
	}
}

func sortChildren(n *Node) {
	sort.SliceStable(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return pathLess(a.Name, b.Name)
	})
	for _, c := range n.Children {
		if c.IsDir {
			sortChildren(c)
		}
	}
}

func number(n *Node, depth int) {
	for _, c := range n.Children {
		c.Depth = depth
		if c.IsDir {
			number(c, depth+1)
		}
	}
}

// pathLess orders names case-insensitively with a raw tiebreak, approximating
// the locale-aware comparison the tree view expects.
func pathLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
