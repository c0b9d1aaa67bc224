package tree

import (
	"reflect"
	"testing"

	"github.com/miniide/miniide-cli/pkg/models"
)

func rec(name string) models.FileRecord {
	return models.FileRecord{ID: name, Name: name, Language: models.DetectLanguage(name)}
}

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Path
	}
	return out
}

func TestBuildFoldersBeforeFiles(t *testing.T) {
	root := Build([]models.FileRecord{
		rec("zebra.js"),
		rec("assets/logo.css"),
		rec("app.js"),
		rec("src/main.py"),
	})

	got := names(root.Children)
	want := []string{"assets", "src", "app.js", "zebra.js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("top level order = %v, want %v", got, want)
	}
}

func TestBuildNestedFolders(t *testing.T) {
	root := Build([]models.FileRecord{
		rec("src/app/main.py"),
		rec("src/util.py"),
	})

	src := root.Folder("src")
	if src == nil {
		t.Fatal("missing src folder")
	}
	got := names(src.Children)
	want := []string{"src/app", "src/util.py"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("src children = %v, want %v", got, want)
	}

	app := src.Folder("app")
	if app == nil {
		t.Fatal("missing src/app folder")
	}
	if app.Depth != 1 {
		t.Errorf("src/app depth = %d, want 1", app.Depth)
	}
	if len(app.Children) != 1 || app.Children[0].Path != "src/app/main.py" {
		t.Errorf("src/app children = %v", names(app.Children))
	}
}

func TestBuildFileAndFolderShareName(t *testing.T) {
	// "a" the file and "a/b" the nested file must coexist without a panic:
	// id uniqueness covers paths, not the file/folder namespace.
	root := Build([]models.FileRecord{
		rec("a"),
		rec("a/b"),
	})

	var file, folder *Node
	for _, c := range root.Children {
		if c.IsDir {
			folder = c
		} else {
			file = c
		}
	}
	if file == nil || file.Path != "a" {
		t.Fatalf("file leaf 'a' missing, top level = %v", names(root.Children))
	}
	if folder == nil || folder.Path != "a" {
		t.Fatalf("folder node 'a' missing, top level = %v", names(root.Children))
	}
	if len(folder.Children) != 1 || folder.Children[0].Path != "a/b" {
		t.Errorf("folder children = %v, want [a/b]", names(folder.Children))
	}
}

func TestBuildIdempotent(t *testing.T) {
	records := []models.FileRecord{
		rec("src/main.py"),
		rec("index.html"),
		rec("assets/logo.css"),
	}

	first := Build(records)
	second := Build(records)
	if !reflect.DeepEqual(first, second) {
		t.Error("two builds of the same input differ")
	}
}

func TestFlattenHonorsCollapse(t *testing.T) {
	root := Build([]models.FileRecord{
		rec("src/main.py"),
		rec("src/app/deep.py"),
		rec("index.html"),
	})

	all := names(root.Flatten(nil))
	wantAll := []string{"src", "src/app", "src/app/deep.py", "src/main.py", "index.html"}
	if !reflect.DeepEqual(all, wantAll) {
		t.Errorf("expanded flatten = %v, want %v", all, wantAll)
	}

	collapsed := names(root.Flatten(map[string]bool{"src": true}))
	wantCollapsed := []string{"src", "index.html"}
	if !reflect.DeepEqual(collapsed, wantCollapsed) {
		t.Errorf("collapsed flatten = %v, want %v", collapsed, wantCollapsed)
	}
}

func TestFilesDisplayOrder(t *testing.T) {
	root := Build([]models.FileRecord{
		rec("b.css"),
		rec("src/c.py"),
		rec("a.js"),
	})

	got := names(root.Files())
	want := []string{"src/c.py", "a.js", "b.css"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}
}
