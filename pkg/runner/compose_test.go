package runner

import (
	"strings"
	"testing"

	"github.com/miniide/miniide-cli/pkg/models"
)

func TestComposeHTMLWithoutTags(t *testing.T) {
	file := models.FileRecord{Name: "bare.html", Content: "<h1>bare</h1>"}
	all := []models.FileRecord{
		file,
		{Name: "style.css", Content: "h1{color:blue}"},
		{Name: "main.js", Content: "console.log('x')"},
	}

	doc := ComposeHTML(file, all)

	if !strings.HasPrefix(doc, "<style>h1{color:blue}</style>") {
		t.Errorf("stylesheet not prepended to tagless document: %s", doc)
	}
	if !strings.Contains(doc, "console.log('x')") {
		t.Error("script not appended to tagless document")
	}
	if strings.Index(doc, "console.log") < strings.Index(doc, "<h1>") {
		t.Error("script should follow the body content")
	}
}

func TestComposeHTMLNoAssets(t *testing.T) {
	file := models.FileRecord{Name: "solo.html", Content: "<html><head></head><body></body></html>"}

	doc := ComposeHTML(file, []models.FileRecord{file})

	if doc != file.Content {
		t.Errorf("document changed with no assets present: %s", doc)
	}
}

func TestComposeHTMLPrefersNestedStylesheetSuffix(t *testing.T) {
	file := models.FileRecord{Name: "index.html", Content: "<head></head>"}
	all := []models.FileRecord{
		file,
		{Name: "assets/styles.css", Content: ".x{}"},
	}

	doc := ComposeHTML(file, all)
	if !strings.Contains(doc, "<style>.x{}</style>") {
		t.Error("nested styles.css not matched by suffix")
	}
}

func TestInjectRelayIntoHead(t *testing.T) {
	doc := InjectRelay("<html><head><title>t</title></head></html>", "127.0.0.1:7777", "tok")

	if !strings.Contains(doc, "<head><script>") {
		t.Error("relay shim not injected at head start")
	}
	if !strings.Contains(doc, "ws://127.0.0.1:7777/tok/ws") {
		t.Error("relay endpoint missing from shim")
	}
}

func TestInjectRelayPrependsWithoutHead(t *testing.T) {
	doc := InjectRelay("<h1>x</h1>", "127.0.0.1:7777", "tok")

	if !strings.HasPrefix(doc, "<script>") {
		t.Error("relay shim not prepended when no head tag exists")
	}
}
