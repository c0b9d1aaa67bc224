package runner

import (
	"fmt"
	"strings"

	"github.com/miniide/miniide-cli/pkg/models"
)

// ComposeHTML builds the preview document for an HTML file: the first
// matching workspace stylesheet is injected before </head> and the first
// matching script, wrapped in the console-forwarding guard, before </body>.
// Documents without those tags get the fragments prepended/appended.
func ComposeHTML(file models.FileRecord, all []models.FileRecord) string {
	doc := file.Content

	if cssFile, ok := findStylesheet(all); ok {
		css := "<style>" + cssFile.Content + "</style>"
		if strings.Contains(doc, "</head>") {
			doc = strings.Replace(doc, "</head>", css+"</head>", 1)
		} else {
			doc = css + doc
		}
	}

	if jsFile, ok := findScript(all); ok {
		js := guardedScript(jsFile.Content)
		if strings.Contains(doc, "</body>") {
			doc = strings.Replace(doc, "</body>", js+"</body>", 1)
		} else {
			doc = doc + js
		}
	}

	return doc
}

// ComposeScriptPreview wraps a bare script in a minimal host page.
func ComposeScriptPreview(code string) string {
	return "<!doctype html><html><head><meta charset=\"utf-8\"></head><body>" +
		guardedScript(code) + "</body></html>"
}

// ComposeCSSPreview applies a stylesheet to a small sample document so the
// result of running a lone CSS file is visible.
func ComposeCSSPreview(file models.FileRecord) string {
	return fmt.Sprintf(`<!doctype html><html><head><meta charset="utf-8"><style>%s</style></head>
<body>
  <h1>%s</h1>
  <p>Sample paragraph with a <a href="#">link</a> and <code>code</code>.</p>
  <button>Button</button>
</body></html>`, file.Content, file.Name)
}

// BlankDocument is the empty preview shown after Clear Preview.
const BlankDocument = `<!doctype html><html><head><meta charset="utf-8"></head><body></body></html>`

// guardedScript wraps user code so uncaught errors reach the console relay
// instead of killing the page. The __minide hooks are installed by the relay
// script the preview server injects.
func guardedScript(code string) string {
	return "<script>\n(function(){\ntry {\n" + code +
		"\n} catch (e) { if (window.__minide) window.__minide.error(e.message); }\n})();\n</script>"
}

func findStylesheet(all []models.FileRecord) (models.FileRecord, bool) {
	for _, r := range all {
		if r.Name == "styles.css" || r.Name == "style.css" || strings.HasSuffix(r.Name, "/styles.css") {
			return r, true
		}
	}
	return models.FileRecord{}, false
}

func findScript(all []models.FileRecord) (models.FileRecord, bool) {
	for _, r := range all {
		if r.Name == "script.js" || r.Name == "main.js" ||
			strings.HasSuffix(r.Name, "/script.js") || strings.HasSuffix(r.Name, "/main.js") {
			return r, true
		}
	}
	return models.FileRecord{}, false
}
