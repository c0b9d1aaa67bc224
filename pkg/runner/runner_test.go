package runner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/miniide/miniide-cli/pkg/console"
	"github.com/miniide/miniide-cli/pkg/models"
)

type fakeSurface struct {
	docs   []string
	clears int
}

func (f *fakeSurface) Render(doc string) error {
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeSurface) Clear() error {
	f.clears++
	return nil
}

type fakeInterpreter struct {
	ran    bool
	source string
	err    error
	lines  []string
}

func (f *fakeInterpreter) Run(ctx context.Context, source string, out func(string), lookup func(string) (string, bool)) error {
	f.ran = true
	f.source = source
	for _, l := range f.lines {
		out(l)
	}
	return f.err
}

func hasConsoleLine(buf *console.Buffer, substr string) bool {
	for _, l := range buf.Lines() {
		if strings.Contains(l.Text, substr) {
			return true
		}
	}
	return false
}

func TestRunCppRefusesWithoutExecuting(t *testing.T) {
	buf := console.NewBuffer(0)
	surface := &fakeSurface{}
	interp := &fakeInterpreter{}
	d := New(buf, surface)
	d.RegisterInterpreter(models.LangPython, interp)

	file := models.FileRecord{ID: "src/main.cpp", Name: "src/main.cpp", Language: models.LangCPP, Content: "int main() {}"}
	refusal := d.Run(context.Background(), file, []models.FileRecord{file})

	if refusal == nil {
		t.Fatal("Run() returned nil refusal for cpp")
	}
	if refusal.Source != "int main() {}" {
		t.Errorf("refusal source = %q", refusal.Source)
	}
	if refusal.CompilerURL == "" || !strings.Contains(refusal.CompilerName, "C++") {
		t.Errorf("refusal compiler = %q %q", refusal.CompilerName, refusal.CompilerURL)
	}
	if len(surface.docs) != 0 || interp.ran {
		t.Error("an execution surface was invoked despite refusal")
	}
	if !hasConsoleLine(buf, "EXECUTION HALTED (cpp)") {
		t.Error("refusal banner missing from console")
	}
	if !hasConsoleLine(buf, "external online compiler") {
		t.Error("external compiler hint missing")
	}
}

func TestRunJavaRefusal(t *testing.T) {
	buf := console.NewBuffer(0)
	d := New(buf, &fakeSurface{})

	file := models.FileRecord{Name: "Hello.java", Language: models.LangJava}
	refusal := d.Run(context.Background(), file, nil)

	if refusal == nil || !strings.Contains(refusal.CompilerName, "Java") {
		t.Fatalf("refusal = %+v", refusal)
	}
}

func TestRunHTMLInjectsAssets(t *testing.T) {
	buf := console.NewBuffer(0)
	surface := &fakeSurface{}
	d := New(buf, surface)

	all := []models.FileRecord{
		{Name: "index.html", Language: models.LangHTML, Content: "<html><head></head><body><h1>hi</h1></body></html>"},
		{Name: "styles.css", Content: "body{color:red}"},
		{Name: "script.js", Content: "console.log('ran')"},
	}
	d.Run(context.Background(), all[0], all)

	if len(surface.docs) != 1 {
		t.Fatalf("rendered %d documents, want 1", len(surface.docs))
	}
	doc := surface.docs[0]
	if !strings.Contains(doc, "<style>body{color:red}</style></head>") {
		t.Error("stylesheet not injected into head")
	}
	if !strings.Contains(doc, "console.log('ran')") || strings.Index(doc, "console.log") > strings.Index(doc, "</body>") {
		t.Error("script not injected before body close")
	}
	if !hasConsoleLine(buf, "Preview updated") {
		t.Error("preview acknowledgement missing")
	}
}

func TestRunJavaScriptWrapsInHostPage(t *testing.T) {
	surface := &fakeSurface{}
	d := New(console.NewBuffer(0), surface)

	d.Run(context.Background(), models.FileRecord{Name: "app.js", Language: models.LangJavaScript, Content: "console.log(1)"}, nil)

	if len(surface.docs) != 1 {
		t.Fatalf("rendered %d documents, want 1", len(surface.docs))
	}
	doc := surface.docs[0]
	if !strings.Contains(doc, "console.log(1)") || !strings.Contains(doc, "__minide") {
		t.Errorf("host page missing guard wrapper: %s", doc)
	}
}

func TestRunPythonRoutesToInterpreter(t *testing.T) {
	buf := console.NewBuffer(0)
	interp := &fakeInterpreter{lines: []string{"hello"}}
	d := New(buf, &fakeSurface{})
	d.RegisterInterpreter(models.LangPython, interp)

	d.Run(context.Background(), models.FileRecord{Name: "main.py", Language: models.LangPython, Content: "print('hello')"}, nil)

	if !interp.ran || interp.source != "print('hello')" {
		t.Error("interpreter not invoked with file source")
	}
	if !hasConsoleLine(buf, "hello") {
		t.Error("interpreter output not relayed to console")
	}
	if !hasConsoleLine(buf, "Python finished") {
		t.Error("success acknowledgement missing")
	}
}

func TestRunPythonWithoutInterpreter(t *testing.T) {
	buf := console.NewBuffer(0)
	d := New(buf, &fakeSurface{})

	refusal := d.Run(context.Background(), models.FileRecord{Name: "main.py", Language: models.LangPython}, nil)

	if refusal != nil {
		t.Error("missing interpreter must not be a refusal")
	}
	if !hasConsoleLine(buf, "No interpreter is available for python") {
		t.Error("missing-interpreter report absent")
	}
}

func TestRunInterpreterFailureIsLoggedNotFatal(t *testing.T) {
	buf := console.NewBuffer(0)
	interp := &fakeInterpreter{err: errors.New("division by zero")}
	d := New(buf, &fakeSurface{})
	d.RegisterInterpreter(models.LangPython, interp)

	d.Run(context.Background(), models.FileRecord{Name: "main.py", Language: models.LangPython}, nil)

	if !hasConsoleLine(buf, "Python error: division by zero") {
		t.Error("interpreter failure not relayed as error line")
	}
}

func TestRunUnknownLanguage(t *testing.T) {
	buf := console.NewBuffer(0)
	surface := &fakeSurface{}
	d := New(buf, surface)

	d.Run(context.Background(), models.FileRecord{Name: "data.json", Language: models.LangJSON}, nil)

	if len(surface.docs) != 0 {
		t.Error("json rendered a preview")
	}
	if !hasConsoleLine(buf, "Execution not defined for language: json") {
		t.Error("undefined-execution message missing")
	}
}

func TestRunMarkdownRendersPreview(t *testing.T) {
	surface := &fakeSurface{}
	d := New(console.NewBuffer(0), surface)

	d.Run(context.Background(), models.FileRecord{Name: "README.md", Language: models.LangMarkdown, Content: "# Title"}, nil)

	if len(surface.docs) != 1 || !strings.Contains(surface.docs[0], "<h1") {
		t.Error("markdown not rendered into preview document")
	}
}
