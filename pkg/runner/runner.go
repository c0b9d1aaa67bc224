// Package runner routes a "run" request to an execution surface based on the
// file's language: preview injection for the web languages, an embedded
// interpreter for scripting languages, and refusal with an external compiler
// link for languages the workspace cannot execute.
package runner

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/miniide/miniide-cli/pkg/console"
	"github.com/miniide/miniide-cli/pkg/logging"
	"github.com/miniide/miniide-cli/pkg/models"
)

// PreviewSurface renders a composed document in isolation. The concrete
// implementation is the local preview server; tests use a fake.
type PreviewSurface interface {
	Render(doc string) error
	Clear() error
}

// Interpreter executes source text against an output sink. lookup resolves
// virtual files (the workspace's records) referenced by the program.
type Interpreter interface {
	Run(ctx context.Context, source string, out func(line string), lookup func(name string) (string, bool)) error
}

// Refusal describes a deliberate non-execution: the user gets the raw source
// plus an external compiler to paste it into.
type Refusal struct {
	Language     models.Language
	Source       string
	CompilerName string
	CompilerURL  string
}

var compilers = map[models.Language]struct {
	name string
	url  string
}{
	models.LangCPP:  {"Programiz (C++)", "https://www.programiz.com/cpp-programming/online-compiler/"},
	models.LangJava: {"Programiz (Java)", "https://www.programiz.com/java-programming/online-compiler/"},
}

// Dispatcher owns the executor routing table for one session.
type Dispatcher struct {
	console      console.Console
	preview      PreviewSurface
	interpreters map[models.Language]Interpreter
	logger       *log.Logger
}

// New creates a dispatcher reporting through the given console.
func New(c console.Console, preview PreviewSurface) *Dispatcher {
	return &Dispatcher{
		console:      c,
		preview:      preview,
		interpreters: make(map[models.Language]Interpreter),
		logger:       logging.Get("runner"),
	}
}

// RegisterInterpreter binds an interpreter to a scripting language.
func (d *Dispatcher) RegisterInterpreter(lang models.Language, i Interpreter) {
	d.interpreters[lang] = i
}

// Run executes the given file. all is the full record collection, consulted
// for preview asset injection and interpreter file lookup. A non-nil Refusal
// means no execution surface was invoked and the caller may offer the
// copy-source affordance.
func (d *Dispatcher) Run(ctx context.Context, file models.FileRecord, all []models.FileRecord) *Refusal {
	lang := models.NormalizeLanguage(string(file.Language))

	if c, refused := compilers[lang]; refused {
		d.console.Append(console.KindError, fmt.Sprintf("EXECUTION HALTED (%s): Server/WASM Required for Compilation.", lang))
		d.console.Append(console.KindLog, "To run this code, use an external online compiler.")
		d.console.Append(console.KindLog, fmt.Sprintf("Run on %s: %s", c.name, c.url))
		d.logger.Info("execution refused", "file", file.ID, "language", lang)
		return &Refusal{Language: lang, Source: file.Content, CompilerName: c.name, CompilerURL: c.url}
	}

	d.console.Append(console.KindLog, fmt.Sprintf("Run: %s (%s)", file.Name, lang))

	switch lang {
	case models.LangHTML:
		d.renderPreview(ComposeHTML(file, all), "Preview updated (HTML/CSS/JS executed)")
	case models.LangCSS:
		d.renderPreview(ComposeCSSPreview(file), "Preview updated (stylesheet applied)")
	case models.LangJavaScript:
		d.renderPreview(ComposeScriptPreview(file.Content), "JS executed in preview")
	case models.LangMarkdown:
		doc, err := RenderMarkdown(file.Content)
		if err != nil {
			d.console.Append(console.KindError, fmt.Sprintf("Markdown render failed: %v", err))
			return nil
		}
		d.renderPreview(doc, "Markdown preview updated")
	case models.LangPython, models.LangLua:
		d.runInterpreter(ctx, lang, file, all)
	default:
		d.console.Append(console.KindLog, fmt.Sprintf("Execution not defined for language: %s", lang))
	}
	return nil
}

func (d *Dispatcher) renderPreview(doc, ack string) {
	if d.preview == nil {
		d.console.Append(console.KindError, "Preview surface is not running.")
		return
	}
	if err := d.preview.Render(doc); err != nil {
		d.console.Append(console.KindError, fmt.Sprintf("Preview failed: %v", err))
		return
	}
	d.console.Append(console.KindLog, ack)
}

func (d *Dispatcher) runInterpreter(ctx context.Context, lang models.Language, file models.FileRecord, all []models.FileRecord) {
	interp, ok := d.interpreters[lang]
	if !ok {
		d.console.Append(console.KindError, fmt.Sprintf("No interpreter is available for %s in this build.", lang))
		return
	}

	label := interpreterLabel(lang)
	d.console.Append(console.KindLog, fmt.Sprintf("Running %s...", label))

	lookup := func(name string) (string, bool) {
		for _, r := range all {
			if r.Name == name {
				return r.Content, true
			}
		}
		return "", false
	}
	out := func(line string) {
		d.console.Append(console.KindLog, line)
	}

	if err := interp.Run(ctx, file.Content, out, lookup); err != nil {
		d.console.Append(console.KindError, fmt.Sprintf("%s error: %v", label, err))
		d.logger.Warn("interpreter failed", "file", file.ID, "error", err)
		return
	}
	d.console.Append(console.KindLog, fmt.Sprintf("%s finished", label))
}

func interpreterLabel(lang models.Language) string {
	switch lang {
	case models.LangPython:
		return "Python"
	case models.LangLua:
		return "Lua"
	default:
		return string(lang)
	}
}
