package models

import "strings"

// Language identifies the syntax/executor binding of a file.
type Language string

const (
	LangHTML       Language = "html"
	LangCSS        Language = "css"
	LangJavaScript Language = "javascript"
	LangPython     Language = "python"
	LangLua        Language = "lua"
	LangJava       Language = "java"
	LangCPP        Language = "cpp"
	LangMarkdown   Language = "markdown"
	LangJSON       Language = "json"
)

// DefaultLanguage is used whenever a tag is absent or unrecognized.
const DefaultLanguage = LangJavaScript

// FileRecord is one virtual file in the workspace. ID is the full
// slash-delimited path and is unique across the store; it doubles as the
// editor-model key.
type FileRecord struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Language Language `json:"language"`
	Content  string   `json:"content"`
}

// BaseName returns the last path segment, used for tab labels.
func (f FileRecord) BaseName() string {
	if i := strings.LastIndex(f.Name, "/"); i >= 0 {
		return f.Name[i+1:]
	}
	return f.Name
}

var validLanguages = map[Language]bool{
	LangHTML:       true,
	LangCSS:        true,
	LangJavaScript: true,
	LangPython:     true,
	LangLua:        true,
	LangJava:       true,
	LangCPP:        true,
	LangMarkdown:   true,
	LangJSON:       true,
}

// ValidLanguage reports whether the tag names a supported language.
func ValidLanguage(tag string) bool {
	return validLanguages[Language(tag)]
}

// NormalizeLanguage maps an arbitrary tag onto the closed enumeration,
// falling back to the default for anything unknown.
func NormalizeLanguage(tag string) Language {
	l := Language(tag)
	if validLanguages[l] {
		return l
	}
	return DefaultLanguage
}

var extLanguages = map[string]Language{
	"html":     LangHTML,
	"htm":      LangHTML,
	"css":      LangCSS,
	"js":       LangJavaScript,
	"py":       LangPython,
	"lua":      LangLua,
	"java":     LangJava,
	"cpp":      LangCPP,
	"c":        LangCPP,
	"md":       LangMarkdown,
	"markdown": LangMarkdown,
	"json":     LangJSON,
}

// DetectLanguage derives a language tag from a file name's extension.
// Unknown and missing extensions map to the default.
func DetectLanguage(name string) Language {
	base := FileRecord{Name: name}.BaseName()
	ext := ""
	if i := strings.LastIndex(base, "."); i >= 0 {
		ext = base[i+1:]
	}
	if lang, ok := extLanguages[strings.ToLower(ext)]; ok {
		return lang
	}
	return DefaultLanguage
}

// Sentinel describes the placeholder file synthesized whenever the store
// would otherwise become empty.
func Sentinel() FileRecord {
	return FileRecord{
		ID:       "untitled.js",
		Name:     "untitled.js",
		Language: LangJavaScript,
		Content:  "// New project initialized",
	}
}

// FolderPlaceholderName is the synthetic leaf that represents an otherwise
// empty folder in the flat record collection.
const FolderPlaceholderName = "README.md"
