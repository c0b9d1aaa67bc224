package models

import "testing"

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     Language
	}{
		{
			name:     "html extension",
			fileName: "index.html",
			want:     LangHTML,
		},
		{
			name:     "css extension",
			fileName: "styles.css",
			want:     LangCSS,
		},
		{
			name:     "javascript extension",
			fileName: "script.js",
			want:     LangJavaScript,
		},
		{
			name:     "python in nested folder",
			fileName: "src/tools/main.py",
			want:     LangPython,
		},
		{
			name:     "lua extension",
			fileName: "scripts/init.lua",
			want:     LangLua,
		},
		{
			name:     "c maps to cpp",
			fileName: "legacy.c",
			want:     LangCPP,
		},
		{
			name:     "uppercase extension",
			fileName: "README.MD",
			want:     LangMarkdown,
		},
		{
			name:     "unknown extension defaults",
			fileName: "data.bin",
			want:     LangJavaScript,
		},
		{
			name:     "no extension defaults",
			fileName: "Makefile",
			want:     LangJavaScript,
		},
		{
			name:     "dot in folder name does not count",
			fileName: "v1.2/notes",
			want:     LangJavaScript,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectLanguage(tt.fileName)
			if got != tt.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want Language
	}{
		{name: "known tag", tag: "python", want: LangPython},
		{name: "empty tag defaults", tag: "", want: LangJavaScript},
		{name: "unknown tag defaults", tag: "cobol", want: LangJavaScript},
		{name: "json passes through", tag: "json", want: LangJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLanguage(tt.tag); got != tt.want {
				t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		name string
		file FileRecord
		want string
	}{
		{name: "root file", file: FileRecord{Name: "index.html"}, want: "index.html"},
		{name: "nested file", file: FileRecord{Name: "src/app/main.py"}, want: "main.py"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.file.BaseName(); got != tt.want {
				t.Errorf("BaseName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeedRecordsUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range SeedRecords() {
		if seen[r.ID] {
			t.Errorf("duplicate seed id %q", r.ID)
		}
		seen[r.ID] = true
		if r.ID != r.Name {
			t.Errorf("seed record %q: id and name differ", r.ID)
		}
		if DetectLanguage(r.Name) != r.Language {
			t.Errorf("seed record %q: language %q does not match extension", r.ID, r.Language)
		}
	}
}
