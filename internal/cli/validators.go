package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/miniide/miniide-cli/pkg/models"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateFileName validates a workspace file path. Slashes are folder
// separators inside the workspace, so relative escapes are rejected.
func ValidateFileName(name string) error {
	if name == "" {
		return fmt.Errorf("file name cannot be empty")
	}
	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return fmt.Errorf("file name cannot start or end with '/': %s", name)
	}
	invalid := []string{"\\", "..", "//"}
	for _, seq := range invalid {
		if strings.Contains(name, seq) {
			return fmt.Errorf("file name contains invalid sequence %q: %s", seq, name)
		}
	}
	return nil
}

// ValidateFolderName validates a workspace folder path
func ValidateFolderName(name string) error {
	if name == "" {
		return fmt.Errorf("folder name cannot be empty")
	}
	return ValidateFileName(name)
}

// ValidateLanguageTag validates a language override
func ValidateLanguageTag(tag string) error {
	if models.ValidLanguage(tag) {
		return nil
	}
	return fmt.Errorf("unsupported language: %s", tag)
}

// ValidateLocalPath validates that a path on the local filesystem exists
func ValidateLocalPath(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}
	return nil
}
