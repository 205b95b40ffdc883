//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteCatalog writes a catalog file into the workspace so the app picks it
// up on startup
func (tf *TUITestFramework) WriteCatalog(content string) error {
	if tf.workspace == "" {
		return fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, ".tickbox.toml")
	return os.WriteFile(path, []byte(content), 0644)
}

// catalogTOML renders the standard six-item catalog with the given checked
// values. Every test in the suite starts from this catalog so the item
// counts in assertions stay predictable.
func catalogTOML(checked ...string) string {
	quoted := make([]string, len(checked))
	for i, v := range checked {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf(`version = 1
colors = ["red", "green", "blue"]
checked = [%s]

[[items]]
name = "apple"
color = "red"

[[items]]
name = "cherry"
color = "red"

[[items]]
name = "leaf"
color = "green"

[[items]]
name = "lime"
color = "green"

[[items]]
name = "sky"
color = "blue"

[[items]]
name = "ocean"
color = "blue"
`, strings.Join(quoted, ", "))
}
