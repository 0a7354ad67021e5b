package formatter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bloodmagesoftware/sectors/level"
)

// Format rewrites every level file below levelsDir in canonical form.
func Format(levelsDir string) error {
	fmt.Println("Formatting levels...")

	files, err := levelFiles(levelsDir)
	if err != nil {
		return err
	}

	changed := 0
	for _, path := range files {
		original, formatted, err := canonical(path)
		if err != nil {
			return err
		}
		if bytes.Equal(original, formatted) {
			continue
		}
		if err := os.WriteFile(path, formatted, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("  Formatted: %s\n", path)
		changed++
	}

	fmt.Printf("✅ Formatting completed: %d of %d file(s) changed\n", changed, len(files))
	return nil
}

// Check reports level files below levelsDir that are not in canonical form
// without modifying them.
func Check(levelsDir string) error {
	fmt.Println("Checking level formatting...")

	files, err := levelFiles(levelsDir)
	if err != nil {
		return err
	}

	var unformatted []string
	for _, path := range files {
		original, formatted, err := canonical(path)
		if err != nil {
			return err
		}
		if !bytes.Equal(original, formatted) {
			unformatted = append(unformatted, path)
		}
	}

	if len(unformatted) > 0 {
		for _, path := range unformatted {
			fmt.Printf("  Needs formatting: %s\n", path)
		}
		return fmt.Errorf("format check failed: %d file(s) need formatting", len(unformatted))
	}

	fmt.Println("✅ Format check completed")
	return nil
}

// canonical returns the file content and its canonical encoding.
func canonical(path string) ([]byte, []byte, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	lvl := level.New("")
	if err := lvl.Decode(bytes.NewReader(original)); err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := lvl.Encode(&buf); err != nil {
		return nil, nil, fmt.Errorf("encoding %s: %w", path, err)
	}
	return original, buf.Bytes(), nil
}

func levelFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".yaml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", dir, err)
	}
	return files, nil
}
