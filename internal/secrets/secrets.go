// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets reads credentials kept outside the config file. A secrets
// directory holds one plain-text file per credential: the filename is the
// key and the trimmed contents are the value.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is the secrets directory relative to the working directory.
const DefaultDir = ".secrets"

// UnsplashAccessKey names the file holding the Unsplash client_id.
const UnsplashAccessKey = "unsplash-access-key"

// Load reads every regular, non-hidden file in dir. A missing directory is
// not an error. Unreadable files produce a warning on stderr and are skipped,
// as are files that are empty after trimming.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	values := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if v := strings.TrimSpace(string(data)); v != "" {
			values[name] = v
		}
	}
	return values, nil
}

// Lookup returns override when it is set, otherwise the loaded value for key.
// Explicit configuration (flag, env, config file) always beats the directory.
func Lookup(values map[string]string, key, override string) string {
	if override != "" {
		return override
	}
	return values[key]
}
