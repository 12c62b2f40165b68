// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads NCBI credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key name and the
// file contents (trimmed) are the value.
//
// Recognised key files: ncbi-api-key, ncbi-email.
package secrets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

const (
	// KeyNCBIAPIKey holds an NCBI API key.
	KeyNCBIAPIKey = "ncbi-api-key"

	// KeyNCBIEmail holds the contact email sent to E-utilities.
	KeyNCBIEmail = "ncbi-email"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory is not an error; Load returns an empty map.
// Unreadable files are logged at warn level and skipped.
func Load(dir string, logger *slog.Logger) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("could not read secret", "name", name, "err", err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}
	return secrets, nil
}

// Apply fills the NCBI credentials in cfg from s. Values already set in cfg
// take precedence.
func Apply(cfg *types.PubMedConfig, s map[string]string) {
	if cfg.APIKey == "" {
		cfg.APIKey = s[KeyNCBIAPIKey]
	}
	if cfg.Email == "" {
		cfg.Email = s[KeyNCBIEmail]
	}
}
