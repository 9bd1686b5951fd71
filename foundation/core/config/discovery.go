// File: discovery.go
// Title: Configuration File Discovery
// Description: Looks for a configuration file across a list of directories,
//              base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2025-10-15 v0.2.0: Reduced to path search, loading moved to Load

package config

import (
	"os"
	"path/filepath"
)

// DiscoveryOptions defines where to look for a configuration file
type DiscoveryOptions struct {
	Paths      []string // Directories to search
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in order
}

// DefaultDiscoveryOptions searches the working directory and the user
// configuration directory
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./configs"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "procline"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"procline", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first candidate that exists as a regular file
func FindConfigFile(options DiscoveryOptions) (string, bool) {
	for _, path := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
