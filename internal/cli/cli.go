// Package cli implements the sketch3d command-line interface.
//
// This package provides commands for rendering TOML scene descriptions
// to TikZ, inspecting the partition tree behind an export, browsing
// scene objects, serving the HTTP facade, and managing the local render
// cache. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Render a scene description to TikZ source
//   - inspect: Show the polygon partition tree for a scene
//   - objects: List or browse the objects in a scene
//   - serve: Run the HTTP facade
//   - cache: Manage the local render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sketch3d/pkg/buildinfo"
	"github.com/matzehuels/sketch3d/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "sketch3d"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "sketch3d renders 3D scenes as TikZ line drawings",
		Long:         `sketch3d composes 3D scenes of polygons, lines, and marks into occlusion-correct 2D vector drawings, emitted as TikZ source for LaTeX documents.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.objectsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRenderCache returns the cache backend for local renders. An empty
// dir uses the XDG default. Cache setup failures degrade to the null
// cache; rendering still works.
func newRenderCache(noCache bool, dir string) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return cache.Instrument(fc, "render")
}

// cacheDir returns the cache directory using XDG standard (~/.cache/sketch3d/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
