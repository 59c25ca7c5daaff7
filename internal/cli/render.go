package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketch3d/pkg/cache"
	"github.com/matzehuels/sketch3d/pkg/errors"
	"github.com/matzehuels/sketch3d/pkg/sceneio"
	"github.com/matzehuels/sketch3d/pkg/tikz"
)

// localCacheTTL is how long locally cached render results live.
const localCacheTTL = 7 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string  // output file path; empty writes to stdout
	standalone bool    // wrap the picture in a compilable document
	size       string  // export size override, WxH
	scale      float32 // coordinate scale override; 0 keeps the export default
	noCache    bool    // disable the local render cache
	cacheDir   string  // cache directory override
}

// renderCommand creates the render command for producing TikZ output.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [scene.toml]",
		Short: "Render a scene description to TikZ source",
		Long: `Render a scene description to TikZ source.

The scene file declares the camera, export size, and the marks, lines,
faces, and axes of the scene. The output is a back-to-front ordered
sequence of TikZ draw commands that a LaTeX document can include
directly; with --standalone it compiles on its own.

Rendering is deterministic, so results are cached locally by a content
hash of the scene file and the export options.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.standalone, "standalone", false, "emit a compilable standalone document")
	cmd.Flags().StringVar(&opts.size, "size", "", "export size as WxH, overriding the scene file")
	cmd.Flags().Float32Var(&opts.scale, "scale", 0, "coordinate scale factor, overriding the export default")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "cache directory (default: XDG cache dir)")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	f, raw, err := sceneio.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("scene loaded", "path", path, "objects", len(f.Marks)+len(f.Lines)+len(f.Faces)+len(f.Axes))

	var sizeW, sizeH float32
	if opts.size != "" {
		sizeW, sizeH, err = parseSize(opts.size)
		if err != nil {
			return err
		}
	}

	rc := newRenderCache(opts.noCache, opts.cacheDir)
	defer rc.Close()
	keyOpts := renderKeyOpts(f, opts.standalone)
	if sizeW > 0 {
		keyOpts.Width = sizeW
		keyOpts.Height = sizeH
	}
	if opts.scale > 0 {
		keyOpts.Scale = opts.scale
	}
	key := cache.NewDefaultKeyer().RenderKey(cache.Hash(raw), keyOpts)

	out, cached, err := rc.Get(ctx, key)
	if err != nil {
		logger.Warn("cache lookup failed", "err", err)
		cached = false
	}
	if !cached {
		spinner := newSpinnerWithContext(ctx, "Rendering scene...")
		spinner.Start()

		var tikzOpts []tikz.Option
		if opts.standalone {
			tikzOpts = append(tikzOpts, tikz.WithStandalone())
		}
		if opts.scale > 0 {
			tikzOpts = append(tikzOpts, tikz.WithScale(opts.scale))
		}
		s := f.Scene()
		if sizeW > 0 {
			s.SetExportSize(sizeW, sizeH)
		}
		var buf bytes.Buffer
		renderErr := s.Render(&buf, tikzOpts...)
		spinner.Stop()
		if spinner.Cancelled() {
			return ctx.Err()
		}
		if renderErr != nil {
			return renderErr
		}
		out = buf.Bytes()

		if err := rc.Set(ctx, key, out, localCacheTTL); err != nil {
			logger.Warn("caching render result", "err", err)
		}
	}

	if opts.output == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.output, err)
	}

	prog.done(fmt.Sprintf("Rendered %s", filepath.Base(path)))
	printFile(opts.output)
	printStats(countDrawCommands(out), 0, cached)
	if opts.standalone {
		printNextStep("Compile with", "pdflatex "+opts.output)
	}
	return nil
}

// parseSize parses a WxH flag value like "8x6".
func parseSize(s string) (w, h float32, err error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid size %q (expected WxH, e.g. 8x6)", s)
	}
	wv, err1 := strconv.ParseFloat(parts[0], 32)
	hv, err2 := strconv.ParseFloat(parts[1], 32)
	if err1 != nil || err2 != nil || wv <= 0 || hv <= 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid size %q (expected WxH, e.g. 8x6)", s)
	}
	return float32(wv), float32(hv), nil
}

// countDrawCommands counts emitted fill and stroke commands.
func countDrawCommands(tikzSrc []byte) int {
	s := string(tikzSrc)
	return strings.Count(s, "\\fill") + strings.Count(s, "\\draw")
}

// renderKeyOpts derives the cache key options from the decoded scene
// file and the emitter flags.
func renderKeyOpts(f *sceneio.File, standalone bool) cache.RenderKeyOpts {
	opts := cache.RenderKeyOpts{Standalone: standalone}
	if f.Export != nil {
		opts.Width = f.Export.Width
		opts.Height = f.Export.Height
		opts.Epsilon = f.Export.Epsilon
	}
	return opts
}
