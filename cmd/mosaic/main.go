// Command mosaic drives the tiled composition engine from the
// terminal: an interactive viewer, single-frame PNG rendering and
// animated GIF export.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v2"

	"github.com/mosaicgrid/mosaic"
	"github.com/mosaicgrid/mosaic/codec"
	"github.com/mosaicgrid/mosaic/export"
	"github.com/mosaicgrid/mosaic/integration/termview"
)

// imageExts are the file extensions picked up when a directory is given.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := &cli.App{
		Name:    "mosaic",
		Usage:   "tiled image grid viewer and renderer",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "tile-width",
				EnvVars: []string{"MOSAIC_TILE_WIDTH"},
				Value:   400,
				Usage:   "tile width in pixels",
			},
			&cli.IntFlag{
				Name:    "tile-height",
				EnvVars: []string{"MOSAIC_TILE_HEIGHT"},
				Value:   400,
				Usage:   "tile height in pixels",
			},
			&cli.IntFlag{
				Name:    "cols",
				EnvVars: []string{"MOSAIC_COLS"},
				Value:   2,
				Usage:   "number of grid columns",
			},
			&cli.IntFlag{
				Name:    "rows",
				EnvVars: []string{"MOSAIC_ROWS"},
				Value:   2,
				Usage:   "number of grid rows",
			},
			&cli.StringFlag{
				Name:    "background",
				EnvVars: []string{"MOSAIC_BACKGROUND"},
				Value:   "#FFFFFFFF",
				Usage:   "background color (#RGB, #RGBA, #RRGGBB or #RRGGBBAA)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "increase verbosity",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "view",
				Usage:     "View images in an animated tile grid",
				ArgsUsage: "DIR|FILES...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "fps",
						Value: 30,
						Usage: "animation frames per second",
					},
				},
				Action: viewAction,
			},
			{
				Name:      "render",
				Usage:     "Render one frame to a PNG file",
				ArgsUsage: "FILES...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Required: true,
						Usage:    "output PNG path",
					},
					&cli.IntFlag{
						Name:  "frame",
						Value: 0,
						Usage: "pattern frame number",
					},
					&cli.BoolFlag{
						Name:  "flat",
						Usage: "fill empty tiles with the background color instead of the pattern",
					},
				},
				Action: renderAction,
			},
			{
				Name:      "gif",
				Usage:     "Export an animated pattern GIF",
				ArgsUsage: "FILES...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Required: true,
						Usage:    "output GIF path",
					},
					&cli.IntFlag{
						Name:  "frames",
						Value: 30,
						Usage: "number of animation frames",
					},
					&cli.IntFlag{
						Name:  "delay",
						Value: 4,
						Usage: "per-frame delay in 1/100s",
					},
				},
				Action: gifAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// setupLogging installs a debug text handler when --verbose is set.
func setupLogging(c *cli.Context) {
	if c.Bool("verbose") {
		mosaic.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
}

// buildSurface constructs a surface from the global grid flags.
func buildSurface(c *cli.Context) (*mosaic.Surface, error) {
	bg, err := mosaic.ParseColor(c.String("background"))
	if err != nil {
		return nil, err
	}
	grid := mosaic.Grid{
		TileWidth:  c.Int("tile-width"),
		TileHeight: c.Int("tile-height"),
		Cols:       c.Int("cols"),
		Rows:       c.Int("rows"),
	}
	return mosaic.New(grid, mosaic.WithBackground(bg))
}

// collectFiles expands directory arguments into their image files and
// passes regular files through unchanged.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		var found []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
				found = append(found, filepath.Join(arg, e.Name()))
			}
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}

// decodeFiles decodes every file into a mosaic image.
func decodeFiles(paths []string) ([]*mosaic.Image, error) {
	dec := codec.Std{}
	imgs := make([]*mosaic.Image, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return nil, err
		}
		img, err := dec.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		imgs = append(imgs, img)
	}
	return imgs, nil
}

// loadTiles places images into the grid left-to-right, top-to-bottom,
// dropping any overflow beyond the last slot.
func loadTiles(s *mosaic.Surface, imgs []*mosaic.Image) error {
	grid := s.Grid()
	for i, img := range imgs {
		if i >= grid.NumTiles() {
			mosaic.Logger().Warn("grid full, skipping remaining images",
				"loaded", grid.NumTiles(), "total", len(imgs))
			break
		}
		if err := s.LoadTile(i%grid.Cols, i/grid.Cols, img); err != nil {
			return err
		}
	}
	return nil
}

// prepare builds the surface and loads the images named on the command line.
func prepare(c *cli.Context) (*mosaic.Surface, []*mosaic.Image, error) {
	setupLogging(c)
	s, err := buildSurface(c)
	if err != nil {
		return nil, nil, err
	}
	files, err := collectFiles(c.Args().Slice())
	if err != nil {
		return nil, nil, err
	}
	imgs, err := decodeFiles(files)
	if err != nil {
		return nil, nil, err
	}
	if err := loadTiles(s, imgs); err != nil {
		return nil, nil, err
	}
	return s, imgs, nil
}

func viewAction(c *cli.Context) error {
	s, imgs, err := prepare(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return cli.Exit(err, 1)
	}
	if err := screen.Init(); err != nil {
		return cli.Exit(err, 1)
	}
	defer screen.Fini()

	view := termview.New(screen, s, c.Int("fps"))

	// 'g' regenerates the grid with one more column. The engine never
	// resizes in place: the driver builds a fresh surface, carries the
	// background over and re-loads the surviving tiles.
	view.OnRune = func(r rune) {
		if r != 'g' {
			return
		}
		grid := s.Grid()
		grid.Cols++
		next, err := mosaic.New(grid, mosaic.WithBackground(s.Background()))
		if err != nil {
			mosaic.Logger().Warn("grid regeneration failed", "error", err)
			return
		}
		if err := loadTiles(next, imgs); err != nil {
			mosaic.Logger().Warn("tile migration failed", "error", err)
			return
		}
		s = next
		view.SetSurface(s)
	}

	if err := view.Run(context.Background()); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func renderAction(c *cli.Context) error {
	s, _, err := prepare(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if c.Bool("flat") {
		s.FillBackground()
	} else {
		s.GeneratePattern(c.Int("frame"))
	}
	if err := s.SavePNG(c.String("output")); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func gifAction(c *cli.Context) error {
	s, _, err := prepare(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	f, err := os.Create(c.String("output")) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := export.EncodeGIF(f, s, c.Int("frames"), c.Int("delay")); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
