package main

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javajack/sheetgrid"
	"github.com/javajack/sheetgrid/raster"
)

// viewportFlags are shared by every command that builds a session.
type viewportFlags struct {
	sheet   string
	width   int
	height  int
	scrollX float64
	scrollY float64
	rules   []string
	fonts   []string
	debug   bool
}

func (f *viewportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "Sheet name (default: active sheet)")
	cmd.Flags().IntVar(&f.width, "width", 800, "Viewport width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 600, "Viewport height in pixels")
	cmd.Flags().Float64Var(&f.scrollX, "scroll-x", 0, "Horizontal scroll delta in pixels")
	cmd.Flags().Float64Var(&f.scrollY, "scroll-y", 0, "Vertical scroll delta in pixels")
	cmd.Flags().StringArrayVar(&f.rules, "rule", nil, "Background rule COLOR=CONDITION, e.g. '#F3F6FC=row % 2 == 0'")
	cmd.Flags().StringArrayVar(&f.fonts, "font", nil, "Font file FAMILY=PATH, e.g. 'Open Sans=OpenSans.ttf'")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "Print debug traces to stderr")
}

// open loads the workbook, mounts a canvas and runs the requested scrolls.
func (f *viewportFlags) open(ctx context.Context, path string) (*sheetgrid.Session, *raster.Canvas, error) {
	src, err := sheetgrid.OpenWorkbook(path, f.sheet)
	if err != nil {
		return nil, nil, err
	}

	var canvasOpts []raster.Option
	for _, spec := range f.fonts {
		family, file, ok := strings.Cut(spec, "=")
		if !ok || family == "" || file == "" {
			return nil, nil, fmt.Errorf("invalid --font %q: want FAMILY=PATH", spec)
		}
		canvasOpts = append(canvasOpts, raster.WithFontFile(family, file))
	}
	canvas := raster.New(f.width, f.height, canvasOpts...)

	opts := []sheetgrid.Option{sheetgrid.WithSurface(canvas), sheetgrid.WithDebug(f.debug)}
	for _, spec := range f.rules {
		condition, c, err := parseRule(spec)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, sheetgrid.WithBackgroundRule(condition, c))
	}

	session, err := sheetgrid.NewSession(src, opts...)
	if err != nil {
		return nil, nil, err
	}
	if err := session.Start(ctx); err != nil {
		return nil, nil, err
	}
	if f.scrollY != 0 {
		session.ScrollBy(0, f.scrollY)
	}
	if f.scrollX != 0 {
		session.ScrollBy(f.scrollX, 0)
	}
	return session, canvas, nil
}

// parseRule splits "COLOR=CONDITION" on the first '='.
func parseRule(spec string) (string, color.RGBA, error) {
	hex, condition, ok := strings.Cut(spec, "=")
	condition = strings.TrimSpace(condition)
	if !ok || condition == "" {
		return "", color.RGBA{}, fmt.Errorf("invalid --rule %q: want COLOR=CONDITION", spec)
	}
	c, err := sheetgrid.ParseColor(hex)
	if err != nil {
		return "", color.RGBA{}, fmt.Errorf("invalid --rule %q: %w", spec, err)
	}
	return condition, c, nil
}

// parseColumn accepts a column label ("C") or a 1-based number ("3").
func parseColumn(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("invalid column %q: %w", s, sheetgrid.ErrInvalidIndex)
		}
		return n, nil
	}
	return sheetgrid.TitleToColumn(s)
}
