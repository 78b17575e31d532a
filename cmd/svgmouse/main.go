// Command svgmouse draws the outlines of an SVG file
// with the mouse, inside an area chosen on screen.
//
// Usage:
//
//	svgmouse [-dry-run] [file.svg]
//
// See internal/config for the environment variables.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/svgmouse/internal/config"
	"github.com/benoitkugler/svgmouse/svgdraw"
	"github.com/benoitkugler/svgmouse/svgdraw/robot"
	"github.com/benoitkugler/svgmouse/svgicon"
	"github.com/benoitkugler/svgmouse/svgpath"
	"github.com/benoitkugler/svgmouse/svgpdf"
	"github.com/benoitkugler/svgmouse/svgraster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	flag.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "write a preview instead of moving the mouse")
	flag.StringVar(&cfg.Preview, "preview", cfg.Preview, "preview file for dry runs (.png or .pdf)")
	flag.Parse()
	if flag.NArg() > 0 {
		cfg.File = flag.Arg(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	svgdraw.SetLogger(logger)

	a := app{cfg: cfg, prompt: newPrompter(os.Stdin, os.Stdout), newPointer: newRobot}
	if err := a.run(); err != nil {
		slog.Error("svgmouse", "error", err)
		os.Exit(1)
	}
}

func newRobot() (svgdraw.Pointer, error) {
	p, err := robot.New()
	if err != nil {
		return nil, err
	}
	return p, nil
}

type app struct {
	cfg        *config.Config
	prompt     *prompter
	newPointer func() (svgdraw.Pointer, error)
}

func (a app) run() error {
	model, err := a.load()
	if err != nil {
		return err
	}
	if a.cfg.DryRun {
		return a.preview(model)
	}

	pointer, err := a.newPointer()
	if err != nil {
		return fmt.Errorf("pointer automation: %w", err)
	}
	area, err := a.prompt.askArea(pointer)
	if err != nil {
		return err
	}
	transform := fitModel(model, area)
	if err = a.prompt.countdown(a.cfg.Countdown); err != nil {
		return err
	}

	controller := svgdraw.NewController(svgdraw.NewPaced(pointer, a.cfg.Delay, nil))
	report(a.prompt.out, controller.Draw(model, transform))
	return nil
}

func (a app) load() (*svgpath.Model, error) {
	if err := a.prompt.waitEnter(
		fmt.Sprintf("The outlines of %q will be drawn.", a.cfg.File),
		"Only <path> elements are drawn: convert text, shapes and images to paths first.",
		"Press Enter to continue.",
	); err != nil {
		return nil, err
	}
	icon, err := svgicon.ReadIcon(a.cfg.File, a.cfg.ErrorMode)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", a.cfg.File, err)
	}
	slog.Info("svg loaded", "file", a.cfg.File, "shapes", icon.Shapes.Len(), "titles", icon.Titles)
	return &icon.Shapes, nil
}

// fitModel maps the model into `area`. An empty model needs no transform.
func fitModel(model *svgpath.Model, area svgpath.Rect) svgpath.Matrix2D {
	box, err := model.BoundingBox()
	if errors.Is(err, svgpath.ErrNoBounds) {
		return svgpath.Identity
	}
	return svgpath.Fit(box, area)
}

// preview draws into a Recorder, and saves the result as an image.
func (a app) preview(model *svgpath.Model) error {
	w, h := a.cfg.PreviewWidth, a.cfg.PreviewHeight
	area := svgpath.NewRect(svgpath.Point{}, svgpath.Point{X: float64(w), Y: float64(h)})
	rec := svgdraw.NewRecorder(0, 0)
	ok := svgdraw.NewController(rec).Draw(model, fitModel(model, area))

	var err error
	if strings.EqualFold(filepath.Ext(a.cfg.Preview), ".pdf") {
		err = svgpdf.SavePDF(a.cfg.Preview, rec, float64(w), float64(h))
	} else {
		err = svgraster.SavePNG(a.cfg.Preview, rec, w, h)
	}
	if err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}
	slog.Info("preview written", "file", a.cfg.Preview, "actions", len(rec.Actions()))
	report(a.prompt.out, ok)
	return nil
}

func report(out io.Writer, ok bool) {
	if ok {
		fmt.Fprintln(out, "Done!")
	} else {
		fmt.Fprintln(out, "Aborted!")
	}
}
