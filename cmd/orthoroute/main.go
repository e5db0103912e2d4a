package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"orthoroute/config"
	"orthoroute/diagram"
	"orthoroute/render"
	"orthoroute/route"
)

// textScale is the number of diagram pixels per text column.
const textScale = 8

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "orthoroute:", err)
		os.Exit(1)
	}
}

type job struct {
	source  string
	cfg     *config.Config
	log     *slog.Logger
	diagram *diagram.Diagram
	routes  *route.Context
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("orthoroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "diagram `file` (YAML)")
	pngOut := fs.String("png", "", "write a PNG drawing to `file`")
	txtOut := fs.String("txt", "", "write a text drawing to `file`")
	asJSON := fs.Bool("json", false, "print routed paths as JSON on stdout")
	preview := fs.Bool("preview", cfg.Preview, "open the interactive preview")
	level := fs.String("v", cfg.LogLevel.String(), "log `level`: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		fs.Usage()
		return errors.New("missing -in")
	}

	lvl := cfg.LogLevel
	if err := lvl.UnmarshalText([]byte(*level)); err != nil {
		return fmt.Errorf("bad -v: %w", err)
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	j, err := load(*in, cfg, log)
	if err != nil {
		return err
	}

	if *pngOut != "" {
		if err := j.exportPNG(*pngOut); err != nil {
			return err
		}
	}
	if *txtOut != "" {
		if err := j.exportText(*txtOut); err != nil {
			return err
		}
	}
	if *asJSON {
		if err := writeJSON(stdout, j.routes); err != nil {
			return err
		}
	}
	if *preview {
		p := tea.NewProgram(newPreview(j), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return err
		}
	}
	return nil
}

func load(path string, cfg *config.Config, log *slog.Logger) (*job, error) {
	d, err := diagram.LoadFile(path)
	if err != nil {
		return nil, err
	}
	l := route.NewLayouter(route.WithOptions(cfg.Route), route.WithLogger(log))
	ctx, err := l.Layout(d)
	if err != nil {
		return nil, err
	}
	log.Info("diagram routed", "file", path, "nodes", len(d.Nodes()), "edges", ctx.Len())
	return &job{source: path, cfg: cfg, log: log, diagram: d, routes: ctx}, nil
}

func (j *job) exportPNG(name string) error {
	path := j.cfg.GetSavePath(name)
	if err := render.SavePNG(path, j.diagram, j.routes, j.cfg.Render); err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	j.log.Info("png written", "path", path)
	return nil
}

func (j *job) exportText(name string) error {
	path := j.cfg.GetSavePath(name)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WriteText(file, render.Text(j.diagram, j.routes, textScale)); err != nil {
		file.Close()
		return fmt.Errorf("export text: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("export text: %w", err)
	}
	j.log.Info("text written", "path", path)
	return nil
}
