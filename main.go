package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"lessondeck/config"
	"lessondeck/content"
	"lessondeck/deck"
	"lessondeck/export"
	"lessondeck/logger"
)

// options are the command-line settings; empty values defer to the config file.
type options struct {
	configPath string
	deckPath   string
	output     string
	backend    string
	logDir     string
	dryRun     bool
	verbose    bool
}

func main() {
	var opts options
	flags := pflag.NewFlagSet("lessondeck", pflag.ExitOnError)
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&opts.deckPath, "deck", "d", "", "YAML deck file (default: built-in lesson report)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output .pptx path (default: the deck's own file name)")
	flags.StringVarP(&opts.backend, "backend", "b", "", "Renderer: "+strings.Join(export.Backends(), "|"))
	flags.StringVar(&opts.logDir, "log-dir", "", "Directory for run logs")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Build in memory and print a slide summary instead of writing")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr")
	_ = flags.Parse(os.Args[1:])

	log := logger.NewLogger()
	defer log.Close()

	path, err := run(opts, log, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "生成 PPT 失败: %v\n", err)
		log.Close()
		os.Exit(1)
	}
	if path != "" {
		fmt.Printf("PPT文件已生成：%s\n", path)
	}
}

// run loads configuration and the deck, builds it and saves it. It returns the
// written path, or "" for a dry run.
func run(opts options, log *logger.Logger, stdout io.Writer) (string, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return "", wrapStep("load config", opts.configPath, err)
		}
		cfg = loaded
	}
	applyFlags(&cfg, opts)

	if opts.verbose {
		log.Attach(os.Stderr)
	}
	if cfg.LogDir != "" {
		if err := log.Init(cfg.LogDir); err != nil {
			return "", wrapStep("init log", cfg.LogDir, err)
		}
	}

	runID := uuid.NewString()
	log.Infow("run started", "run", runID, "backend", cfg.Backend, "deck", deckSource(cfg))

	d, err := loadDeck(cfg)
	if err != nil {
		return "", err
	}

	doc, err := export.NewDocument(cfg.Backend)
	if err != nil {
		return "", wrapStep("select backend", cfg.Backend, err)
	}
	doc.SetTitle(d.Title)

	b := deck.NewBuilder(doc)
	b.SetLogger(log.Log)
	if err := b.AddAll(d.Slides, cfg.Style); err != nil {
		log.Errorw("build failed", "run", runID, "error", err)
		return "", wrapStep("build deck", "", err)
	}

	if opts.dryRun {
		mem, ok := doc.(*deck.MemoryDocument)
		if !ok {
			return "", wrapStep("dry run", cfg.Backend, fmt.Errorf("backend is not in-memory"))
		}
		fmt.Fprintf(stdout, "%s (%d slides)\n", d.Title, b.Len())
		for _, line := range mem.Summary() {
			fmt.Fprintln(stdout, line)
		}
		log.Infow("dry run finished", "run", runID, "slides", b.Len())
		return "", nil
	}

	out := cfg.Output
	if out == "" {
		out = d.Output
	}
	if out == "" {
		out = "deck.pptx"
	}
	if err := b.Save(out); err != nil {
		log.Errorw("save failed", "run", runID, "path", out, "error", err)
		return "", wrapStep("save", out, err)
	}
	log.Infow("run finished", "run", runID, "slides", b.Len(), "path", out)
	return out, nil
}

func applyFlags(cfg *config.Config, opts options) {
	if opts.deckPath != "" {
		cfg.DeckFile = opts.deckPath
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if opts.backend != "" {
		cfg.Backend = opts.backend
	}
	if opts.logDir != "" {
		cfg.LogDir = opts.logDir
	}
	if opts.dryRun {
		cfg.Backend = export.BackendMemory
	}
}

func loadDeck(cfg config.Config) (deck.Deck, error) {
	if cfg.DeckFile == "" {
		d, err := content.Lesson()
		return d, wrapStep("load deck", "built-in", err)
	}
	d, err := deck.ReadDeckFile(cfg.DeckFile)
	return d, wrapStep("load deck", cfg.DeckFile, err)
}

func deckSource(cfg config.Config) string {
	if cfg.DeckFile == "" {
		return "built-in"
	}
	return cfg.DeckFile
}
