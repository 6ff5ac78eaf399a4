package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"kanacombo/internal/candidate"
	"kanacombo/internal/completion"
	"kanacombo/internal/config"
	"kanacombo/internal/itemsource"
	"kanacombo/internal/kana"
	"kanacombo/internal/logger"
	"kanacombo/internal/rows"
	"kanacombo/internal/tui"
)

func main() {
	args := os.Args[1:]

	var err error
	if len(args) > 0 {
		switch args[0] {
		case "schema":
			err = runSchema(os.Stdout)
		case "romaji":
			err = runRomaji(os.Stdout, args[1:])
		case "match":
			err = runMatch(os.Stdout, os.Stdin, args[1:])
		default:
			err = runTUI(args)
		}
	} else {
		err = runTUI(args)
	}

	if err != nil {
		log.Fatalf("kanacombo: %v", err)
	}
}

func runSchema(w io.Writer) error {
	data, err := itemsource.SchemaJSON()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func runRomaji(w io.Writer, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: kanacombo romaji <katakana>...")
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KATAKANA\tHIRAGANA\tROMAJI\tTOKENS")
	for _, arg := range args {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			arg,
			kana.ToHiragana(arg),
			kana.ToRomaji(arg),
			kana.SearchTokens("", arg, ""),
		)
	}
	return tw.Flush()
}

func runMatch(w io.Writer, stdin io.Reader, args []string) error {
	fs := flag.NewFlagSet("match", flag.ContinueOnError)
	table := fs.String("table", itemsource.DefaultTable, "SQLite table to read when the item file is a database")
	fs.SetOutput(w)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errors.New("usage: kanacombo match [-table name] <items-file|-> <query>")
	}

	var (
		items []candidate.Item
		err   error
	)
	if fs.Arg(0) == "-" {
		items, err = itemsource.DecodeJSON(stdin)
	} else {
		items, err = itemsource.Load(fs.Arg(0), *table)
	}
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}

	model := candidate.NewModel(candidate.NewHistory(0))
	model.SetItems(items)
	t := rows.Build(model.Entries(), nil, rows.Options{})

	for _, idx := range completion.Filter(t.Rows, fs.Arg(1)) {
		r := t.At(idx)
		fmt.Fprintf(w, "%s\t%s\n", r.ID(), r.Text())
	}
	return nil
}

func runTUI(args []string) error {
	fs := flag.NewFlagSet("kanacombo", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a TOML config file")
	initial := fs.String("select", "", "Id to select on start")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [options] [items-file]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(fs.Output(), "       %s schema | romaji <katakana>... | match <items-file|-> <query>\n\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(strings.TrimSpace(*configPath))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if fs.NArg() > 0 {
		cfg.Items.Path = fs.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(cfg.Log.Dir); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Close()
	logger.Debug("Starting kanacombo...")

	items := itemsource.Fruit()
	if cfg.Items.Path != "" {
		items, err = itemsource.Load(cfg.Items.Path, cfg.Items.Table)
		if err != nil {
			return fmt.Errorf("load items: %w", err)
		}
	}

	var watcher *itemsource.Watcher
	if cfg.Items.Watch {
		debounce := time.Duration(cfg.Items.DebounceMs) * time.Millisecond
		watcher, err = itemsource.Watch(cfg.Items.Path, cfg.Items.Table, debounce)
		if err != nil {
			return fmt.Errorf("watch items: %w", err)
		}
		defer watcher.Stop()
	}

	id, label, err := tui.Run(tui.Options{
		History:    candidate.NewHistory(cfg.Combo.HistoryCapacity),
		Rows:       cfg.RowOptions(),
		Items:      items,
		InitialID:  candidate.ID(*initial),
		MaxVisible: cfg.Combo.MaxVisible,
		Watcher:    watcher,
	})
	if err != nil {
		return err
	}

	if id.IsNull() {
		fmt.Println("no selection")
		return nil
	}
	fmt.Printf("%s\t%s\n", id, label)
	return nil
}
