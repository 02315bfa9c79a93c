package main

import (
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog"

	"github.com/occidere/mmdownloader/internal/binding"
	"github.com/occidere/mmdownloader/internal/config"
	"github.com/occidere/mmdownloader/internal/logger"
	"github.com/occidere/mmdownloader/internal/model"
	"github.com/occidere/mmdownloader/internal/sysinfo"
)

var version = "dev"

func usage() {
	fmt.Println("MMDownloader settings - inspect and change MMDownloader.properties")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  mmdl-config [options] path")
	fmt.Println("  mmdl-config [options] list")
	fmt.Println("  mmdl-config [options] get KEY")
	fmt.Println("  mmdl-config [options] set KEY VALUE")
	fmt.Println("  mmdl-config [options] export")
	fmt.Println("  mmdl-config [options] slots")
	fmt.Println()
	fmt.Println("For interactive editing, use: mmdl-settings")
	fmt.Println()
	flag.PrintDefaults()
}

func main() {
	// Command line flags
	var (
		baseDirFlag = flag.String("base-dir", "", "Base directory (overrides MMDL_BASE_DIR)")
		formatFlag  = flag.String("format", config.FormatProperties, "Export format: properties, json or yaml")
		verboseFlag = flag.Bool("verbose", false, "Log settings lifecycle to stderr")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	info, err := sysinfo.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving directories: %v\n", err)
		os.Exit(1)
	}
	if *baseDirFlag != "" {
		info.BaseDir = *baseDirFlag
	}

	errLog, closeLog := logger.NewFileLogger("mmdl-config", info.ErrorLogFile())
	defer closeLog()

	var opts []config.Option
	if *verboseFlag {
		opts = append(opts, config.WithLogger(logger.NewLogger("mmdl-config", os.Stderr).WithLevel(zerolog.DebugLevel)))
	}

	rt := model.NewRuntime(version)
	registry := rt.Registry()
	cfg := config.New(info, registry, errLog, opts...)
	cfg.Init()

	if err := run(cfg, registry, *formatFlag, flag.Args()); err != nil {
		errLog.Record("mmdl-config "+flag.Arg(0)+" failed", cfg.Path(), err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Configuration, registry *binding.Registry, format string, args []string) error {
	switch args[0] {
	case "path":
		fmt.Println(cfg.Path())
		return nil

	case "list":
		return cfg.Export(os.Stdout, config.FormatProperties)

	case "get":
		if len(args) != 2 {
			return fmt.Errorf("usage: get KEY")
		}
		if !slices.Contains(cfg.Keys(), args[1]) {
			return fmt.Errorf("%s is not set", args[1])
		}
		fmt.Println(cfg.GetString(args[1], ""))
		return nil

	case "set":
		if len(args) != 3 {
			return fmt.Errorf("usage: set KEY VALUE")
		}
		cfg.SetProperty(args[1], args[2])
		return cfg.Refresh()

	case "export":
		return cfg.Export(os.Stdout, format)

	case "slots":
		// Settings that are bound into the running application.
		for _, name := range registry.Names() {
			fmt.Println(name)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

