package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/occidere/mmdownloader/internal/config"
	"github.com/occidere/mmdownloader/internal/logger"
	"github.com/occidere/mmdownloader/internal/model"
	"github.com/occidere/mmdownloader/internal/sysinfo"
	"github.com/occidere/mmdownloader/internal/tui"
)

var version = "dev"

func main() {
	baseDirFlag := flag.String("base-dir", "", "Base directory (overrides MMDL_BASE_DIR)")
	flag.Parse()

	info, err := sysinfo.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *baseDirFlag != "" {
		info.BaseDir = *baseDirFlag
	}

	errLog, closeLog := logger.NewFileLogger("mmdl-settings", info.ErrorLogFile())
	defer closeLog()

	rt := model.NewRuntime(version)
	cfg := config.New(info, rt.Registry(), errLog)
	cfg.Init()

	if err := tui.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
