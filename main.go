package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/WowVeryLogin/flycam/src/app"
	"github.com/WowVeryLogin/flycam/src/config"
	"github.com/WowVeryLogin/flycam/src/logging"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "flycam.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = config.Default(), nil
		*configPath = ""
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	app := app.New(cfg, *configPath, log)
	defer app.Close()
	app.Run()
}
