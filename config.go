package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

const envDir = "FLATICON_DIR"

var errNoDir = errors.New("no icon directory given")

type config struct {
	Dir     string
	DryRun  bool
	Verbose bool
	NoColor bool
}

// parseConfig reads flags from args. The directory comes from the first
// positional argument, then -dir, then $FLATICON_DIR.
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("flaticon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Dir, "dir", "", "icon `directory` to flatten in place")
	fs.BoolVar(&cfg.DryRun, "n", false, "dry run: report what would change, write nothing")
	fs.BoolVar(&cfg.Verbose, "v", false, "log debug details for every file")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: flaticon [flags] [directory]\n\n")
		fmt.Fprintf(stderr, "Removes the alpha channel from every .png file in directory by\n")
		fmt.Fprintf(stderr, "compositing it onto white. Files are overwritten in place.\n")
		fmt.Fprintf(stderr, "The directory may also be set with $%s.\n\n", envDir)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Dir = fs.Arg(0)
	default:
		fs.Usage()
		return cfg, errors.Errorf("expected one directory, got %d arguments", fs.NArg())
	}

	if cfg.Dir == "" {
		cfg.Dir = getenv(envDir)
	}
	if cfg.Dir == "" {
		fs.Usage()
		return cfg, errNoDir
	}
	return cfg, nil
}

func validateDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(err, "invalid icon directory")
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", dir)
	}
	return nil
}
