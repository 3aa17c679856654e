// Command flaticon removes transparency from the PNG icons in a directory,
// as required for App Store icon sets.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/alex-vit/flaticon/flatten"
	"github.com/alex-vit/flaticon/internal/log"
	"github.com/alex-vit/flaticon/report"
	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

var version = ""

func displayVersion() string {
	if version != "" {
		return version
	}
	return "dev"
}

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 once the directory has been scanned,
// even if some files failed, 1 if it could not be listed and 2 for bad usage.
func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	log.Output = stderr
	log.EnableColor = isTerminal(stderr)
	log.ResetLoggers()

	cfg, err := parseConfig(args, getenv, stderr)
	if err == flag.ErrHelp {
		return 0
	}
	if err != nil {
		log.Errorln(err)
		return 2
	}

	color := !cfg.NoColor && isTerminal(stdout)
	log.EnableColor = log.EnableColor && !cfg.NoColor
	log.EnableDebug = cfg.Verbose
	log.ResetLoggers()
	log.Debugf("flaticon %s", displayVersion())

	if err := validateDir(cfg.Dir); err != nil {
		log.Errorln(err)
		return 2
	}

	if cfg.DryRun {
		log.Infof("dry run: %s will not be modified", cfg.Dir)
	}

	p := report.NewPrinter(stdout, aurora.NewAurora(color))
	p.Banner(cfg.Dir, cfg.DryRun)

	s, err := flatten.Runner{Observer: p, DryRun: cfg.DryRun}.Run(cfg.Dir)
	if err != nil {
		log.Errorln(err)
		return 1
	}

	p.Summary(s)
	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
