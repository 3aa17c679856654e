package flatten

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alex-vit/flaticon/internal/log"
	"github.com/alex-vit/flaticon/report"
	"github.com/pkg/errors"
)

// Suffix selects candidate files. The match is case-sensitive: "icon.PNG" is
// skipped.
const Suffix = ".png"

// Runner flattens every candidate file in a directory, one at a time.
type Runner struct {
	Observer Observer
	DryRun   bool
}

// Run processes dir and returns the totals. The only error it returns is a
// failure to list dir; per-file failures end up in Summary.Errors.
func (r Runner) Run(dir string) (report.Summary, error) {
	s := report.Summary{Dir: dir, DryRun: r.DryRun}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return s, errors.Wrap(err, "failed to list directory")
	}

	opts := Options{DryRun: r.DryRun, Observer: r.Observer}
	for _, e := range entries {
		if !IsCandidate(e.Name()) {
			continue
		}
		o := ProcessFile(filepath.Join(dir, e.Name()), opts)
		log.Debugf("%s: %v (%s)", o.Name, o.Status, o.Variant)
		s.Add(o)
	}

	log.Infof("scanned %d PNG files in %s", s.Total(), s.Dir)
	return s, nil
}

// IsCandidate reports whether a file name ends in Suffix.
func IsCandidate(name string) bool {
	return strings.HasSuffix(name, Suffix)
}
