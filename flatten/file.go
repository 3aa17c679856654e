package flatten

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"

	"github.com/alex-vit/flaticon/internal/log"
	"github.com/alex-vit/flaticon/internal/writable"
	"github.com/alex-vit/flaticon/report"
	"github.com/pkg/errors"
)

// Observer receives per-file progress from the flattener.
type Observer interface {
	Fixing(name string)
	AlreadyOK(name string)
	Failed(name string, err error)
}

// Options control how a single file is handled.
type Options struct {
	// DryRun classifies and flattens in memory but never writes.
	DryRun bool
	// Observer may be nil.
	Observer Observer
}

// ProcessFile flattens the PNG at path in place if it has transparency.
// It never returns an error; failures are reported in the Outcome.
func ProcessFile(path string, opts Options) report.Outcome {
	name := filepath.Base(path)
	obs := opts.Observer
	if obs == nil {
		obs = nopObserver{}
	}

	o := processFile(path, name, opts.DryRun, obs)
	o.Name = name

	switch o.Status {
	case report.AlreadyOK:
		obs.AlreadyOK(name)
	case report.Errored:
		obs.Failed(name, o.Err)
	}
	return o
}

func processFile(path, name string, dryRun bool, obs Observer) report.Outcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return failed(errors.Wrap(err, "failed to read file"))
	}

	h, err := Detect(bytes.NewReader(data))
	if err != nil {
		return failed(err)
	}
	log.Debugf("%s: %dx%d, %d-bit, color type %d, variant %v",
		name, h.Width, h.Height, h.BitDepth, h.ColorType, h.Variant)

	if h.Variant == Opaque {
		return report.Outcome{Status: report.AlreadyOK, Variant: h.Variant.String()}
	}

	obs.Fixing(name)

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return failed(errors.Wrap(err, "failed to decode PNG"))
	}

	out, err := Flatten(img, h.Variant)
	if err != nil {
		return failed(errors.Wrap(err, "failed to flatten"))
	}

	var buf bytes.Buffer
	if err := Encode(&buf, out); err != nil {
		return failed(errors.Wrap(err, "failed to encode PNG"))
	}

	if dryRun {
		log.Debugf("%s: dry run, would write %d bytes (was %d)", name, buf.Len(), len(data))
	} else {
		if err := replaceFile(path, buf.Bytes()); err != nil {
			return failed(err)
		}
		log.Debugf("%s: wrote %d bytes (was %d)", name, buf.Len(), len(data))
	}

	return report.Outcome{Status: report.Fixed, Variant: h.Variant.String()}
}

func failed(err error) report.Outcome {
	return report.Outcome{Status: report.Errored, Err: err}
}

// replaceFile overwrites path with data through a freshly created sibling
// temp file and a rename, keeping the original permission bits. Symlinks are
// followed so the link target is rewritten and the link stays in place.
func replaceFile(path string, data []byte) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return errors.Wrap(err, "failed to resolve path")
	}
	info, err := os.Stat(target)
	if err != nil {
		return errors.Wrap(err, "failed to stat file")
	}
	if err := writable.Check(target); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(err, "failed to write temp file")
	}
	if err := f.Chmod(info.Mode().Perm()); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(err, "failed to set permissions")
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "failed to close temp file")
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "failed to replace file")
	}
	return nil
}

type nopObserver struct{}

func (nopObserver) Fixing(string)        {}
func (nopObserver) AlreadyOK(string)     {}
func (nopObserver) Failed(string, error) {}
