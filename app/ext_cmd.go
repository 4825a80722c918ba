package app

import (
	"github.com/alecthomas/colour"

	"github.com/cashapp/triple"
	"github.com/cashapp/triple/errors"
	"github.com/cashapp/triple/ui"
)

type extCmd struct {
	Triples []string `arg:"" required:"" help:"Triples to show extension conventions for." predictor:"triple"`
}

func (e *extCmd) Run(l *ui.UI) error {
	for _, name := range e.Triples {
		t, err := triple.Parse(name)
		if err != nil {
			return errors.WithStack(err)
		}
		colour.Printf("^B^2%s^R (%s)\n", t.Name, t.OS)
		colour.Printf("  dynamic library: %q\n", t.OS.DynamicLibraryExtension())
		colour.Printf("  executable:      %q\n", t.OS.ExecutableExtension())
		colour.Printf("  bundle:          %q\n", t.OS.BundleExtension())
	}
	return nil
}
