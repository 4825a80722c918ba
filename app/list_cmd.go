package app

import (
	"encoding/json"

	"github.com/alecthomas/colour"

	"github.com/cashapp/triple"
	"github.com/cashapp/triple/errors"
	"github.com/cashapp/triple/ui"
)

type listCmd struct {
	JSON bool `help:"Format list as a JSON array." default:"false"`
}

func (c *listCmd) Run(l *ui.UI) error {
	if c.JSON {
		js, err := json.Marshal(triple.Known)
		if err != nil {
			return errors.WithStack(err)
		}
		l.Printf("%s\n", string(js))
		return nil
	}
	for _, t := range triple.Known {
		colour.Printf("^B^2%-36s^R %s/%s/%s/%s\n", t.Name, t.Arch, t.Vendor, t.OS, t.ABI)
	}
	return nil
}
