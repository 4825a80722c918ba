package app

import (
	"encoding/json"

	"github.com/cashapp/triple"
	"github.com/cashapp/triple/errors"
	"github.com/cashapp/triple/ui"
)

type hostCmd struct {
	JSON bool `help:"Format as JSON." default:"false"`
}

func (h *hostCmd) Run(l *ui.UI) error {
	if h.JSON {
		js, err := json.Marshal(triple.Host)
		if err != nil {
			return errors.WithStack(err)
		}
		l.Printf("%s\n", string(js))
		return nil
	}
	l.Printf("%s\n", triple.Host)
	return nil
}
