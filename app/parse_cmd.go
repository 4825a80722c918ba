package app

import (
	"encoding/json"

	"github.com/alecthomas/colour"
	"github.com/alecthomas/repr"

	"github.com/cashapp/triple"
	"github.com/cashapp/triple/errors"
	"github.com/cashapp/triple/ui"
)

type parseCmd struct {
	Triples []string `arg:"" required:"" help:"Triple identifiers to parse." predictor:"triple"`
	JSON    bool     `help:"Format classification as a JSON array." default:"false"`
	Repr    bool     `help:"Dump parsed values as Go syntax." hidden:""`
}

func (p *parseCmd) Run(l *ui.UI) error {
	parsed := make([]triple.Triple, 0, len(p.Triples))
	for _, name := range p.Triples {
		t, err := triple.Parse(name)
		if err != nil {
			return errors.WithStack(err)
		}
		l.Tracef("classified %s", t)
		parsed = append(parsed, t)
	}

	if p.JSON {
		js, err := json.Marshal(parsed)
		if err != nil {
			return errors.WithStack(err)
		}
		l.Printf("%s\n", string(js))
		return nil
	}

	if p.Repr {
		l.Printf("%s\n", repr.String(parsed, repr.Indent("  ")))
		return nil
	}

	for i, t := range parsed {
		if i > 0 {
			colour.Printf("\n")
		}
		colour.Printf("^B^2Triple:^R %s\n", t.Name)
		colour.Printf("^B^2Architecture:^R %s\n", t.Arch)
		colour.Printf("^B^2Vendor:^R %s\n", t.Vendor)
		colour.Printf("^B^2OS:^R %s\n", t.OS)
		colour.Printf("^B^2ABI:^R %s\n", t.ABI)
	}
	return nil
}
