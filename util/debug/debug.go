package debug

import (
	"fmt"
	"os"

	"github.com/alecthomas/hcl"
)

// Flags set from the HCL formatted TRIPLE_DEBUG envar.
var Flags struct {
	ErrorTrace bool `hcl:"errortrace,optional" help:"Attach source locations to errors."`
}

func init() {
	envar := os.Getenv("TRIPLE_DEBUG")
	err := hcl.Unmarshal([]byte(envar), &Flags, hcl.BareBooleanAttributes(true))
	if err != nil {
		baseErr := err
		schema, err := hcl.Schema(&Flags)
		if err != nil {
			panic(err)
		}
		schemaBytes, err := hcl.MarshalAST(schema)
		if err != nil {
			panic(err)
		}
		fmt.Fprintf(os.Stderr, "Invalid TRIPLE_DEBUG=%q: %s\n\nSchema:\n\n%s\n", envar, baseErr, string(schemaBytes))
		os.Exit(1)
	}
}
