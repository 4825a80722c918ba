package triple

import (
	"github.com/posener/complete"
)

// Predictor is a shell completion predictor for well-known triple names.
type Predictor struct{}

func (p *Predictor) Predict(args complete.Args) []string { // nolint: golint
	res := make([]string, len(Known))
	for i, t := range Known {
		res[i] = t.Name
	}
	return res
}
