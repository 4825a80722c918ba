package app

import (
	"encoding/json"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/cashapp/triple"
	"github.com/cashapp/triple/errors"
	"github.com/cashapp/triple/ui"
)

func TestParseCmdJSON(t *testing.T) {
	l, buf := ui.NewForTesting()
	l.SetLevel(ui.LevelFatal)
	cmd := &parseCmd{Triples: []string{"x86_64-apple-macosx10.10"}, JSON: true}
	assert.NoError(t, cmd.Run(l))
	assert.Equal(t,
		`[{"triple":"x86_64-apple-macosx10.10","arch":"x86_64","vendor":"apple","os":"macosx","abi":"unknown"}]`+"\n",
		buf.String())
}

func TestParseCmdBadTriple(t *testing.T) {
	l, _ := ui.NewForTesting()
	l.SetLevel(ui.LevelFatal)
	cmd := &parseCmd{Triples: []string{"bogus"}, JSON: true}
	err := cmd.Run(l)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, triple.ErrBadFormat))
}

func TestHostCmdJSON(t *testing.T) {
	l, buf := ui.NewForTesting()
	cmd := &hostCmd{JSON: true}
	assert.NoError(t, cmd.Run(l))

	js, err := json.Marshal(triple.Host)
	assert.NoError(t, err)
	assert.Equal(t, string(js)+"\n", buf.String())
}

func TestListCmdJSON(t *testing.T) {
	l, buf := ui.NewForTesting()
	cmd := &listCmd{JSON: true}
	assert.NoError(t, cmd.Run(l))

	var decoded []triple.Triple
	assert.NoError(t, json.Unmarshal([]byte(buf.String()), &decoded))
	assert.Equal(t, triple.Known, decoded)
}
