package formatter

import (
	"bytes"
	"encoding/json"

	"github.com/davecgh/go-spew/spew"

	"github.com/mcncl/goadf/internal/errors"
	"github.com/mcncl/goadf/internal/models"
)

// Formatter renders generic JSON values and decoded trees for the terminal
type Formatter struct {
	Indent     string
	EscapeHTML bool
}

// NewFormatter creates a new Formatter instance producing compact JSON
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders value as JSON text terminated by a newline. Object keys are
// sorted. An empty Indent produces compact output.
func (f *Formatter) Format(value models.JSONValue) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(f.EscapeHTML)
	if f.Indent != "" {
		enc.SetIndent("", f.Indent)
	}
	if err := enc.Encode(value); err != nil {
		return "", errors.NewOutputError("failed to encode JSON output", err)
	}
	return buf.String(), nil
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders any Go value, typically a decoded node tree, as a debug listing
func (f *Formatter) Dump(v any) string {
	return dumpConfig.Sdump(v)
}
