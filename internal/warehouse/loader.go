// Package warehouse implements the two schema-loading paths: a JSON
// view-dump file, and a live query against a Trino-fronting warehouse's
// information_schema.
package warehouse

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// View is a single (name, sql) pair as read from a JSON view dump or a
// warehouse row.
type View struct {
	Name string `json:"name"`
	SQL  string `json:"sql"`
}

// Dataset is the decoded shape of a JSON view-dump document: an optional
// description plus an ordered list of views.
type Dataset struct {
	Description string `json:"description,omitempty"`
	Views       []View `json:"views"`
}

// LoadJSON decodes r against the view-dump shape.
func LoadJSON(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, errors.Wrap(err, "decode view dump")
	}
	return &ds, nil
}

// LoadFile reads and decodes a JSON view-dump file from disk.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return LoadJSON(f)
}
