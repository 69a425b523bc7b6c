// File: io.go
// Role: Reading and writing rule files (a JSON array of rule sets).

package rules

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Read decodes a rule file. A failing record is reported with its index.
func Read(r io.Reader) ([]RewriteRuleSet, error) {
	var raws []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, errors.Wrap(fmt.Errorf("%w: %w", ErrMalformedRuleFile, err), "read rule file")
	}
	sets := make([]RewriteRuleSet, len(raws))
	for i, raw := range raws {
		if err := json.Unmarshal(raw, &sets[i]); err != nil {
			return nil, errors.Wrapf(asMalformed(err), "rule set %d", i)
		}
	}

	return sets, nil
}

// Write encodes sets as a rule file.
func Write(w io.Writer, sets []RewriteRuleSet) error {
	if sets == nil {
		sets = []RewriteRuleSet{}
	}
	if err := json.NewEncoder(w).Encode(sets); err != nil {
		return errors.Wrap(err, "write rule file")
	}

	return nil
}

// LoadFile reads a rule file from disk.
func LoadFile(path string) ([]RewriteRuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	sets, err := Read(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}

	return sets, nil
}

// SaveFile writes a rule file to disk, replacing any existing file.
func SaveFile(path string, sets []RewriteRuleSet) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	return Write(f, sets)
}

func wrapPart(err error, part string) error {
	return errors.WithMessage(asMalformed(err), part)
}

// asMalformed makes err match ErrMalformedRuleFile while keeping its own chain.
func asMalformed(err error) error {
	if stderrors.Is(err, ErrMalformedRuleFile) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrMalformedRuleFile, err)
}
