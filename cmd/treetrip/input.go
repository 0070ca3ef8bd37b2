// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/treetrip/treegen"
)

// errMissingK is returned when neither the document nor --k supplies K.
var errMissingK = errors.New("k is not set (document field \"k\" or --k)")

// inputDoc is the on-disk instance format. JSON documents are accepted too,
// since they parse as YAML flow style.
type inputDoc struct {
	K            int `yaml:"k"`
	treegen.Tree `yaml:",inline"`
}

// readInput decodes an instance from r.
func readInput(r io.Reader) (inputDoc, error) {
	var doc inputDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return inputDoc{}, fmt.Errorf("decode input: %w", err)
	}

	return doc, nil
}

// readInputFile decodes an instance from path; "-" reads stdin.
func readInputFile(path string) (inputDoc, error) {
	if path == "-" {
		return readInput(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return inputDoc{}, err
	}
	defer f.Close()

	return readInput(f)
}

// writeInput encodes doc as YAML.
func writeInput(w io.Writer, doc inputDoc) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode input: %w", err)
	}

	return enc.Close()
}

// resolveK applies the --k override; zero means "not given".
func (d inputDoc) resolveK(override int) (int, error) {
	if override != 0 {
		return override, nil
	}
	if d.K == 0 {
		return 0, errMissingK
	}

	return d.K, nil
}
