// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package document

import (
	"bytes"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// LoadYAML decodes a YAML document. Unknown fields are rejected so a
// typoed key fails loudly instead of silently dropping proof lines.
func LoadYAML(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, oops.Code("BAD_YAML").Wrapf(err, "decoding YAML document")
	}
	return &doc, nil
}
