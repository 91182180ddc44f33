// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package irscan

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/extract-main-proc/pkg/types"
)

// WriteReport encodes report as YAML to w.
func WriteReport(w io.Writer, report types.ScanReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&report); err != nil {
		return fmt.Errorf("encoding scan report: %w", err)
	}
	return enc.Close()
}
