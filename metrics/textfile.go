// SPDX-License-Identifier: MIT

package metrics

import (
	"bytes"

	"github.com/katalvlaran/lvtour/internal/errs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/afero"
)

// WriteTextfile gathers g and writes it to path on fs in the Prometheus text
// exposition format, ready for the node exporter's textfile collector.
func WriteTextfile(fs afero.Fs, path string, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errs.Context(err, "metrics: gather")
	}

	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return errs.Context(err, "metrics: encode %s", mf.GetName())
		}
	}

	return errs.Context(afero.WriteFile(fs, path, buf.Bytes(), 0644), "metrics: write %s", path)
}
