package tables

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"bosstime/internal/estimate"
)

func ProfilePath(dir string, c estimate.Category) string {
	return filepath.Join(dir, string(c)+".csv")
}

// LoadProfile reads <dir>/<category>.csv, a header row followed by
// (time, dps) rows in time order. Order is not checked here.
func LoadProfile(dir string, c estimate.Category) (*estimate.Profile, error) {
	path := ProfilePath(dir, c)
	rows, err := readRows(path, 2)
	if err != nil {
		return nil, fmt.Errorf("%s dps table: %w", c, err)
	}

	samples := make([]estimate.Sample, 0, len(rows))
	for _, r := range rows {
		t, err := r.float(path, 0, "time", nonNegative)
		if err != nil {
			return nil, fmt.Errorf("%s dps table: %w", c, err)
		}
		d, err := r.float(path, 1, "dps", nonNegative)
		if err != nil {
			return nil, fmt.Errorf("%s dps table: %w", c, err)
		}
		samples = append(samples, estimate.Sample{Time: t, DPS: d})
	}

	log.Debug().Str("category", string(c)).Str("path", path).Int("samples", len(samples)).Msg("dps profile loaded")
	return estimate.NewProfile(c, samples), nil
}

// LoadLibrary loads every category's profile once. The first failing
// table aborts the load.
func LoadLibrary(dir string) (*estimate.Library, error) {
	var profiles []*estimate.Profile
	for _, c := range estimate.Categories() {
		p, err := LoadProfile(dir, c)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return estimate.NewLibrary(profiles...), nil
}
