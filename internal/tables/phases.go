package tables

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"bosstime/internal/config"
	"bosstime/internal/estimate"
)

var phaseExts = []string{".csv", ".yaml", ".yml"}

// LoadPhases reads the phase table of boss from dir. A CSV table wins
// over a YAML one when both exist.
func LoadPhases(dir, boss string) ([]estimate.BossPhase, error) {
	for _, ext := range phaseExts {
		path := filepath.Join(dir, boss+ext)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		var (
			phases []estimate.BossPhase
			err    error
		)
		if ext == ".csv" {
			phases, err = loadPhasesCSV(path)
		} else {
			phases, err = loadPhasesYAML(path)
		}
		if err != nil {
			return nil, fmt.Errorf("boss %s: %w", boss, err)
		}
		log.Debug().Str("boss", boss).Str("path", path).Int("phases", len(phases)).Msg("phase table loaded")
		return phases, nil
	}
	return nil, fmt.Errorf("%w: phase table for boss %q in %s", ErrSourceNotFound, boss, dir)
}

func loadPhasesCSV(path string) ([]estimate.BossPhase, error) {
	rows, err := readRows(path, 5)
	if err != nil {
		return nil, err
	}
	phases := make([]estimate.BossPhase, 0, len(rows))
	for _, r := range rows {
		bp := estimate.BossPhase{Label: r.fields[0]}
		fields := []struct {
			name string
			b    bound
			dst  *float64
		}{
			{"health", positive, &bp.Health},
			{"coeff", positive, &bp.Coeff},
			{"power_coeff", positive, &bp.PowerCoeff},
			{"participants", nonNegative, &bp.Participants},
		}
		for i, f := range fields {
			v, err := r.float(path, i+1, f.name, f.b)
			if err != nil {
				return nil, err
			}
			*f.dst = v
		}
		phases = append(phases, bp)
	}
	return phases, nil
}

func loadPhasesYAML(path string) ([]estimate.BossPhase, error) {
	bc, err := config.LoadBoss(path)
	if err != nil {
		return nil, &RecordError{Path: path, Field: "document", Err: err}
	}
	phases := make([]estimate.BossPhase, 0, len(bc.Phases))
	for i, def := range bc.Phases {
		bp := estimate.BossPhase{Label: def.Label}
		if bp.Label == "" {
			bp.Label = strconv.Itoa(i + 1)
		}
		fields := []struct {
			name string
			b    bound
			src  *float64
			dst  *float64
		}{
			{"health", positive, def.Health, &bp.Health},
			{"coeff", positive, def.Coeff, &bp.Coeff},
			{"power_coeff", positive, def.PowerCoeff, &bp.PowerCoeff},
			{"participants", nonNegative, def.Participants, &bp.Participants},
		}
		for _, f := range fields {
			name := fmt.Sprintf("phases[%d].%s", i, f.name)
			if f.src == nil {
				return nil, &RecordError{Path: path, Field: name, Err: errors.New("missing")}
			}
			if err := checkBound(*f.src, f.b); err != nil {
				return nil, &RecordError{Path: path, Field: name, Value: strconv.FormatFloat(*f.src, 'g', -1, 64), Err: err}
			}
			*f.dst = *f.src
		}
		phases = append(phases, bp)
	}
	return phases, nil
}

// ListBosses returns the names of the phase tables found in dir.
func ListBosses(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: data directory %s", ErrSourceNotFound, dir)
	}
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		for _, want := range phaseExts {
			if ext != want {
				continue
			}
			name := strings.TrimSuffix(e.Name(), ext)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}
