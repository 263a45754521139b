package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bosstime/internal/report"
	"bosstime/internal/tables"
)

type fixture struct {
	data string
	dps  string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	fx := fixture{data: filepath.Join(root, "data"), dps: filepath.Join(root, "dps")}
	require.NoError(t, os.Mkdir(fx.data, 0755))
	require.NoError(t, os.Mkdir(fx.dps, 0755))

	fx.write(t, fx.data, "vg.csv", "phase,health,coeff,power_coeff,participants\nP1,1000,1,0.5,5\nP2,3000,2,1,10\n")
	fx.write(t, fx.dps, "power.csv", "time,dps\n10,2\n")
	fx.write(t, fx.dps, "semi.csv", "time,dps\n10,4\n")
	fx.write(t, fx.dps, "condi.csv", "time,dps\n10,5\n")
	return fx
}

func (fx fixture) write(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun_Table(t *testing.T) {
	fx := newFixture(t)
	out, _, err := execute(t, "vg", "--data", fx.data, "--dps", fx.dps, "--no-color")
	require.NoError(t, err)
	assert.Equal(t,
		"Phase          Power      Semi     Condi\n"+
			"P1            200.00     50.00     40.00\n"+
			"P2             75.00     37.50     30.00\n"+
			"Total         275.00     87.50     70.00\n", out)
}

func TestRun_JSONWithTrace(t *testing.T) {
	fx := newFixture(t)
	out, logs, err := execute(t, "vg", "--data", fx.data, "--dps", fx.dps, "-f", "json", "--trace", "-w", "1")
	require.NoError(t, err)

	var tbl report.Table
	require.NoError(t, json.Unmarshal([]byte(out), &tbl))
	assert.Equal(t, 275.0, tbl.Total.Power)
	assert.Len(t, tbl.Events, 6)
	assert.Contains(t, logs, "solved")
}

func TestRun_ConfigFile(t *testing.T) {
	fx := newFixture(t)
	cfgPath := filepath.Join(t.TempDir(), "bosstime.yaml")
	fx.write(t, filepath.Dir(cfgPath), "bosstime.yaml",
		"data_dir: "+fx.data+"\ndps_dir: "+fx.dps+"\nformat: json\nlog_level: error\n")

	out, logs, err := execute(t, "vg", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"boss": "vg"`)
	assert.Empty(t, logs)
}

func TestRun_MalformedPhaseAbortsWithoutOutput(t *testing.T) {
	fx := newFixture(t)
	fx.write(t, fx.data, "vg.csv", "phase,health,coeff,power_coeff,participants\nP1,1000,1,0.5,5\nP2,lots,2,1,10\n")

	out, _, err := execute(t, "vg", "--data", fx.data, "--dps", fx.dps)
	require.Error(t, err)
	assert.ErrorIs(t, err, tables.ErrMalformedRecord)
	assert.Empty(t, out)
}

func TestRun_MissingDpsTable(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, os.Remove(filepath.Join(fx.dps, "semi.csv")))

	out, _, err := execute(t, "vg", "--data", fx.data, "--dps", fx.dps)
	require.Error(t, err)
	assert.ErrorIs(t, err, tables.ErrSourceNotFound)
	assert.Contains(t, err.Error(), "semi")
	assert.Empty(t, out)
}

func TestRun_BadFlags(t *testing.T) {
	fx := newFixture(t)
	_, _, err := execute(t, "vg", "--data", fx.data, "--dps", fx.dps, "-f", "xml")
	assert.Error(t, err)

	_, _, err = execute(t)
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	fx := newFixture(t)
	fx.write(t, fx.data, "gors.yaml", "phases: []\n")

	out, _, err := execute(t, "list", "--data", fx.data)
	require.NoError(t, err)
	assert.Equal(t, "gors\nvg\n", out)
}
