package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	headerFormat = "%-10s%10s%10s%10s\n"
	rowFormat    = "%-10s%10.2f%10.2f%10.2f\n"
)

// WriteText prints the table in fixed-width columns. With colored set
// the header and total lines are highlighted.
func WriteText(w io.Writer, t *Table, colored bool) error {
	header := color.New(color.Bold)
	total := color.New(color.FgCyan, color.Bold)
	if !colored {
		header.DisableColor()
		total.DisableColor()
	} else {
		header.EnableColor()
		total.EnableColor()
	}

	if _, err := header.Fprintf(w, headerFormat, "Phase", "Power", "Semi", "Condi"); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if _, err := fmt.Fprintf(w, rowFormat, r.Phase, r.Power, r.Semi, r.Condi); err != nil {
			return err
		}
	}
	_, err := total.Fprintf(w, rowFormat, t.Total.Phase, t.Total.Power, t.Total.Semi, t.Total.Condi)
	return err
}

func MarshalPretty(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func WriteJSON(w io.Writer, t *Table) error {
	b, err := MarshalPretty(t)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
