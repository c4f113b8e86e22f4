package experiment

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/tspkit/store"
)

// CSVHeader is the header row written by WriteCSV.
var CSVHeader = []string{
	"Instance",
	"Algorithm",
	"Runs",
	"Average Time (s)",
	"Average Solution Quality",
	"Best Solution Quality",
	"RelError (%)",
	"Full Tour",
}

// WriteCSV writes one row per summary with two-decimal numbers.
func WriteCSV(w io.Writer, sums []Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, s := range sums {
		row := []string{
			s.Instance,
			s.Algorithm.String(),
			strconv.Itoa(s.Runs),
			fmt.Sprintf("%.2f", s.MeanElapsed.Seconds()),
			fmt.Sprintf("%.2f", s.MeanLength),
			fmt.Sprintf("%.2f", s.BestLength),
			fmt.Sprintf("%.2f", s.RelError),
			yesNo(s.Complete),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteTable writes an aligned, human-readable table.
func WriteTable(w io.Writer, sums []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "instance\talgorithm\truns\tbest\tmean\tstddev\trel.err\tavg time\tfull\t")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%.2f%%\t%s\t%s\t\n",
			s.Instance,
			s.Algorithm,
			humanize.Comma(int64(s.Runs)),
			humanize.CommafWithDigits(s.BestLength, 2),
			humanize.CommafWithDigits(s.MeanLength, 2),
			humanize.CommafWithDigits(s.StdDevLength, 2),
			s.RelError,
			s.MeanElapsed,
			yesNo(s.Complete))
	}

	return tw.Flush()
}

// SaveReport stores results.csv and results.txt under prefix and returns
// their keys.
func SaveReport(ctx context.Context, dst store.Store, prefix string, sums []Summary) ([]string, error) {
	var csvBuf, txtBuf bytes.Buffer
	if err := WriteCSV(&csvBuf, sums); err != nil {
		return nil, err
	}
	if err := WriteTable(&txtBuf, sums); err != nil {
		return nil, err
	}

	keys := []string{path.Join(prefix, "results.csv"), path.Join(prefix, "results.txt")}
	for i, data := range [][]byte{csvBuf.Bytes(), txtBuf.Bytes()} {
		if err := dst.Put(ctx, keys[i], data); err != nil {
			return nil, fmt.Errorf("failed to save report %s: %w", keys[i], err)
		}
	}

	return keys, nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}

	return "No"
}
