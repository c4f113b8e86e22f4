// Package solution reads and writes .sol result files:
//
//	Best Distance: 4.00
//	Route: 1,2,3,4
//	Time Taken: 0.000012 seconds
//	Full Tour: Yes
//
// Route lists 1-based point labels. Full Tour is Yes only when brute force
// finished its enumeration.
package solution

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/tspkit/store"
	"github.com/katalvlaran/tspkit/tsp"
)

// ErrMalformed is returned by Read for input that is not a .sol file.
var ErrMalformed = errors.New("solution: malformed file")

const (
	fieldDistance = "Best Distance"
	fieldRoute    = "Route"
	fieldTime     = "Time Taken"
	fieldFull     = "Full Tour"

	// Ext is the file extension of result files.
	Ext = ".sol"
)

// Record is one persisted solver outcome.
type Record struct {
	Instance  string
	Algorithm tsp.Algorithm
	Cutoff    time.Duration
	Seed      *int64 // LS only

	Length   float64
	Route    []int // 1-based labels
	Elapsed  time.Duration
	Complete bool
}

// FromResult builds a Record from a solver result. seed is kept only for
// LocalSearch; the effective seed from res is used when seed is nil.
func FromResult(instance string, cutoff time.Duration, seed *int64, res tsp.Result) Record {
	rec := Record{
		Instance:  instance,
		Algorithm: res.Algorithm,
		Cutoff:    cutoff,
		Length:    res.Length,
		Route:     res.Tour.Labels(),
		Elapsed:   res.Elapsed,
		Complete:  res.Complete,
	}
	if res.Algorithm == tsp.LocalSearch {
		s := res.Seed
		if seed != nil {
			s = *seed
		}
		rec.Seed = &s
	}

	return rec
}

// Write encodes rec in .sol format.
func Write(w io.Writer, rec Record) error {
	route := make([]string, len(rec.Route))
	for i, id := range rec.Route {
		route[i] = strconv.Itoa(id)
	}
	full := "No"
	if rec.Complete {
		full = "Yes"
	}

	_, err := fmt.Fprintf(w, "%s: %.2f\n%s: %s\n%s: %.6f seconds\n%s: %s\n",
		fieldDistance, rec.Length,
		fieldRoute, strings.Join(route, ","),
		fieldTime, rec.Elapsed.Seconds(),
		fieldFull, full)

	return err
}

// Read decodes a .sol file. Instance, Algorithm, Cutoff and Seed are not part
// of the format and stay zero; Length carries the two printed decimals only.
func Read(r io.Reader) (Record, error) {
	var (
		rec  Record
		seen = make(map[string]bool, 4)
		sc   = bufio.NewScanner(r)
	)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return rec, fmt.Errorf("%w: %q", ErrMalformed, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		var err error
		switch key {
		case fieldDistance:
			rec.Length, err = strconv.ParseFloat(value, 64)
		case fieldRoute:
			rec.Route, err = parseRoute(value)
		case fieldTime:
			var secs float64
			secs, err = strconv.ParseFloat(strings.TrimSuffix(value, " seconds"), 64)
			rec.Elapsed = time.Duration(math.Round(secs * float64(time.Second)))
		case fieldFull:
			switch value {
			case "Yes":
				rec.Complete = true
			case "No":
			default:
				err = fmt.Errorf("want Yes or No, got %q", value)
			}
		default:
			continue
		}
		if err != nil {
			return rec, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
		}
		seen[key] = true
	}
	if err := sc.Err(); err != nil {
		return rec, err
	}
	for _, f := range []string{fieldDistance, fieldRoute, fieldTime, fieldFull} {
		if !seen[f] {
			return rec, fmt.Errorf("%w: missing %s", ErrMalformed, f)
		}
	}

	return rec, nil
}

func parseRoute(value string) ([]int, error) {
	if value == "" {
		return []int{}, nil
	}
	parts := strings.Split(value, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = id
	}

	return out, nil
}

// FormatCutoff prints a cutoff the way it appears in file names: whole
// seconds without decimals, fractions with as many digits as needed.
func FormatCutoff(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// FileName returns "<instance>_<ALG>_<cutoff>[_<seed>].sol". The seed is
// appended only for LocalSearch and only when known.
func FileName(instance string, algo tsp.Algorithm, cutoff time.Duration, seed *int64) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(instance))
	b.WriteByte('_')
	b.WriteString(algo.String())
	b.WriteByte('_')
	b.WriteString(FormatCutoff(cutoff))
	if algo == tsp.LocalSearch && seed != nil {
		b.WriteByte('_')
		b.WriteString(strconv.FormatInt(*seed, 10))
	}
	b.WriteString(Ext)

	return b.String()
}

// Key returns the store key of rec under prefix: "<prefix>/<ALG>/<file>".
func Key(prefix string, rec Record) string {
	return path.Join(prefix, rec.Algorithm.String(), FileName(rec.Instance, rec.Algorithm, rec.Cutoff, rec.Seed))
}

// Save writes rec to s under Key(prefix, rec) and returns the key.
func Save(ctx context.Context, s store.Store, prefix string, rec Record) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, rec); err != nil {
		return "", err
	}
	key := Key(prefix, rec)
	if err := s.Put(ctx, key, buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to save solution %s: %w", key, err)
	}

	return key, nil
}

// Load reads the record stored under key.
func Load(ctx context.Context, s store.Store, key string) (Record, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return Record{}, fmt.Errorf("failed to fetch solution %s: %w", key, err)
	}

	return Read(bytes.NewReader(data))
}
