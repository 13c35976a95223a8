// Package export writes a sampled CSBM instance to a directory as plain
// tab-separated files plus a YAML summary.
//
// Layout:
//
//	edges.tsv     u<TAB>v, one undirected edge per line, u < v, sorted
//	labels.tsv    node<TAB>label, hidden labels (-1/+1)
//	revealed.tsv  node<TAB>label, revealed labels (-1/+1/?)
//	features.tsv  node<TAB>b_0<TAB>...<TAB>b_{P-1}
//	centroid.tsv  k<TAB>v_k
//	summary.yaml  parameters, seed and Summarize diagnostics
package export

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/csbm/csbm"
)

// File names inside the output directory.
const (
	EdgesFile    = "edges.tsv"
	LabelsFile   = "labels.tsv"
	RevealedFile = "revealed.tsv"
	FeaturesFile = "features.tsv"
	CentroidFile = "centroid.tsv"
	SummaryFile  = "summary.yaml"
)

// ErrIncomplete reports a Dataset missing latents or observations.
var ErrIncomplete = errors.New("export: incomplete dataset")

// Dataset is everything written for one run.
type Dataset struct {
	Config       csbm.ModelConfig
	Seed         uint64
	Workers      int
	Latents      csbm.Latents
	Observations csbm.Observations
}

// Report is the content of summary.yaml.
type Report struct {
	Params  csbm.Params  `yaml:"params"`
	Seed    uint64       `yaml:"seed"`
	Workers int          `yaml:"workers"`
	PIn     float64      `yaml:"p_in"`
	POut    float64      `yaml:"p_out"`
	SNR     float64      `yaml:"effective_snr"`
	Summary csbm.Summary `yaml:"summary"`
}

// NewReport computes the summary record of ds.
func NewReport(ds Dataset) (Report, error) {
	aff, err := ds.Config.Affinities()
	if err != nil {
		return Report{}, fmt.Errorf("NewReport: %w", err)
	}
	return Report{
		Params:  ds.Config.Params(),
		Seed:    ds.Seed,
		Workers: ds.Workers,
		PIn:     aff.In,
		POut:    aff.Out,
		SNR:     ds.Config.EffectiveSNR(),
		Summary: csbm.Summarize(ds.Latents, ds.Observations),
	}, nil
}

// Write creates dir if needed and writes every file of the layout. It
// returns the written paths in layout order.
func Write(dir string, ds Dataset) ([]string, error) {
	obs, lat := ds.Observations, ds.Latents
	if obs.G == nil || obs.B == nil || lat.V == nil || len(lat.U) != obs.G.VertexCount() || len(obs.Xi) != len(lat.U) {
		return nil, fmt.Errorf("Write: %w", ErrIncomplete)
	}
	report, err := NewReport(ds)
	if err != nil {
		return nil, fmt.Errorf("Write: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("Write: %w", err)
	}

	steps := []struct {
		name string
		fn   func(*csv.Writer) error
	}{
		{EdgesFile, func(w *csv.Writer) error { return writeEdges(w, obs) }},
		{LabelsFile, func(w *csv.Writer) error { return writeLabels(w, lat.U) }},
		{RevealedFile, func(w *csv.Writer) error { return writeLabels(w, obs.Xi) }},
		{FeaturesFile, func(w *csv.Writer) error { return writeFeatures(w, obs) }},
		{CentroidFile, func(w *csv.Writer) error { return writeCentroid(w, lat) }},
	}

	paths := make([]string, 0, len(steps)+1)
	for _, s := range steps {
		path := filepath.Join(dir, s.name)
		if err := writeTSV(path, s.fn); err != nil {
			return paths, fmt.Errorf("Write %s: %w", s.name, err)
		}
		paths = append(paths, path)
	}

	path := filepath.Join(dir, SummaryFile)
	if err := writeYAML(path, report); err != nil {
		return paths, fmt.Errorf("Write %s: %w", SummaryFile, err)
	}
	return append(paths, path), nil
}

// ReadReport loads summary.yaml from dir.
func ReadReport(dir string) (Report, error) {
	data, err := os.ReadFile(filepath.Join(dir, SummaryFile))
	if err != nil {
		return Report{}, fmt.Errorf("ReadReport: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("ReadReport: %w", err)
	}
	return r, nil
}

func writeTSV(path string, fn func(*csv.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	buf := bufio.NewWriter(f)
	w := csv.NewWriter(buf)
	w.Comma = '\t'
	if err := fn(w); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return buf.Flush()
}

func writeYAML(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeEdges(w *csv.Writer, obs csbm.Observations) error {
	if err := w.Write([]string{"u", "v"}); err != nil {
		return err
	}
	for _, e := range obs.G.Edges() {
		if err := w.Write([]string{strconv.Itoa(e.U), strconv.Itoa(e.V)}); err != nil {
			return err
		}
	}
	return nil
}

func writeLabels(w *csv.Writer, labels []csbm.Label) error {
	if err := w.Write([]string{"node", "label"}); err != nil {
		return err
	}
	for i, l := range labels {
		if err := w.Write([]string{strconv.Itoa(i), l.String()}); err != nil {
			return err
		}
	}
	return nil
}

func writeFeatures(w *csv.Writer, obs csbm.Observations) error {
	p, n := obs.B.Dims()
	row := make([]string, p+1)
	row[0] = "node"
	for k := 0; k < p; k++ {
		row[k+1] = "b_" + strconv.Itoa(k)
	}
	if err := w.Write(row); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		row[0] = strconv.Itoa(i)
		for k := 0; k < p; k++ {
			row[k+1] = formatFloat(obs.B.At(k, i))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeCentroid(w *csv.Writer, lat csbm.Latents) error {
	if err := w.Write([]string{"k", "v"}); err != nil {
		return err
	}
	for k := 0; k < lat.V.Len(); k++ {
		if err := w.Write([]string{strconv.Itoa(k), formatFloat(lat.V.AtVec(k))}); err != nil {
			return err
		}
	}
	return nil
}

// formatFloat uses the shortest representation that round-trips.
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
