package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/paaviz/internal/analysis"
	"github.com/san-kum/paaviz/internal/anim"
)

// ErrNoRun is returned when a run id has no metadata on disk.
var ErrNoRun = errors.New("storage: run not found")

// Store keeps saved coverage traces, one directory per run with a
// metadata.json and a frames.csv.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Category  string             `json:"category"`
	ProblemID int                `json:"problem_id,omitempty"`
	Reveal    bool               `json:"reveal"`
	Timestamp time.Time          `json:"timestamp"`
	Frames    int                `json:"frames"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(tr *analysis.Trace) (string, error) {
	ts := s.now()
	base := fmt.Sprintf("%s_%d", tr.Input.Category, ts.Unix())
	runID := base
	for i := 2; ; i++ {
		err := os.Mkdir(filepath.Join(s.baseDir, runID), 0755)
		if err == nil {
			break
		}
		if !errors.Is(err, os.ErrExist) {
			return "", err
		}
		runID = fmt.Sprintf("%s_%d", base, i)
	}
	runDir := filepath.Join(s.baseDir, runID)

	meta := RunMetadata{
		ID:        runID,
		Category:  tr.Input.Category,
		ProblemID: tr.Input.ProblemID,
		Reveal:    tr.Input.Reveal,
		Timestamp: ts,
		Frames:    len(tr.Steps),
		Metrics:   tr.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"step", "coverage", "digest"}); err != nil {
		return "", err
	}
	for i := range tr.Steps {
		row := []string{
			strconv.Itoa(int(tr.Steps[i])),
			strconv.FormatFloat(tr.Coverage[i], 'f', 6, 64),
			strconv.FormatUint(tr.Digests[i], 16),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", runID, ErrNoRun)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%s: %w", runID, err)
	}
	return &meta, nil
}

// LoadTrace rebuilds the saved trace. Malformed rows are skipped.
func (s *Store) LoadTrace(runID string) (*analysis.Trace, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	tr := &analysis.Trace{
		Input:   anim.Input{Category: meta.Category, ProblemID: meta.ProblemID, Reveal: meta.Reveal},
		Metrics: meta.Metrics,
	}
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 3 {
			continue
		}
		step, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		cov, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			continue
		}
		dig, err := strconv.ParseUint(rec[2], 16, 64)
		if err != nil {
			continue
		}
		tr.Steps = append(tr.Steps, anim.Step(step))
		tr.Coverage = append(tr.Coverage, cov)
		tr.Digests = append(tr.Digests, dig)
	}
	return tr, nil
}

type ExportData struct {
	RunMetadata
	Steps    []anim.Step `json:"steps"`
	Coverage []float64   `json:"coverage"`
}

// ExportJSON writes run metadata with its per-frame coverage.
func ExportJSON(w io.Writer, meta *RunMetadata, tr *analysis.Trace) error {
	data := ExportData{RunMetadata: *meta, Steps: tr.Steps, Coverage: tr.Coverage}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
