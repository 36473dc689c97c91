package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/numkit/internal/experiment"
)

const (
	metadataFile = "metadata.json"
	dataFile     = "data.csv"
)

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
	ID        string    `json:"id"`
	Kernel    string    `json:"kernel"`
	Label     string    `json:"label,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Params    Floats    `json:"params"`
	Scalars   Floats    `json:"scalars"`
	Columns   []string  `json:"columns"`
	Rows      int       `json:"rows"`
}

// Save writes metadata.json and data.csv into a fresh run directory and
// returns the run id. A failed save removes the partial run directory.
func (s *Store) Save(label string, result *experiment.Result) (runID string, err error) {
	ts := s.now()
	id, err := s.newRunID(result.Kernel, ts)
	if err != nil {
		return "", err
	}
	runDir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	meta := RunMetadata{
		ID:        id,
		Kernel:    result.Kernel,
		Label:     label,
		Timestamp: ts,
		Params:    result.Params,
		Scalars:   result.Scalars,
		Columns:   result.Columns,
		Rows:      len(result.Rows),
	}
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeCSV(filepath.Join(runDir, dataFile), result.Columns, result.Rows); err != nil {
		return "", err
	}

	return id, nil
}

// newRunID picks kernel_<unix> and appends a counter when several runs land
// in the same second.
func (s *Store) newRunID(kernel string, ts time.Time) (string, error) {
	base := fmt.Sprintf("%s_%d", kernel, ts.Unix())
	id := base
	for i := 1; ; i++ {
		_, err := os.Stat(filepath.Join(s.baseDir, id))
		if os.IsNotExist(err) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
		id = fmt.Sprintf("%s_%d", base, i)
	}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func writeCSV(path string, columns []string, rows [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns the metadata of every readable run, oldest first.
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

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadResult rebuilds the stored result from metadata.json and data.csv.
func (s *Store) LoadResult(runID string) (*experiment.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, dataFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	result := &experiment.Result{
		Kernel:  meta.Kernel,
		Params:  meta.Params,
		Scalars: meta.Scalars,
		Columns: meta.Columns,
		Rows:    make([][]float64, 0, len(records)),
	}
	if len(records) == 0 {
		return result, nil
	}

	for i, record := range records[1:] {
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", dataFile, i+2, err)
			}
			row[j] = v
		}
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

func (s *Store) Remove(runID string) error {
	if _, err := s.Load(runID); err != nil {
		return err
	}
	return os.RemoveAll(filepath.Join(s.baseDir, runID))
}
