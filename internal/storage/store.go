package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/penev-ff/dynarr/internal/workload"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Workload  string             `json:"workload"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Capacity  int                `json:"capacity"`
	Applied   int                `json:"applied"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(w workload.Workload, result *workload.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", w.Name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Workload:  w.Name,
		Timestamp: time.Now(),
		Seed:      w.Seed,
		Capacity:  w.Capacity,
		Applied:   result.Applied,
		Metrics:   result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "samples.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	cw := csv.NewWriter(csvFile)
	defer cw.Flush()

	if err := cw.Write([]string{"step", "op", "len", "cap", "grows"}); err != nil {
		return "", err
	}

	for i, sample := range result.Samples {
		row := []string{
			strconv.Itoa(i),
			string(sample.Op),
			strconv.Itoa(sample.Len),
			strconv.Itoa(sample.Cap),
			strconv.Itoa(sample.Grows),
		}
		if err := cw.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSamples(runID string) ([]workload.Sample, error) {
	csvPath := filepath.Join(s.baseDir, runID, "samples.csv")
	file, err := os.Open(csvPath)
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

	if len(records) < 2 {
		return []workload.Sample{}, nil
	}

	samples := make([]workload.Sample, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 5 {
			continue
		}

		length, err := strconv.Atoi(record[2])
		if err != nil {
			continue
		}
		capacity, err := strconv.Atoi(record[3])
		if err != nil {
			continue
		}
		grows, err := strconv.Atoi(record[4])
		if err != nil {
			continue
		}

		samples = append(samples, workload.Sample{
			Op:    workload.OpKind(record[1]),
			Len:   length,
			Cap:   capacity,
			Grows: grows,
		})
	}

	return samples, nil
}
