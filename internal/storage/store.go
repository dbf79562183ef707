package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/drainsim/internal/config"
	"github.com/san-kum/drainsim/internal/drain"
)

// Store persists drainage runs under a base directory, one directory
// per run holding metadata.json and trace.csv.
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
	ID                   string             `json:"id"`
	Timestamp            time.Time          `json:"timestamp"`
	R1                   float64            `json:"r1"`
	R2                   float64            `json:"r2"`
	VolumeLiters         float64            `json:"volume_liters"`
	OutletDiameter       float64            `json:"outlet_diameter"`
	DischargeCoefficient float64            `json:"discharge_coefficient"`
	Fluid                string             `json:"fluid"`
	Dt                   float64            `json:"dt"`
	Reason               string             `json:"reason"`
	DrainTime            float64            `json:"drain_time"`
	Samples              int                `json:"samples"`
	Metrics              map[string]float64 `json:"metrics"`
}

func (s *Store) Save(cfg *config.Config, result *drain.Result) (string, error) {
	// Nanosecond stamp: back-to-back saves must not collide.
	runID := fmt.Sprintf("%s_%d", cfg.Flow.Fluid, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:                   runID,
		Timestamp:            time.Now(),
		R1:                   cfg.Tank.R1,
		R2:                   cfg.Tank.R2,
		VolumeLiters:         cfg.Tank.VolumeLiters,
		OutletDiameter:       cfg.Tank.OutletDiameter,
		DischargeCoefficient: cfg.Flow.DischargeCoefficient,
		Fluid:                cfg.Flow.Fluid,
		Dt:                   cfg.Dt,
		Reason:               result.Reason.String(),
		DrainTime:            result.Trace.DrainTime(),
		Samples:              len(result.Trace),
		Metrics:              result.Metrics,
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

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "height"}); err != nil {
		return "", err
	}
	for _, sample := range result.Trace {
		row := []string{
			strconv.FormatFloat(sample.Time, 'f', 6, 64),
			strconv.FormatFloat(sample.Height, 'f', 9, 64),
		}
		if err := w.Write(row); err != nil {
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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
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
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrace(runID string) (drain.Trace, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return drain.Trace{}, nil
	}

	trace := make(drain.Trace, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		h, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		trace = append(trace, drain.Sample{Time: t, Height: h})
	}

	return trace, nil
}
