package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/drainsim/internal/drain"
)

type ExportData struct {
	RunMetadata
	Times   []float64 `json:"times"`
	Heights []float64 `json:"heights"`
}

func exportJSON(w io.Writer, meta *RunMetadata, trace drain.Trace) error {
	data := ExportData{
		RunMetadata: *meta,
		Times:       trace.Times(),
		Heights:     trace.Heights(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportJSON(path string, meta *RunMetadata, trace drain.Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return exportJSON(file, meta, trace)
}

func ExportJSONStdout(meta *RunMetadata, trace drain.Trace) error {
	return exportJSON(os.Stdout, meta, trace)
}
