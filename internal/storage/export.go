package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/numkit/internal/experiment"
)

type ExportData struct {
	ID      string   `json:"id"`
	Kernel  string   `json:"kernel"`
	Label   string   `json:"label,omitempty"`
	Params  Floats   `json:"params"`
	Scalars Floats   `json:"scalars"`
	Columns []string `json:"columns"`
	Rows    Grid     `json:"rows"`
}

// ExportJSON writes the run as one indented JSON document. Non-finite
// values are written as "NaN", "+Inf" or "-Inf".
func ExportJSON(w io.Writer, meta *RunMetadata, result *experiment.Result) error {
	data := ExportData{
		ID:      meta.ID,
		Kernel:  result.Kernel,
		Label:   meta.Label,
		Params:  result.Params,
		Scalars: result.Scalars,
		Columns: result.Columns,
		Rows:    result.Rows,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
