package experiment

// Result is the tabular outcome of one kernel run.
type Result struct {
	Kernel  string
	Params  map[string]float64
	Columns []string
	Rows    [][]float64
	Scalars map[string]float64
}

// Column returns the named column, or nil.
func (r *Result) Column(name string) []float64 {
	idx := -1
	for i, c := range r.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	col := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		if idx < len(row) {
			col[i] = row[idx]
		}
	}
	return col
}
