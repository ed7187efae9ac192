package dataset

// Dataset is an ordered collection of records sharing one header.
type Dataset struct {
	Columns []string
	Rows    [][]string
	// Sources lists the files the dataset was built from, in merge order.
	Sources []string
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// ColumnIndex returns the position of a column in the header.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	for i, c := range d.Columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

// Column returns a copy of all values of the named column.
func (d *Dataset) Column(name string) ([]string, bool) {
	idx, ok := d.ColumnIndex(name)
	if !ok {
		return nil, false
	}
	out := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		if idx < len(row) {
			out[i] = row[idx]
		}
	}
	return out, true
}

// Record returns row i keyed by column name.
func (d *Dataset) Record(i int) map[string]string {
	if i < 0 || i >= len(d.Rows) {
		return nil
	}
	rec := make(map[string]string, len(d.Columns))
	for j, c := range d.Columns {
		if j < len(d.Rows[i]) {
			rec[c] = d.Rows[i][j]
		}
	}
	return rec
}

// concat merges fragments in order. Columns are the union of all headers in
// first-seen order; cells a fragment lacks are left empty.
func concat(fragments []*Dataset) *Dataset {
	merged := &Dataset{}
	pos := make(map[string]int)
	for _, f := range fragments {
		for _, c := range f.Columns {
			if _, ok := pos[c]; ok {
				continue
			}
			pos[c] = len(merged.Columns)
			merged.Columns = append(merged.Columns, c)
		}
	}

	total := 0
	for _, f := range fragments {
		total += len(f.Rows)
	}
	merged.Rows = make([][]string, 0, total)

	for _, f := range fragments {
		mapping := make([]int, len(f.Columns))
		for j, c := range f.Columns {
			mapping[j] = pos[c]
		}
		for _, row := range f.Rows {
			out := make([]string, len(merged.Columns))
			for j, v := range row {
				out[mapping[j]] = v
			}
			merged.Rows = append(merged.Rows, out)
		}
		merged.Sources = append(merged.Sources, f.Sources...)
	}
	return merged
}
