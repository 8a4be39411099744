package export

// Section is a titled block of rows, rendered under its own heading in PDFs.
type Section struct {
	Heading string
	Rows    [][]string
}

// Dataset defines tabular export content.
type Dataset struct {
	Title    string
	Subtitle []string
	Headers  []string
	// Widths are relative column weights for PDF output. Missing weights default to 1.
	Widths   []float64
	Sections []Section
}

// RowCount returns the number of body rows across all sections.
func (d Dataset) RowCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Rows)
	}
	return n
}
