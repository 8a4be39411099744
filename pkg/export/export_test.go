package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Title:    "Seat Plan: Data Structures",
		Subtitle: []string{"2026-05-04"},
		Headers:  []string{"Seat", "Reg Number", "Name"},
		Widths:   []float64{1, 2, 3},
		Sections: []Section{
			{Heading: "Main Block / Floor 1 / A101", Rows: [][]string{{"1", "21CS001", "Asha"}, {"2", "21EC001", "Ravi, K"}}},
			{Heading: "Main Block / Floor 1 / A102", Rows: [][]string{{"1", "21CS002"}}},
		},
	}
}

func TestCSVExporterFlattensSections(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	expected := "Seat,Reg Number,Name\n1,21CS001,Asha\n2,21EC001,\"Ravi, K\"\n1,21CS002,\n"
	assert.Equal(t, expected, string(out))
}

func TestExportersRequireHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
	_, err = NewPDFExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRendersDocument(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestColumnWidthsFillPage(t *testing.T) {
	widths := columnWidths([]string{"a", "b", "c"}, []float64{1, 3})
	require.Len(t, widths, 3)
	assert.InDelta(t, pageWidth, widths[0]+widths[1]+widths[2], 0.0001)
	assert.InDelta(t, widths[0], widths[2], 0.0001)
	assert.InDelta(t, widths[0]*3, widths[1], 0.0001)
}

func TestDatasetRowCount(t *testing.T) {
	assert.Equal(t, 3, sampleDataset().RowCount())
}
