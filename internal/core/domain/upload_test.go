package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupportedFile(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		supported bool
	}{
		{"plain pdf", "report.pdf", true},
		{"uppercase extension", "REPORT.PDF", true},
		{"mixed case", "Report.Pdf", true},
		{"with path", "/tmp/in/report.pdf", true},
		{"text file", "notes.txt", false},
		{"word document", "draft.docx", false},
		{"no extension", "report", false},
		{"extension only", ".pdf", true},
		{"pdf in the middle", "report.pdf.bak", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.supported, IsSupportedFile(tt.candidate))
		})
	}
}

func TestBatchResult_Total(t *testing.T) {
	r := BatchResult{Uploaded: 3, Failed: 2}
	assert.Equal(t, 5, r.Total())

	assert.Equal(t, 0, BatchResult{}.Total())
}
