package pdf

import (
	"bytes"
	"fmt"
	"io"

	"registration-sheets-be/internal/pkg/logger"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Merger appends attachment pages after a main document.
type Merger interface {
	Merge(main []byte, attachments [][]byte) ([]byte, error)
}

// PdfcpuMerger merges in memory via pdfcpu. Attachments that fail validation
// are skipped with a warning; they never abort the merge. With zero usable
// attachments the main document passes through untouched.
type PdfcpuMerger struct {
	conf   *model.Configuration
	logger logger.ILogger
}

func NewPdfcpuMerger(log logger.ILogger) *PdfcpuMerger {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PdfcpuMerger{
		conf:   conf,
		logger: log,
	}
}

func (m *PdfcpuMerger) Merge(main []byte, attachments [][]byte) ([]byte, error) {
	if len(attachments) == 0 {
		return main, nil
	}

	readers := make([]io.ReadSeeker, 0, len(attachments)+1)
	readers = append(readers, bytes.NewReader(main))

	for i, att := range attachments {
		if err := api.Validate(bytes.NewReader(att), m.conf); err != nil {
			m.logger.Warn("pdf", "skipping unparsable attachment", map[string]interface{}{
				"index": i,
				"error": err.Error(),
			})
			continue
		}
		readers = append(readers, bytes.NewReader(att))
	}

	if len(readers) == 1 {
		return main, nil
	}

	var merged bytes.Buffer
	if err := api.MergeRaw(readers, &merged, false, m.conf); err != nil {
		return nil, fmt.Errorf("merge pdfs: %w", err)
	}
	return merged.Bytes(), nil
}
