// Package attach embeds supporting files into a document as additional
// document references. Files are base64-encoded inline; PDFs are validated
// before embedding so a broken file is rejected early instead of bouncing
// at the receiving access point.
package attach

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/letspeppol/letspeppol/internal/model"
)

// File reads path and returns a reference with the embedded payload. The
// mime type is detected from the file content, not the extension.
func File(id, description, path string) (model.AdditionalDocumentReference, error) {
	var ref model.AdditionalDocumentReference

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return ref, fmt.Errorf("detect mime type of %s: %w", path, err)
	}
	if mtype.Is("application/pdf") {
		if err := api.ValidateFile(path, nil); err != nil {
			return ref, fmt.Errorf("validate pdf %s: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ref, fmt.Errorf("read attachment %s: %w", path, err)
	}

	ref = model.AdditionalDocumentReference{
		ID:                  id,
		DocumentDescription: opt(description),
		Attachment: &model.Attachment{
			EmbeddedDocumentBinaryObject: &model.EmbeddedBinaryObject{
				MimeCode: mtype.String(),
				Filename: filepath.Base(path),
				Value:    base64.StdEncoding.EncodeToString(data),
			},
		},
	}
	return ref, nil
}

// Link returns a reference pointing at externally hosted material.
func Link(id, description, uri string) model.AdditionalDocumentReference {
	return model.AdditionalDocumentReference{
		ID:                  id,
		DocumentDescription: opt(description),
		Attachment: &model.Attachment{
			ExternalReference: &model.ExternalReference{URI: uri},
		},
	}
}

func opt(s string) *string {
	if s == "" {
		return nil
	}
	return model.Str(s)
}

// Add appends a reference to the document.
func Add(doc model.Document, ref model.AdditionalDocumentReference) {
	switch d := doc.(type) {
	case *model.Invoice:
		d.AdditionalDocumentReference = append(d.AdditionalDocumentReference, ref)
	case *model.CreditNote:
		d.AdditionalDocumentReference = append(d.AdditionalDocumentReference, ref)
	}
}
