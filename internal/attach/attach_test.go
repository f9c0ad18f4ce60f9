package attach_test

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letspeppol/letspeppol/internal/attach"
	"github.com/letspeppol/letspeppol/internal/model"
)

func TestFile_EmbedsTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	content := []byte("Dit is een test")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	ref, err := attach.File("ATTACHMENT-099", "Attached document", path)
	require.NoError(t, err)

	assert.Equal(t, "ATTACHMENT-099", ref.ID)
	assert.Equal(t, model.Str("Attached document"), ref.DocumentDescription)
	require.NotNil(t, ref.Attachment)
	obj := ref.Attachment.EmbeddedDocumentBinaryObject
	require.NotNil(t, obj)
	assert.Equal(t, "note.txt", obj.Filename)
	assert.Contains(t, obj.MimeCode, "text/plain")
	assert.Equal(t, base64.StdEncoding.EncodeToString(content), obj.Value)
}

func TestFile_MissingFile(t *testing.T) {
	_, err := attach.File("X", "", filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestFile_InvalidPDFRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	// A PDF header with no body fails validation.
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7\ngarbage"), 0o644))

	_, err := attach.File("X", "", path)
	require.Error(t, err)
}

func TestLinkAndAdd(t *testing.T) {
	ref := attach.Link("LINK1", "Timesheet", "http://www.example.com/LINK1")
	require.NotNil(t, ref.Attachment)
	require.NotNil(t, ref.Attachment.ExternalReference)
	assert.Equal(t, "http://www.example.com/LINK1", ref.Attachment.ExternalReference.URI)

	inv := &model.Invoice{}
	attach.Add(inv, ref)
	require.Len(t, inv.AdditionalDocumentReference, 1)

	cn := &model.CreditNote{}
	attach.Add(cn, ref)
	require.Len(t, cn.AdditionalDocumentReference, 1)
}
