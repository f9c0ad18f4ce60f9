package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/letspeppol/letspeppol/internal/attach"
	"github.com/letspeppol/letspeppol/internal/ubl"
)

var (
	attachID          string
	attachDescription string
	attachLink        string
)

var attachCmd = &cobra.Command{
	Use:   "attach [doc.xml] [files...]",
	Short: "Embed attachments into a document",
	Long: `Attach supporting files to an invoice or credit note.

Files are embedded base64-encoded with a content-detected mime type; PDFs
are validated first. With --link, an external reference is added instead
of an embedded file.

Examples:
  letspeppol attach invoice.xml timesheet.pdf -o invoice-with-attachment.xml
  letspeppol attach invoice.xml --link http://www.example.com/LINK1 --id LINK1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAttach,
}

func init() {
	rootCmd.AddCommand(attachCmd)

	attachCmd.Flags().StringVar(&attachID, "id", "", "Reference ID (default: the file name)")
	attachCmd.Flags().StringVar(&attachDescription, "description", "", "Document description")
	attachCmd.Flags().StringVar(&attachLink, "link", "", "Attach an external URI instead of a file")
}

func runAttach(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	doc, _, err := ubl.Parse(data)
	if err != nil {
		return err
	}

	files := args[1:]
	if attachLink == "" && len(files) == 0 {
		return fmt.Errorf("nothing to attach: give files or --link")
	}

	if attachLink != "" {
		id := attachID
		if id == "" {
			id = attachLink
		}
		attach.Add(doc, attach.Link(id, attachDescription, attachLink))
	}

	for _, file := range files {
		id := attachID
		if id == "" || len(files) > 1 {
			id = strings.ToUpper(strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)))
		}
		ref, err := attach.File(id, attachDescription, file)
		if err != nil {
			return err
		}
		attach.Add(doc, ref)
		printVerbose("attached %s as %s\n", file, id)
	}

	out, err := ubl.Build(doc)
	if err != nil {
		return err
	}
	return writeOutput(out)
}
