package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ja-he/blocknote/internal/model"
)

// EncodeMarkdown renders the document as markdown, one line per block.
// Headings become ATX headings and to-dos become task list items.
func EncodeMarkdown(doc model.Document) string {
	var b strings.Builder
	for _, block := range doc {
		switch block.Type {
		case model.BlockTypeHeading1:
			b.WriteString("# ")
		case model.BlockTypeHeading2:
			b.WriteString("## ")
		case model.BlockTypeHeading3:
			b.WriteString("### ")
		case model.BlockTypeTodo:
			if block.IsChecked() {
				b.WriteString("- [x] ")
			} else {
				b.WriteString("- [ ] ")
			}
		}
		b.WriteString(block.Content)
		b.WriteString("\n")
	}
	return b.String()
}

// EncodeJSON renders the document in its stored format, indented for
// reading.
func EncodeJSON(doc model.Document) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not serialize document (%w)", err)
	}
	return string(data) + "\n", nil
}
