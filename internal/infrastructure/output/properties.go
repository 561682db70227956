package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/magiconair/properties"
	"github.com/reglet-dev/seclog/internal/application/dto"
)

const propertiesCommentPrefix = "# "

// PropertiesFormatter writes each file's policy in Java properties syntax,
// the form DDS participant QoS files usually carry.
type PropertiesFormatter struct {
	writer io.Writer
}

// NewPropertiesFormatter creates a new properties formatter.
func NewPropertiesFormatter(w io.Writer) *PropertiesFormatter {
	return &PropertiesFormatter{writer: w}
}

// Format writes one commented section per file, properties in policy order.
func (f *PropertiesFormatter) Format(report *dto.ApplyReport) error {
	w := bufio.NewWriter(f.writer)

	for i, res := range report.Results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writePropertiesSection(w, res); err != nil {
			return fmt.Errorf("failed to write properties for %s: %w", res.Path, err)
		}
	}

	return w.Flush()
}

// writePropertiesSection writes the header comments of res followed by its
// properties. Values are stored unexpanded, so "${...}" is written as-is.
func writePropertiesSection(w io.Writer, res dto.FileResult) error {
	header := []string{fmt.Sprintf("%s (%s)", escapeComment(res.Path), res.Status)}
	if res.Error != "" {
		header = append(header, "error: "+escapeComment(res.Error))
	}

	p := properties.NewProperties()
	p.DisableExpansion = true
	p.WriteSeparator = "="
	for _, prop := range res.Properties {
		if _, _, err := p.Set(prop.Name, prop.Value); err != nil {
			return err
		}
	}

	// Comments attach to a key, so a file without properties gets bare comment lines
	keys := p.Keys()
	if len(keys) == 0 {
		for _, line := range header {
			if _, err := fmt.Fprintf(w, "%s%s\n", propertiesCommentPrefix, line); err != nil {
				return err
			}
		}
		return nil
	}

	p.SetComments(keys[0], header)
	_, err := p.WriteComment(w, propertiesCommentPrefix, properties.UTF8)
	return err
}

var commentEscaper = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func escapeComment(s string) string {
	return commentEscaper.Replace(s)
}
