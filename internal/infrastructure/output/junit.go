package output

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/reglet-dev/seclog/internal/application/dto"
	"github.com/reglet-dev/seclog/internal/domain/values"
)

// JUnitFormatter formats apply reports as JUnit XML, one test case per file.
type JUnitFormatter struct {
	writer io.Writer
}

// NewJUnitFormatter creates a new JUnit formatter.
func NewJUnitFormatter(w io.Writer) *JUnitFormatter {
	return &JUnitFormatter{
		writer: w,
	}
}

// JUnitTestSuites JUnit XML structures
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Name       string           `xml:"name,attr"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	Time       float64          `xml:"time,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

type JUnitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Errors    int             `xml:"errors,attr"`
	Time      float64         `xml:"time,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Error     *JUnitError   `xml:"error,omitempty"`
	SystemOut string        `xml:"system-out,omitempty"`
}

type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr,omitempty"`
	Content string `xml:",chardata"`
}

type JUnitError struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr,omitempty"`
	Content string `xml:",chardata"`
}

// Format writes the report as JUnit XML.
// Partial files are failures; files that wrote nothing are errors.
func (f *JUnitFormatter) Format(report *dto.ApplyReport) error {
	suite := JUnitTestSuite{
		Name:  report.Schema,
		Tests: len(report.Results),
		Time:  report.Duration.Seconds(),
	}

	for _, res := range report.Results {
		c := JUnitTestCase{
			Name:      res.Path,
			ClassName: report.Tool + "." + report.Schema,
			SystemOut: formatProperties(res),
		}

		switch res.Status {
		case values.StatusPartial:
			suite.Failures++
			c.Failure = &JUnitFailure{Message: res.Error, Type: res.ErrorKind, Content: res.Error}
		case values.StatusFailed:
			suite.Errors++
			c.Error = &JUnitError{Message: res.Error, Type: res.ErrorKind, Content: res.Error}
		}

		suite.TestCases = append(suite.TestCases, c)
	}

	suites := JUnitTestSuites{
		Name:       report.Tool,
		Tests:      suite.Tests,
		Failures:   suite.Failures,
		Errors:     suite.Errors,
		Time:       suite.Time,
		TestSuites: []JUnitTestSuite{suite},
	}

	if _, err := f.writer.Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(suites); err != nil {
		return err
	}

	_, err := f.writer.Write([]byte("\n"))
	return err
}

func formatProperties(res dto.FileResult) string {
	var b strings.Builder
	for _, p := range res.Properties {
		b.WriteString(p.Name)
		b.WriteString("=")
		b.WriteString(p.Value)
		b.WriteString("\n")
	}
	return b.String()
}
