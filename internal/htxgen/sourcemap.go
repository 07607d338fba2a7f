package htxgen

import (
	"encoding/json"
	"fmt"
	"os"
)

const sourceMapVersion = 1

// Mapping ties one markup span to its location in the generated file. The
// line footprint is identical on both sides by construction.
type Mapping struct {
	HtxLine int `json:"htxLine"` // first line of the span in the source file
	GoLine  int `json:"goLine"`  // first physical line in the generated file
	Lines   int `json:"lines"`   // number of lines the span occupies
}

// SourceMap records where markup spans landed in the generated file. Code
// lines map 1:1 shifted by HeaderLines; Mappings pin each markup span so
// tools can jump between the two representations.
type SourceMap struct {
	Version     int       `json:"version"`
	HtxFile     string    `json:"htxFile"`
	GoFile      string    `json:"goFile,omitempty"`
	HeaderLines int       `json:"headerLines"`
	Mappings    []Mapping `json:"mappings"`
}

// NewSourceMap creates an empty source map for the given source file.
func NewSourceMap(htxFile string) *SourceMap {
	return &SourceMap{
		Version: sourceMapVersion,
		HtxFile: htxFile,
	}
}

// Add appends one span mapping.
func (m *SourceMap) Add(mapping Mapping) {
	m.Mappings = append(m.Mappings, mapping)
}

// GoToHtx maps a physical line in the generated file back to its source
// line.
func (m *SourceMap) GoToHtx(goLine int) int {
	line := goLine - m.HeaderLines
	if line < 1 {
		line = 1
	}
	return line
}

// HtxToGo maps a source line to its physical line in the generated file.
func (m *SourceMap) HtxToGo(htxLine int) int {
	return htxLine + m.HeaderLines
}

// SpanAt returns the markup span mapping covering the given source line, if
// any.
func (m *SourceMap) SpanAt(htxLine int) (Mapping, bool) {
	for _, mapping := range m.Mappings {
		if htxLine >= mapping.HtxLine && htxLine < mapping.HtxLine+mapping.Lines {
			return mapping, true
		}
	}
	return Mapping{}, false
}

// Marshal serializes the source map as indented JSON.
func (m *SourceMap) Marshal() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// WriteFile writes the source map next to the generated file.
func (m *SourceMap) WriteFile(path string) error {
	data, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("marshaling source map: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// LoadSourceMap reads a source map written by WriteFile.
func LoadSourceMap(path string) (*SourceMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m SourceMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing source map %s: %w", path, err)
	}
	return &m, nil
}

// SourceMapFileName returns the conventional source map path for a generated
// file.
func SourceMapFileName(goFile string) string {
	return goFile + ".map"
}
