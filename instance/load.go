package instance

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a point-file encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownFormat is returned for an unsupported file extension.
	ErrUnknownFormat = errors.New("instance: unknown point file format")

	// ErrMalformed is returned when a point file cannot be parsed.
	ErrMalformed = errors.New("instance: malformed point file")
)

// FormatOf picks the format from the file extension (.csv, .json, .yaml, .yml).
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("FormatOf(%q): %w", path, ErrUnknownFormat)
	}
}

// LoadPoints reads a point list from path, choosing the decoder by extension.
func LoadPoints(path string) ([]Point, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadPoints: reading %s: %w", path, err)
	}

	return ParsePoints(bytes.NewReader(data), format)
}

// ParsePoints decodes a point list.
//
// CSV holds one "x,y" record per line; a first record that does not parse
// as numbers is treated as a header. JSON and YAML hold a list of {x, y}
// objects.
func ParsePoints(r io.Reader, format Format) ([]Point, error) {
	var (
		pts []Point
		err error
	)
	switch format {
	case FormatCSV:
		pts, err = parseCSV(r)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&pts)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&pts)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf("ParsePoints(%q): %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("ParsePoints(%s): %v: %w", format, err, ErrMalformed)
	}

	return pts, nil
}

func parseCSV(r io.Reader) ([]Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	pts := make([]Point, 0, len(records))
	for i, rec := range records {
		x, errX := strconv.ParseFloat(rec[0], 64)
		y, errY := strconv.ParseFloat(rec[1], 64)
		if errX != nil || errY != nil {
			if i == 0 {
				continue // header
			}

			return nil, fmt.Errorf("line %d: %q", i+1, strings.Join(rec, ","))
		}
		pts = append(pts, Point{X: x, Y: y})
	}

	return pts, nil
}
