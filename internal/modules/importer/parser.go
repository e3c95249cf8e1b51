package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Record is one parsed CSV row keyed by header field. Values are nil
// (empty cell), string, or []string (bracketed JSON array cell).
type Record map[string]interface{}

// Parse reads a semicolon-delimited CSV with a required header row.
// Bracketed cells are parsed as JSON arrays; on parse failure the literal
// string is kept and the problem logged, never escalated.
func Parse(r io.Reader, log *zap.Logger) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input, header row required")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec := make(Record, len(header))
		for i, name := range header {
			if name == "" || i >= len(row) {
				continue
			}
			rec[name] = parseCell(row[i], name, line, log)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseCell(raw, field string, line int, log *zap.Logger) interface{} {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	if strings.HasPrefix(value, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(value), &arr); err == nil {
			return arr
		}
		if log != nil {
			log.Warn("csv cell looks like an array but is not valid JSON, keeping literal",
				zap.String("field", field),
				zap.Int("line", line),
			)
		}
	}
	return value
}

// stringField returns the first non-empty string value among keys.
func stringField(rec Record, keys ...string) string {
	for _, key := range keys {
		if v, ok := rec[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// stringsField returns a tag list: a JSON-array cell as-is, a plain string
// as a one-element list.
func stringsField(rec Record, keys ...string) []string {
	for _, key := range keys {
		switch v := rec[key].(type) {
		case []string:
			return v
		case string:
			if v != "" {
				return []string{v}
			}
		}
	}
	return nil
}

// floatField parses a numeric cell, returning (0, false) on absence or
// malformed input rather than failing the row.
func floatField(rec Record, keys ...string) (float64, bool) {
	for _, key := range keys {
		v, ok := rec[key].(string)
		if !ok || v == "" {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func boolField(rec Record, keys ...string) bool {
	for _, key := range keys {
		v, ok := rec[key].(string)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err == nil {
			return b
		}
		return strings.EqualFold(v, "yes")
	}
	return false
}
