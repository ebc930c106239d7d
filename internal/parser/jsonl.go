// Package parser reads JSON Lines data files into table records.
package parser

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/young1lin/tableview/internal/model"
)

// maxLineSize bounds a single JSONL line
const maxLineSize = 1024 * 1024

// Record is one decoded JSONL object. Numbers keep their original text.
type Record map[string]any

// ParseLine decodes a single JSONL line. Blank lines return nil without error.
func ParseLine(line []byte) (Record, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil, nil
	}
	if !IsObject(line) {
		return nil, fmt.Errorf("failed to parse record: line is not a JSON object")
	}

	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to parse record: %w", err)
	}
	return rec, nil
}

// IsObject quickly checks whether a trimmed line looks like a JSON object
func IsObject(line []byte) bool {
	return len(line) >= 2 && line[0] == '{' && line[len(line)-1] == '}'
}

// Result holds the records read from a stream and the lines that failed
type Result struct {
	Records []Record
	Skipped int
	// FirstErr is the error of the first skipped line
	FirstErr error
}

// ParseRecords reads every line of r. Malformed lines are counted and
// skipped so one bad line does not hide the rest of the file.
func ParseRecords(r io.Reader) (Result, error) {
	var res Result
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rec, err := ParseLine(scanner.Bytes())
		if err != nil {
			res.Skipped++
			if res.FirstErr == nil {
				res.FirstErr = fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}
		if rec != nil {
			res.Records = append(res.Records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("failed to read records: %w", err)
	}
	return res, nil
}

// ReadFile parses the JSONL file at path
func ReadFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()
	return ParseRecords(f)
}

// Units converts records carrying an id into administrative units.
// Records without a usable id are skipped.
func Units(records []Record) []model.AdminUnit {
	units := make([]model.AdminUnit, 0, len(records))
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			continue
		}
		var u model.AdminUnit
		if err := json.Unmarshal(data, &u); err != nil || u.ID == 0 {
			continue
		}
		units = append(units, u)
	}
	return units
}
