package parser

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr bool
		wantNil bool
	}{
		{
			name: "valid record",
			line: `{"id":1,"ten":"Cau Giay","cap":"huyện"}`,
		},
		{
			name: "surrounding whitespace",
			line: "  {\"id\":2}\t",
		},
		{
			name:    "empty line",
			line:    ``,
			wantNil: true,
		},
		{
			name:    "blank line",
			line:    "   ",
			wantNil: true,
		},
		{
			name:    "invalid JSON",
			line:    `{invalid json}`,
			wantErr: true,
			wantNil: true,
		},
		{
			name:    "array",
			line:    `[1,2]`,
			wantErr: true,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine([]byte(tt.line))
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLine() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if (got == nil) != tt.wantNil {
				t.Errorf("ParseLine() got = %v, wantNil %v", got, tt.wantNil)
			}
		})
	}
}

func TestParseLineKeepsNumberText(t *testing.T) {
	rec, err := ParseLine([]byte(`{"id":12345678901234567}`))
	if err != nil {
		t.Fatalf("ParseLine() error = %v", err)
	}
	n, ok := rec["id"].(json.Number)
	if !ok {
		t.Fatalf("id type = %T, want json.Number", rec["id"])
	}
	if n.String() != "12345678901234567" {
		t.Errorf("id = %s, want 12345678901234567", n)
	}
}

func TestParseRecords(t *testing.T) {
	input := strings.Join([]string{
		`{"id":1,"ten":"Cau Giay"}`,
		``,
		`not json`,
		`{"id":2,"ten":"Tay Ho"}`,
		`{"broken":`,
	}, "\n")

	res, err := ParseRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseRecords() error = %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("Records = %d, want 2", len(res.Records))
	}
	if res.Records[1]["ten"] != "Tay Ho" {
		t.Errorf("Records[1][ten] = %v, want Tay Ho", res.Records[1]["ten"])
	}
	if res.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", res.Skipped)
	}
	if res.FirstErr == nil || !strings.HasPrefix(res.FirstErr.Error(), "line 3:") {
		t.Errorf("FirstErr = %v, want line 3 error", res.FirstErr)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.jsonl")
	data := "{\"id\":1,\"ten\":\"Cau Giay\",\"cap\":\"huyện\"}\n{\"id\":101,\"ten\":\"Dich Vong\",\"cap\":\"xã\",\"parent_id\":1}\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	res, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(res.Records) != 2 {
		t.Errorf("Records = %d, want 2", len(res.Records))
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.jsonl")); err == nil {
		t.Error("ReadFile() of missing file succeeded")
	}
}

func TestUnits(t *testing.T) {
	res, err := ParseRecords(strings.NewReader(
		`{"id":101,"ten":"Dich Vong","cap":"xã","parent_id":1}` + "\n" +
			`{"ten":"no id"}` + "\n" +
			`{"id":"text"}` + "\n"))
	if err != nil {
		t.Fatalf("ParseRecords() error = %v", err)
	}

	units := Units(res.Records)
	if len(units) != 1 {
		t.Fatalf("Units() = %d units, want 1", len(units))
	}
	u := units[0]
	if u.ID != 101 || u.Name != "Dich Vong" || u.ParentID != 1 {
		t.Errorf("Units()[0] = %+v", u)
	}
}
