package queue

import (
	"strings"
	"testing"
)

func TestParseCSVNormalizesHeaders(t *testing.T) {
	input := " Name , PHONE Number ,Enquiry\nRajesh,+91 98765 43210,water supply\n"
	rows, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	row := rows[0]
	if row["name"] != "Rajesh" {
		t.Fatalf("name column = %q", row["name"])
	}
	if row["phone number"] != "+91 98765 43210" {
		t.Fatalf("phone column = %q", row["phone number"])
	}
	if row["enquiry"] != "water supply" {
		t.Fatalf("enquiry column = %q", row["enquiry"])
	}
}

func TestParseCSVPadsShortRows(t *testing.T) {
	input := "name,phone,notes\nX,999\n"
	rows, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if rows[0]["notes"] != "" {
		t.Fatalf("missing column should be empty, got %q", rows[0]["notes"])
	}
}

func TestParseCSVEmptyInput(t *testing.T) {
	rows, err := ParseCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseCSV on empty input: %v", err)
	}
	if rows != nil {
		t.Fatalf("expected no rows, got %v", rows)
	}
}

func TestParseCSVFeedsImport(t *testing.T) {
	input := "Name,Mobile\nX,999\n,\n"
	rows, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	q := NewQueue()
	if accepted := q.ImportBulk(rows); accepted != 1 {
		t.Fatalf("ImportBulk accepted %d rows, want 1", accepted)
	}
}
