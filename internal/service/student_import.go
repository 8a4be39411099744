package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	appErrors "github.com/Justcode790/UniSeat-backend/pkg/errors"
)

// maxImportRows bounds a single CSV upload.
const maxImportRows = 10000

// studentColumnAliases maps accepted header spellings onto request fields.
var studentColumnAliases = map[string][]string{
	"name":      {"name", "Name"},
	"regNumber": {"regNumber", "RegNumber", "reg_number"},
	"branch":    {"branch", "Branch"},
	"year":      {"year", "Year"},
	"section":   {"section", "Section"},
	"email":     {"email", "Email"},
}

// ImportRowError describes why one CSV row was rejected. Row is the 1-based
// line number in the uploaded file.
type ImportRowError struct {
	Row       int    `json:"row"`
	RegNumber string `json:"reg_number,omitempty"`
	Error     string `json:"error"`
}

// StudentImportResult summarises a CSV import.
type StudentImportResult struct {
	Created int              `json:"created"`
	Failed  int              `json:"failed"`
	Errors  []ImportRowError `json:"errors,omitempty"`
}

// Import creates one student per CSV row. Rows are validated and inserted
// independently, so a bad row never blocks the rest of the file.
func (s *StudentService) Import(ctx context.Context, r io.Reader) (*StudentImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "csv file is empty")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid csv header")
	}
	columns := resolveStudentColumns(header)
	for _, required := range []string{"name", "regNumber", "branch", "year", "section"} {
		if _, ok := columns[required]; !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("csv header is missing column %q", required))
		}
	}

	result := &StudentImportResult{}
	rows := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rows++
		if rows > maxImportRows {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("csv file exceeds %d rows", maxImportRows))
		}
		if err != nil {
			var parseErr *csv.ParseError
			line := 0
			if errors.As(err, &parseErr) {
				line = parseErr.StartLine
			}
			result.reject(line, "", err.Error())
			continue
		}
		line, _ := reader.FieldPos(0)
		if isBlankRecord(record) {
			continue
		}

		req, err := studentRequestFromRecord(record, columns)
		if err != nil {
			result.reject(line, req.RegNumber, err.Error())
			continue
		}
		if _, err := s.Create(ctx, req); err != nil {
			result.reject(line, req.RegNumber, appErrors.FromError(err).Message)
			continue
		}
		result.Created++
	}

	s.logger.Info("student csv imported", zap.Int("created", result.Created), zap.Int("failed", result.Failed))
	return result, nil
}

func (r *StudentImportResult) reject(line int, regNumber, message string) {
	r.Failed++
	r.Errors = append(r.Errors, ImportRowError{Row: line, RegNumber: regNumber, Error: message})
}

func resolveStudentColumns(header []string) map[string]int {
	columns := make(map[string]int)
	for i, raw := range header {
		name := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
		for field, aliases := range studentColumnAliases {
			if _, taken := columns[field]; taken {
				continue
			}
			for _, alias := range aliases {
				if name == alias {
					columns[field] = i
				}
			}
		}
	}
	return columns
}

func studentRequestFromRecord(record []string, columns map[string]int) (StudentRequest, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	req := StudentRequest{
		Name:      field("name"),
		RegNumber: field("regNumber"),
		Branch:    field("branch"),
		Section:   field("section"),
		Email:     field("email"),
	}
	rawYear := field("year")
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return req, fmt.Errorf("invalid year %q", rawYear)
	}
	req.Year = year
	return req, nil
}

func isBlankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
