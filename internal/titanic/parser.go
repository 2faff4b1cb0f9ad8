package titanic

import (
	"strconv"
	"strings"
)

// ParseDataset parses the full text of the passenger manifest. The first
// line is the header row; every subsequent non-blank line becomes one
// Passenger, in input order. Columns are mapped by the header row's names,
// not by a fixed position, so a reordered source file parses identically.
//
// Parsing never fails: malformed numeric cells fall back to their defaults
// (0 for counts, null for Age/Fare) and no row is ever skipped.
func ParseDataset(text string) []Passenger {
	lines := datasetLines(text)
	if len(lines) < 2 {
		return []Passenger{}
	}

	header := splitLine(lines[0])
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	passengers := make([]Passenger, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := splitLine(line)
		cell := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(fields) {
				return ""
			}
			return fields[i]
		}

		passengers = append(passengers, Passenger{
			ID:       parseIntCell(cell("PassengerId")),
			Survived: parseIntCell(cell("Survived")),
			Pclass:   parseIntCell(cell("Pclass")),
			Name:     cell("Name"),
			Sex:      cell("Sex"),
			Age:      parseFloatCell(cell("Age")),
			SibSp:    parseIntCell(cell("SibSp")),
			Parch:    parseIntCell(cell("Parch")),
			Ticket:   cell("Ticket"),
			Fare:     parseFloatCell(cell("Fare")),
			Cabin:    cell("Cabin"),
			Embarked: cell("Embarked"),
		})
	}

	return passengers
}

// splitLine splits one manifest line into fields. A double quote toggles
// the in-quotes flag instead of being copied; a comma splits only while
// the flag is off. There is no doubled-quote escaping, and an unbalanced
// quote still flushes the final field. Any quote characters that survive
// the scan are stripped from the finished fields.
func splitLine(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(ch)
		}
	}
	fields = append(fields, field.String())

	for i, f := range fields {
		fields[i] = strings.ReplaceAll(f, `"`, "")
	}

	return fields
}

// datasetLines splits raw text into lines, tolerating CRLF endings and
// dropping blank lines (a trailing newline is not a record).
func datasetLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func parseIntCell(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func parseFloatCell(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}
