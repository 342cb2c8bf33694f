package catalogue

import (
	"bufio"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/model"
)

// Columns are identified by a case-insensitive substring match on the
// header names, so exports with decorated headers still parse. Order is
// irrelevant.
var requiredColumns = []string{
	"technique id",
	"technique name",
	"technique description",
	"mitigation id",
	"mitigation name",
	"mitigation description",
}

// Parse reads a delimited technique/mitigation table: a header row followed
// by one row per technique-mitigation pair. Rows are grouped by technique
// id, accumulating mitigations in row order. Field splitting is naive:
// quoted fields containing the delimiter are not supported (known
// limitation of the source format).
func Parse(r io.Reader, delimiter string) ([]*model.Technique, error) {
	if delimiter == "" {
		delimiter = "\t"
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, goerr.Wrap(err, "failed to read catalogue header")
		}
		return nil, goerr.New("catalogue document is empty")
	}

	columns, err := mapColumns(strings.Split(scanner.Text(), delimiter))
	if err != nil {
		return nil, err
	}

	var techniques []*model.Technique
	byID := make(map[string]*model.Technique)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, delimiter)

		techniqueID := strings.TrimSpace(fieldAt(fields, columns["technique id"]))
		if techniqueID == "" {
			continue
		}

		tech, ok := byID[techniqueID]
		if !ok {
			tech = &model.Technique{
				ID:          techniqueID,
				Name:        strings.TrimSpace(fieldAt(fields, columns["technique name"])),
				Description: strings.TrimSpace(fieldAt(fields, columns["technique description"])),
			}
			byID[techniqueID] = tech
			techniques = append(techniques, tech)
		}

		mitigationID := strings.TrimSpace(fieldAt(fields, columns["mitigation id"]))
		mitigationName := strings.TrimSpace(fieldAt(fields, columns["mitigation name"]))
		if mitigationID == "" && mitigationName == "" {
			continue
		}
		tech.Mitigations = append(tech.Mitigations, model.Mitigation{
			ID:          mitigationID,
			Name:        mitigationName,
			Description: strings.TrimSpace(fieldAt(fields, columns["mitigation description"])),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read catalogue rows")
	}

	return techniques, nil
}

func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(requiredColumns))
	for idx, name := range header {
		folded := strings.ToLower(strings.TrimSpace(name))
		for _, want := range requiredColumns {
			if _, taken := columns[want]; taken {
				continue
			}
			if strings.Contains(folded, want) {
				columns[want] = idx
			}
		}
	}

	for _, want := range requiredColumns {
		if _, ok := columns[want]; !ok {
			return nil, goerr.New("catalogue header is missing a required column",
				goerr.V("column", want), goerr.V("header", header))
		}
	}
	return columns, nil
}

func fieldAt(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return fields[idx]
}
