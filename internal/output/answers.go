package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"security-maturity-assessor/internal/model"
)

// answersHeader is the exchange format for answer import/export. Export
// always writes it; import tolerates missing trailing columns.
var answersHeader = []string{"Question ID", "Response", "Evidence", "Notes", "Evidence Refs", "Updated At"}

// ExportAnswersCSV writes the answer set in question-id order, with a
// UTF-8 BOM so the file opens cleanly in Excel.
func ExportAnswersCSV(w io.Writer, answers model.AnswerSet) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	_ = cw.Write(answersHeader)

	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		a := answers[id]
		ts := ""
		if !a.UpdatedAt.IsZero() {
			ts = a.UpdatedAt.UTC().Format(time.RFC3339)
		}
		_ = cw.Write([]string{a.QuestionID, string(a.Response), string(a.Evidence), a.Notes, strings.Join(a.EvidenceRefs, ";"), ts})
	}
	cw.Flush()
	return cw.Error()
}

// ImportAnswersCSV parses an exported answer file. Rows with an unknown
// response or evidence value are rejected with a row-numbered error;
// timestamps default to now when absent or unparsable.
func ImportAnswersCSV(r io.Reader, now time.Time) (model.AnswerSet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("answers: parse csv: %w", err)
	}

	out := make(model.AnswerSet)
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		// Strip the BOM and skip the header row.
		row[0] = strings.TrimPrefix(row[0], "\ufeff")
		if i == 0 && strings.EqualFold(row[0], answersHeader[0]) {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("answers: row %d: expected at least question id and response", i+1)
		}

		a := model.Answer{
			QuestionID: strings.TrimSpace(row[0]),
			Response:   model.Response(strings.TrimSpace(strings.ToLower(row[1]))),
			UpdatedAt:  now,
		}
		if a.QuestionID == "" {
			return nil, fmt.Errorf("answers: row %d: empty question id", i+1)
		}
		if !a.Response.Valid() {
			return nil, fmt.Errorf("answers: row %d: unknown response %q", i+1, row[1])
		}
		if len(row) > 2 {
			a.Evidence = model.EvidenceStatus(strings.TrimSpace(strings.ToLower(row[2])))
			if !a.Evidence.Valid() {
				return nil, fmt.Errorf("answers: row %d: unknown evidence %q", i+1, row[2])
			}
		}
		if len(row) > 3 {
			a.Notes = row[3]
		}
		if len(row) > 4 && row[4] != "" {
			a.EvidenceRefs = strings.Split(row[4], ";")
		}
		if len(row) > 5 && row[5] != "" {
			if ts, err := time.Parse(time.RFC3339, row[5]); err == nil {
				a.UpdatedAt = ts
			}
		}
		out[a.QuestionID] = a
	}
	return out, nil
}
