// Package output writes archive listings and audit results as JSON.
package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/save"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// JSONEntry is one archived snapshot.
type JSONEntry struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	SavedAt string `json:"savedAt"`
}

// JSONAudit is the audit of one archived snapshot.
type JSONAudit struct {
	ID          string   `json:"id"`
	ToMove      string   `json:"toMove,omitempty"`
	Status      string   `json:"status,omitempty"`
	Moves       int      `json:"moves"`
	FEN         string   `json:"fen,omitempty"`
	Issues      []string `json:"issues,omitempty"`
	DuplicateOf string   `json:"duplicateOf,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// JSONSummary totals an audit.
type JSONSummary struct {
	Audited    int `json:"audited"`
	Unique     int `json:"unique"`
	Duplicates int `json:"duplicates"`
}

// JSONOutput is the document written for one invocation.
type JSONOutput struct {
	Entries []JSONEntry  `json:"entries,omitempty"`
	Audits  []JSONAudit  `json:"audits,omitempty"`
	Summary *JSONSummary `json:"summary,omitempty"`
}

// EntryToJSON converts an archive entry. Times are written in UTC.
func EntryToJSON(e save.Entry) JSONEntry {
	return JSONEntry{ID: e.ID, Label: e.Label, SavedAt: e.SavedAt.UTC().Format(time.RFC3339)}
}

// AuditToJSON converts one audit result.
func AuditToJSON(res worker.ProcessResult) JSONAudit {
	if res.Error != nil {
		return JSONAudit{ID: res.ID, Error: res.Error.Error()}
	}
	return JSONAudit{
		ID:          res.ID,
		ToMove:      res.ToMove.String(),
		Status:      res.Status.String(),
		Moves:       res.Moves,
		FEN:         res.FEN,
		Issues:      res.Issues,
		DuplicateOf: res.DuplicateOf,
	}
}

// SummaryToJSON totals an audit report.
func SummaryToJSON(r *worker.AuditReport) *JSONSummary {
	return &JSONSummary{Audited: len(r.Results), Unique: r.Unique, Duplicates: r.Duplicates}
}

// Write encodes doc as indented JSON.
func Write(w io.Writer, doc *JSONOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
