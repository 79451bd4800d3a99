package model

import "time"

// Response is the recorded answer to a question. Absence of an Answer
// record means "unanswered"; there is no explicit unanswered value.
type Response string

const (
	ResponsePositive      Response = "positive"
	ResponsePartial       Response = "partial"
	ResponseNegative      Response = "negative"
	ResponseNotApplicable Response = "not_applicable"
)

// Valid reports whether r is a known response value.
func (r Response) Valid() bool {
	switch r {
	case ResponsePositive, ResponsePartial, ResponseNegative, ResponseNotApplicable:
		return true
	}
	return false
}

// EvidenceStatus records how well a response is backed by evidence.
// Empty means no evidence assessment was recorded.
type EvidenceStatus string

const (
	EvidenceSufficient   EvidenceStatus = "sufficient"
	EvidencePartial      EvidenceStatus = "partial"
	EvidenceInsufficient EvidenceStatus = "insufficient"
)

// Valid reports whether e is a known evidence status. The empty status is
// valid: it means "not assessed" and scores as insufficient.
func (e EvidenceStatus) Valid() bool {
	switch e {
	case "", EvidenceSufficient, EvidencePartial, EvidenceInsufficient:
		return true
	}
	return false
}

// Answer is one recorded response, keyed by question id. Answers are
// created by the answer forms and import flows; the engine only reads them.
type Answer struct {
	QuestionID   string         `json:"questionId"`
	Response     Response       `json:"response"`
	Evidence     EvidenceStatus `json:"evidence,omitempty"`
	Notes        string         `json:"notes,omitempty"`
	EvidenceRefs []string       `json:"evidenceRefs,omitempty"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// AnswerSet is the sparse answer store view handed to the engine: a
// mapping from question id to its answer. Missing key = unanswered.
type AnswerSet map[string]Answer
