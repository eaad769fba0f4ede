package validation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"clubhub-backend/internal/domain"
)

const (
	maxResponses      = 20
	maxQuestionLength = 200
	maxAnswerLength   = 1000
)

// ParseResponses validates and decodes the optional question/answer list of
// a registration. Absence (or JSON null) is valid and yields a nil slice;
// the event simply has no dynamic questions configured.
//
// Checks run front-to-back and fail fast: container shape, length, then per
// item: non-null object before any field check, question, answer.
func ParseResponses(raw json.RawMessage) ([]domain.Response, Result) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, valid()
	}

	if raw[0] != '[' {
		return nil, invalid("responses must be an array")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, invalid("responses must be an array")
	}

	if len(items) > maxResponses {
		return nil, invalid(fmt.Sprintf("too many responses (maximum %d)", maxResponses))
	}

	out := make([]domain.Response, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		// Null items have no fields to inspect; reject before field checks.
		if len(item) == 0 || bytes.Equal(item, []byte("null")) || item[0] != '{' {
			return nil, invalid("responses must be objects")
		}

		var fields struct {
			Question json.RawMessage `json:"question"`
			Answer   json.RawMessage `json:"answer"`
		}
		if err := json.Unmarshal(item, &fields); err != nil {
			return nil, invalid("responses must be objects")
		}

		var question string
		if err := json.Unmarshal(fields.Question, &question); err != nil || question == "" {
			return nil, invalid("each response must have a question")
		}
		if len(question) > maxQuestionLength {
			return nil, invalid(fmt.Sprintf("question text too long (maximum %d characters)", maxQuestionLength))
		}

		var answer string
		if err := json.Unmarshal(fields.Answer, &answer); err != nil || answer == "" {
			return nil, invalid("each response must have an answer")
		}
		if len(answer) > maxAnswerLength {
			return nil, invalid(fmt.Sprintf("answer text too long (maximum %d characters)", maxAnswerLength))
		}

		out = append(out, domain.Response{Question: question, Answer: answer})
	}

	return out, valid()
}
