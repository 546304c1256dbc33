package server

import (
	"github.com/Gobd/wordplay/is"
	"github.com/Gobd/wordplay/transform"
	v "github.com/Gobd/wordplay/validate"
)

const (
	maxTextLength = 1 << 16
	maxWords      = 256
)

// TextRequest carries free text for the cipher, corrector and robber
// endpoints. Text is used verbatim.
type TextRequest struct {
	Text string `json:"text"`
}

func (r *TextRequest) Rules() []*v.FieldRules {
	return []*v.FieldRules{
		v.Field(&r.Text, v.Required, v.Length(1, maxTextLength), v.Example("Caesar cipher? I much prefer Caesar salad!")),
	}
}

// TextResponse is the transformed text.
type TextResponse struct {
	Text string `json:"text"`
}

// InflectRequest names a verb to inflect.
type InflectRequest struct {
	Verb string `json:"verb"`
}

func (r *InflectRequest) Rules() []*v.FieldRules {
	return []*v.FieldRules{
		v.Field(&r.Verb, v.Required, v.Length(1, 64), is.Word, v.Example("hug")),
	}
}

func (r *InflectRequest) Normalize() {
	transform.StructMulti(r, transform.StructTrimSpace, transform.StructToLower)
}

// InflectResponse holds both inflected forms of a verb.
type InflectResponse struct {
	Verb        string `json:"verb"`
	ThirdPerson string `json:"third_person"`
	Participle  string `json:"participle"`
}

const (
	checkPangram    = "pangram"
	checkPalindrome = "palindrome"
	checkFrequency  = "frequency"
)

var allChecks = []string{checkPangram, checkPalindrome, checkFrequency}

// AnalyzeRequest asks for lexical checks on a text. No checks means all
// of them.
type AnalyzeRequest struct {
	Text   string   `json:"text"`
	Checks []string `json:"checks"`
}

func (r *AnalyzeRequest) Rules() []*v.FieldRules {
	return []*v.FieldRules{
		v.Field(&r.Text, v.Required, v.Length(1, maxTextLength)),
		v.Field(&r.Checks, v.Each(v.In(checkPangram, checkPalindrome, checkFrequency)),
			v.Default([]any{checkPangram, checkPalindrome, checkFrequency})),
	}
}

// AnalyzeResponse holds the results of the requested checks; checks that
// were not requested are omitted.
type AnalyzeResponse struct {
	Pangram    *bool          `json:"pangram,omitempty"`
	Palindrome *bool          `json:"palindrome,omitempty"`
	Frequency  map[string]int `json:"frequency,omitempty"`
}

// TranslateRequest lists words to translate.
type TranslateRequest struct {
	Words []string `json:"words"`
}

func (r *TranslateRequest) Rules() []*v.FieldRules {
	return []*v.FieldRules{
		v.Field(&r.Words, v.Required, v.Length(1, maxWords), v.Each(v.Required, is.Alpha),
			v.Describe("Words outside the lexicon are rejected with 422.")),
	}
}

func (r *TranslateRequest) Normalize() {
	transform.StructMulti(r, transform.StructTrimSpace, transform.StructToLower)
}

// TranslateResponse is the translated word list.
type TranslateResponse struct {
	Words []string `json:"words"`
}

// ErrorResponse is the error envelope for every non 2xx JSON reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
