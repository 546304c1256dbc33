package server

import (
	"errors"
	"net/http"
	"slices"

	"github.com/Gobd/wordplay"
	v "github.com/Gobd/wordplay/validate"
)

// maxBodyBytes caps request bodies; the largest valid request is a text of
// maxTextLength runes, at most 4 bytes each, plus JSON escaping.
const maxBodyBytes = 8*maxTextLength + 1024

// decode reads and validates the body into dst, answering 413 when the body
// is too large and 400 on any other failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := v.DecodeAndValidate(body, dst); err != nil {
		code := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			code = http.StatusRequestEntityTooLarge
		}
		s.writeError(w, r, code, err)
		return false
	}
	return true
}

func (s *Server) textHandler(f func(string) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TextRequest
		if !s.decode(w, r, &req) {
			return
		}
		s.writeJSON(w, r, http.StatusOK, TextResponse{Text: f(req.Text)})
	}
}

func (s *Server) handleRot13(w http.ResponseWriter, r *http.Request) {
	s.textHandler(wordplay.Rot13)(w, r)
}

func (s *Server) handleCorrect(w http.ResponseWriter, r *http.Request) {
	s.textHandler(wordplay.Correct)(w, r)
}

func (s *Server) handleRobber(w http.ResponseWriter, r *http.Request) {
	s.textHandler(wordplay.RobberLanguage)(w, r)
}

func (s *Server) handleInflect(w http.ResponseWriter, r *http.Request) {
	var req InflectRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.writeJSON(w, r, http.StatusOK, InflectResponse{
		Verb:        req.Verb,
		ThirdPerson: wordplay.ThirdPersonSingular(req.Verb),
		Participle:  wordplay.PresentParticiple(req.Verb),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !s.decode(w, r, &req) {
		return
	}
	if len(req.Checks) == 0 {
		req.Checks = allChecks
	}
	wants := func(check string) bool {
		return slices.Contains(req.Checks, check)
	}

	var resp AnalyzeResponse
	if wants(checkPangram) {
		ok := wordplay.IsPangram(req.Text)
		resp.Pangram = &ok
	}
	if wants(checkPalindrome) {
		ok := wordplay.IsPalindromePhrase(req.Text)
		resp.Palindrome = &ok
	}
	if wants(checkFrequency) {
		freq := wordplay.CharFreq(req.Text)
		resp.Frequency = make(map[string]int, len(freq))
		for c, n := range freq {
			resp.Frequency[string(c)] = n
		}
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if !s.decode(w, r, &req) {
		return
	}
	words, err := wordplay.Translate(req.Words)
	if errors.Is(err, wordplay.ErrUnknownWord) {
		s.writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, TranslateResponse{Words: words})
}
