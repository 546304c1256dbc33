package server

import (
	"github.com/Gobd/wordplay/openapi"
	"github.com/getkin/kin-openapi/openapi3"
)

var badRequest = map[string]openapi.Response{
	"400": {Desc: "Malformed or invalid request", Bodies: []any{ErrorResponse{}}},
}

// Document describes the API served by [Server].
func Document(version string) (*openapi3.T, error) {
	doc := openapi.DocBase("wordplay", "Text transformations: ROT13, inflection, lexical checks and translation.", version)

	endpoints := []struct {
		path, id string
		ep       openapi.Endpoint
	}{
		{"/rot13", "rot13", openapi.Endpoint{
			Summary: "Apply the ROT13 cipher", Request: TextRequest{}, Response: TextResponse{}, Responses: badRequest,
		}},
		{"/correct", "correct", openapi.Endpoint{
			Summary: "Collapse whitespace and space out sentences", Request: TextRequest{}, Response: TextResponse{}, Responses: badRequest,
		}},
		{"/robber", "robber", openapi.Endpoint{
			Summary: "Encode text in robber language", Request: TextRequest{}, Response: TextResponse{}, Responses: badRequest,
		}},
		{"/inflect", "inflect", openapi.Endpoint{
			Summary: "Third person singular and present participle of a verb", Request: InflectRequest{}, Response: InflectResponse{}, Responses: badRequest,
		}},
		{"/analyze", "analyze", openapi.Endpoint{
			Summary: "Pangram, palindrome and character frequency checks", Request: AnalyzeRequest{}, Response: AnalyzeResponse{}, Responses: badRequest,
		}},
		{"/translate", "translate", openapi.Endpoint{
			Summary:  "Translate greeting card words to Swedish",
			Request:  TranslateRequest{},
			Response: TranslateResponse{},
			Responses: map[string]openapi.Response{
				"400": badRequest["400"],
				"422": {Desc: "Word outside the lexicon", Bodies: []any{ErrorResponse{}}},
			},
		}},
	}
	for _, e := range endpoints {
		if err := openapi.Post(doc, e.path, e.id, e.ep); err != nil {
			return nil, err
		}
	}
	if err := openapi.Get(doc, "/healthz", "health", openapi.Endpoint{
		Responses: map[string]openapi.Response{"204": {Desc: "Healthy"}},
	}); err != nil {
		return nil, err
	}
	return doc, nil
}
