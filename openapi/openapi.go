package openapi

import (
	"errors"
	"net/http"

	"github.com/Gobd/wordplay/validate"
	"github.com/getkin/kin-openapi/openapi3"
)

const jsonMediaType = "application/json"

// Response describes an HTTP response with a description and body types for schema generation.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes one operation for [Get] and [Post].
type Endpoint struct {
	Summary     string
	Description string
	Request     any                 // request body type
	Response    any                 // 200 response body type
	Responses   map[string]Response // extra responses keyed by status code, e.g. "400"
}

// jsonContent returns a JSON body schema for the given types: the schema
// itself for a single type, a oneOf wrapper otherwise.
func jsonContent(vs []any) (openapi3.Content, error) {
	refs := make(openapi3.SchemaRefs, 0, len(vs))
	for _, v := range vs {
		ref, err := validate.NewSchemaRefForValue(v)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	schema := &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: refs}}
	if len(refs) == 1 {
		schema = refs[0]
	}
	return openapi3.NewContentWithSchemaRef(schema, []string{jsonMediaType}), nil
}

// NewRequest generates a required JSON request body from the given types.
func NewRequest(vs ...any) (*openapi3.RequestBodyRef, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}
	content, err := jsonContent(vs)
	if err != nil {
		return nil, err
	}
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithContent(content),
	}, nil
}

// NewResponse creates an OpenAPI responses object. Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}
	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for code, r := range vs {
		resp := openapi3.NewResponse().WithDescription(r.Desc)
		if len(r.Bodies) > 0 {
			content, err := jsonContent(r.Bodies)
			if err != nil {
				return nil, err
			}
			resp.Content = content
		}
		opts = append(opts, openapi3.WithName(code, resp))
	}
	return openapi3.NewResponses(opts...), nil
}

// DocBase returns an empty OpenAPI 3.0.3 document.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
	}
}

// AddPath sets op as the method operation of path, keeping other methods.
func AddPath(doc *openapi3.T, path, method string, op *openapi3.Operation) {
	item := doc.Paths.Value(path)
	if item == nil {
		item = &openapi3.PathItem{}
	}
	item.SetOperation(method, op)
	doc.Paths.Set(path, item)
}

func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) error {
	op := openapi3.NewOperation()
	op.OperationID = operationID
	op.Summary = ep.Summary
	op.Description = ep.Description

	if ep.Request != nil {
		body, err := NewRequest(ep.Request)
		if err != nil {
			return err
		}
		op.RequestBody = body
	}

	responses := map[string]Response{}
	for code, r := range ep.Responses {
		responses[code] = r
	}
	if _, ok := responses["200"]; !ok && ep.Response != nil {
		responses["200"] = Response{Desc: "OK", Bodies: []any{ep.Response}}
	}
	if len(responses) == 0 {
		op.Responses = openapi3.NewResponses()
	} else {
		resp, err := NewResponse(responses)
		if err != nil {
			return err
		}
		op.Responses = resp
	}

	AddPath(doc, path, method, op)
	return nil
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodPost, operationID, ep)
}
