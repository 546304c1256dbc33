// Package openapi builds the OpenAPI 3 document for the wordplay HTTP API
// from request and response types that implement [validate.Ruler].
//
//	doc := openapi.DocBase("wordplay", "Text transformations", "1.0.0")
//	openapi.Post(doc, "/rot13", "rot13", openapi.Endpoint{
//	    Request:  TextRequest{},
//	    Response: TextResponse{},
//	})
package openapi
