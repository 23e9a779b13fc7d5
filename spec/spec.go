// Package spec embeds the OpenAPI document of the dispatch API.
// It is served at /openapi.yaml by the HTTP server.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte
