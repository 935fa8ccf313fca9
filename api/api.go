// Package api embeds the OpenAPI contract of the restaurant HTTP API. The
// HTTP adapter validates incoming requests against it and serves it at
// /openapi.yml.
package api

import _ "embed"

//go:embed openapi.yml
var Document []byte
