// The types and chi router in this package are generated from spec/openapi.yaml.
// Do not edit api.gen.go by hand; change the OpenAPI document and regenerate.

package gen

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=cfg.yaml ../../../spec/openapi.yaml
