// Package generated holds code generated from the OpenAPI contract in api/openapi.yml.
package generated

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config ../../api/oapi-codegen.yml ../../api/openapi.yml
