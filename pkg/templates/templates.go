// Package templates provides embedded YAML configuration templates.
package templates

import _ "embed"

// CloudYAML contains the default cloud.yaml template with per-domain
// cloud provider settings.
//
//go:embed cloud.yaml
var CloudYAML string

// AppYAML contains the default app.yaml template with application-wide
// settings such as model_type and feature flags.
//
//go:embed app.yaml
var AppYAML string

// DatabaseYAML contains the default database.yaml template with
// per-domain database settings.
//
//go:embed database.yaml
var DatabaseYAML string

// SecretsYAML contains the default secrets.yaml template. The api_key
// value ships as the REPLACE_ME placeholder and fails validation until
// a real key is set.
//
//go:embed secrets.yaml
var SecretsYAML string

// Documents maps layer names to their templates, in no particular order.
// The loader defines the merge order.
var Documents = map[string]string{
	"cloud":    CloudYAML,
	"app":      AppYAML,
	"database": DatabaseYAML,
	"secrets":  SecretsYAML,
}
