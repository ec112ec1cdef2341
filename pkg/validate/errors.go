package validate

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/samiksha22122/ConfigManager/pkg/errcode"
)

// MissingKeyError reports an absent top-level required key.
func MissingKeyError(key string) error {
	msg := "Missing required config key <em>%s</em>"
	vars := []any{key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ValidateMissingKeyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: missing required config key %s",
			fn.Name(), key),
	}
}

// TypeMismatchError reports a configuration value of the wrong type.
// The expected and actual types use YAML vocabulary (string, integer,
// boolean, mapping, null).
func TypeMismatchError(path, expected, actual string) error {
	msg := "Type mismatch for <em>%s</em>: expected %s, got %s"
	vars := []any{path, expected, actual}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ValidateTypeMismatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s must be %s, got %s",
			fn.Name(), path, expected, actual),
	}
}

// InvalidSecretError reports an unusable API key: missing, empty, a
// placeholder, or too short.
func InvalidSecretError(domain, reason string) error {
	msg := "API key for domain <em>%s</em> is %s"
	vars := []any{domain, reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ValidateInvalidSecretError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: api key for domain %s is %s",
			fn.Name(), domain, reason),
	}
}

// MissingFileError reports a secrets file that is absent from the
// filesystem at validation time.
func MissingFileError(path string, err error) error {
	msg := "Config file not found: <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ValidateMissingFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot stat %s: %w",
			fn.Name(), path, err),
	}
}

// DomainMappingMismatchError reports database domains that have no
// cloud_details counterpart. The domains come in sorted order.
func DomainMappingMismatchError(domains []string) error {
	msg := "Domains in database config missing from cloud config: <em>%s</em>"
	vars := []any{strings.Join(domains, ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ValidateDomainMappingError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: database domains %v missing from cloud config",
			fn.Name(), domains),
	}
}

// UnknownDomainError reports a domain with no database_details entry.
func UnknownDomainError(domain string) error {
	msg := "No database config for domain <em>%s</em>"
	vars := []any{domain}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ValidateUnknownDomainError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no database config for domain %s",
			fn.Name(), domain),
	}
}
