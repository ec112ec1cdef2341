package validate

import (
	"fmt"
	"os"
	"slices"

	"github.com/samiksha22122/ConfigManager/pkg/config"
)

// requiredKeys are the top-level keys every merged configuration must
// carry, checked in this order.
var requiredKeys = []string{
	"cloud_details",
	"database_details",
	"model_type",
	"features",
	"cloud_secrets",
}

const (
	// placeholderSecret marks an API key that was scaffolded but never
	// set to a real value.
	placeholderSecret = "REPLACE_ME"

	// minSecretLength is the exclusive lower bound for API key length.
	minSecretLength = 10
)

// Check is one named validation step. Run returns nil when the
// configuration satisfies the step's invariant.
type Check struct {
	// Name identifies the check in logs and reports.
	Name string

	// Confirm is the user-facing confirmation for a passed check.
	Confirm string

	// Run executes the check against the snapshot.
	Run func() error
}

// Checks returns the validation steps in their fixed execution order.
// The checks are independent: a step whose subject is owned by an
// earlier or later step defers instead of failing twice, so collect-all
// runs report each problem once.
func (v *Validator) Checks() []Check {
	return []Check{
		{
			Name:    "required_keys",
			Confirm: "All required keys are present",
			Run:     v.checkRequiredKeys,
		},
		{
			Name:    "model_type",
			Confirm: "<em>model_type</em> is a string",
			Run:     v.checkModelType,
		},
		{
			Name:    "database_port",
			Confirm: fmt.Sprintf("Database port for <em>%s</em> is an integer", v.domain),
			Run:     v.checkDatabasePort,
		},
		{
			Name:    "cloud_provider",
			Confirm: fmt.Sprintf("Cloud provider for <em>%s</em> is a string", v.domain),
			Run:     v.checkCloudProvider,
		},
		{
			Name:    "feature_flag",
			Confirm: "<em>enable_feature_x</em> is a boolean",
			Run:     v.checkFeatureFlag,
		},
		{
			Name:    "api_key_type",
			Confirm: fmt.Sprintf("API key for <em>%s</em> is a string", v.domain),
			Run:     v.checkAPIKeyType,
		},
		{
			Name:    "api_key",
			Confirm: fmt.Sprintf("API key for <em>%s</em> is valid", v.domain),
			Run:     v.checkAPIKey,
		},
		{
			Name:    "secrets_file",
			Confirm: fmt.Sprintf("Secrets file found at <em>%s</em>", v.secretsPath),
			Run:     v.checkSecretsFile,
		},
		{
			Name:    "domain_mapping",
			Confirm: "Cloud and database domain mappings are consistent",
			Run:     v.checkDomainMapping,
		},
		{
			Name:    "domain_config",
			Confirm: fmt.Sprintf("Domain <em>%s</em> is present in the database config", v.domain),
			Run:     v.checkDomainConfig,
		},
	}
}

func (v *Validator) checkRequiredKeys() error {
	for _, key := range requiredKeys {
		if !v.cfg.Has(key) {
			return MissingKeyError(key)
		}
	}
	return nil
}

// checkModelType requires a string model_type. Absence of the key
// belongs to required_keys.
func (v *Validator) checkModelType() error {
	val, ok := v.cfg.Lookup("model_type")
	if !ok {
		return nil
	}
	if _, isStr := val.(string); !isStr {
		return TypeMismatchError("model_type", "string", config.TypeName(val))
	}
	return nil
}

func (v *Validator) checkDatabasePort() error {
	section, err := v.domainSection("database_details")
	if err != nil || section == nil {
		return err
	}

	path := "database_details." + v.domain + ".port"
	val, ok := section["port"]
	if !ok {
		return TypeMismatchError(path, "integer", "null")
	}
	switch val.(type) {
	case int, int32, int64, uint64:
		return nil
	}
	return TypeMismatchError(path, "integer", config.TypeName(val))
}

func (v *Validator) checkCloudProvider() error {
	section, err := v.domainSection("cloud_details")
	if err != nil || section == nil {
		return err
	}

	path := "cloud_details." + v.domain + ".provider"
	val, ok := section["provider"]
	if !ok {
		return TypeMismatchError(path, "string", "null")
	}
	if _, isStr := val.(string); !isStr {
		return TypeMismatchError(path, "string", config.TypeName(val))
	}
	return nil
}

// checkFeatureFlag requires a boolean features.enable_feature_x.
// Absence of the features section belongs to required_keys; a present
// section must carry the flag.
func (v *Validator) checkFeatureFlag() error {
	val, ok := v.cfg.Lookup("features")
	if !ok {
		return nil
	}
	section, isMap := val.(map[string]any)
	if !isMap {
		return TypeMismatchError("features", "mapping", config.TypeName(val))
	}

	flag, ok := section["enable_feature_x"]
	if !ok {
		return TypeMismatchError("features.enable_feature_x", "boolean", "null")
	}
	if _, isBool := flag.(bool); !isBool {
		return TypeMismatchError(
			"features.enable_feature_x", "boolean", config.TypeName(flag),
		)
	}
	return nil
}

// checkAPIKeyType requires a string api_key when one is present. An
// absent key belongs to the content check, which reports it as a
// missing secret.
func (v *Validator) checkAPIKeyType() error {
	val, ok := v.cfg.Lookup("cloud_secrets." + v.domain + ".api_key")
	if !ok {
		return nil
	}
	if _, isStr := val.(string); !isStr {
		return TypeMismatchError(
			"cloud_secrets."+v.domain+".api_key", "string", config.TypeName(val),
		)
	}
	return nil
}

// checkAPIKey rejects empty, placeholder and short api_key values for
// domains known under database_details. Unknown domains belong to
// domain_config, a non-string value to api_key_type, an absent
// cloud_secrets section to required_keys.
func (v *Validator) checkAPIKey() error {
	if !slices.Contains(v.cfg.DomainKeys("database_details"), v.domain) {
		return nil
	}
	if !v.cfg.Has("cloud_secrets") {
		return nil
	}

	val, ok := v.cfg.Lookup("cloud_secrets." + v.domain + ".api_key")
	if !ok {
		return InvalidSecretError(v.domain, "missing")
	}
	key, isStr := val.(string)
	if !isStr {
		return nil
	}

	switch {
	case key == "":
		return InvalidSecretError(v.domain, "empty")
	case key == placeholderSecret:
		return InvalidSecretError(v.domain, "a placeholder")
	case len(key) <= minSecretLength:
		return InvalidSecretError(v.domain, "too short")
	}
	return nil
}

// checkSecretsFile requires the secrets document on disk at validation
// time, regardless of what the snapshot holds in memory.
func (v *Validator) checkSecretsFile() error {
	if _, err := os.Stat(v.secretsPath); err != nil {
		return MissingFileError(v.secretsPath, err)
	}
	return nil
}

func (v *Validator) checkDomainMapping() error {
	cloud := v.cfg.DomainKeys("cloud_details")

	var missing []string
	for _, d := range v.cfg.DomainKeys("database_details") {
		if !slices.Contains(cloud, d) {
			missing = append(missing, d)
		}
	}
	if len(missing) > 0 {
		return DomainMappingMismatchError(missing)
	}
	return nil
}

func (v *Validator) checkDomainConfig() error {
	if slices.Contains(v.cfg.DomainKeys("database_details"), v.domain) {
		return nil
	}
	return UnknownDomainError(v.domain)
}

// domainSection locates the domain's sub-mapping under a top-level
// section. A missing domain key defers to domain_config and
// domain_mapping; a present key must hold a mapping.
func (v *Validator) domainSection(topKey string) (map[string]any, error) {
	path := topKey + "." + v.domain
	val, ok := v.cfg.Lookup(path)
	if !ok {
		return nil, nil
	}
	section, isMap := val.(map[string]any)
	if !isMap {
		return nil, TypeMismatchError(path, "mapping", config.TypeName(val))
	}
	return section, nil
}
