package validate

// Summary is the resolved view of a configuration that passed every
// check. The APIKey field is for diagnostic display only and is never
// written to logs.
type Summary struct {
	Domain         string
	Provider       string
	ModelType      string
	FeatureEnabled bool
	APIKey         string
	Profile        string
	Fingerprint    string
}

// summary resolves the display values for the domain. It runs after the
// checks passed, so the typed lookups cannot miss.
func (v *Validator) summary() *Summary {
	provider, _ := v.cfg.StringAt("cloud_details." + v.domain + ".provider")
	modelType, _ := v.cfg.StringAt("model_type")
	enabled, _ := v.cfg.BoolAt("features.enable_feature_x")
	apiKey, _ := v.cfg.StringAt("cloud_secrets." + v.domain + ".api_key")

	return &Summary{
		Domain:         v.domain,
		Provider:       provider,
		ModelType:      modelType,
		FeatureEnabled: enabled,
		APIKey:         apiKey,
		Profile:        v.cfg.Profile(),
		Fingerprint:    v.cfg.Fingerprint().String(),
	}
}
