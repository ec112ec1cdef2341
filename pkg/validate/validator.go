// Package validate runs the invariant checks over a configuration
// snapshot for one deployment domain.
//
// The checks are an explicit ordered sequence (see Checks). Two drivers
// walk the sequence: Validate stops at the first violation and prints a
// user-facing confirmation per passed check, Report runs every check and
// aggregates the outcomes. Every violation is a *gn.Error with a code
// from pkg/errcode, so callers can react to the failure kind without
// string matching.
//
// The validator never mutates process-wide state. Log records go to the
// injected handle (OptLogger), or slog.Default when none is given.
package validate

import (
	"errors"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/samiksha22122/ConfigManager/pkg/config"
)

// Validator checks one configuration snapshot against one domain.
type Validator struct {
	cfg         *config.Config
	domain      string
	secretsPath string
	log         *slog.Logger
}

// Option modifies a Validator during construction.
type Option func(*Validator)

// OptLogger injects the logging handle for check and summary records.
func OptLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		v.log = l
	}
}

// OptSecretsPath overrides the secrets file location checked by the
// secrets_file step. The default comes from the snapshot's secrets
// source.
func OptSecretsPath(path string) Option {
	return func(v *Validator) {
		v.secretsPath = path
	}
}

// New creates a Validator for a domain. The domain names a sub-entry of
// cloud_details, database_details and cloud_secrets and cannot be empty.
func New(cfg *config.Config, domain string, opts ...Option) (*Validator, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if domain == "" {
		return nil, errors.New("domain is empty")
	}

	v := &Validator{
		cfg:    cfg,
		domain: domain,
		log:    slog.Default(),
	}
	if src, ok := cfg.Source("secrets"); ok {
		v.secretsPath = src.Path
	}

	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Domain returns the domain under validation.
func (v *Validator) Domain() string {
	return v.domain
}

// SecretsPath returns the secrets file location checked by the
// secrets_file step.
func (v *Validator) SecretsPath() string {
	return v.secretsPath
}

// Validate runs the checks in order and stops at the first violation.
// Each passed check prints a confirmation to the user console and logs a
// Debug record. On success it resolves the Summary and logs the summary
// line. The API key never appears in log records.
func (v *Validator) Validate() (*Summary, error) {
	checks := v.Checks()
	for i, c := range checks {
		if err := c.Run(); err != nil {
			v.log.Error("Check failed",
				"check", c.Name,
				"domain", v.domain,
			)
			return nil, err
		}
		gn.Info("(%d/%d) %s", i+1, len(checks), c.Confirm)
		v.log.Debug("Check passed", "check", c.Name)
	}

	sum := v.summary()
	v.logSummary(sum)
	return sum, nil
}

// Report runs every check regardless of failures and records each
// outcome. The Summary is resolved only when all checks pass. Report
// prints nothing; the caller decides how to render the outcomes.
func (v *Validator) Report() *Report {
	rep := &Report{}
	for _, c := range v.Checks() {
		err := c.Run()
		if err != nil {
			v.log.Debug("Check failed", "check", c.Name, "domain", v.domain)
		} else {
			v.log.Debug("Check passed", "check", c.Name)
		}
		rep.Results = append(rep.Results, Result{
			Check:   c.Name,
			Confirm: c.Confirm,
			Err:     err,
		})
	}

	if rep.OK() {
		rep.Summary = v.summary()
		v.logSummary(rep.Summary)
	}
	return rep
}

func (v *Validator) logSummary(s *Summary) {
	v.log.Info("Loaded configuration",
		"domain", s.Domain,
		"model_type", s.ModelType,
		"provider", s.Provider,
		"feature_enabled", s.FeatureEnabled,
		"profile", s.Profile,
		"fingerprint", s.Fingerprint,
	)
}
