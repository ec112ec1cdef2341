package main

import (
	"fmt"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/samiksha22122/ConfigManager/pkg/validate"
	"github.com/spf13/cobra"
)

// getValidateCmd returns the validate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getValidateCmd() *cobra.Command {
	var allChecks bool

	validateCmd := &cobra.Command{
		Use:   "validate <domain>",
		Short: "Run the configuration checks for a domain",
		Long: `Run every configuration check for one deployment domain.

The checks run in a fixed order:
  1. required top-level keys
  2. model_type is a string
  3. database port is an integer
  4. cloud provider is a string
  5. feature flag is a boolean
  6. API key is a string
  7. API key is usable (set, not a placeholder, long enough)
  8. secrets file exists on disk
  9. database domains all have cloud counterparts
  10. the domain has a database entry

By default the first violation stops the run. With --all every check
runs and each violation is reported, which helps fixing a fresh
configuration in one pass.

Examples:
  confmgr validate sample_domain
  confmgr validate sample_domain --all
  confmgr validate sample_domain --env production`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0], allChecks)
		},
	}

	validateCmd.Flags().BoolVar(&allChecks, "all", false,
		"run every check and report all violations")

	return validateCmd
}

func runValidate(domain string, allChecks bool) error {
	start := time.Now()

	v, err := validate.New(getConfig(), domain,
		validate.OptLogger(getLogger()))
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if allChecks {
		return reportAll(v, start)
	}

	sum, err := v.Validate()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	printSummary(sum, time.Since(start))
	return nil
}

// reportAll runs every check and prints each outcome instead of
// stopping at the first violation.
func reportAll(v *validate.Validator, start time.Time) error {
	rep := v.Report()
	total := len(rep.Results)

	for i, res := range rep.Results {
		if res.Err != nil {
			gn.PrintErrorMessage(res.Err)
			continue
		}
		gn.Info("(%d/%d) %s", i+1, total, res.Confirm)
	}

	if !rep.OK() {
		failed := len(rep.Failures())
		gn.Warn("<warn>%d of %d checks failed</warn>", failed, total)
		return fmt.Errorf("%d of %d checks failed", failed, total)
	}

	printSummary(rep.Summary, time.Since(start))
	return nil
}

func printSummary(sum *validate.Summary, elapsed time.Duration) {
	gn.Info(`Configuration for <em>%s</em> is valid:
   Provider:        %s
   Model type:      %s
   Feature enabled: %t
   API key:         %s
   Profile:         %s
`,
		sum.Domain, sum.Provider, sum.ModelType,
		sum.FeatureEnabled, sum.APIKey, sum.Profile,
	)
	gn.Info("Validation took %s", gnfmt.TimeString(elapsed.Seconds()))
}
