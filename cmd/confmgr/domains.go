package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

// getDomainsCmd returns the domains command.
func getDomainsCmd() *cobra.Command {
	domainsCmd := &cobra.Command{
		Use:   "domains",
		Short: "List configured domains and their section coverage",
		Long: `List every domain found under cloud_details, database_details and
cloud_secrets, with a mark per section. A domain that validates needs
coverage in all three sections.

Examples:
  confmgr domains
  confmgr domains --env production`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDomains()
		},
	}

	return domainsCmd
}

func runDomains() error {
	cfg := getConfig()

	cloud := cfg.DomainKeys("cloud_details")
	database := cfg.DomainKeys("database_details")
	secrets := cfg.DomainKeys("cloud_secrets")

	seen := make(map[string]struct{})
	for _, keys := range [][]string{cloud, database, secrets} {
		for _, d := range keys {
			seen[d] = struct{}{}
		}
	}
	if len(seen) == 0 {
		fmt.Printf("No domains configured for profile %q\n", cfg.Profile())
		return nil
	}

	fmt.Printf("%-24s %-6s %-9s %s\n", "DOMAIN", "CLOUD", "DATABASE", "SECRETS")
	for _, d := range slices.Sorted(maps.Keys(seen)) {
		fmt.Printf("%-24s %-6s %-9s %s\n", d,
			mark(slices.Contains(cloud, d)),
			mark(slices.Contains(database, d)),
			mark(slices.Contains(secrets, d)),
		)
	}
	return nil
}

func mark(present bool) string {
	if present {
		return "✓"
	}
	return "-"
}
