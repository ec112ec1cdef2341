package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/samiksha22122/ConfigManager/pkg/config"
	"github.com/spf13/cobra"
)

// showView is the resolved configuration as displayed by 'confmgr show'.
// Values are raw merged values, not validated ones, so their fields are
// untyped and render as null in JSON when absent.
type showView struct {
	Profile        string       `json:"profile"`
	Fingerprint    string       `json:"fingerprint"`
	ModelType      any          `json:"model_type"`
	FeatureEnabled any          `json:"feature_enabled"`
	LogLevel       string       `json:"log_level"`
	LogFormat      string       `json:"log_format"`
	Domain         *domainView  `json:"domain,omitempty"`
	Sources        []sourceView `json:"sources"`
}

type domainView struct {
	Name     string `json:"name"`
	Provider any    `json:"provider"`
	Region   any    `json:"region"`
	Host     any    `json:"host"`
	Port     any    `json:"port"`
	APIKey   any    `json:"api_key"`
}

type sourceView struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
	Size   string `json:"size"`
}

// getShowCmd returns the show command.
func getShowCmd() *cobra.Command {
	var (
		domain string
		format string
	)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display the merged configuration without validating",
		Long: `Display the merged configuration view: active profile, top-level
settings and the layered documents with their sizes. No checks run, so
the output shows raw merged values even when they would not validate.

With --domain the view includes the domain's cloud, database and
secrets settings.

Examples:
  confmgr show
  confmgr show --domain sample_domain
  confmgr show --domain sample_domain --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(domain, format)
		},
	}

	showCmd.Flags().StringVarP(&domain, "domain", "d", "",
		"include domain-scoped settings")
	showCmd.Flags().StringVarP(&format, "format", "f", "text",
		"output format: text or json")

	return showCmd
}

func runShow(domain, format string) error {
	if format != "text" && format != "json" {
		err := fmt.Errorf("unknown format %q, use 'text' or 'json'", format)
		gn.PrintErrorMessage(err)
		return err
	}

	view := buildShowView(getConfig(), domain)

	if format == "json" {
		enc := gnfmt.GNjson{Pretty: true}
		out, err := enc.Encode(view)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	printShowView(view)
	return nil
}

func buildShowView(cfg *config.Config, domain string) *showView {
	lc := cfg.LogConfig()

	view := &showView{
		Profile:     cfg.Profile(),
		Fingerprint: cfg.Fingerprint().String(),
		LogLevel:    lc.Level,
		LogFormat:   lc.Format,
	}
	view.ModelType, _ = cfg.Lookup("model_type")
	view.FeatureEnabled, _ = cfg.Lookup("features.enable_feature_x")

	if domain != "" {
		dv := &domainView{Name: domain}
		dv.Provider, _ = cfg.Lookup("cloud_details." + domain + ".provider")
		dv.Region, _ = cfg.Lookup("cloud_details." + domain + ".region")
		dv.Host, _ = cfg.Lookup("database_details." + domain + ".host")
		dv.Port, _ = cfg.Lookup("database_details." + domain + ".port")
		dv.APIKey, _ = cfg.Lookup("cloud_secrets." + domain + ".api_key")
		view.Domain = dv
	}

	for _, src := range cfg.Sources() {
		sv := sourceView{
			Name:   src.Name,
			Path:   src.Path,
			Exists: src.Exists,
			Size:   "(absent)",
		}
		if src.Exists {
			sv.Size = humanize.Bytes(uint64(src.Size))
		}
		view.Sources = append(view.Sources, sv)
	}

	return view
}

func printShowView(view *showView) {
	fmt.Printf("Profile:         %s\n", view.Profile)
	fmt.Printf("Fingerprint:     %s\n", view.Fingerprint)
	fmt.Printf("Model type:      %s\n", displayValue(view.ModelType))
	fmt.Printf("Feature enabled: %s\n", displayValue(view.FeatureEnabled))
	fmt.Printf("Log level:       %s\n", view.LogLevel)
	fmt.Printf("Log format:      %s\n", view.LogFormat)

	if view.Domain != nil {
		fmt.Printf("\nDomain %s:\n", view.Domain.Name)
		fmt.Printf("  Provider: %s\n", displayValue(view.Domain.Provider))
		fmt.Printf("  Region:   %s\n", displayValue(view.Domain.Region))
		fmt.Printf("  Host:     %s\n", displayValue(view.Domain.Host))
		fmt.Printf("  Port:     %s\n", displayValue(view.Domain.Port))
		fmt.Printf("  API key:  %s\n", displayValue(view.Domain.APIKey))
	}

	if len(view.Sources) > 0 {
		fmt.Println("\nSources:")
		for _, src := range view.Sources {
			fmt.Printf("  %-8s %s  %s\n", src.Name, src.Path, src.Size)
		}
	}
}

// displayValue renders a raw merged value, "-" when absent.
func displayValue(v any) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%v", v)
}
