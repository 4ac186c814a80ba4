package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-pipeline/internal/config"
	"github.com/jonathan/talent-pipeline/internal/observability"
	"github.com/jonathan/talent-pipeline/internal/resolve"
	"github.com/jonathan/talent-pipeline/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a parsed resume against a resolved job spec",
	Long:  "Score a parsed resume against the spec resolved from a job family, template, and company variant, producing an explainable match breakdown.",
	RunE:  runScore,
}

var (
	scoreConfigFile    string
	scoreFamilyFile    string
	scoreTemplateFile  string
	scoreCompanyFile   string
	scoreVariantFile   string
	scoreCandidateFile string
	scoreOutputFile    string
	scoreVerbose       bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfigFile, "config", "c", "", "Path to config JSON with input paths and scoring overrides")
	scoreCmd.Flags().StringVar(&scoreFamilyFile, "family", "", "Path to job family JSON")
	scoreCmd.Flags().StringVar(&scoreTemplateFile, "template", "", "Path to job template JSON")
	scoreCmd.Flags().StringVar(&scoreCompanyFile, "company", "", "Path to company profile JSON")
	scoreCmd.Flags().StringVar(&scoreVariantFile, "variant", "", "Path to company job variant JSON")
	scoreCmd.Flags().StringVar(&scoreCandidateFile, "candidate", "", "Path to parsed resume JSON")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print the score breakdown")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Family:    scoreFamilyFile,
		Template:  scoreTemplateFile,
		Company:   scoreCompanyFile,
		Variant:   scoreVariantFile,
		Candidate: scoreCandidateFile,
		Verbose:   scoreVerbose,
	}
	if scoreConfigFile != "" {
		fileCfg, err := config.LoadConfig(scoreConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, path := range []string{cfg.Family, cfg.Template, cfg.Company, cfg.Variant, cfg.Candidate} {
		if path == "" {
			return cmd.Help()
		}
	}

	family, template, company, variant, err := loadCatalog(cfg.Family, cfg.Template, cfg.Company, cfg.Variant)
	if err != nil {
		return err
	}
	candidate, err := loadCandidate(cfg.Candidate)
	if err != nil {
		return err
	}

	spec, err := resolve.Resolve(family, template, variant, company)
	if err != nil {
		return err
	}

	engine, err := scoring.NewEngine(scoringConfig(cfg))
	if err != nil {
		return err
	}
	explanation := engine.Score(candidate, spec)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintResolvedSpec(spec)
		printer.PrintMatchExplanation(explanation)
	}
	return writeJSON(scoreOutputFile, explanation)
}

// scoringConfig applies config-file overrides on top of the engine
// defaults.
func scoringConfig(cfg config.Config) scoring.Config {
	out := scoring.DefaultConfig()
	if cfg.MustWeight > 0 {
		out.MustWeight = cfg.MustWeight
	}
	if cfg.ShouldWeight > 0 {
		out.ShouldWeight = cfg.ShouldWeight
	}
	if cfg.NiceWeight > 0 {
		out.NiceWeight = cfg.NiceWeight
	}
	if cfg.GateThreshold > 0 {
		out.GateThreshold = cfg.GateThreshold
	}
	if cfg.GateCap > 0 {
		out.GateCap = cfg.GateCap
	}
	return out
}
