package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/talent-pipeline/internal/db"
	"github.com/jonathan/talent-pipeline/internal/errs"
	"github.com/jonathan/talent-pipeline/internal/observability"
	"github.com/jonathan/talent-pipeline/internal/resolve"
	"github.com/jonathan/talent-pipeline/internal/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Merge a job family, template, and company variant into a resolved job spec",
	Long:  "Merge a job family, template, and company variant into a resolved job spec. The catalog comes either from JSON files (--family/--template/--company/--variant) or from the database (--variant-id with a database URL).",
	RunE:  runResolve,
}

var (
	resolveFamilyFile   string
	resolveTemplateFile string
	resolveCompanyFile  string
	resolveVariantFile  string
	resolveVariantID    string
	resolveDatabaseURL  string
	resolveOutputFile   string
	resolveVerbose      bool
)

func init() {
	resolveCmd.Flags().StringVar(&resolveFamilyFile, "family", "", "Path to job family JSON")
	resolveCmd.Flags().StringVar(&resolveTemplateFile, "template", "", "Path to job template JSON")
	resolveCmd.Flags().StringVar(&resolveCompanyFile, "company", "", "Path to company profile JSON")
	resolveCmd.Flags().StringVar(&resolveVariantFile, "variant", "", "Path to company job variant JSON")
	resolveCmd.Flags().StringVar(&resolveVariantID, "variant-id", "", "Variant UUID to load from the database instead of files")
	resolveCmd.Flags().StringVar(&resolveDatabaseURL, "db-url", "", "Database URL (used with --variant-id; falls back to DATABASE_URL)")
	resolveCmd.Flags().StringVarP(&resolveOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	resolveCmd.Flags().BoolVarP(&resolveVerbose, "verbose", "v", false, "Print a summary of the resolved spec")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, _ []string) error {
	var (
		family   *types.JobFamily
		template *types.JobTemplate
		company  *types.CompanyProfile
		variant  *types.CompanyJobVariant
		err      error
	)

	switch {
	case resolveVariantID != "":
		family, template, company, variant, err = loadCatalogFromDB(resolveVariantID, resolveDatabaseURL)
	case resolveFamilyFile != "" && resolveTemplateFile != "" && resolveCompanyFile != "" && resolveVariantFile != "":
		family, template, company, variant, err = loadCatalog(
			resolveFamilyFile, resolveTemplateFile, resolveCompanyFile, resolveVariantFile)
	default:
		return cmd.Help()
	}
	if err != nil {
		return err
	}

	spec, err := resolve.Resolve(family, template, variant, company)
	if err != nil {
		return err
	}

	if resolveVerbose {
		observability.NewPrinter(os.Stderr).PrintResolvedSpec(spec)
	}
	return writeJSON(resolveOutputFile, spec)
}

// loadCatalogFromDB walks the variant's references to assemble the full
// catalog from the database.
func loadCatalogFromDB(variantID, databaseURL string) (*types.JobFamily, *types.JobTemplate, *types.CompanyProfile, *types.CompanyJobVariant, error) {
	id, err := uuid.Parse(variantID)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("invalid variant id: %w", err)
	}
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, nil, nil, nil, fmt.Errorf("database URL is required (set DATABASE_URL or use --db-url)")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	defer database.Close()

	variant, err := database.GetVariant(ctx, id)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if variant == nil {
		return nil, nil, nil, nil, errs.NotFound("variant %s", id)
	}
	template, err := database.GetJobTemplate(ctx, variant.JobTemplateID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if template == nil {
		return nil, nil, nil, nil, errs.NotFound("template %s", variant.JobTemplateID)
	}
	family, err := database.GetJobFamily(ctx, template.JobFamilyID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if family == nil {
		return nil, nil, nil, nil, errs.NotFound("family %s", template.JobFamilyID)
	}
	company, err := database.GetCompanyProfile(ctx, variant.CompanyProfileID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if company == nil {
		return nil, nil, nil, nil, errs.NotFound("company %s", variant.CompanyProfileID)
	}
	return family, template, company, variant, nil
}
