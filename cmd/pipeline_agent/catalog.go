package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/talent-pipeline/internal/db"
	"github.com/jonathan/talent-pipeline/internal/resolve"
	"github.com/jonathan/talent-pipeline/internal/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Load catalog entities into the database",
	Long:  "Load a job family, template, company profile, and variant from JSON files into the database. Entities are validated and resolved together before anything is written, so a broken catalog never lands partially.",
	RunE:  runCatalog,
}

var (
	catalogFamilyFile   string
	catalogTemplateFile string
	catalogCompanyFile  string
	catalogVariantFile  string
	catalogDatabaseURL  string
)

func init() {
	catalogCmd.Flags().StringVar(&catalogFamilyFile, "family", "", "Path to job family JSON (required)")
	catalogCmd.Flags().StringVar(&catalogTemplateFile, "template", "", "Path to job template JSON (required)")
	catalogCmd.Flags().StringVar(&catalogCompanyFile, "company", "", "Path to company profile JSON (required)")
	catalogCmd.Flags().StringVar(&catalogVariantFile, "variant", "", "Path to company job variant JSON (required)")
	catalogCmd.Flags().StringVar(&catalogDatabaseURL, "db-url", "", "Database URL (required; falls back to DATABASE_URL)")
	_ = catalogCmd.MarkFlagRequired("family")
	_ = catalogCmd.MarkFlagRequired("template")
	_ = catalogCmd.MarkFlagRequired("company")
	_ = catalogCmd.MarkFlagRequired("variant")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(_ *cobra.Command, _ []string) error {
	family, template, company, variant, err := loadCatalog(
		catalogFamilyFile, catalogTemplateFile, catalogCompanyFile, catalogVariantFile)
	if err != nil {
		return err
	}
	fillCatalogIDs(family, template, company, variant)

	// Resolving proves the four entities are valid and consistent with
	// each other before any row is written.
	if _, err := resolve.Resolve(family, template, variant, company); err != nil {
		return err
	}

	databaseURL := catalogDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or use --db-url)")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.SaveJobFamily(ctx, family); err != nil {
		return err
	}
	if err := database.SaveJobTemplate(ctx, template); err != nil {
		return err
	}
	if err := database.SaveCompanyProfile(ctx, company); err != nil {
		return err
	}
	if err := database.SaveVariant(ctx, variant); err != nil {
		return err
	}

	fmt.Printf("Loaded catalog: family %s, template %s, company %s, variant %s\n",
		family.ID, template.ID, company.ID, variant.ID)
	return nil
}

// fillCatalogIDs assigns fresh IDs to entities that arrive without one and
// wires the cross-references so hand-written JSON files can omit UUIDs.
func fillCatalogIDs(family *types.JobFamily, template *types.JobTemplate, company *types.CompanyProfile, variant *types.CompanyJobVariant) {
	if family.ID == uuid.Nil {
		family.ID = uuid.New()
	}
	if template.ID == uuid.Nil {
		template.ID = uuid.New()
	}
	if template.JobFamilyID == uuid.Nil {
		template.JobFamilyID = family.ID
	}
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	if variant.ID == uuid.Nil {
		variant.ID = uuid.New()
	}
	if variant.JobTemplateID == uuid.Nil {
		variant.JobTemplateID = template.ID
	}
	if variant.CompanyProfileID == uuid.Nil {
		variant.CompanyProfileID = company.ID
	}
}
