package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-pipeline/internal/db"
	"github.com/jonathan/talent-pipeline/internal/publish"
	"github.com/jonathan/talent-pipeline/internal/resolve"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Resolve a variant's spec and publish it as the next JD version",
	RunE:  runPublish,
}

var (
	publishFamilyFile   string
	publishTemplateFile string
	publishCompanyFile  string
	publishVariantFile  string
	publishContentFile  string
	publishCreatedBy    string
	publishDatabaseURL  string
	publishOutputFile   string
)

func init() {
	publishCmd.Flags().StringVar(&publishFamilyFile, "family", "", "Path to job family JSON (required)")
	publishCmd.Flags().StringVar(&publishTemplateFile, "template", "", "Path to job template JSON (required)")
	publishCmd.Flags().StringVar(&publishCompanyFile, "company", "", "Path to company profile JSON (required)")
	publishCmd.Flags().StringVar(&publishVariantFile, "variant", "", "Path to company job variant JSON (required)")
	publishCmd.Flags().StringVar(&publishContentFile, "content", "", "Path to the published JD text (default: generated from the spec)")
	publishCmd.Flags().StringVar(&publishCreatedBy, "created-by", "", "Identity recorded on the version")
	publishCmd.Flags().StringVar(&publishDatabaseURL, "db-url", "", "Database URL (default: in-memory, printed only)")
	publishCmd.Flags().StringVarP(&publishOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = publishCmd.MarkFlagRequired("family")
	_ = publishCmd.MarkFlagRequired("template")
	_ = publishCmd.MarkFlagRequired("company")
	_ = publishCmd.MarkFlagRequired("variant")

	rootCmd.AddCommand(publishCmd)
}

func runPublish(_ *cobra.Command, _ []string) error {
	family, template, company, variant, err := loadCatalog(
		publishFamilyFile, publishTemplateFile, publishCompanyFile, publishVariantFile)
	if err != nil {
		return err
	}

	spec, err := resolve.Resolve(family, template, variant, company)
	if err != nil {
		return err
	}

	content := fmt.Sprintf("%s\n\n%s", spec.Title, spec.Description)
	if publishContentFile != "" {
		data, err := os.ReadFile(publishContentFile)
		if err != nil {
			return fmt.Errorf("failed to read content file: %w", err)
		}
		content = string(data)
	}

	ctx := context.Background()

	var store publish.VersionStore = publish.NewMemoryVersionStore()
	if publishDatabaseURL != "" {
		database, err := db.Connect(ctx, publishDatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		store = database
	}

	publisher := publish.NewPublisher(store, nil, nil)
	version, err := publisher.Publish(ctx, variant, spec, content, publishCreatedBy)
	if err != nil {
		return err
	}

	// Persist the activation flip when a database backs the run.
	if database, ok := store.(*db.DB); ok {
		if err := database.SaveVariant(ctx, variant); err != nil {
			return err
		}
	}

	return writeJSON(publishOutputFile, version)
}
