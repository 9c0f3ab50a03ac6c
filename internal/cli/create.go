package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pwa-tools/pwagen/internal/app"
	"github.com/pwa-tools/pwagen/internal/config"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create [project-name]",
	Short: "Scaffold a new PWA project",
	Long: `Scaffold a new Progressive Web App project in the current directory.

Configuration is collected interactively, or from a YAML answers file with
--answers for non-interactive use.

Examples:
  pwagen create
  pwagen create my-app
  pwagen create my-app --answers answers.yaml
  pwagen create my-app --answers answers.yaml --dry-run
  pwagen create my-app --answers answers.yaml --skip-install`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

// Create command flags
var (
	createAnswers        string
	createTemplates      string
	createForce          bool
	createDryRun         bool
	createSkipInstall    bool
	createStrictTokens   bool
	createPackageManager string
)

func init() {
	createCmd.Flags().StringVarP(&createAnswers, "answers", "a", "", "Path to a YAML answers file (skips interactive prompts)")
	createCmd.Flags().StringVar(&createTemplates, "templates", "", "Override the built-in templates with an on-disk directory")
	createCmd.Flags().BoolVarP(&createForce, "force", "f", false, "Overwrite an existing destination directory")
	createCmd.Flags().BoolVarP(&createDryRun, "dry-run", "d", false, "Show what would be generated without writing files")
	createCmd.Flags().BoolVar(&createSkipInstall, "skip-install", false, "Skip the dependency install step")
	createCmd.Flags().BoolVar(&createStrictTokens, "strict-tokens", false, "Fail on unknown template tokens (default: pass through)")
	createCmd.Flags().StringVar(&createPackageManager, "package-manager", "", "Package manager for the install step (npm, pnpm, yarn)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	initialName := ""
	if len(args) == 1 {
		initialName = args[0]
	}

	parentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	// Collect the configuration: answers file or interactive prompts.
	var cfg *config.Config
	if createAnswers != "" {
		cfg, err = config.LoadAnswers(createAnswers)
		if err != nil {
			printErrorMsg(fmt.Sprintf("Failed to load answers: %v", err))
			return err
		}
		if initialName != "" {
			cfg.ProjectName = initialName
		}
	} else {
		cfg, err = PromptForConfig(initialName, parentDir)
		if err != nil {
			return err
		}
	}

	if createDryRun {
		printInfo("[DRY RUN] Would generate project:")
	} else {
		printProgress(fmt.Sprintf("Scaffolding %s project %q...", cfg.Framework, cfg.ProjectName))
	}

	result, err := app.Create(cmd.Context(), app.CreateOptions{
		Config:         cfg,
		ParentDir:      parentDir,
		TemplatesDir:   createTemplates,
		Force:          createForce,
		StrictTokens:   createStrictTokens,
		DryRun:         createDryRun,
		SkipInstall:    createSkipInstall,
		PackageManager: createPackageManager,
	})
	if err != nil {
		printErrorMsg(fmt.Sprintf("Create failed: %v", err))
		return err
	}

	// Print results
	if createDryRun {
		for _, file := range result.Files {
			printInfo(fmt.Sprintf("  - %s", file))
		}
		printInfo("")
		printInfo("No files written (dry run).")
		return nil
	}

	printSuccess("Project generated successfully")
	printInfo("")
	printInfo("Summary:")
	printInfo(fmt.Sprintf("  Copied: %d files", result.FilesCopied))
	printInfo(fmt.Sprintf("  Processed: %d template files", result.FilesProcessed))
	if result.InstalledWith != "" {
		printInfo(fmt.Sprintf("  Installed dependencies with %s", result.InstalledWith))
	}

	for _, warning := range result.Warnings {
		printWarning(warning)
	}

	printInfo("")
	printInfo("Next steps:")
	printInfo(fmt.Sprintf("  cd %s", cfg.ProjectName))
	if result.InstalledWith == "" {
		printInfo("  npm install")
	}
	printInfo("  npm run dev")

	return nil
}
