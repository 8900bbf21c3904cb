package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/clearlake-labs/storysync-cli/internal/config"
	jiraconnector "github.com/clearlake-labs/storysync-cli/internal/connectors/jira"
	"github.com/clearlake-labs/storysync-cli/internal/core/ports/driven"
	"github.com/clearlake-labs/storysync-cli/internal/core/services"
	jiranormaliser "github.com/clearlake-labs/storysync-cli/internal/normalisers/jira"
	"github.com/clearlake-labs/storysync-cli/internal/writers/jsonfile"
)

var (
	fetchProject    string
	fetchMaxResults int
	fetchOutputDir  string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch stories and write the JSON export",
	Long: `Fetches the stories of the configured project from the tracker,
normalises them and writes data/stories.json. Configuration comes from
environment variables (JIRA_BASE_URL, JIRA_EMAIL, JIRA_API_TOKEN,
JIRA_PROJECT) or a TOML config file; flags override both.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchProject, "project", "", "project key to fetch from")
	fetchCmd.Flags().IntVar(&fetchMaxResults, "max-results", 0, "maximum number of stories to fetch")
	fetchCmd.Flags().StringVar(&fetchOutputDir, "output-dir", "", "directory for the export file")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := jiraconnector.NewClient(ctx, cfg.BaseURL, jiraconnector.Credentials{
		Email:    cfg.Email,
		APIToken: cfg.APIToken,
	})
	normaliser := jiranormaliser.New(cfg.BaseURL)
	writer := jsonfile.New(cfg.OutputDir, cfg.Project, cfg.BaseURL, version)

	orchestrator := services.NewPipelineOrchestrator(
		client,
		normaliser,
		writer,
		&commandProgress{cmd: cmd},
		cfg.Project,
		cfg.MaxResults,
	)

	summary, err := orchestrator.Run(ctx)
	if err != nil {
		return err
	}

	printSummary(cmd, summary)
	return nil
}

// applyFlagOverrides layers set flags over the loaded configuration.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("project") {
		cfg.Project = fetchProject
	}
	if cmd.Flags().Changed("max-results") {
		cfg.MaxResults = fetchMaxResults
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = fetchOutputDir
	}
}

// printSummary emits the terminal report: totals, the per-status
// histogram in stable order, and a truncation warning when more stories
// matched than were fetched.
func printSummary(cmd *cobra.Command, summary *services.Summary) {
	cmd.Printf("Exported %d stories to %s\n", summary.TotalStories, summary.OutputPath)

	statuses := make([]string, 0, len(summary.ByStatus))
	for name := range summary.ByStatus {
		statuses = append(statuses, name)
	}
	sort.Strings(statuses)
	for _, name := range statuses {
		cmd.Printf("  %s: %d\n", name, summary.ByStatus[name])
	}

	if summary.Truncated {
		cmd.PrintErrln("Warning: more stories matched than were fetched; raise --max-results to get them all.")
	}
}

// Ensure commandProgress implements the interface.
var _ driven.ProgressReporter = (*commandProgress)(nil)

// commandProgress narrates pipeline checkpoints on the command's output.
type commandProgress struct {
	cmd *cobra.Command
}

func (p *commandProgress) FetchStarted(project string) {
	p.cmd.Printf("Fetching stories from project %s...\n", project)
}

func (p *commandProgress) FetchCompleted(fetched, total int) {
	p.cmd.Printf("Fetched %d of %d matching stories.\n", fetched, total)
}

func (p *commandProgress) NormaliseCompleted(count int) {
	p.cmd.Printf("Normalised %d stories.\n", count)
}

func (p *commandProgress) WriteCompleted(path string) {
	p.cmd.Printf("Wrote export to %s.\n", path)
}
