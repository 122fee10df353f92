package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
	"github.com/codetutor-ai/codetutor/constants/lipgloss"
	"github.com/codetutor-ai/codetutor/utils"
)

// analysisDocument is the JSON document written by --output: the analysis
// result plus the derived knowledge graph.
type analysisDocument struct {
	Analysis       *models.AnalysisResult `json:"analysis"`
	KnowledgeGraph *models.KnowledgeGraph `json:"knowledge_graph"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a codebase and print its structure summary",
	Long: `The 'analyze' subcommand walks a codebase from a GitHub repository or a
local directory, extracts modules, classes, functions and imports, builds the
dependency graph and the knowledge graph, and prints a structure summary.
Use --output to write the full analysis as JSON, or --markdown to render a
markdown report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd)
	},
}

func init() {
	analyzeCmd.Flags().String("repo", "", "GitHub repository URL to clone and analyze")
	analyzeCmd.Flags().String("path", "", "Local directory path to analyze")
	analyzeCmd.Flags().StringSlice("include", nil, "Glob patterns of files to include (default from config)")
	analyzeCmd.Flags().StringSlice("exclude", nil, "Glob patterns of files to exclude (default from config)")
	analyzeCmd.Flags().String("output", "", "Write the full analysis and knowledge graph as JSON to this file")
	analyzeCmd.Flags().Bool("markdown", false, "Render a markdown report to stdout")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command) error {
	rootDependencies := handleRootCommand(cmd)
	if rootDependencies == nil {
		return fmt.Errorf("failed to initialize")
	}

	// An interrupted analysis must still release its temporary clone
	// directory; cancellation propagates through the context.
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repoURL, _ := cmd.Flags().GetString("repo")
	localPath, _ := cmd.Flags().GetString("path")
	include, _ := cmd.Flags().GetStringSlice("include")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	outputPath, _ := cmd.Flags().GetString("output")
	markdown, _ := cmd.Flags().GetBool("markdown")

	if len(include) == 0 {
		include = rootDependencies.Config.IncludePatterns
	}
	if len(exclude) == 0 {
		exclude = rootDependencies.Config.ExcludePatterns
	}

	request := models.AnalysisRequest{
		RepoURL:     repoURL,
		LocalPath:   localPath,
		Include:     include,
		Exclude:     exclude,
		MaxFileSize: rootDependencies.Config.MaxFileSize,
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").WithDelay(100).WithRemoveWhenDone(true)
	spinnerAnalyze, _ := spinner.Start("Analyzing codebase...")

	result, err := rootDependencies.Analyzer.Analyze(ctx, request)

	spinnerAnalyze.Stop()
	fmt.Print("\r")

	if err != nil {
		return err
	}

	graph := rootDependencies.Analyzer.BuildKnowledgeGraph(result.Structure, result.Dependencies)

	fmt.Println(lipgloss.BoxStyle.Render(result.Summary))
	fmt.Println(lipgloss.Info.Render(fmt.Sprintf("Knowledge graph: %d nodes, %d edges", len(graph.Nodes), len(graph.Edges))))

	if markdown {
		report := utils.GenerateAnalysisMarkdown(result, graph)
		if err := utils.RenderAndPrintMarkdown(report, rootDependencies.Config.Theme); err != nil {
			return fmt.Errorf("failed to render markdown report: %w", err)
		}
	}

	if outputPath != "" {
		document := analysisDocument{Analysis: result, KnowledgeGraph: graph}
		data, err := json.MarshalIndent(document, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode analysis: %w", err)
		}
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write analysis: %w", err)
		}
		fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✓ Analysis written to %s", outputPath)))
	}

	return nil
}
