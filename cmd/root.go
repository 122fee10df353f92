package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codetutor-ai/codetutor/code_analyzer"
	"github.com/codetutor-ai/codetutor/code_analyzer/contracts"
	"github.com/codetutor-ai/codetutor/config"
	"github.com/codetutor-ai/codetutor/constants/lipgloss"
)

// RootDependencies holds the wired-up collaborators every subcommand needs.
type RootDependencies struct {
	Config   *config.Config
	Analyzer contracts.ICodeAnalyzer
	Cwd      string
}

var rootCmd = &cobra.Command{
	Use:   "codetutor",
	Short: "Analyze a codebase and build its knowledge graph",
	Long: `codetutor ingests a codebase from a GitHub repository or a local directory,
extracts its structure (modules, classes, functions, imports), builds a
dependency graph and assembles a typed knowledge graph used to generate
personalized onboarding material.`,
	Run: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Println(config.DefaultConfig.Version)
			return
		}
		_ = cmd.Help()
	},
}

// handleRootCommand loads configuration and constructs the analyzer.
func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		return nil
	}

	cfg, err := config.LoadConfigs(cmd.Root(), cwd)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error loading configuration: %v", err)))
		return nil
	}

	analyzer := code_analyzer.NewCodeAnalyzer(code_analyzer.Options{
		GithubToken: cfg.GithubToken,
		EnableCache: cfg.EnableCache,
		CacheDir:    cfg.CacheDir,
	})

	return &RootDependencies{
		Config:   cfg,
		Analyzer: analyzer,
		Cwd:      cwd,
	}
}

// Execute runs the root command.
func Execute() {
	config.InitFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}
