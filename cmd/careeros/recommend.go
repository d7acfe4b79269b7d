package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonsiu/career-os-sub001/internal/config"
	"github.com/jonsiu/career-os-sub001/internal/courses"
	"github.com/jonsiu/career-os-sub001/internal/coursesearch"
	"github.com/jonsiu/career-os-sub001/internal/recommend"
	"github.com/jonsiu/career-os-sub001/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend courses for an analysis' skill gaps",
	Long:  "Reads an analysis JSON file, searches the configured course providers for each gap, ranks the results, and writes the top recommendations with affiliate links as JSON.",
	RunE:  runRecommend,
}

var (
	recommendAnalysis string
	recommendConfig   string
	recommendOutput   string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendAnalysis, "analysis", "a", "", "Path to input analysis JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendConfig, "config", "c", "", "Path to config JSON with course providers")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output recommendations JSON file (required)")

	for _, flag := range []string{"analysis", "out"} {
		if err := recommendCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	// 1. Load the analysis
	analysisContent, err := os.ReadFile(recommendAnalysis)
	if err != nil {
		return fmt.Errorf("failed to read analysis file %s: %w", recommendAnalysis, err)
	}
	var analysis types.Analysis
	if err := json.Unmarshal(analysisContent, &analysis); err != nil {
		return fmt.Errorf("failed to unmarshal analysis JSON: %w", err)
	}

	// 2. Build providers from configuration
	cfg, err := config.Load(recommendConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	providers, err := coursesearch.NewAll(cfg.CourseProviders)
	if err != nil {
		return fmt.Errorf("failed to build course providers: %w", err)
	}
	if len(providers) == 0 {
		_, _ = fmt.Fprintln(os.Stderr, "Warning: no course providers configured; recommendations will be empty")
	}

	// 3. Fetch and rank courses per gap
	service := recommend.NewService(providers)
	recommendations, err := service.ForGaps(
		context.Background(),
		analysis.UserID.String(),
		analysis.ID.String(),
		analysis.AllGaps(),
	)
	if err != nil {
		return fmt.Errorf("course search failed: %w", err)
	}

	// 4. Write output JSON
	output := map[string]any{
		"analysis_id":     analysis.ID,
		"recommendations": recommendations,
		"disclosure":      courses.Disclosure(),
	}
	jsonOutput, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations to JSON: %w", err)
	}

	outputDir := filepath.Dir(recommendOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(recommendOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write recommendations to output file %s: %w", recommendOutput, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote recommendations for %d skill gaps to %s\n", len(recommendations), recommendOutput)
	return nil
}
