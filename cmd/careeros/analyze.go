package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonsiu/career-os-sub001/internal/gap"
	"github.com/jonsiu/career-os-sub001/internal/schemas"
	"github.com/jonsiu/career-os-sub001/internal/taxonomy"
	"github.com/jonsiu/career-os-sub001/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze skill gaps against a target role",
	Long:  "Compares a learner-skills JSON file against a target role's taxonomy requirements, prioritizes the gaps, and writes a full analysis (gaps, timelines, roadmap) as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeLearnerSkills string
	analyzeTaxonomyPath  string
	analyzeRoleID        string
	analyzeHistory       string
	analyzeWeeklyHours   float64
	analyzeOutput        string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeLearnerSkills, "learner-skills", "l", "", "Path to learner skills JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeTaxonomyPath, "taxonomy", "t", "", "Path to role-skills taxonomy snapshot JSON (required)")
	analyzeCmd.Flags().StringVarP(&analyzeRoleID, "role", "r", "", "Target role identifier in the taxonomy (required)")
	analyzeCmd.Flags().StringVar(&analyzeHistory, "history", "", "Path to skill-history JSON file for learning-velocity calculation")
	analyzeCmd.Flags().Float64Var(&analyzeWeeklyHours, "hours", 10, "Weekly learning availability in hours")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output analysis JSON file (required)")

	for _, flag := range []string{"learner-skills", "taxonomy", "role", "out"} {
		if err := analyzeCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	// 1. Load learner skills, validating against the schema when available
	learnerContent, err := os.ReadFile(analyzeLearnerSkills)
	if err != nil {
		return fmt.Errorf("failed to read learner skills file %s: %w", analyzeLearnerSkills, err)
	}
	if schemaPath := schemas.ResolveSchemaPath("schemas/learner_skills.schema.json"); schemaPath != "" {
		if err := schemas.ValidateFile(schemaPath, analyzeLearnerSkills); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: learner skills failed schema validation: %v\n", err)
		}
	}

	var learnerSkills []types.LearnerSkill
	if err := json.Unmarshal(learnerContent, &learnerSkills); err != nil {
		return fmt.Errorf("failed to unmarshal learner skills JSON: %w", err)
	}

	// 2. Resolve the target role in the taxonomy snapshot
	provider, err := taxonomy.NewFileProvider(analyzeTaxonomyPath)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}
	roleSkills, err := provider.RoleSkills(context.Background(), analyzeRoleID)
	if err != nil {
		return fmt.Errorf("failed to resolve role %q: %w", analyzeRoleID, err)
	}

	// 3. Derive learning velocity from history, if provided
	velocity := gap.DefaultLearningVelocity
	if analyzeHistory != "" {
		historyContent, err := os.ReadFile(analyzeHistory)
		if err != nil {
			return fmt.Errorf("failed to read history file %s: %w", analyzeHistory, err)
		}
		var history []types.SkillRecord
		if err := json.Unmarshal(historyContent, &history); err != nil {
			return fmt.Errorf("failed to unmarshal history JSON: %w", err)
		}
		velocity = gap.CalculateLearningVelocity(history)
	}

	// 4. Run the analysis chain
	plan, err := gap.BuildPlan(learnerSkills, roleSkills, analyzeWeeklyHours, velocity)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	plan.RoleID = analyzeRoleID

	// 5. Write output JSON
	jsonOutput, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis to JSON: %w", err)
	}

	outputDir := filepath.Dir(analyzeOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(analyzeOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write analysis to output file %s: %w", analyzeOutput, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote analysis for role %q to %s\n", analyzeRoleID, analyzeOutput)
	return nil
}
