// Package main provides the CLI entry point for nbstat-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mizuki3/nbstat-go/pkg/nbstat"
	"github.com/mizuki3/nbstat-go/pkg/nbstat/models"
	"github.com/mizuki3/nbstat-go/pkg/nbstat/output"
)

// defaultNotebook is the notebook read when no argument is given,
// matching the fixed path of the original authoring workflow.
const defaultNotebook = "CP-Math-Demosaic.ipynb"

var (
	outputPath string
	pretty     bool
	jsonOut    bool
	mode       string
	cellsDir   string
	xlsxPath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nbstat [notebook.ipynb]",
		Short: "Inspect Jupyter notebook files",
		Long: `nbstat-go parses a Jupyter notebook, validates its structure, and
reports on its cells. Without flags it prints the cell count only.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path for the JSON report")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "Print a JSON report instead of the cell count")
	rootCmd.Flags().StringVar(&mode, "mode", "standard", "Report mode: light, standard, verbose")
	rootCmd.Flags().StringVar(&cellsDir, "cells-dir", "", "Directory for per-cell output files")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Output file path for an Excel cell summary")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := defaultNotebook
	if len(args) == 1 {
		inputPath = args[0]
	}

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	// Parse mode
	var reportMode nbstat.Mode
	switch mode {
	case "light":
		reportMode = nbstat.ModeLight
	case "standard":
		reportMode = nbstat.ModeStandard
	case "verbose":
		reportMode = nbstat.ModeVerbose
	default:
		return fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", mode)
	}

	// Without report flags, count the cells and print the one-line summary.
	if !jsonOut && outputPath == "" && cellsDir == "" && xlsxPath == "" {
		n, err := nbstat.CountCells(inputPath)
		if err != nil {
			return err
		}
		fmt.Printf("Starting with %d cell(s)\n", n)
		return nil
	}

	opts := nbstat.Options{
		Mode: reportMode,
	}

	// Build report
	report, err := nbstat.Inspect(inputPath, opts)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	// Serialize to JSON
	jsonData, err := output.ToJSON(report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if jsonOut {
		fmt.Println(string(jsonData))
	}

	// Write per-cell files
	if cellsDir != "" {
		if err := writeCellFiles(report, cellsDir); err != nil {
			return fmt.Errorf("failed to write cell files: %w", err)
		}
	}

	// Write Excel summary
	if xlsxPath != "" {
		if err := output.WriteSummaryWorkbook(report, xlsxPath); err != nil {
			return fmt.Errorf("failed to write excel summary: %w", err)
		}
	}

	return nil
}

func writeCellFiles(report *models.NotebookReport, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, cell := range report.Cells {
		view := createCellView(report.NotebookName, cell)
		jsonData, err := output.CellToJSON(&view, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, fmt.Sprintf("cell_%04d.json", cell.Index+1))
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func createCellView(notebookName string, cell models.CellSummary) models.CellView {
	return models.CellView{
		NotebookName: notebookName,
		Cell:         cell,
	}
}
