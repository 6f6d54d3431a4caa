// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template [path]",
	Short: "Write a structured README template the analyzer understands",
	Long: `Template writes a README skeleton whose section headings match the
analyzer's synonym table, so document metadata extraction picks up every
bucket: research focus, questions, technologies, keywords, goals,
methodology, datasets, and related papers.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplate,
}

func init() {
	templateCmd.Flags().String("name", "Your Project", "project name for the template title")

	rootCmd.AddCommand(templateCmd)
}

func runTemplate(cmd *cobra.Command, args []string) error {
	path := "RESEARCH_README.md"
	if len(args) > 0 {
		path = args[0]
	}
	name, _ := cmd.Flags().GetString("name")

	if err := os.WriteFile(path, []byte(readmeTemplate(name)), 0o644); err != nil {
		return fmt.Errorf("writing template: %w", err)
	}
	fmt.Fprintf(os.Stderr, "template written to %s\n", path)
	return nil
}

func readmeTemplate(name string) string {
	return `# ` + name + `

> Brief description of your research project

## Research Focus

List your main research areas (one per line):

- Machine Learning for Time Series Analysis
- Anomaly Detection in Industrial Systems
- Predictive Maintenance using Deep Learning

## Research Questions

Key questions you're trying to answer:

- How can we improve early detection of equipment failures?
- What features are most predictive of anomalies?
- Can transfer learning improve model performance with limited data?

## Technologies

Technologies and frameworks used:

- Python 3.13
- TensorFlow / PyTorch
- Pandas & NumPy
- Scikit-learn

## Keywords

Research keywords for paper discovery:

- partial discharge
- time series
- anomaly detection
- predictive maintenance
- deep learning
- transformer models

## Goals

Project objectives:

- Develop real-time anomaly detection system
- Achieve >95% accuracy in fault prediction
- Reduce false positives by 50%

## Methodology

Research approach:

- Data preprocessing and feature engineering
- Model comparison (Random Forest, LSTM, Transformer)
- Cross-validation and hyperparameter tuning
- Deployment with monitoring

## Datasets

Data sources being used:

- Internal sensor data (2020-2025)
- Public benchmark datasets
- Simulated fault scenarios

## Related Papers

Papers that influenced this work:

- "Benchmarking ML for Fault Detection" (2025)
- "Transformer Models for Time Series" (2024)
`
}
