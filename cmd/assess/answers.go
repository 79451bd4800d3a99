package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"security-maturity-assessor/internal/output"
)

func answersCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "answers",
		Short: "Import and export the answer set",
	}
	cmd.AddCommand(answersExportCmd(flags))
	cmd.AddCommand(answersImportCmd(flags))
	return cmd
}

func answersExportCmd(flags *rootFlags) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all answers to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, _, st, err := setup(flags)
			if err != nil {
				return err
			}
			defer st.Close()

			answers, err := st.Answers(cmd.Context())
			if err != nil {
				return err
			}

			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := output.ExportAnswersCSV(f, answers); err != nil {
				return err
			}
			fmt.Printf("Exported %d answers to %s\n", len(answers), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "file", "answers.csv", "Destination CSV file")
	return cmd
}

func answersImportCmd(flags *rootFlags) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import answers from a CSV file",
		Long: `Import answers from a CSV file in the export format. Rows referring to
question ids absent from the catalog are skipped with a warning; the file
is rejected as a whole when any row carries an invalid response value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, r, st, err := setup(flags)
			if err != nil {
				return err
			}
			defer st.Close()

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			answers, err := output.ImportAnswersCSV(f, time.Now().UTC())
			if err != nil {
				return err
			}

			imported, skipped := 0, 0
			for _, a := range answers {
				if _, ok := r.Snapshot().QuestionByID(a.QuestionID); !ok {
					logger.Warn("skipping unknown question", "questionId", a.QuestionID)
					skipped++
					continue
				}
				if err := st.PutAnswer(cmd.Context(), a); err != nil {
					return fmt.Errorf("import %s: %w", a.QuestionID, err)
				}
				imported++
			}
			fmt.Printf("Imported %d answers (%d skipped) from %s\n", imported, skipped, path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "file", "answers.csv", "Source CSV file")
	return cmd
}
