package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/edumax/schoolapp/internal/domain/access"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <student-id>",
		Short: "Show a student's academic report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireSession(cmd); err != nil {
				return err
			}
			if !core.Sessions.Can(access.CapViewReport) {
				return fmt.Errorf("your role does not allow viewing reports")
			}

			studentID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("student id must be a number: %q", args[0])
			}

			rows, err := core.Gateway.ReportFor(cmd.Context(), studentID)
			if err != nil {
				return fmt.Errorf("fetch report: %w", err)
			}

			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nenhum relatório encontrado.")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-30s  %6s  %6s  %6s\n", "DISCIPLINA", "NOTA1", "NOTA2", "MÉDIA")
			for _, row := range rows {
				fmt.Fprintf(out, "%-30s  %6.1f  %6.1f  %6.1f\n",
					row.DisciplineName, row.Grade1, row.Grade2, row.Average)
			}
			return nil
		},
	}
}
