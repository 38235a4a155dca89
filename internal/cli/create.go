package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edumax/schoolapp/internal/domain/access"
	"github.com/edumax/schoolapp/internal/domain/school"
)

func newCreateStudentCmd() *cobra.Command {
	var s school.Student

	cmd := &cobra.Command{
		Use:   "create-student",
		Short: "Register a new student",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCapability(cmd, access.CapCreateStudent); err != nil {
				return err
			}
			if err := core.Gateway.CreateStudent(cmd.Context(), s); err != nil {
				return fmt.Errorf("create student: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Estudante cadastrado.")
			return nil
		},
	}

	cmd.Flags().StringVar(&s.Name, "nome", "", "full name")
	cmd.Flags().StringVar(&s.Registration, "matricula", "", "registration number")
	cmd.Flags().StringVar(&s.Course, "curso", "", "course")
	return cmd
}

func newCreateProfessorCmd() *cobra.Command {
	var p school.Professor

	cmd := &cobra.Command{
		Use:   "create-professor",
		Short: "Register a new professor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCapability(cmd, access.CapCreateProfessor); err != nil {
				return err
			}
			if err := core.Gateway.CreateProfessor(cmd.Context(), p); err != nil {
				return fmt.Errorf("create professor: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Educador cadastrado.")
			return nil
		},
	}

	cmd.Flags().StringVar(&p.Name, "nome", "", "full name")
	cmd.Flags().StringVar(&p.Email, "email", "", "email address")
	cmd.Flags().StringVar(&p.Title, "titulacao", "", "academic title")
	return cmd
}

func newCreateDisciplineCmd() *cobra.Command {
	var d school.Discipline

	cmd := &cobra.Command{
		Use:   "create-discipline",
		Short: "Register a new discipline",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCapability(cmd, access.CapCreateDiscipline); err != nil {
				return err
			}
			if err := core.Gateway.CreateDiscipline(cmd.Context(), d); err != nil {
				return fmt.Errorf("create discipline: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Matéria cadastrada.")
			return nil
		},
	}

	cmd.Flags().StringVar(&d.Name, "nome", "", "discipline name")
	cmd.Flags().StringVar(&d.Code, "codigo", "", "discipline code")
	return cmd
}

func requireCapability(cmd *cobra.Command, c access.Capability) error {
	if _, err := requireSession(cmd); err != nil {
		return err
	}
	if !core.Sessions.Can(c) {
		return fmt.Errorf("your role does not allow this action")
	}
	return nil
}
