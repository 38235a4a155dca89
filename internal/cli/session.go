package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edumax/schoolapp/internal/domain/access"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the school service",
		RunE: func(cmd *cobra.Command, args []string) error {
			core.Sessions.Bootstrap(cmd.Context())

			var err error
			if email == "" {
				if email, err = prompt("Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = prompt("Senha: "); err != nil {
					return err
				}
			}

			sess, err := core.Sessions.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			printSession(cmd, sess)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted if omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			core.Sessions.Bootstrap(cmd.Context())
			if err := core.Sessions.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			printSession(cmd, core.Sessions.Bootstrap(cmd.Context()))
			return nil
		},
	}
}

// menuEntries mirrors the home screen: each entry renders only when the
// current role holds its capability.
var menuEntries = []struct {
	capability access.Capability
	label      string
}{
	{access.CapViewReport, "Relatório Acadêmico (schoolapp report)"},
	{access.CapCreateDiscipline, "Nova Matéria (schoolapp create-discipline)"},
	{access.CapCreateStudent, "Novo Estudante (schoolapp create-student)"},
	{access.CapCreateProfessor, "Novo Educador (schoolapp create-professor)"},
}

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the actions your role unlocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireSession(cmd)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Bem-vindo, %s\n\n", roleLabel(sess.Role))
			caps := core.Sessions.Capabilities()
			for _, entry := range menuEntries {
				if caps.Has(entry.capability) {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", entry.label)
				}
			}
			return nil
		},
	}
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
