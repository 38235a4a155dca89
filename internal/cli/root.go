package cli

// Package cli is the view-layer seam: a thin cobra front over the session
// core. It renders state and requests transitions; it never mutates session
// state or the credential store directly.

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/edumax/schoolapp/internal/bootstrap"
	domainauth "github.com/edumax/schoolapp/internal/domain/auth"
)

var (
	logger *slog.Logger
	core   *bootstrap.Core
)

// NewRootCmd creates the root cobra command for the schoolapp CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "schoolapp",
		Short: "EduMax Pro — school-management client",
		Long:  "schoolapp manages the device session and talks to the school-management service.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}
			logger = bootstrap.InitLogger(cfg.SlogLevel())
			core, err = bootstrap.BuildCore(cfg, logger)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if core != nil {
				return core.Close()
			}
			return nil
		},
		SilenceUsage: true,
	}

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newMenuCmd(),
		newReportCmd(),
		newCreateStudentCmd(),
		newCreateProfessorCmd(),
		newCreateDisciplineCmd(),
	)

	return root
}

// requireSession resolves the bootstrap phase and fails unless a session is
// live. Commands that render role-gated data all pass through here, so
// nothing navigable exists before the store read resolves.
func requireSession(cmd *cobra.Command) (domainauth.Session, error) {
	sess := core.Sessions.Bootstrap(cmd.Context())
	if !sess.IsAuthenticated() {
		return sess, errors.New("not logged in (run 'schoolapp login')")
	}
	return sess, nil
}

func roleLabel(role domainauth.Role) string {
	switch role {
	case domainauth.RoleAdmin:
		return "Administrador"
	case domainauth.RoleProfessor:
		return "Professor"
	default:
		return "Estudante"
	}
}

func printSession(cmd *cobra.Command, sess domainauth.Session) {
	switch sess.State {
	case domainauth.StateAuthenticated:
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", roleLabel(sess.Role), sess.Role)
	case domainauth.StateAuthenticating:
		fmt.Fprintln(cmd.OutOrStdout(), "Session loading...")
	default:
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
	}
}
