package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stellar-cargo/internal/auth"
	"stellar-cargo/internal/fixtures"
	"stellar-cargo/internal/models"
)

func newLoginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as one of the station crew",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			gate := auth.NewGate(fixtures.Users(), cfg.DemoPassword, cfg.LoginDelay)
			user, err := gate.Verify(cmd.Context(), email, password)
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return errors.New("invalid email or password")
			}
			if err != nil {
				return err
			}
			if err := sessions().Save(cmd.Context(), auth.DefaultSessionKey, user); err != nil {
				return err
			}
			logger.Debug("session saved", zap.String("user", user.ID), zap.String("dir", sessionDir))
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Name, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Crew email (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sessions().Clear(cmd.Context(), auth.DefaultSessionKey); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := currentUser(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> role=%s\n", user.Name, user.Email, user.Role)
			return nil
		},
	}
}

func currentUser(cmd *cobra.Command) (models.User, error) {
	user, err := sessions().Load(cmd.Context(), auth.DefaultSessionKey)
	if errors.Is(err, auth.ErrNoSession) {
		return models.User{}, errors.New("not signed in; run stellarctl login")
	}
	return user, err
}
