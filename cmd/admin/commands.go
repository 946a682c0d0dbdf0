package main

import (
	"fmt"
	"strings"

	"agrifarma/internal/domain/entity"
	"agrifarma/internal/errors"
	"agrifarma/internal/infra/persistence/store"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every table, index and foreign key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.Migrate(a.env.db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")

			return nil
		},
	}
}

func newConsultantCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consultant",
		Short: "Manage consultant applications",
	}

	var email string
	approve := &cobra.Command{
		Use:   "approve",
		Short: "Approve a pending consultant application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.consultations.ApproveConsultant(cmd.Context(), email)
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Approved %s as a %s consultant.\n", user.Username, user.ConsultantCategory)

			return nil
		},
	}
	approve.Flags().StringVar(&email, "email", "", "email of the applicant")
	_ = approve.MarkFlagRequired("email")

	cmd.AddCommand(approve)

	return cmd
}

func newCategoryCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage product and post categories",
	}

	var (
		name         string
		description  string
		categoryType string
		parent       string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			category := &entity.Category{
				Name:        name,
				Description: strings.TrimSpace(description),
				Type:        entity.CategoryType(categoryType),
			}
			if parent != "" {
				parentID, err := uuid.Parse(parent)
				if err != nil {
					return errors.Wrap(err, "--parent must be a category id")
				}
				category.ParentID = &parentID
			}

			if err := a.catalog.AddCategory(cmd.Context(), category); err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s category %q (%s).\n", category.Type, category.Name, category.ID)

			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "category name")
	add.Flags().StringVar(&description, "description", "", "optional description")
	add.Flags().StringVar(&categoryType, "type", string(entity.CategoryTypeProduct), "product or post")
	add.Flags().StringVar(&parent, "parent", "", "optional parent category id")
	_ = add.MarkFlagRequired("name")

	cmd.AddCommand(add)

	return cmd
}

func newSessionsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Session housekeeping",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Delete expired sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := a.sessions.CleanupExpiredSessions(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Purged %d expired sessions.\n", removed)

			return nil
		},
	})

	return cmd
}

func newUserCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage member accounts",
	}

	var email string
	remove := &cobra.Command{
		Use:   "delete",
		Short: "Delete an account with its products, posts, cart, orders and sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.accounts.DeleteAccount(cmd.Context(), email); err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", email)

			return nil
		},
	}
	remove.Flags().StringVar(&email, "email", "", "email of the account")
	_ = remove.MarkFlagRequired("email")

	cmd.AddCommand(remove)

	return cmd
}
