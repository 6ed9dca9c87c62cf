package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Xenn-00/signatur-portal/internal/entity"
	"github.com/Xenn-00/signatur-portal/internal/utils"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const minPasswordLength = 8

func newCreateAdminCmd(deps Deps) *cobra.Command {
	var (
		userID   string
		password string
		role     string
		orgID    string
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Legt ein Admin-Konto an",
		Example: `  adminctl create-admin --userid root --password 'geheim123' --role super_admin
  adminctl create-admin --userid kanzlei-admin --password 'geheim123' --role admin --org-id org-42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := buildAdmin(userID, password, role, orgID)
			if err != nil {
				return err
			}

			repo, closeFn, err := deps.AdminStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			id, appErr := repo.CreateAdmin(cmd.Context(), model)
			if appErr != nil {
				if appErr.Code == 409 {
					return fmt.Errorf("userid %q ist bereits vergeben", userID)
				}
				return appErr
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Admin %s angelegt (id=%s, rolle=%s)\n", model.UserID, id, model.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "userid", "", "Login-Kennung (3-50 Zeichen)")
	cmd.Flags().StringVar(&password, "password", "", "Passwort (mindestens 8 Zeichen)")
	cmd.Flags().StringVar(&role, "role", string(entity.ADMIN), "super_admin oder admin")
	cmd.Flags().StringVar(&orgID, "org-id", "", "Organisation, Pflicht für admin")
	_ = cmd.MarkFlagRequired("userid")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// buildAdmin prüft die Eingaben wie der Login und hasht das Passwort.
func buildAdmin(userID, password, role, orgID string) (entity.AdminEntity, error) {
	userID = strings.TrimSpace(userID)
	if len(userID) < 3 || len(userID) > 50 {
		return entity.AdminEntity{}, errors.New("userid muss 3 bis 50 Zeichen lang sein")
	}
	if len(password) < minPasswordLength {
		return entity.AdminEntity{}, fmt.Errorf("passwort muss mindestens %d Zeichen lang sein", minPasswordLength)
	}

	r := entity.AdminRole(role)
	if !r.IsValid() {
		return entity.AdminEntity{}, fmt.Errorf("unbekannte rolle %q", role)
	}

	var org *string
	switch {
	case r == entity.ADMIN && orgID == "":
		return entity.AdminEntity{}, errors.New("--org-id ist für die rolle admin Pflicht")
	case orgID != "":
		org = &orgID
	}

	hash, err := utils.GenerateHash(password)
	if err != nil {
		return entity.AdminEntity{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return entity.AdminEntity{}, err
	}

	return entity.AdminEntity{
		ID:           id.String(),
		UserID:       userID,
		PasswordHash: hash,
		Role:         r,
		OrgID:        org,
		IsActive:     true,
	}, nil
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <passwort>",
		Short: "Gibt den argon2id-Hash eines Passworts aus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args[0]) < minPasswordLength {
				return fmt.Errorf("passwort muss mindestens %d Zeichen lang sein", minPasswordLength)
			}
			hash, err := utils.GenerateHash(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
