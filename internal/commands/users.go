package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kasa-dev/kasa/internal/policy"
)

func newUsersCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List household members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			users := a.store.Users()
			if len(users) == 0 {
				fmt.Fprintln(out, "No household members on file.")
				return nil
			}

			current := a.currentUser()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tROLE\tCAN ASSIGN OWNER")
			for _, u := range users {
				marker := ""
				if u.ID == current.ID {
					marker = " (you)"
				}
				fmt.Fprintf(tw, "%s\t%s%s\t%s\t%t\n",
					u.ID, u.Name, marker, u.Role, policy.Can(u.Role, policy.CapAssignOwner))
			}
			tw.Flush()
			return nil
		},
	}
}
