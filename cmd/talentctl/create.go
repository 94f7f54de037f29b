package main

import (
	"go-talent/internal/client"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		affiliation, _ := cmd.Flags().GetString("affiliation")
		post, _ := cmd.Flags().GetString("post")
		skills, _ := cmd.Flags().GetStringSlice("skill")

		req := &client.CreateEmployeeRequest{
			Name:        args[0],
			Affiliation: affiliation,
			Post:        post,
			Skills:      skills,
		}
		// Leave age out when not given so the server reports it as missing.
		if cmd.Flags().Changed("age") {
			age, _ := cmd.Flags().GetInt("age")
			req.Age = &age
		}

		emp, err := api.CreateEmployee(cmd.Context(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), emp)
		}
		printEmployeeCard(cmd.OutOrStdout(), *emp)
		return nil
	},
}

func init() {
	createCmd.Flags().Int("age", 0, "age (1-100)")
	createCmd.Flags().String("affiliation", "", "affiliation")
	createCmd.Flags().String("post", "", "post")
	createCmd.Flags().StringSlice("skill", nil, "skill (repeatable)")
}
