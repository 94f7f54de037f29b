package main

import (
	"fmt"

	"go-talent/internal/domain"
	"go-talent/internal/sortview"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees, optionally filtered and sorted",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		affiliation, _ := cmd.Flags().GetString("affiliation")
		post, _ := cmd.Flags().GetString("post")
		skill, _ := cmd.Flags().GetString("skill")
		sortKey, _ := cmd.Flags().GetString("sort")
		order, _ := cmd.Flags().GetString("order")
		locale, _ := cmd.Flags().GetString("locale")
		view, _ := cmd.Flags().GetString("view")

		spec, err := parseSortSpec(sortKey, order, locale)
		if err != nil {
			return err
		}
		if view != viewList && view != viewCard {
			return fmt.Errorf("unknown view %q: want %s or %s", view, viewList, viewCard)
		}

		list, err := api.ListEmployees(cmd.Context(), domain.EmployeeFilter{
			Name:        name,
			Affiliation: affiliation,
			Post:        post,
			Skill:       skill,
		})
		if err != nil {
			return err
		}
		list = sortview.Apply(list, spec)

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, list)
		}
		if view == viewCard {
			printEmployeeCards(out, list)
		} else {
			printEmployeeTable(out, list)
		}
		return nil
	},
}

func parseSortSpec(key, order, locale string) (sortview.Spec, error) {
	k, err := sortview.ParseKey(key)
	if err != nil {
		return sortview.Spec{}, err
	}
	o, err := sortview.ParseOrder(order)
	if err != nil {
		return sortview.Spec{}, err
	}
	tag := language.Und
	if locale != "" {
		if tag, err = language.Parse(locale); err != nil {
			return sortview.Spec{}, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
	}
	return sortview.Spec{Key: k, Order: o, Locale: tag}, nil
}

func init() {
	listCmd.Flags().String("name", "", "filter by name substring (case-insensitive)")
	listCmd.Flags().String("affiliation", "", "filter by exact affiliation")
	listCmd.Flags().String("post", "", "filter by exact post")
	listCmd.Flags().String("skill", "", "filter by skill")
	listCmd.Flags().String("sort", "", "sort key: age, name, affiliation, post, skills or none")
	listCmd.Flags().String("order", "asc", "sort order: asc or desc")
	listCmd.Flags().String("locale", "", "BCP 47 tag used to collate names (e.g. ja, de)")
	listCmd.Flags().String("view", viewList, "layout: list or card")
}
