package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go-talent/internal/domain"
)

const (
	viewList = "list"
	viewCard = "card"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printEmployeeTable(w io.Writer, list []domain.Employee) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tAGE\tAFFILIATION\tPOST\tSKILLS")
	for _, e := range list {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			e.ID, e.Name, e.Age, e.Affiliation, e.Post, strings.Join(e.Skills, ", "))
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d employee(s)\n", len(list))
}

func printEmployeeCards(w io.Writer, list []domain.Employee) {
	for i, e := range list {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printEmployeeCard(w, e)
	}
	if len(list) == 0 {
		fmt.Fprintln(w, "No employees found.")
	}
}

func printEmployeeCard(w io.Writer, e domain.Employee) {
	fmt.Fprintf(w, "ID:          %s\n", e.ID)
	fmt.Fprintf(w, "Name:        %s\n", e.Name)
	fmt.Fprintf(w, "Age:         %d\n", e.Age)
	fmt.Fprintf(w, "Affiliation: %s\n", e.Affiliation)
	fmt.Fprintf(w, "Post:        %s\n", e.Post)
	if len(e.Skills) > 0 {
		fmt.Fprintf(w, "Skills:      %s\n", strings.Join(e.Skills, ", "))
	}
}
