package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mdnotes/internal/notes"
)

var (
	listJSON   bool
	listSearch string
	listTags   []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		found := svc.List(cmd.Context(), notes.Query{Term: listSearch, Tags: listTags})

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(found)
		}

		for _, n := range found {
			title := n.Title
			if title == "" {
				title = "Untitled"
			}
			line := fmt.Sprintf("%s  %s", n.ID, title)
			if len(n.Tags) > 0 {
				line += "  [" + strings.Join(n.Tags, ", ") + "]"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only notes whose title, content or tags contain this text")
	listCmd.Flags().StringSliceVarP(&listTags, "tag", "t", nil, "Only notes carrying this tag (repeatable, all must match)")
}
