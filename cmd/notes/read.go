package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mdnotes/internal/export"
	"mdnotes/internal/notes"
)

var showHTML bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := svc.GetByID(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("show %s: %w", args[0], err)
		}
		if showHTML {
			fmt.Print(svc.RenderMarkdown(n.Content))
			return nil
		}
		data, err := export.Markdown(n)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every tag in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range svc.Tags(cmd.Context()) {
			fmt.Println(t)
		}
		return nil
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List note templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range svc.Templates() {
			fmt.Printf("%-10s %-18s %s", t.ID, t.Name, t.Description)
			if len(t.Tags) > 0 {
				fmt.Printf(" [%s]", strings.Join(t.Tags, ", "))
			}
			fmt.Println()
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write every note to <dir> as markdown with frontmatter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := export.ToDir(args[0], svc.List(cmd.Context(), notes.Query{}))
		if err != nil {
			return err
		}
		fmt.Printf("exported %d notes to %s\n", count, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd, tagsCmd, templatesCmd, exportCmd)
	showCmd.Flags().BoolVar(&showHTML, "html", false, "Render the content to HTML")
}
