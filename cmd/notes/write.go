package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mdnotes/internal/notes"
)

var (
	newTemplate string

	editTitle   string
	editContent string
	editTags    string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note, optionally from a template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := svc.Create(cmd.Context(), notes.CreateNoteInput{TemplateID: newTemplate})
		if err != nil {
			return err
		}
		fmt.Println(n.ID)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a note's title, content or tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var u notes.NoteUpdate
		if cmd.Flags().Changed("title") {
			u.Title = &editTitle
		}
		if cmd.Flags().Changed("content") {
			u.Content = &editContent
		}
		if cmd.Flags().Changed("tags") {
			u.Tags = notes.SplitTags(editTags)
		}
		if u.Title == nil && u.Content == nil && u.Tags == nil {
			return fmt.Errorf("nothing to change: use --title, --content or --tags")
		}

		if _, err := svc.Update(cmd.Context(), args[0], u); err != nil {
			return fmt.Errorf("edit %s: %w", args[0], err)
		}
		return nil
	},
}

var tagCmd = &cobra.Command{
	Use:   "tag <id> <tag>...",
	Short: "Add tags to a note",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, tag := range args[1:] {
			if _, err := svc.AddTag(cmd.Context(), args[0], tag); err != nil {
				return fmt.Errorf("tag %s: %w", args[0], err)
			}
		}
		return nil
	},
}

var untagCmd = &cobra.Command{
	Use:   "untag <id> <tag>...",
	Short: "Remove tags from a note",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, tag := range args[1:] {
			if _, err := svc.RemoveTag(cmd.Context(), args[0], tag); err != nil {
				return fmt.Errorf("untag %s: %w", args[0], err)
			}
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete %s: %w", args[0], err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd, editCmd, tagCmd, untagCmd, deleteCmd)
	newCmd.Flags().StringVar(&newTemplate, "template", "", "Template ID (see `notes templates`)")
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editContent, "content", "", "New markdown content")
	editCmd.Flags().StringVar(&editTags, "tags", "", "Comma separated tags replacing the current ones")
}
