package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mdnotes/internal/notes"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with tools for note operations
func NewServer(svc *notes.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Markdown Notes",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Tool: list_notes - List notes, newest first
	s.AddTool(
		mcp.NewTool("list_notes",
			mcp.WithDescription("List all notes, newest first. Use this to get an overview of what is in the notebook."),
		),
		handleListNotes(svc),
	)

	// Tool: search_notes - Substring search with tag filter
	s.AddTool(
		mcp.NewTool("search_notes",
			mcp.WithDescription("Case-insensitive search over note titles, content and tags. Optionally restrict to notes carrying every given tag."),
			mcp.WithString("query",
				mcp.Description("Text to look for; empty matches every note"),
			),
			mcp.WithString("tags",
				mcp.Description("Optional: comma separated tags; a note must have all of them"),
			),
		),
		handleSearchNotes(svc),
	)

	// Tool: get_note - Get a specific note by ID
	s.AddTool(
		mcp.NewTool("get_note",
			mcp.WithDescription("Get a specific note by its ID. Use this when you have a note ID and need the full content."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The note ID"),
			),
		),
		handleGetNote(svc),
	)

	// Tool: create_note - Create a note, optionally from a template
	s.AddTool(
		mcp.NewTool("create_note",
			mcp.WithDescription("Create a new note and make it the active one. Title, content and tags are applied after creation."),
			mcp.WithString("template",
				mcp.Description("Optional: template ID from list_templates"),
			),
			mcp.WithString("title",
				mcp.Description("Optional: note title"),
			),
			mcp.WithString("content",
				mcp.Description("Optional: markdown content"),
			),
			mcp.WithString("tags",
				mcp.Description("Optional: comma separated tags"),
			),
		),
		handleCreateNote(svc),
	)

	// Tool: update_note - Change fields on a note
	s.AddTool(
		mcp.NewTool("update_note",
			mcp.WithDescription("Update a note's title, content or tags. Only the fields given are changed."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The note ID"),
			),
			mcp.WithString("title",
				mcp.Description("Optional: new title"),
			),
			mcp.WithString("content",
				mcp.Description("Optional: new markdown content"),
			),
			mcp.WithString("tags",
				mcp.Description("Optional: comma separated tags replacing the current ones"),
			),
		),
		handleUpdateNote(svc),
	)

	// Tool: delete_note - Remove a note
	s.AddTool(
		mcp.NewTool("delete_note",
			mcp.WithDescription("Delete a note by its ID."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The note ID"),
			),
		),
		handleDeleteNote(svc),
	)

	// Tool: list_tags - All tags in use
	s.AddTool(
		mcp.NewTool("list_tags",
			mcp.WithDescription("List every tag used by any note, sorted alphabetically."),
		),
		handleListTags(svc),
	)

	// Tool: list_templates - Note templates
	s.AddTool(
		mcp.NewTool("list_templates",
			mcp.WithDescription("List the templates new notes can be created from."),
		),
		handleListTemplates(svc),
	)

	return s
}

// NoteResult represents a note in tool responses
type NoteResult struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TemplateResult represents a template in tool responses
type TemplateResult struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func handleListNotes(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(notesToResults(svc.List(ctx, notes.Query{}))), nil
	}
}

func handleSearchNotes(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q := notes.Query{
			Term: req.GetString("query", ""),
			Tags: notes.SplitTags(req.GetString("tags", "")),
		}
		return jsonResult(notesToResults(svc.List(ctx, q))), nil
	}
}

func handleGetNote(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		note, err := svc.GetByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get note: %v", err)), nil
		}
		return jsonResult(noteToResult(note)), nil
	}
}

func handleCreateNote(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		note, err := svc.Create(ctx, notes.CreateNoteInput{TemplateID: req.GetString("template", "")})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to create note: %v", err)), nil
		}

		if u, ok := updateFromArgs(req); ok {
			note, err = svc.Update(ctx, note.ID, u)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to update note: %v", err)), nil
			}
		}
		return jsonResult(noteToResult(note)), nil
	}
}

func handleUpdateNote(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		u, ok := updateFromArgs(req)
		if !ok {
			return mcp.NewToolResultError("nothing to update: give title, content or tags"), nil
		}

		note, err := svc.Update(ctx, id, u)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to update note: %v", err)), nil
		}
		return jsonResult(noteToResult(note)), nil
	}
}

func handleDeleteNote(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		err = svc.Delete(ctx, id)
		if errors.Is(err, notes.ErrNoteNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("note %s not found", id)), nil
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to delete note: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("deleted note %s", id)), nil
	}
}

func handleListTags(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(svc.Tags(ctx)), nil
	}
}

func handleListTemplates(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		templates := svc.Templates()
		results := make([]TemplateResult, len(templates))
		for i, t := range templates {
			results[i] = TemplateResult{
				ID:          t.ID,
				Name:        t.Name,
				Description: t.Description,
				Tags:        t.Tags,
			}
		}
		return jsonResult(results), nil
	}
}

// Helper functions

// updateFromArgs builds a partial update from the arguments actually present.
func updateFromArgs(req mcp.CallToolRequest) (notes.NoteUpdate, bool) {
	args := req.GetArguments()
	var u notes.NoteUpdate
	found := false
	if v, ok := args["title"].(string); ok {
		u.Title = &v
		found = true
	}
	if v, ok := args["content"].(string); ok {
		u.Content = &v
		found = true
	}
	if v, ok := args["tags"].(string); ok {
		u.Tags = notes.SplitTags(v)
		found = true
	}
	return u, found
}

func jsonResult(v any) *mcp.CallToolResult {
	data, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(data))
}

func noteToResult(note notes.Note) NoteResult {
	return NoteResult{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      note.Tags,
		CreatedAt: time.UnixMilli(note.CreatedAt).UTC(),
		UpdatedAt: time.UnixMilli(note.UpdatedAt).UTC(),
	}
}

func notesToResults(noteList []notes.Note) []NoteResult {
	results := make([]NoteResult, len(noteList))
	for i, note := range noteList {
		results[i] = noteToResult(note)
	}
	return results
}
