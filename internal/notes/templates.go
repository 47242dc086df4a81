package notes

import (
	"strconv"
	"time"
)

// BlankTemplateName is the template whose notes start with an empty title.
const BlankTemplateName = "Blank Note"

const welcomeTitle = "Welcome to Markdown Notes"

// Templates returns the template catalog in display order.
func Templates() []NoteTemplate {
	return TemplatesAt(time.Now())
}

// TemplatesAt returns the catalog with date placeholders filled from now.
// The returned slice and its tag slices are fresh copies.
func TemplatesAt(now time.Time) []NoteTemplate {
	return []NoteTemplate{
		{
			ID:          "blank",
			Name:        BlankTemplateName,
			Description: "Start with an empty note",
			Content:     "",
			Tags:        []string{},
		},
		{
			ID:          "meeting",
			Name:        "Meeting Notes",
			Description: "Template for meeting notes",
			Content:     meetingTemplate,
			Tags:        []string{"meeting", "work"},
		},
		{
			ID:          "project",
			Name:        "Project Planning",
			Description: "Template for project planning",
			Content:     projectTemplate,
			Tags:        []string{"project", "planning"},
		},
		{
			ID:          "daily",
			Name:        "Daily Journal",
			Description: "Template for daily journaling",
			Content:     "# Daily Journal - " + now.Format("1/2/2006") + "\n" + dailyTemplate,
			Tags:        []string{"journal", "personal"},
		},
		{
			ID:          "research",
			Name:        "Research Notes",
			Description: "Template for research and study notes",
			Content:     researchTemplate,
			Tags:        []string{"research", "study"},
		},
		{
			ID:          "recipe",
			Name:        "Recipe",
			Description: "Template for cooking recipes",
			Content:     recipeTemplate,
			Tags:        []string{"recipe", "cooking"},
		},
	}
}

// TemplateByID looks up a template in the catalog built at now.
func TemplateByID(id string, now time.Time) (NoteTemplate, bool) {
	for _, t := range TemplatesAt(now) {
		if t.ID == id {
			return t, true
		}
	}
	return NoteTemplate{}, false
}

// DefaultNote builds the welcome note shown when there are no saved notes.
func DefaultNote(now time.Time) Note {
	ms := now.UnixMilli()
	return Note{
		ID:        strconv.FormatInt(ms, 10),
		Title:     welcomeTitle,
		Content:   welcomeContent,
		Tags:      []string{"welcome", "guide"},
		CreatedAt: ms,
		UpdatedAt: ms,
	}
}

const meetingTemplate = `# Meeting Notes - [Date]

## Attendees
- 
- 
- 

## Agenda
1. 
2. 
3. 

## Discussion Points
### Topic 1


### Topic 2


## Action Items
- [ ] 
- [ ] 
- [ ] 

## Next Steps


## Follow-up Date
`

const projectTemplate = `# Project: [Project Name]

## Overview


## Goals
- 
- 
- 

## Timeline
| Phase | Description | Deadline |
|-------|-------------|----------|
| 1     |             |          |
| 2     |             |          |
| 3     |             |          |

## Resources Needed
- 
- 
- 

## Risks & Mitigation
| Risk | Impact | Mitigation |
|------|--------|------------|
|      |        |            |

## Success Metrics
- 
- 
- 
`

const dailyTemplate = `
## Today's Goals
- [ ] 
- [ ] 
- [ ] 

## What Happened Today


## Wins & Accomplishments
- 
- 

## Challenges & Lessons
- 
- 

## Tomorrow's Priorities
1. 
2. 
3. 

## Gratitude
- 
- 
- 

## Mood: ⭐⭐⭐⭐⭐
`

const researchTemplate = `# Research: [Topic]

## Source
**Title:** 
**Author:** 
**Date:** 
**URL/Reference:** 

## Key Points
- 
- 
- 

## Detailed Notes


## Quotes & Citations
> 

## Questions & Follow-up
- 
- 

## Related Topics
- 
- 

## Summary


## Rating: ⭐⭐⭐⭐⭐
`

const recipeTemplate = `# [Recipe Name]

## Info
- **Prep Time:** 
- **Cook Time:** 
- **Total Time:** 
- **Servings:** 
- **Difficulty:** Easy/Medium/Hard

## Ingredients
- 
- 
- 

## Instructions
1. 
2. 
3. 

## Notes & Tips
- 
- 

## Variations
- 
- 

## Rating: ⭐⭐⭐⭐⭐
`

const welcomeContent = `# Welcome to Markdown Notes! 📝

This is your first note. You can edit this content and see the live preview on the right.

## New Features ✨

### 🏷️ Tags
- Add tags to organize your notes
- Filter notes by tags
- Visual tag indicators

### ⌨️ Keyboard Shortcuts
- **Ctrl/Cmd + N**: Create new note
- **Ctrl/Cmd + S**: Save note (auto-saves anyway!)
- **Ctrl/Cmd + F**: Focus search
- **Ctrl/Cmd + /**: Toggle sidebar
- **Ctrl/Cmd + D**: Toggle dark mode

### 🔍 Enhanced Search
- Search in titles, content, and tags
- Highlighted search results
- Real-time filtering

### 📋 Note Templates
- Pre-built templates for common note types
- Meeting notes, project planning, daily journal, and more
- Quick start with structured content

## Markdown Syntax

Here are some examples of what you can do:

### Text Formatting
- *Italic text*
- **Bold text**
- ~~Strikethrough~~
- ` + "`Inline code`" + `

### Lists
1. Numbered list item
2. Another item
   - Nested bullet point
   - Another nested item

### Code Blocks
` + "```javascript" + `
function hello() {
  console.log("Hello, World!");
}
` + "```" + `

### Blockquotes
> This is a blockquote. You can use it to highlight important information or quotes.

### Links
[Visit GitHub](https://github.com)

---

Start writing your own notes by creating a new note or editing this one!`
