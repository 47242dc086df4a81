package pages

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate -path ..

import "mdnotes/views/models"

const appName = "Markdown Notes"

func pageTitle(v models.HomeView) string {
	if v.Active != nil && v.Active.Title != "" {
		return v.Active.Title + " - " + appName
	}
	return appName
}

func isFiltered(v models.HomeView) bool {
	return v.Search != "" || len(v.SelectedTags) > 0
}
