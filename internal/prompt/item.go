package prompt

import "github.com/napmn/project-loader/internal/pathutil"

type item struct {
	candidate Candidate
	showPath  bool
}

func (i item) Title() string { return "📁 " + i.candidate.Name }

func (i item) Description() string {
	if !i.showPath {
		return ""
	}
	return pathutil.ShortenUser(i.candidate.Path)
}

func (i item) FilterValue() string { return i.candidate.Name }
