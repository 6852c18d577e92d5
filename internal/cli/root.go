package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/studyplanhq/studyplan-cli/internal/api"
	"github.com/studyplanhq/studyplan-cli/internal/models"
)

// Context carries the shared dependencies into kong commands.
type Context struct {
	Client *api.Client
}

// ParseSubjectSpec parses one --subject flag of the form
// "Name=Chapter1,Chapter2[@YYYY-MM-DD]" into a subject. The exam date part
// is optional.
func ParseSubjectSpec(spec string) (models.Subject, error) {
	var subject models.Subject

	name, rest, ok := strings.Cut(spec, "=")
	if !ok {
		return subject, fmt.Errorf("invalid subject %q: expected Name=Chapter1,Chapter2[@YYYY-MM-DD]", spec)
	}
	subject.Name = strings.TrimSpace(name)

	chapterPart := rest
	if chapters, datePart, hasDate := cutLast(rest, "@"); hasDate {
		date, err := time.Parse(models.DateFormat, strings.TrimSpace(datePart))
		if err != nil {
			return subject, fmt.Errorf("invalid exam date in %q: use YYYY-MM-DD", spec)
		}
		subject.ExamDate = &date
		chapterPart = chapters
	}

	for _, c := range strings.Split(chapterPart, ",") {
		subject.Chapters = append(subject.Chapters, strings.TrimSpace(c))
	}
	return subject, nil
}

// cutLast is strings.Cut on the last occurrence of sep.
func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
