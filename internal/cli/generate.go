package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/studyplanhq/studyplan-cli/internal/constants"
	"github.com/studyplanhq/studyplan-cli/internal/planner"
	"github.com/studyplanhq/studyplan-cli/internal/projection"
)

type GenerateCmd struct {
	Subject []string `short:"s" required:"" help:"Subject spec: 'Name=Chapter1,Chapter2[@YYYY-MM-DD]'. Repeatable."`
	Hours   int      `default:"6" help:"Daily study hours (1-24)."`
	Date    string   `help:"Print only the plan for this date (YYYY-MM-DD) instead of the full table."`
}

// Run builds a request through the same builder the TUI uses, submits it
// once, and prints the plan. With --date set, only that day is looked up.
func (c *GenerateCmd) Run(ctx *Context) error {
	if c.Hours < constants.MinDailyHours || c.Hours > constants.MaxDailyHours {
		return fmt.Errorf("hours must be %d-%d", constants.MinDailyHours, constants.MaxDailyHours)
	}

	builder := planner.NewBuilder()
	for i, spec := range c.Subject {
		subject, err := ParseSubjectSpec(spec)
		if err != nil {
			return err
		}
		idx := 0
		if i > 0 {
			idx = builder.AddSubject()
		}
		builder.SetName(idx, subject.Name)
		builder.SetExamDate(idx, subject.ExamDate)
		for j, chapter := range subject.Chapters {
			if j > 0 {
				builder.AddChapter(idx)
			}
			builder.SetChapter(idx, j, chapter)
		}
	}
	builder.SetDailyHours(c.Hours)

	req, err := builder.BuildRequest()
	if err != nil {
		return err
	}

	lifecycle := planner.NewLifecycle()
	lifecycle.Begin()
	resp, err := ctx.Client.GeneratePlan(context.Background(), req)
	lifecycle.Resolve(resp, err)

	switch lifecycle.Phase() {
	case planner.PhaseFailed:
		return errors.New(lifecycle.ErrMessage())
	case planner.PhaseEmpty:
		fmt.Println(constants.MsgPlanEmpty)
		return nil
	}

	plan := lifecycle.Plan()
	fmt.Printf("Total Days: %d | Total Hours: %.1f\n\n", plan.TotalDays, plan.TotalHours)

	if c.Date != "" {
		var calendar projection.Calendar
		calendar.Index(plan)
		dp, ok := calendar.Lookup(c.Date)
		if !ok {
			fmt.Printf("No study scheduled for %s.\n", c.Date)
			return nil
		}
		fmt.Printf("%s\n", dp.Date.Format("Monday, Jan 02, 2006"))
		for _, ch := range dp.Chapters {
			fmt.Printf("  %s: %s (%.1fh)\n", ch.Subject, ch.Name, ch.EstimatedHours)
		}
		fmt.Printf("  Total: %.1fh\n", dp.TotalHours)
		return nil
	}

	var table projection.Table
	fmt.Printf("%-14s %-18s %-28s %8s\n", "Date", "Subject", "Chapter", "Hours")
	for _, group := range table.Rows(plan) {
		label := group.Date.Format("Jan 02, 2006")
		for i, ch := range group.Chapters {
			dateCell := ""
			if i == 0 {
				dateCell = label
			}
			marker := " "
			if ch.Urgent() {
				marker = "!"
			}
			fmt.Printf("%-14s %-18s %-28s %7.1f%s\n", dateCell, ch.Subject, ch.Name, ch.EstimatedHours, marker)
		}
		fmt.Printf("%-14s Daily Total: %.1f hours\n\n", "", group.Subtotal)
	}
	return nil
}
