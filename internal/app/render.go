package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/blackwell-systems/devfolio/internal/output"
	"github.com/blackwell-systems/devfolio/internal/scoring"
	"github.com/blackwell-systems/devfolio/internal/suggest"
)

func renderReport(w io.Writer, r *scoring.PortfolioScore, width int) {
	if width <= 0 {
		width = 80
	}

	title := fmt.Sprintf("Portfolio Report: %s", r.Login)
	fmt.Fprintln(w, output.Section(title, width-2))
	fmt.Fprintf(w, " %s %s  %s %s\n",
		output.StyleMuted.Render("profile"), string(r.ProfileType),
		output.StyleMuted.Render("as of"), r.AsOf.Format("2006-01-02"))
	fmt.Fprintln(w)

	overall := output.StyleBold.Render(fmt.Sprintf(" %-22s", "Overall"))
	fmt.Fprintf(w, "%s %s", overall, output.ScoreBar(r.Total, 30))
	if r.Legend {
		fmt.Fprintf(w, "  %s", output.StyleAccent.Render("legend"))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, output.Section("Dimensions", width-2))
	for _, d := range r.Dimensions {
		fmt.Fprintf(w, " %s %s  %s\n",
			output.StyleLabel.Render(d.Name),
			output.ScoreBar(d.Score, 20),
			output.StyleMuted.Render(fmt.Sprintf("weight %d%%", d.Weight)))
		fmt.Fprintln(w, output.Wrap(d.Feedback, width, 3))
	}

	if len(r.Strengths) > 0 {
		fmt.Fprintln(w, output.Section("Strengths", width-2))
		labels := make([]string, len(r.Strengths))
		for i, s := range r.Strengths {
			labels[i] = output.StyleAccent.Render(s)
		}
		fmt.Fprintln(w, output.Wrap(strings.Join(labels, ", "), width, 1))
	}

	fmt.Fprintln(w, output.Section("Representative Repositories", width-2))
	if len(r.Representative) == 0 {
		fmt.Fprintln(w, " No original repositories yet.")
	} else {
		tbl := output.NewTable("Name", "Language", "Stars", "Pinned")
		for _, repo := range r.Representative {
			pinned := ""
			if repo.Pinned {
				pinned = "yes"
			}
			lang := repo.Language
			if lang == "" {
				lang = "-"
			}
			tbl.AddRow(repo.Name, lang, strconv.Itoa(repo.Stars), pinned)
		}
		fmt.Fprint(w, indent(tbl.Render(), 1))
	}

	fmt.Fprintln(w, output.Section("Activity", width-2))
	a := r.Activity
	last := "never"
	if days, ok := a.DaysSinceLastCommit(r.AsOf); ok {
		last = fmt.Sprintf("%d days ago", days)
	}
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Last commit"), last)
	fmt.Fprintf(w, " %s %.1f\n", output.StyleLabel.Render("Commits per month"), a.CommitFrequency)
	fmt.Fprintf(w, " %s %d days (longest %d)\n", output.StyleLabel.Render("Current streak"), a.CurrentStreak, a.LongestStreak)

	renderSuggestions(w, r.Suggestions, width)
	fmt.Fprintln(w)
}

func renderSuggestions(w io.Writer, suggestions []suggest.Suggestion, width int) {
	if len(suggestions) == 0 {
		fmt.Fprintln(w, output.Section("Suggestions", width-2))
		fmt.Fprintln(w)
		fmt.Fprintln(w, " No suggestions. Your portfolio looks great!")
		return
	}

	fmt.Fprintln(w, output.Section("Top Suggestions", width-2))
	fmt.Fprintln(w)

	for i, s := range suggestions {
		label := priorityToLabel(s.Priority)
		fmt.Fprintf(w, " #%d %s %s\n", i+1, stylePriority(s.Priority, label), output.StyleBold.Render(s.Title))
		fmt.Fprintf(w, "    +%d pts  |  %s  |  %s  |  %s\n", s.Points, s.Category, s.Difficulty, s.TimeEstimate)
		fmt.Fprintln(w, output.Wrap(s.Description, width, 4))
		fmt.Fprintln(w)
	}
}

func priorityToLabel(p suggest.Priority) string {
	return "[" + strings.ToUpper(p.String()) + "]"
}

func stylePriority(p suggest.Priority, label string) string {
	switch p {
	case suggest.PriorityCritical, suggest.PriorityHigh:
		return output.StyleError.Render(label)
	case suggest.PriorityMedium:
		return output.StyleWarning.Render(label)
	default:
		return output.StyleMuted.Render(label)
	}
}

func indent(block string, n int) string {
	prefix := strings.Repeat(" ", n)
	lines := strings.SplitAfter(block, "\n")
	var sb strings.Builder
	for _, l := range lines {
		if l == "" {
			continue
		}
		sb.WriteString(prefix)
		sb.WriteString(l)
	}
	return sb.String()
}
