package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/apigraveyard/apigraveyard/internal/audit"
	"github.com/apigraveyard/apigraveyard/internal/store"
	"github.com/apigraveyard/apigraveyard/internal/types"
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

var (
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	expiredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	limitedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

func statusText(s *types.Status, noColor bool) string {
	if s == nil {
		return "UNTESTED"
	}
	if noColor {
		return string(*s)
	}
	switch *s {
	case types.StatusValid:
		return validStyle.Render(string(*s))
	case types.StatusInvalid:
		return invalidStyle.Render(string(*s))
	case types.StatusExpired:
		return expiredStyle.Render(string(*s))
	case types.StatusRateLimited:
		return limitedStyle.Render(string(*s))
	default:
		return errorStyle.Render(string(*s))
	}
}

// PrintMatches renders scan output: one row per discovered key, masked.
func PrintMatches(w io.Writer, keys []types.KeyMatch, opts PrintOptions) {
	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].FilePath == keys[j].FilePath {
			return keys[i].Line < keys[j].Line
		}
		return keys[i].FilePath < keys[j].FilePath
	})

	if len(keys) == 0 {
		fmt.Fprintln(w, "No API keys found ✅")
	} else {
		t := tablewriter.NewWriter(w)
		t.Header("SERVICE", "KEY", "LOCATION")
		for _, k := range keys {
			t.Append([]string{
				string(k.Service),
				k.MaskedValue,
				fmt.Sprintf("%s:%d:%d", k.FilePath, k.Line, k.Column),
			})
		}
		t.Render()
	}

	if opts.Duration > 0 || opts.FilesScanned > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Keys found: %d\n", len(keys))
		if opts.FilesScanned > 0 {
			fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
		}
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
		}
	}
}

// PrintStoredKeys renders a project's keys with their last known status.
func PrintStoredKeys(w io.Writer, keys []types.StoredKey, opts PrintOptions) {
	if len(keys) == 0 {
		fmt.Fprintln(w, "No keys stored for this project")
		return
	}
	t := tablewriter.NewWriter(w)
	t.Header("SERVICE", "KEY", "STATUS", "LAST TESTED", "LOCATION")
	for _, k := range keys {
		tested := "never"
		if k.LastTested != nil {
			tested = k.LastTested.Local().Format("2006-01-02 15:04")
		}
		t.Append([]string{
			string(k.Service),
			k.Key,
			statusText(k.Status, opts.NoColor),
			tested,
			fmt.Sprintf("%s:%d", k.FilePath, k.LineNumber),
		})
	}
	t.Render()
}

// PrintProjects renders the project index.
func PrintProjects(w io.Writer, projects []types.Project, opts PrintOptions) {
	if len(projects) == 0 {
		fmt.Fprintln(w, "No projects scanned yet")
		return
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].ScannedAt.After(projects[j].ScannedAt)
	})
	t := tablewriter.NewWriter(w)
	t.Header("NAME", "PATH", "KEYS", "SCANNED")
	for _, p := range projects {
		t.Append([]string{
			p.Name,
			p.Path,
			fmt.Sprintf("%d", len(p.Keys)),
			p.ScannedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	t.Render()
}

// PrintStats renders the aggregate database summary.
func PrintStats(w io.Writer, st store.Stats, opts PrintOptions) {
	title := "Graveyard stats"
	if !opts.NoColor {
		title = titleStyle.Render(title)
	}
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "Projects: %d\n", st.TotalProjects)
	fmt.Fprintf(w, "Keys: %d (valid: %d, invalid: %d, untested: %d)\n",
		st.TotalKeys, st.ValidKeys, st.InvalidKeys, st.UntestedKeys)
	fmt.Fprintf(w, "Banned keys: %d\n", st.BannedKeys)
	if len(st.Services) == 0 {
		return
	}

	services := make([]types.Service, 0, len(st.Services))
	for svc := range st.Services {
		services = append(services, svc)
	}
	sort.Slice(services, func(i, j int) bool { return services[i] < services[j] })

	fmt.Fprintln(w)
	t := tablewriter.NewWriter(w)
	t.Header("SERVICE", "KEYS")
	for _, svc := range services {
		t.Append([]string{string(svc), fmt.Sprintf("%d", st.Services[svc])})
	}
	t.Render()
}

// PrintResults renders validation output per key.
func PrintResults(w io.Writer, results []types.KeyResult, opts PrintOptions) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No keys to test")
		return
	}
	t := tablewriter.NewWriter(w)
	t.Header("SERVICE", "KEY", "STATUS", "DETAIL")
	for _, r := range results {
		status := r.Status
		detail := r.Error
		if detail == "" {
			detail = resultDetail(r.Details)
		}
		t.Append([]string{
			string(r.Service),
			r.MaskedValue,
			statusText(&status, opts.NoColor),
			detail,
		})
	}
	t.Render()

	counts := map[types.Status]int{}
	for _, r := range results {
		counts[r.Status]++
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Tested: %d (valid: %d, invalid: %d, expired: %d, rate limited: %d, errors: %d)\n",
		len(results), counts[types.StatusValid], counts[types.StatusInvalid],
		counts[types.StatusExpired], counts[types.StatusRateLimited], counts[types.StatusError])
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Test duration: %.2fs\n", opts.Duration.Seconds())
	}
}

// PrintHistory renders past scan and test runs, newest first.
func PrintHistory(w io.Writer, records []audit.Record, opts PrintOptions) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No runs recorded yet")
		return
	}
	t := tablewriter.NewWriter(w)
	t.Header("WHEN", "EVENT", "PATH", "KEYS", "DURATION")
	for _, r := range records {
		keys := r.KeysFound
		if r.Event == audit.EventTest {
			keys = r.KeysTested
		}
		t.Append([]string{
			r.Timestamp.Local().Format("2006-01-02 15:04"),
			r.Event,
			r.Path,
			fmt.Sprintf("%d", keys),
			r.Duration,
		})
	}
	t.Render()
}

func resultDetail(details map[string]any) string {
	for _, k := range []string{"username", "mode", "models", "note", "detail"} {
		if v, ok := details[k]; ok {
			return fmt.Sprintf("%v", v)
		}
	}
	return ""
}
