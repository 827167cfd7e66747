// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package interactive implements the guided prompt-driven mode. A
// session asks the processing questions one at a time, offers the
// presets as numbered menus, and returns a confirmed plan that the CLI
// feeds to the same processor the add and batch commands use.
package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"

	"glassmark/internal/core"
	"glassmark/internal/paths"
	"glassmark/internal/presets"
)

// ErrAborted is returned when the user declines the confirmation prompt.
var ErrAborted = errors.New("aborted")

// Plan is the outcome of a completed session: what to process and how.
type Plan struct {
	Target  string
	IsDir   bool
	Options core.Options
}

// Session reads answers from one reader and writes prompts to one
// writer, so tests can script it.
type Session struct {
	reader         *bufio.Reader
	out            io.Writer
	table          *presets.Table
	assumeDefaults bool
	colors         map[string]*color.Color
}

// NewSession creates a session. With assumeDefaults every question is
// answered with its default and nothing is asked.
func NewSession(in io.Reader, out io.Writer, table *presets.Table, assumeDefaults bool) *Session {
	if table == nil {
		table = presets.Builtin()
	}
	return &Session{
		reader:         bufio.NewReader(in),
		out:            out,
		table:          table,
		assumeDefaults: assumeDefaults,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"prompt":   color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"warning":  color.New(color.FgYellow),
		},
	}
}

// StdinIsTerminal reports whether stdin is attached to a terminal.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Run walks through the questions and returns the confirmed plan. The
// target argument, when non-empty, answers the first question; defaults
// seeds the camera and quality answers from the configuration.
func (s *Session) Run(target string, defaults core.Options) (*Plan, error) {
	s.colors["title"].Fprintln(s.out, "Glassmark Interactive Mode")
	fmt.Fprintln(s.out, "==========================")
	fmt.Fprintln(s.out)

	resolved, err := s.askTarget(target)
	if err != nil {
		return nil, err
	}
	stat, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", resolved, err)
	}

	opts := defaults
	if opts.Camera, err = s.askChoice("Camera preset", presets.CameraNames(), fallback(opts.Camera, string(presets.CameraMain))); err != nil {
		return nil, err
	}
	if err := s.askLocation(&opts); err != nil {
		return nil, err
	}
	if opts.Date, err = s.ask("Capture timestamp YYYY:MM:DD HH:MM:SS (empty for now)", ""); err != nil {
		return nil, err
	}
	if opts.Comment, err = s.ask("Comment override (empty keeps the preset comment)", ""); err != nil {
		return nil, err
	}
	if opts.MuteAudio, err = s.askYesNo("Disable the audio track?", false); err != nil {
		return nil, err
	}
	if opts.Optimize, err = s.askYesNo("Transcode to the camera profile?", false); err != nil {
		return nil, err
	}
	if opts.Optimize {
		if opts.Quality, err = s.askChoice("Quality tier", presets.QualityNames(), fallback(opts.Quality, presets.QualityHigh)); err != nil {
			return nil, err
		}
		if opts.Stabilize, err = s.askYesNo("Apply video stabilization?", false); err != nil {
			return nil, err
		}
		if opts.Watermark, err = s.ask("Watermark text (empty for none)", ""); err != nil {
			return nil, err
		}
	}
	if opts.Verify, err = s.askYesNo("Verify the tags after writing?", false); err != nil {
		return nil, err
	}

	plan := &Plan{Target: resolved, IsDir: stat.IsDir(), Options: opts}
	s.summarize(plan)

	confirmed, err := s.askYesNo("Proceed?", true)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, ErrAborted
	}
	return plan, nil
}

// askTarget resolves the file or directory to process, re-asking until
// a non-empty answer arrives.
func (s *Session) askTarget(target string) (string, error) {
	if target != "" {
		return paths.ExpandHome(target), nil
	}
	if s.assumeDefaults {
		return "", errors.New("a target path is required with --yes-defaults")
	}
	for {
		answer, err := s.ask("Video file or directory to process", "")
		if err != nil {
			return "", err
		}
		if answer != "" {
			return paths.ExpandHome(answer), nil
		}
		s.colors["warning"].Fprintln(s.out, "A target path is required.")
	}
}

// askLocation offers the named locations plus a custom-coordinates
// entry. Choosing the camera default leaves the options untouched.
func (s *Session) askLocation(opts *core.Options) error {
	locations := s.table.Locations()
	menu := make([]string, 0, len(locations)+2)
	menu = append(menu, "camera default")
	for _, loc := range locations {
		menu = append(menu, loc.Key)
	}
	menu = append(menu, "custom coordinates")

	choice, err := s.askChoice("Location", menu, "camera default")
	if err != nil {
		return err
	}
	switch choice {
	case "camera default":
	case "custom coordinates":
		lat, err := s.ask("Latitude in decimal degrees", "")
		if err != nil {
			return err
		}
		lon, err := s.ask("Longitude in decimal degrees", "")
		if err != nil {
			return err
		}
		if lat == "" || lon == "" {
			s.colors["warning"].Fprintln(s.out, "Both latitude and longitude are needed; using the camera default location.")
			return nil
		}
		altitude, err := s.ask("Altitude in meters", "5")
		if err != nil {
			return err
		}
		opts.Latitude, opts.Longitude, opts.Altitude = lat, lon, altitude
	default:
		opts.Location = choice
	}
	return nil
}

// ask prints the question with its default and returns the trimmed
// answer, or the default on an empty line.
func (s *Session) ask(question, def string) (string, error) {
	if s.assumeDefaults {
		return def, nil
	}
	s.colors["prompt"].Fprintf(s.out, "%s", question)
	if def != "" {
		fmt.Fprintf(s.out, " [%s]", def)
	}
	fmt.Fprint(s.out, ": ")

	line, err := s.reader.ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return "", fmt.Errorf("input closed: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (s *Session) askYesNo(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	answer, err := s.ask(fmt.Sprintf("%s (%s)", question, hint), "")
	if err != nil {
		return def, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return def, nil
	}
}

// askChoice renders a numbered menu and accepts a number or a name.
// Unrecognized answers fall back to the default.
func (s *Session) askChoice(question string, options []string, def string) (string, error) {
	if s.assumeDefaults {
		return def, nil
	}
	s.colors["prompt"].Fprintf(s.out, "%s:\n", question)
	defIndex := 1
	for i, option := range options {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, option)
		if strings.EqualFold(option, def) {
			defIndex = i + 1
		}
	}
	answer, err := s.ask("Choice", strconv.Itoa(defIndex))
	if err != nil {
		return def, err
	}
	if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	for _, option := range options {
		if strings.EqualFold(option, answer) {
			return option, nil
		}
	}
	s.colors["warning"].Fprintf(s.out, "Unrecognized choice %q, using %s.\n", answer, def)
	return def, nil
}

// summarize prints the confirmation table.
func (s *Session) summarize(plan *Plan) {
	fmt.Fprintln(s.out)
	s.colors["emphasis"].Fprintln(s.out, "Summary:")
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	kind := "file"
	if plan.IsDir {
		kind = "directory"
	}
	fmt.Fprintf(w, "  Target\t%s (%s)\n", plan.Target, kind)
	fmt.Fprintf(w, "  Camera\t%s\n", plan.Options.Camera)
	fmt.Fprintf(w, "  Location\t%s\n", locationLabel(plan.Options))
	fmt.Fprintf(w, "  Timestamp\t%s\n", fallback(plan.Options.Date, "now"))
	fmt.Fprintf(w, "  Comment\t%s\n", fallback(plan.Options.Comment, "(preset)"))
	fmt.Fprintf(w, "  Audio\t%s\n", audioLabel(plan.Options.MuteAudio))
	fmt.Fprintf(w, "  Transcode\t%s\n", transcodeLabel(plan.Options))
	fmt.Fprintf(w, "  Verify\t%s\n", yesNo(plan.Options.Verify))
	w.Flush()
	fmt.Fprintln(s.out)
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func audioLabel(muted bool) string {
	if muted {
		return "muted"
	}
	return "kept"
}

func locationLabel(opts core.Options) string {
	switch {
	case opts.Latitude != "" && opts.Longitude != "":
		return fmt.Sprintf("%s, %s (altitude %sm)", opts.Latitude, opts.Longitude, opts.Altitude)
	case opts.Location != "":
		return opts.Location
	default:
		return "camera default"
	}
}

func transcodeLabel(opts core.Options) string {
	if !opts.Optimize {
		return "no"
	}
	label := fmt.Sprintf("yes (%s quality", opts.Quality)
	if opts.Stabilize {
		label += ", stabilized"
	}
	if opts.Watermark != "" {
		label += fmt.Sprintf(", watermark %q", opts.Watermark)
	}
	return label + ")"
}
