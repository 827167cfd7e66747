// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// FlagInfo describes one command-line flag for the help tables.
type FlagInfo struct {
	Name        string // Flag name including dashes (e.g., "--camera")
	Arg         string // Placeholder for the flag's argument, empty for booleans
	Description string // One-line description
}

// CommandInfo contains standardized information about a command
type CommandInfo struct {
	Name     string     // Name of the command (e.g., "add")
	Synopsis string     // Usage line shown in detailed help
	Short    string     // Short description for the command list
	Long     string     // Detailed description of what the command does
	Flags    []FlagInfo // Command-specific flags
	Examples []string   // Usage examples
}

// System manages help content for the application
type System struct {
	commands map[string]CommandInfo
	order    []string
	colors   map[string]*color.Color
}

// GlobalFlags lists the flags accepted by every command.
var GlobalFlags = []FlagInfo{
	{"--config", "<path>", "Path to configuration file (YAML)"},
	{"--profile", "<name>", "Profile name to use from config file"},
	{"--no-color", "", "Disable colored output"},
	{"--verbose", "", "Display per-operation timing information"},
	{"--debug", "", "Enable debug logging of every step and tool invocation"},
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	// Disable colors if requested or when stdout is not a terminal
	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	h := &System{
		commands: make(map[string]CommandInfo),
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"subtitle": color.New(color.FgCyan, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"positive": color.New(color.FgGreen),
			"negative": color.New(color.FgRed),
			"warning":  color.New(color.FgYellow),
			"example":  color.New(color.FgMagenta),
		},
	}
	for _, info := range builtinCommands() {
		h.Register(info)
	}
	return h
}

// Register adds a command topic to the system
func (h *System) Register(info CommandInfo) {
	key := strings.ToLower(info.Name)
	if _, exists := h.commands[key]; !exists {
		h.order = append(h.order, key)
	}
	h.commands[key] = info
}

// CommandNames returns all registered command names in display order.
func (h *System) CommandNames() []string {
	names := make([]string, len(h.order))
	copy(names, h.order)
	return names
}

// ShowMainHelp displays general help information
func (h *System) ShowMainHelp() {
	h.colors["title"].Println("Glassmark - Ray-Ban Stories Video Metadata Stamper")
	fmt.Println("==================================================")
	fmt.Println()
	fmt.Println("Stamps videos with the metadata a pair of Ray-Ban Stories smart")
	fmt.Println("glasses would record, and optionally transcodes them to match the")
	fmt.Println("camera's output profile. Requires exiftool; ffmpeg is needed for")
	fmt.Println("transcode, merge, thumbnail, frames, and audio operations.")
	fmt.Println()

	h.colors["header"].Println("USAGE:")
	fmt.Println("  glassmark <command> [arguments] [options]")
	fmt.Println()

	h.colors["header"].Println("COMMANDS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range h.order {
		info := h.commands[name]
		fmt.Fprintf(w, "  ")
		h.colors["emphasis"].Fprintf(w, "%s", info.Name)
		fmt.Fprintf(w, "\t%s\n", info.Short)
	}
	w.Flush()
	fmt.Println()

	h.colors["header"].Println("GLOBAL OPTIONS:")
	h.printFlagTable(GlobalFlags)
	fmt.Println()

	h.colors["header"].Println("EXAMPLES:")
	fmt.Println("  Basic Usage:")
	h.colors["example"].Println("    glassmark add vacation.mp4")
	h.colors["example"].Println("    glassmark add vacation.mp4 --camera front --location beach --optimize")
	fmt.Println("  Batch Processing:")
	h.colors["example"].Println("    glassmark batch ./clips --verify")
	h.colors["example"].Println("    glassmark batch ./clips --mute --format json")
	fmt.Println("  Verification and Inspection:")
	h.colors["example"].Println("    glassmark verify vacation_rayban.mp4")
	h.colors["example"].Println("    glassmark analyze vacation_rayban.mp4 --format yaml")
	fmt.Println()

	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Default config: ~/.config/glassmark/config.yaml")
	fmt.Println("  Project config: glassmark.yaml or .glassmark.yaml (in current directory)")
	fmt.Println("  Environment: GLASSMARK_CONFIG - explicit config file path")
	fmt.Println("               GLASSMARK_CONFIG_DIR - override config directory")
	fmt.Println("               GLASSMARK_EXIFTOOL, GLASSMARK_FFMPEG, GLASSMARK_FFPROBE - tool paths")
	fmt.Println()
	fmt.Println("For detailed information about a specific command, use:")
	h.colors["example"].Println("  glassmark help <command>")
}

// ShowCommandHelp displays detailed help for a specific command
func (h *System) ShowCommandHelp(name string) bool {
	info, exists := h.commands[strings.ToLower(name)]
	if !exists {
		h.colors["negative"].Printf("Error: Command '%s' not found.\n", name)
		fmt.Println("Use 'glassmark help' to see a list of available commands.")
		return false
	}

	h.colors["title"].Printf("glassmark %s\n", info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)+10))
	fmt.Println()
	fmt.Println(info.Long)
	fmt.Println()

	h.colors["header"].Println("USAGE:")
	fmt.Printf("  %s\n", info.Synopsis)
	fmt.Println()

	if len(info.Flags) > 0 {
		h.colors["header"].Println("OPTIONS:")
		h.printFlagTable(info.Flags)
		fmt.Println()
	}

	h.colors["header"].Println("GLOBAL OPTIONS:")
	h.printFlagTable(GlobalFlags)

	if len(info.Examples) > 0 {
		fmt.Println()
		h.colors["header"].Println("EXAMPLES:")
		for _, example := range info.Examples {
			fmt.Print("  ")
			h.colors["example"].Println(example)
		}
	}
	return true
}

// ShowExamples displays an annotated example walkthrough
func (h *System) ShowExamples() {
	h.colors["title"].Println("Glassmark Examples")
	fmt.Println("==================")
	fmt.Println()

	sections := []struct {
		header   string
		examples []string
	}{
		{"Stamping:", []string{
			"glassmark add vacation.mp4",
			"glassmark add vacation.mp4 --camera front",
			"glassmark add vacation.mp4 --location beach --date \"2024:07:04 18:30:00\"",
			"glassmark add vacation.mp4 --lat 40.7580 --lon -73.9855 --altitude 10",
			"glassmark stamp existing.mp4 --comment \"Captured on Ray-Ban Stories\"",
		}},
		{"Transcoding:", []string{
			"glassmark add vacation.mp4 --optimize --quality maximum",
			"glassmark add vacation.mp4 --optimize --stabilize --watermark \"@myhandle\"",
			"glassmark optimize raw.mov --camera front --fps 30",
		}},
		{"Batch and Verification:", []string{
			"glassmark batch ./clips --optimize --verify",
			"glassmark verify vacation_rayban.mp4",
			"glassmark analyze vacation_rayban.mp4 --format json",
		}},
		{"Editing:", []string{
			"glassmark merge part1.mp4 part2.mp4 --output trip.mp4",
			"glassmark thumbnail vacation.mp4 --time 2.5",
			"glassmark frames vacation.mp4 --interval 10",
			"glassmark audio vacation.mp4 --replace soundtrack.m4a",
		}},
	}
	for _, section := range sections {
		h.colors["header"].Println(section.header)
		for _, example := range section.examples {
			fmt.Print("  ")
			h.colors["example"].Println(example)
		}
		fmt.Println()
	}
}

// printFlagTable renders flags as an aligned three-column table.
func (h *System) printFlagTable(flags []FlagInfo) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, flag := range flags {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", flag.Name, flag.Arg, flag.Description)
	}
	w.Flush()
}

// SuggestCommand returns registered commands sharing a prefix with the
// attempted name, for unknown-command errors.
func (h *System) SuggestCommand(attempted string) []string {
	var matches []string
	lowered := strings.ToLower(attempted)
	for name := range h.commands {
		if strings.HasPrefix(name, lowered) || strings.HasPrefix(lowered, name) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}
