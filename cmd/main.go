// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"glassmark"
	"glassmark/internal/config"
	"glassmark/internal/core"
	"glassmark/internal/ffmpeg"
	"glassmark/internal/help"
	"glassmark/internal/interactive"
	"glassmark/internal/observability"
	"glassmark/internal/paths"
	"glassmark/internal/presets"
	"glassmark/internal/version"

	"glassmark/internal/formatters"
	_ "glassmark/internal/formatters/json"
	_ "glassmark/internal/formatters/text"
	_ "glassmark/internal/formatters/yaml"
)

func main() {
	// Optional .env for tool paths and config overrides; a missing file
	// is not an error.
	godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		help.NewSystem(false).ShowMainHelp()
		return 2
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "add":
		return runAdd(ctx, rest)
	case "batch":
		return runBatch(ctx, rest)
	case "verify":
		return runVerify(ctx, rest)
	case "stamp":
		return runStamp(ctx, rest)
	case "optimize":
		return runOptimize(ctx, rest)
	case "analyze":
		return runAnalyze(ctx, rest)
	case "info":
		return runInfo(ctx, rest)
	case "merge":
		return runMerge(ctx, rest)
	case "thumbnail":
		return runThumbnail(ctx, rest)
	case "frames":
		return runFrames(ctx, rest)
	case "audio":
		return runAudio(ctx, rest)
	case "presets":
		return runPresets(rest)
	case "check-exiftool":
		return runCheckExiftool(rest)
	case "check-ffmpeg":
		return runCheckFFmpeg(rest)
	case "interactive":
		return runInteractive(ctx, rest)
	case "version", "--version", "-v":
		fmt.Println(version.Info())
		return 0
	case "help", "--help", "-h":
		return runHelp(rest)
	default:
		fmt.Fprintf(os.Stderr, "Error: Unknown command '%s'\n", command)
		if matches := help.NewSystem(true).SuggestCommand(command); len(matches) > 0 {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", strings.Join(matches, ", "))
		}
		fmt.Fprintln(os.Stderr, "Run 'glassmark help' for usage.")
		return 2
	}
}

// globalFlags holds the flags every command accepts.
type globalFlags struct {
	configFile string
	profile    string
	noColor    bool
	verbose    bool
	debug      bool
}

func registerGlobalFlags(fs *flag.FlagSet, g *globalFlags) {
	fs.StringVar(&g.configFile, "config", "", "Path to configuration file (YAML)")
	fs.StringVar(&g.profile, "profile", "", "Profile name to use from config file")
	fs.BoolVar(&g.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&g.verbose, "verbose", false, "Display per-operation timing information")
	fs.BoolVar(&g.debug, "debug", false, "Enable debug logging of every step and tool invocation")
}

// metadataFlags holds the stamping flags shared by add, batch, and stamp.
type metadataFlags struct {
	camera   string
	location string
	lat      string
	lon      string
	altitude string
	date     string
	comment  string
	mute     bool
}

func registerMetadataFlags(fs *flag.FlagSet, m *metadataFlags) {
	fs.StringVar(&m.camera, "camera", "", "Camera preset: main or front")
	fs.StringVar(&m.location, "location", "", "Named location preset for GPS coordinates")
	fs.StringVar(&m.lat, "lat", "", "Explicit GPS latitude (used only together with --lon)")
	fs.StringVar(&m.lon, "lon", "", "Explicit GPS longitude (used only together with --lat)")
	fs.StringVar(&m.altitude, "altitude", "", "GPS altitude for explicit coordinates (default 5)")
	fs.StringVar(&m.date, "date", "", "Capture timestamp written verbatim (YYYY:MM:DD HH:MM:SS)")
	fs.StringVar(&m.comment, "comment", "", "Replace the camera preset's default comment")
	fs.BoolVar(&m.mute, "mute", false, "Record the audio as disabled")
}

// transcodeFlags holds the encoding flags shared by add, batch, and optimize.
type transcodeFlags struct {
	quality   string
	width     int
	height    int
	fps       int
	bitrate   string
	stabilize bool
	watermark string
}

func registerTranscodeFlags(fs *flag.FlagSet, t *transcodeFlags) {
	fs.StringVar(&t.quality, "quality", "", "Transcode quality: low, medium, high, maximum")
	fs.IntVar(&t.width, "width", 0, "Override the camera profile's output width")
	fs.IntVar(&t.height, "height", 0, "Override the camera profile's output height")
	fs.IntVar(&t.fps, "fps", 0, "Override the camera profile's frame rate")
	fs.StringVar(&t.bitrate, "bitrate", "", "Override the camera profile's video bitrate (e.g. 18M)")
	fs.BoolVar(&t.stabilize, "stabilize", false, "Apply two-pass video stabilization")
	fs.StringVar(&t.watermark, "watermark", "", "Burn a corner watermark into the output")
}

// settings are the effective cross-command values after applying config
// defaults, the active profile, and explicit flags.
type settings struct {
	noColor bool
	verbose bool
	debug   bool
	format  string
}

// newFlagSet creates a command FlagSet whose usage output points at the
// help command instead of dumping every flag.
func newFlagSet(name string, g *globalFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Run 'glassmark help %s' for usage.\n", name)
	}
	registerGlobalFlags(fs, g)
	return fs
}

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	configPath := config.FindConfigFile(configFile)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		return config.DefaultConfig()
	}
	return cfg
}

// setup loads the config, applies the profile, and resolves the shared
// settings. A non-zero exit code means a usage error was reported.
func setup(fs *flag.FlagSet, g *globalFlags, format string) (*config.Config, config.Profile, settings, int) {
	cfg := loadConfiguration(g.configFile)

	var prof config.Profile
	if g.profile != "" {
		applied, err := config.ApplyProfile(cfg, g.profile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil, prof, settings{}, 2
		}
		prof = *applied
	}

	s := resolveSettings(fs, cfg, g, format)
	if _, ok := formatters.Get(s.format); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (available formats: %s)\n", s.format, strings.Join(formatters.List(), ", "))
		return nil, prof, settings{}, 2
	}
	return cfg, prof, s, 0
}

// resolveSettings applies the precedence config defaults < profile <
// explicitly set flags. Profile selector fields were already overlaid
// onto the config defaults by ApplyProfile.
func resolveSettings(fs *flag.FlagSet, cfg *config.Config, g *globalFlags, format string) settings {
	s := settings{
		noColor: cfg.Defaults.NoColor,
		verbose: cfg.Defaults.Verbose,
		debug:   cfg.Defaults.Debug,
		format:  cfg.Defaults.Format,
	}
	if flagSetHas(fs, "no-color") {
		s.noColor = g.noColor
	}
	if flagSetHas(fs, "verbose") {
		s.verbose = g.verbose
	}
	if flagSetHas(fs, "debug") {
		s.debug = g.debug
	}
	if flagSetHas(fs, "format") && format != "" {
		s.format = format
	}

	// Auto-detect non-interactive environment
	if !isTerminal(os.Stdout) || os.Getenv("CI") != "" || os.Getenv("NO_COLOR") != "" {
		s.noColor = true
	}
	color.NoColor = s.noColor
	return s
}

// buildOptions merges the metadata and transcode flags with the profile
// into processing options. Explicitly set flags always win.
func buildOptions(fs *flag.FlagSet, cfg *config.Config, prof config.Profile, meta *metadataFlags, enc *transcodeFlags) core.Options {
	opts := core.Options{
		Camera:       stringSetting(fs, "camera", meta.camera, "", cfg.Defaults.Camera),
		Location:     stringSetting(fs, "location", meta.location, prof.Location, ""),
		Latitude:     meta.lat,
		Longitude:    meta.lon,
		Altitude:     meta.altitude,
		Date:         meta.date,
		Comment:      stringSetting(fs, "comment", meta.comment, prof.Comment, ""),
		MuteAudio:    boolSetting(fs, "mute", meta.mute, prof.Mute, false),
		Quality:      stringSetting(fs, "quality", enc.quality, "", cfg.Defaults.Quality),
		Width:        enc.width,
		Height:       enc.height,
		FrameRate:    enc.fps,
		VideoBitrate: enc.bitrate,
		Stabilize:    boolSetting(fs, "stabilize", enc.stabilize, prof.Stabilize, false),
		Watermark:    stringSetting(fs, "watermark", enc.watermark, prof.Watermark, ""),
	}
	return opts
}

// validateSelectors rejects unknown camera and quality values at the
// CLI edge. The values checked are the resolved ones, so a bad config
// default is caught too.
func validateSelectors(camera, quality string) error {
	if camera != "" {
		if _, ok := presets.Builtin().Camera(camera); !ok {
			return fmt.Errorf("unknown camera %q (valid cameras: %s)", camera, strings.Join(presets.CameraNames(), ", "))
		}
	}
	if quality != "" {
		if _, ok := presets.Builtin().Quality(quality); !ok {
			return fmt.Errorf("unknown quality %q (valid tiers: %s)", quality, strings.Join(presets.QualityNames(), ", "))
		}
	}
	return nil
}

// newClient builds the API client with an observer matching the
// resolved verbosity.
func newClient(cfg *config.Config, s settings) *glassmark.Client {
	level := observability.ObservabilityOff
	if s.verbose {
		level = observability.ObservabilityMetrics
	}
	if s.debug {
		level = observability.ObservabilityDebug
	}
	observer := observability.NewStandardObserver(level, os.Stderr)
	if s.debug {
		observer.DebugObserver = observability.NewDebugObserver(os.Stderr)
		observer.DebugObserver.LogDetail("cli", fmt.Sprintf("command line arguments: %v", os.Args))
	}
	return glassmark.New(cfg, glassmark.WithObserver(observer))
}

// progressPrinter returns a callback that rewrites one status line on
// the terminal, or nil when progress output is suppressed.
func progressPrinter(s settings) func(ffmpeg.Progress) {
	if s.debug || !isTerminal(os.Stderr) {
		return nil
	}
	return func(p ffmpeg.Progress) {
		if p.Done {
			fmt.Fprintf(os.Stderr, "\r  transcoding 100.0%%            \n")
			return
		}
		speed := p.Speed
		if speed == "" {
			speed = "-"
		}
		fmt.Fprintf(os.Stderr, "\r  transcoding %5.1f%%  %-8s", p.Percent, speed)
	}
}

// printReport renders a processing report in the chosen format. The
// exit code reflects whether every file succeeded.
func printReport(report *core.Report, s settings) int {
	out, err := formatters.FormatReport(s.format, report, formatters.Options{NoColor: s.noColor, Verbose: s.verbose})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println(out)
	if report.Failed > 0 {
		return 1
	}
	return 0
}

func runAdd(ctx context.Context, args []string) int {
	var (
		g        globalFlags
		meta     metadataFlags
		enc      transcodeFlags
		output   string
		optimize bool
		verify   bool
		format   string
	)
	fs := newFlagSet("add", &g)
	registerMetadataFlags(fs, &meta)
	registerTranscodeFlags(fs, &enc)
	fs.StringVar(&output, "output", "", "Destination path")
	fs.BoolVar(&optimize, "optimize", false, "Transcode to the camera profile before stamping")
	fs.BoolVar(&verify, "verify", false, "Re-read the tags after writing")
	fs.StringVar(&format, "format", "", "Output format: text, json, yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: add requires exactly one video argument")
		return 2
	}

	cfg, prof, s, code := setup(fs, &g, format)
	if code != 0 {
		return code
	}

	opts := buildOptions(fs, cfg, prof, &meta, &enc)
	opts.Output = output
	opts.Optimize = boolSetting(fs, "optimize", optimize, prof.Optimize, false)
	opts.Verify = boolSetting(fs, "verify", verify, prof.Verify, false)
	if err := validateSelectors(opts.Camera, opts.Quality); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	client := newClient(cfg, s)
	opts.Progress = progressPrinter(s)

	res := client.Add(ctx, fs.Arg(0), opts)
	return printReport(core.SingleReport(res), s)
}

func runBatch(ctx context.Context, args []string) int {
	var (
		g        globalFlags
		meta     metadataFlags
		enc      transcodeFlags
		optimize bool
		verify   bool
		format   string
	)
	fs := newFlagSet("batch", &g)
	registerMetadataFlags(fs, &meta)
	registerTranscodeFlags(fs, &enc)
	fs.BoolVar(&optimize, "optimize", false, "Transcode each video to the camera profile before stamping")
	fs.BoolVar(&verify, "verify", false, "Re-read the tags after each write")
	fs.StringVar(&format, "format", "", "Output format: text, json, yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: batch requires exactly one directory argument")
		return 2
	}

	cfg, prof, s, code := setup(fs, &g, format)
	if code != 0 {
		return code
	}

	opts := buildOptions(fs, cfg, prof, &meta, &enc)
	opts.Optimize = boolSetting(fs, "optimize", optimize, prof.Optimize, false)
	opts.Verify = boolSetting(fs, "verify", verify, prof.Verify, false)
	if err := validateSelectors(opts.Camera, opts.Quality); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	client := newClient(cfg, s)

	// Live per-file ticker on stderr; the report itself goes to stdout.
	var each func(core.Result)
	if s.format == "text" && isTerminal(os.Stderr) && !s.debug {
		each = func(res core.Result) {
			mark := "ok"
			if !res.Ok() {
				mark = "failed"
			}
			fmt.Fprintf(os.Stderr, "  %s: %s\n", filepath.Base(res.Input), mark)
		}
	}

	report, err := client.AddDir(ctx, fs.Arg(0), opts, each)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if report != nil && len(report.Results) > 0 {
			printReport(report, s)
		}
		return 1
	}
	return printReport(report, s)
}

func runVerify(ctx context.Context, args []string) int {
	var g globalFlags
	fs := newFlagSet("verify", &g)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: verify requires exactly one file argument")
		return 2
	}

	cfg, _, s, code := setup(fs, &g, "")
	if code != 0 {
		return code
	}
	client := newClient(cfg, s)

	res := client.Verify(ctx, fs.Arg(0))
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", res.Err)
		return 1
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	fmt.Println(res.Path)
	for _, check := range res.Checks() {
		value := res.Tags[check.Tag]
		switch {
		case check.Present && check.Branded:
			green.Printf("  ✓ %-10s %s\n", check.Tag, value)
		case check.Present:
			red.Printf("  ✗ %-10s present but not branded: %q\n", check.Tag, value)
		default:
			red.Printf("  ✗ %-10s missing\n", check.Tag)
		}
	}
	if res.Stamped {
		green.Println("✓ Ray-Ban Stories metadata present")
		return 0
	}
	red.Println("✗ No Ray-Ban Stories metadata")
	return 1
}

func runStamp(ctx context.Context, args []string) int {
	var (
		g      globalFlags
		meta   metadataFlags
		format string
	)
	fs := newFlagSet("stamp", &g)
	registerMetadataFlags(fs, &meta)
	fs.StringVar(&format, "format", "", "Output format: text, json, yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: stamp requires exactly one file argument")
		return 2
	}

	cfg, prof, s, code := setup(fs, &g, format)
	if code != 0 {
		return code
	}

	opts := buildOptions(fs, cfg, prof, &meta, &transcodeFlags{})
	if err := validateSelectors(opts.Camera, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	client := newClient(cfg, s)
	res := client.Stamp(ctx, fs.Arg(0), opts)
	return printReport(core.SingleReport(res), s)
}

func runOptimize(ctx context.Context, args []string) int {
	var (
		g      globalFlags
		enc    transcodeFlags
		output string
		camera string
		mute   bool
		format string
	)
	fs := newFlagSet("optimize", &g)
	registerTranscodeFlags(fs, &enc)
	fs.StringVar(&output, "output", "", "Destination path")
	fs.StringVar(&camera, "camera", "", "Camera profile to target: main or front")
	fs.BoolVar(&mute, "mute", false, "Drop the audio track entirely")
	fs.StringVar(&format, "format", "", "Output format: text, json, yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: optimize requires exactly one video argument")
		return 2
	}

	cfg, prof, s, code := setup(fs, &g, format)
	if code != 0 {
		return code
	}

	opts := core.Options{
		Output:       output,
		Camera:       stringSetting(fs, "camera", camera, "", cfg.Defaults.Camera),
		Quality:      stringSetting(fs, "quality", enc.quality, "", cfg.Defaults.Quality),
		Width:        enc.width,
		Height:       enc.height,
		FrameRate:    enc.fps,
		VideoBitrate: enc.bitrate,
		MuteAudio:    boolSetting(fs, "mute", mute, prof.Mute, false),
		Stabilize:    boolSetting(fs, "stabilize", enc.stabilize, prof.Stabilize, false),
		Watermark:    stringSetting(fs, "watermark", enc.watermark, prof.Watermark, ""),
	}
	if err := validateSelectors(opts.Camera, opts.Quality); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	client := newClient(cfg, s)
	opts.Progress = progressPrinter(s)

	res := client.Optimize(ctx, fs.Arg(0), opts)
	return printReport(core.SingleReport(res), s)
}

func runAnalyze(ctx context.Context, args []string) int {
	var (
		g      globalFlags
		format string
	)
	fs := newFlagSet("analyze", &g)
	fs.StringVar(&format, "format", "", "Output format: text, json, yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: analyze requires exactly one file argument")
		return 2
	}

	cfg, _, s, code := setup(fs, &g, format)
	if code != 0 {
		return code
	}
	client := newClient(cfg, s)

	analysis, err := client.Analyze(ctx, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	stamped := analysis.Verify.Stamped
	dump := formatters.TagDump{
		Path:    analysis.Path,
		Source:  analysis.Source,
		Tags:    analysis.Tags,
		Stamped: &stamped,
	}
	out, err := formatters.FormatTags(s.format, dump, formatters.Options{NoColor: s.noColor, Verbose: s.verbose})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println(out)
	return 0
}

func runInfo(ctx context.Context, args []string) int {
	var (
		g      globalFlags
		format string
	)
	fs := newFlagSet("info", &g)
	fs.StringVar(&format, "format", "", "Output format: text, json, yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: info requires exactly one file argument")
		return 2
	}

	cfg, _, s, code := setup(fs, &g, format)
	if code != 0 {
		return code
	}
	client := newClient(cfg, s)

	probe, err := client.Probe(ctx, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	dump := formatters.TagDump{
		Path:   probe.Path,
		Source: "ffprobe",
		Tags:   probeTags(probe),
	}
	out, err := formatters.FormatTags(s.format, dump, formatters.Options{NoColor: s.noColor, Verbose: s.verbose})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println(out)
	return 0
}

// probeTags flattens a probe result into the tag-dump shape.
func probeTags(probe *ffmpeg.ProbeResult) map[string]string {
	tags := map[string]string{
		"Format":   probe.FormatName,
		"Duration": probe.Duration.Round(10 * time.Millisecond).String(),
		"Size":     fmt.Sprintf("%d bytes", probe.Size),
		"BitRate":  fmt.Sprintf("%d b/s", probe.BitRate),
	}
	if probe.VideoCodec != "" {
		tags["VideoCodec"] = probe.VideoCodec
		tags["Resolution"] = fmt.Sprintf("%dx%d", probe.Width, probe.Height)
		tags["FrameRate"] = fmt.Sprintf("%.4g fps", probe.FrameRate)
	}
	if probe.HasAudio() {
		tags["AudioCodec"] = probe.AudioCodec
		tags["AudioChannels"] = fmt.Sprintf("%d", probe.AudioChannels)
		tags["SampleRate"] = probe.SampleRate
	} else {
		tags["AudioCodec"] = "none"
	}
	for key, value := range probe.Tags {
		tags["Tag:"+key] = value
	}
	return tags
}

func runMerge(ctx context.Context, args []string) int {
	var (
		g      globalFlags
		output string
	)
	fs := newFlagSet("merge", &g)
	fs.StringVar(&output, "output", "", "Destination path for the merged video (required)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if output == "" {
		fmt.Fprintln(os.Stderr, "Error: merge requires --output")
		return 2
	}
	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: merge requires at least two input videos")
		return 2
	}

	cfg, _, s, code := setup(fs, &g, "")
	if code != 0 {
		return code
	}
	client := newClient(cfg, s)

	if err := client.Merge(ctx, fs.Args(), output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("Merged %d clips into %s\n", fs.NArg(), output)
	return 0
}

func runThumbnail(ctx context.Context, args []string) int {
	var (
		g      globalFlags
		at     float64
		output string
	)
	fs := newFlagSet("thumbnail", &g)
	fs.Float64Var(&at, "time", 1, "Time offset of the frame to grab in seconds")
	fs.StringVar(&output, "output", "", "Destination path")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: thumbnail requires exactly one video argument")
		return 2
	}

	cfg, _, s, code := setup(fs, &g, "")
	if code != 0 {
		return code
	}
	client := newClient(cfg, s)

	input := fs.Arg(0)
	if output == "" {
		output = core.ThumbnailName(input)
	}
	offset := time.Duration(at * float64(time.Second))
	if err := client.Thumbnail(ctx, input, output, offset); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("Thumbnail written to %s\n", output)
	return 0
}

func runFrames(ctx context.Context, args []string) int {
	var (
		g        globalFlags
		interval float64
		dir      string
	)
	fs := newFlagSet("frames", &g)
	fs.Float64Var(&interval, "interval", 5, "Seconds between extracted frames")
	fs.StringVar(&dir, "output-dir", "", "Directory for the frames")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: frames requires exactly one video argument")
		return 2
	}

	cfg, _, s, code := setup(fs, &g, "")
	if code != 0 {
		return code
	}
	client := newClient(cfg, s)

	input := fs.Arg(0)
	if dir == "" {
		dir = core.FramesDirName(input)
	}
	if err := paths.EnsureDir(dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	every := time.Duration(interval * float64(time.Second))
	count, err := client.ExtractFrames(ctx, input, dir, every)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("Extracted %d frame(s) into %s\n", count, dir)
	return 0
}

func runAudio(ctx context.Context, args []string) int {
	var (
		g       globalFlags
		replace string
		mix     string
		output  string
	)
	fs := newFlagSet("audio", &g)
	fs.StringVar(&replace, "replace", "", "Audio file that replaces the existing track")
	fs.StringVar(&mix, "mix", "", "Audio file mixed into the existing track")
	fs.StringVar(&output, "output", "", "Destination path")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: audio requires exactly one video argument")
		return 2
	}
	if (replace == "") == (mix == "") {
		fmt.Fprintln(os.Stderr, "Error: audio requires exactly one of --replace or --mix")
		return 2
	}

	cfg, _, s, code := setup(fs, &g, "")
	if code != 0 {
		return code
	}
	client := newClient(cfg, s)

	video := fs.Arg(0)
	if output == "" {
		output = core.AudioName(video)
	}

	var err error
	if replace != "" {
		err = client.ReplaceAudio(ctx, video, replace, output)
	} else {
		err = client.MixAudio(ctx, video, mix, output)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("Audio written to %s\n", output)
	return 0
}

// presetsView is the serializable shape of the presets listing.
type presetsView struct {
	Cameras   []presets.CameraPreset   `json:"cameras" yaml:"cameras"`
	Locations []presets.NamedLocation  `json:"locations" yaml:"locations"`
	Qualities []presets.QualityProfile `json:"qualities" yaml:"qualities"`
}

func runPresets(args []string) int {
	var (
		g      globalFlags
		format string
	)
	fs := newFlagSet("presets", &g)
	fs.StringVar(&format, "format", "", "Output format: text, json, yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, _, s, code := setup(fs, &g, format)
	if code != 0 {
		return code
	}

	table := presets.Builtin()
	view := presetsView{
		Cameras:   table.Cameras(),
		Locations: mergedLocations(table, cfg),
		Qualities: table.Qualities(),
	}

	switch s.format {
	case "json":
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(view)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Print(string(data))
	default:
		printPresetsText(view)
	}
	return 0
}

// mergedLocations overlays the configured locations onto the built-in
// table, matching the resolver's shadowing rule.
func mergedLocations(table *presets.Table, cfg *config.Config) []presets.NamedLocation {
	combined := make(map[string]presets.Location)
	for _, loc := range table.Locations() {
		combined[loc.Key] = loc.Location
	}
	for key, loc := range cfg.Locations {
		combined[presets.NormalizeLocationKey(key)] = loc
	}

	keys := make([]string, 0, len(combined))
	for key := range combined {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]presets.NamedLocation, 0, len(keys))
	for _, key := range keys {
		out = append(out, presets.NamedLocation{Key: key, Location: combined[key]})
	}
	return out
}

func printPresetsText(view presetsView) {
	header := color.New(color.FgBlue, color.Bold)
	emphasis := color.New(color.FgWhite, color.Bold)

	header.Println("Camera Presets:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, cam := range view.Cameras {
		fmt.Fprintf(w, "  ")
		emphasis.Fprintf(w, "%s", cam.Camera)
		fmt.Fprintf(w, "\t%s\t%dx%d @ %d fps\t%s\t%s\n",
			cam.Model, cam.Width, cam.Height, cam.FrameRate, cam.VideoBitrate, cam.FieldOfView)
	}
	w.Flush()
	fmt.Println()

	header.Println("Locations:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, loc := range view.Locations {
		fmt.Fprintf(w, "  ")
		emphasis.Fprintf(w, "%s", loc.Key)
		fmt.Fprintf(w, "\t%s\t%.4f, %.4f\taltitude %.0fm\n",
			loc.Name, loc.Latitude, loc.Longitude, loc.Altitude)
	}
	w.Flush()
	fmt.Println()

	header.Println("Quality Tiers:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, q := range view.Qualities {
		fmt.Fprintf(w, "  ")
		emphasis.Fprintf(w, "%s", q.Quality)
		fmt.Fprintf(w, "\tCRF %d\tpreset %s\n", q.CRF, q.Preset)
	}
	w.Flush()
}

func runCheckExiftool(args []string) int {
	var g globalFlags
	fs := newFlagSet("check-exiftool", &g)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, _, s, code := setup(fs, &g, "")
	if code != 0 {
		return code
	}
	client := newClient(cfg, s)

	path, err := client.CheckExiftool()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "✗ exiftool not found: %v\n", err)
		return 1
	}
	color.New(color.FgGreen).Printf("✓ exiftool found at %s\n", path)
	return 0
}

func runCheckFFmpeg(args []string) int {
	var g globalFlags
	fs := newFlagSet("check-ffmpeg", &g)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, _, s, code := setup(fs, &g, "")
	if code != 0 {
		return code
	}
	client := newClient(cfg, s)

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	failed := false

	if path, err := client.CheckFFmpeg(); err != nil {
		red.Fprintf(os.Stderr, "✗ ffmpeg not found: %v\n", err)
		failed = true
	} else {
		green.Printf("✓ ffmpeg found at %s\n", path)
	}
	if path, err := client.CheckFFprobe(); err != nil {
		red.Fprintf(os.Stderr, "✗ ffprobe not found: %v\n", err)
		failed = true
	} else {
		green.Printf("✓ ffprobe found at %s\n", path)
	}

	if failed {
		return 1
	}
	return 0
}

func runInteractive(ctx context.Context, args []string) int {
	var (
		g           globalFlags
		yesDefaults bool
	)
	fs := newFlagSet("interactive", &g)
	fs.BoolVar(&yesDefaults, "yes-defaults", false, "Accept all defaults without prompting")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, _, s, code := setup(fs, &g, "")
	if code != 0 {
		return code
	}

	if !yesDefaults && !interactive.StdinIsTerminal() {
		fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal (or --yes-defaults with a target path)")
		return 1
	}

	session := interactive.NewSession(os.Stdin, os.Stdout, presets.Builtin(), yesDefaults)
	defaults := core.Options{
		Camera:  cfg.Defaults.Camera,
		Quality: cfg.Defaults.Quality,
	}

	plan, err := session.Run(fs.Arg(0), defaults)
	if errors.Is(err, interactive.ErrAborted) {
		fmt.Println("Aborted.")
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	client := newClient(cfg, s)
	plan.Options.Progress = progressPrinter(s)

	if plan.IsDir {
		report, err := client.AddDir(ctx, plan.Target, plan.Options, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return printReport(report, s)
	}
	res := client.Add(ctx, plan.Target, plan.Options)
	return printReport(core.SingleReport(res), s)
}

func runHelp(args []string) int {
	sys := help.NewSystem(false)
	if len(args) == 0 {
		sys.ShowMainHelp()
		return 0
	}
	topic := args[0]
	if topic == "examples" {
		sys.ShowExamples()
		return 0
	}
	if !sys.ShowCommandHelp(topic) {
		return 2
	}
	return 0
}

// stringSetting resolves one string value with the precedence config
// default < profile < explicitly set flag.
func stringSetting(fs *flag.FlagSet, name, flagValue, profileValue, def string) string {
	if flagSetHas(fs, name) && flagValue != "" {
		return flagValue
	}
	if profileValue != "" {
		return profileValue
	}
	return def
}

// boolSetting resolves one bool value the same way; the profile layer
// uses a pointer so an absent key never overrides.
func boolSetting(fs *flag.FlagSet, name string, flagValue bool, profileValue *bool, def bool) bool {
	if flagSetHas(fs, name) {
		return flagValue
	}
	if profileValue != nil {
		return *profileValue
	}
	return def
}

// flagSetHas reports whether a flag was explicitly set on the command line.
func flagSetHas(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
