// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

// Flag groups shared by several commands. The CLI defines the same
// flags on its FlagSets; keep the two in step.
var (
	metadataFlags = []FlagInfo{
		{"--camera", "<type>", "Camera preset: main or front (default from config)"},
		{"--location", "<name>", "Named location preset for GPS coordinates"},
		{"--lat", "<degrees>", "Explicit GPS latitude (used only together with --lon)"},
		{"--lon", "<degrees>", "Explicit GPS longitude (used only together with --lat)"},
		{"--altitude", "<meters>", "GPS altitude for explicit coordinates (default 5)"},
		{"--date", "<stamp>", "Capture timestamp written verbatim (YYYY:MM:DD HH:MM:SS)"},
		{"--comment", "<text>", "Replace the camera preset's default comment"},
		{"--mute", "", "Record the audio as disabled (0 channels, no microphone)"},
	}

	transcodeFlags = []FlagInfo{
		{"--quality", "<tier>", "Transcode quality: low, medium, high, maximum"},
		{"--width", "<pixels>", "Override the camera profile's output width"},
		{"--height", "<pixels>", "Override the camera profile's output height"},
		{"--fps", "<rate>", "Override the camera profile's frame rate"},
		{"--bitrate", "<rate>", "Override the camera profile's video bitrate (e.g. 18M)"},
		{"--stabilize", "", "Apply two-pass video stabilization"},
		{"--watermark", "<text>", "Burn a corner watermark into the output"},
	}

	formatFlag = FlagInfo{"--format", "<name>", "Output format: text, json, yaml (default text)"}
)

func combineFlags(groups ...[]FlagInfo) []FlagInfo {
	var combined []FlagInfo
	for _, group := range groups {
		combined = append(combined, group...)
	}
	return combined
}

// builtinCommands returns the help topics for every glassmark command,
// in display order.
func builtinCommands() []CommandInfo {
	return []CommandInfo{
		{
			Name:     "add",
			Synopsis: "glassmark add <video> [options]",
			Short:    "Stamp a video with Ray-Ban Stories metadata, optionally transcoding it",
			Long: "Copies the input video to a new file named after the camera preset\n" +
				"(e.g. clip_rayban.mp4) and writes the full Ray-Ban Stories tag set\n" +
				"to it. With --optimize the video is first transcoded to the camera\n" +
				"profile's resolution, frame rate, and bitrate. The original file is\n" +
				"never modified unless --output points back at it.",
			Flags: combineFlags(
				[]FlagInfo{
					{"--output", "<path>", "Destination path (default: <name>_rayban[...].<ext> beside the input)"},
					{"--optimize", "", "Transcode to the camera profile before stamping"},
					{"--verify", "", "Re-read the tags after writing and report the verdict"},
				},
				metadataFlags,
				transcodeFlags,
				[]FlagInfo{formatFlag},
			),
			Examples: []string{
				"glassmark add vacation.mp4",
				"glassmark add vacation.mp4 --camera front --location beach",
				"glassmark add vacation.mp4 --optimize --quality maximum --verify",
			},
		},
		{
			Name:     "batch",
			Synopsis: "glassmark batch <directory> [options]",
			Short:    "Process every supported video in a directory",
			Long: "Runs add over each supported video file found directly in the\n" +
				"directory (no recursion), in alphabetical order. Failures are\n" +
				"counted and reported without stopping the run.",
			Flags: combineFlags(
				[]FlagInfo{
					{"--optimize", "", "Transcode each video to the camera profile before stamping"},
					{"--verify", "", "Re-read the tags after each write and report the verdict"},
				},
				metadataFlags,
				transcodeFlags,
				[]FlagInfo{formatFlag},
			),
			Examples: []string{
				"glassmark batch ./clips",
				"glassmark batch ./clips --optimize --format json",
			},
		},
		{
			Name:     "verify",
			Synopsis: "glassmark verify <file>",
			Short:    "Check whether a file carries Ray-Ban Stories metadata",
			Long: "Reads the file's tags with exiftool and checks the device identity\n" +
				"fields (Make, Model, Software, LensModel) for Ray-Ban Stories\n" +
				"values. Prints a checklist and exits 1 when the file is not\n" +
				"stamped.",
			Examples: []string{
				"glassmark verify vacation_rayban.mp4",
			},
		},
		{
			Name:     "stamp",
			Synopsis: "glassmark stamp <file> [options]",
			Short:    "Write metadata tags in place without touching the video stream",
			Long: "Writes the Ray-Ban Stories tag set directly to the named file.\n" +
				"Unlike add, no copy is made and the video stream is untouched.",
			Flags:    combineFlags(metadataFlags, []FlagInfo{formatFlag}),
			Examples: []string{
				"glassmark stamp existing.mp4",
				"glassmark stamp existing.mp4 --location office --mute",
			},
		},
		{
			Name:     "optimize",
			Synopsis: "glassmark optimize <video> [options]",
			Short:    "Transcode a video to a camera profile without stamping",
			Long: "Transcodes the input to the camera profile's resolution, frame\n" +
				"rate, and bitrate with H.264/AAC and faststart, without writing\n" +
				"any metadata tags.",
			Flags: combineFlags(
				[]FlagInfo{
					{"--output", "<path>", "Destination path (default: <name>_rayban_optimized.<ext>)"},
					{"--camera", "<type>", "Camera profile to target: main or front"},
					{"--mute", "", "Drop the audio track entirely"},
				},
				transcodeFlags,
				[]FlagInfo{formatFlag},
			),
			Examples: []string{
				"glassmark optimize raw.mov",
				"glassmark optimize raw.mov --camera front --quality low",
			},
		},
		{
			Name:     "analyze",
			Synopsis: "glassmark analyze <file> [options]",
			Short:    "Dump a file's metadata tags with a stamped-file verdict",
			Long: "Reads every metadata tag exiftool reports for the file and prints\n" +
				"them with the Ray-Ban Stories verdict. When exiftool is not\n" +
				"installed, falls back to a built-in reader for MP4/MOV containers\n" +
				"and JPEG stills.",
			Flags: []FlagInfo{formatFlag},
			Examples: []string{
				"glassmark analyze vacation_rayban.mp4",
				"glassmark analyze photo.jpg --format json",
			},
		},
		{
			Name:     "info",
			Synopsis: "glassmark info <file> [options]",
			Short:    "Show container and stream details from ffprobe",
			Long: "Probes the file with ffprobe and prints the container format,\n" +
				"duration, bitrate, and video/audio stream parameters.",
			Flags: []FlagInfo{formatFlag},
			Examples: []string{
				"glassmark info vacation.mp4",
			},
		},
		{
			Name:     "merge",
			Synopsis: "glassmark merge <video1> <video2> [more...] --output <path>",
			Short:    "Concatenate two or more clips into one video",
			Long: "Joins the inputs in argument order using ffmpeg's concat demuxer\n" +
				"with stream copy. The clips should share codec parameters; --output\n" +
				"is required.",
			Flags: []FlagInfo{
				{"--output", "<path>", "Destination path for the merged video (required)"},
			},
			Examples: []string{
				"glassmark merge part1.mp4 part2.mp4 --output trip.mp4",
			},
		},
		{
			Name:     "thumbnail",
			Synopsis: "glassmark thumbnail <video> [options]",
			Short:    "Extract a still frame as a JPEG thumbnail",
			Long:     "Grabs one frame at the given time offset and writes it as a JPEG.",
			Flags: []FlagInfo{
				{"--time", "<seconds>", "Time offset of the frame to grab (default 1)"},
				{"--output", "<path>", "Destination path (default: <name>_thumb.jpg)"},
			},
			Examples: []string{
				"glassmark thumbnail vacation.mp4 --time 2.5",
			},
		},
		{
			Name:     "frames",
			Synopsis: "glassmark frames <video> [options]",
			Short:    "Extract frames at a fixed interval",
			Long: "Writes numbered JPEG frames (frame_0001.jpg, ...) sampled every\n" +
				"--interval seconds into the output directory.",
			Flags: []FlagInfo{
				{"--interval", "<seconds>", "Seconds between extracted frames (default 5)"},
				{"--output-dir", "<path>", "Directory for the frames (default: <name>_frames)"},
			},
			Examples: []string{
				"glassmark frames vacation.mp4 --interval 10",
			},
		},
		{
			Name:     "audio",
			Synopsis: "glassmark audio <video> (--replace <track> | --mix <track>) [options]",
			Short:    "Replace or mix a video's audio track",
			Long: "With --replace, swaps the video's audio for the given track. With\n" +
				"--mix, blends the track with the existing audio. Exactly one of the\n" +
				"two must be given.",
			Flags: []FlagInfo{
				{"--replace", "<track>", "Audio file that replaces the existing track"},
				{"--mix", "<track>", "Audio file mixed into the existing track"},
				{"--output", "<path>", "Destination path (default: <name>_audio.<ext>)"},
			},
			Examples: []string{
				"glassmark audio vacation.mp4 --replace soundtrack.m4a",
				"glassmark audio vacation.mp4 --mix ambience.mp3 --output final.mp4",
			},
		},
		{
			Name:     "presets",
			Synopsis: "glassmark presets [options]",
			Short:    "List camera, location, and quality presets",
			Long: "Prints the built-in camera presets with their device identity and\n" +
				"encoding profile, the named locations (including any defined in the\n" +
				"configuration file), and the quality tiers.",
			Flags: []FlagInfo{formatFlag},
			Examples: []string{
				"glassmark presets",
				"glassmark presets --format json",
			},
		},
		{
			Name:     "check-exiftool",
			Synopsis: "glassmark check-exiftool",
			Short:    "Verify the exiftool binary is available",
			Long: "Resolves the exiftool binary through the configuration, the\n" +
				"GLASSMARK_EXIFTOOL environment variable, and PATH, and reports\n" +
				"where it was found. Exits 1 when it is missing.",
			Examples: []string{
				"glassmark check-exiftool",
			},
		},
		{
			Name:     "check-ffmpeg",
			Synopsis: "glassmark check-ffmpeg",
			Short:    "Verify the ffmpeg and ffprobe binaries are available",
			Long: "Resolves ffmpeg and ffprobe the same way check-exiftool resolves\n" +
				"exiftool. Exits 1 when either is missing.",
			Examples: []string{
				"glassmark check-ffmpeg",
			},
		},
		{
			Name:     "interactive",
			Synopsis: "glassmark interactive [path] [--yes-defaults]",
			Short:    "Guided prompt-driven processing session",
			Long: "Walks through the processing choices one question at a time, with\n" +
				"the presets offered as numbered menus, then runs the same pipeline\n" +
				"as add or batch. Requires a terminal unless --yes-defaults is\n" +
				"given, which accepts every default without prompting.",
			Flags: []FlagInfo{
				{"--yes-defaults", "", "Accept all defaults without prompting"},
			},
			Examples: []string{
				"glassmark interactive",
				"glassmark interactive ~/Videos/trip",
			},
		},
		{
			Name:     "version",
			Synopsis: "glassmark version",
			Short:    "Print version information",
			Long:     "Prints the glassmark version, git commit, build date, and platform.",
		},
		{
			Name:     "help",
			Synopsis: "glassmark help [command]",
			Short:    "Show help for glassmark or a command",
			Long: "Without an argument, prints the command overview. With a command\n" +
				"name, prints that command's options and examples. 'glassmark help\n" +
				"examples' prints an annotated example walkthrough.",
			Examples: []string{
				"glassmark help",
				"glassmark help add",
				"glassmark help examples",
			},
		},
	}
}
