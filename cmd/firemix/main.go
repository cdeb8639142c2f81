// Package main provides the firemix playlist command.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/tobywaite/firemix/internal/app/mixer"
	"github.com/tobywaite/firemix/internal/app/notification"
	"github.com/tobywaite/firemix/internal/app/presets"
	"github.com/tobywaite/firemix/internal/app/registry"
	"github.com/tobywaite/firemix/internal/app/sequencer"
	"github.com/tobywaite/firemix/internal/domain/preset"
	"github.com/tobywaite/firemix/internal/infra/config"
	"github.com/tobywaite/firemix/internal/infra/document"
	"github.com/tobywaite/firemix/internal/infra/logger"
)

var (
	app          = kingpin.New("firemix", "firemix preset playlist tool")
	configPath   = app.Flag("config", "Path to config file").Default("config/firemix.yaml").String()
	playlistName = app.Flag("playlist", "Playlist name (overrides config)").Short('p').String()
	verbose      = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile      = app.Flag("logfile", "Path to log file (default: stderr)").String()

	// list command (default)
	listCmd = app.Command("list", "Show the playlist").Default()

	// presets command
	presetsCmd = app.Command("presets", "List available preset types")

	// reorder command
	reorderCmd   = app.Command("reorder", "Move the named presets to the front, in order, and save")
	reorderNames = reorderCmd.Arg("names", "Preset display names").Required().Strings()

	// set-param command
	setParamCmd    = app.Command("set-param", "Set a preset parameter and save")
	setParamPreset = setParamCmd.Arg("preset", "Preset display name").Required().String()
	setParamKey    = setParamCmd.Arg("key", "Parameter key").Required().String()
	setParamValue  = setParamCmd.Arg("value", "Parameter value").Required().String()

	// run command
	runCmd      = app.Command("run", "Rotate through the playlist until interrupted")
	runInterval = runCmd.Flag("interval", "Rotation interval (overrides config)").Duration()
	runReverse  = runCmd.Flag("reverse", "Rotate backwards").Bool()
	runStart    = runCmd.Flag("start", "Display name of the preset to start with").String()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	loggerConfig := logger.Config{
		Output: "stderr",
		Level:  "info",
	}
	cfg, cfgErr := loadConfig(*configPath)
	if cfgErr == nil {
		loggerConfig.Level = cfg.Log.Level
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = *logfile
	}
	closer, err := logger.Init(loggerConfig)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer closer.Close()

	if cfgErr != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", cfgErr)
	}
	if *playlistName != "" {
		if err := cfg.OverridePlaylist(*playlistName); err != nil {
			zlog.Fatal().Msgf("Failed to apply playlist override: %v", err)
		}
	}

	reg := registry.New()
	presets.RegisterBuiltins(reg)

	if command == presetsCmd.FullCommand() {
		printPresets(reg)
		return
	}

	if err := execute(command, cfg, reg); err != nil {
		zlog.Error().Msgf("%v", err)
		os.Exit(1)
	}
}

// loadConfig loads the config file, falling back to defaults when it does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config.Default()
	}
	return config.Load(path)
}

// execute builds the sequencer and runs a playlist command against it.
func execute(command string, cfg *config.Config, reg *registry.Registry) error {
	notifier := notification.NewManager()
	defer notifier.Close()

	host := sequencer.Host{
		Mixer:      mixer.New(mixer.Config{Name: cfg.Mixer.Name, PixelCount: cfg.Mixer.PixelCount}),
		PlaylistID: cfg.Playlist.Name,
		DataRoot:   cfg.Playlist.DataRoot,
		Format:     cfg.Playlist.Format,
	}
	seq, err := sequencer.New(host, reg, document.NewFileStore(), notifier)
	if err != nil {
		return errors.Wrap(err, "failed to load playlist")
	}

	switch command {
	case listCmd.FullCommand():
		printPlaylist(seq)
		return nil
	case reorderCmd.FullCommand():
		if err := seq.ReorderPlaylistByName(*reorderNames); err != nil {
			return err
		}
		printPlaylist(seq)
		return seq.Save()
	case setParamCmd.FullCommand():
		return setParam(seq, *setParamPreset, *setParamKey, *setParamValue)
	case runCmd.FullCommand():
		interval := cfg.RotationInterval()
		if *runInterval > 0 {
			interval = *runInterval
		}
		direction := 1
		if cfg.Rotation.Reverse || *runReverse {
			direction = -1
		}
		return run(seq, notifier, interval, direction, *runStart)
	default:
		return errors.Newf("unknown command: %s", command)
	}
}

// setParam sets one parameter on the named preset and saves the playlist.
func setParam(seq *sequencer.Sequencer, name, key, value string) error {
	idx := seq.IndexOf(name)
	if idx < 0 {
		return errors.Wrapf(sequencer.ErrUnknownPresetName, "%q", name)
	}
	p, err := seq.PresetByIndex(idx)
	if err != nil {
		return err
	}
	param, ok := p.Parameter(key)
	if !ok {
		return errors.Wrapf(sequencer.ErrUnknownParameter, "%s.%s", p.TypeName(), key)
	}
	if err := param.Set(value); err != nil {
		return err
	}
	zlog.Info().Msgf("set parameter: preset=%s key=%s value=%v", name, key, param.Get())
	return seq.Save()
}

// printPlaylist prints the playlist with active and next markers.
func printPlaylist(seq *sequencer.Sequencer) {
	fmt.Printf("Playlist %s (%d presets):\n", seq.Path(), seq.Len())
	for i, p := range seq.Get() {
		marker := " "
		switch i {
		case seq.ActiveIndex():
			marker = ">"
		case seq.NextIndex():
			marker = "+"
		}
		fmt.Printf("%s %2d  %-24s %-12s %s\n", marker, i, p.Name(), p.TypeName(), formatParams(p))
	}
}

// printPresets prints the registered preset types and their parameters.
func printPresets(reg *registry.Registry) {
	fmt.Println("Available Presets:")
	for _, name := range reg.Names() {
		factory, err := reg.Lookup(name)
		if err != nil {
			continue
		}
		fmt.Printf("  %-12s %s\n", name, formatParams(factory(nil, name)))
	}
}

func formatParams(p preset.Preset) string {
	values := preset.Values(p)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := ""
	for i, k := range keys {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s=%v", k, values[k])
	}
	return out
}
