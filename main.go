package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"nim/engine"
	"nim/experiments"
	"nim/game"
	"nim/meta"
	"nim/player"
	"nim/searcher"
	"nim/utils"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var seats = []string{"first", "second", "random"}

type config struct {
	mode       string
	piles      []int
	depth      int
	goroutines int
	seat       string
	seed       uint64
	experiment string
	games      int
	workers    int
	outDir     string
	logLevel   string
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "usage: nim play|experiment [flags]")
		os.Exit(2)
	}
	setupLogging(cfg.logLevel)

	switch cfg.mode {
	case "play":
		err = play(cfg, os.Stdin, os.Stdout)
	case "experiment":
		err = runExperiment(cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.mode)
	}
}

func parseConfig(args []string) (config, error) {
	cfg := config{mode: "play"}
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cfg.mode, args = args[0], args[1:]
	}

	fs := flag.NewFlagSet(cfg.mode, flag.ContinueOnError)
	piles := fs.String("piles", joinInts(meta.DEFAULT_PILES), "Comma separated starting piles")
	fs.IntVar(&cfg.depth, "depth", meta.DEFAULT_DEPTH, "Search depth of the AI")
	fs.IntVar(&cfg.goroutines, "goroutines", 1, "Goroutines searching the root moves")
	fs.StringVar(&cfg.seat, "seat", "random", "Human seat: first, second or random")
	fs.Uint64Var(&cfg.seed, "seed", 0, "Seed for the seat draw, 0 uses the clock")
	fs.StringVar(&cfg.experiment, "name", "depth", "Experiment to run: depth or pruning")
	fs.IntVar(&cfg.games, "games", meta.NUM_GAMES, "Games per experiment match up")
	fs.IntVar(&cfg.workers, "workers", 8, "Experiment games played concurrently")
	fs.StringVar(&cfg.outDir, "out", "experiments", "Experiment output directory")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	var err error
	cfg.piles, err = utils.ParseInts(*piles)
	if err != nil {
		return config{}, errors.Wrap(err, "invalid -piles")
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	var errs error
	if c.mode != "play" && c.mode != "experiment" {
		errs = multierror.Append(errs, errors.Errorf("unknown mode %q", c.mode))
	}
	if err := game.Piles(c.piles).Validate(); err != nil {
		errs = multierror.Append(errs, err)
	} else if game.IsTerminal(c.piles) {
		errs = multierror.Append(errs, errors.New("piles must hold at least one stone"))
	}
	if c.depth < 1 {
		errs = multierror.Append(errs, errors.Errorf("depth must be positive, got %d", c.depth))
	}
	if c.goroutines < 1 {
		errs = multierror.Append(errs, errors.Errorf("goroutines must be positive, got %d", c.goroutines))
	}
	if utils.FindIndex(seats, c.seat) < 0 {
		errs = multierror.Append(errs, errors.Errorf("seat must be one of %v, got %q", seats, c.seat))
	}
	if _, ok := experiments.Lookup(c.experiment); !ok {
		errs = multierror.Append(errs, errors.Errorf("unknown experiment %q", c.experiment))
	}
	if c.games < 1 {
		errs = multierror.Append(errs, errors.Errorf("games must be positive, got %d", c.games))
	}
	if _, err := zerolog.ParseLevel(c.logLevel); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

// play runs a game between a human reading from in and the AI
func play(cfg config, in io.Reader, out io.Writer) error {
	human := player.NewHuman("Human", in, out)
	ai := player.NewAI("AI", searcher.NewAlphaBeta(
		searcher.WithDepth(cfg.depth),
		searcher.WithGoroutines(cfg.goroutines),
		searcher.WithMetrics(),
	))

	humanSeat := utils.FindIndex(seats, cfg.seat)
	if humanSeat == 2 {
		seed := cfg.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		humanSeat = engine.RandomSeat(rand.New(rand.NewSource(seed)))
	}

	players := [2]player.Player{human, ai}
	if humanSeat == 1 {
		players = [2]player.Player{ai, human}
	}

	e, err := engine.New(cfg.piles, players, engine.WithOutput(out))
	if err != nil {
		return err
	}
	_, err = e.Run()
	return err
}

func runExperiment(cfg config) error {
	exp, _ := experiments.Lookup(cfg.experiment)
	_, err := experiments.Run(exp, experiments.Settings{
		Piles:    cfg.piles,
		NumGames: cfg.games,
		Workers:  cfg.workers,
		OutDir:   cfg.outDir,
	})
	return err
}

func joinInts(values []int) string {
	return strings.Trim(strings.Join(strings.Fields(fmt.Sprint(values)), ","), "[]")
}
