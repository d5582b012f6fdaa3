package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kgeller/shutbox/config"
	"github.com/kgeller/shutbox/montecarlo"
	"github.com/kgeller/shutbox/movefile"
)

func main() {
	cfg := config.New()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	var logger zerolog.Logger
	if cfg.Debug() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger

	runner := montecarlo.NewRunner(cfg.Threads(), cfg.GamesPerThread())
	seed, ok, err := cfg.Seed()
	if err != nil {
		log.Fatal().Err(err).Msg("bad seed")
	}
	if ok {
		runner.SetSeed(seed)
	}

	result, err := runner.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("simulation run failed")
	}

	if err := movefile.WriteFile(cfg.OutputPath(), result.BestMoves); err != nil {
		log.Fatal().Err(err).Msg("could not write move table")
	}
	log.Info().Str("path", cfg.OutputPath()).Int("entries", len(result.BestMoves)).
		Msg("wrote best-move table")

	if len(result.ResidualSample) > 0 {
		fmt.Println("final board values (sampled):")
		hist := histogram.Hist(10, result.ResidualSample)
		if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
			log.Err(err).Msg("could not print histogram")
		}
	}
}
