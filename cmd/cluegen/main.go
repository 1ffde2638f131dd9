package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/steved1964/scroggle-clue-site/internal/board"
	"github.com/steved1964/scroggle-clue-site/internal/config"
	"github.com/steved1964/scroggle-clue-site/internal/lexicon"
	"github.com/steved1964/scroggle-clue-site/internal/puzzle"
	"github.com/steved1964/scroggle-clue-site/internal/report"
	"github.com/steved1964/scroggle-clue-site/internal/solver"
)

const appVersion = "0.1.0"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	configPath := flag.String("config", "", "Path to config file")
	wordsPath := flag.String("words", "", "Path to the word list (overrides config)")
	letters := flag.String("letters", "", "Inline letter list; skips the puzzle API fetch")
	outputPath := flag.String("output", "", "Path for the clue file (overrides config); empty string in config disables the file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	version := flag.Bool("version", false, "Show version information")

	flag.Parse()

	if *version {
		fmt.Printf("cluegen v%s\n", appVersion)
		os.Exit(0)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *wordsPath != "" {
		cfg.Words.Path = *wordsPath
	}
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}

	lex, err := lexicon.LoadFile(cfg.Words.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load word list")
	}

	letterList := *letters
	if letterList == "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Puzzle.Timeout)
		defer cancel()

		letterList, err = puzzle.New(cfg.Puzzle).Fetch(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to fetch puzzle")
		}
	}

	b, err := board.ParseLetterList(letterList)
	if err != nil {
		log.Fatal().Err(err).Msg("Unexpected puzzle format")
	}

	res := solver.Solve(b, lex)

	if err := report.Write(os.Stdout, res); err != nil {
		log.Fatal().Err(err).Msg("Failed to write report")
	}
	if cfg.Output.Path != "" {
		if err := report.WriteFile(cfg.Output.Path, res); err != nil {
			log.Warn().Err(err).Str("path", cfg.Output.Path).Msg("Failed to write clue file")
		}
	}
}
