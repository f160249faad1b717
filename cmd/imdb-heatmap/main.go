package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/shawnegan25/IMDB-heatmap/internal/config"
	"github.com/shawnegan25/IMDB-heatmap/internal/heatmap"
	"github.com/shawnegan25/IMDB-heatmap/internal/imdb"
	"github.com/shawnegan25/IMDB-heatmap/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	title := flag.String("title", "", "Title of the TV show to look up (required)")
	startYear := flag.Int("start-year", 0, "Only match shows released in or after this year")
	endYear := flag.Int("end-year", 0, "Only match shows released in or before this year")
	flag.Parse()

	// Accept the title as a bare positional argument too.
	if *title == "" && flag.NArg() > 0 {
		*title = flag.Arg(0)
	}
	if *title == "" {
		fmt.Fprintln(os.Stderr, "a show title is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Path:       cfg.Logging.Path,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	defer log.Close()

	log.Info().
		Str("title", *title).
		Int("startYear", *startYear).
		Int("endYear", *endYear).
		Msg("starting imdb-heatmap")

	ctx := context.Background()
	client := imdb.NewClient(cfg.IMDB, log.Logger)

	id, err := client.Resolve(ctx, imdb.ShowQuery{
		Title:     *title,
		StartYear: *startYear,
		EndYear:   *endYear,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve show")
	}

	canonical, table, err := client.Harvest(ctx, id)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to harvest episode ratings")
	}
	if canonical == "" {
		canonical = *title
	}

	renderer, err := heatmap.NewRenderer(cfg.Heatmap, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create renderer")
	}

	img, err := renderer.Render(canonical, table)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to render heatmap")
	}

	path, err := renderer.WriteFile(canonical, img)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to write heatmap image")
	}

	log.Info().Str("path", path).Msg("heatmap written")
}
