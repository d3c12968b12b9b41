// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command movies is the terminal front end over the aggregation core. It
// provisions the dataset once, loads the two metadata tables and answers
// one analytics query per invocation:
//
//	movies fetch                     provision the dataset and exit
//	movies genres --top 10           ranked genre frequencies
//	movies actors                    actor-count-per-movie histogram
//	movies heights --gender F \
//	    --min 150 --max 200          filtered height distribution
//
// Numeric parameters stay raw strings all the way to the api boundary so
// bad input is rejected there, exactly as an interactive host would
// experience it.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianbeese/Group-11/internal/api"
	"github.com/julianbeese/Group-11/internal/config"
	"github.com/julianbeese/Group-11/internal/corpus"
	"github.com/julianbeese/Group-11/internal/provision"
	"github.com/julianbeese/Group-11/internal/render"
	"github.com/julianbeese/Group-11/internal/telemetry"
)

// appContext carries the shared state every subcommand needs.
type appContext struct {
	ctx context.Context
	cfg *config.Config
	svc *api.Service
}

// FetchCmd provisions the dataset without running a query.
type FetchCmd struct{}

func (c *FetchCmd) Run(app *appContext) error {
	return ensureDataset(app.ctx, app.cfg)
}

// GenresCmd prints the ranked genre frequencies as a table and bar chart.
type GenresCmd struct {
	Top string `default:"10" help:"How many genres to display."`
}

func (c *GenresCmd) Run(app *appContext) error {
	ranked, err := app.svc.TopGenres(app.ctx, c.Top)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(ranked))
	points := make([]render.BarPoint, 0, len(ranked))
	for _, g := range ranked {
		rows = append(rows, []string{g.Genre, strconv.Itoa(g.Count)})
		points = append(points, render.BarPoint{Label: g.Genre, Value: float64(g.Count)})
	}
	fmt.Print(render.Table([]string{"Genre", "Count"}, rows))
	fmt.Print(render.BarChart("Most Common Movie Types", points))
	return nil
}

// ActorsCmd prints the actor-count-per-movie histogram.
type ActorsCmd struct{}

func (c *ActorsCmd) Run(app *appContext) error {
	bins := app.svc.ActorCountHistogram(app.ctx)
	rows := make([][]string, 0, len(bins))
	for _, b := range bins {
		rows = append(rows, []string{strconv.Itoa(b.ActorCount), strconv.Itoa(b.MovieCount)})
	}
	fmt.Print(render.Table([]string{"Number of Actors", "Movie Count"}, rows))
	return nil
}

// HeightsCmd prints the filtered height distribution with its summary
// statistics. Gender choices beyond "All" come from the character table
// itself; --list-genders shows them.
type HeightsCmd struct {
	Gender      string `default:"All" help:"Gender to filter by, or All."`
	Min         string `default:"0" help:"Minimum height (inclusive)."`
	Max         string `default:"300" help:"Maximum height (inclusive)."`
	ListGenders bool   `help:"Print the available gender values and exit."`
}

func (c *HeightsCmd) Run(app *appContext) error {
	if c.ListGenders {
		fmt.Println(corpus.GenderAll)
		for _, g := range app.svc.Data.Genders() {
			fmt.Println(g)
		}
		return nil
	}
	dist, err := app.svc.HeightDistribution(app.ctx, c.Gender, c.Min, c.Max)
	if err != nil {
		return err
	}
	fmt.Printf("Height distribution for %s: %d records\n", c.Gender, dist.Count)
	if dist.Count == 0 {
		return nil
	}
	fmt.Printf("mean=%.2f min=%.2f max=%.2f\n", dist.Mean, dist.Min, dist.Max)
	points := make([]render.BarPoint, 0, len(dist.Bins))
	for _, b := range dist.Bins {
		points = append(points, render.BarPoint{
			Label: strconv.FormatFloat(b.Center, 'f', 1, 64),
			Value: float64(b.Count),
		})
	}
	fmt.Print(render.BarChart("", points))
	return nil
}

var cli struct {
	Fetch   FetchCmd   `cmd:"" help:"Download and extract the dataset archive."`
	Genres  GenresCmd  `cmd:"" help:"Rank genres by frequency."`
	Actors  ActorsCmd  `cmd:"" help:"Histogram of actors per movie."`
	Heights HeightsCmd `cmd:"" help:"Actor height distribution with filters."`
}

// ensureDataset runs the idempotent provisioning step.
func ensureDataset(ctx context.Context, cfg *config.Config) error {
	fetcher, err := provision.NewFetcher(cfg.Download.RequestsPerSecond, cfg.Download.MaxRetries)
	if err != nil {
		return err
	}
	return fetcher.EnsureDataset(ctx, cfg.Dataset.ArchiveURL, cfg.Dataset.Dir, cfg.Dataset.MovieFile)
}

func main() {
	// A .env file may seed the config-selection environment variables for
	// local runs; its absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	telemetry.SetupLogging(telemetry.ParseLevel(cfg.Application.LogLevel))

	ctx := context.Background()
	shutdown, err := telemetry.SetupOpenTelemetry(ctx, cfg.Application.Name)
	if err != nil {
		slog.Error("telemetry setup failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("telemetry shutdown failed", "error", err)
		}
	}()

	kctx := kong.Parse(&cli,
		kong.Name("movies"),
		kong.Description("Aggregate analytics over the movie metadata corpus."))

	app := &appContext{ctx: ctx, cfg: cfg}
	if kctx.Command() != "fetch" {
		if err := ensureDataset(ctx, cfg); err != nil {
			slog.Error("provisioning failed", "error", err)
			os.Exit(1)
		}
		data, err := corpus.NewDataset(ctx, cfg.Dataset.MoviePath(), cfg.Dataset.CharacterPath())
		if err != nil {
			slog.Error("dataset load failed", "error", err)
			os.Exit(1)
		}
		app.svc = api.NewService(data)
	}

	if err := kctx.Run(app); err != nil {
		slog.Error("query failed", "error", err)
		os.Exit(1)
	}
}
