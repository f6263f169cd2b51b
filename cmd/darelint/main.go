package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/pixeldare/darekit/pkg/challenge"
	"github.com/pixeldare/darekit/pkg/report"
	"github.com/pixeldare/darekit/pkg/scene"
)

func main() {
	scenePath := flag.String("scene", "", "scene snapshot JSON path")
	challengeTitle := flag.String("challenge", "", "challenge title to check against (first catalog entry if empty and -pick is not set)")
	catalogPath := flag.String("catalog", "", "catalog document path or URL (built-in catalog if empty)")
	format := flag.String("format", "text", "report format (text or html)")
	output := flag.String("output", "", "output file (stdout if empty)")
	pick := flag.Bool("pick", false, "pick the challenge interactively")
	flag.Parse()

	if *scenePath == "" {
		log.Fatal("darelint: -scene is required")
	}

	ctx := context.Background()

	catalog, err := loadCatalog(ctx, *catalogPath)
	if err != nil {
		log.Fatalf("darelint: load catalog: %v", err)
	}

	ch, err := selectChallenge(catalog, *challengeTitle, *pick)
	if err != nil {
		log.Fatalf("darelint: %v", err)
	}

	snap, err := loadSnapshot(*scenePath)
	if err != nil {
		log.Fatalf("darelint: load scene: %v", err)
	}

	renderer, err := report.DefaultRegistry().Get(*format)
	if err != nil {
		log.Fatalf("darelint: %v", err)
	}

	rep := report.Build(ch, snap)
	rendered, err := renderer.Render(ctx, rep)
	if err != nil {
		log.Fatalf("darelint: render report: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("darelint: write output: %v", err)
		}
	} else {
		fmt.Print(string(rendered))
	}

	if !rep.Clean() {
		os.Exit(1)
	}
}

func loadCatalog(ctx context.Context, location string) (challenge.Catalog, error) {
	if location == "" {
		return challenge.Defaults(), nil
	}
	loader := challenge.NewLoader(challenge.LoaderOptions{AllowHTTPFallback: true})
	return loader.LoadCatalog(ctx, parseSource(location))
}

func parseSource(raw string) challenge.Source {
	location := strings.TrimSpace(raw)
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return challenge.SourceFromURL(location)
	}
	return challenge.SourceFromFile(location)
}

func selectChallenge(catalog challenge.Catalog, title string, pick bool) (challenge.Challenge, error) {
	if title != "" {
		ch, ok := catalog.ByTitle(title)
		if !ok {
			return challenge.Challenge{}, fmt.Errorf("challenge %q not found in catalog", title)
		}
		return ch, nil
	}

	titles := catalog.Titles()
	if len(titles) == 0 {
		return challenge.Challenge{}, fmt.Errorf("catalog is empty")
	}
	if !pick {
		log.Printf("darelint: no -challenge given, checking against %q", titles[0])
		return catalog.Challenges[0], nil
	}

	var chosen string
	prompt := &survey.Select{
		Message: "Challenge to check against:",
		Options: titles,
	}
	if err := survey.AskOne(prompt, &chosen); err != nil {
		return challenge.Challenge{}, err
	}
	ch, _ := catalog.ByTitle(chosen)
	return ch, nil
}

func loadSnapshot(path string) (scene.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap scene.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}
