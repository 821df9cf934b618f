// Command caustic renders one of the builtin demo scenes to a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"

	"github.com/caustic-rt/caustic/internal/upload"
	"github.com/caustic-rt/caustic/pkg/core"
	"github.com/caustic-rt/caustic/pkg/renderer"
	"github.com/caustic-rt/caustic/pkg/scene"
)

func main() {
	// Optional .env for output and S3 settings
	_ = godotenv.Load()

	output := flag.String("output", envOr("OUTPUT_DIR", "output"), "output directory")
	workers := flag.Int("workers", envIntOr("RAYTRACER_WORKERS", 0), "worker count (0 = all CPUs)")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <scene>\n\nScenes: %s\n\nFlags:\n",
			os.Args[0], strings.Join(scene.Names(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()

	sceneName := flag.Arg(0)
	if sceneName == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		renderer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var rnd core.Random
	if *seed != 0 {
		rnd = core.NewSeededRandom(*seed)
	} else {
		rnd = core.NewRandom()
	}

	sc, err := scene.Load(sceneName, rnd)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	bar := progressbar.NewOptions(1,
		progressbar.OptionSetDescription(fmt.Sprintf("rendering %s", sceneName)),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stderr),
	)

	r := renderer.NewRenderer(sc.Camera, sc.World, sc.Lights)
	r.Workers = *workers
	r.Progress = func(done, total int) {
		bar.ChangeMax(total)
		_ = bar.Set(done)
	}

	ctx := core.NewRenderContext(rnd)
	start := time.Now()
	img := r.Render(ctx)
	_ = bar.Finish()
	fmt.Fprintf(os.Stderr, "\nRendered %dx%d in %v\n",
		sc.Camera.ImageWidth, sc.Camera.ImageHeight, time.Since(start).Round(time.Millisecond))

	if err := os.MkdirAll(*output, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	filename := fmt.Sprintf("%s-%s.png", sceneName, time.Now().Format("20060102-150405"))
	path := filepath.Join(*output, filename)

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		log.Fatalf("Failed to encode PNG: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close output file: %v", err)
	}
	fmt.Printf("Saved %s\n", path)

	if cfg := upload.ConfigFromEnv(); cfg.Enabled() {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read render for upload: %v", err)
		}
		if err := upload.PNG(context.Background(), cfg, "renders/"+filename, data); err != nil {
			log.Fatalf("Failed to upload render: %v", err)
		}
		fmt.Printf("Uploaded renders/%s to bucket %s\n", filename, cfg.Bucket)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
