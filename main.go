package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/TenKenZero/cronologia/config"
	"github.com/TenKenZero/cronologia/gemini"
	"github.com/TenKenZero/cronologia/graphics"
	"github.com/TenKenZero/cronologia/pipeline"
	"github.com/TenKenZero/cronologia/tts"
	"github.com/TenKenZero/cronologia/types"
)

func main() {
	// Load .env for local dev; deployed runs use real env vars.
	_ = godotenv.Load()

	debug := flag.Bool("debug", false, "enable debug mode")
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	topic := strings.TrimSpace(flag.Arg(0))
	if topic == "" {
		log.Println("Topic cannot be empty")
		fmt.Fprintln(os.Stderr, "usage: cronologia [flags] <topic>")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}
	cfg.Debug = *debug

	executionID := newExecutionID()
	log.Printf("Starting timeline video generation for topic: %s", topic)
	log.Printf("Execution ID: %s", executionID)

	exec, err := types.NewExecutionContext(cfg.Paths.Media, executionID)
	if err != nil {
		log.Printf("Failed to set up media directories: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()

	gen, err := gemini.New(cfg)
	if err != nil {
		log.Printf("Failed to configure Gemini client: %v", err)
		os.Exit(1)
	}
	synth, err := tts.New(ctx, cfg)
	if err != nil {
		log.Printf("Failed to initialize Text-to-Speech client: %v", err)
		os.Exit(1)
	}
	gfx := graphics.NewEngine(cfg)

	p := pipeline.New(cfg, gen, synth, gfx)
	result, err := p.Run(ctx, topic, exec)
	if err != nil {
		log.Printf("An error occurred during video generation: %v", err)
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	log.Printf("Video generation completed: %s", result)
	fmt.Printf("Timeline video generated successfully: %s\n", result)
}

// newExecutionID is a timestamp plus a short random suffix, so concurrent
// runs started in the same minute still get disjoint namespaces.
func newExecutionID() string {
	return time.Now().Format("0201061504") + "_" + uuid.NewString()[:8]
}
