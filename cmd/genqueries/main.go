package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/JohnAutorola/recipe-chatbot/llm"
	"github.com/JohnAutorola/recipe-chatbot/synth"
	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
)

type config struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	Host     string `yaml:"host"`

	NumTuples       int `yaml:"num_tuples"`
	QueriesPerTuple int `yaml:"queries_per_tuple"`
	NumAmbiguous    int `yaml:"num_ambiguous"`
	NumAdversarial  int `yaml:"num_adversarial"`
	MaxWorkers      int `yaml:"max_workers"`

	OutputDir string `yaml:"output_dir"`
	LogLevel  string `yaml:"log_level"`
}

const configPath = "config.yaml"

func main() {
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return
	}

	logLevel := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	logger = logger.With(slog.String("run", uuid.NewString()))

	params := llm.Parameters{JSONOutput: true}

	var model llm.LLM
	switch strings.ToLower(cfg.Provider) {
	case "", "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Println("Error: OPENAI_API_KEY environment variable not set.")
			return
		}
		model = llm.NewOpenAI(apiKey, cfg.Model, params, logger)
	case "openai-compat":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Println("Error: OPENAI_API_KEY environment variable not set.")
			return
		}
		model = llm.NewOpenAICompat(cfg.Host, apiKey, cfg.Model, params, logger)
	case "ollama":
		model = llm.NewOllama(cfg.Host, cfg.Model, params, logger)
	default:
		fmt.Printf("Unknown provider %q in %s\n", cfg.Provider, configPath)
		return
	}

	generator := synth.NewGenerator(model, synth.Config{
		NumTuples:       cfg.NumTuples,
		QueriesPerTuple: cfg.QueriesPerTuple,
		NumAmbiguous:    cfg.NumAmbiguous,
		NumAdversarial:  cfg.NumAdversarial,
		Concurrency:     cfg.MaxWorkers,
		Backoff:         time.Second,
	}, logger)

	summary, err := generator.Run(cfg.OutputDir)
	if err != nil {
		if errors.Is(err, synth.ErrNoTuples) {
			fmt.Println("Failed to generate dimension tuples. Exiting.")
			return
		}
		fmt.Printf("Error generating queries: %v\n", err)
		return
	}

	fmt.Printf("Query generation completed in %.2f seconds.\n", summary.Elapsed.Seconds())
	fmt.Printf("Generated %d queries (%d regular, %d ambiguous, %d adversarial).\n",
		summary.Total, summary.Regular, summary.Ambiguous, summary.Adversarial)
	if summary.Path != "" {
		fmt.Printf("Saved to %s\n", summary.Path)
	}
}

func loadConfig(path string) (config, error) {
	cfg := config{
		Model:     "gpt-4o-mini",
		OutputDir: "data",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file means the defaults are used as-is.
			return cfg, nil
		}
		return cfg, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config file: %w", err)
	}

	if cfg.Model == "" {
		return cfg, errors.New("model must not be empty")
	}

	return cfg, nil
}
