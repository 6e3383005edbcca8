package synth

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	recipechatbot "github.com/JohnAutorola/recipe-chatbot"
	"github.com/JohnAutorola/recipe-chatbot/llm"
	"github.com/cespare/xxhash"
	"golang.org/x/sync/errgroup"
)

// Config controls the volume and concurrency of a generation run. The zero
// value of any field falls back to the default used by the evaluation suite.
type Config struct {
	// NumTuples is the number of dimension tuples requested from the model.
	// The post-dedup count may be lower.
	NumTuples int
	// QueriesPerTuple is the query count requested per dimension tuple.
	QueriesPerTuple int
	NumAmbiguous    int
	NumAdversarial  int
	// Concurrency bounds the number of in-flight model calls during the
	// regular-query fan-out. Every other stage is sequential.
	Concurrency int
	// MaxAttempts and Backoff parameterize the retry loop around every
	// structured model call.
	MaxAttempts int
	Backoff     time.Duration
	// OutputBaseName is the filename stem of the persisted CSV artifact.
	OutputBaseName string
}

const (
	defaultNumTuples       = 10
	defaultQueriesPerTuple = 5
	defaultNumAmbiguous    = 15
	defaultNumAdversarial  = 3
	defaultConcurrency     = 5
	defaultOutputBaseName  = "synthetic_queries_for_analysis"
)

func (c Config) withDefaults() Config {
	if c.NumTuples == 0 {
		c.NumTuples = defaultNumTuples
	}
	if c.QueriesPerTuple == 0 {
		c.QueriesPerTuple = defaultQueriesPerTuple
	}
	if c.NumAmbiguous == 0 {
		c.NumAmbiguous = defaultNumAmbiguous
	}
	if c.NumAdversarial == 0 {
		c.NumAdversarial = defaultNumAdversarial
	}
	if c.Concurrency == 0 {
		c.Concurrency = defaultConcurrency
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = defaultMaxAttempts
	}
	if c.Backoff == 0 {
		c.Backoff = defaultBackoff
	}
	if c.OutputBaseName == "" {
		c.OutputBaseName = defaultOutputBaseName
	}
	return c
}

// Generator runs the synthetic query pipeline against a language model.
type Generator struct {
	llm    llm.LLM
	cfg    Config
	logger *slog.Logger
}

// NewGenerator creates a Generator with the given model and configuration.
func NewGenerator(model llm.LLM, cfg Config, logger *slog.Logger) Generator {
	return Generator{
		llm:    model,
		cfg:    cfg.withDefaults(),
		logger: logger.With(slog.String("module", "synth")),
	}
}

// Summary reports what a completed run produced.
type Summary struct {
	// Path of the persisted CSV artifact. Empty when nothing was generated
	// and no file was written.
	Path        string
	Total       int
	Regular     int
	Ambiguous   int
	Adversarial int
	Elapsed     time.Duration
}

// Run executes the full pipeline: dimension tuples, regular queries fanned
// out per tuple, ambiguous and adversarial queries, then merge, shuffle, and
// persist under outDir. The tuple stage coming back empty is the only fatal
// condition; every other stage degrades to a smaller output.
func (g Generator) Run(outDir string) (Summary, error) {
	start := time.Now()

	g.logger.Info("Generating dimension tuples", "target", g.cfg.NumTuples)
	tuples := g.GenerateTuples()
	if len(tuples) == 0 {
		return Summary{}, ErrNoTuples
	}
	g.logger.Info("Generated dimension tuples", "count", len(tuples))

	regular := g.GenerateRegular(tuples)
	if len(regular) == 0 {
		g.logger.Warn("Regular stage produced no queries, continuing with other categories")
	}

	g.logger.Info("Generating ambiguous queries", "target", g.cfg.NumAmbiguous)
	ambiguous := g.GenerateAmbiguous()

	g.logger.Info("Generating adversarial queries", "target", g.cfg.NumAdversarial)
	adversarial := g.GenerateAdversarial()

	records := make([]QueryRecord, 0, len(regular)+len(ambiguous)+len(adversarial))
	records = append(records, regular...)
	records = append(records, ambiguous...)
	records = append(records, adversarial...)

	// Shuffle so the persisted order carries no categorical clustering.
	shuffleRecords(records)

	if len(records) == 0 {
		g.logger.Warn("No queries were generated, skipping persistence")
		return Summary{Elapsed: time.Since(start)}, nil
	}

	path, err := OutputPath(outDir, g.cfg.OutputBaseName)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to compute output path: %w", err)
	}
	if err := WriteCSV(path, records, g.logger); err != nil {
		return Summary{}, fmt.Errorf("failed to write queries: %w", err)
	}

	return Summary{
		Path:        path,
		Total:       len(records),
		Regular:     len(regular),
		Ambiguous:   len(ambiguous),
		Adversarial: len(adversarial),
		Elapsed:     time.Since(start),
	}, nil
}

// GenerateTuples issues one structured call for scenario descriptors and
// dedupes the result by canonical serialization, keeping the first
// occurrence. A failed call is logged and yields an empty slice, which Run
// escalates to ErrNoTuples.
func (g Generator) GenerateTuples() []DimensionTuple {
	prompt, err := renderPrompt("dimension-tuples", tuplesPrompt, tuplesPromptData{
		Count:      g.cfg.NumTuples,
		Dimensions: dimensionExplanation,
	})
	if err != nil {
		g.logger.Error("Failed to render tuples prompt", "error", err)
		return nil
	}

	conv := recipechatbot.NewConversation(generatorInstruction).WithUser(prompt)

	batch, err := structuredCall[tupleBatch](g.llm, conv, g.cfg.MaxAttempts, g.cfg.Backoff, g.logger)
	if err != nil {
		g.logger.Error("Failed to generate dimension tuples", "error", err)
		return nil
	}

	seen := make(map[uint64]struct{}, len(batch.Tuples))
	unique := make([]DimensionTuple, 0, len(batch.Tuples))
	for _, tuple := range batch.Tuples {
		key := xxhash.Sum64String(tuple.Canonical())
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, tuple)
	}

	if dropped := len(batch.Tuples) - len(unique); dropped > 0 {
		g.logger.Info("Dropped duplicate tuples", "count", dropped)
	}

	return unique
}

// GenerateRegular fans out one model call per tuple over a bounded worker
// pool and assembles the records in the single collecting loop, in task
// completion order. A failing task is logged and contributes zero records;
// its siblings are unaffected.
func (g Generator) GenerateRegular(tuples []DimensionTuple) []QueryRecord {
	g.logger.Info("Generating regular queries", "tuples", len(tuples), "perTuple", g.cfg.QueriesPerTuple)

	type taskResult struct {
		tupleIdx int
		queries  []string
		err      error
	}

	eg := new(errgroup.Group)
	// Semaphore to limit concurrent LLM calls
	sem := make(chan struct{}, g.cfg.Concurrency)
	results := make(chan taskResult)

	for i, tuple := range tuples {
		eg.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			queries, err := g.queriesForTuple(tuple)
			results <- taskResult{tupleIdx: i, queries: queries, err: err}
			return nil
		})
	}

	go func() {
		// Workers never return an error; failures travel inside taskResult.
		_ = eg.Wait()
		close(results)
	}()

	// Record assembly stays on this single goroutine so the sequence
	// counter needs no locking.
	records := make([]QueryRecord, 0, len(tuples)*g.cfg.QueriesPerTuple)
	seq := 0
	for res := range results {
		if res.err != nil {
			g.logger.Error("Failed to generate queries for tuple", "tuple", res.tupleIdx+1, "error", res.err)
			continue
		}

		tuple := tuples[res.tupleIdx]
		for _, query := range res.queries {
			seq++
			records = append(records, QueryRecord{
				ID:       fmt.Sprintf("SYN%03d", seq),
				Query:    query,
				Tuple:    &tuple,
				Category: CategoryRegular,
				Kept:     true,
			})
		}

		g.logger.Info("Collected queries for tuple", "tuple", res.tupleIdx+1, "count", len(res.queries))
	}

	return records
}

func (g Generator) queriesForTuple(tuple DimensionTuple) ([]string, error) {
	prompt, err := renderPrompt("regular-queries", regularQueriesPrompt, regularQueriesPromptData{
		Count: g.cfg.QueriesPerTuple,
		Tuple: tuple.Canonical(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render regular queries prompt: %w", err)
	}

	conv := recipechatbot.NewConversation(generatorInstruction).WithUser(prompt)

	batch, err := structuredCall[queryBatch](g.llm, conv, g.cfg.MaxAttempts, g.cfg.Backoff, g.logger)
	if err != nil {
		return nil, err
	}

	return batch.Queries, nil
}

// GenerateAmbiguous issues one structured call for unclear or multi-intent
// queries. Failure degrades to an empty slice.
func (g Generator) GenerateAmbiguous() []QueryRecord {
	return g.generateTupleless(CategoryAmbiguous, "AMB", ambiguousQueriesPrompt, g.cfg.NumAmbiguous)
}

// GenerateAdversarial issues one structured call for boundary-testing
// queries framed in a kitchen context. Failure degrades to an empty slice.
func (g Generator) GenerateAdversarial() []QueryRecord {
	return g.generateTupleless(CategoryAdversarial, "ADV", adversarialQueriesPrompt, g.cfg.NumAdversarial)
}

func (g Generator) generateTupleless(category Category, idPrefix, promptTemplate string, count int) []QueryRecord {
	prompt, err := renderPrompt(string(category)+"-queries", promptTemplate, countPromptData{Count: count})
	if err != nil {
		g.logger.Error("Failed to render queries prompt", "category", category, "error", err)
		return nil
	}

	conv := recipechatbot.NewConversation(generatorInstruction).WithUser(prompt)

	batch, err := structuredCall[queryBatch](g.llm, conv, g.cfg.MaxAttempts, g.cfg.Backoff, g.logger)
	if err != nil {
		g.logger.Error("Failed to generate queries", "category", category, "error", err)
		return nil
	}

	records := make([]QueryRecord, 0, len(batch.Queries))
	for i, query := range batch.Queries {
		records = append(records, QueryRecord{
			ID:       fmt.Sprintf("%s%03d", idPrefix, i+1),
			Query:    query,
			Category: category,
			Kept:     true,
		})
	}

	return records
}

func shuffleRecords(records []QueryRecord) {
	rand.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})
}
