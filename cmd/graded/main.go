package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/edumate/autograder/internal/config"
	"github.com/edumate/autograder/internal/grading"
	"github.com/edumate/autograder/internal/grading/batch"
	"github.com/edumate/autograder/internal/semantic"
)

// input is the collaborator-supplied batch: questions with marking
// schemes, per-question submissions, and optionally whole tests.
type input struct {
	Questions       []batch.Question                  `json:"questions"`
	Submissions     []batch.Submission                `json:"submissions"`
	Tests           []batch.Test                      `json:"tests"`
	TestSubmissions map[string][]batch.TestSubmission `json:"test_submissions"`
	GradeThresholds grading.GradeThresholds           `json:"grade_thresholds"`
}

type output struct {
	Results     []batch.StudentResult         `json:"results"`
	Summary     batch.Summary                 `json:"summary"`
	TestResults map[string][]batch.TestResult `json:"test_results,omitempty"`
	TestStats   map[string]*batch.TestStats   `json:"test_statistics,omitempty"`
}

func main() {
	debug := flag.Bool("debug", false, "emit per-rule grading diagnostics to stderr")
	flag.Parse()

	cfg := config.FromEnv()
	ctx := context.Background()

	level := slog.LevelInfo
	if *debug || cfg.DebugGrading {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var in input
	if err := json.NewDecoder(os.Stdin).Decode(&in); err != nil {
		log.Fatalf("decode input: %v", err)
	}

	var enc semantic.Encoder
	switch cfg.Mode {
	case config.ModeOnline:
		g, err := semantic.NewGeminiEncoder(ctx, cfg.GeminiAPIKey, cfg.EmbedModel)
		if err != nil {
			log.Fatalf("embedding backend: %v", err)
		}
		defer g.Close()
		enc = g
	default:
		enc = semantic.NewLocalEncoder()
	}

	opts := []grading.Option{
		grading.WithThreshold(cfg.RuleThreshold),
		grading.WithLogger(logger),
	}
	if len(in.GradeThresholds) > 0 {
		opts = append(opts, grading.WithGradeThresholds(in.GradeThresholds))
	}
	engine := grading.NewEngine(enc, opts...)

	src := batch.NewMemorySource()
	for _, q := range in.Questions {
		if err := src.PutQuestion(q); err != nil {
			log.Fatalf("load question: %v", err)
		}
	}
	for _, s := range in.Submissions {
		src.AddSubmission(s)
	}
	for testID, subs := range in.TestSubmissions {
		for _, s := range subs {
			src.AddTestSubmission(testID, s)
		}
	}

	orch := batch.NewOrchestrator(engine, src, src,
		batch.WithWorkers(cfg.GradeWorkers),
		batch.WithOrchestratorLogger(logger),
	)

	results, summary, err := orch.GradeAll(ctx)
	if err != nil {
		log.Fatalf("grade batch: %v", err)
	}
	out := output{Results: results, Summary: summary}

	if len(in.Tests) > 0 {
		out.TestResults = map[string][]batch.TestResult{}
		out.TestStats = map[string]*batch.TestStats{}
		for _, t := range in.Tests {
			tr, tsum, err := orch.GradeTest(ctx, t)
			if err != nil {
				logger.Warn("test grading skipped", "test_id", t.ID, "err", err)
				continue
			}
			out.TestResults[t.ID] = tr
			out.TestStats[t.ID] = batch.TestStatistics(tr)
			out.Summary.Processed += tsum.Processed
			out.Summary.Skipped += tsum.Skipped
		}
	}

	encOut := json.NewEncoder(os.Stdout)
	encOut.SetIndent("", "  ")
	if err := encOut.Encode(out); err != nil {
		log.Fatalf("encode output: %v", err)
	}
}
