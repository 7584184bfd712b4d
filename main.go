package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"auto_x_tweet_publisher/format"
	"auto_x_tweet_publisher/generator"
	"auto_x_tweet_publisher/note"
	"auto_x_tweet_publisher/publisher"
)

// Exit codes per failure class so wrapper scripts can tell the stages apart.
const (
	exitOK       = 0
	exitFailure  = 1
	exitConfig   = 2
	exitInput    = 3
	exitUpstream = 4
	exitFormat   = 5
	exitPublish  = 6
)

const stepTimeout = 60 * time.Second

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env file: %v", err)
	}
	os.Exit(run(os.Stdout))
}

func run(out io.Writer) int {
	cfg, err := publisher.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitConfig
	}

	llm, err := buildLLM(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitConfig
	}
	agent, err := generator.NewAgent(llm)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitConfig
	}

	n, err := note.Load(cfg.NotePath)
	if err != nil {
		return fail(err)
	}
	log.Printf("[cli] loaded note %s day=%d", cfg.NotePath, n.Day)

	ctx, cancel := context.WithTimeout(context.Background(), stepTimeout)
	draft, err := agent.GenerateTweet(ctx, n)
	cancel()
	if err != nil {
		return fail(err)
	}

	post, err := format.PostProcess(draft, format.TweetOptions(), cfg.DryRun)
	if err != nil {
		return fail(err)
	}

	if cfg.LinkedInPreview {
		ctx, cancel = context.WithTimeout(context.Background(), stepTimeout)
		liDraft, liErr := agent.GenerateLinkedIn(ctx, n)
		cancel()
		if liErr != nil {
			return fail(liErr)
		}
		liPost, liErr := format.PostProcess(liDraft, format.LinkedInOptions(), true)
		if liErr != nil {
			return fail(liErr)
		}
		fmt.Fprintf(out, "\n--- LINKEDIN POST PREVIEW ---\n\n%s\n\n--------------------\n\n", liPost.Body)
	}

	p, err := publisher.New(cfg, nil, out, cfg.Verbose, log.Default())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitConfig
	}

	ctx, cancel = context.WithTimeout(context.Background(), stepTimeout)
	res, err := p.Publish(ctx, post)
	cancel()
	if err != nil {
		return fail(err)
	}

	if res.Preview {
		log.Printf("[cli] dry run complete, nothing was posted")
	} else {
		log.Printf("[cli] tweet posted id=%s", res.ID)
		fmt.Fprintln(out, res.ID)
	}
	return exitOK
}

func fail(err error) int {
	fmt.Fprintln(os.Stderr, err)
	return exitCode(err)
}

// exitCode maps the failure taxonomy onto distinct process exit codes.
func exitCode(err error) int {
	var (
		inputErr    *note.InputError
		upstreamErr *generator.UpstreamError
		formatErr   *format.FormatError
		publishErr  *publisher.PublishError
	)
	switch {
	case errors.As(err, &inputErr):
		return exitInput
	case errors.As(err, &upstreamErr):
		return exitUpstream
	case errors.As(err, &formatErr):
		return exitFormat
	case errors.As(err, &publishErr):
		return exitPublish
	default:
		return exitFailure
	}
}

func buildLLM(cfg publisher.Config) (generator.LLMClient, error) {
	if cfg.LLM == nil || cfg.LLM.Provider == "" {
		return nil, fmt.Errorf("llm config missing; set LLM_PROVIDER or rely on the gemini default")
	}
	settings := &generator.LLMSettings{
		Model:   cfg.LLM.Model,
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
	}
	switch cfg.LLM.Provider {
	case "gemini":
		return generator.NewGeminiLLMFromConfig(settings)
	case "openai":
		return generator.NewOpenAILLMFromConfig(settings)
	case "deepseek":
		// DeepSeek serves an OpenAI-compatible interface; the base URL must point at it.
		if cfg.LLM.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires LLM_BASE_URL (OpenAI-compatible endpoint)")
		}
		return generator.NewOpenAILLMFromConfig(settings)
	case "mock":
		return generator.MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}
