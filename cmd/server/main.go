// Command server exposes the LCS similarity metric over HTTP.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_lcs_similarity/internal/config"
	"github.com/baditaflorin/go_lcs_similarity/pkg/lcs"
)

var (
	similarity *lcs.Similarity
	logger     l.Logger
)

// Request represents a similarity computation request.
type Request struct {
	Original string `json:"original"`
	Suspect  string `json:"suspect"`
}

// Response represents a similarity computation response.
type Response struct {
	Score          float64                `json:"score"`
	Passed         bool                   `json:"passed"`
	LCSLength      int                    `json:"lcs_length"`
	OriginalTokens int                    `json:"original_tokens"`
	SuspectTokens  int                    `json:"suspect_tokens"`
	Threshold      float64                `json:"threshold"`
	Details        map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	configPath := flag.String("config", "", "TOML configuration file path")
	bind := flag.String("bind", "", "Listen address (overrides config)")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *bind != "" {
		cfg.Server.Bind = *bind
	}
	if *logFile != "" {
		cfg.Logging.File = *logFile
	}

	logger, err = createLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting LCS similarity server",
		"bind", cfg.Server.Bind,
		"threshold", cfg.Similarity.Threshold,
		"precision", cfg.Similarity.Precision,
	)

	opts := []lcs.Option{
		lcs.WithLogger(logger),
		lcs.WithOptimizedNormalizer(),
		lcs.WithThreshold(cfg.Similarity.Threshold),
		lcs.WithPrecision(cfg.Similarity.Precision),
	}
	if *warmUp {
		opts = append(opts, lcs.WithWarmUp(true))
	}

	similarity, err = lcs.New(opts...)
	if err != nil {
		logger.Error("Failed to initialize similarity calculator", "error", err)
		os.Exit(1)
	}

	server := &fasthttp.Server{
		Handler:            requestHandler,
		ReadTimeout:        time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:       time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		MaxRequestBodySize: cfg.Server.MaxRequestBytes,
		TCPKeepalive:       true,
		TCPKeepalivePeriod: 3 * time.Minute,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("Server listening", "address", cfg.Server.Bind)
	if err := server.ListenAndServe(cfg.Server.Bind); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// requestHandler is the main fasthttp request handler.
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "LCSSimilarityServer")

	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/similarity":
		handleSimilarity(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found")
	}

	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

// handleHealthCheck responds to health check requests.
func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleSimilarity handles similarity computation requests.
func handleSimilarity(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	var req Request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	// Empty documents are valid inputs and score 0, so no emptiness check here.
	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := similarity.Compute(c, req.Original, req.Suspect)

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, Response{
		Score:          result.Score,
		Passed:         result.Passed,
		LCSLength:      result.LCSLength,
		OriginalTokens: result.OriginalTokens,
		SuspectTokens:  result.SuspectTokens,
		Threshold:      result.Threshold,
		Details:        result.Details,
	})
}

// writeJSONResponse writes a JSON response to the context.
func writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}
	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context.
func writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}
	ctx.SetBody(response)
}

// createLogger creates and configures a logger.
func createLogger(cfg config.Logging) (l.Logger, error) {
	var output io.Writer = os.Stdout
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  cfg.JSON,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}
