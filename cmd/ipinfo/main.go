package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"ipinfo"
	"ipinfo/cache"
	"ipinfo/internal/stats"
	"ipinfo/refdata"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	token := flag.String("token", "", "API token (defaults to IPINFO_TOKEN from the environment or .env)")
	apiFlag := flag.String("api", "core", "endpoint family: core, lite, plus, or resproxy")
	field := flag.String("field", "", "fetch one field of the record instead of the full record")
	tablesPath := flag.String("tables", "", "reference-table override file (.yaml, .json, or .plist)")
	cacheSpec := flag.String("cache", "memory", "cache backend: memory, none, pebble:DIR, sqlite:FILE, or redis:ADDR")
	timeout := flag.Duration("timeout", ipinfo.DefaultRequestTimeout, "per-request timeout")
	cacheTTL := flag.Duration("cache-ttl", ipinfo.DefaultCacheTTL, "cache entry lifetime")
	batchSize := flag.Int("batch-size", ipinfo.BatchMaxSize, "targets per batch request")
	batchTimeout := flag.Duration("batch-timeout", ipinfo.DefaultBatchTimeout, "per-chunk batch timeout")
	totalTimeout := flag.Duration("total-timeout", 0, "overall batch deadline, 0 for none")
	concurrency := flag.Int("concurrency", 0, "concurrent batch requests, 0 for unlimited")
	failFast := flag.Bool("fail-fast", false, "abort the whole batch on the first chunk failure")
	showStats := flag.Bool("stats", false, "print lookup counters to stderr when done")
	flag.Parse()

	_ = godotenv.Load(".env")
	if *token == "" {
		*token = os.Getenv("IPINFO_TOKEN")
	}

	cfg := &ipinfo.Config{
		RequestTimeout: *timeout,
		CacheTTL:       *cacheTTL,
	}
	if *tablesPath != "" {
		tables, err := refdata.LoadFile(*tablesPath)
		if err != nil {
			return fmt.Errorf("load tables: %w", err)
		}
		cfg.Tables = tables
	}
	closeCache, err := configureCache(cfg, *cacheSpec, *cacheTTL)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer closeCache()

	client := ipinfo.NewClient(*token, cfg)
	opts := &ipinfo.BatchOptions{
		BatchSize:       *batchSize,
		TimeoutPerBatch: *batchTimeout,
		TimeoutTotal:    *totalTimeout,
		Concurrency:     *concurrency,
		FailFast:        *failFast,
	}

	out, err := lookup(context.Background(), client, *apiFlag, *field, flag.Args(), opts)
	if err != nil {
		return err
	}
	if err := printJSON(out); err != nil {
		return err
	}

	if *showStats {
		printStats(client.Stats())
	}
	return nil
}

// lookup picks the endpoint family and the single-versus-batch path
// from the parsed flags and positional targets.
func lookup(ctx context.Context, client *ipinfo.Client, api, field string, targets []string, opts *ipinfo.BatchOptions) (any, error) {
	if field != "" {
		if api != "core" {
			return nil, fmt.Errorf("-field is only available on the core API")
		}
		if len(targets) > 1 {
			return nil, fmt.Errorf("-field takes at most one target; use ip/field targets in batch mode")
		}
		target := ""
		if len(targets) == 1 {
			target = targets[0]
		}
		return client.GetField(ctx, target, field)
	}

	if len(targets) > 1 {
		var (
			batch ipinfo.Batch
			err   error
		)
		switch api {
		case "core":
			batch, err = client.GetBatch(ctx, targets, opts)
		case "plus":
			batch, err = client.GetPlusBatch(ctx, targets, opts)
		case "resproxy":
			batch, err = client.GetResproxyBatch(ctx, targets, opts)
		case "lite":
			return nil, fmt.Errorf("the lite API has no batch endpoint; look addresses up one at a time")
		default:
			return nil, fmt.Errorf("unknown api %q", api)
		}
		if err != nil {
			return nil, err
		}
		return renderBatch(batch), nil
	}

	target := ""
	if len(targets) == 1 {
		target = targets[0]
	}
	switch api {
	case "core":
		return client.GetDetails(ctx, target)
	case "lite":
		return client.GetLiteDetails(ctx, target)
	case "plus":
		return client.GetPlusDetails(ctx, target)
	case "resproxy":
		return client.GetResproxy(ctx, target)
	default:
		return nil, fmt.Errorf("unknown api %q", api)
	}
}

// renderBatch flattens batch items for JSON output, folding per-target
// errors into {"error": ...} entries.
func renderBatch(batch ipinfo.Batch) map[string]any {
	out := make(map[string]any, len(batch))
	for target, item := range batch {
		switch {
		case item.Err != nil:
			out[target] = map[string]any{"error": item.Err.Error()}
		case item.Details != nil:
			out[target] = item.Details
		default:
			out[target] = item.Value
		}
	}
	return out
}

func configureCache(cfg *ipinfo.Config, spec string, ttl time.Duration) (func(), error) {
	kind, arg, _ := strings.Cut(spec, ":")
	switch kind {
	case "", "memory":
		return func() {}, nil
	case "none":
		cfg.NoCache = true
		return func() {}, nil
	case "pebble":
		p, err := cache.OpenPebble(arg, cache.PebbleOptions{DefaultTTL: ttl})
		if err != nil {
			return nil, err
		}
		cfg.Cache = p
		return func() { _ = p.Close() }, nil
	case "sqlite":
		s, err := cache.OpenSQLite(arg, ttl)
		if err != nil {
			return nil, err
		}
		cfg.Cache = s
		return func() { _ = s.Close() }, nil
	case "redis":
		r := cache.NewRedis(redis.NewClient(&redis.Options{Addr: arg}), ttl)
		cfg.Cache = r
		return func() { _ = r.Close() }, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", spec)
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printStats(s stats.Snapshot) {
	fmt.Fprintf(os.Stderr, "requests: %s (%s failed), cache hits: %s, misses: %s, bogons: %s, batch calls: %s\n",
		humanize.Comma(int64(s.Requests)),
		humanize.Comma(int64(s.Failures)),
		humanize.Comma(int64(s.CacheHits)),
		humanize.Comma(int64(s.CacheMisses)),
		humanize.Comma(int64(s.Bogons)),
		humanize.Comma(int64(s.Batches)))
}
