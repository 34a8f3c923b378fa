package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"amortizer/config"
	"amortizer/domain"
	"amortizer/logger"
	"amortizer/report"
	"amortizer/repository"
	"amortizer/service"
)

const redisPingTimeout = 2 * time.Second

// app carries what every command needs once configuration is loaded.
type app struct {
	cfg     *config.Config
	svc     *service.LoanService
	closers []io.Closer
}

func newApp(ctx context.Context, cfg *config.Config) *app {
	a := &app{cfg: cfg}
	a.svc = service.NewLoanService(repository.NewLoanRepositoryMemory(), a.newCache(ctx))
	return a
}

func (a *app) newCache(ctx context.Context) repository.CacheRepository {
	if a.cfg.CacheBackend == config.CacheBackendRedis {
		rc := repository.NewRedisCache(a.cfg.RedisAddr, a.cfg.CacheTTL)
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		err := rc.Ping(pingCtx)
		if err == nil {
			a.closers = append(a.closers, rc)
			return rc
		}
		slog.Warn("redis unavailable, using in-memory cache", "addr", a.cfg.RedisAddr, "error", err)
		_ = rc.Close()
	}
	return repository.NewLRUCache(a.cfg.CacheSize, a.cfg.CacheTTL)
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			slog.Warn("failed to close resource", "error", err)
		}
	}
}

// writeTable writes the schedule file and opens the configured viewer.
func (a *app) writeTable(out io.Writer) TableWriter {
	return func(ctx context.Context, terms domain.LoanTerms) error {
		if err := report.WriteFile(a.cfg.TableFile, terms); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nAmortization table written to %s\n", a.cfg.TableFile)
		if err := report.OpenViewer(ctx, a.cfg.TableViewer, a.cfg.TableFile); err != nil {
			logger.FromContext(ctx).Warn("could not open table viewer", "error", err)
		}
		return nil
	}
}
