// Command grouper bulk-enrolls contacts from a spreadsheet into a Telegram
// group, falling back to invite-link DMs when direct adds are blocked, and
// journals one outcome per contact.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgsession "github.com/gotd/td/session"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"grouper/internal/enroll"
	"grouper/internal/enroll/metrics"
	"grouper/internal/journal"
	amqpstore "grouper/internal/journal/store/amqp"
	"grouper/internal/journal/store/csvfile"
	"grouper/internal/journal/store/postgres"
	"grouper/internal/platform/config"
	"grouper/internal/platform/httpserver"
	"grouper/internal/platform/logger"
	"grouper/internal/platform/pacer"
	platformredis "grouper/internal/platform/redis"
	"grouper/internal/roster"
	"grouper/internal/schedule"
	"grouper/internal/telegram"
	sessionstore "grouper/internal/telegram/session"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		envFile    = flag.String("env-file", ".env", "env-style configuration file")
		groupRef   = flag.String("group", "", "target group: @handle, t.me link, invite link, or numeric ID")
		excelURL   = flag.String("excel-url", "", "download the roster workbook from this URL")
		excelPath  = flag.String("excel-path", "", "read the roster workbook from this path")
		phoneCol   = flag.String("phone-col", "", "workbook column holding phone numbers")
		region     = flag.String("region", "", "default phone region for numbers without a country code, e.g. US")
		inviteLink = flag.String("invite-link", "", "pre-minted invite link for fallback DMs")
		daily      = flag.Bool("daily", false, "run once a day at -at instead of immediately")
		at         = flag.String("at", "", "daily trigger time, HH:MM local")
	)
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		log.Error("load configuration", "error", err)
		os.Exit(1)
	}

	// Flags given on the command line beat every config source.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "group":
			cfg.Group.Ref = *groupRef
		case "excel-url":
			cfg.Source.ExcelURL = *excelURL
		case "excel-path":
			cfg.Source.ExcelPath = *excelPath
		case "phone-col":
			cfg.Source.PhoneColumn = *phoneCol
		case "region":
			cfg.Source.DefaultRegion = *region
		case "invite-link":
			cfg.Group.InviteLink = *inviteLink
		case "daily":
			cfg.Schedule.Daily = *daily
		case "at":
			cfg.Schedule.At = *at
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	m := metrics.New()

	store, sinkName, closeStore, err := openJournal(ctx, cfg.Journal)
	if err != nil {
		return err
	}
	defer closeStore()

	sessions, closeSessions, err := openSessions(ctx, cfg.Telegram)
	if err != nil {
		return err
	}
	defer closeSessions()

	runOnce := func(ctx context.Context) error {
		return enrollOnce(ctx, cfg, log, m, store, sessions, sinkName)
	}

	if !cfg.Schedule.Daily {
		return runOnce(ctx)
	}

	sched, err := schedule.NewDaily(cfg.Schedule.At, schedule.WithLogger(log))
	if err != nil {
		return err
	}
	srv := httpserver.New(cfg.Ops.Addr, httpserver.NewOpsRouter(prometheus.DefaultGatherer))

	fmt.Printf("Scheduled daily run at %s. Press Ctrl+C to exit.\n", cfg.Schedule.At)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sched.Run(gctx, runOnce)
	})
	g.Go(func() error {
		log.InfoContext(gctx, "ops server listening", "addr", cfg.Ops.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ops server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// enrollOnce performs one complete pass: load the roster, connect, sign in,
// and work through every phone. In daily mode it runs fresh per trigger so
// each day picks up the current spreadsheet.
func enrollOnce(ctx context.Context, cfg config.Config, log *slog.Logger, m *metrics.Metrics, store journal.Store, sessions tgsession.Storage, sinkName string) error {
	raws, err := loadRoster(ctx, cfg.Source)
	if err != nil {
		return err
	}
	phones := roster.Normalize(raws, cfg.Source.DefaultRegion)
	if len(phones) == 0 {
		return fmt.Errorf("no valid phone numbers in column %q", cfg.Source.PhoneColumn)
	}
	log.InfoContext(ctx, "roster loaded", "rows", len(raws), "phones", len(phones))

	client := telegram.NewClient(telegram.Credentials{
		AppID:   cfg.Telegram.APIID,
		AppHash: cfg.Telegram.APIHash,
		Phone:   cfg.Telegram.Phone,
	}, sessions)

	return client.Run(ctx, func(ctx context.Context) error {
		if err := telegram.SignIn(ctx, client, cfg.Telegram.Phone); err != nil {
			return err
		}

		pc := pacer.New(pacer.Config{
			BetweenAdds: cfg.Pacing.BetweenAdds,
			BetweenDMs:  cfg.Pacing.BetweenDMs,
			BatchEvery:  cfg.Pacing.BatchEvery,
			BatchSleep:  cfg.Pacing.BatchSleep,
		})

		wf, err := enroll.New(enroll.Config{
			GroupRef:   cfg.Group.Ref,
			InviteLink: cfg.Group.InviteLink,
			Template:   cfg.DM.Template,
		}, telegram.NewAdapter(client.API()), store, pc,
			enroll.WithLogger(log),
			enroll.WithMetrics(m),
		)
		if err != nil {
			return err
		}

		summary, err := wf.Run(ctx, phones)
		if err != nil {
			return err
		}

		fmt.Printf("Done. Added %d member(s). Logged %d rows to %s.\n", summary.Added, summary.Processed, sinkName)
		return nil
	})
}

func loadRoster(ctx context.Context, cfg config.SourceConfig) ([]string, error) {
	if cfg.ExcelURL != "" {
		return roster.FetchExcel(ctx, cfg.ExcelURL, cfg.PhoneColumn)
	}
	return roster.LoadExcel(cfg.ExcelPath, cfg.PhoneColumn)
}

// openJournal selects the primary outcome sink (PostgreSQL when a DSN is
// set, the append-only CSV file otherwise) and tees records to AMQP when a
// broker URL is configured.
func openJournal(ctx context.Context, cfg config.JournalConfig) (journal.Store, string, func(), error) {
	primary, sinkName, closePrimary, err := openPrimaryJournal(ctx, cfg)
	if err != nil {
		return nil, "", nil, err
	}
	if cfg.AMQPURL == "" {
		return primary, sinkName, closePrimary, nil
	}

	tee, err := amqpstore.New(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		closePrimary()
		return nil, "", nil, err
	}
	closeAll := func() {
		tee.Close()
		closePrimary()
	}
	return journal.Fanout{primary, tee}, sinkName, closeAll, nil
}

func openPrimaryJournal(ctx context.Context, cfg config.JournalConfig) (journal.Store, string, func(), error) {
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return nil, "", nil, fmt.Errorf("open journal db: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, "", nil, fmt.Errorf("ping journal db: %w", err)
		}
		store := postgres.New(db)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, "", nil, err
		}
		return store, "postgres", func() { db.Close() }, nil
	}

	store, err := csvfile.New(cfg.Path)
	if err != nil {
		return nil, "", nil, err
	}
	return store, cfg.Path, func() { store.Close() }, nil
}

// openSessions selects the MTProto session store: Redis when a URL is set,
// a local SQLite file otherwise.
func openSessions(ctx context.Context, cfg config.TelegramConfig) (tgsession.Storage, func(), error) {
	if cfg.SessionRedisURL != "" {
		client, err := platformredis.New(ctx, cfg.SessionRedisURL)
		if err != nil {
			return nil, nil, err
		}
		return sessionstore.NewRedis(client.Client), func() { client.Close() }, nil
	}

	store, err := sessionstore.OpenSQLite(cfg.SessionPath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { store.Close() }, nil
}
