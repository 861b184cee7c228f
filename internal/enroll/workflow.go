package enroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"grouper/internal/enroll/metrics"
	"grouper/internal/enroll/models"
	"grouper/internal/enroll/ports"
	"grouper/internal/journal"
	"grouper/internal/platform/pacer"
	"grouper/pkg/platform/sentinel"
)

// Config carries the per-run inputs for a workflow.
type Config struct {
	// GroupRef is the operator-supplied group reference. It is also the
	// {group} label in fallback DMs.
	GroupRef string
	// InviteLink, when set, is used verbatim instead of exporting one.
	InviteLink string
	// Template is the fallback DM text with {first}, {group} and {link}
	// placeholders.
	Template string
}

// Workflow drives contacts through account discovery, the add attempt and
// the fallback DM, appending exactly one journal record per contact.
type Workflow struct {
	cfg      Config
	platform ports.Platform
	journal  journal.Store
	pacer    *pacer.Pacer
	logger   *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

type Option func(*Workflow)

func WithLogger(logger *slog.Logger) Option {
	return func(w *Workflow) { w.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(w *Workflow) { w.metrics = m }
}

// WithClock overrides the record timestamp source.
func WithClock(now func() time.Time) Option {
	return func(w *Workflow) { w.now = now }
}

func New(cfg Config, platform ports.Platform, store journal.Store, pc *pacer.Pacer, opts ...Option) (*Workflow, error) {
	if platform == nil {
		return nil, errors.New("platform is required")
	}
	if store == nil {
		return nil, errors.New("journal store is required")
	}
	if pc == nil {
		return nil, errors.New("pacer is required")
	}

	w := &Workflow{
		cfg:      cfg,
		platform: platform,
		journal:  store,
		pacer:    pc,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run executes one enrollment pass over phones: resolve the group once,
// verify channel access, secure the invite link, then process every contact
// sequentially. The returned summary covers whatever was appended before
// return; a non-nil error means the run aborted.
func (w *Workflow) Run(ctx context.Context, phones []string) (journal.Summary, error) {
	summary := journal.Summary{RunID: uuid.New()}

	group, err := NewResolver(w.platform, w.platform).Resolve(ctx, w.cfg.GroupRef)
	if err != nil {
		return summary, err
	}
	if group.Kind == models.GroupKindChannel {
		if err := w.platform.InspectChannel(ctx, group); err != nil {
			return summary, fmt.Errorf("cannot access group %q, admin rights may be missing: %w", w.cfg.GroupRef, err)
		}
	}

	link := EnsureInviteLink(ctx, w.platform, group, w.cfg.InviteLink)
	if link == "" && w.logger != nil {
		w.logger.WarnContext(ctx, "no invite link available, fallback DMs will omit the link")
	}
	if w.logger != nil {
		w.logger.InfoContext(ctx, "group resolved",
			"run_id", summary.RunID,
			"title", group.Title,
			"kind", string(group.Kind),
			"contacts", len(phones),
		)
	}

	for _, phone := range phones {
		rec, err := w.processContact(ctx, summary.RunID, group, link, phone)
		if err != nil {
			// Canceled mid-contact; nothing is recorded for it.
			return summary, err
		}
		if err := w.journal.Append(ctx, rec); err != nil {
			return summary, fmt.Errorf("append journal record for %s: %w", phone, err)
		}
		summary.Count(rec)
		w.observe(rec)
		if w.logger != nil {
			w.logger.InfoContext(ctx, "contact processed",
				"phone", rec.Phone,
				"status", rec.Status,
				"dm_status", rec.DMStatus,
			)
		}
		if err := w.pacer.AfterContact(ctx); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// processContact walks one phone through the state machine and returns its
// record. A non-nil error means the run was canceled and the record must
// not be appended.
func (w *Workflow) processContact(ctx context.Context, runID uuid.UUID, group *models.ResolvedGroup, link, phone string) (journal.Record, error) {
	rec := journal.Record{RunID: runID, Timestamp: w.now().UTC(), Phone: phone}

	acct, err := w.platform.ImportContact(ctx, phone)
	switch {
	case err == nil:
	case errors.Is(err, sentinel.ErrNotFound):
		rec.Status = journal.StatusNotOnPlatform
		return rec, nil
	default:
		if cerr := ctx.Err(); cerr != nil {
			return rec, cerr
		}
		rec.Status = classifyUnexpected(err)
		rec.Note = err.Error()
		return rec, nil
	}

	rec.UserID = strconv.FormatInt(acct.ID, 10)
	rec.Username = acct.Username

	status, err := w.attemptAdd(ctx, group, acct)
	if err != nil {
		return rec, err
	}
	rec.Status = status
	if rec.Status == journal.StatusAdded || rec.Status == journal.StatusAlreadyMember {
		return rec, nil
	}

	if err := w.pacer.BeforeDM(ctx); err != nil {
		return rec, err
	}
	text := renderDM(w.cfg.Template, acct.FirstName, w.cfg.GroupRef, link)
	dmErr := w.platform.SendDirect(ctx, acct, text)
	if dmErr != nil && ctx.Err() != nil {
		return rec, ctx.Err()
	}
	rec.DMStatus = classifyDM(dmErr)
	return rec, nil
}

// attemptAdd runs the membership probe and the kind-appropriate add. A
// failed probe means "assume not a member" and the add proceeds. The error
// return is reserved for cancellation.
func (w *Workflow) attemptAdd(ctx context.Context, group *models.ResolvedGroup, acct *models.Account) (string, error) {
	if member, err := w.platform.IsMember(ctx, group, acct); err == nil && member {
		return journal.StatusAlreadyMember, nil
	}
	err := w.platform.Add(ctx, group, acct)
	if err != nil && ctx.Err() != nil {
		return "", ctx.Err()
	}
	return classifyAdd(err), nil
}

func (w *Workflow) observe(rec journal.Record) {
	if w.metrics == nil {
		return
	}
	w.metrics.IncrementContactsProcessed()
	if rec.Status == journal.StatusAdded {
		w.metrics.IncrementMembersAdded()
	}
	if rec.DMStatus == journal.DMStatusSent {
		w.metrics.IncrementDMsSent()
	}
	if isFloodSignal(rec.Status) || isFloodSignal(rec.DMStatus) {
		w.metrics.IncrementFloodSignals()
	}
}

func isFloodSignal(status string) bool {
	return strings.Contains(status, "peer_flood") || strings.Contains(status, "rate_limited")
}
