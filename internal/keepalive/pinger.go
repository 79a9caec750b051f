package keepalive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/robfig/cron/v3"
	"github.com/set-night/vetbot/internal/config"
)

// Pinger periodically requests a URL so the hosting platform keeps the
// process awake.
type Pinger struct {
	url        string
	schedule   string
	httpClient *http.Client
}

func NewPinger(url, schedule string, httpClient *http.Client) *Pinger {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.SelfPingTimeout}
	}
	return &Pinger{url: url, schedule: schedule, httpClient: httpClient}
}

// Ping performs one request and fails on a non-2xx status.
func (p *Pinger) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return fmt.Errorf("create ping request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ping %s: %w", p.url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("ping %s: unexpected status %d", p.url, resp.StatusCode)
	}
	return nil
}

// Run schedules Ping until ctx is cancelled.
func (p *Pinger) Run(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(p.schedule, func() {
		if err := p.Ping(ctx); err != nil {
			slog.Warn("self ping failed", "error", err)
			return
		}
		slog.Debug("self ping ok", "url", p.url)
	}); err != nil {
		return fmt.Errorf("schedule self ping %q: %w", p.schedule, err)
	}

	c.Start()
	slog.Info("self pinger started", "url", p.url, "schedule", p.schedule)

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
