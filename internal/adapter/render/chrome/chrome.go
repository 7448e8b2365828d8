// Package chrome renders pages in a headless Chrome driven over the DevTools protocol.
package chrome

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"golang.org/x/sync/semaphore"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/render"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/metrics"
)

type Config struct {
	Headless         bool
	ExecPath         string
	UserDataDir      string
	ProfileDirectory string
	UserAgent        string

	// RequestTimeout bounds one Render call, marker wait included.
	RequestTimeout time.Duration
}

type Renderer struct {
	cfg Config
	log logger.Logger

	// profile admits one session at a time when UserDataDir is set: Chrome
	// hands a second launch on the same dir over to the running process.
	profile *semaphore.Weighted
}

func New(cfg Config, log logger.Logger) *Renderer {
	r := &Renderer{cfg: cfg, log: log}
	if cfg.UserDataDir != "" {
		r.profile = semaphore.NewWeighted(1)
	}
	return r
}

// lockProfile waits for the user data dir. The returned release is safe to
// call more than once.
func (r *Renderer) lockProfile(ctx context.Context) (func(), error) {
	if r.profile == nil {
		return func() {}, nil
	}
	if err := r.profile.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("%w: wait for browser profile: %v", types.ErrRenderFailed, err)
	}
	var once sync.Once
	return func() { once.Do(func() { r.profile.Release(1) }) }, nil
}

func (r *Renderer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", r.cfg.Headless),
		chromedp.DisableGPU,
		chromedp.NoSandbox,
	)
	if r.cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.cfg.ExecPath))
	}
	if r.cfg.UserDataDir != "" {
		opts = append(opts, chromedp.UserDataDir(r.cfg.UserDataDir))
	}
	if r.cfg.ProfileDirectory != "" {
		opts = append(opts, chromedp.Flag("profile-directory", r.cfg.ProfileDirectory))
	}
	if r.cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(r.cfg.UserAgent))
	}
	return opts
}

// Open starts a browser process with one tab.
func (r *Renderer) Open(ctx context.Context) (render.Session, error) {
	ctx = wrap.WithAction(ctx, types.ActionRenderPage)

	release, err := r.lockProfile(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.WithoutCancel(ctx), r.allocatorOptions()...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithErrorf(r.cdpErrorf))

	// an empty Run launches the browser so start-up failures surface here
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		cancelAlloc()
		release()
		return nil, wrap.Error(ctx, fmt.Errorf("%w: start browser: %v", types.ErrRenderFailed, err))
	}

	metrics.RenderSessionsInUse.Inc()
	r.log.Debug(ctx, "browser session opened")

	return &session{
		tabCtx: tabCtx,
		cancel: func() {
			cancelTab()
			cancelAlloc()
			release()
		},
		timeout: r.cfg.RequestTimeout,
		log:     r.log,
	}, nil
}

// cdpErrorf receives protocol errors chromedp cannot attribute to an action,
// mostly unknown event types from newer browsers.
func (r *Renderer) cdpErrorf(format string, args ...any) {
	r.log.GetSlogLogger().Debug("chromedp", "detail", fmt.Sprintf(format, args...))
}

type session struct {
	tabCtx  context.Context
	cancel  func()
	timeout time.Duration
	closed  bool
	log     logger.Logger
}

func (s *session) Render(ctx context.Context, page render.Page) (render.Texts, error) {
	ctx = wrap.WithAction(ctx, types.ActionRenderPage)

	var (
		runCtx context.Context
		cancel context.CancelFunc
	)
	if s.timeout > 0 {
		runCtx, cancel = context.WithTimeout(s.tabCtx, s.timeout)
	} else {
		runCtx, cancel = context.WithCancel(s.tabCtx)
	}
	defer cancel()

	// caller cancellation stops the browser work too
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, chromedp.Navigate(page.URL)); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: navigate %s: %v", types.ErrRenderFailed, page.URL, err))
	}

	if page.Marker != "" {
		if err := waitMarker(runCtx, page.Marker, page.MarkerTimeout); err != nil {
			return nil, wrap.Error(ctx, err)
		}
	}

	if page.SettleWait > 0 {
		if err := chromedp.Run(runCtx, chromedp.Sleep(page.SettleWait)); err != nil {
			return nil, wrap.Error(ctx, fmt.Errorf("%w: settle: %v", types.ErrRenderFailed, err))
		}
	}

	texts := make(render.Texts, len(page.Categories))
	for category, class := range page.Categories {
		var values []string
		if err := chromedp.Run(runCtx, chromedp.Evaluate(innerTextScript(class), &values)); err != nil {
			return nil, wrap.Error(ctx, fmt.Errorf("%w: read %s: %v", types.ErrRenderFailed, category, err))
		}
		texts[category] = values
	}

	return texts, nil
}

func waitMarker(ctx context.Context, class string, timeout time.Duration) error {
	waitCtx, cancel := ctx, context.CancelFunc(func() {})
	if timeout > 0 {
		waitCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	err := chromedp.Run(waitCtx, chromedp.WaitReady("."+class, chromedp.ByQuery))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(waitCtx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: marker .%s not found after %s", types.ErrLoadTimeout, class, timeout)
	default:
		return fmt.Errorf("%w: wait for .%s: %v", types.ErrRenderFailed, class, err)
	}
}

func innerTextScript(class string) string {
	return fmt.Sprintf(`Array.from(document.getElementsByClassName(%q)).map(e => e.innerText)`, class)
}

// Close shuts the tab and the browser process down.
func (s *session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.cancel()
	metrics.RenderSessionsInUse.Dec()
	return nil
}
