// Package static renders pages with a plain HTTP GET and an HTML parser. It
// does not run scripts, so it only fits pages whose fare cards are server
// rendered (and tests).
package static

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/render"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/metrics"
)

type Config struct {
	UserAgent      string
	RequestTimeout time.Duration
}

type Renderer struct {
	cfg Config
}

func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Open returns a session backed by its own HTTP client.
func (r *Renderer) Open(context.Context) (render.Session, error) {
	client := resty.New().
		SetTimeout(r.cfg.RequestTimeout).
		SetHeader("Accept", "text/html")
	if r.cfg.UserAgent != "" {
		client.SetHeader("User-Agent", r.cfg.UserAgent)
	}

	metrics.RenderSessionsInUse.Inc()
	return &session{client: client}, nil
}

type session struct {
	client *resty.Client
	closed bool
}

func (s *session) Render(ctx context.Context, page render.Page) (render.Texts, error) {
	ctx = wrap.WithAction(ctx, types.ActionRenderPage)

	res, err := s.client.R().
		SetContext(ctx).
		Get(page.URL)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: get %s: %v", types.ErrRenderFailed, page.URL, err))
	}
	if res.IsError() {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: get %s: status %d", types.ErrRenderFailed, page.URL, res.StatusCode()))
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: parse html: %v", types.ErrRenderFailed, err))
	}

	// nothing will appear later without a script engine
	if page.Marker != "" && doc.Find("."+page.Marker).Length() == 0 {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: marker .%s not in document", types.ErrLoadTimeout, page.Marker))
	}

	texts := make(render.Texts, len(page.Categories))
	for category, class := range page.Categories {
		values := []string{}
		doc.Find("." + class).Each(func(_ int, sel *goquery.Selection) {
			values = append(values, InnerText(sel))
		})
		texts[category] = values
	}

	return texts, nil
}

func (s *session) Close() error {
	if !s.closed {
		s.closed = true
		metrics.RenderSessionsInUse.Dec()
	}
	return nil
}

// InnerText approximates the browser's innerText: every non-blank text node
// under sel becomes one trimmed line.
func InnerText(sel *goquery.Selection) string {
	var lines []string

	var walk func(*goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			switch goquery.NodeName(c) {
			case "#text":
				if t := strings.TrimSpace(c.Text()); t != "" {
					lines = append(lines, t)
				}
			case "script", "style", "#comment":
			default:
				walk(c)
			}
		})
	}
	walk(sel)

	return strings.Join(lines, "\n")
}
