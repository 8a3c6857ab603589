package share

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"waxcrate/internal/collection"
	"waxcrate/internal/config"
)

const userAgent = "waxcrate/0.1"

// Sender pushes share payloads to an external channel.
type Sender interface {
	ShareAlbum(ctx context.Context, album collection.Album) error
	ShareCollection(ctx context.Context, albums []collection.Album) error
}

// NewSender builds a sender backed by ntfy when a topic is configured.
// When no topic is configured, a noop implementation is returned so
// callers never need to branch on configuration.
func NewSender(cfg *config.Config) Sender {
	topic := strings.TrimSpace(cfg.Share.NtfyTopic)
	if topic == "" {
		return noopSender{}
	}

	timeout := time.Duration(cfg.Share.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfySender{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
	}
}

type ntfySender struct {
	endpoint string
	client   *http.Client
}

func (n *ntfySender) ShareAlbum(ctx context.Context, album collection.Album) error {
	return n.send(ctx, AlbumTitle(album), FormatAlbum(album))
}

func (n *ntfySender) ShareCollection(ctx context.Context, albums []collection.Album) error {
	return n.send(ctx, CollectionTitle, FormatCollection(albums))
}

func (n *ntfySender) send(ctx context.Context, title, message string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if title != "" {
		req.Header.Set("Title", title)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send share payload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopSender struct{}

func (noopSender) ShareAlbum(context.Context, collection.Album) error        { return nil }
func (noopSender) ShareCollection(context.Context, []collection.Album) error { return nil }
