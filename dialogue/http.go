package dialogue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

// HTTPClient posts requests to the dialogue proxy. Each new request cancels
// the one in flight; failures of any kind answer with the local heuristic.
type HTTPClient struct {
	endpoint string
	rules    Rules
	client   *http.Client
	ch       chan Response

	mu     sync.Mutex
	cancel context.CancelFunc
}

type proxyResult struct {
	Classification Classification `json:"classification"`
	Line           string         `json:"mikeLine"`
}

type proxyResponse struct {
	OK       bool        `json:"ok"`
	Result   proxyResult `json:"result"`
	Fallback bool        `json:"fallback"`
	Error    string      `json:"error"`
}

func NewHTTPClient(endpoint string, rules Rules, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		rules:    rules,
		client:   &http.Client{Timeout: timeout},
		ch:       make(chan Response, 8),
	}
}

func (c *HTTPClient) Responses() <-chan Response {
	return c.ch
}

func (c *HTTPClient) Request(ctx context.Context, req Request) {
	reqCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = cancel
	c.mu.Unlock()

	go func() {
		defer cancel()
		resp, err := c.post(reqCtx, req)
		if err != nil {
			if reqCtx.Err() != nil {
				// superseded or shut down; the simulation has moved on
				return
			}
			log.Printf("Warning: dialogue request %d failed: %v", req.Token, err)
			resp = c.rules.Fallback(req, err)
		}
		c.deliver(resp)
	}()
}

// Close cancels any request in flight.
func (c *HTTPClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *HTTPClient) deliver(resp Response) {
	select {
	case c.ch <- resp:
	default:
		log.Printf("Warning: dialogue response %d dropped, channel full", resp.Token)
	}
}

func (c *HTTPClient) post(ctx context.Context, req Request) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("marshal: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("post: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("unexpected status: %d", httpResp.StatusCode)
	}

	var result proxyResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&result); err != nil {
		return Response{}, fmt.Errorf("decode: %w", err)
	}
	if !result.OK {
		return Response{}, fmt.Errorf("proxy error: %s", result.Error)
	}
	if !Valid(req.Phase, result.Result.Classification) {
		return Response{}, fmt.Errorf("invalid classification %q for phase %s", result.Result.Classification, req.Phase)
	}

	line := result.Result.Line
	if line == "" {
		line = c.rules.Line(result.Result.Classification, req.Exchange)
	}
	return Response{
		Token:          req.Token,
		Classification: result.Result.Classification,
		Line:           line,
		Fallback:       result.Fallback,
	}, nil
}
