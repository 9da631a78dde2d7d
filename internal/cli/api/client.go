package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Client - тонкая обёртка над http.Client для JSON API с bearer-авторизацией.
// Безопасен для конкурентного использования: состояние задаётся один раз в NewClient.
type Client struct {
	http           *http.Client
	tokens         TokenProvider
	defaults       *RequestOptions
	onUnauthorized func()
	baseURL        string
	logger         *zap.SugaredLogger
}

// Response - успешный ответ сервера. Body уже проверен на валидность JSON
// и пуст только для 204 No Content.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       json.RawMessage
}

// Decode разбирает тело ответа в out.
func (r *Response) Decode(out any) error {
	if r == nil || len(r.Body) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return &ParseError{Body: r.Body, Err: err}
	}
	return nil
}

// NewClient создаёт клиента. tokens может быть nil - тогда Authorization не отправляется.
func NewClient(tokens TokenProvider, opts ...Option) *Client {
	c := &Client{
		http:   http.DefaultClient,
		tokens: tokens,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET and returns the decoded JSON body.
func (c *Client) Get(ctx context.Context, target string, body any, override *RequestOptions) (any, error) {
	return c.value(ctx, http.MethodGet, target, body, override)
}

// Post issues a POST and returns the decoded JSON body.
func (c *Client) Post(ctx context.Context, target string, body any, override *RequestOptions) (any, error) {
	return c.value(ctx, http.MethodPost, target, body, override)
}

// Put issues a PUT and returns the decoded JSON body.
func (c *Client) Put(ctx context.Context, target string, body any, override *RequestOptions) (any, error) {
	return c.value(ctx, http.MethodPut, target, body, override)
}

// Delete issues a DELETE and returns the decoded JSON body.
func (c *Client) Delete(ctx context.Context, target string, body any, override *RequestOptions) (any, error) {
	return c.value(ctx, http.MethodDelete, target, body, override)
}

func (c *Client) value(ctx context.Context, method, target string, body any, override *RequestOptions) (any, error) {
	resp, err := c.Do(ctx, method, target, body, override)
	if err != nil || resp == nil {
		return nil, err
	}
	var v any
	if err := resp.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Call выполняет запрос и раскладывает JSON-ответ в out.
// Возвращает false без ошибки, если 401 был поглощён обработчиком.
func (c *Client) Call(ctx context.Context, method, target string, body any, override *RequestOptions, out any) (bool, error) {
	resp, err := c.Do(ctx, method, target, body, override)
	if err != nil {
		return false, err
	}
	if resp == nil {
		return false, nil
	}
	return true, resp.Decode(out)
}

// Do выполняет запрос и возвращает проверенный JSON-ответ.
//
// Возврат (nil, nil) означает, что сервер ответил 401 и ответ был поглощён
// обработчиком unauthorized (навигация уже выполнена).
func (c *Client) Do(ctx context.Context, method, target string, body any, override *RequestOptions) (*Response, error) {
	u, err := c.resolve(target)
	if err != nil {
		return nil, err
	}

	computed := &RequestOptions{
		Method: method,
		Header: http.Header{"Content-Type": {"application/json"}},
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			computed.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	opts := merge(c.defaults, computed, override)

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, u, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header = opts.Header

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debugw("api request failed", "method", opts.Method, "url", u, "error", err)
		return nil, &TransportError{Method: opts.Method, URL: u, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: opts.Method, URL: u, Err: err}
	}
	c.logger.Debugw("api request",
		"method", opts.Method,
		"url", u,
		"status", resp.StatusCode,
		"size", len(raw),
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
			return nil, nil
		}
		resp.Body = io.NopCloser(bytes.NewReader(raw))
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Header:     resp.Header,
			Body:       raw,
			Response:   resp,
		}
	}

	out := &Response{StatusCode: resp.StatusCode, Header: resp.Header}
	if resp.StatusCode == http.StatusNoContent {
		return out, nil
	}
	var msg json.RawMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, &ParseError{Body: raw, Err: err}
	}
	out.Body = msg
	return out, nil
}

func (c *Client) resolve(target string) (string, error) {
	if c.baseURL == "" {
		return target, nil
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	ref, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}
