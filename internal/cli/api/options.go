package api

import (
	"net/http"

	"go.uber.org/zap"
)

// RequestOptions - набор параметров запроса, которые могут задаваться
// глобально (defaults) и переопределяться на каждом вызове.
type RequestOptions struct {
	// Method переопределяет HTTP-метод, если не пустой.
	Method string
	// Header накладывается поверх заголовков нижних уровней по ключу.
	// Ключ с пустым списком значений удаляет заголовок.
	Header http.Header
}

// merge накладывает уровни по порядку: каждый следующий побеждает при совпадении ключей.
func merge(layers ...*RequestOptions) RequestOptions {
	out := RequestOptions{Header: http.Header{}}
	for _, l := range layers {
		if l == nil {
			continue
		}
		if l.Method != "" {
			out.Method = l.Method
		}
		for k, vv := range l.Header {
			if len(vv) == 0 {
				out.Header.Del(k)
				continue
			}
			out.Header.Del(k)
			for _, v := range vv {
				out.Header.Add(k, v)
			}
		}
	}
	return out
}

// TokenProvider отдаёт текущий bearer-токен. Пустая строка означает "нет токена".
type TokenProvider interface {
	Token() string
}

// TokenFunc adapts a plain function to TokenProvider.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Navigator performs a client-side navigation to the given route.
type Navigator interface {
	Navigate(route string)
}

// Option configures a Client.
type Option func(*Client)

// WithDefaultOptions sets request options merged beneath every call.
func WithDefaultOptions(opts RequestOptions) Option {
	return func(c *Client) {
		o := merge(&opts)
		c.defaults = &o
	}
}

// WithUnauthorizedHandler registers fn to be called instead of returning
// an error when the server answers 401.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithForbiddenRoute is the router-flavoured form of WithUnauthorizedHandler:
// on 401 the navigator is sent to route. An empty route leaves 401 as an error.
func WithForbiddenRoute(route string, nav Navigator) Option {
	return func(c *Client) {
		if route == "" || nav == nil {
			c.onUnauthorized = nil
			return
		}
		c.onUnauthorized = func() { nav.Navigate(route) }
	}
}

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithBaseURL makes relative call URLs resolve against base.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}
