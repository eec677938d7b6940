//
// Date: 2026-01-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Authorization code providers for the interactive OAuth flow.
//

package auth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/browser"
	log "github.com/sirupsen/logrus"
)

// CodeProvider obtains an authorization code for an authorization URL. The
// returned state is whatever the callback echoed back; the Manager compares
// it against the nonce it generated, so providers never validate it
// themselves.
type CodeProvider interface {
	Code(ctx context.Context, authURL string) (code string, state string, err error)
}

// CallbackServer completes the flow by listening on the redirect address for
// the browser callback from Spotify.
type CallbackServer struct {
	RedirectURI string

	// OpenBrowser launches the authorization URL. Defaults to browser.OpenURL;
	// tests substitute a no-op.
	OpenBrowser func(url string) error

	// Out receives user-facing prompts. Defaults to os.Stdout.
	Out io.Writer
}

// NewCallbackServer returns a provider that serves the given redirect URI.
func NewCallbackServer(redirectURI string) *CallbackServer {
	return &CallbackServer{RedirectURI: redirectURI}
}

// Code starts a one-shot HTTP server on the redirect address, points the
// user's browser at the authorization URL, and blocks until the callback
// arrives or ctx is canceled.
func (p *CallbackServer) Code(ctx context.Context, authURL string) (string, string, error) {
	u, err := url.Parse(p.RedirectURI)
	if err != nil {
		return "", "", fmt.Errorf("parse redirect URI: %w", err)
	}

	ln, err := net.Listen("tcp", u.Host)
	if err != nil {
		return "", "", fmt.Errorf("listen on %s: %w", u.Host, err)
	}
	defer ln.Close()

	type result struct {
		code  string
		state string
		err   error
	}
	ch := make(chan result, 1)

	path := u.Path
	if path == "" {
		path = "/"
	}

	mux := http.NewServeMux()
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if denied := q.Get("error"); denied != "" {
			http.Error(w, "Authorization failed.", http.StatusForbidden)
			ch <- result{err: fmt.Errorf("authorization denied: %s", denied)}
			return
		}
		code := q.Get("code")
		if code == "" {
			http.Error(w, "Missing authorization code.", http.StatusBadRequest)
			ch <- result{err: errors.New("callback is missing the code parameter")}
			return
		}
		fmt.Fprint(w, "Authentication successful! You can close this window.")
		ch <- result{code: code, state: q.Get("state")}
	})

	srv := &http.Server{Handler: mux}
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			ch <- result{err: err}
		}
	}()
	defer srv.Close()

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintln(out, "Please visit this URL to authenticate:")
	fmt.Fprintln(out, authURL)

	open := p.OpenBrowser
	if open == nil {
		open = browser.OpenURL
	}
	if err := open(authURL); err != nil {
		log.Debugf("could not open browser: %v", err)
	}

	select {
	case res := <-ch:
		return res.code, res.state, res.err
	case <-ctx.Done():
		return "", "", ctx.Err()
	}
}

// PromptProvider completes the flow by asking the user to paste the full
// redirect URL into the terminal. It is the fallback when no local callback
// server can run, e.g. over SSH.
type PromptProvider struct {
	In  io.Reader
	Out io.Writer
}

// NewPromptProvider returns a provider reading the pasted URL from in and
// writing prompts to out.
func NewPromptProvider(in io.Reader, out io.Writer) *PromptProvider {
	return &PromptProvider{In: in, Out: out}
}

// Code prints the authorization URL and blocks reading the redirect URL the
// user was sent to. There is no timeout; the wait ends when the user answers
// or input is closed.
func (p *PromptProvider) Code(ctx context.Context, authURL string) (string, string, error) {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	in := p.In
	if in == nil {
		in = os.Stdin
	}

	fmt.Fprintln(out, "Please visit this URL to authenticate:")
	fmt.Fprintln(out, authURL)
	fmt.Fprint(out, "\nPaste the full URL you were redirected to: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", "", fmt.Errorf("read callback URL: %w", err)
	}

	return parseCallbackURL(strings.TrimSpace(line))
}

// parseCallbackURL extracts the code and state query parameters from a
// pasted redirect URL. A bare authorization code is rejected because it
// carries no state echo to verify.
func parseCallbackURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return "", "", errors.New("expected the full redirect URL, including its query string")
	}

	q := u.Query()
	if denied := q.Get("error"); denied != "" {
		return "", "", fmt.Errorf("authorization denied: %s", denied)
	}
	code := q.Get("code")
	if code == "" {
		return "", "", errors.New("redirect URL is missing the code parameter")
	}

	return code, q.Get("state"), nil
}
