// Package io implements the injected I/O boundary: every effectful
// operation a running program performs — reading puzzle input,
// printing output — goes through a Handle so the evaluator never
// touches the filesystem or stdout directly; the runner and REPL each
// wire up a different Handle implementation.
package io

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Handle is the injected boundary for `input` resolution and `puts`
// output.
type Handle interface {
	Input(path string) (string, error)
	Output(args []string)
}

// LocalHandle resolves local filesystem paths and http(s):// URLs, and
// writes output lines to an injected io.Writer (the REPL/runner point
// this at os.Stdout; tests point it at a bytes.Buffer).
type LocalHandle struct {
	Out    io.Writer
	Client *http.Client
}

func NewLocalHandle(out io.Writer) *LocalHandle {
	return &LocalHandle{Out: out, Client: &http.Client{Timeout: 10 * time.Second}}
}

func (h *LocalHandle) Input(path string) (string, error) {
	switch {
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		return h.fetchHTTP(path)
	case strings.HasPrefix(path, "aoc://"):
		return "", fmt.Errorf("aoc:// inputs are not resolved by the core interpreter; the embedding must pre-fetch them")
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

func (h *LocalHandle) fetchHTTP(url string) (string, error) {
	resp, err := h.Client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (h *LocalHandle) Output(args []string) {
	fmt.Fprintln(h.Out, strings.Join(args, ""))
}
