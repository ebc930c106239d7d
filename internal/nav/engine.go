// Package nav routes "controller/action?query" URLs to registered handlers.
package nav

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
)

// ErrNoRoute is returned by Dispatch when no handler matches a URL
var ErrNoRoute = errors.New("no route")

// Navigator executes navigation URLs. It is fire-and-forget: callers never
// see the outcome.
type Navigator interface {
	Execute(rawURL string)
}

// Request is a parsed navigation URL
type Request struct {
	URL        string
	Controller string
	Action     string
	Query      url.Values
}

// Handler serves one route
type Handler func(req Request) error

// Engine is a Navigator backed by a route table
type Engine struct {
	routes  map[string]Handler
	current string

	// OnError is called when Execute fails; the default logs the failure
	OnError func(rawURL string, err error)
}

// NewEngine creates an engine with no routes
func NewEngine() *Engine {
	return &Engine{routes: make(map[string]Handler)}
}

// Register binds route ("controller/action", case-insensitive) to h
func (e *Engine) Register(route string, h Handler) {
	controller, action := splitPath(route)
	e.routes[controller+"/"+action] = h
}

// Parse splits a navigation URL into its parts. A missing controller is
// "home" and a missing action is "index".
func Parse(rawURL string) (Request, error) {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil {
		return Request{}, fmt.Errorf("parse %q: %w", rawURL, err)
	}
	controller, action := splitPath(u.Path)
	return Request{
		URL:        rawURL,
		Controller: controller,
		Action:     action,
		Query:      u.Query(),
	}, nil
}

// Dispatch runs the handler for rawURL and returns its error
func (e *Engine) Dispatch(rawURL string) error {
	req, err := Parse(rawURL)
	if err != nil {
		return err
	}
	h, ok := e.routes[req.Controller+"/"+req.Action]
	if !ok {
		return fmt.Errorf("%s/%s: %w", req.Controller, req.Action, ErrNoRoute)
	}
	if err := h(req); err != nil {
		return err
	}
	e.current = req.URL
	return nil
}

// Execute dispatches rawURL and reports failures through OnError
func (e *Engine) Execute(rawURL string) {
	if err := e.Dispatch(rawURL); err != nil {
		if e.OnError != nil {
			e.OnError(rawURL, err)
			return
		}
		log.Printf("navigate %q: %v", rawURL, err)
	}
}

// Current returns the last URL that dispatched successfully
func (e *Engine) Current() string {
	return e.current
}

func splitPath(p string) (controller, action string) {
	p = strings.Trim(strings.TrimSpace(p), "/")
	parts := strings.SplitN(p, "/", 3)
	controller, action = "home", "index"
	if len(parts) > 0 && parts[0] != "" {
		controller = strings.ToLower(parts[0])
	}
	if len(parts) > 1 && parts[1] != "" {
		action = strings.ToLower(parts[1])
	}
	return controller, action
}
