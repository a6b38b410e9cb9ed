package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"catalog/internal/errors"
)

// Screen renders one view. It returns the path to navigate to next, or ""
// to return to the prompt.
type Screen func(ctx context.Context, d *Deps, params Params) string

// Params holds the ":name" segments matched by a route.
type Params map[string]string

const (
	pathHome      = "/"
	pathForbidden = "/forbidden"
	pathNotFound  = "/notfound"
	pathError     = "/error"

	// maxRedirects bounds a chain of screens redirecting to each other.
	maxRedirects = 8
)

type route struct {
	segments []string
	private  bool
	screen   Screen
}

// Router maps paths to screens in registration order. The first match wins
// and anything unmatched renders the not-found screen.
type Router struct {
	deps   *Deps
	routes []route
}

// NewRouter registers the catalog screens.
func NewRouter(d *Deps) *Router {
	r := &Router{deps: d.withDefaults()}

	r.handle("/", false, coursesScreen)
	r.handle("/courses", false, coursesScreen)
	r.handle("/courses/create", true, createCourseScreen)
	r.handle("/courses/:id/update", true, updateCourseScreen)
	r.handle("/courses/:id/delete", true, deleteCourseScreen)
	r.handle("/courses/:id", false, courseDetailScreen)
	r.handle("/signin", false, signInScreen)
	r.handle("/signup", false, signUpScreen)
	r.handle("/signout", false, signOutScreen)
	r.handle(pathForbidden, false, forbiddenScreen)
	r.handle(pathNotFound, false, notFoundScreen)
	r.handle(pathError, false, unhandledErrorScreen)

	return r
}

func (r *Router) handle(pattern string, private bool, screen Screen) {
	r.routes = append(r.routes, route{segments: split(pattern), private: private, screen: screen})
}

// Navigate renders path and follows the redirects screens return.
func (r *Router) Navigate(ctx context.Context, path string) {
	for range maxRedirects {
		if path == "" {
			return
		}
		path = r.render(ctx, path)
	}

	r.deps.Logger.WarnContext(ctx, "Redirect limit reached", slog.String("path", path))
}

func (r *Router) render(ctx context.Context, path string) string {
	for _, rt := range r.routes {
		params, ok := match(rt.segments, split(path))
		if !ok {
			continue
		}
		if rt.private && r.deps.Session.Current() == nil {
			return pathForbidden
		}

		return rt.screen(ctx, r.deps, params)
	}

	return notFoundScreen(ctx, r.deps, nil)
}

// Run is the read-eval loop. Each line is a path; a missing leading slash
// is added. It returns on EOF, "exit" or "quit".
func (r *Router) Run(ctx context.Context) error {
	d := r.deps
	r.Navigate(ctx, pathHome)

	for {
		fmt.Fprintf(d.Out, "\ncatalog %s> ", r.status())
		line, err := readLine(d.In)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			fmt.Fprintln(d.Out, "Bye!")

			return nil
		case "help":
			r.help()

			continue
		}

		if !strings.HasPrefix(line, "/") {
			line = "/" + line
		}
		r.Navigate(ctx, line)
	}
}

func (r *Router) status() string {
	if user := r.deps.Session.Current(); user != nil {
		return "[" + user.FullName() + "]"
	}

	return "[guest]"
}

func (r *Router) help() {
	w := r.deps.Out
	fmt.Fprintln(w, "Paths: / (courses), /courses/<id>")
	if r.deps.Session.Current() != nil {
		fmt.Fprintln(w, "       /courses/create, /courses/<id>/update, /courses/<id>/delete, /signout")
	} else {
		fmt.Fprintln(w, "       /signin, /signup")
	}
	fmt.Fprintln(w, "Commands: help, exit")
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}

	return strings.Split(path, "/")
}

func match(pattern, segments []string) (Params, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}

	params := Params{}
	for i, p := range pattern {
		if name, ok := strings.CutPrefix(p, ":"); ok {
			params[name] = segments[i]

			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}

	return params, true
}
