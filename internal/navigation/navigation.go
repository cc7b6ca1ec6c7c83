// Package navigation sends the browser to another page with a full
// document load.
package navigation

import (
	"net/http"
	"net/url"
	"strings"
)

// Well known page paths.
const (
	HomePath     = "/"
	MenuPath     = "/menu"
	LoginPath    = "/login"
	RegisterPath = "/register"
)

// NavigateTo redirects to path with 303 See Other, so a form POST is
// followed by a GET of the target page.
func NavigateTo(w http.ResponseWriter, r *http.Request, path string) {
	if path == "" {
		path = HomePath
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// GoBack redirects to the Referer when it points at this site, otherwise home.
func GoBack(w http.ResponseWriter, r *http.Request) {
	NavigateTo(w, r, backTarget(r))
}

// GoHome redirects to the home page.
func GoHome(w http.ResponseWriter, r *http.Request) { NavigateTo(w, r, HomePath) }

// GoToLogin redirects to the login page.
func GoToLogin(w http.ResponseWriter, r *http.Request) { NavigateTo(w, r, LoginPath) }

// GoToRegister redirects to the registration page.
func GoToRegister(w http.ResponseWriter, r *http.Request) { NavigateTo(w, r, RegisterPath) }

// MenuSectionPath links to the menu with section selected. The query
// carries the section to the server and the fragment anchors the scroll.
func MenuSectionPath(section string) string {
	if section == "" {
		return MenuPath
	}
	q := url.Values{"section": {section}}
	return MenuPath + "?" + q.Encode() + "#" + url.PathEscape(section)
}

func backTarget(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return HomePath
	}

	u, err := url.Parse(ref)
	if err != nil || u.Host != r.Host {
		return HomePath
	}

	target := u.EscapedPath()
	if target == "" {
		target = HomePath
	}
	// A leading "//" or "/\" would be read as another host.
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return HomePath
	}
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return target
}
