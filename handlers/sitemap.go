package handlers

import (
	"html/template"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var routeParamPattern = regexp.MustCompile(`\{([^:}]+):[^}]*\}`)

var sitemapTemplate = template.Must(template.New("sitemap").Parse(`<!DOCTYPE html>
<html>
<head><title>Star Wars API</title></head>
<body>
<div style="text-align: center;">
<h1>Welcome to the Star Wars API</h1>
<p>API HOST: <code>{{.Host}}</code></p>
<p>Remember to specify a real endpoint path like:</p>
<ul style="text-align: left;">
{{- range .Routes}}
<li>{{if .Link}}<a href="{{.Path}}">{{.Path}}</a>{{else}}{{.Path}}{{end}} <small>{{.Methods}}</small></li>
{{- end}}
</ul>
</div>
</body>
</html>
`))

// SitemapEntry is one registered path with the methods it answers.
type SitemapEntry struct {
	Path    string
	Methods string
	// Link is set for GET routes without path parameters
	Link bool
}

// CollectRoutes walks the router and groups its routes by path, sorted.
func CollectRoutes(routes chi.Routes) ([]SitemapEntry, error) {
	methodsByPath := map[string][]string{}
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		path := routeParamPattern.ReplaceAllString(route, "{$1}")
		methodsByPath[path] = append(methodsByPath[path], method)
		return nil
	})
	if err != nil {
		return nil, err
	}

	entries := make([]SitemapEntry, 0, len(methodsByPath))
	for path, methods := range methodsByPath {
		sort.Strings(methods)
		hasGet := false
		for _, m := range methods {
			if m == http.MethodGet {
				hasGet = true
			}
		}
		entries = append(entries, SitemapEntry{
			Path:    path,
			Methods: strings.Join(methods, ", "),
			Link:    hasGet && !strings.Contains(path, "{"),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

// SitemapHandler renders an HTML index of every route registered on routes.
func SitemapHandler(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := CollectRoutes(routes)
		if err != nil {
			log.Error().Err(err).Msg("Error walking routes for sitemap")
			http.Error(w, "Failed to build sitemap", http.StatusInternalServerError)
			return
		}

		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		data := struct {
			Host   string
			Routes []SitemapEntry
		}{
			Host:   scheme + "://" + r.Host + "/",
			Routes: entries,
		}
		if err := sitemapTemplate.Execute(w, data); err != nil {
			log.Error().Err(err).Msg("Error rendering sitemap")
		}
	}
}
