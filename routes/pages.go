package routes

import (
	"clementus360/ai-helper-web/handlers"
	"clementus360/ai-helper-web/views"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrInvalidRoute  = errors.New("invalid route")
)

// RouteDescriptor binds a path pattern to the view rendered there.
// Private routes are framed by the sidebar; the flag does not restrict access.
type RouteDescriptor struct {
	Path      string
	Title     string
	View      views.View
	IsPrivate bool
}

// AppRoutes is the page table. Build it once at startup.
func AppRoutes(set views.Set) []RouteDescriptor {
	return []RouteDescriptor{
		{
			Path:      "/login",
			Title:     "Sign in",
			View:      set.Login,
			IsPrivate: false,
		},
		{
			Path:      "/signup",
			Title:     "Sign up",
			View:      set.SignUp,
			IsPrivate: false,
		},
		{
			Path:      "/dashboard",
			Title:     "Dashboard",
			View:      set.Dashboard,
			IsPrivate: true,
		},
		{
			Path:      "/chat/{" + views.ChatIDParam + "}",
			Title:     "Chat",
			View:      set.Chat,
			IsPrivate: false,
		},
	}
}

// Compose returns the view served for d: the view itself, or for private
// routes the frame and the view side by side in a flex container.
func Compose(d RouteDescriptor, frame views.View) views.View {
	if !d.IsPrivate {
		return d.View
	}
	return views.Flex(frame, d.View)
}

// RegisterPageRoutes registers a GET handler per descriptor. The whole
// table is checked, including a dry run on a scratch mux, before anything
// is added to mux; matching, path segments and not-found responses are
// left to mux.
func RegisterPageRoutes(mux *http.ServeMux, table []RouteDescriptor, frame views.View) error {
	seen := make(map[string]string, len(table))
	for _, d := range table {
		if d.Path == "" || d.View == nil {
			return fmt.Errorf("%w: %q", ErrInvalidRoute, d.Path)
		}
		if d.IsPrivate && frame == nil {
			return fmt.Errorf("%w: %q is private but no frame was given", ErrInvalidRoute, d.Path)
		}
		key := patternKey(d.Path)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q conflicts with %q", ErrDuplicatePath, d.Path, prev)
		}
		seen[key] = d.Path
	}

	if err := checkPatterns(table); err != nil {
		return err
	}

	for _, d := range table {
		mux.HandleFunc("GET "+d.Path, handlers.PageHandler(d.Title, Compose(d, frame)))
	}
	return nil
}

// checkPatterns registers every path on a throwaway mux, turning the
// panics ServeMux raises for malformed or conflicting patterns into errors.
func checkPatterns(table []RouteDescriptor) (err error) {
	var current string
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %q: %v", ErrInvalidRoute, current, p)
		}
	}()

	scratch := http.NewServeMux()
	for _, d := range table {
		current = d.Path
		scratch.HandleFunc("GET "+d.Path, http.NotFound)
	}
	return nil
}

// patternKey drops wildcard names so "/chat/{a}" and "/chat/{b}" compare equal.
func patternKey(path string) string {
	var b strings.Builder
	for {
		open := strings.IndexByte(path, '{')
		if open < 0 {
			b.WriteString(path)
			return b.String()
		}
		end := strings.IndexByte(path[open:], '}')
		if end < 0 {
			b.WriteString(path)
			return b.String()
		}
		b.WriteString(path[:open+1])
		if strings.HasSuffix(path[open:open+end], "...") {
			b.WriteString("...")
		}
		b.WriteByte('}')
		path = path[open+end+1:]
	}
}
