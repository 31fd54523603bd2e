package actions

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuiltins(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	require.NoError(t, RegisterBuiltins(reg, nil))
	return reg
}

func TestBuiltinsAreListed(t *testing.T) {
	reg := newBuiltins(t)

	var names []string
	for _, a := range reg.List() {
		names = append(names, a.Name)
		assert.NotEmpty(t, a.Description)
	}
	assert.Equal(t, []string{CallAPIName, RegexSearchName, RegexSubstituteName}, names)

	err := reg.Register(Action{Name: RegexSearchName, Run: func(context.Context, json.RawMessage) (any, error) { return nil, nil }})
	assert.ErrorIs(t, err, ErrDuplicateAction)
}

func TestRunUnknownAction(t *testing.T) {
	_, err := newBuiltins(t).Run(context.Background(), "shell", nil)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestRegexSearch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    any
	}{
		{"whole matches", `\d+`, "a1 b22 c333", []string{"1", "22", "333"}},
		{"single group", `id=(\w+)`, "id=a id=b", []string{"a", "b"}},
		{"several groups", `(\w)=(\d)`, "x=1 y=2", [][]string{{"x", "1"}, {"y", "2"}}},
		{"no match", `z`, "abc", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RegexSearch(tt.pattern, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := RegexSearch(`(`, "x")
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestRegexSubstitute(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		repl    string
		text    string
		want    string
	}{
		{"literal", `cat`, "dog", "cat and cat", "dog and dog"},
		{"numbered group", `(\w+)@(\w+)`, `\2 at \1`, "me@home", "home at me"},
		{"named group", `(?P<word>\w+)!`, `\g<word>?`, "hi!", "hi?"},
		{"bracketed number", `(a)`, `\g<1>1`, "a", "a1"},
		{"dollar is literal", `cost`, "$5", "cost", "$5"},
		{"escapes", `,`, `\n`, "a,b", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RegexSubstitute(tt.pattern, tt.repl, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunRegexActions(t *testing.T) {
	reg := newBuiltins(t)

	out, err := reg.Run(context.Background(), RegexSubstituteName,
		json.RawMessage(`{"pattern":"o","repl":"0","text":"foo"}`))
	require.NoError(t, err)
	assert.Equal(t, "f00", out)

	_, err = reg.Run(context.Background(), RegexSearchName, json.RawMessage(`[1]`))
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestCallAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/items", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "bob", user)
		assert.Equal(t, "secret", pass)
		c, err := r.Cookie("session")
		require.NoError(t, err)
		assert.Equal(t, "abc", c.Value)

		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"widget"}`, string(body))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("created"))
	}))
	defer srv.Close()

	params := `{"method":"post","url":"` + srv.URL + `/items","params":{"page":"2"},
		"json":{"name":"widget"},"headers":{"X-Test":"yes"},"cookies":{"session":"abc"},
		"auth":{"username":"bob","password":"secret"},"timeout":5}`

	out, err := newBuiltins(t).Run(context.Background(), CallAPIName, json.RawMessage(params))
	require.NoError(t, err)
	assert.Equal(t, APIResponse{Text: "created", StatusCode: http.StatusCreated}, out)
}

func TestCallAPIFormData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "v", r.PostForm.Get("k"))
		http.Error(w, "nope", http.StatusTeapot)
	}))
	defer srv.Close()

	resp, err := CallAPI(context.Background(), srv.Client(), APIRequest{
		Method: "PUT",
		URL:    srv.URL,
		Data:   map[string]string{"k": "v"},
		JSON:   map[string]string{"ignored": "true"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "nope\n", resp.Text)
}

func TestCallAPINeedsMethodAndURL(t *testing.T) {
	_, err := CallAPI(context.Background(), http.DefaultClient, APIRequest{URL: "http://x"})
	assert.ErrorIs(t, err, ErrInvalidParams)
}
