package actions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Names of the built-in actions.
const (
	CallAPIName         = "call_api_requests"
	RegexSearchName     = "regex_search"
	RegexSubstituteName = "regex_substitute"
)

// RegisterBuiltins adds the HTTP and regex actions. client is used for
// outgoing calls; nil means http.DefaultClient.
func RegisterBuiltins(reg *Registry, client *http.Client) error {
	if client == nil {
		client = http.DefaultClient
	}

	builtins := []Action{
		{
			Name:        CallAPIName,
			Description: "Call an API over HTTP and return the response text and status code",
			Run: func(ctx context.Context, params json.RawMessage) (any, error) {
				var req APIRequest
				if err := decodeParams(params, &req); err != nil {
					return nil, err
				}
				return CallAPI(ctx, client, req)
			},
		},
		{
			Name:        RegexSearchName,
			Description: "Perform a regex search on the text and get items in an array",
			Run: func(ctx context.Context, params json.RawMessage) (any, error) {
				var p struct {
					Pattern string `json:"pattern"`
					Text    string `json:"text"`
				}
				if err := decodeParams(params, &p); err != nil {
					return nil, err
				}
				return RegexSearch(p.Pattern, p.Text)
			},
		},
		{
			Name:        RegexSubstituteName,
			Description: "Perform a regex substitution on the text and get the result",
			Run: func(ctx context.Context, params json.RawMessage) (any, error) {
				var p struct {
					Pattern string `json:"pattern"`
					Repl    string `json:"repl"`
					Text    string `json:"text"`
				}
				if err := decodeParams(params, &p); err != nil {
					return nil, err
				}
				return RegexSubstitute(p.Pattern, p.Repl, p.Text)
			},
		},
	}

	for _, a := range builtins {
		if err := reg.Register(a); err != nil {
			return err
		}
	}
	return nil
}

type BasicAuth struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// APIRequest describes an outgoing call. Data is sent form-encoded and
// wins over JSON when both are set.
type APIRequest struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Params  map[string]string `json:"params,omitempty"`
	Data    map[string]string `json:"data,omitempty"`
	JSON    any               `json:"json,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Cookies map[string]string `json:"cookies,omitempty"`
	Auth    *BasicAuth        `json:"auth,omitempty"`
	Timeout float64           `json:"timeout,omitempty"` // seconds, 0 means no limit
}

type APIResponse struct {
	Text       string `json:"text"`
	StatusCode int    `json:"status_code"`
}

// CallAPI performs req and returns the body regardless of the status code.
func CallAPI(ctx context.Context, client *http.Client, req APIRequest) (APIResponse, error) {
	if req.Method == "" || req.URL == "" {
		return APIResponse{}, fmt.Errorf("%w: method and url are required", ErrInvalidParams)
	}

	target, err := url.Parse(req.URL)
	if err != nil {
		return APIResponse{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if len(req.Params) > 0 {
		q := target.Query()
		for k, v := range req.Params {
			q.Set(k, v)
		}
		target.RawQuery = q.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case len(req.Data) > 0:
		form := url.Values{}
		for k, v := range req.Data {
			form.Set(k, v)
		}
		body = strings.NewReader(form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.JSON != nil:
		payload, err := json.Marshal(req.JSON)
		if err != nil {
			return APIResponse{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(req.Timeout*float64(time.Second)))
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, strings.ToUpper(req.Method), target.String(), body)
	if err != nil {
		return APIResponse{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Cookies {
		httpReq.AddCookie(&http.Cookie{Name: k, Value: v})
	}
	if req.Auth != nil {
		httpReq.SetBasicAuth(req.Auth.Username, req.Auth.Password)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return APIResponse{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return APIResponse{}, fmt.Errorf("failed to read response body: %w", err)
	}
	return APIResponse{Text: string(text), StatusCode: resp.StatusCode}, nil
}

// RegexSearch returns every non-overlapping match. With no groups each item
// is the whole match, with one group it is that group, and with several it
// is the list of groups.
func RegexSearch(pattern, text string) (any, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	matches := re.FindAllStringSubmatch(text, -1)
	switch re.NumSubexp() {
	case 0:
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			out = append(out, m[0])
		}
		return out, nil
	case 1:
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			out = append(out, m[1])
		}
		return out, nil
	default:
		out := make([][]string, 0, len(matches))
		for _, m := range matches {
			out = append(out, m[1:])
		}
		return out, nil
	}
}

// RegexSubstitute replaces every match of pattern in text. Group references
// in repl are written \1, \g<1> or \g<name>.
func RegexSubstitute(pattern, repl, text string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return re.ReplaceAllString(text, expandTemplate(repl)), nil
}

// expandTemplate rewrites backslash group references into regexp's ${...}
// form and escapes literal dollars.
func expandTemplate(repl string) string {
	var b strings.Builder
	for i := 0; i < len(repl); i++ {
		c := repl[i]
		if c == '$' {
			b.WriteString("$$")
			continue
		}
		if c != '\\' || i+1 == len(repl) {
			b.WriteByte(c)
			continue
		}

		next := repl[i+1]
		switch {
		case next >= '0' && next <= '9':
			j := i + 2
			if j < len(repl) && repl[j] >= '0' && repl[j] <= '9' {
				j++
			}
			b.WriteString("${" + repl[i+1:j] + "}")
			i = j - 1
		case next == 'g' && i+2 < len(repl) && repl[i+2] == '<':
			end := strings.IndexByte(repl[i+3:], '>')
			if end < 0 {
				b.WriteString(repl[i : i+2])
				i++
				continue
			}
			b.WriteString("${" + repl[i+3:i+3+end] + "}")
			i = i + 3 + end
		case next == 'n':
			b.WriteByte('\n')
			i++
		case next == 't':
			b.WriteByte('\t')
			i++
		case next == '\\':
			b.WriteByte('\\')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
