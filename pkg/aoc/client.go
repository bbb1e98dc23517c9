// Package aoc talks to the Advent of Code website: downloading puzzle input
// and submitting answers. It is a thin collaborator; it classifies the
// site's response and reports it verbatim, never retrying (the site
// enforces per-submission cooldowns).
package aoc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Client performs the outbound calls. BaseURL is overridable for tests.
type Client struct {
	BaseURL    string
	Session    string
	HTTPClient *http.Client
}

// NewClient creates a Client for the given endpoint and session cookie.
func NewClient(baseURL, session string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Session:    session,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// userAgent identifies the tool per the AoC automation guidelines.
const userAgent = "aockit (github.com/aockit)"

// FetchInput downloads the puzzle input for a day.
func (c *Client) FetchInput(ctx context.Context, year, day int) ([]byte, error) {
	u := fmt.Sprintf("%s/%d/day/%d/input", c.BaseURL, year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	c.decorate(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", u, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s (is the session token valid?)", u, resp.Status)
	}
	return body, nil
}

// Verdict classifies the site's reaction to a submitted answer.
type Verdict int

const (
	VerdictUnknown Verdict = iota
	VerdictCorrect
	VerdictIncorrect
	VerdictTooRecent
	VerdictAlreadySolved
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	case VerdictTooRecent:
		return "too recent"
	case VerdictAlreadySolved:
		return "already solved"
	default:
		return "unknown"
	}
}

// Submission is the classified outcome of one answer submission.
type Submission struct {
	Verdict Verdict
	Message string
}

// SubmitAnswer posts an answer for (year, day, part) and classifies the
// response. Transport failures are errors; every received response is a
// Submission, including incorrect and rate-limited ones.
func (c *Client) SubmitAnswer(ctx context.Context, year, day, part int, answer string) (Submission, error) {
	u := fmt.Sprintf("%s/%d/day/%d/answer", c.BaseURL, year, day)
	form := url.Values{
		"level":  {strconv.Itoa(part)},
		"answer": {answer},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return Submission{}, err
	}
	c.decorate(req)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Submission{}, fmt.Errorf("POST %s: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Submission{}, fmt.Errorf("POST %s: %w", u, err)
	}
	if resp.StatusCode != http.StatusOK {
		return Submission{}, fmt.Errorf("POST %s: %s (is the session token valid?)", u, resp.Status)
	}
	return classify(string(body)), nil
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.AddCookie(&http.Cookie{Name: "session", Value: c.Session})
}

var (
	articleRe = regexp.MustCompile(`(?s)<article[^>]*>(.*?)</article>`)
	tagRe     = regexp.MustCompile(`<[^>]+>`)
)

// classify maps the site's well-known response phrases onto a Verdict. The
// extracted article text rides along so rate-limit waits and day completion
// notes reach the user unmodified.
func classify(body string) Submission {
	message := body
	if m := articleRe.FindStringSubmatch(body); m != nil {
		message = m[1]
	}
	message = strings.Join(strings.Fields(tagRe.ReplaceAllString(message, " ")), " ")

	sub := Submission{Verdict: VerdictUnknown, Message: message}
	switch {
	case strings.Contains(body, "That's the right answer"):
		sub.Verdict = VerdictCorrect
	case strings.Contains(body, "That's not the right answer"):
		sub.Verdict = VerdictIncorrect
	case strings.Contains(body, "You gave an answer too recently"):
		sub.Verdict = VerdictTooRecent
	case strings.Contains(body, "Did you already complete it"),
		strings.Contains(body, "You don't seem to be solving the right level"):
		sub.Verdict = VerdictAlreadySolved
	}
	return sub
}
