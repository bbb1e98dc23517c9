package aoc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2023/day/7/input", r.URL.Path)
		cookie, err := r.Cookie("session")
		require.NoError(t, err)
		assert.Equal(t, "s3cret", cookie.Value)
		w.Write([]byte("1721\n979\n366\n"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "s3cret")
	input, err := c.FetchInput(context.Background(), 2023, 7)
	require.NoError(t, err)
	assert.Equal(t, "1721\n979\n366\n", string(input))
}

func TestFetchInputBadSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Puzzle inputs differ by user.", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "stale")
	_, err := c.FetchInput(context.Background(), 2023, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestSubmitAnswer(t *testing.T) {
	var gotLevel, gotAnswer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/2023/day/7/answer", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotLevel = r.PostFormValue("level")
		gotAnswer = r.PostFormValue("answer")
		w.Write([]byte("<main><article><p>That's the right answer! You are one gold star closer.</p></article></main>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "s3cret")
	sub, err := c.SubmitAnswer(context.Background(), 2023, 7, 2, "300")
	require.NoError(t, err)

	assert.Equal(t, "2", gotLevel)
	assert.Equal(t, "300", gotAnswer)
	assert.Equal(t, VerdictCorrect, sub.Verdict)
	assert.Contains(t, sub.Message, "right answer")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Verdict
	}{
		{
			"correct",
			"<article><p>That's the right answer!</p></article>",
			VerdictCorrect,
		},
		{
			"incorrect",
			"<article><p>That's not the right answer; your answer is too high.</p></article>",
			VerdictIncorrect,
		},
		{
			"too recent",
			"<article><p>You gave an answer too recently. You have 4m 32s left to wait.</p></article>",
			VerdictTooRecent,
		},
		{
			"already solved",
			"<article><p>You don't seem to be solving the right level. Did you already complete it?</p></article>",
			VerdictAlreadySolved,
		},
		{
			"unknown",
			"<html><body>Please log in.</body></html>",
			VerdictUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := classify(tt.body)
			assert.Equal(t, tt.want, sub.Verdict)
		})
	}
}

func TestClassifyKeepsWaitMessage(t *testing.T) {
	sub := classify("<article><p>You gave an answer too recently. You have 4m 32s left to wait.</p></article>")
	assert.Contains(t, sub.Message, "4m 32s left to wait")
}
