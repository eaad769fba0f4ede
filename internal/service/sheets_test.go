package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetsMirror_AppendRowSanitizesCells(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got = r.PostForm
		w.Write([]byte(`{"result":"success"}`))
	}))
	defer server.Close()

	mirror := NewSheetsMirror(server.URL, 5*time.Second)
	err := mirror.AppendRow(context.Background(), map[string]string{
		"Name":   "=HYPERLINK(\"http://x\",\"y\")",
		"Email":  "asha@iitb.ac.in",
		"Reason": "\t+1=2",
	})

	assert.NoError(t, err)
	assert.Equal(t, `'=HYPERLINK("http://x","y")`, got.Get("Name"))
	assert.Equal(t, "asha@iitb.ac.in", got.Get("Email"))
	assert.Equal(t, "'\t+1=2", got.Get("Reason"))
}

func TestSheetsMirror_Delete(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got = r.PostForm
		w.Write([]byte(`{"result":"success"}`))
	}))
	defer server.Close()

	mirror := NewSheetsMirror(server.URL, 5*time.Second)
	err := mirror.Delete(context.Background(), "asha@iitb.ac.in")

	assert.NoError(t, err)
	assert.Equal(t, "delete", got.Get("action"))
	assert.Equal(t, "asha@iitb.ac.in", got.Get("email"))
}

func TestSheetsMirror_RejectedResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"error","message":"row not found"}`))
	}))
	defer server.Close()

	mirror := NewSheetsMirror(server.URL, 5*time.Second)
	err := mirror.UpdateStatus(context.Background(), "asha@iitb.ac.in", "Approved")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "row not found")
}

func TestSheetsMirror_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	mirror := NewSheetsMirror(server.URL, 5*time.Second)
	err := mirror.AppendRow(context.Background(), map[string]string{"Name": "x"})

	assert.Error(t, err)
}

func TestSheetsMirror_DisabledWithoutURL(t *testing.T) {
	mirror := NewSheetsMirror("", 5*time.Second)
	assert.NoError(t, mirror.AppendRow(context.Background(), map[string]string{"Name": "x"}))
	assert.NoError(t, mirror.Delete(context.Background(), "a@b.co"))
}
