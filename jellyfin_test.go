package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientLibrariesFiltersCollectionTypes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Users/u1/Views", r.URL.Path)
		assert.Equal(t, "tok", r.Header.Get("X-MediaBrowser-Token"))
		fmt.Fprint(w, `{"Items":[
			{"Id":"1","Name":"Movies","CollectionType":"movies"},
			{"Id":"2","Name":"Shows","CollectionType":"tvshows"},
			{"Id":"3","Name":"Music","CollectionType":"music"},
			{"Id":"4","Name":"Photos","CollectionType":"photos"},
			{"Id":"5","Name":"Mixed","CollectionType":""}
		]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok", "u1", zerolog.Nop())
	libraries, err := client.Libraries()

	require.NoError(t, err)
	require.Len(t, libraries, 3)
	assert.Equal(t, "Movies", libraries[0].Name)
	assert.Equal(t, "Shows", libraries[1].Name)
	assert.Equal(t, "Mixed", libraries[2].Name)
}

func TestClientLibraryItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Users/u1/Items", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Movie,Series,BoxSet", q.Get("IncludeItemTypes"))
		assert.Equal(t, "true", q.Get("Recursive"))
		assert.Equal(t, "lib1", q.Get("ParentId"))
		assert.Equal(t, "SortName", q.Get("SortBy"))
		fmt.Fprint(w, `{"Items":[
			{"Id":"m1","Name":"Heat","Type":"Movie","ProductionYear":1995,
			 "RunTimeTicks":102000000000,"UserData":{"Played":true,"PlayCount":2}}
		]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok", "u1", zerolog.Nop())
	items, err := client.LibraryItems("lib1")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Heat", items[0].Name)
	assert.Equal(t, int64(102000000000), items[0].RunTimeTicks)
	assert.True(t, items[0].UserData.Played)
	assert.Equal(t, 2, items[0].UserData.PlayCount)
}

func TestClientEpisodesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Shows/s1/Episodes", r.URL.Path)
		assert.Equal(t, "season2", r.URL.Query().Get("seasonId"))
		assert.Equal(t, "u1", r.URL.Query().Get("userId"))
		fmt.Fprint(w, `{"Items":[]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok", "u1", zerolog.Nop())
	_, err := client.Episodes("s1", "season2")
	require.NoError(t, err)
}

func TestClientMediaStreams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Items/m1/PlaybackInfo", r.URL.Path)
		fmt.Fprint(w, `{"MediaSources":[{"MediaStreams":[
			{"Type":"Video","Codec":"hevc","Index":0,"Width":3840,"Height":2160},
			{"Type":"Audio","Codec":"eac3","Index":1,"Language":"eng","Channels":6},
			{"Type":"Subtitle","Codec":"srt","Index":2,"Language":"eng","IsForced":true}
		]}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok", "u1", zerolog.Nop())
	streams, err := client.MediaStreams("m1")

	require.NoError(t, err)
	require.Len(t, streams, 3)
	assert.Equal(t, "Video", streams[0].Type)
	assert.Equal(t, 6, streams[1].Channels)
	assert.True(t, streams[2].IsForced)
}

func TestClientMediaStreamsNoSources(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"MediaSources":[]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok", "u1", zerolog.Nop())
	streams, err := client.MediaStreams("m1")

	require.NoError(t, err)
	assert.Empty(t, streams)
}

func TestClientSetPlayed(t *testing.T) {
	var methods []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Users/u1/PlayedItems/m1", r.URL.Path)
		methods = append(methods, r.Method)
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok", "u1", zerolog.Nop())
	require.NoError(t, client.SetPlayed("m1", true))
	require.NoError(t, client.SetPlayed("m1", false))

	assert.Equal(t, []string{http.MethodPost, http.MethodDelete}, methods)
}

func TestClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok", "u1", zerolog.Nop())
	_, err := client.Libraries()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClientStreamURL(t *testing.T) {
	client := NewClient("http://server:8096/", "tok", "u1", zerolog.Nop())
	assert.Equal(t, "http://server:8096/Items/m1/Download?api_key=tok", client.StreamURL("m1"))
}
