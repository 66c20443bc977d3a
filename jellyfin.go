package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Item kinds as reported by the server. Series, Season and BoxSet are
// rollup kinds: their watch state derives from their children.
const (
	ItemMovie   = "Movie"
	ItemSeries  = "Series"
	ItemSeason  = "Season"
	ItemEpisode = "Episode"
	ItemBoxSet  = "BoxSet"
)

func isRollupKind(itemType string) bool {
	switch itemType {
	case ItemSeries, ItemSeason, ItemBoxSet:
		return true
	}
	return false
}

func isPlayableKind(itemType string) bool {
	return itemType == ItemMovie || itemType == ItemEpisode
}

// UserData is the per-user watch state attached to an item
type UserData struct {
	Played            bool    `json:"Played"`
	PlayedPercentage  float64 `json:"PlayedPercentage"`
	PlayCount         int     `json:"PlayCount"`
	UnplayedItemCount int     `json:"UnplayedItemCount"`
}

// Item is one catalog entity
type Item struct {
	ID             string   `json:"Id"`
	Name           string   `json:"Name"`
	Type           string   `json:"Type"`
	ProductionYear int      `json:"ProductionYear"`
	RunTimeTicks   int64    `json:"RunTimeTicks"`
	IndexNumber    int      `json:"IndexNumber"`
	ChildCount     int      `json:"ChildCount"`
	SeriesID       string   `json:"SeriesId"`
	UserData       UserData `json:"UserData"`
}

// Library is one top-level media view
type Library struct {
	ID             string `json:"Id"`
	Name           string `json:"Name"`
	CollectionType string `json:"CollectionType"`
}

// MediaStream describes one track of a media source
type MediaStream struct {
	Type             string  `json:"Type"`
	Codec            string  `json:"Codec"`
	Index            int     `json:"Index"`
	Width            int     `json:"Width"`
	Height           int     `json:"Height"`
	RealFrameRate    float64 `json:"RealFrameRate"`
	AverageFrameRate float64 `json:"AverageFrameRate"`
	Language         string  `json:"Language"`
	Channels         int     `json:"Channels"`
	IsForced         bool    `json:"IsForced"`
}

type itemsResponse struct {
	Items []Item `json:"Items"`
}

type viewsResponse struct {
	Items []Library `json:"Items"`
}

type playbackInfoResponse struct {
	MediaSources []struct {
		MediaStreams []MediaStream `json:"MediaStreams"`
	} `json:"MediaSources"`
}

// Client talks to the Jellyfin HTTP API. A single underlying http.Client is
// reused for every call so the connection persists across the process
// lifetime.
type Client struct {
	baseURL string
	apiKey  string
	userID  string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL, apiKey, userID string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		userID:  userID,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

func (c *Client) get(path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-MediaBrowser-Token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		c.log.Error().Int("status", resp.StatusCode).Str("path", path).Msg("unexpected status")
		return fmt.Errorf("server returned %d for %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Libraries fetches the media views usable as browse roots
func (c *Client) Libraries() ([]Library, error) {
	var resp viewsResponse
	if err := c.get("/Users/"+c.userID+"/Views", nil, &resp); err != nil {
		return nil, err
	}

	var libraries []Library
	for _, lib := range resp.Items {
		switch lib.CollectionType {
		case "movies", "tvshows", "mixed", "boxsets", "":
			libraries = append(libraries, lib)
		}
	}
	return libraries, nil
}

// LibraryItems fetches all movies, series and collections under a library.
// An empty parentID fetches across every library.
func (c *Client) LibraryItems(parentID string) ([]Item, error) {
	params := url.Values{
		"IncludeItemTypes": {"Movie,Series,BoxSet"},
		"Recursive":        {"true"},
		"Fields":           {"ProductionYear,Overview,RunTimeTicks,UserData"},
		"SortBy":           {"SortName"},
		"SortOrder":        {"Ascending"},
	}
	if parentID != "" {
		params.Set("ParentId", parentID)
	}

	var resp itemsResponse
	if err := c.get("/Users/"+c.userID+"/Items", params, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Seasons fetches the seasons of a series
func (c *Client) Seasons(seriesID string) ([]Item, error) {
	params := url.Values{
		"userId": {c.userID},
		"Fields": {"Overview,UserData"},
	}
	var resp itemsResponse
	if err := c.get("/Shows/"+seriesID+"/Seasons", params, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Episodes fetches the episodes of one season
func (c *Client) Episodes(seriesID, seasonID string) ([]Item, error) {
	params := url.Values{
		"seasonId": {seasonID},
		"userId":   {c.userID},
		"Fields":   {"Overview,RunTimeTicks,UserData"},
	}
	var resp itemsResponse
	if err := c.get("/Shows/"+seriesID+"/Episodes", params, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// CollectionItems fetches the children of a BoxSet
func (c *Client) CollectionItems(collectionID string) ([]Item, error) {
	params := url.Values{
		"ParentId":  {collectionID},
		"Fields":    {"ProductionYear,Overview,RunTimeTicks,UserData"},
		"SortBy":    {"SortName"},
		"SortOrder": {"Ascending"},
	}
	var resp itemsResponse
	if err := c.get("/Users/"+c.userID+"/Items", params, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Item re-fetches a single entity. Used after mutating a rollup kind whose
// watch indicator cannot be recomputed client-side.
func (c *Client) Item(itemID string) (*Item, error) {
	params := url.Values{
		"Fields": {"ProductionYear,Overview,RunTimeTicks,UserData"},
	}
	var item Item
	if err := c.get("/Users/"+c.userID+"/Items/"+itemID, params, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// MediaStreams fetches the track list of an item's first media source
func (c *Client) MediaStreams(itemID string) ([]MediaStream, error) {
	params := url.Values{"UserId": {c.userID}}
	var resp playbackInfoResponse
	if err := c.get("/Items/"+itemID+"/PlaybackInfo", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.MediaSources) == 0 {
		return nil, nil
	}
	return resp.MediaSources[0].MediaStreams, nil
}

// SetPlayed sets or clears the watched flag for an item
func (c *Client) SetPlayed(itemID string, played bool) error {
	method := http.MethodPost
	if !played {
		method = http.MethodDelete
	}

	req, err := http.NewRequest(method, c.baseURL+"/Users/"+c.userID+"/PlayedItems/"+itemID, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-MediaBrowser-Token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("server returned %d setting played state", resp.StatusCode)
	}
	return nil
}

// StreamURL returns the direct download URL for an item
func (c *Client) StreamURL(itemID string) string {
	return fmt.Sprintf("%s/Items/%s/Download?api_key=%s", c.baseURL, itemID, c.apiKey)
}
