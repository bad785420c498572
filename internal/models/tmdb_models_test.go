package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResult_Decode(t *testing.T) {
	body := `{"tv_results":[
		{"id":1,"name":"Show A","media_type":"tv","popularity":12.3,"vote_count":450},
		{"id":2,"name":"Show B","media_type":"tv","popularity":0.5,"vote_count":3}
	]}`

	var result SearchResult
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	require.Len(t, result.TvResults, 2)

	assert.Equal(t, TvEntry{ID: 1, Title: "Show A", MediaType: "tv", Popularity: 12.3, Rating: 450}, result.TvResults[0])
	assert.Equal(t, "Show B", result.TvResults[1].Title)
	assert.Equal(t, 3.0, result.TvResults[1].Rating)
}

func TestSearchResult_MissingTvResults(t *testing.T) {
	var result SearchResult
	require.NoError(t, json.Unmarshal([]byte(`{"movie_results":[]}`), &result))
	assert.Nil(t, result.TvResults)
}

func TestSearchResult_IgnoresUnknownFields(t *testing.T) {
	body := `{"person_results":[],"tv_results":[{"id":7,"name":"X","original_name":"Y","genre_ids":[18],"vote_average":8.1}]}`

	var result SearchResult
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	require.Len(t, result.TvResults, 1)
	assert.Equal(t, 7, result.TvResults[0].ID)
	assert.Equal(t, "X", result.TvResults[0].Title)
}

func TestTvEntry_MissingFieldsAreZero(t *testing.T) {
	var result SearchResult
	require.NoError(t, json.Unmarshal([]byte(`{"tv_results":[{"name":"Only Name"}]}`), &result))
	require.Len(t, result.TvResults, 1)
	assert.Equal(t, TvEntry{Title: "Only Name"}, result.TvResults[0])
}

func TestSearchResult_RoundTrip(t *testing.T) {
	original := SearchResult{TvResults: []TvEntry{
		{ID: 42, Title: "Round", MediaType: "tv", Popularity: 1.25, Rating: 99},
	}}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tv_results":[{"id":42,"name":"Round","media_type":"tv","popularity":1.25,"vote_count":99}]}`, string(data))

	var decoded SearchResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestTvEntry_String(t *testing.T) {
	tests := []struct {
		name  string
		entry TvEntry
		want  string
	}{
		{
			name:  "whole vote count",
			entry: TvEntry{ID: 1, Title: "Show A", MediaType: "tv", Popularity: 12.3, Rating: 450},
			want:  "TvEntry(id=1, title=Show A, mediaType=tv, popularity=12.3, rating=450.0)",
		},
		{
			name:  "zero value",
			entry: TvEntry{},
			want:  "TvEntry(id=0, title=, mediaType=, popularity=0.0, rating=0.0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.String())
		})
	}
}

func TestFormatDouble(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{450, "450.0"},
		{12.3, "12.3"},
		{-2, "-2.0"},
		{0.001, "0.001"},
		{9999999, "9999999.0"},
		{1e7, "1.0E7"},
		{123450000, "1.2345E8"},
		{0.0001, "1.0E-4"},
		{-0.00025, "-2.5E-4"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDouble(tt.in))
		})
	}
}
