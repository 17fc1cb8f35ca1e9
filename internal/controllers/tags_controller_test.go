package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/fsdevblog/tagmark/internal/models"
)

func (s *ControllersSuite) TestListTags() {
	view := []models.TagWithURLsAndSnippets{
		{
			Tag:  "y",
			URLs: []string{"https://a.com"},
			Snippets: []models.SnippetWithTags{
				{ID: 1, URL: "https://b.com", Snippet: "q", Tags: []string{"y", "z"}},
			},
		},
	}
	s.viewsMock.On("TagsWithURLsAndSnippets", mock.Anything).Return(view, nil).Once()

	res := s.makeRequest(http.MethodGet, "/api/tags", "")
	s.Equal(http.StatusOK, res.Code)

	var got []models.TagWithURLsAndSnippets
	s.Require().NoError(json.Unmarshal(res.Body.Bytes(), &got))
	s.Equal(view, got)
}

func (s *ControllersSuite) TestTagsCleanup() {
	s.tagMock.On("RemoveUnused", mock.Anything).Return(int64(2), nil).Once()

	res := s.makeRequest(http.MethodPost, "/api/tags/cleanup", "")
	s.Equal(http.StatusOK, res.Code)
	s.JSONEq(`{"removed":2}`, res.Body.String())
}

func (s *ControllersSuite) TestHealth() {
	s.pingMock.On("CheckConnection", mock.Anything).Return(nil).Once()

	res := s.makeRequest(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, res.Code)
	s.JSONEq(`{"status":"ok","storage":"ok"}`, res.Body.String())
}

func (s *ControllersSuite) TestIndex() {
	res := s.makeRequest(http.MethodGet, "/", "")
	s.Equal(http.StatusOK, res.Code)
	s.Equal("Welcome", res.Body.String())
}
