package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"

	"github.com/fsdevblog/tagmark/internal/models"
	"github.com/fsdevblog/tagmark/internal/services"
)

func (s *ControllersSuite) TestCreateSnippet() {
	snip := &models.Snippet{ID: 5, URL: "https://example.com", Snippet: "quote"}

	s.snippetMock.On("Add", mock.Anything, "https://example.com", "quote", "go,db").
		Return(snip, nil).Once()

	res := s.makeRequest(http.MethodPost, "/api/snippets",
		`{"url":"https://example.com","snippet":"quote","tags":"go,db"}`)
	s.Equal(http.StatusCreated, res.Code)

	var got models.Snippet
	s.Require().NoError(json.Unmarshal(res.Body.Bytes(), &got))
	s.Equal(snip.ID, got.ID)
}

func (s *ControllersSuite) TestCreateSnippetValidation() {
	s.snippetMock.On("Add", mock.Anything, "https://example.com", "", "").
		Return(nil, errors.Wrap(services.ErrValidation, "snippet is blank")).Once()

	res := s.makeRequest(http.MethodPost, "/api/snippets", `{"url":"https://example.com","snippet":""}`)
	s.Equal(http.StatusUnprocessableEntity, res.Code)
}

func (s *ControllersSuite) TestListSnippets() {
	view := []models.SnippetWithTags{{ID: 1, URL: "https://a.com", Snippet: "q", Tags: []string{"x"}}}
	s.viewsMock.On("SnippetsWithTags", mock.Anything).Return(view, nil).Once()

	res := s.makeRequest(http.MethodGet, "/api/snippets", "")
	s.Equal(http.StatusOK, res.Code)

	var got []models.SnippetWithTags
	s.Require().NoError(json.Unmarshal(res.Body.Bytes(), &got))
	s.Equal(view, got)
}

func (s *ControllersSuite) TestDeleteSnippet() {
	s.snippetMock.On("DeleteByID", mock.Anything, uint(5)).Return(true, nil).Once()

	res := s.makeRequest(http.MethodDelete, "/api/snippets/5", "")
	s.Equal(http.StatusNoContent, res.Code)
}

func (s *ControllersSuite) TestDeleteSnippetNotFound() {
	s.snippetMock.On("DeleteByID", mock.Anything, uint(5)).Return(false, nil).Once()

	res := s.makeRequest(http.MethodDelete, "/api/snippets/5", "")
	s.Equal(http.StatusNotFound, res.Code)
}
