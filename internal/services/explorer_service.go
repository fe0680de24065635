package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"tripsmith/internal/models/request_models"
	"tripsmith/internal/models/response_models"
	"tripsmith/internal/repositories"
	"tripsmith/pkg/utils"
)

const explorerSystemPrompt = "You are a travel expert. Provide comprehensive, helpful travel advice based on the search results provided. Format your response with clear structure, bullet points where appropriate, and cite sources using [1], [2], etc. Be specific about practical details like timing, costs, and logistics."

// Domains considered official when the caller restricts sources.
var officialDomains = []string{
	"visitscotland.com", "scotrail.co.uk", "lonelyplanet.com",
	"tripadvisor.com", "booking.com", "airbnb.com", "gov.uk",
}

type ExplorerServiceInterface interface {
	AnswerTravelQuery(ctx context.Context, req request_models.TravelQuery) (*response_models.TravelAnswer, error)
	GetTravelAnswerById(ctx context.Context, id string) (*response_models.TravelAnswer, error)
}

type ExplorerService struct {
	search  utils.SearchClientInterface
	llm     utils.TextGeneratorInterface
	answers repositories.AnswerRepository
}

func NewExplorerService(
	search utils.SearchClientInterface,
	llm utils.TextGeneratorInterface,
	answers repositories.AnswerRepository,
) ExplorerServiceInterface {
	return &ExplorerService{
		search:  search,
		llm:     llm,
		answers: answers,
	}
}

// AnswerTravelQuery runs one search call and one dependent generation call,
// then stores the cited answer.
func (s *ExplorerService) AnswerTravelQuery(ctx context.Context, req request_models.TravelQuery) (*response_models.TravelAnswer, error) {
	query := strings.TrimSpace(req.Query)
	if utf8.RuneCountInString(query) < 3 {
		return nil, utils.ErrQueryTooShort
	}

	searchReq := utils.TavilySearchRequest{
		Query:             query,
		SearchDepth:       "advanced",
		MaxResults:        8,
		IncludeAnswer:     false,
		IncludeRawContent: false,
	}
	if req.OfficialSourcesOnly {
		searchReq.IncludeDomains = officialDomains
	}
	if req.PreferRecent {
		searchReq.TimeRange = "year"
	}

	searchResp, err := s.search.Search(ctx, searchReq)
	if err != nil {
		log.Printf("Travel search error: %v", err)
		return nil, utils.ErrSearchProvider
	}

	sources := buildSources(searchResp.Results)

	answerText, err := s.llm.GenerateText(ctx, utils.GenerationRequest{
		SystemPrompt: explorerSystemPrompt,
		UserPrompt:   buildExplorerPrompt(query, sources),
		MaxTokens:    800,
		Temperature:  0.7,
	})
	if err != nil {
		log.Printf("Explorer generation error: %v", err)
		return nil, utils.ErrTextGeneration
	}

	answer := response_models.TravelAnswer{
		ID:        uuid.New().String(),
		Query:     query,
		Answer:    answerText,
		Sources:   sources,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.answers.SaveAnswer(ctx, answer); err != nil {
		log.Printf("Failed to save travel answer: %v", err)
		return nil, utils.ErrStorageError
	}

	return &answer, nil
}

func (s *ExplorerService) GetTravelAnswerById(ctx context.Context, id string) (*response_models.TravelAnswer, error) {
	answer, err := s.answers.GetAnswerById(ctx, id)
	if err != nil {
		return nil, utils.ErrStorageError
	}
	if answer == nil {
		return nil, utils.ErrAnswerNotFound
	}
	return answer, nil
}

func buildSources(results []utils.TavilyResult) []response_models.Source {
	sources := make([]response_models.Source, 0, len(results))
	for i, r := range results {
		sources = append(sources, response_models.Source{
			ID:             uuid.New().String(),
			Title:          r.Title,
			URL:            r.URL,
			Domain:         hostOf(r.URL),
			PublishedDate:  r.PublishedDate,
			Snippet:        r.Content,
			CitationNumber: i + 1,
		})
	}
	return sources
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func buildExplorerPrompt(query string, sources []response_models.Source) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Travel question: %s\n\nSearch results:\n", query)
	for _, source := range sources {
		fmt.Fprintf(&b, "[%d] %s\n%s\nSource: %s\n\n", source.CitationNumber, source.Title, source.Snippet, source.Domain)
	}
	return b.String()
}
