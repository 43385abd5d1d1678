package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "practice-gen",
			InputTokens: 120, OutputTokens: 480, LatencyMs: 900, Success: true,
			RequestBody: "[user]\ngere exercícios", ResponseBody: `[{"type":"select"}]`},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "chat-tutor",
			InputTokens: 40, OutputTokens: 60, LatencyMs: 400, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "practice-gen",
			LatencyMs: 100, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	// Most recent first.
	if got[0].ErrorMessage != "rate limited" || got[0].Success {
		t.Errorf("unexpected first event: %+v", got[0])
	}
	if got[0].Timestamp.IsZero() {
		t.Error("timestamp not recorded")
	}

	got, err = repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "chat-tutor"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Purpose != "chat-tutor" {
		t.Fatalf("purpose filter returned %+v", got)
	}

	got, err = repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("limit ignored, got %d events", len(got))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "practice-gen", Success: true,
		RequestBody: "req", ResponseBody: "resp",
	}); err != nil {
		t.Fatal(err)
	}

	e, err := repo.GetLLMEvent(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if e == nil || e.RequestBody != "req" || e.ResponseBody != "resp" {
		t.Fatalf("unexpected event: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown id, got %+v", missing)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "practice-gen", InputTokens: 100, OutputTokens: 200, LatencyMs: 1000, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "practice-gen", InputTokens: 100, OutputTokens: 200, LatencyMs: 2000, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "chat-tutor", InputTokens: 50, OutputTokens: 50, LatencyMs: 500, Success: true},
	}
	for _, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatal(err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purpose rows, want 2", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Purpose == "practice-gen" {
			if u.Calls != 2 || u.InputTokens != 200 || u.OutputTokens != 400 || u.AvgLatencyMs != 1500 {
				t.Errorf("practice-gen usage %+v", u)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d model rows, want 2", len(byModel))
	}
}

func TestLessonCompletionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	completions := []LessonCompletionEventData{
		{Language: "Inglês", Level: "Básico", LessonID: "en-basic-1", Title: "Saudações", Source: "curriculum", ExerciseCount: 3, XPAwarded: 30},
		{Language: "Inglês", Level: "Básico", LessonID: "en-basic-2", Title: "Apresentações", Source: "curriculum", ExerciseCount: 3, XPAwarded: 30},
		{Language: "Inglês", Level: "Básico", LessonID: "ai-42", Title: "Prática Mágica", Source: "ai", ExerciseCount: 4, XPAwarded: 40},
	}
	for _, c := range completions {
		if err := repo.AppendLessonCompletion(ctx, c); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := repo.LessonStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d stat rows, want 2", len(stats))
	}
	for _, st := range stats {
		switch st.Source {
		case "curriculum":
			if st.Completions != 2 || st.XPAwarded != 60 {
				t.Errorf("curriculum stats %+v", st)
			}
		case "ai":
			if st.Completions != 1 || st.XPAwarded != 40 {
				t.Errorf("ai stats %+v", st)
			}
		}
	}
}
