package service

import (
	"errors"
	"testing"
	"time"

	"studycost-agent/domain"
)

type mockCache struct {
	data      map[string]string
	setCalled bool
	forceErr  bool
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string]string)}
}

func (m *mockCache) Get(key string) (string, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockCache) Set(key string, value string, ttl time.Duration) error {
	m.setCalled = true
	if m.forceErr {
		return errors.New("set error")
	}
	m.data[key] = value
	return nil
}

func TestGenerateBudgetTips_DisabledReturnsStatic(t *testing.T) {

	cache := newMockCache()
	ai := &AIService{enabled: false, cache: cache}

	tips := ai.GenerateBudgetTips(referenceInput(), domain.EstimateResult{})

	if len(tips) != len(StaticTips()) {
		t.Errorf("expected static tips when disabled, got %d tips", len(tips))
	}
	if cache.setCalled {
		t.Errorf("disabled service must not touch the cache")
	}
}

func TestGenerateBudgetTips_CacheHitSkipsLLM(t *testing.T) {

	input := referenceInput()

	cache := newMockCache()
	cache.data[tipsCacheKey(input)] = "consejo uno\nconsejo dos"

	// enabled pero sin httpClient: si llegara a llamar al LLM, el test entra en pánico
	ai := &AIService{enabled: true, cache: cache}

	tips := ai.GenerateBudgetTips(input, domain.EstimateResult{})

	if len(tips) != 2 || tips[0] != "consejo uno" || tips[1] != "consejo dos" {
		t.Errorf("expected cached tips, got %v", tips)
	}
}

func TestParseTips(t *testing.T) {

	answer := "- Cocina en casa.\n\n* Comparte apartamento.\n2. Usa descuentos de estudiante.\n   \n"

	tips := parseTips(answer)

	if len(tips) != 3 {
		t.Fatalf("expected 3 tips, got %d: %v", len(tips), tips)
	}
	if tips[0] != "Cocina en casa." {
		t.Errorf("unexpected first tip: %q", tips[0])
	}
	if tips[1] != "Comparte apartamento." {
		t.Errorf("unexpected second tip: %q", tips[1])
	}
	if tips[2] != "Usa descuentos de estudiante." {
		t.Errorf("numbered markers must be stripped, got %q", tips[2])
	}
}

func TestStaticTips_NotEmpty(t *testing.T) {

	tips := StaticTips()

	if len(tips) == 0 {
		t.Fatal("static fallback tips must never be empty")
	}
	for i, tip := range tips {
		if tip == "" {
			t.Errorf("tip %d is empty", i)
		}
	}
}
