package dialogue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRules = Rules{
	AggressiveWords: []string{"kill", "smash", "crush"},
	TauntWords:      []string{"haha", "weak", "loser"},
	Lines:           []string{"First.", "Second."},
}

func TestClassify(t *testing.T) {
	tests := []struct {
		phase Phase
		text  string
		want  Classification
	}{
		{PhaseIntro, "I will SMASH you", Aggressive},
		{PhaseIntro, "we came for the girl", Determined},
		{PhaseIntro, "", Determined},
		{PhasePhase2, "haha you're weak", Taunt},
		{PhasePhase2, "give her back", Angry},
		{PhasePhase2, "", Angry},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, testRules.Classify(tt.phase, tt.text), "%s %q", tt.phase, tt.text)
	}
}

func TestLinePrefixes(t *testing.T) {
	assert.Equal(t, "Ha! Keep laughing. Second.", testRules.Line(Taunt, 1))
	assert.Equal(t, "Enough talk. First.", testRules.Line(Angry, 2))
	assert.Equal(t, "You've made me... furious! First.", testRules.Line(Aggressive, 0))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(PhaseIntro, Aggressive))
	assert.False(t, Valid(PhaseIntro, Taunt))
	assert.True(t, Valid(PhasePhase2, Angry))
	assert.False(t, Valid(PhasePhase2, "bogus"))
}

func TestLocalAnswersImmediately(t *testing.T) {
	l := NewLocal(testRules)
	l.Request(context.Background(), Request{Token: 7, Phase: PhasePhase2, PlayerText: "loser"})

	select {
	case resp := <-l.Responses():
		assert.Equal(t, uint64(7), resp.Token)
		assert.Equal(t, Taunt, resp.Classification)
		assert.False(t, resp.Fallback)
	default:
		t.Fatal("expected a buffered response")
	}
}

func TestHTTPClientSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, PhasePhase2, req.Phase)
		_ = json.NewEncoder(w).Encode(proxyResponse{
			OK:     true,
			Result: proxyResult{Classification: Taunt, Line: "Cute."},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testRules, time.Second)
	c.Request(context.Background(), Request{Token: 3, Phase: PhasePhase2, PlayerText: "lol"})

	select {
	case resp := <-c.Responses():
		assert.Equal(t, uint64(3), resp.Token)
		assert.Equal(t, Taunt, resp.Classification)
		assert.Equal(t, "Cute.", resp.Line)
		assert.False(t, resp.Fallback)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for response")
	}
}

func TestHTTPClientInvalidClassificationFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(proxyResponse{
			OK:     true,
			Result: proxyResult{Classification: "sarcastic", Line: "???"},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testRules, time.Second)
	c.Request(context.Background(), Request{Token: 4, Phase: PhaseIntro, PlayerText: "crush him"})

	select {
	case resp := <-c.Responses():
		assert.Equal(t, uint64(4), resp.Token)
		assert.Equal(t, Aggressive, resp.Classification)
		assert.True(t, resp.Fallback)
		assert.Error(t, resp.Err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for fallback")
	}
}

func TestHTTPClientServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testRules, time.Second)
	c.Request(context.Background(), Request{Token: 5, Phase: PhasePhase2})

	select {
	case resp := <-c.Responses():
		assert.Equal(t, Angry, resp.Classification)
		assert.True(t, resp.Fallback)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for fallback")
	}
}
