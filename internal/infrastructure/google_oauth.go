package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	userinfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
	stateLifetime = 10 * time.Minute
)

var ErrInvalidState = errors.New("invalid or expired oauth state")

// GoogleProfile is the verified profile delivered by the identity provider.
type GoogleProfile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleOAuth runs the authorization-code flow against Google. States are
// single-use nonces held in memory; an unknown or expired state fails the
// callback.
type GoogleOAuth struct {
	config *oauth2.Config
	states map[string]time.Time
	mutex  sync.Mutex
}

func NewGoogleOAuth(clientID, clientSecret, redirectURL string) *GoogleOAuth {
	g := &GoogleOAuth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		states: make(map[string]time.Time),
	}
	go g.cleanupStaleStates()
	return g
}

// cleanupStaleStates drops states whose consent redirect never came back,
// so abandoned logins do not accumulate in the map.
func (g *GoogleOAuth) cleanupStaleStates() {
	ticker := time.NewTicker(stateLifetime)
	defer ticker.Stop()

	for range ticker.C {
		g.removeExpiredStates(time.Now())
	}
}

func (g *GoogleOAuth) removeExpiredStates(now time.Time) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	for state, expiry := range g.states {
		if now.After(expiry) {
			delete(g.states, state)
		}
	}
}

// Enabled reports whether client credentials were configured.
func (g *GoogleOAuth) Enabled() bool {
	return g.config.ClientID != "" && g.config.ClientSecret != ""
}

// AuthURL returns the consent-screen URL for a fresh state nonce.
func (g *GoogleOAuth) AuthURL() string {
	state := uuid.NewString()

	g.mutex.Lock()
	g.states[state] = time.Now().Add(stateLifetime)
	g.mutex.Unlock()

	return g.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange verifies the state, swaps the code for a token and fetches the
// userinfo profile.
func (g *GoogleOAuth) Exchange(ctx context.Context, state, code string) (*GoogleProfile, error) {
	if !g.consumeState(state) {
		return nil, ErrInvalidState
	}

	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange oauth code: %w", err)
	}

	return g.fetchProfile(ctx, token)
}

func (g *GoogleOAuth) consumeState(state string) bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	expiry, ok := g.states[state]
	if !ok {
		return false
	}
	delete(g.states, state)
	return time.Now().Before(expiry)
}

func (g *GoogleOAuth) fetchProfile(ctx context.Context, token *oauth2.Token) (*GoogleProfile, error) {
	client := g.config.Client(ctx, token)
	resp, err := client.Get(userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch userinfo: status %d", resp.StatusCode)
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if profile.Email == "" {
		return nil, errors.New("userinfo response missing email")
	}

	return &profile, nil
}
