package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/pterm/pterm"
	"golang.org/x/oauth2"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/auth"
	"github.com/gestory/gestoryctl/pkg/sdk"
)

// Provider yields SDK clients backed by the file credential store. Clients
// and the store are built lazily and shared across commands.
type Provider struct {
	apiURL      string
	bearerToken string // ephemeral token that bypasses the credential store (for CI/scripting)

	storeOnce sync.Once
	store     sdk.CredentialStore
	storeErr  error

	sdkOnce   sync.Once
	sdkClient *sdk.Client
	sdkErr    error
}

// NewProvider constructs a Provider bound to the given API base URL.
func NewProvider(apiURL string) *Provider {
	return &Provider{apiURL: apiURL}
}

// SetBearerToken injects an ephemeral bearer token that bypasses the
// credential store. Used by CI and scripts via GESTORY_TOKEN.
func (p *Provider) SetBearerToken(token string) {
	p.bearerToken = token
}

// Store returns the shared credential store.
func (p *Provider) Store() (sdk.CredentialStore, error) {
	p.storeOnce.Do(func() {
		store, err := auth.NewFileStore()
		if err != nil {
			p.storeErr = err
			return
		}
		p.store = store
	})
	return p.store, p.storeErr
}

// SDKClient returns the shared SDK client. No session check is performed;
// use AdminClient for protected operations.
func (p *Provider) SDKClient(ctx context.Context) (*sdk.Client, error) {
	p.sdkOnce.Do(func() {
		// Priority 1: ephemeral bearer token. The oauth2 transport injects
		// it on every request; the credential store is not involved.
		if p.bearerToken != "" {
			source := oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: p.bearerToken,
				TokenType:   "Bearer",
			})
			httpClient := oauth2.NewClient(context.Background(), source)
			httpClient.Timeout = sdk.DefaultTimeout
			p.sdkClient = sdk.NewClient(p.apiURL, sdk.WithHTTPClient(httpClient))
			return
		}

		// Priority 2: stored session.
		store, err := p.Store()
		if err != nil {
			p.sdkErr = err
			return
		}
		p.sdkClient = sdk.NewClient(p.apiURL,
			sdk.WithCredentialStore(store),
			sdk.WithOnAuthFailure(func() {
				pterm.Warning.Println("Session rejected by the server; local session cleared. Run 'gestoryctl auth login' to sign in again.")
			}),
		)
	})
	return p.sdkClient, p.sdkErr
}

// Guard returns a session guard requiring the administrator role, backed by
// the shared credential store.
func (p *Provider) Guard() (*sdk.SessionGuard, error) {
	store, err := p.Store()
	if err != nil {
		return nil, err
	}
	return sdk.NewSessionGuard(store, sdk.RoleAdministrator), nil
}

// AdminClient re-validates the stored session and returns the SDK client.
// The check runs at every protected command start; an unauthorized session
// never reaches the protected operation.
func (p *Provider) AdminClient(ctx context.Context) (*sdk.Client, error) {
	// An ephemeral token carries no local profile; the backend is the
	// authority in that mode.
	if p.bearerToken != "" {
		return p.SDKClient(ctx)
	}

	guard, err := p.Guard()
	if err != nil {
		return nil, err
	}
	if verdict := guard.Check(); verdict.State != sdk.SessionAuthorized {
		return nil, fmt.Errorf("%s — run 'gestoryctl auth login' first", verdict.Reason)
	}
	return p.SDKClient(ctx)
}
