// internal/config/model.go
//
// Typed configuration model for the trading agents.
//
// Context
// -------
// `Settings` is the value the loader in `internal/config/loader.go` builds
// from three overlay layers:
//
//   • schema defaults                          – lowest precedence,
//   • optional `.env` file                     – dotenv values,
//   • process environment                      – highest precedence.
//
// Optional credentials are pointers: nil means the key was never
// supplied, a pointer to "" means it was supplied empty.  Consumers must
// not conflate the two.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`; the tag value is also the name used in
//     every error message.
//   • `LogsDir` is finalised at runtime from `ProjectRoot` when unset.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

import "time"

// Settings is the resolved, validated configuration.  Values handed out by
// Get are copies; mutating one never affects another caller.
type Settings struct {
	// LLM providers
	GrokAPIKey     string  `koanf:"grok_api_key"     validate:"required"`
	DeepseekAPIKey *string `koanf:"deepseek_api_key"`

	// MCP server
	MCPServerURL string `koanf:"mcp_server_url"`
	MCPTimeout   int    `koanf:"mcp_timeout"`

	// News sources
	NewsSources []string `koanf:"news_sources"`

	// Social sentiment
	CryptopanicAPIKey  *string `koanf:"cryptopanic_api_key"`
	TwitterBearerToken *string `koanf:"twitter_bearer_token"`
	RedditClientID     *string `koanf:"reddit_client_id"`
	RedditClientSecret *string `koanf:"reddit_client_secret"`
	RedditUserAgent    string  `koanf:"reddit_user_agent"`

	// Observability
	LangsmithAPIKey  *string `koanf:"langsmith_api_key"`
	LangsmithProject string  `koanf:"langsmith_project"`
	LangsmithTracing bool    `koanf:"langsmith_tracing"`

	// Application
	LogLevel       string `koanf:"log_level"       validate:"loglevel"`
	CacheEnabled   bool   `koanf:"cache_enabled"`
	CacheTTL       int    `koanf:"cache_ttl"`
	MaxRetries     int    `koanf:"max_retries"`
	RequestTimeout int    `koanf:"request_timeout"`

	// Agents
	DefaultChain       string `koanf:"default_chain"`
	DefaultRiskProfile string `koanf:"default_risk_profile" validate:"riskprofile"`
	DebateRounds       int    `koanf:"debate_rounds"`

	// Paths
	ProjectRoot string `koanf:"project_root"`
	LogsDir     string `koanf:"logs_dir"`
}

/*──────────────────────────── capability flags ────────────────────────────*/

// HasTwitterConfig reports whether a bearer token was supplied.
func (s Settings) HasTwitterConfig() bool {
	return s.TwitterBearerToken != nil
}

// HasRedditConfig reports whether both the client id and secret were
// supplied.  One without the other is not enough.
func (s Settings) HasRedditConfig() bool {
	return s.RedditClientID != nil && s.RedditClientSecret != nil
}

// HasLangsmithConfig reports whether tracing is enabled and has a key.
func (s Settings) HasLangsmithConfig() bool {
	return s.LangsmithAPIKey != nil && s.LangsmithTracing
}

// Capabilities returns every capability flag keyed by integration name.
func (s Settings) Capabilities() map[string]bool {
	return map[string]bool{
		"twitter":   s.HasTwitterConfig(),
		"reddit":    s.HasRedditConfig(),
		"langsmith": s.HasLangsmithConfig(),
	}
}

/*──────────────────────────── durations ───────────────────────────────────*/

func (s Settings) MCPTimeoutDuration() time.Duration {
	return time.Duration(s.MCPTimeout) * time.Second
}

func (s Settings) RequestTimeoutDuration() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

func (s Settings) CacheTTLDuration() time.Duration {
	return time.Duration(s.CacheTTL) * time.Second
}

/*──────────────────────────── copying ─────────────────────────────────────*/

// clone returns a deep copy so the cached value is never shared.
func (s *Settings) clone() Settings {
	out := *s
	if s.NewsSources != nil {
		out.NewsSources = append([]string(nil), s.NewsSources...)
	}
	out.DeepseekAPIKey = cloneString(s.DeepseekAPIKey)
	out.CryptopanicAPIKey = cloneString(s.CryptopanicAPIKey)
	out.TwitterBearerToken = cloneString(s.TwitterBearerToken)
	out.RedditClientID = cloneString(s.RedditClientID)
	out.RedditClientSecret = cloneString(s.RedditClientSecret)
	out.LangsmithAPIKey = cloneString(s.LangsmithAPIKey)
	return out
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
