// internal/config/schema.go
//
// Field schema for the trading-agent configuration.
//
// Context
// -------
// `Schema` is the single source of truth the resolver walks.  Each entry
// names one key (matched case-insensitively against environment variable
// names), its kind, whether it is required or defaulted, whether its value
// must be hidden from logs, and a human-readable description.  Adding a
// configurable value means adding one entry here plus the matching field
// in `Settings`; the loader, validator, and redactor need no change.
//
// Notes
// -----
//   • Entries are listed in declaration order; the resolver reports errors
//     in this order.
//   • A nil Default with Required == false means "absent", which is not
//     the same thing as an empty string.
//   • Oxford commas, two spaces after periods.

package config

import "strings"

// Kind is the semantic type a raw textual value is coerced into.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindList
	KindEnum
	KindPath
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	case KindList:
		return "list of strings"
	case KindEnum:
		return "enumerated string"
	case KindPath:
		return "path"
	}
	return "unknown"
}

// Field declares one configuration key.
type Field struct {
	Name        string
	Kind        Kind
	Required    bool
	Secret      bool
	Default     any        // nil means absent
	DefaultFunc func() any // computed default, wins over Default
	Allowed     []string   // enum members, in display order
	Normalize   func(string) string
	Description string
}

// Legal enum members.
var (
	LogLevels    = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}
	RiskProfiles = []string{"aggressive", "moderate", "conservative"}
)

// DefaultNewsSources is the feed list used when news_sources is not set.
func DefaultNewsSources() []string {
	return []string{
		"https://cryptonews.com/news/feed/",
		"https://www.coindesk.com/arc/outboundfeeds/rss/",
		"https://cointelegraph.com/rss",
	}
}

// Schema lists every recognised key.
var Schema = []Field{
	//
	// LLM providers
	//
	{Name: "grok_api_key", Kind: KindString, Required: true, Secret: true,
		Description: "Grok API key (primary LLM)"},
	{Name: "deepseek_api_key", Kind: KindString, Secret: true,
		Description: "DeepSeek API key (backup)"},

	//
	// MCP server
	//
	{Name: "mcp_server_url", Kind: KindString, Default: "http://localhost:8000",
		Description: "MCP server URL"},
	{Name: "mcp_timeout", Kind: KindInt, Default: 30,
		Description: "MCP request timeout in seconds"},

	//
	// News sources
	//
	{Name: "news_sources", Kind: KindList, DefaultFunc: func() any { return DefaultNewsSources() },
		Description: "RSS feed URLs for crypto news"},

	//
	// Social sentiment
	//
	{Name: "cryptopanic_api_key", Kind: KindString, Secret: true,
		Description: "CryptoPanic API key"},
	{Name: "twitter_bearer_token", Kind: KindString, Secret: true,
		Description: "Twitter API v2 bearer token"},
	{Name: "reddit_client_id", Kind: KindString, Secret: true,
		Description: "Reddit client ID"},
	{Name: "reddit_client_secret", Kind: KindString, Secret: true,
		Description: "Reddit client secret"},
	{Name: "reddit_user_agent", Kind: KindString, Default: "CryptoTradingAgent/1.0",
		Description: "Reddit user agent"},

	//
	// Observability
	//
	{Name: "langsmith_api_key", Kind: KindString, Secret: true,
		Description: "LangSmith API key"},
	{Name: "langsmith_project", Kind: KindString, Default: "crypto-trading-agents",
		Description: "LangSmith project name"},
	{Name: "langsmith_tracing", Kind: KindBool, Default: false,
		Description: "Enable LangSmith tracing"},

	//
	// Application
	//
	{Name: "log_level", Kind: KindEnum, Default: "INFO", Allowed: LogLevels,
		Normalize: strings.ToUpper, Description: "Logging level"},
	{Name: "cache_enabled", Kind: KindBool, Default: true,
		Description: "Enable response caching"},
	{Name: "cache_ttl", Kind: KindInt, Default: 300,
		Description: "Cache TTL in seconds"},
	{Name: "max_retries", Kind: KindInt, Default: 3,
		Description: "Maximum API retry attempts"},
	{Name: "request_timeout", Kind: KindInt, Default: 30,
		Description: "Default request timeout in seconds"},

	//
	// Agents
	//
	{Name: "default_chain", Kind: KindString, Default: "ethereum",
		Description: "Default blockchain"},
	{Name: "default_risk_profile", Kind: KindEnum, Default: "moderate", Allowed: RiskProfiles,
		Normalize: strings.ToLower, Description: "Default risk profile (aggressive|moderate|conservative)"},
	{Name: "debate_rounds", Kind: KindInt, Default: 3,
		Description: "Number of debate rounds"},

	//
	// Paths
	//
	{Name: "project_root", Kind: KindPath, DefaultFunc: func() any { return discoverRoot() },
		Description: "Project root directory"},
	{Name: "logs_dir", Kind: KindPath,
		Description: "Logs directory (defaults to <project_root>/logs)"},
}

// fieldIndex maps a lower-case key to its schema position.
var fieldIndex = func() map[string]int {
	m := make(map[string]int, len(Schema))
	for i, f := range Schema {
		m[f.Name] = i
	}
	return m
}()

// lookupField returns the field for a key of any case.
func lookupField(key string) (Field, bool) {
	i, ok := fieldIndex[strings.ToLower(key)]
	if !ok {
		return Field{}, false
	}
	return Schema[i], true
}

// defaultValue returns the field's default, or nil when absent.
func (f Field) defaultValue() any {
	if f.DefaultFunc != nil {
		return f.DefaultFunc()
	}
	return f.Default
}
