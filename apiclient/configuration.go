package apiclient

import (
	"net/http"
	"strings"
	"time"

	werror "github.com/palantir/witchcraft-go-error"
)

const (
	// DefaultBasePath is the server used when no base path is configured.
	DefaultBasePath = "http://localhost"
	// DefaultUserAgent identifies requests sent by this client.
	DefaultUserAgent = "petstore-client/1.0.0/go"
)

// Configuration is shared by every API service of a client. It is read-only
// after NewConfiguration returns and safe for concurrent use.
type Configuration struct {
	basePath   string
	headers    http.Header
	httpClient *http.Client
	apiWrapper func(*http.Request) error
	codecs     map[string]Codec
	userAgent  string
}

// ConfigOption mutates a Configuration under construction.
type ConfigOption func(*Configuration)

// WithBasePath sets the server URL every operation path is appended to.
func WithBasePath(basePath string) ConfigOption {
	return func(c *Configuration) { c.basePath = strings.TrimRight(strings.TrimSpace(basePath), "/") }
}

// WithDefaultHeader adds a header sent with every request unless a call
// replaces the header set.
func WithDefaultHeader(key, value string) ConfigOption {
	return func(c *Configuration) { c.headers.Add(key, value) }
}

// WithHTTPClient sets the client used to send requests. Timeouts and
// transport settings come from it.
func WithHTTPClient(client *http.Client) ConfigOption {
	return func(c *Configuration) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithAPIWrapper installs a hook run on every request once the URL, default
// headers and caller headers are set. Operation header parameters and the
// body are applied after it; per-call hooks run last.
func WithAPIWrapper(fn func(*http.Request) error) ConfigOption {
	return func(c *Configuration) { c.apiWrapper = fn }
}

// WithCodec registers a codec for its content type, replacing any existing one.
func WithCodec(codec Codec) ConfigOption {
	return func(c *Configuration) {
		if codec != nil {
			c.codecs[mediaType(codec.ContentType())] = codec
		}
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(userAgent string) ConfigOption {
	return func(c *Configuration) { c.userAgent = strings.TrimSpace(userAgent) }
}

// NewConfiguration builds a Configuration. JSON, YAML and plain text codecs
// are registered by default.
func NewConfiguration(opts ...ConfigOption) *Configuration {
	c := &Configuration{
		basePath:   DefaultBasePath,
		headers:    make(http.Header),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		codecs: map[string]Codec{
			contentTypeJSON:  JSON,
			contentTypeYAML:  YAML,
			contentTypePlain: Plain,
		},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultConfiguration returns NewConfiguration with no options.
func DefaultConfiguration() *Configuration {
	return NewConfiguration()
}

func (c *Configuration) BasePath() string         { return c.basePath }
func (c *Configuration) UserAgent() string        { return c.userAgent }
func (c *Configuration) HTTPClient() *http.Client { return c.httpClient }

// CustomHeaders returns a copy of the default headers.
func (c *Configuration) CustomHeaders() http.Header {
	return c.headers.Clone()
}

// RequireEncoder returns the codec registered for contentType.
func (c *Configuration) RequireEncoder(contentType string) (Encoder, error) {
	codec, ok := c.codecs[mediaType(contentType)]
	if !ok {
		return nil, werror.Error("no encoder registered for content type",
			werror.SafeParam("contentType", contentType))
	}
	return codec, nil
}

// RequireDecoder returns the codec registered for contentType. An empty
// content type resolves to JSON.
func (c *Configuration) RequireDecoder(contentType string) (Decoder, error) {
	mt := mediaType(contentType)
	if mt == "" {
		mt = contentTypeJSON
	}
	codec, ok := c.codecs[mt]
	if !ok {
		return nil, werror.Error("no decoder registered for content type",
			werror.SafeParam("contentType", contentType))
	}
	return codec, nil
}
