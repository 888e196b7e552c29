// Package fetch retrieves BioPAX OWL documents from public pathway
// databases. It returns raw bytes only; parsing is the caller's concern.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Default endpoint bases. Each can be overridden per Client, which the
// tests use to point at an httptest server.
const (
	DefaultPathwayCommonsURL = "https://www.pathwaycommons.org/pc2/graph"
	DefaultReactomeURL       = "https://reactome.org/ReactomeRESTfulAPI/RESTfulWS/biopaxExporter/Level3"
	DefaultNetPathURL        = "http://netpath.org/data/biopax"
	DefaultBioCycURL         = "https://biocyc.org/META/pathway-biopax"
	DefaultEcoCycURL         = "https://ecocyc.org/ECOLI/pathway-biopax"
	DefaultMetaCycURL        = "https://metacyc.org/META/pathway-biopax"
	DefaultHumanCycURL       = "https://humancyc.org/HUMAN/pathway-biopax"
)

// GraphKind selects the Pathway Commons graph query algorithm.
type GraphKind string

const (
	Neighborhood GraphKind = "neighborhood"
	PathsBetween GraphKind = "pathsbetween"
	PathsFromTo  GraphKind = "pathsfromto"
)

// GraphOptions carries the optional parameters of a Pathway Commons graph
// query. Zero values are omitted from the request.
type GraphOptions struct {
	// Limit bounds the length of the longest path considered.
	Limit int
	// Organism restricts results to a taxonomy identifier, e.g. "9606".
	Organism string
	// Datasources restricts results to the named providers, e.g. "pid".
	Datasources []string
}

// Client fetches OWL documents over HTTP. The zero value is usable; URL
// fields default to the public endpoints and HTTPClient to a client with
// a 60 second timeout.
type Client struct {
	HTTPClient *http.Client

	PathwayCommonsURL string
	ReactomeURL       string
	NetPathURL        string
	BioCycURL         string
	EcoCycURL         string
	MetaCycURL        string
	HumanCycURL       string
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 60 * time.Second}
}

func base(override, def string) string {
	if override != "" {
		return override
	}
	return def
}

// Fetch performs a GET against an arbitrary URL and returns the response
// body. Non-2xx responses are reported as errors.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	res, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", rawURL, res.Status)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", rawURL, err)
	}
	return body, nil
}

// GraphQuery runs a Pathway Commons graph query and returns the resulting
// OWL document. Targets are required for PathsFromTo and rejected for the
// other kinds.
func (c *Client) GraphQuery(ctx context.Context, kind GraphKind, sources, targets []string, opts *GraphOptions) ([]byte, error) {
	switch kind {
	case Neighborhood, PathsBetween:
		if len(targets) > 0 {
			return nil, fmt.Errorf("graph query %s does not accept targets", kind)
		}
	case PathsFromTo:
		if len(targets) == 0 {
			return nil, fmt.Errorf("graph query %s requires targets", kind)
		}
	default:
		return nil, fmt.Errorf("unknown graph query kind %q", kind)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("graph query requires at least one source")
	}
	params := url.Values{}
	params.Set("kind", string(kind))
	params.Set("format", "BIOPAX")
	for _, s := range sources {
		params.Add("source", s)
	}
	for _, t := range targets {
		params.Add("target", t)
	}
	if opts != nil {
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Organism != "" {
			params.Set("organism", opts.Organism)
		}
		for _, ds := range opts.Datasources {
			params.Add("datasource", ds)
		}
	}
	endpoint := base(c.PathwayCommonsURL, DefaultPathwayCommonsURL)
	return c.Fetch(ctx, endpoint+"?"+params.Encode())
}

// Reactome fetches the Level-3 BioPAX export of a Reactome event. Stable
// identifiers of the form R-XXX-NNNNN are reduced to their numeric part,
// which is what the exporter endpoint expects.
func (c *Client) Reactome(ctx context.Context, identifier string) ([]byte, error) {
	if strings.HasPrefix(identifier, "R-") {
		parts := strings.Split(identifier, "-")
		identifier = parts[len(parts)-1]
	}
	endpoint := base(c.ReactomeURL, DefaultReactomeURL)
	return c.Fetch(ctx, endpoint+"/"+url.PathEscape(identifier))
}

// NetPath fetches a NetPath pathway, e.g. identifier "22" for leptin
// signaling.
func (c *Client) NetPath(ctx context.Context, identifier string) ([]byte, error) {
	endpoint := base(c.NetPathURL, DefaultNetPathURL)
	return c.Fetch(ctx, fmt.Sprintf("%s/NetPath_%s.owl", endpoint, url.PathEscape(identifier)))
}

// BioCyc fetches a BioCyc pathway, e.g. identifier "P105-PWY".
func (c *Client) BioCyc(ctx context.Context, identifier string) ([]byte, error) {
	return c.cyc(ctx, base(c.BioCycURL, DefaultBioCycURL), identifier)
}

// EcoCyc fetches an EcoCyc pathway, e.g. identifier "TCA".
func (c *Client) EcoCyc(ctx context.Context, identifier string) ([]byte, error) {
	return c.cyc(ctx, base(c.EcoCycURL, DefaultEcoCycURL), identifier)
}

// MetaCyc fetches a MetaCyc pathway.
func (c *Client) MetaCyc(ctx context.Context, identifier string) ([]byte, error) {
	return c.cyc(ctx, base(c.MetaCycURL, DefaultMetaCycURL), identifier)
}

// HumanCyc fetches a HumanCyc pathway, e.g. identifier "PWY66-398".
func (c *Client) HumanCyc(ctx context.Context, identifier string) ([]byte, error) {
	return c.cyc(ctx, base(c.HumanCycURL, DefaultHumanCycURL), identifier)
}

// cyc hits one of the Pathway Tools "pathway-biopax" exporters, which all
// share the same query shape.
func (c *Client) cyc(ctx context.Context, endpoint, identifier string) ([]byte, error) {
	params := url.Values{}
	params.Set("type", "3")
	params.Set("object", identifier)
	return c.Fetch(ctx, endpoint+"?"+params.Encode())
}
