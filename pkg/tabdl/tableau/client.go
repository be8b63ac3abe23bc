// Package tableau is a minimal client for the Tableau Server REST API covering
// sign-in, workbook and view listing, and view data export.
package tableau

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/models"
	"github.com/tidwall/gjson"
)

// bootstrapVersion is the API version used to ask the server for its own.
const bootstrapVersion = "2.4"

const (
	acceptJSON = "application/json"
	acceptCSV  = "text/csv"
)

// DefaultPageSize is the listing page size used when none is given.
const DefaultPageSize = 100

// Config holds the connection parameters.
type Config struct {
	// ServerURL is the server address, e.g. https://tableau.example.com.
	ServerURL string
	// TokenName is the personal access token name.
	TokenName string
	// TokenSecret is the personal access token secret.
	TokenSecret string
	// Site is the site content URL; empty selects the default site.
	Site string
	// APIVersion pins the REST API version. Empty asks the server.
	APIVersion string
	// HTTPClient is used for all requests. Nil uses http.DefaultClient.
	HTTPClient *http.Client
}

// ListOptions selects one page of a workbook listing.
type ListOptions struct {
	// Name filters on exact workbook name. Empty lists all workbooks.
	Name       string
	PageSize   int
	PageNumber int
}

// Client talks to one server. It is not safe for concurrent use.
type Client struct {
	cfg     Config
	http    *http.Client
	server  string
	version string
	token   string
	siteID  string
}

// NewClient creates a client. No request is made until SignIn.
func NewClient(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		cfg:     cfg,
		http:    hc,
		server:  strings.TrimRight(cfg.ServerURL, "/"),
		version: cfg.APIVersion,
	}
}

// ServerURL returns the normalized server address.
func (c *Client) ServerURL() string {
	return c.server
}

// Version returns the REST API version in use, empty until resolved.
func (c *Client) Version() string {
	return c.version
}

// SignedIn reports whether SignIn has succeeded.
func (c *Client) SignedIn() bool {
	return c.token != ""
}

// ServerVersion asks the server for the newest REST API version it supports.
func (c *Client) ServerVersion(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, c.apiURL(bootstrapVersion, "serverinfo"), nil, false, acceptJSON)
	if err != nil {
		return "", fmt.Errorf("server info: %w", err)
	}
	v := gjson.GetBytes(body, "serverInfo.restApiVersion").String()
	if v == "" {
		return "", fmt.Errorf("server info: response has no restApiVersion")
	}
	return v, nil
}

type signInRequest struct {
	Credentials struct {
		TokenName   string `json:"personalAccessTokenName"`
		TokenSecret string `json:"personalAccessTokenSecret"`
		Site        struct {
			ContentURL string `json:"contentUrl"`
		} `json:"site"`
	} `json:"credentials"`
}

// SignIn authenticates with the personal access token and keeps the session
// token for later calls.
func (c *Client) SignIn(ctx context.Context) error {
	if c.version == "" {
		v, err := c.ServerVersion(ctx)
		if err != nil {
			return err
		}
		c.version = v
	}

	var req signInRequest
	req.Credentials.TokenName = c.cfg.TokenName
	req.Credentials.TokenSecret = c.cfg.TokenSecret
	req.Credentials.Site.ContentURL = c.cfg.Site
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode sign-in request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, c.apiURL(c.version, "auth/signin"), payload, false, acceptJSON)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	creds := gjson.GetBytes(body, "credentials")
	token := creds.Get("token").String()
	siteID := creds.Get("site.id").String()
	if token == "" || siteID == "" {
		return fmt.Errorf("sign in: response has no token or site id")
	}
	c.token = token
	c.siteID = siteID
	return nil
}

// ListWorkbooks returns one page of workbooks on the signed-in site.
func (c *Client) ListWorkbooks(ctx context.Context, opts ListOptions) ([]models.WorkbookRef, models.Pagination, error) {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.PageNumber <= 0 {
		opts.PageNumber = 1
	}

	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(opts.PageSize))
	q.Set("pageNumber", strconv.Itoa(opts.PageNumber))
	if opts.Name != "" {
		q.Set("filter", "name:eq:"+opts.Name)
	}

	body, err := c.siteGet(ctx, "workbooks", q, acceptJSON)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list workbooks: %w", err)
	}

	var workbooks []models.WorkbookRef
	gjson.GetBytes(body, "workbooks.workbook").ForEach(func(_, wb gjson.Result) bool {
		workbooks = append(workbooks, models.WorkbookRef{
			ID:          wb.Get("id").String(),
			Name:        wb.Get("name").String(),
			ContentURL:  wb.Get("contentUrl").String(),
			ProjectName: wb.Get("project.name").String(),
		})
		return true
	})

	p := gjson.GetBytes(body, "pagination")
	page := models.Pagination{
		PageNumber:     int(p.Get("pageNumber").Int()),
		PageSize:       int(p.Get("pageSize").Int()),
		TotalAvailable: int(p.Get("totalAvailable").Int()),
	}
	return workbooks, page, nil
}

// ListViews returns the views of a workbook.
func (c *Client) ListViews(ctx context.Context, wb models.WorkbookRef) ([]models.ViewRef, error) {
	body, err := c.siteGet(ctx, "workbooks/"+url.PathEscape(wb.ID)+"/views", nil, acceptJSON)
	if err != nil {
		return nil, fmt.Errorf("list views of workbook %s: %w", wb.ID, err)
	}

	var views []models.ViewRef
	gjson.GetBytes(body, "views.view").ForEach(func(_, v gjson.Result) bool {
		views = append(views, models.ViewRef{
			ID:         v.Get("id").String(),
			Name:       v.Get("name").String(),
			ContentURL: v.Get("contentUrl").String(),
			Workbook:   wb,
		})
		return true
	})
	return views, nil
}

// ViewData exports the view's underlying data as comma-separated text.
// A non-nil filter restricts the export to rows whose field is one of the
// filter's values.
func (c *Client) ViewData(ctx context.Context, view models.ViewRef, filter *models.ViewFilter) ([]byte, error) {
	var q url.Values
	if filter != nil {
		q = url.Values{}
		q.Set("vf_"+filter.Field, FilterValue(filter.Values))
	}
	body, err := c.siteGet(ctx, "views/"+url.PathEscape(view.ID)+"/data", q, acceptCSV)
	if err != nil {
		return nil, fmt.Errorf("view data %s: %w", view.ID, err)
	}
	return body, nil
}

// FilterValue joins filter values into a single vf_ parameter value.
// Commas inside a value are escaped so they are not read as separators.
func FilterValue(values []string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = strings.ReplaceAll(v, ",", `\,`)
	}
	return strings.Join(escaped, ",")
}

func (c *Client) apiURL(version, path string) string {
	return fmt.Sprintf("%s/api/%s/%s", c.server, version, path)
}

func (c *Client) siteGet(ctx context.Context, path string, q url.Values, accept string) ([]byte, error) {
	if !c.SignedIn() {
		return nil, ErrNotSignedIn
	}
	u := c.apiURL(c.version, "sites/"+url.PathEscape(c.siteID)+"/"+path)
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return c.do(ctx, http.MethodGet, u, nil, true, accept)
}

func (c *Client) do(ctx context.Context, method, u string, payload []byte, auth bool, accept string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", accept)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set("X-Tableau-Auth", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	return body, nil
}
