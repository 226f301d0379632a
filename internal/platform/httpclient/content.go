package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Pet es la fila tal como la devuelve /content.
type Pet struct {
	ID     int64  `json:"_id"`
	Name   string `json:"name"`
	Breed  string `json:"breed"`
	Gender int    `json:"gender"`
	Weight int    `json:"weight"`
	URI    string `json:"uri"`
}

type QueryResult struct {
	URI   string `json:"uri"`
	Type  string `json:"type"`
	Count int    `json:"count"`
	Items []Pet  `json:"items"`
}

// NewPet es el body de un insert. Gender/Weight nil => defaults del servidor.
type NewPet struct {
	Name   string `json:"name"`
	Breed  string `json:"breed,omitempty"`
	Gender *int   `json:"gender,omitempty"`
	Weight *int   `json:"weight,omitempty"`
}

type Mutation struct {
	URI     string `json:"uri"`
	Updated int    `json:"updated"`
	Deleted int    `json:"deleted"`
}

// QueryParams replica los filtros de la colección. Los vacíos no se envían.
type QueryParams struct {
	Gender string
	Breed  string
	Sort   string
	Order  string
	Limit  int
}

func (p QueryParams) encode() string {
	v := url.Values{}
	if p.Gender != "" {
		v.Set("gender", p.Gender)
	}
	if p.Breed != "" {
		v.Set("breed", p.Breed)
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort)
	}
	if p.Order != "" {
		v.Set("order", p.Order)
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// ContentPath traduce content://authority/path a /content/authority/path.
func ContentPath(contentURI string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(contentURI))
	if err != nil || u.Scheme != "content" || u.Host == "" {
		return "", fmt.Errorf("httpclient: not a content uri: %q", contentURI)
	}
	p := strings.Trim(u.EscapedPath(), "/")
	if p == "" {
		return "", fmt.Errorf("httpclient: content uri without path: %q", contentURI)
	}
	return "/content/" + u.Host + "/" + p, nil
}

func (c *Client) Query(ctx context.Context, contentURI string, params QueryParams) (QueryResult, error) {
	path, err := ContentPath(contentURI)
	if err != nil {
		return QueryResult{}, err
	}
	var out QueryResult
	if err := c.DoJSON(ctx, http.MethodGet, path+params.encode(), nil, nil, &out); err != nil {
		return QueryResult{}, err
	}
	return out, nil
}

func (c *Client) Insert(ctx context.Context, contentURI string, in NewPet) (Pet, error) {
	path, err := ContentPath(contentURI)
	if err != nil {
		return Pet{}, err
	}
	var out Pet
	if err := c.DoJSON(ctx, http.MethodPost, path, nil, in, &out); err != nil {
		return Pet{}, err
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, contentURI string, params QueryParams) (int, error) {
	path, err := ContentPath(contentURI)
	if err != nil {
		return 0, err
	}
	var out Mutation
	if err := c.DoJSON(ctx, http.MethodDelete, path+params.encode(), nil, nil, &out); err != nil {
		return 0, err
	}
	return out.Deleted, nil
}
