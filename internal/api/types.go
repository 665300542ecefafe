package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// envelope wraps every single-record request and response body.
type envelope[T any] struct {
	Data T `json:"data"`
}

// listEnvelope is the collection response shape.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
	Meta struct {
		Pagination pageMetaWire `json:"pagination"`
	} `json:"meta"`
}

// ListResult is one decoded page of a collection.
type ListResult[T any] struct {
	Items []T
	Meta  PageMeta
}

// PageMeta mirrors the API's pagination metadata. NextPage and PrevPage are
// zero when there is no such page.
type PageMeta struct {
	Total       int
	PageSize    int
	Page        int
	PageCount   int
	NextPage    int
	PrevPage    int
	HasNextPage bool
	HasPrevPage bool
}

// pageMetaWire tolerates both key spellings the API has shipped for the
// current page number ("page" and "currentPage").
type pageMetaWire struct {
	Total       int  `json:"total"`
	PageSize    int  `json:"pageSize"`
	Page        int  `json:"page"`
	CurrentPage int  `json:"currentPage"`
	PageCount   int  `json:"pageCount"`
	NextPage    *int `json:"nextPage"`
	PrevPage    *int `json:"prevPage"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPreviousPage"`
}

func (w pageMetaWire) normalized() PageMeta {
	m := PageMeta{
		Total:       w.Total,
		PageSize:    w.PageSize,
		Page:        w.Page,
		PageCount:   w.PageCount,
		HasNextPage: w.HasNextPage,
		HasPrevPage: w.HasPrevPage,
	}
	if m.Page == 0 {
		m.Page = w.CurrentPage
	}
	if w.NextPage != nil {
		m.NextPage = *w.NextPage
	}
	if w.PrevPage != nil {
		m.PrevPage = *w.PrevPage
	}
	return m
}

// RequestError is a failed API call normalized to a single display message.
type RequestError struct {
	Path    string
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("api %s returned status %d: %s", e.Path, e.Status, e.Message)
}

const genericFailure = "Request failed"

// normalizeError extracts the server's message from an error response. The
// API answers either {error:{message}} or a bare string; anything else falls
// back to a generic message so the UI always has something to show.
func normalizeError(path string, resp *http.Response) error {
	message := genericFailure

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(body) > 0 {
		var structured struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(body, &structured) == nil && structured.Error.Message != "" {
			message = structured.Error.Message
		} else {
			var bare string
			if json.Unmarshal(body, &bare) == nil && strings.TrimSpace(bare) != "" {
				message = bare
			}
		}
	}

	return &RequestError{Path: path, Status: resp.StatusCode, Message: message}
}

// Message returns the display string for any API failure: the normalized
// server message when present, the generic fallback otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return genericFailure
}
