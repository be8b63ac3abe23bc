package tabdl

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a workbook or view was not located by exact match.
var ErrNotFound = errors.New("not found")

// ErrAuthentication indicates sign-in failed.
var ErrAuthentication = errors.New("authentication failed")

// AuthenticationError represents a failure to establish the session.
type AuthenticationError struct {
	Server string
	Err    error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("sign in to %s: %v", e.Server, e.Err)
}

func (e *AuthenticationError) Unwrap() []error {
	return []error{ErrAuthentication, e.Err}
}

// NewAuthenticationError creates a new AuthenticationError.
func NewAuthenticationError(server string, err error) *AuthenticationError {
	return &AuthenticationError{Server: server, Err: err}
}

// NotFoundError reports which lookup came back empty.
type NotFoundError struct {
	Kind string // "workbook" or "view"
	Name string
	ID   string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %q with id %q not found", e.Kind, e.Name, e.ID)
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(kind, name, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name, ID: id}
}

// QueryError represents a transport failure during one scoped query.
type QueryError struct {
	Key   string // filter key, empty for an unfiltered query
	Index int    // batch index within the key
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", batchLabel(e.Key, e.Index), e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError creates a new QueryError.
func NewQueryError(key string, index int, err error) *QueryError {
	return &QueryError{Key: key, Index: index, Err: err}
}

// ParseError represents a batch response that is not a usable table, either
// undecodable or missing columns of the canonical order.
type ParseError struct {
	Key   string
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", batchLabel(e.Key, e.Index), e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(key string, index int, err error) *ParseError {
	return &ParseError{Key: key, Index: index, Err: err}
}

func batchLabel(key string, index int) string {
	if key == "" {
		return "unfiltered view"
	}
	return fmt.Sprintf("batch %d of filter %q", index, key)
}
