package ui

import (
	"github.com/virxdxk/gamerec/internal/model"
	"github.com/virxdxk/gamerec/internal/parse"
)

// ParseDone carries the extraction result for a submitted input line.
type ParseDone struct {
	Parsed parse.Parsed
}

// RecommendDone carries the ranked result for a validated profile.
type RecommendDone struct {
	Result model.Result
	Err    error
}

// AlternativesDone carries the ranked result over the complement genres.
type AlternativesDone struct {
	Result model.Result
	Err    error
}
