package model

import internalmodel "github.com/goliatone/go-formkit/internal/model"

// Builder converts form definitions into renderer-facing models.
type Builder interface {
	Build(def Definition) (FormModel, error)
}

// Option customises builder construction.
type Option func(*internalmodel.Options)

// WithLabeler overrides the default field labeler.
func WithLabeler(labeler func(string) string) Option {
	return func(opts *internalmodel.Options) {
		if labeler != nil {
			opts.Labeler = labeler
		}
	}
}

// NewBuilder constructs the built-in model builder.
func NewBuilder(options ...Option) Builder {
	var opts internalmodel.Options
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&opts)
	}
	return internalmodel.New(opts)
}
