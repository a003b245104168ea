// Package provider defines the LLM translation backends.
package provider

import "github.com/inglishlab/inglish"

// Provider is the interface for LLM translation backends.
// This is an alias to the main package interface for convenience.
type Provider = inglish.Provider

// TranslateRequest is an alias to the main package type.
type TranslateRequest = inglish.TranslateRequest

// Translation is an alias to the main package type.
type Translation = inglish.Translation
